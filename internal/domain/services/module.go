package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/money"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/validators"
)

// Service module categories
const (
	CategoryVisa          = "visa"
	CategoryAttestation   = "attestation"
	CategoryTranslation   = "translation"
	CategoryHajjUmrah     = "hajj_umrah"
	CategoryFlightBooking = "flight_booking"
	CategoryHotelBooking  = "hotel_booking"
	CategoryCVBuilder     = "cv_builder"
	CategoryOther         = "other"
)

// Form field types
const (
	FieldText   = "text"
	FieldNumber = "number"
	FieldDate   = "date"
	FieldEmail  = "email"
	FieldSelect = "select"
	FieldFile   = "file"
)

// DateLayout is the wire format of date form fields
const DateLayout = "2006-01-02"

// TouristVisaSlug is the module backing /tourist-visa-applications
const TouristVisaSlug = "tourist-visa"

// FormField describes one input a module collects from the applicant.
type FormField struct {
	Name     string   `json:"name" validate:"required,max=64"`
	Label    string   `json:"label" validate:"required,max=120"`
	Type     string   `json:"type" validate:"required,oneof=text number date email select file"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty" validate:"omitempty,dive,required"`
}

// Pricing is the price configuration of a module; amounts are minor units.
type Pricing struct {
	BasePrice          int64   `json:"base_price" validate:"min=0"`
	Currency           string  `json:"currency" validate:"required,currency"`
	TaxPercent         float64 `json:"tax_percent" validate:"min=0,max=100"`
	PlatformFeePercent float64 `json:"platform_fee_percent" validate:"min=0,max=100"`
	ProcessingDays     int     `json:"processing_days" validate:"min=0,max=365"`
}

// Tax is the tax charged on the base price
func (p Pricing) Tax() int64 {
	return money.Percent(p.BasePrice, p.TaxPercent)
}

// PlatformFee is the marketplace fee charged on the base price
func (p Pricing) PlatformFee() int64 {
	return money.Percent(p.BasePrice, p.PlatformFeePercent)
}

// Total is base price plus tax plus platform fee
func (p Pricing) Total() int64 {
	return p.BasePrice + p.Tax() + p.PlatformFee()
}

// FormattedTotal renders Total for display, e.g. "AED 367.50"
func (p Pricing) FormattedTotal() string {
	return money.Format(p.Total(), p.Currency)
}

// ServiceModule entity
type ServiceModule struct {
	ID          string      `validate:"required,uuid4"`
	Slug        string      `validate:"required,slug,max=100"`
	Name        string      `validate:"required,min=2,max=150"`
	Category    string      `validate:"required,oneof=visa attestation translation hajj_umrah flight_booking hotel_booking cv_builder other"`
	Description string      `validate:"max=5000"`
	FormFields  []FormField `validate:"dive"`
	Pricing     Pricing
	IsActive    bool
	SortOrder   int
	CreatedAt   time.Time `validate:"required"`
	UpdatedAt   time.Time
}

// Validate for validating ServiceModule struct
func (m *ServiceModule) Validate() error {
	if err := validators.Struct(m); err != nil {
		return err
	}

	seen := make(map[string]bool, len(m.FormFields))
	for _, field := range m.FormFields {
		if seen[field.Name] {
			return apperr.NewValidationError("form_fields."+field.Name, "unique")
		}
		seen[field.Name] = true
		if field.Type == FieldSelect && len(field.Options) == 0 {
			return apperr.NewValidationError("form_fields."+field.Name, "options_required")
		}
	}
	return nil
}

// ValidateFormData checks submitted values against the module's form fields.
// Every offending field is reported; unknown keys are rejected.
func (m *ServiceModule) ValidateFormData(data map[string]interface{}) error {
	fields := make(map[string]string)
	known := make(map[string]bool, len(m.FormFields))

	for _, field := range m.FormFields {
		known[field.Name] = true
		value, present := data[field.Name]
		if !present || isBlank(value) {
			if field.Required {
				fields[field.Name] = "required"
			}
			continue
		}
		if rule := checkFieldValue(field, value); rule != "" {
			fields[field.Name] = rule
		}
	}

	for key := range data {
		if !known[key] {
			fields[key] = "unknown"
		}
	}

	if len(fields) > 0 {
		return &apperr.ValidationError{Fields: fields}
	}
	return nil
}

func isBlank(value interface{}) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// checkFieldValue returns the name of the violated rule or "" when value is acceptable.
func checkFieldValue(field FormField, value interface{}) string {
	switch field.Type {
	case FieldNumber:
		switch v := value.(type) {
		case float64, int, int64:
			return ""
		case string:
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				return "number"
			}
			return ""
		default:
			return "number"
		}
	case FieldDate:
		s, ok := value.(string)
		if !ok {
			return "date"
		}
		if _, err := time.Parse(DateLayout, s); err != nil {
			return "date"
		}
	case FieldEmail:
		s, ok := value.(string)
		if !ok || validators.Var(field.Name, s, "email") != nil {
			return "email"
		}
	case FieldSelect:
		s, ok := value.(string)
		if !ok {
			return "oneof"
		}
		for _, option := range field.Options {
			if option == s {
				return ""
			}
		}
		return "oneof"
	case FieldText, FieldFile:
		s, ok := value.(string)
		if !ok {
			return "string"
		}
		if len(s) > 2000 {
			return "max"
		}
	default:
		return fmt.Sprintf("unsupported_type_%s", field.Type)
	}
	return ""
}

// ModuleQuery filters the service module listing
type ModuleQuery struct {
	Category   string `validate:"omitempty,oneof=visa attestation translation hajj_umrah flight_booking hotel_booking cv_builder other"`
	ActiveOnly bool
	Name       string `validate:"omitempty,max=150"`
	Limit      int    `validate:"omitempty,gt=0,max=200"`
	Offset     int    `validate:"omitempty,gte=0"`
	SortBy     string `validate:"omitempty,oneof=sort_order name created_at"`
	SortOrder  string `validate:"omitempty,oneof=asc desc"`
}

// NewModuleQuery creates a ModuleQuery with default paging
func NewModuleQuery() *ModuleQuery {
	return &ModuleQuery{Limit: 100}
}

// Validate for validating ModuleQuery struct
func (q *ModuleQuery) Validate() error {
	return validators.Struct(q)
}
