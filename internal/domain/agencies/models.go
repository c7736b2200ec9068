package agencies

import (
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/money"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/validators"
)

// Agency statuses
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

// Agency entity
type Agency struct {
	ID                string    `validate:"required,uuid4"`
	Name              string    `validate:"required,min=2,max=150"`
	Slug              string    `validate:"required,slug,max=150"`
	Email             string    `validate:"required,email,max=255"`
	Phone             string    `validate:"omitempty,max=32"`
	Country           string    `validate:"omitempty,iso3166_1_alpha2"`
	CommissionPercent float64   `validate:"min=0,max=100"`
	Status            string    `validate:"required,oneof=active suspended"`
	ServiceModuleIDs  []string  `validate:"omitempty,dive,uuid4"`
	CreatedAt         time.Time `validate:"required"`
	UpdatedAt         time.Time
}

// Validate for validating Agency struct
func (a *Agency) Validate() error {
	return validators.Struct(a)
}

// IsActive reports whether the agency may receive work.
func (a *Agency) IsActive() bool {
	return a.Status == StatusActive
}

// Handles reports whether the agency processes the given service module.
// An agency without an explicit module list handles every module.
func (a *Agency) Handles(moduleID string) bool {
	if len(a.ServiceModuleIDs) == 0 {
		return true
	}
	for _, id := range a.ServiceModuleIDs {
		if id == moduleID {
			return true
		}
	}
	return false
}

// Commission is the agency's earning on amount, rounded half up to the minor unit.
func (a *Agency) Commission(amount int64) int64 {
	return money.Percent(amount, a.CommissionPercent)
}

// PlatformShare is what the marketplace keeps of amount.
func (a *Agency) PlatformShare(amount int64) int64 {
	return amount - a.Commission(amount)
}

// AgencyQuery filters the agency listing
type AgencyQuery struct {
	Status    string `validate:"omitempty,oneof=active suspended"`
	Country   string `validate:"omitempty,iso3166_1_alpha2"`
	Limit     int    `validate:"omitempty,gt=0,max=200"`
	Offset    int    `validate:"omitempty,gte=0"`
	SortBy    string `validate:"omitempty,oneof=name created_at commission_percent"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewAgencyQuery creates an AgencyQuery with default paging
func NewAgencyQuery() *AgencyQuery {
	return &AgencyQuery{Limit: 50}
}

// Validate for validating AgencyQuery struct
func (q *AgencyQuery) Validate() error {
	return validators.Struct(q)
}
