package v1

import (
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/agencies"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/billing"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/catalog"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/services"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/wallets"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/validators"
)

// RegisterRequest creates a customer account
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
}

// Validate for validating RegisterRequest struct
func (r *RegisterRequest) Validate() error {
	return validators.Struct(r)
}

// LoginRequest exchanges credentials for a token
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate for validating LoginRequest struct
func (r *LoginRequest) Validate() error {
	return validators.Struct(r)
}

// AccountRequest creates a login for an agency
type AccountRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// Validate for validating AccountRequest struct
func (r *AccountRequest) Validate() error {
	return validators.Struct(r)
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	AgencyID  *string   `json:"agency_id,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(u *users.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		AgencyID:  u.AgencyID,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

// TokenResponse carries a bearer token
type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// ModuleRequest creates or replaces a service module
type ModuleRequest struct {
	Slug        string              `json:"slug" validate:"omitempty,slug,max=100"`
	Name        string              `json:"name" validate:"required,min=2,max=150"`
	Category    string              `json:"category" validate:"required,oneof=visa attestation translation hajj_umrah flight_booking hotel_booking cv_builder other"`
	Description string              `json:"description" validate:"max=5000"`
	FormFields  []services.FormField `json:"form_fields" validate:"dive"`
	Pricing     services.Pricing    `json:"pricing"`
	IsActive    *bool               `json:"is_active"`
	SortOrder   int                 `json:"sort_order"`
}

// Validate for validating ModuleRequest struct
func (r *ModuleRequest) Validate() error {
	return validators.Struct(r)
}

// ToDomain builds the module; modules are active unless stated otherwise
func (r *ModuleRequest) ToDomain(id string) *services.ServiceModule {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &services.ServiceModule{
		ID:          id,
		Slug:        r.Slug,
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		FormFields:  r.FormFields,
		Pricing:     r.Pricing,
		IsActive:    active,
		SortOrder:   r.SortOrder,
	}
}

// ModuleResponse is the public view of a service module
type ModuleResponse struct {
	ID             string               `json:"id"`
	Slug           string               `json:"slug"`
	Name           string               `json:"name"`
	Category       string               `json:"category"`
	Description    string               `json:"description"`
	FormFields     []services.FormField `json:"form_fields"`
	Pricing        services.Pricing     `json:"pricing"`
	TotalPrice     int64                `json:"total_price"`
	FormattedPrice string               `json:"formatted_price"`
	IsActive       bool                 `json:"is_active"`
	SortOrder      int                  `json:"sort_order"`
}

func newModuleResponse(m *services.ServiceModule) ModuleResponse {
	fields := m.FormFields
	if fields == nil {
		fields = []services.FormField{}
	}
	return ModuleResponse{
		ID:             m.ID,
		Slug:           m.Slug,
		Name:           m.Name,
		Category:       m.Category,
		Description:    m.Description,
		FormFields:     fields,
		Pricing:        m.Pricing,
		TotalPrice:     m.Pricing.Total(),
		FormattedPrice: m.Pricing.FormattedTotal(),
		IsActive:       m.IsActive,
		SortOrder:      m.SortOrder,
	}
}

// SubmitApplicationRequest carries the answers to a module's form
type SubmitApplicationRequest struct {
	FormData map[string]interface{} `json:"form_data" validate:"required"`
}

// Validate for validating SubmitApplicationRequest struct
func (r *SubmitApplicationRequest) Validate() error {
	return validators.Struct(r)
}

// UpdateStatusRequest is a staff decision on an application
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending under_review quoted approved processing completed rejected cancelled"`
	Notes  string `json:"notes" validate:"max=5000"`
}

// Validate for validating UpdateStatusRequest struct
func (r *UpdateStatusRequest) Validate() error {
	return validators.Struct(r)
}

// AssignAgencyRequest hands an application to an agency
type AssignAgencyRequest struct {
	AgencyID string `json:"agency_id" validate:"required,uuid4"`
}

// Validate for validating AssignAgencyRequest struct
func (r *AssignAgencyRequest) Validate() error {
	return validators.Struct(r)
}

// ApplicationResponse is the view of a service application
type ApplicationResponse struct {
	ID              string                 `json:"id"`
	ReferenceNo     string                 `json:"reference_no"`
	UserID          string                 `json:"user_id"`
	ServiceModuleID string                 `json:"service_module_id"`
	AgencyID        *string                `json:"agency_id,omitempty"`
	AcceptedQuoteID *string                `json:"accepted_quote_id,omitempty"`
	FormData        map[string]interface{} `json:"form_data"`
	Status          string                 `json:"status"`
	StatusBadge     string                 `json:"status_badge"`
	Price           int64                  `json:"price"`
	Currency        string                 `json:"currency"`
	FormattedPrice  string                 `json:"formatted_price"`
	AdminNotes      string                 `json:"admin_notes,omitempty"`
	Documents       []services.Document    `json:"documents"`
	SubmittedAt     time.Time              `json:"submitted_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

func newApplicationResponse(a *services.ServiceApplication) ApplicationResponse {
	documents := a.Documents
	if documents == nil {
		documents = []services.Document{}
	}
	return ApplicationResponse{
		ID:              a.ID,
		ReferenceNo:     a.ReferenceNo,
		UserID:          a.UserID,
		ServiceModuleID: a.ServiceModuleID,
		AgencyID:        a.AgencyID,
		AcceptedQuoteID: a.AcceptedQuoteID,
		FormData:        a.FormData,
		Status:          a.Status,
		StatusBadge:     a.StatusBadge(),
		Price:           a.Price,
		Currency:        a.Currency,
		FormattedPrice:  a.FormattedPrice(),
		AdminNotes:      a.AdminNotes,
		Documents:       documents,
		SubmittedAt:     a.SubmittedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// SubmitQuoteRequest is an agency offer
type SubmitQuoteRequest struct {
	Price          int64      `json:"price" validate:"required,gt=0"`
	ProcessingDays int        `json:"processing_days" validate:"required,min=1,max=365"`
	Notes          string     `json:"notes" validate:"max=2000"`
	ValidUntil     *time.Time `json:"valid_until"`
}

// Validate for validating SubmitQuoteRequest struct
func (r *SubmitQuoteRequest) Validate() error {
	return validators.Struct(r)
}

// QuoteResponse is the view of an agency offer
type QuoteResponse struct {
	ID                   string     `json:"id"`
	ServiceApplicationID string     `json:"service_application_id"`
	AgencyID             string     `json:"agency_id"`
	Price                int64      `json:"price"`
	Currency             string     `json:"currency"`
	FormattedPrice       string     `json:"formatted_price"`
	ProcessingDays       int        `json:"processing_days"`
	Notes                string     `json:"notes,omitempty"`
	Status               string     `json:"status"`
	ValidUntil           *time.Time `json:"valid_until,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

func newQuoteResponse(q *services.ServiceQuote) QuoteResponse {
	return QuoteResponse{
		ID:                   q.ID,
		ServiceApplicationID: q.ServiceApplicationID,
		AgencyID:             q.AgencyID,
		Price:                q.Price,
		Currency:             q.Currency,
		FormattedPrice:       q.FormattedPrice(),
		ProcessingDays:       q.ProcessingDays,
		Notes:                q.Notes,
		Status:               q.Status,
		ValidUntil:           q.ValidUntil,
		CreatedAt:            q.CreatedAt,
	}
}

// AgencyRequest creates or replaces an agency
type AgencyRequest struct {
	Name              string   `json:"name" validate:"required,min=2,max=150"`
	Slug              string   `json:"slug" validate:"omitempty,slug,max=150"`
	Email             string   `json:"email" validate:"required,email,max=255"`
	Phone             string   `json:"phone" validate:"omitempty,max=32"`
	Country           string   `json:"country" validate:"omitempty,iso3166_1_alpha2"`
	CommissionPercent float64  `json:"commission_percent" validate:"min=0,max=100"`
	ServiceModuleIDs  []string `json:"service_module_ids" validate:"omitempty,dive,uuid4"`
}

// Validate for validating AgencyRequest struct
func (r *AgencyRequest) Validate() error {
	return validators.Struct(r)
}

// ToDomain builds the agency
func (r *AgencyRequest) ToDomain(id string) *agencies.Agency {
	return &agencies.Agency{
		ID:                id,
		Name:              r.Name,
		Slug:              r.Slug,
		Email:             r.Email,
		Phone:             r.Phone,
		Country:           r.Country,
		CommissionPercent: r.CommissionPercent,
		ServiceModuleIDs:  r.ServiceModuleIDs,
	}
}

// AgencyResponse is the view of a partner agency
type AgencyResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone,omitempty"`
	Country           string    `json:"country,omitempty"`
	CommissionPercent float64   `json:"commission_percent"`
	Status            string    `json:"status"`
	ServiceModuleIDs  []string  `json:"service_module_ids"`
	CreatedAt         time.Time `json:"created_at"`
}

func newAgencyResponse(a *agencies.Agency) AgencyResponse {
	moduleIDs := a.ServiceModuleIDs
	if moduleIDs == nil {
		moduleIDs = []string{}
	}
	return AgencyResponse{
		ID:                a.ID,
		Name:              a.Name,
		Slug:              a.Slug,
		Email:             a.Email,
		Phone:             a.Phone,
		Country:           a.Country,
		CommissionPercent: a.CommissionPercent,
		Status:            a.Status,
		ServiceModuleIDs:  moduleIDs,
		CreatedAt:         a.CreatedAt,
	}
}

// RecurrenceRequest configures a recurring invoice
type RecurrenceRequest struct {
	Frequency string     `json:"frequency" validate:"required,oneof=none weekly monthly quarterly yearly"`
	EndDate   *time.Time `json:"end_date"`
}

// CreateInvoiceRequest issues a manual invoice. TaxPercent falls back to the billing default.
type CreateInvoiceRequest struct {
	UserID               string                `json:"user_id" validate:"required,uuid4"`
	ServiceApplicationID *string               `json:"service_application_id" validate:"omitempty,uuid4"`
	Items                []billing.InvoiceItem `json:"items" validate:"required,min=1,dive"`
	Currency             string                `json:"currency" validate:"omitempty,currency"`
	TaxPercent           *float64              `json:"tax_percent" validate:"omitempty,min=0,max=100"`
	Discount             int64                 `json:"discount" validate:"min=0"`
	Status               string                `json:"status" validate:"omitempty,oneof=draft unpaid"`
	IssueDate            *time.Time            `json:"issue_date"`
	DueDate              *time.Time            `json:"due_date"`
	Recurrence           *RecurrenceRequest    `json:"recurrence"`
	Notes                string                `json:"notes" validate:"max=2000"`
}

// Validate for validating CreateInvoiceRequest struct
func (r *CreateInvoiceRequest) Validate() error {
	return validators.Struct(r)
}

// ToDomain builds the invoice; the service fills in number, totals and dates
func (r *CreateInvoiceRequest) ToDomain(defaultTaxPercent float64) *billing.Invoice {
	invoice := &billing.Invoice{
		UserID:               r.UserID,
		ServiceApplicationID: r.ServiceApplicationID,
		Items:                r.Items,
		Currency:             r.Currency,
		TaxPercent:           defaultTaxPercent,
		Discount:             r.Discount,
		Status:               r.Status,
		Notes:                r.Notes,
	}
	if r.TaxPercent != nil {
		invoice.TaxPercent = *r.TaxPercent
	}
	if r.IssueDate != nil {
		invoice.IssueDate = *r.IssueDate
	}
	if r.DueDate != nil {
		invoice.DueDate = *r.DueDate
	}
	if r.Recurrence != nil {
		invoice.Recurrence = billing.Recurrence{Frequency: r.Recurrence.Frequency, EndDate: r.Recurrence.EndDate}
	}
	return invoice
}

// RecordPaymentRequest registers money received outside the platform
type RecordPaymentRequest struct {
	Amount    int64  `json:"amount" validate:"required,gt=0"`
	Method    string `json:"method" validate:"required,oneof=card bank_transfer cash"`
	Reference string `json:"reference" validate:"max=120"`
}

// Validate for validating RecordPaymentRequest struct
func (r *RecordPaymentRequest) Validate() error {
	return validators.Struct(r)
}

// InvoiceResponse is the view of an invoice
type InvoiceResponse struct {
	ID                   string                `json:"id"`
	Number               string                `json:"number"`
	UserID               string                `json:"user_id"`
	ServiceApplicationID *string               `json:"service_application_id,omitempty"`
	Items                []billing.InvoiceItem `json:"items"`
	Currency             string                `json:"currency"`
	Subtotal             int64                 `json:"subtotal"`
	TaxPercent           float64               `json:"tax_percent"`
	TaxAmount            int64                 `json:"tax_amount"`
	Discount             int64                 `json:"discount"`
	Total                int64                 `json:"total"`
	AmountPaid           int64                 `json:"amount_paid"`
	BalanceDue           int64                 `json:"balance_due"`
	FormattedTotal       string                `json:"formatted_total"`
	FormattedBalanceDue  string                `json:"formatted_balance_due"`
	Status               string                `json:"status"`
	IssueDate            time.Time             `json:"issue_date"`
	DueDate              time.Time             `json:"due_date"`
	PaidAt               *time.Time            `json:"paid_at,omitempty"`
	Recurrence           billing.Recurrence    `json:"recurrence"`
	ParentInvoiceID      *string               `json:"parent_invoice_id,omitempty"`
	Notes                string                `json:"notes,omitempty"`
}

func newInvoiceResponse(inv *billing.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:                   inv.ID,
		Number:               inv.Number,
		UserID:               inv.UserID,
		ServiceApplicationID: inv.ServiceApplicationID,
		Items:                inv.Items,
		Currency:             inv.Currency,
		Subtotal:             inv.Subtotal,
		TaxPercent:           inv.TaxPercent,
		TaxAmount:            inv.TaxAmount,
		Discount:             inv.Discount,
		Total:                inv.Total,
		AmountPaid:           inv.AmountPaid,
		BalanceDue:           inv.BalanceDue(),
		FormattedTotal:       inv.FormattedTotal(),
		FormattedBalanceDue:  inv.FormattedBalanceDue(),
		Status:               inv.Status,
		IssueDate:            inv.IssueDate,
		DueDate:              inv.DueDate,
		PaidAt:               inv.PaidAt,
		Recurrence:           inv.Recurrence,
		ParentInvoiceID:      inv.ParentInvoiceID,
		Notes:                inv.Notes,
	}
}

// PaymentResponse is the view of a payment
type PaymentResponse struct {
	ID         string     `json:"id"`
	InvoiceID  string     `json:"invoice_id"`
	Amount     int64      `json:"amount"`
	Currency   string     `json:"currency"`
	Method     string     `json:"method"`
	Reference  string     `json:"reference,omitempty"`
	Status     string     `json:"status"`
	PaidAt     time.Time  `json:"paid_at"`
	RefundedAt *time.Time `json:"refunded_at,omitempty"`
}

func newPaymentResponse(p *billing.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		InvoiceID:  p.InvoiceID,
		Amount:     p.Amount,
		Currency:   p.Currency,
		Method:     p.Method,
		Reference:  p.Reference,
		Status:     p.Status,
		PaidAt:     p.PaidAt,
		RefundedAt: p.RefundedAt,
	}
}

// TopUpRequest credits a wallet from the admin console
type TopUpRequest struct {
	OwnerID     string `json:"owner_id" validate:"required,uuid4"`
	OwnerType   string `json:"owner_type" validate:"required,oneof=user agency"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Reference   string `json:"reference" validate:"max=120"`
	Description string `json:"description" validate:"max=255"`
}

// Validate for validating TopUpRequest struct
func (r *TopUpRequest) Validate() error {
	return validators.Struct(r)
}

// WalletResponse is the view of a wallet
type WalletResponse struct {
	ID               string `json:"id"`
	OwnerID          string `json:"owner_id"`
	OwnerType        string `json:"owner_type"`
	Balance          int64  `json:"balance"`
	Currency         string `json:"currency"`
	FormattedBalance string `json:"formatted_balance"`
}

func newWalletResponse(w *wallets.Wallet) WalletResponse {
	return WalletResponse{
		ID:               w.ID,
		OwnerID:          w.OwnerID,
		OwnerType:        w.OwnerType,
		Balance:          w.Balance,
		Currency:         w.Currency,
		FormattedBalance: w.FormattedBalance(),
	}
}

// TransactionResponse is one wallet ledger line
type TransactionResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Amount       int64     `json:"amount"`
	BalanceAfter int64     `json:"balance_after"`
	Reference    string    `json:"reference,omitempty"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func newTransactionResponse(t *wallets.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		Type:         t.Type,
		Amount:       t.Amount,
		BalanceAfter: t.BalanceAfter,
		Reference:    t.Reference,
		Description:  t.Description,
		CreatedAt:    t.CreatedAt,
	}
}

// AirportResponse is one airport suggestion
type AirportResponse struct {
	IATA      string  `json:"iata"`
	ICAO      string  `json:"icao,omitempty"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Label     string  `json:"label"`
}

func newAirportResponse(a *catalog.Airport) AirportResponse {
	return AirportResponse{
		IATA:      a.IATA,
		ICAO:      a.ICAO,
		Name:      a.Name,
		City:      a.City,
		Country:   a.Country,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
		Label:     a.Label(),
	}
}

// ImportResponse summarises an airport import
type ImportResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
