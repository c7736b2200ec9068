package models

import (
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/billing"
	"gorm.io/datatypes"
)

// InvoiceModel is the GORM database model for invoices.
// Recurrence is flattened into columns so due series can be queried.
type InvoiceModel struct {
	ID                   string  `gorm:"primaryKey;type:varchar(36)"`
	Number               string  `gorm:"not null;uniqueIndex;type:varchar(40)"`
	UserID               string  `gorm:"not null;index;type:varchar(36)"`
	ServiceApplicationID *string `gorm:"index;type:varchar(36)"`
	Items                datatypes.JSONSlice[billing.InvoiceItem]
	Currency             string    `gorm:"not null;type:varchar(3)"`
	Subtotal             int64     `gorm:"not null"`
	TaxPercent           float64   `gorm:"not null"`
	TaxAmount            int64     `gorm:"not null"`
	Discount             int64     `gorm:"not null"`
	Total                int64     `gorm:"not null"`
	AmountPaid           int64     `gorm:"not null"`
	Status               string    `gorm:"not null;index;type:varchar(20)"`
	IssueDate            time.Time `gorm:"not null"`
	DueDate              time.Time `gorm:"not null;index"`
	PaidAt               *time.Time
	RecurringFrequency   string     `gorm:"not null;default:none;type:varchar(20)"`
	NextIssueDate        *time.Time `gorm:"index"`
	RecurrenceEndDate    *time.Time
	ParentInvoiceID      *string `gorm:"index;type:varchar(36)"`
	Notes                string  `gorm:"type:text"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName specifies the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts GORM model to domain entity
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	return &billing.Invoice{
		ID:                   m.ID,
		Number:               m.Number,
		UserID:               m.UserID,
		ServiceApplicationID: m.ServiceApplicationID,
		Items:                []billing.InvoiceItem(m.Items),
		Currency:             m.Currency,
		Subtotal:             m.Subtotal,
		TaxPercent:           m.TaxPercent,
		TaxAmount:            m.TaxAmount,
		Discount:             m.Discount,
		Total:                m.Total,
		AmountPaid:           m.AmountPaid,
		Status:               m.Status,
		IssueDate:            m.IssueDate,
		DueDate:              m.DueDate,
		PaidAt:               m.PaidAt,
		Recurrence: billing.Recurrence{
			Frequency:     m.RecurringFrequency,
			NextIssueDate: m.NextIssueDate,
			EndDate:       m.RecurrenceEndDate,
		},
		ParentInvoiceID: m.ParentInvoiceID,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *InvoiceModel) FromDomain(inv *billing.Invoice) {
	m.ID = inv.ID
	m.Number = inv.Number
	m.UserID = inv.UserID
	m.ServiceApplicationID = inv.ServiceApplicationID
	m.Items = datatypes.NewJSONSlice(inv.Items)
	m.Currency = inv.Currency
	m.Subtotal = inv.Subtotal
	m.TaxPercent = inv.TaxPercent
	m.TaxAmount = inv.TaxAmount
	m.Discount = inv.Discount
	m.Total = inv.Total
	m.AmountPaid = inv.AmountPaid
	m.Status = inv.Status
	m.IssueDate = inv.IssueDate.UTC()
	m.DueDate = inv.DueDate.UTC()
	m.PaidAt = utcPtr(inv.PaidAt)
	m.RecurringFrequency = inv.Recurrence.Frequency
	if m.RecurringFrequency == "" {
		m.RecurringFrequency = billing.FrequencyNone
	}
	m.NextIssueDate = utcPtr(inv.Recurrence.NextIssueDate)
	m.RecurrenceEndDate = utcPtr(inv.Recurrence.EndDate)
	m.ParentInvoiceID = inv.ParentInvoiceID
	m.Notes = inv.Notes
	m.CreatedAt = inv.CreatedAt
	m.UpdatedAt = inv.UpdatedAt
}

// InvoiceSequenceModel holds the last invoice number handed out per year
type InvoiceSequenceModel struct {
	Year  int   `gorm:"primaryKey;autoIncrement:false"`
	Value int64 `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (InvoiceSequenceModel) TableName() string {
	return "invoice_sequences"
}

// PaymentModel is the GORM database model for invoice payments
type PaymentModel struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)"`
	InvoiceID  string    `gorm:"not null;index;type:varchar(36)"`
	UserID     string    `gorm:"not null;index;type:varchar(36)"`
	Amount     int64     `gorm:"not null"`
	Currency   string    `gorm:"not null;type:varchar(3)"`
	Method     string    `gorm:"not null;type:varchar(20)"`
	Reference  string    `gorm:"type:varchar(120)"`
	Status     string    `gorm:"not null;index;type:varchar(20)"`
	PaidAt     time.Time `gorm:"not null"`
	RefundedAt *time.Time
	CreatedAt  time.Time
}

// TableName specifies the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts GORM model to domain entity
func (m *PaymentModel) ToDomain() *billing.Payment {
	return &billing.Payment{
		ID:         m.ID,
		InvoiceID:  m.InvoiceID,
		UserID:     m.UserID,
		Amount:     m.Amount,
		Currency:   m.Currency,
		Method:     m.Method,
		Reference:  m.Reference,
		Status:     m.Status,
		PaidAt:     m.PaidAt,
		RefundedAt: m.RefundedAt,
		CreatedAt:  m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PaymentModel) FromDomain(p *billing.Payment) {
	m.ID = p.ID
	m.InvoiceID = p.InvoiceID
	m.UserID = p.UserID
	m.Amount = p.Amount
	m.Currency = p.Currency
	m.Method = p.Method
	m.Reference = p.Reference
	m.Status = p.Status
	m.PaidAt = p.PaidAt.UTC()
	m.RefundedAt = utcPtr(p.RefundedAt)
	m.CreatedAt = p.CreatedAt
}
