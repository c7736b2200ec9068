package billing

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/money"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/validators"
)

// Invoice statuses
const (
	StatusDraft         = "draft"
	StatusUnpaid        = "unpaid"
	StatusPartiallyPaid = "partially_paid"
	StatusPaid          = "paid"
	StatusOverdue       = "overdue"
	StatusCancelled     = "cancelled"
)

// Recurrence frequencies
const (
	FrequencyNone      = "none"
	FrequencyWeekly    = "weekly"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyYearly    = "yearly"
)

// InvoiceItem is one billed line; UnitPrice is in minor units.
type InvoiceItem struct {
	Description string `json:"description" validate:"required,max=255"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
	UnitPrice   int64  `json:"unit_price" validate:"min=0"`
}

// Amount is Quantity times UnitPrice
func (i InvoiceItem) Amount() int64 {
	return i.Quantity * i.UnitPrice
}

// Recurrence configures automatic re-issuing of an invoice.
type Recurrence struct {
	Frequency     string     `json:"frequency" validate:"omitempty,oneof=none weekly monthly quarterly yearly"`
	NextIssueDate *time.Time `json:"next_issue_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
}

// IsRecurring reports whether a frequency other than none is configured.
func (r Recurrence) IsRecurring() bool {
	return r.Frequency != "" && r.Frequency != FrequencyNone
}

// DueAt reports whether a child invoice should be generated at now.
func (r Recurrence) DueAt(now time.Time) bool {
	if !r.IsRecurring() || r.NextIssueDate == nil || r.NextIssueDate.After(now) {
		return false
	}
	return r.EndDate == nil || !r.NextIssueDate.After(*r.EndDate)
}

// Invoice entity
type Invoice struct {
	ID                   string        `validate:"required,uuid4"`
	Number               string        `validate:"required,max=40"`
	UserID               string        `validate:"required,uuid4"`
	ServiceApplicationID *string       `validate:"omitempty,uuid4"`
	Items                []InvoiceItem `validate:"required,min=1,dive"`
	Currency             string        `validate:"required,currency"`
	Subtotal             int64         `validate:"min=0"`
	TaxPercent           float64       `validate:"min=0,max=100"`
	TaxAmount            int64         `validate:"min=0"`
	Discount             int64         `validate:"min=0"`
	Total                int64         `validate:"min=0"`
	AmountPaid           int64         `validate:"min=0"`
	Status               string        `validate:"required,oneof=draft unpaid partially_paid paid overdue cancelled"`
	IssueDate            time.Time     `validate:"required"`
	DueDate              time.Time     `validate:"required"`
	PaidAt               *time.Time
	Recurrence           Recurrence
	ParentInvoiceID      *string `validate:"omitempty,uuid4"`
	Notes                string  `validate:"max=2000"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Validate for validating Invoice struct
func (inv *Invoice) Validate() error {
	if err := validators.Struct(inv); err != nil {
		return err
	}
	if inv.DueDate.Before(inv.IssueDate) {
		return apperr.NewValidationError("DueDate", "gtefield")
	}
	if inv.Recurrence.IsRecurring() && inv.Recurrence.NextIssueDate == nil {
		return apperr.NewValidationError("Recurrence.NextIssueDate", "required")
	}
	return nil
}

// Recalculate derives subtotal, tax and total from the items.
// Tax is charged on the subtotal after discount.
func (inv *Invoice) Recalculate() error {
	var subtotal int64
	for _, item := range inv.Items {
		subtotal += item.Amount()
	}
	if inv.Discount > subtotal {
		return apperr.NewValidationError("Discount", "lte_subtotal")
	}
	inv.Subtotal = subtotal
	inv.TaxAmount = money.Percent(subtotal-inv.Discount, inv.TaxPercent)
	inv.Total = subtotal - inv.Discount + inv.TaxAmount
	return nil
}

// BalanceDue is what remains to be paid
func (inv *Invoice) BalanceDue() int64 {
	if due := inv.Total - inv.AmountPaid; due > 0 {
		return due
	}
	return 0
}

// IsPayable reports whether payments may be recorded against the invoice.
func (inv *Invoice) IsPayable() bool {
	switch inv.Status {
	case StatusUnpaid, StatusPartiallyPaid, StatusOverdue:
		return true
	}
	return false
}

// RefreshStatus recomputes the status from AmountPaid after a payment or refund.
// Draft and cancelled invoices are left alone.
func (inv *Invoice) RefreshStatus(now time.Time) {
	if inv.Status == StatusDraft || inv.Status == StatusCancelled {
		return
	}
	switch {
	case inv.AmountPaid >= inv.Total:
		inv.Status = StatusPaid
		if inv.PaidAt == nil {
			paidAt := now
			inv.PaidAt = &paidAt
		}
		return
	case inv.DueDate.Before(now):
		inv.Status = StatusOverdue
	case inv.AmountPaid > 0:
		inv.Status = StatusPartiallyPaid
	default:
		inv.Status = StatusUnpaid
	}
	inv.PaidAt = nil
}

// ApplyPayment adds amount to AmountPaid once the invoice accepts it.
func (inv *Invoice) ApplyPayment(amount int64, now time.Time) error {
	if !inv.IsPayable() {
		return apperr.Conflictf("invoice %s is %s and accepts no payments", inv.Number, inv.Status)
	}
	if err := money.MustPositive(amount); err != nil {
		return apperr.NewValidationError("amount", "gt")
	}
	if amount > inv.BalanceDue() {
		return apperr.NewValidationError("amount", "lte_balance_due")
	}
	inv.AmountPaid += amount
	inv.UpdatedAt = now
	inv.RefreshStatus(now)
	return nil
}

// ReversePayment takes a refunded amount off AmountPaid.
func (inv *Invoice) ReversePayment(amount int64, now time.Time) error {
	if amount > inv.AmountPaid {
		return apperr.Conflictf("invoice %s has only %d paid", inv.Number, inv.AmountPaid)
	}
	inv.AmountPaid -= amount
	inv.UpdatedAt = now
	inv.RefreshStatus(now)
	return nil
}

// Cancel voids an invoice nothing was paid on.
func (inv *Invoice) Cancel(now time.Time) error {
	if inv.Status == StatusCancelled || inv.Status == StatusPaid || inv.AmountPaid > 0 {
		return apperr.Conflictf("invoice %s cannot be cancelled", inv.Number)
	}
	inv.Status = StatusCancelled
	inv.UpdatedAt = now
	return nil
}

// Issue moves a draft to unpaid.
func (inv *Invoice) Issue(now time.Time) error {
	if inv.Status != StatusDraft {
		return apperr.Conflictf("invoice %s is not a draft", inv.Number)
	}
	inv.Status = StatusUnpaid
	inv.UpdatedAt = now
	inv.SettleIfFree(now)
	return nil
}

// SettleIfFree marks an issued invoice with nothing to pay as paid. Payments
// must be positive, so a zero total could otherwise never be settled.
func (inv *Invoice) SettleIfFree(now time.Time) {
	if inv.Total == 0 && inv.AmountPaid == 0 {
		inv.RefreshStatus(now)
	}
}

// IsOverdueAt reports whether an open invoice is past its due date.
func (inv *Invoice) IsOverdueAt(now time.Time) bool {
	return (inv.Status == StatusUnpaid || inv.Status == StatusPartiallyPaid) && inv.DueDate.Before(now)
}

// NextChild builds the next invoice of a recurring series. Number and ID are left to the caller.
func (inv *Invoice) NextChild(now time.Time) *Invoice {
	issue := *inv.Recurrence.NextIssueDate
	items := make([]InvoiceItem, len(inv.Items))
	copy(items, inv.Items)
	parentID := inv.ID

	return &Invoice{
		UserID:               inv.UserID,
		ServiceApplicationID: inv.ServiceApplicationID,
		Items:                items,
		Currency:             inv.Currency,
		TaxPercent:           inv.TaxPercent,
		Discount:             inv.Discount,
		Status:               StatusUnpaid,
		IssueDate:            issue,
		DueDate:              issue.Add(inv.DueDate.Sub(inv.IssueDate)),
		Recurrence:           Recurrence{Frequency: FrequencyNone},
		ParentInvoiceID:      &parentID,
		Notes:                inv.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// AdvanceRecurrence moves NextIssueDate one period forward.
func (inv *Invoice) AdvanceRecurrence() error {
	next, err := NextDate(*inv.Recurrence.NextIssueDate, inv.Recurrence.Frequency)
	if err != nil {
		return err
	}
	inv.Recurrence.NextIssueDate = &next
	return nil
}

// FormattedTotal renders the total for display
func (inv *Invoice) FormattedTotal() string {
	return money.Format(inv.Total, inv.Currency)
}

// FormattedBalanceDue renders the open balance for display
func (inv *Invoice) FormattedBalanceDue() string {
	return money.Format(inv.BalanceDue(), inv.Currency)
}

// FormatNumber renders an invoice number such as INV-2026-000042.
func FormatNumber(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%04d-%06d", prefix, year, seq)
}

// NextDate returns from advanced by one period of frequency. Month based
// periods clamp the day to the end of the target month, so Jan 31 + 1 month is Feb 28 (29).
func NextDate(from time.Time, frequency string) (time.Time, error) {
	switch frequency {
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7), nil
	case FrequencyMonthly:
		return addMonths(from, 1), nil
	case FrequencyQuarterly:
		return addMonths(from, 3), nil
	case FrequencyYearly:
		return addMonths(from, 12), nil
	}
	return time.Time{}, apperr.Invalidf("frequency %q does not recur", frequency)
}

func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(first.Year(), first.Month(), t.Location()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// InvoiceQuery filters the invoice listing
type InvoiceQuery struct {
	UserID               string `validate:"omitempty,uuid4"`
	ServiceApplicationID string `validate:"omitempty,uuid4"`
	Status               string `validate:"omitempty,oneof=draft unpaid partially_paid paid overdue cancelled"`
	Limit                int    `validate:"omitempty,gt=0,max=200"`
	Offset               int    `validate:"omitempty,gte=0"`
	SortBy               string `validate:"omitempty,oneof=issue_date due_date total created_at number"`
	SortOrder            string `validate:"omitempty,oneof=asc desc"`
}

// NewInvoiceQuery creates an InvoiceQuery with default paging
func NewInvoiceQuery() *InvoiceQuery {
	return &InvoiceQuery{Limit: 50}
}

// Validate for validating InvoiceQuery struct
func (q *InvoiceQuery) Validate() error {
	return validators.Struct(q)
}
