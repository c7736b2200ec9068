package billing

import (
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/validators"
)

// Payment methods
const (
	MethodCard         = "card"
	MethodBankTransfer = "bank_transfer"
	MethodWallet       = "wallet"
	MethodCash         = "cash"
)

// Payment statuses
const (
	PaymentCompleted = "completed"
	PaymentRefunded  = "refunded"
)

// Payment entity
type Payment struct {
	ID         string    `validate:"required,uuid4"`
	InvoiceID  string    `validate:"required,uuid4"`
	UserID     string    `validate:"required,uuid4"`
	Amount     int64     `validate:"required,gt=0"`
	Currency   string    `validate:"required,currency"`
	Method     string    `validate:"required,oneof=card bank_transfer wallet cash"`
	Reference  string    `validate:"max=120"`
	Status     string    `validate:"required,oneof=completed refunded"`
	PaidAt     time.Time `validate:"required"`
	RefundedAt *time.Time
	CreatedAt  time.Time
}

// Validate for validating Payment struct
func (p *Payment) Validate() error {
	return validators.Struct(p)
}

// MarkRefunded flags a completed payment as refunded.
func (p *Payment) MarkRefunded(now time.Time) error {
	if p.Status != PaymentCompleted {
		return apperr.Conflictf("payment %s is already %s", p.ID, p.Status)
	}
	p.Status = PaymentRefunded
	p.RefundedAt = &now
	return nil
}
