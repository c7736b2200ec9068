package services

import (
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/money"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/validators"
)

// Quote statuses
const (
	QuotePending   = "pending"
	QuoteAccepted  = "accepted"
	QuoteRejected  = "rejected"
	QuoteWithdrawn = "withdrawn"
)

// ServiceQuote entity
type ServiceQuote struct {
	ID                   string     `validate:"required,uuid4"`
	ServiceApplicationID string     `validate:"required,uuid4"`
	AgencyID             string     `validate:"required,uuid4"`
	Price                int64      `validate:"required,gt=0"`
	Currency             string     `validate:"required,currency"`
	ProcessingDays       int        `validate:"required,min=1,max=365"`
	Notes                string     `validate:"max=2000"`
	Status               string     `validate:"required,oneof=pending accepted rejected withdrawn"`
	ValidUntil           *time.Time `validate:"omitempty"`
	CreatedAt            time.Time  `validate:"required"`
	UpdatedAt            time.Time
}

// Validate for validating ServiceQuote struct
func (q *ServiceQuote) Validate() error {
	return validators.Struct(q)
}

// IsExpired reports whether the quote's validity window has closed.
func (q *ServiceQuote) IsExpired(now time.Time) bool {
	return q.ValidUntil != nil && now.After(*q.ValidUntil)
}

// Resolve moves a pending quote to a final status.
func (q *ServiceQuote) Resolve(status string, now time.Time) error {
	if q.Status != QuotePending {
		return apperr.Conflictf("quote %s is already %s", q.ID, q.Status)
	}
	q.Status = status
	q.UpdatedAt = now
	return nil
}

// EstimatedCompletion is the date the agency expects to finish when starting at from.
func (q *ServiceQuote) EstimatedCompletion(from time.Time) time.Time {
	return from.AddDate(0, 0, q.ProcessingDays)
}

// FormattedPrice renders the quoted price for display
func (q *ServiceQuote) FormattedPrice() string {
	return money.Format(q.Price, q.Currency)
}
