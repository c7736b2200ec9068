package billing

import (
	"context"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/services"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
)

// InvoiceService issues invoices and collects payments.
type InvoiceService interface {
	// Create totals the invoice, numbers it and stores it as unpaid, or as draft when requested.
	Create(ctx context.Context, invoice *Invoice) (*Invoice, error)

	// IssueForApplication bills the applicant for an approved application.
	IssueForApplication(ctx context.Context, application *services.ServiceApplication, description string) (*Invoice, error)

	GetByID(ctx context.Context, principal *users.Principal, invoiceID string) (*Invoice, error)
	List(ctx context.Context, principal *users.Principal, query *InvoiceQuery) ([]*Invoice, error)
	Issue(ctx context.Context, invoiceID string) (*Invoice, error)
	Cancel(ctx context.Context, invoiceID string) (*Invoice, error)

	// RecordPayment registers money received outside the platform.
	RecordPayment(ctx context.Context, invoiceID string, amount int64, method, reference string) (*Payment, error)

	// PayWithWallet settles the balance due from the owner's wallet.
	PayWithWallet(ctx context.Context, principal *users.Principal, invoiceID string) (*Payment, error)

	Refund(ctx context.Context, paymentID string) (*Payment, error)
	ListPayments(ctx context.Context, principal *users.Principal, invoiceID string) ([]*Payment, error)

	// MarkOverdue flags open invoices past their due date and returns how many changed.
	MarkOverdue(ctx context.Context, now time.Time) (int, error)

	// GenerateRecurring issues the next invoice of every due series and returns how many were created.
	GenerateRecurring(ctx context.Context, now time.Time) (int, error)
}

// InvoiceRepository defines the interface for Invoice-related operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *Invoice) error
	GetByID(ctx context.Context, invoiceID string) (*Invoice, error)
	// GetByIDForUpdate is GetByID holding a row lock until the transaction in ctx ends.
	GetByIDForUpdate(ctx context.Context, invoiceID string) (*Invoice, error)
	List(ctx context.Context, query *InvoiceQuery) ([]*Invoice, error)
	UpdateByID(ctx context.Context, invoice *Invoice) error
	// NextSequence returns the next invoice sequence number for year, starting at 1.
	NextSequence(ctx context.Context, year int) (int64, error)
	ListDueRecurring(ctx context.Context, now time.Time) ([]*Invoice, error)
	ListOverdueCandidates(ctx context.Context, now time.Time) ([]*Invoice, error)
}

// PaymentRepository defines the interface for Payment-related operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, paymentID string) (*Payment, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]*Payment, error)
	UpdateByID(ctx context.Context, payment *Payment) error
}
