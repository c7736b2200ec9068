package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/billing"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/services"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/txn"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/wallets"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"github.com/google/uuid"
)

// invoiceService implements the InvoiceService interface
type invoiceService struct {
	invoiceRepo billing.InvoiceRepository
	paymentRepo billing.PaymentRepository
	wallets     wallets.WalletService
	transactor  txn.Transactor
	settings    config.BillingSettings
	logger      logger.Logger
	now         func() time.Time
}

// NewInvoiceService creates a new invoiceService instance
func NewInvoiceService(
	invoiceRepo billing.InvoiceRepository,
	paymentRepo billing.PaymentRepository,
	walletService wallets.WalletService,
	transactor txn.Transactor,
	settings *config.BillingSettings,
	logger logger.Logger,
) (billing.InvoiceService, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		wallets:     walletService,
		transactor:  transactor,
		settings:    *settings,
		logger:      logger,
		now:         time.Now,
	}, nil
}

// Create totals, numbers and stores an invoice. Missing currency, dates and
// recurrence fall back to the billing defaults.
func (s *invoiceService) Create(ctx context.Context, invoice *billing.Invoice) (*billing.Invoice, error) {
	now := s.now().UTC()

	switch invoice.Status {
	case "":
		invoice.Status = billing.StatusUnpaid
	case billing.StatusDraft, billing.StatusUnpaid:
	default:
		return nil, apperr.NewValidationError("Status", "oneof=draft unpaid")
	}
	if invoice.Currency == "" {
		invoice.Currency = s.settings.Currency
	}
	if invoice.IssueDate.IsZero() {
		invoice.IssueDate = now
	}
	invoice.IssueDate = invoice.IssueDate.UTC()
	if invoice.DueDate.IsZero() {
		invoice.DueDate = invoice.IssueDate.AddDate(0, 0, s.settings.DueDays)
	}
	invoice.DueDate = invoice.DueDate.UTC()
	if invoice.Recurrence.Frequency == "" {
		invoice.Recurrence.Frequency = billing.FrequencyNone
	}
	if invoice.Recurrence.IsRecurring() && invoice.Recurrence.NextIssueDate == nil {
		next, err := billing.NextDate(invoice.IssueDate, invoice.Recurrence.Frequency)
		if err != nil {
			return nil, err
		}
		invoice.Recurrence.NextIssueDate = &next
	}
	invoice.AmountPaid = 0
	invoice.PaidAt = nil
	if err := invoice.Recalculate(); err != nil {
		return nil, err
	}

	if err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.insert(ctx, invoice, now)
	}); err != nil {
		return nil, err
	}
	return invoice, nil
}

// insert numbers and stores an already totalled invoice; callers run it inside a transaction
func (s *invoiceService) insert(ctx context.Context, invoice *billing.Invoice, now time.Time) error {
	year := invoice.IssueDate.Year()
	seq, err := s.invoiceRepo.NextSequence(ctx, year)
	if err != nil {
		return err
	}

	invoice.ID = uuid.NewString()
	invoice.Number = billing.FormatNumber(s.settings.NumberPrefix, year, seq)
	invoice.CreatedAt = now
	invoice.UpdatedAt = now
	invoice.SettleIfFree(now)

	if err := invoice.Validate(); err != nil {
		return err
	}
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return fmt.Errorf("%w", err)
	}

	s.logger.Info("Issued invoice ", invoice.Number, " for ", invoice.FormattedTotal())
	return nil
}

// IssueForApplication bills the applicant the application's agreed price.
// The price already carries tax and fees, so the invoice adds no tax of its own.
func (s *invoiceService) IssueForApplication(ctx context.Context, application *services.ServiceApplication, description string) (*billing.Invoice, error) {
	applicationID := application.ID
	invoice := &billing.Invoice{
		UserID:               application.UserID,
		ServiceApplicationID: &applicationID,
		Items: []billing.InvoiceItem{{
			Description: description,
			Quantity:    1,
			UnitPrice:   application.Price,
		}},
		Currency: application.Currency,
		Notes:    "Application " + application.ReferenceNo,
	}
	return s.Create(ctx, invoice)
}

// GetByID returns an invoice its owner or an admin may see
func (s *invoiceService) GetByID(ctx context.Context, principal *users.Principal, invoiceID string) (*billing.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if err := authorizeInvoice(principal, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func authorizeInvoice(principal *users.Principal, invoice *billing.Invoice) error {
	if !principal.IsAdmin() && (principal == nil || invoice.UserID != principal.UserID) {
		return apperr.Forbiddenf("invoice %s belongs to another user", invoice.ID)
	}
	return nil
}

// List returns the caller's invoices; admins see everyone's
func (s *invoiceService) List(ctx context.Context, principal *users.Principal, query *billing.InvoiceQuery) ([]*billing.Invoice, error) {
	if principal == nil {
		return nil, apperr.ErrUnauthorized
	}
	if !principal.IsAdmin() {
		query.UserID = principal.UserID
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.invoiceRepo.List(ctx, query)
}

// Issue moves a draft to unpaid
func (s *invoiceService) Issue(ctx context.Context, invoiceID string) (*billing.Invoice, error) {
	return s.mutate(ctx, invoiceID, func(invoice *billing.Invoice, now time.Time) error {
		return invoice.Issue(now)
	})
}

// Cancel voids an invoice nothing was paid on
func (s *invoiceService) Cancel(ctx context.Context, invoiceID string) (*billing.Invoice, error) {
	return s.mutate(ctx, invoiceID, func(invoice *billing.Invoice, now time.Time) error {
		return invoice.Cancel(now)
	})
}

func (s *invoiceService) mutate(ctx context.Context, invoiceID string, fn func(invoice *billing.Invoice, now time.Time) error) (*billing.Invoice, error) {
	var invoice *billing.Invoice
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		invoice, err = s.invoiceRepo.GetByIDForUpdate(ctx, invoiceID)
		if err != nil {
			return err
		}
		if err := fn(invoice, s.now().UTC()); err != nil {
			return err
		}
		return s.invoiceRepo.UpdateByID(ctx, invoice)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Invoice ", invoice.Number, " is now ", invoice.Status)
	return invoice, nil
}

// RecordPayment registers money received outside the platform
func (s *invoiceService) RecordPayment(ctx context.Context, invoiceID string, amount int64, method, reference string) (*billing.Payment, error) {
	if method == billing.MethodWallet {
		return nil, apperr.NewValidationError("Method", "wallet_payments_use_pay_with_wallet")
	}

	var payment *billing.Payment
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		invoice, err := s.invoiceRepo.GetByIDForUpdate(ctx, invoiceID)
		if err != nil {
			return err
		}
		payment, err = s.applyPayment(ctx, invoice, amount, method, strings.TrimSpace(reference))
		return err
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// PayWithWallet settles the balance due from the invoice owner's wallet
func (s *invoiceService) PayWithWallet(ctx context.Context, principal *users.Principal, invoiceID string) (*billing.Payment, error) {
	var payment *billing.Payment
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		invoice, err := s.invoiceRepo.GetByIDForUpdate(ctx, invoiceID)
		if err != nil {
			return err
		}
		if err := authorizeInvoice(principal, invoice); err != nil {
			return err
		}
		if !invoice.IsPayable() {
			return apperr.Conflictf("invoice %s is %s and accepts no payments", invoice.Number, invoice.Status)
		}

		wallet, err := s.wallets.GetOrCreate(ctx, invoice.UserID, wallets.OwnerUser)
		if err != nil {
			return err
		}
		if wallet.Currency != invoice.Currency {
			return apperr.Conflictf("wallet holds %s but invoice %s is in %s", wallet.Currency, invoice.Number, invoice.Currency)
		}

		amount := invoice.BalanceDue()
		debit, err := s.wallets.Debit(ctx, wallet.ID, amount, invoice.Number, "Payment of invoice "+invoice.Number)
		if err != nil {
			return err
		}
		payment, err = s.applyPayment(ctx, invoice, amount, billing.MethodWallet, debit.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *invoiceService) applyPayment(ctx context.Context, invoice *billing.Invoice, amount int64, method, reference string) (*billing.Payment, error) {
	now := s.now().UTC()
	if err := invoice.ApplyPayment(amount, now); err != nil {
		return nil, err
	}

	payment := &billing.Payment{
		ID:        uuid.NewString(),
		InvoiceID: invoice.ID,
		UserID:    invoice.UserID,
		Amount:    amount,
		Currency:  invoice.Currency,
		Method:    method,
		Reference: reference,
		Status:    billing.PaymentCompleted,
		PaidAt:    now,
		CreatedAt: now,
	}
	if err := payment.Validate(); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if err := s.invoiceRepo.UpdateByID(ctx, invoice); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Recorded ", method, " payment of ", amount, " on invoice ", invoice.Number, ", now ", invoice.Status)
	return payment, nil
}

// Refund marks a payment refunded and takes it off the invoice. Wallet payments go back to the wallet.
func (s *invoiceService) Refund(ctx context.Context, paymentID string) (*billing.Payment, error) {
	var payment *billing.Payment
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		payment, err = s.paymentRepo.GetByID(ctx, paymentID)
		if err != nil {
			return err
		}
		invoice, err := s.invoiceRepo.GetByIDForUpdate(ctx, payment.InvoiceID)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		if err := payment.MarkRefunded(now); err != nil {
			return err
		}
		if err := invoice.ReversePayment(payment.Amount, now); err != nil {
			return err
		}

		if payment.Method == billing.MethodWallet {
			wallet, err := s.wallets.GetOrCreate(ctx, payment.UserID, wallets.OwnerUser)
			if err != nil {
				return err
			}
			if _, err := s.wallets.Credit(ctx, wallet.ID, payment.Amount, invoice.Number, "Refund of invoice "+invoice.Number); err != nil {
				return err
			}
		}

		if err := s.paymentRepo.UpdateByID(ctx, payment); err != nil {
			return err
		}
		return s.invoiceRepo.UpdateByID(ctx, invoice)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Refunded payment ", payment.ID)
	return payment, nil
}

// ListPayments returns the payments of an invoice the caller may see
func (s *invoiceService) ListPayments(ctx context.Context, principal *users.Principal, invoiceID string) ([]*billing.Payment, error) {
	if _, err := s.GetByID(ctx, principal, invoiceID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListByInvoice(ctx, invoiceID)
}

// MarkOverdue flags open invoices past their due date
func (s *invoiceService) MarkOverdue(ctx context.Context, now time.Time) (int, error) {
	candidates, err := s.invoiceRepo.ListOverdueCandidates(ctx, now)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, candidate := range candidates {
		flagged := false
		err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
			invoice, err := s.invoiceRepo.GetByIDForUpdate(ctx, candidate.ID)
			if err != nil {
				return err
			}
			// a payment may have landed since the candidates were listed
			if !invoice.IsOverdueAt(now) {
				return nil
			}
			invoice.Status = billing.StatusOverdue
			invoice.UpdatedAt = now.UTC()
			flagged = true
			return s.invoiceRepo.UpdateByID(ctx, invoice)
		})
		if err != nil {
			return marked, fmt.Errorf("mark invoice %s overdue: %w", candidate.Number, err)
		}
		if flagged {
			marked++
		}
	}

	if marked > 0 {
		s.logger.Info("Marked ", marked, " invoices overdue")
	}
	return marked, nil
}

// GenerateRecurring issues one child invoice per due series and advances the series.
// Each series is handled in its own transaction so one failure does not block the rest.
func (s *invoiceService) GenerateRecurring(ctx context.Context, now time.Time) (int, error) {
	due, err := s.invoiceRepo.ListDueRecurring(ctx, now)
	if err != nil {
		return 0, err
	}

	created := 0
	var failed []string
	for _, candidate := range due {
		if !candidate.Recurrence.DueAt(now) {
			continue
		}
		generated := false
		err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
			parent, err := s.invoiceRepo.GetByIDForUpdate(ctx, candidate.ID)
			if err != nil {
				return err
			}
			// another run advanced the series first
			if !parent.Recurrence.DueAt(now) {
				return nil
			}
			child := parent.NextChild(now.UTC())
			if err := child.Recalculate(); err != nil {
				return err
			}
			if err := s.insert(ctx, child, now.UTC()); err != nil {
				return err
			}
			if err := parent.AdvanceRecurrence(); err != nil {
				return err
			}
			parent.UpdatedAt = now.UTC()
			generated = true
			return s.invoiceRepo.UpdateByID(ctx, parent)
		})
		if err != nil {
			s.logger.Error("Failed to generate next invoice of ", candidate.Number, ": ", err)
			failed = append(failed, candidate.Number)
			continue
		}
		if generated {
			created++
		}
	}

	if len(failed) > 0 {
		return created, fmt.Errorf("recurring generation failed for %s", strings.Join(failed, ", "))
	}
	return created, nil
}
