package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/agencies"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/billing"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/services"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/txn"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"github.com/google/uuid"
)

// serviceQuoteService implements the ServiceQuoteService interface
type serviceQuoteService struct {
	quoteRepo       services.ServiceQuoteRepository
	applicationRepo services.ServiceApplicationRepository
	moduleRepo      services.ServiceModuleRepository
	agencyRepo      agencies.AgencyRepository
	invoices        billing.InvoiceService
	transactor      txn.Transactor
	logger          logger.Logger
	now             func() time.Time
}

// NewServiceQuoteService creates a new serviceQuoteService instance
func NewServiceQuoteService(
	quoteRepo services.ServiceQuoteRepository,
	applicationRepo services.ServiceApplicationRepository,
	moduleRepo services.ServiceModuleRepository,
	agencyRepo agencies.AgencyRepository,
	invoiceService billing.InvoiceService,
	transactor txn.Transactor,
	logger logger.Logger,
) (services.ServiceQuoteService, error) {
	return &serviceQuoteService{
		quoteRepo:       quoteRepo,
		applicationRepo: applicationRepo,
		moduleRepo:      moduleRepo,
		agencyRepo:      agencyRepo,
		invoices:        invoiceService,
		transactor:      transactor,
		logger:          logger,
		now:             time.Now,
	}, nil
}

// Submit records an agency's offer. An agency holds at most one pending quote per application.
func (s *serviceQuoteService) Submit(ctx context.Context, principal *users.Principal, applicationID string, price int64, processingDays int, notes string, validUntil *time.Time) (*services.ServiceQuote, error) {
	if !principal.IsAgency() {
		return nil, apperr.Forbiddenf("only agencies may submit quotes")
	}
	now := s.now().UTC()
	if validUntil != nil {
		if !validUntil.After(now) {
			return nil, apperr.NewValidationError("ValidUntil", "future")
		}
		utc := validUntil.UTC()
		validUntil = &utc
	}

	var quote *services.ServiceQuote
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		agency, err := s.agencyRepo.GetByID(ctx, principal.AgencyID)
		if err != nil {
			return err
		}
		if !agency.IsActive() {
			return apperr.Conflictf("agency %s is %s", agency.Slug, agency.Status)
		}

		// the application row lock serialises quoting so the pending check holds
		application, err := s.applicationRepo.GetByIDForUpdate(ctx, applicationID)
		if err != nil {
			return err
		}
		if application.AgencyID != nil && *application.AgencyID != agency.ID {
			return apperr.Forbiddenf("application %s is assigned to another agency", application.ReferenceNo)
		}
		if !agency.Handles(application.ServiceModuleID) {
			return apperr.Forbiddenf("agency %s does not handle this service", agency.Slug)
		}
		if !application.AcceptsQuotes() {
			return apperr.Conflictf("application %s is %s and not open for quotes", application.ReferenceNo, application.Status)
		}

		pending, err := s.quoteRepo.CountPending(ctx, application.ID, agency.ID)
		if err != nil {
			return err
		}
		if pending > 0 {
			return apperr.Conflictf("agency %s already has a pending quote on %s", agency.Slug, application.ReferenceNo)
		}

		quote = &services.ServiceQuote{
			ID:                   uuid.NewString(),
			ServiceApplicationID: application.ID,
			AgencyID:             agency.ID,
			Price:                price,
			Currency:             application.Currency,
			ProcessingDays:       processingDays,
			Notes:                strings.TrimSpace(notes),
			Status:               services.QuotePending,
			ValidUntil:           validUntil,
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		if err := quote.Validate(); err != nil {
			return err
		}
		if err := s.quoteRepo.Create(ctx, quote); err != nil {
			return err
		}

		if application.Status == services.StatusUnderReview {
			if err := application.TransitionTo(services.StatusQuoted, now); err != nil {
				return err
			}
			return s.applicationRepo.UpdateByID(ctx, application)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Agency ", quote.AgencyID, " quoted ", quote.FormattedPrice(), " on application ", applicationID)
	return quote, nil
}

// ListByApplication returns all quotes of an application the caller may see.
// Agencies only see their own quotes.
func (s *serviceQuoteService) ListByApplication(ctx context.Context, principal *users.Principal, applicationID string) ([]*services.ServiceQuote, error) {
	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !canView(principal, application) {
		return nil, apperr.Forbiddenf("application %s is not visible to you", applicationID)
	}

	quotes, err := s.quoteRepo.ListByApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !principal.IsAgency() {
		return quotes, nil
	}
	own := make([]*services.ServiceQuote, 0, len(quotes))
	for _, q := range quotes {
		if q.AgencyID == principal.AgencyID {
			own = append(own, q)
		}
	}
	return own, nil
}

// Accept accepts a pending quote on behalf of the applicant or an admin. In one
// transaction the competing quotes are rejected, the application is approved at
// the quoted price and the applicant is invoiced.
func (s *serviceQuoteService) Accept(ctx context.Context, principal *users.Principal, quoteID string) (*services.ServiceQuote, error) {
	var quote *services.ServiceQuote
	var invoice *billing.Invoice
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var application *services.ServiceApplication
		var err error
		quote, application, err = s.lockQuote(ctx, quoteID)
		if err != nil {
			return err
		}
		if !canDecide(principal, application) {
			return apperr.Forbiddenf("only the applicant or an admin may accept quote %s", quoteID)
		}

		now := s.now().UTC()
		if quote.IsExpired(now) {
			return apperr.Conflictf("quote %s expired on %s", quote.ID, quote.ValidUntil.Format(services.DateLayout))
		}
		if err := quote.Resolve(services.QuoteAccepted, now); err != nil {
			return err
		}
		if err := application.TransitionTo(services.StatusApproved, now); err != nil {
			return err
		}
		if err := s.quoteRepo.UpdateByID(ctx, quote); err != nil {
			return err
		}

		others, err := s.quoteRepo.ListByApplication(ctx, application.ID)
		if err != nil {
			return err
		}
		for _, other := range others {
			if other.ID == quote.ID || other.Status != services.QuotePending {
				continue
			}
			if err := other.Resolve(services.QuoteRejected, now); err != nil {
				return err
			}
			if err := s.quoteRepo.UpdateByID(ctx, other); err != nil {
				return err
			}
		}

		application.AgencyID = &quote.AgencyID
		application.AcceptedQuoteID = &quote.ID
		application.Price = quote.Price
		application.Currency = quote.Currency
		if err := s.applicationRepo.UpdateByID(ctx, application); err != nil {
			return err
		}

		description := application.ReferenceNo
		if module, err := s.moduleRepo.GetByID(ctx, application.ServiceModuleID); err == nil {
			description = fmt.Sprintf("%s (%s)", module.Name, application.ReferenceNo)
		}
		invoice, err = s.invoices.IssueForApplication(ctx, application, description)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Accepted quote ", quote.ID, ", invoiced as ", invoice.Number)
	return quote, nil
}

// Reject turns down a pending quote. When no pending quotes remain on a quoted
// application it goes back to under review.
func (s *serviceQuoteService) Reject(ctx context.Context, principal *users.Principal, quoteID string) (*services.ServiceQuote, error) {
	return s.resolve(ctx, quoteID, services.QuoteRejected, func(quote *services.ServiceQuote, application *services.ServiceApplication) bool {
		return canDecide(principal, application)
	})
}

// Withdraw lets the quoting agency pull its pending quote
func (s *serviceQuoteService) Withdraw(ctx context.Context, principal *users.Principal, quoteID string) (*services.ServiceQuote, error) {
	return s.resolve(ctx, quoteID, services.QuoteWithdrawn, func(quote *services.ServiceQuote, application *services.ServiceApplication) bool {
		return principal.IsAdmin() || (principal.IsAgency() && principal.AgencyID == quote.AgencyID)
	})
}

func (s *serviceQuoteService) resolve(ctx context.Context, quoteID, status string, allowed func(*services.ServiceQuote, *services.ServiceApplication) bool) (*services.ServiceQuote, error) {
	var quote *services.ServiceQuote
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var application *services.ServiceApplication
		var err error
		quote, application, err = s.lockQuote(ctx, quoteID)
		if err != nil {
			return err
		}
		if !allowed(quote, application) {
			return apperr.Forbiddenf("quote %s cannot be %s by you", quoteID, status)
		}

		now := s.now().UTC()
		if err := quote.Resolve(status, now); err != nil {
			return err
		}
		if err := s.quoteRepo.UpdateByID(ctx, quote); err != nil {
			return err
		}

		if application.Status != services.StatusQuoted {
			return nil
		}
		pending, err := s.quoteRepo.CountPending(ctx, application.ID, "")
		if err != nil {
			return err
		}
		if pending > 0 {
			return nil
		}
		if err := application.TransitionTo(services.StatusUnderReview, now); err != nil {
			return err
		}
		return s.applicationRepo.UpdateByID(ctx, application)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Quote ", quote.ID, " is now ", quote.Status)
	return quote, nil
}

// lockQuote loads a quote and its application under row locks. The application
// is locked before the quote, the same order Submit takes.
func (s *serviceQuoteService) lockQuote(ctx context.Context, quoteID string) (*services.ServiceQuote, *services.ServiceApplication, error) {
	unlocked, err := s.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, nil, err
	}
	application, err := s.applicationRepo.GetByIDForUpdate(ctx, unlocked.ServiceApplicationID)
	if err != nil {
		return nil, nil, err
	}
	quote, err := s.quoteRepo.GetByIDForUpdate(ctx, quoteID)
	if err != nil {
		return nil, nil, err
	}
	return quote, application, nil
}

// canDecide grants the applicant and admins the right to accept or reject quotes
func canDecide(principal *users.Principal, application *services.ServiceApplication) bool {
	return principal.IsAdmin() || (principal != nil && !principal.IsAgency() && principal.UserID == application.UserID)
}
