package app

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/agencies"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/documents"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/services"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/txn"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/wallets"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/utils"

	"github.com/google/uuid"
)

// serviceApplicationService implements the ServiceApplicationService interface
type serviceApplicationService struct {
	applicationRepo services.ServiceApplicationRepository
	moduleRepo      services.ServiceModuleRepository
	agencyRepo      agencies.AgencyRepository
	wallets         wallets.WalletService
	documents       documents.DocumentConnector
	transactor      txn.Transactor
	maxDocumentSize int64
	logger          logger.Logger
	now             func() time.Time
}

// NewServiceApplicationService creates a new serviceApplicationService instance.
// Attached documents larger than maxDocumentSize bytes are rejected.
func NewServiceApplicationService(
	applicationRepo services.ServiceApplicationRepository,
	moduleRepo services.ServiceModuleRepository,
	agencyRepo agencies.AgencyRepository,
	walletService wallets.WalletService,
	documentConnector documents.DocumentConnector,
	transactor txn.Transactor,
	maxDocumentSize int64,
	logger logger.Logger,
) (services.ServiceApplicationService, error) {
	if maxDocumentSize <= 0 {
		return nil, fmt.Errorf("max document size must be positive")
	}
	return &serviceApplicationService{
		applicationRepo: applicationRepo,
		moduleRepo:      moduleRepo,
		agencyRepo:      agencyRepo,
		wallets:         walletService,
		documents:       documentConnector,
		transactor:      transactor,
		maxDocumentSize: maxDocumentSize,
		logger:          logger,
		now:             time.Now,
	}, nil
}

// Submit validates formData against the module form and stores a pending application priced from the module
func (s *serviceApplicationService) Submit(ctx context.Context, principal *users.Principal, moduleSlug string, formData map[string]interface{}) (*services.ServiceApplication, error) {
	if principal == nil {
		return nil, apperr.ErrUnauthorized
	}
	module, err := s.moduleRepo.GetBySlug(ctx, moduleSlug)
	if err != nil {
		return nil, err
	}
	if !module.IsActive {
		return nil, apperr.Conflictf("service %s is not accepting applications", module.Slug)
	}
	if formData == nil {
		formData = map[string]interface{}{}
	}
	if err := module.ValidateFormData(formData); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	application := &services.ServiceApplication{
		ID:              uuid.NewString(),
		ReferenceNo:     services.NewReferenceNo(now),
		UserID:          principal.UserID,
		ServiceModuleID: module.ID,
		FormData:        formData,
		Status:          services.StatusPending,
		Price:           module.Pricing.Total(),
		Currency:        module.Pricing.Currency,
		SubmittedAt:     now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := application.Validate(); err != nil {
		return nil, err
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Submitted application ", application.ReferenceNo, " for ", module.Slug)
	return application, nil
}

// List scopes query to what principal may see: own applications for users,
// assigned ones for agencies, everything for admins
func (s *serviceApplicationService) List(ctx context.Context, principal *users.Principal, query *services.ApplicationQuery) ([]*services.ServiceApplication, error) {
	switch {
	case principal == nil:
		return nil, apperr.ErrUnauthorized
	case principal.IsAdmin():
	case principal.IsAgency():
		query.AgencyID = principal.AgencyID
	default:
		query.UserID = principal.UserID
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.applicationRepo.List(ctx, query)
}

// GetByID returns one application if principal may see it
func (s *serviceApplicationService) GetByID(ctx context.Context, principal *users.Principal, applicationID string) (*services.ServiceApplication, error) {
	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !canView(principal, application) {
		return nil, apperr.Forbiddenf("application %s is not visible to you", applicationID)
	}
	return application, nil
}

// canView grants the owner, admins, the assigned agency and, while quoting is open on an unassigned application, any agency
func canView(principal *users.Principal, application *services.ServiceApplication) bool {
	switch {
	case principal == nil:
		return false
	case principal.IsAdmin():
		return true
	case principal.IsAgency():
		if application.AgencyID != nil {
			return *application.AgencyID == principal.AgencyID
		}
		return application.AcceptsQuotes()
	default:
		return application.UserID == principal.UserID
	}
}

// UpdateStatus applies a staff decision. Completing an application credits the
// assigned agency's wallet with its commission in the same transaction.
func (s *serviceApplicationService) UpdateStatus(ctx context.Context, applicationID, status, notes string) (*services.ServiceApplication, error) {
	var application *services.ServiceApplication
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		application, err = s.applicationRepo.GetByIDForUpdate(ctx, applicationID)
		if err != nil {
			return err
		}
		if err := application.TransitionTo(status, s.now().UTC()); err != nil {
			return err
		}
		if notes = strings.TrimSpace(notes); notes != "" {
			application.AdminNotes = notes
		}
		if err := s.applicationRepo.UpdateByID(ctx, application); err != nil {
			return err
		}
		if status == services.StatusCompleted && application.AgencyID != nil {
			return s.payCommission(ctx, application)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Application ", application.ReferenceNo, " is now ", application.Status)
	return application, nil
}

func (s *serviceApplicationService) payCommission(ctx context.Context, application *services.ServiceApplication) error {
	agency, err := s.agencyRepo.GetByID(ctx, *application.AgencyID)
	if err != nil {
		return err
	}
	commission := agency.Commission(application.Price)
	if commission <= 0 {
		return nil
	}

	wallet, err := s.wallets.GetOrCreate(ctx, agency.ID, wallets.OwnerAgency)
	if err != nil {
		return err
	}
	if wallet.Currency != application.Currency {
		return apperr.Conflictf("agency wallet holds %s but application %s is priced in %s", wallet.Currency, application.ReferenceNo, application.Currency)
	}
	_, err = s.wallets.Credit(ctx, wallet.ID, commission, application.ReferenceNo, "Commission for "+application.ReferenceNo)
	return err
}

// Cancel lets the applicant withdraw an application that has not been approved
func (s *serviceApplicationService) Cancel(ctx context.Context, principal *users.Principal, applicationID string) (*services.ServiceApplication, error) {
	var application *services.ServiceApplication
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		application, err = s.applicationRepo.GetByIDForUpdate(ctx, applicationID)
		if err != nil {
			return err
		}
		if principal == nil || (application.UserID != principal.UserID && !principal.IsAdmin()) {
			return apperr.Forbiddenf("only the applicant may cancel application %s", applicationID)
		}
		if !application.CancellableByOwner() {
			return apperr.Conflictf("application %s is %s and can no longer be cancelled", application.ReferenceNo, application.Status)
		}
		if err := application.TransitionTo(services.StatusCancelled, s.now().UTC()); err != nil {
			return err
		}
		return s.applicationRepo.UpdateByID(ctx, application)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Application ", application.ReferenceNo, " cancelled by applicant")
	return application, nil
}

// AssignAgency hands the application to an active agency that handles its module
func (s *serviceApplicationService) AssignAgency(ctx context.Context, applicationID, agencyID string) (*services.ServiceApplication, error) {
	var application *services.ServiceApplication
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		agency, err := s.agencyRepo.GetByID(ctx, agencyID)
		if err != nil {
			return err
		}
		if !agency.IsActive() {
			return apperr.Conflictf("agency %s is %s", agency.Slug, agency.Status)
		}

		application, err = s.applicationRepo.GetByIDForUpdate(ctx, applicationID)
		if err != nil {
			return err
		}
		if !agency.Handles(application.ServiceModuleID) {
			return apperr.Conflictf("agency %s does not handle this service", agency.Slug)
		}
		if services.IsTerminal(application.Status) {
			return apperr.Conflictf("application %s is %s", application.ReferenceNo, application.Status)
		}

		application.AgencyID = &agency.ID
		application.UpdatedAt = s.now().UTC()
		return s.applicationRepo.UpdateByID(ctx, application)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Assigned application ", application.ReferenceNo, " to agency ", agencyID)
	return application, nil
}

// AttachDocument uploads the file and records it on the application. The upload
// is removed again when the application cannot be updated.
func (s *serviceApplicationService) AttachDocument(ctx context.Context, principal *users.Principal, applicationID, name, contentType string, size int64, r io.Reader) (*services.Document, error) {
	if size <= 0 {
		return nil, apperr.NewValidationError("File", "required")
	}
	if size > s.maxDocumentSize {
		return nil, apperr.NewValidationError("File", fmt.Sprintf("max=%d", s.maxDocumentSize))
	}

	application, err := s.GetByID(ctx, principal, applicationID)
	if err != nil {
		return nil, err
	}
	if services.IsTerminal(application.Status) {
		return nil, apperr.Conflictf("application %s is %s", application.ReferenceNo, application.Status)
	}

	now := s.now().UTC()
	document := services.Document{
		ID:          uuid.NewString(),
		Name:        path.Base(strings.ReplaceAll(name, "\\", "/")),
		ContentType: contentType,
		Size:        size,
		UploadedAt:  now,
	}
	document.StorageKey = documentKey(application.ID, document.ID, document.Name)

	if err := s.documents.Upload(ctx, document.StorageKey, r, size, contentType); err != nil {
		return nil, err
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.applicationRepo.GetByIDForUpdate(ctx, applicationID)
		if err != nil {
			return err
		}
		current.Documents = append(current.Documents, document)
		current.UpdatedAt = now
		return s.applicationRepo.UpdateByID(ctx, current)
	})
	if err != nil {
		if delErr := s.documents.Delete(ctx, document.StorageKey); delErr != nil {
			s.logger.Warn("Failed to remove orphaned document ", document.StorageKey, ": ", delErr)
		}
		return nil, err
	}

	s.logger.Info("Attached document ", document.ID, " to application ", application.ReferenceNo)
	return &document, nil
}

func documentKey(applicationID, documentID, name string) string {
	ext := strings.ToLower(path.Ext(name))
	base := utils.Slugify(strings.TrimSuffix(name, path.Ext(name)))
	if base == "" {
		base = "document"
	}
	return path.Join("applications", applicationID, documentID, base+ext)
}

// OpenDocument streams an attached file to a caller allowed to see the application
func (s *serviceApplicationService) OpenDocument(ctx context.Context, principal *users.Principal, applicationID, documentID string) (*services.Document, io.ReadCloser, error) {
	application, err := s.GetByID(ctx, principal, applicationID)
	if err != nil {
		return nil, nil, err
	}
	document, ok := application.FindDocument(documentID)
	if !ok {
		return nil, nil, apperr.NotFoundf("document %s not found", documentID)
	}
	rc, err := s.documents.Download(ctx, document.StorageKey)
	if err != nil {
		return nil, nil, err
	}
	return document, rc, nil
}
