package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/agencies"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/utils"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/validators"

	"github.com/google/uuid"
)

// agencyService implements the AgencyService interface
type agencyService struct {
	agencyRepo agencies.AgencyRepository
	logger     logger.Logger
	now        func() time.Time
}

// NewAgencyService creates a new agencyService instance
func NewAgencyService(agencyRepo agencies.AgencyRepository, logger logger.Logger) (agencies.AgencyService, error) {
	return &agencyService{agencyRepo: agencyRepo, logger: logger, now: time.Now}, nil
}

// Create onboards an agency; new agencies start active unless told otherwise
func (s *agencyService) Create(ctx context.Context, agency *agencies.Agency) (*agencies.Agency, error) {
	agency.ID = uuid.NewString()
	if agency.Slug == "" {
		agency.Slug = utils.Slugify(agency.Name)
	}
	if agency.Status == "" {
		agency.Status = agencies.StatusActive
	}
	agency.CreatedAt = s.now().UTC()
	agency.UpdatedAt = agency.CreatedAt

	if err := agency.Validate(); err != nil {
		return nil, err
	}
	if err := s.agencyRepo.Create(ctx, agency); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return agency, nil
}

// List returns agencies matching query
func (s *agencyService) List(ctx context.Context, query *agencies.AgencyQuery) ([]*agencies.Agency, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.agencyRepo.List(ctx, query)
}

// GetByID returns one agency
func (s *agencyService) GetByID(ctx context.Context, agencyID string) (*agencies.Agency, error) {
	return s.agencyRepo.GetByID(ctx, agencyID)
}

// Update replaces the editable fields of an agency. Status changes go through SetStatus.
func (s *agencyService) Update(ctx context.Context, agency *agencies.Agency) (*agencies.Agency, error) {
	existing, err := s.agencyRepo.GetByID(ctx, agency.ID)
	if err != nil {
		return nil, err
	}
	if agency.Slug == "" {
		agency.Slug = existing.Slug
	}
	agency.Status = existing.Status
	agency.CreatedAt = existing.CreatedAt
	agency.UpdatedAt = s.now().UTC()

	if err := agency.Validate(); err != nil {
		return nil, err
	}
	if err := s.agencyRepo.UpdateByID(ctx, agency); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return agency, nil
}

// SetStatus suspends or re-activates an agency
func (s *agencyService) SetStatus(ctx context.Context, agencyID, status string) (*agencies.Agency, error) {
	if err := validators.Var("Status", status, "required,oneof=active suspended"); err != nil {
		return nil, err
	}
	agency, err := s.agencyRepo.GetByID(ctx, agencyID)
	if err != nil {
		return nil, err
	}
	if agency.Status == status {
		return agency, nil
	}

	agency.Status = status
	agency.UpdatedAt = s.now().UTC()
	if err := s.agencyRepo.UpdateByID(ctx, agency); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Agency ", agency.ID, " is now ", status)
	return agency, nil
}

// DeleteByID removes an agency
func (s *agencyService) DeleteByID(ctx context.Context, agencyID string) error {
	return s.agencyRepo.DeleteByID(ctx, agencyID)
}
