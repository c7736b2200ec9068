package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/services"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/utils"

	"github.com/google/uuid"
)

// serviceModuleService implements the ServiceModuleService interface
type serviceModuleService struct {
	moduleRepo services.ServiceModuleRepository
	logger     logger.Logger
	now        func() time.Time
}

// NewServiceModuleService creates a new serviceModuleService instance
func NewServiceModuleService(moduleRepo services.ServiceModuleRepository, logger logger.Logger) (services.ServiceModuleService, error) {
	return &serviceModuleService{moduleRepo: moduleRepo, logger: logger, now: time.Now}, nil
}

// Create stores a new module, deriving the slug from the name when it is empty
func (s *serviceModuleService) Create(ctx context.Context, module *services.ServiceModule) (*services.ServiceModule, error) {
	module.ID = uuid.NewString()
	if module.Slug == "" {
		module.Slug = utils.Slugify(module.Name)
	}
	module.CreatedAt = s.now().UTC()
	module.UpdatedAt = module.CreatedAt

	if err := module.Validate(); err != nil {
		return nil, err
	}
	if err := s.moduleRepo.Create(ctx, module); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return module, nil
}

// List returns modules matching query
func (s *serviceModuleService) List(ctx context.Context, query *services.ModuleQuery) ([]*services.ServiceModule, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.moduleRepo.List(ctx, query)
}

// GetByID returns one module
func (s *serviceModuleService) GetByID(ctx context.Context, moduleID string) (*services.ServiceModule, error) {
	return s.moduleRepo.GetByID(ctx, moduleID)
}

// GetBySlug returns one module
func (s *serviceModuleService) GetBySlug(ctx context.Context, slug string) (*services.ServiceModule, error) {
	return s.moduleRepo.GetBySlug(ctx, slug)
}

// Update replaces the editable fields of an existing module
func (s *serviceModuleService) Update(ctx context.Context, module *services.ServiceModule) (*services.ServiceModule, error) {
	existing, err := s.moduleRepo.GetByID(ctx, module.ID)
	if err != nil {
		return nil, err
	}
	if module.Slug == "" {
		module.Slug = utils.Slugify(module.Name)
	}
	module.CreatedAt = existing.CreatedAt
	module.UpdatedAt = s.now().UTC()

	if err := module.Validate(); err != nil {
		return nil, err
	}
	if err := s.moduleRepo.UpdateByID(ctx, module); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return module, nil
}

// DeleteByID removes a module
func (s *serviceModuleService) DeleteByID(ctx context.Context, moduleID string) error {
	return s.moduleRepo.DeleteByID(ctx, moduleID)
}
