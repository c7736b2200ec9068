package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/services"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormServiceModuleRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormServiceModuleRepository creates a new GORM-based ServiceModuleRepository implementation
func NewGormServiceModuleRepository(db *gorm.DB, logger logger.Logger) (services.ServiceModuleRepository, error) {
	return &gormServiceModuleRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormServiceModuleRepository) Create(ctx context.Context, module *services.ServiceModule) error {
	if err := module.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ServiceModuleModel{}
	model.FromDomain(module)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "create", "service module", module.Slug)
	}

	r.logger.Info("Created service module with id ", module.ID)
	return nil
}

func (r *gormServiceModuleRepository) List(ctx context.Context, query *services.ModuleQuery) ([]*services.ServiceModule, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := conn(ctx, r.db).Model(&models.ServiceModuleModel{})
	if query.Category != "" {
		dbQuery = dbQuery.Where("category = ?", query.Category)
	}
	if query.ActiveOnly {
		dbQuery = dbQuery.Where("is_active = ?", true)
	}
	if query.Name != "" {
		dbQuery = dbQuery.Where("LOWER(name) LIKE LOWER(?)"+likeEscape, "%"+escapeLike(query.Name)+"%")
	}
	dbQuery = paginate(dbQuery, query.SortBy, query.SortOrder, "sort_order", query.Limit, query.Offset)

	var modelList []*models.ServiceModuleModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch service modules: %w", err)
	}

	domainList := make([]*services.ServiceModule, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormServiceModuleRepository) GetByID(ctx context.Context, moduleID string) (*services.ServiceModule, error) {
	var model models.ServiceModuleModel
	if err := conn(ctx, r.db).Where("id = ?", moduleID).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "service module", moduleID)
	}
	return model.ToDomain(), nil
}

func (r *gormServiceModuleRepository) GetBySlug(ctx context.Context, slug string) (*services.ServiceModule, error) {
	var model models.ServiceModuleModel
	if err := conn(ctx, r.db).Where("slug = ?", slug).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "service module", slug)
	}
	return model.ToDomain(), nil
}

func (r *gormServiceModuleRepository) UpdateByID(ctx context.Context, module *services.ServiceModule) error {
	if err := module.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ServiceModuleModel{}
	model.FromDomain(module)

	if err := updateAll(conn(ctx, r.db), model, "service module", module.ID); err != nil {
		return err
	}

	r.logger.Info("Updated service module with id ", module.ID)
	return nil
}

func (r *gormServiceModuleRepository) DeleteByID(ctx context.Context, moduleID string) error {
	if err := deleteByID(conn(ctx, r.db), &models.ServiceModuleModel{}, "service module", moduleID); err != nil {
		return err
	}

	r.logger.Info("Deleted service module with id ", moduleID)
	return nil
}
