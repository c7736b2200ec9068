package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/services"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormServiceApplicationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormServiceApplicationRepository creates a new GORM-based ServiceApplicationRepository implementation
func NewGormServiceApplicationRepository(db *gorm.DB, logger logger.Logger) (services.ServiceApplicationRepository, error) {
	return &gormServiceApplicationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormServiceApplicationRepository) Create(ctx context.Context, application *services.ServiceApplication) error {
	if err := application.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ServiceApplicationModel{}
	model.FromDomain(application)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "create", "service application", application.ReferenceNo)
	}

	r.logger.Info("Created service application ", application.ReferenceNo, " with id ", application.ID)
	return nil
}

func (r *gormServiceApplicationRepository) List(ctx context.Context, query *services.ApplicationQuery) ([]*services.ServiceApplication, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := conn(ctx, r.db).Model(&models.ServiceApplicationModel{})
	if query.UserID != "" {
		dbQuery = dbQuery.Where("user_id = ?", query.UserID)
	}
	if query.ServiceModuleID != "" {
		dbQuery = dbQuery.Where("service_module_id = ?", query.ServiceModuleID)
	}
	if query.AgencyID != "" {
		dbQuery = dbQuery.Where("agency_id = ?", query.AgencyID)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	sortOrder := query.SortOrder
	if query.SortBy == "" && sortOrder == "" {
		sortOrder = "desc"
	}
	dbQuery = paginate(dbQuery, query.SortBy, sortOrder, "submitted_at", query.Limit, query.Offset)

	var modelList []*models.ServiceApplicationModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch service applications: %w", err)
	}

	domainList := make([]*services.ServiceApplication, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormServiceApplicationRepository) GetByID(ctx context.Context, applicationID string) (*services.ServiceApplication, error) {
	var model models.ServiceApplicationModel
	if err := conn(ctx, r.db).Where("id = ?", applicationID).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "service application", applicationID)
	}
	return model.ToDomain(), nil
}

func (r *gormServiceApplicationRepository) GetByIDForUpdate(ctx context.Context, applicationID string) (*services.ServiceApplication, error) {
	var model models.ServiceApplicationModel
	if err := forUpdate(conn(ctx, r.db)).Where("id = ?", applicationID).First(&model).Error; err != nil {
		return nil, translate(err, "lock", "service application", applicationID)
	}
	return model.ToDomain(), nil
}

func (r *gormServiceApplicationRepository) UpdateByID(ctx context.Context, application *services.ServiceApplication) error {
	if err := application.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ServiceApplicationModel{}
	model.FromDomain(application)

	if err := updateAll(conn(ctx, r.db), model, "service application", application.ID); err != nil {
		return err
	}

	r.logger.Info("Updated service application ", application.ReferenceNo, " status ", application.Status)
	return nil
}
