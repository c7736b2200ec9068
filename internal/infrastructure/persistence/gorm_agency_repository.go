package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/agencies"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAgencyRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAgencyRepository creates a new GORM-based AgencyRepository implementation
func NewGormAgencyRepository(db *gorm.DB, logger logger.Logger) (agencies.AgencyRepository, error) {
	return &gormAgencyRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAgencyRepository) Create(ctx context.Context, agency *agencies.Agency) error {
	if err := agency.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AgencyModel{}
	model.FromDomain(agency)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "create", "agency", agency.Slug)
	}

	r.logger.Info("Created agency with id ", agency.ID)
	return nil
}

func (r *gormAgencyRepository) List(ctx context.Context, query *agencies.AgencyQuery) ([]*agencies.Agency, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := conn(ctx, r.db).Model(&models.AgencyModel{})
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.Country != "" {
		dbQuery = dbQuery.Where("country = ?", query.Country)
	}
	dbQuery = paginate(dbQuery, query.SortBy, query.SortOrder, "name", query.Limit, query.Offset)

	var modelList []*models.AgencyModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch agencies: %w", err)
	}

	domainList := make([]*agencies.Agency, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormAgencyRepository) GetByID(ctx context.Context, agencyID string) (*agencies.Agency, error) {
	var model models.AgencyModel
	if err := conn(ctx, r.db).Where("id = ?", agencyID).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "agency", agencyID)
	}
	return model.ToDomain(), nil
}

func (r *gormAgencyRepository) UpdateByID(ctx context.Context, agency *agencies.Agency) error {
	if err := agency.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AgencyModel{}
	model.FromDomain(agency)

	if err := updateAll(conn(ctx, r.db), model, "agency", agency.ID); err != nil {
		return err
	}

	r.logger.Info("Updated agency with id ", agency.ID)
	return nil
}

func (r *gormAgencyRepository) DeleteByID(ctx context.Context, agencyID string) error {
	if err := deleteByID(conn(ctx, r.db), &models.AgencyModel{}, "agency", agencyID); err != nil {
		return err
	}

	r.logger.Info("Deleted agency with id ", agencyID)
	return nil
}
