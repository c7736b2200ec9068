package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/services"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormServiceQuoteRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormServiceQuoteRepository creates a new GORM-based ServiceQuoteRepository implementation
func NewGormServiceQuoteRepository(db *gorm.DB, logger logger.Logger) (services.ServiceQuoteRepository, error) {
	return &gormServiceQuoteRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormServiceQuoteRepository) Create(ctx context.Context, quote *services.ServiceQuote) error {
	if err := quote.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ServiceQuoteModel{}
	model.FromDomain(quote)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "create", "service quote", quote.ID)
	}

	r.logger.Info("Created quote ", quote.ID, " for application ", quote.ServiceApplicationID)
	return nil
}

func (r *gormServiceQuoteRepository) GetByID(ctx context.Context, quoteID string) (*services.ServiceQuote, error) {
	var model models.ServiceQuoteModel
	if err := conn(ctx, r.db).Where("id = ?", quoteID).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "service quote", quoteID)
	}
	return model.ToDomain(), nil
}

func (r *gormServiceQuoteRepository) GetByIDForUpdate(ctx context.Context, quoteID string) (*services.ServiceQuote, error) {
	var model models.ServiceQuoteModel
	if err := forUpdate(conn(ctx, r.db)).Where("id = ?", quoteID).First(&model).Error; err != nil {
		return nil, translate(err, "lock", "service quote", quoteID)
	}
	return model.ToDomain(), nil
}

func (r *gormServiceQuoteRepository) ListByApplication(ctx context.Context, applicationID string) ([]*services.ServiceQuote, error) {
	var modelList []*models.ServiceQuoteModel
	err := conn(ctx, r.db).
		Where("service_application_id = ?", applicationID).
		Order("created_at asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service quotes: %w", err)
	}

	domainList := make([]*services.ServiceQuote, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormServiceQuoteRepository) CountPending(ctx context.Context, applicationID, agencyID string) (int64, error) {
	dbQuery := conn(ctx, r.db).Model(&models.ServiceQuoteModel{}).
		Where("service_application_id = ? AND status = ?", applicationID, services.QuotePending)
	if agencyID != "" {
		dbQuery = dbQuery.Where("agency_id = ?", agencyID)
	}

	var count int64
	if err := dbQuery.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count pending quotes: %w", err)
	}
	return count, nil
}

func (r *gormServiceQuoteRepository) UpdateByID(ctx context.Context, quote *services.ServiceQuote) error {
	if err := quote.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ServiceQuoteModel{}
	model.FromDomain(quote)

	if err := updateAll(conn(ctx, r.db), model, "service quote", quote.ID); err != nil {
		return err
	}

	r.logger.Info("Updated quote ", quote.ID, " status ", quote.Status)
	return nil
}
