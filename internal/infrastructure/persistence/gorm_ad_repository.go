package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/content"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAdRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAdRepository creates a new GORM-based AdRepository implementation
func NewGormAdRepository(db *gorm.DB, logger logger.Logger) (content.AdRepository, error) {
	return &gormAdRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAdRepository) Create(ctx context.Context, ad *content.Ad) error {
	if err := ad.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AdModel{}
	model.FromDomain(ad)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "create", "ad", ad.ID)
	}

	r.logger.Info("Created ", ad.Placement, " ad with id ", ad.ID)
	return nil
}

func (r *gormAdRepository) GetByID(ctx context.Context, adID string) (*content.Ad, error) {
	var model models.AdModel
	if err := conn(ctx, r.db).Where("id = ?", adID).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "ad", adID)
	}
	return model.ToDomain(), nil
}

func (r *gormAdRepository) List(ctx context.Context, query *content.AdQuery) ([]*content.Ad, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := conn(ctx, r.db).Model(&models.AdModel{})
	if query.Placement != "" {
		dbQuery = dbQuery.Where("placement = ?", query.Placement)
	}
	if query.Active != nil {
		dbQuery = dbQuery.Where("is_active = ?", *query.Active)
	}
	dbQuery = paginate(dbQuery, "priority", "desc", "priority", query.Limit, query.Offset)

	var modelList []*models.AdModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch ads: %w", err)
	}
	return adsToDomain(modelList), nil
}

func (r *gormAdRepository) ListActiveByPlacement(ctx context.Context, placement string) ([]*content.Ad, error) {
	var modelList []*models.AdModel
	err := conn(ctx, r.db).
		Where("placement = ? AND is_active = ?", placement, true).
		Order("priority desc").
		Order("created_at asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ads: %w", err)
	}
	return adsToDomain(modelList), nil
}

func (r *gormAdRepository) UpdateByID(ctx context.Context, ad *content.Ad) error {
	if err := ad.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AdModel{}
	model.FromDomain(ad)

	if err := updateAll(conn(ctx, r.db), model, "ad", ad.ID); err != nil {
		return err
	}

	r.logger.Info("Updated ad with id ", ad.ID)
	return nil
}

func (r *gormAdRepository) DeleteByID(ctx context.Context, adID string) error {
	if err := deleteByID(conn(ctx, r.db), &models.AdModel{}, "ad", adID); err != nil {
		return err
	}

	r.logger.Info("Deleted ad with id ", adID)
	return nil
}

// IncrementImpressions bumps the counters in SQL so concurrent fetches are never lost
func (r *gormAdRepository) IncrementImpressions(ctx context.Context, adIDs ...string) error {
	if len(adIDs) == 0 {
		return nil
	}
	err := conn(ctx, r.db).Model(&models.AdModel{}).
		Where("id IN ?", adIDs).
		UpdateColumn("impressions", gorm.Expr("impressions + ?", 1)).Error
	if err != nil {
		return fmt.Errorf("failed to count impressions: %w", err)
	}
	return nil
}

func (r *gormAdRepository) IncrementClicks(ctx context.Context, adID string) error {
	res := conn(ctx, r.db).Model(&models.AdModel{}).
		Where("id = ?", adID).
		UpdateColumn("clicks", gorm.Expr("clicks + ?", 1))
	if res.Error != nil {
		return fmt.Errorf("failed to count click: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "fetch", "ad", adID)
	}
	return nil
}

func adsToDomain(modelList []*models.AdModel) []*content.Ad {
	domainList := make([]*content.Ad, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList
}
