package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/content"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormSeoMetaRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSeoMetaRepository creates a new GORM-based SeoMetaRepository implementation
func NewGormSeoMetaRepository(db *gorm.DB, logger logger.Logger) (content.SeoMetaRepository, error) {
	return &gormSeoMetaRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Upsert inserts meta or overwrites the row that already holds its path
func (r *gormSeoMetaRepository) Upsert(ctx context.Context, meta *content.SeoMeta) error {
	if err := meta.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SeoMetaModel{}
	model.FromDomain(meta)

	err := conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "path"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "keywords", "og_image", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return translate(err, "upsert", "seo meta", meta.Path)
	}

	r.logger.Info("Saved SEO metadata for ", meta.Path)
	return nil
}

func (r *gormSeoMetaRepository) GetByPath(ctx context.Context, path string) (*content.SeoMeta, error) {
	var model models.SeoMetaModel
	if err := conn(ctx, r.db).Where("path = ?", path).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "seo meta", path)
	}
	return model.ToDomain(), nil
}

func (r *gormSeoMetaRepository) List(ctx context.Context) ([]*content.SeoMeta, error) {
	var modelList []*models.SeoMetaModel
	if err := conn(ctx, r.db).Order("path asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch seo metadata: %w", err)
	}

	domainList := make([]*content.SeoMeta, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormSeoMetaRepository) DeleteByPath(ctx context.Context, path string) error {
	res := conn(ctx, r.db).Where("path = ?", path).Delete(&models.SeoMetaModel{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete seo meta: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("seo meta %s not found", path)
	}

	r.logger.Info("Deleted SEO metadata for ", path)
	return nil
}
