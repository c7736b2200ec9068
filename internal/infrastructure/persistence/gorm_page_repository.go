package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/content"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPageRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPageRepository creates a new GORM-based PageRepository implementation
func NewGormPageRepository(db *gorm.DB, logger logger.Logger) (content.PageRepository, error) {
	return &gormPageRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPageRepository) Create(ctx context.Context, page *content.Page) error {
	if err := page.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PageModel{}
	model.FromDomain(page)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "create", "page", page.Slug)
	}

	r.logger.Info("Created page with id ", page.ID)
	return nil
}

func (r *gormPageRepository) GetByID(ctx context.Context, pageID string) (*content.Page, error) {
	var model models.PageModel
	if err := conn(ctx, r.db).Where("id = ?", pageID).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "page", pageID)
	}
	return model.ToDomain(), nil
}

func (r *gormPageRepository) GetBySlug(ctx context.Context, slug string) (*content.Page, error) {
	var model models.PageModel
	if err := conn(ctx, r.db).Where("slug = ?", slug).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "page", slug)
	}
	return model.ToDomain(), nil
}

func (r *gormPageRepository) List(ctx context.Context) ([]*content.Page, error) {
	var modelList []*models.PageModel
	if err := conn(ctx, r.db).Order("title asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch pages: %w", err)
	}

	domainList := make([]*content.Page, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormPageRepository) UpdateByID(ctx context.Context, page *content.Page) error {
	if err := page.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PageModel{}
	model.FromDomain(page)

	if err := updateAll(conn(ctx, r.db), model, "page", page.ID); err != nil {
		return err
	}

	r.logger.Info("Updated page with id ", page.ID)
	return nil
}

func (r *gormPageRepository) DeleteByID(ctx context.Context, pageID string) error {
	if err := deleteByID(conn(ctx, r.db), &models.PageModel{}, "page", pageID); err != nil {
		return err
	}

	r.logger.Info("Deleted page with id ", pageID)
	return nil
}
