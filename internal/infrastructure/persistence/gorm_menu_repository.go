package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/content"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormMenuRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMenuRepository creates a new GORM-based MenuRepository implementation
func NewGormMenuRepository(db *gorm.DB, logger logger.Logger) (content.MenuRepository, error) {
	return &gormMenuRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormMenuRepository) Create(ctx context.Context, menu *content.Menu) error {
	if err := menu.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MenuModel{}
	model.FromDomain(menu)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "create", "menu", menu.Location)
	}

	r.logger.Info("Created ", menu.Location, " menu with id ", menu.ID)
	return nil
}

func (r *gormMenuRepository) GetByID(ctx context.Context, menuID string) (*content.Menu, error) {
	var model models.MenuModel
	if err := conn(ctx, r.db).Where("id = ?", menuID).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "menu", menuID)
	}
	return model.ToDomain(), nil
}

func (r *gormMenuRepository) GetByLocation(ctx context.Context, location string) (*content.Menu, error) {
	var model models.MenuModel
	if err := conn(ctx, r.db).Where("location = ?", location).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "menu", location)
	}
	return model.ToDomain(), nil
}

func (r *gormMenuRepository) List(ctx context.Context) ([]*content.Menu, error) {
	var modelList []*models.MenuModel
	if err := conn(ctx, r.db).Order("location asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch menus: %w", err)
	}

	domainList := make([]*content.Menu, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormMenuRepository) UpdateByID(ctx context.Context, menu *content.Menu) error {
	if err := menu.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MenuModel{}
	model.FromDomain(menu)

	if err := updateAll(conn(ctx, r.db), model, "menu", menu.ID); err != nil {
		return err
	}

	r.logger.Info("Updated menu with id ", menu.ID)
	return nil
}

func (r *gormMenuRepository) DeleteByID(ctx context.Context, menuID string) error {
	if err := deleteByID(conn(ctx, r.db), &models.MenuModel{}, "menu", menuID); err != nil {
		return err
	}

	r.logger.Info("Deleted menu with id ", menuID)
	return nil
}
