package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "create", "user", user.Email)
	}

	r.logger.Info("Created user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, userID string) (*users.User, error) {
	var model models.UserModel
	if err := conn(ctx, r.db).Where("id = ?", userID).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "user", userID)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	var model models.UserModel
	if err := conn(ctx, r.db).Where("email = ?", strings.ToLower(email)).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "user", email)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := conn(ctx, r.db).Model(&models.UserModel{})
	if query.Role != "" {
		dbQuery = dbQuery.Where("role = ?", query.Role)
	}
	if query.Email != "" {
		dbQuery = dbQuery.Where("email LIKE ?"+likeEscape, "%"+escapeLike(strings.ToLower(query.Email))+"%")
	}
	dbQuery = paginate(dbQuery, query.SortBy, query.SortOrder, "created_at", query.Limit, query.Offset)

	var modelList []*models.UserModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	domainList := make([]*users.User, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormUserRepository) UpdateByID(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := updateAll(conn(ctx, r.db), model, "user", user.ID); err != nil {
		return err
	}

	r.logger.Info("Updated user with id ", user.ID)
	return nil
}
