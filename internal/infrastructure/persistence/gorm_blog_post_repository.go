package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/content"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormBlogPostRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBlogPostRepository creates a new GORM-based BlogPostRepository implementation
func NewGormBlogPostRepository(db *gorm.DB, logger logger.Logger) (content.BlogPostRepository, error) {
	return &gormBlogPostRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormBlogPostRepository) Create(ctx context.Context, post *content.BlogPost) error {
	if err := post.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BlogPostModel{}
	model.FromDomain(post)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "create", "blog post", post.Slug)
	}

	r.logger.Info("Created blog post with id ", post.ID)
	return nil
}

func (r *gormBlogPostRepository) GetByID(ctx context.Context, postID string) (*content.BlogPost, error) {
	var model models.BlogPostModel
	if err := conn(ctx, r.db).Where("id = ?", postID).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "blog post", postID)
	}
	return model.ToDomain(), nil
}

func (r *gormBlogPostRepository) GetBySlug(ctx context.Context, slug string) (*content.BlogPost, error) {
	var model models.BlogPostModel
	if err := conn(ctx, r.db).Where("slug = ?", slug).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "blog post", slug)
	}
	return model.ToDomain(), nil
}

func (r *gormBlogPostRepository) List(ctx context.Context, query *content.PostQuery) ([]*content.BlogPost, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := conn(ctx, r.db).Model(&models.BlogPostModel{})
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.AuthorID != "" {
		dbQuery = dbQuery.Where("author_id = ?", query.AuthorID)
	}
	if query.Tag != "" {
		// JSON array text contains the quoted tag on both SQLite and PostgreSQL
		dbQuery = dbQuery.Where("CAST(tags AS TEXT) LIKE ?"+likeEscape, `%"`+escapeLike(query.Tag)+`"%`)
	}
	sortOrder := query.SortOrder
	if query.SortBy == "" && sortOrder == "" {
		sortOrder = "desc"
	}
	dbQuery = paginate(dbQuery, query.SortBy, sortOrder, "created_at", query.Limit, query.Offset)

	var modelList []*models.BlogPostModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch blog posts: %w", err)
	}

	domainList := make([]*content.BlogPost, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormBlogPostRepository) UpdateByID(ctx context.Context, post *content.BlogPost) error {
	if err := post.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BlogPostModel{}
	model.FromDomain(post)

	if err := updateAll(conn(ctx, r.db), model, "blog post", post.ID); err != nil {
		return err
	}

	r.logger.Info("Updated blog post with id ", post.ID)
	return nil
}

func (r *gormBlogPostRepository) DeleteByID(ctx context.Context, postID string) error {
	if err := deleteByID(conn(ctx, r.db), &models.BlogPostModel{}, "blog post", postID); err != nil {
		return err
	}

	r.logger.Info("Deleted blog post with id ", postID)
	return nil
}
