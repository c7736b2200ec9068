package content

import (
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/validators"
)

// Post statuses
const (
	PostDraft     = "draft"
	PostPublished = "published"
)

// BlogPost entity
type BlogPost struct {
	ID          string `validate:"required,uuid4"`
	Title       string `validate:"required,min=2,max=200"`
	Slug        string `validate:"required,slug,max=200"`
	Excerpt     string `validate:"max=500"`
	Body        string `validate:"required"`
	AuthorID    string `validate:"required,uuid4"`
	Status      string `validate:"required,oneof=draft published"`
	PublishedAt *time.Time
	Tags        []string  `validate:"omitempty,max=20,dive,required,max=40"`
	CreatedAt   time.Time `validate:"required"`
	UpdatedAt   time.Time
}

// Validate for validating BlogPost struct
func (p *BlogPost) Validate() error {
	return validators.Struct(p)
}

// IsPublished reports whether the post is publicly visible.
func (p *BlogPost) IsPublished() bool {
	return p.Status == PostPublished
}

// SyncPublishedAt stamps the first publication time and clears it for drafts.
func (p *BlogPost) SyncPublishedAt(now time.Time) {
	if p.Status != PostPublished {
		p.PublishedAt = nil
		return
	}
	if p.PublishedAt == nil {
		p.PublishedAt = &now
	}
}

// PostQuery filters the blog listing
type PostQuery struct {
	Status    string `validate:"omitempty,oneof=draft published"`
	Tag       string `validate:"omitempty,max=40"`
	AuthorID  string `validate:"omitempty,uuid4"`
	Limit     int    `validate:"omitempty,gt=0,max=100"`
	Offset    int    `validate:"omitempty,gte=0"`
	SortBy    string `validate:"omitempty,oneof=published_at created_at title"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewPostQuery creates a PostQuery with default paging
func NewPostQuery() *PostQuery {
	return &PostQuery{Limit: 20}
}

// Validate for validating PostQuery struct
func (q *PostQuery) Validate() error {
	return validators.Struct(q)
}
