package models

import (
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/content"
	"gorm.io/datatypes"
)

// BlogPostModel is the GORM database model for blog posts
type BlogPostModel struct {
	ID          string     `gorm:"primaryKey;type:varchar(36)"`
	Title       string     `gorm:"not null;type:varchar(200)"`
	Slug        string     `gorm:"not null;uniqueIndex;type:varchar(200)"`
	Excerpt     string     `gorm:"type:varchar(500)"`
	Body        string     `gorm:"not null;type:text"`
	AuthorID    string     `gorm:"not null;index;type:varchar(36)"`
	Status      string     `gorm:"not null;index;type:varchar(20)"`
	PublishedAt *time.Time `gorm:"index"`
	Tags        datatypes.JSONSlice[string]
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (BlogPostModel) TableName() string {
	return "blog_posts"
}

// ToDomain converts GORM model to domain entity
func (m *BlogPostModel) ToDomain() *content.BlogPost {
	return &content.BlogPost{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Excerpt:     m.Excerpt,
		Body:        m.Body,
		AuthorID:    m.AuthorID,
		Status:      m.Status,
		PublishedAt: m.PublishedAt,
		Tags:        []string(m.Tags),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BlogPostModel) FromDomain(p *content.BlogPost) {
	m.ID = p.ID
	m.Title = p.Title
	m.Slug = p.Slug
	m.Excerpt = p.Excerpt
	m.Body = p.Body
	m.AuthorID = p.AuthorID
	m.Status = p.Status
	m.PublishedAt = utcPtr(p.PublishedAt)
	m.Tags = datatypes.NewJSONSlice(p.Tags)
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}

// PageModel is the GORM database model for static pages
type PageModel struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	Title       string `gorm:"not null;type:varchar(200)"`
	Slug        string `gorm:"not null;uniqueIndex;type:varchar(200)"`
	Body        string `gorm:"not null;type:text"`
	IsPublished bool   `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (PageModel) TableName() string {
	return "pages"
}

// ToDomain converts GORM model to domain entity
func (m *PageModel) ToDomain() *content.Page {
	return &content.Page{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Body:        m.Body,
		IsPublished: m.IsPublished,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PageModel) FromDomain(p *content.Page) {
	m.ID = p.ID
	m.Title = p.Title
	m.Slug = p.Slug
	m.Body = p.Body
	m.IsPublished = p.IsPublished
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}

// MenuModel is the GORM database model for navigation menus
type MenuModel struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Name      string `gorm:"not null;type:varchar(80)"`
	Location  string `gorm:"not null;uniqueIndex;type:varchar(20)"`
	Items     datatypes.JSONSlice[content.MenuItem]
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (MenuModel) TableName() string {
	return "menus"
}

// ToDomain converts GORM model to domain entity
func (m *MenuModel) ToDomain() *content.Menu {
	return &content.Menu{
		ID:        m.ID,
		Name:      m.Name,
		Location:  m.Location,
		Items:     []content.MenuItem(m.Items),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MenuModel) FromDomain(menu *content.Menu) {
	m.ID = menu.ID
	m.Name = menu.Name
	m.Location = menu.Location
	m.Items = datatypes.NewJSONSlice(menu.Items)
	m.CreatedAt = menu.CreatedAt
	m.UpdatedAt = menu.UpdatedAt
}

// AdModel is the GORM database model for ads
type AdModel struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	Title       string `gorm:"not null;type:varchar(150)"`
	Placement   string `gorm:"not null;index;type:varchar(20)"`
	ImageURL    string `gorm:"type:varchar(500)"`
	TargetURL   string `gorm:"not null;type:varchar(500)"`
	StartsAt    *time.Time
	EndsAt      *time.Time
	IsActive    bool  `gorm:"not null;index"`
	Priority    int   `gorm:"not null;default:0"`
	Impressions int64 `gorm:"not null;default:0"`
	Clicks      int64 `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (AdModel) TableName() string {
	return "ads"
}

// ToDomain converts GORM model to domain entity
func (m *AdModel) ToDomain() *content.Ad {
	return &content.Ad{
		ID:          m.ID,
		Title:       m.Title,
		Placement:   m.Placement,
		ImageURL:    m.ImageURL,
		TargetURL:   m.TargetURL,
		StartsAt:    m.StartsAt,
		EndsAt:      m.EndsAt,
		IsActive:    m.IsActive,
		Priority:    m.Priority,
		Impressions: m.Impressions,
		Clicks:      m.Clicks,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AdModel) FromDomain(a *content.Ad) {
	m.ID = a.ID
	m.Title = a.Title
	m.Placement = a.Placement
	m.ImageURL = a.ImageURL
	m.TargetURL = a.TargetURL
	m.StartsAt = utcPtr(a.StartsAt)
	m.EndsAt = utcPtr(a.EndsAt)
	m.IsActive = a.IsActive
	m.Priority = a.Priority
	m.Impressions = a.Impressions
	m.Clicks = a.Clicks
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
}

// SeoMetaModel is the GORM database model for per path SEO metadata
type SeoMetaModel struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	Path        string `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Title       string `gorm:"not null;type:varchar(70)"`
	Description string `gorm:"type:varchar(320)"`
	Keywords    datatypes.JSONSlice[string]
	OGImage     string `gorm:"column:og_image;type:varchar(500)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (SeoMetaModel) TableName() string {
	return "seo_meta"
}

// ToDomain converts GORM model to domain entity
func (m *SeoMetaModel) ToDomain() *content.SeoMeta {
	return &content.SeoMeta{
		ID:          m.ID,
		Path:        m.Path,
		Title:       m.Title,
		Description: m.Description,
		Keywords:    []string(m.Keywords),
		OGImage:     m.OGImage,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SeoMetaModel) FromDomain(s *content.SeoMeta) {
	m.ID = s.ID
	m.Path = s.Path
	m.Title = s.Title
	m.Description = s.Description
	m.Keywords = datatypes.NewJSONSlice(s.Keywords)
	m.OGImage = s.OGImage
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}
