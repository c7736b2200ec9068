package v1

import (
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/content"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/validators"
)

// BlogPostRequest creates or replaces a blog post
type BlogPostRequest struct {
	Title   string   `json:"title" validate:"required,min=2,max=200"`
	Slug    string   `json:"slug" validate:"omitempty,slug,max=200"`
	Excerpt string   `json:"excerpt" validate:"max=500"`
	Body    string   `json:"body" validate:"required"`
	Status  string   `json:"status" validate:"omitempty,oneof=draft published"`
	Tags    []string `json:"tags" validate:"omitempty,max=20,dive,required,max=40"`
}

// Validate for validating BlogPostRequest struct
func (r *BlogPostRequest) Validate() error {
	return validators.Struct(r)
}

// ToDomain builds the post; the author is the calling admin
func (r *BlogPostRequest) ToDomain(id, authorID string) *content.BlogPost {
	return &content.BlogPost{
		ID:       id,
		Title:    r.Title,
		Slug:     r.Slug,
		Excerpt:  r.Excerpt,
		Body:     r.Body,
		AuthorID: authorID,
		Status:   r.Status,
		Tags:     r.Tags,
	}
}

// BlogPostResponse is the view of a blog post
type BlogPostResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Body        string     `json:"body"`
	AuthorID    string     `json:"author_id"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Tags        []string   `json:"tags"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newBlogPostResponse(p *content.BlogPost) BlogPostResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return BlogPostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		Body:        p.Body,
		AuthorID:    p.AuthorID,
		Status:      p.Status,
		PublishedAt: p.PublishedAt,
		Tags:        tags,
		UpdatedAt:   p.UpdatedAt,
	}
}

// PageRequest creates or replaces a static page
type PageRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=200"`
	Slug        string `json:"slug" validate:"omitempty,slug,max=200"`
	Body        string `json:"body" validate:"required"`
	IsPublished bool   `json:"is_published"`
}

// Validate for validating PageRequest struct
func (r *PageRequest) Validate() error {
	return validators.Struct(r)
}

// ToDomain builds the page
func (r *PageRequest) ToDomain(id string) *content.Page {
	return &content.Page{ID: id, Title: r.Title, Slug: r.Slug, Body: r.Body, IsPublished: r.IsPublished}
}

// PageResponse is the view of a static page
type PageResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Body        string    `json:"body"`
	IsPublished bool      `json:"is_published"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newPageResponse(p *content.Page) PageResponse {
	return PageResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Body:        p.Body,
		IsPublished: p.IsPublished,
		UpdatedAt:   p.UpdatedAt,
	}
}

// MenuRequest creates or replaces a navigation menu
type MenuRequest struct {
	Name     string             `json:"name" validate:"required,max=80"`
	Location string             `json:"location" validate:"required,oneof=header footer sidebar"`
	Items    []content.MenuItem `json:"items" validate:"dive"`
}

// Validate for validating MenuRequest struct
func (r *MenuRequest) Validate() error {
	return validators.Struct(r)
}

// ToDomain builds the menu
func (r *MenuRequest) ToDomain(id string) *content.Menu {
	return &content.Menu{ID: id, Name: r.Name, Location: r.Location, Items: r.Items}
}

// MenuResponse is the view of a menu with its items in display order
type MenuResponse struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Location string             `json:"location"`
	Items    []content.MenuItem `json:"items"`
}

func newMenuResponse(m *content.Menu) MenuResponse {
	items := m.SortedItems()
	if items == nil {
		items = []content.MenuItem{}
	}
	return MenuResponse{ID: m.ID, Name: m.Name, Location: m.Location, Items: items}
}

// AdRequest creates or replaces an ad
type AdRequest struct {
	Title     string     `json:"title" validate:"required,max=150"`
	Placement string     `json:"placement" validate:"required,oneof=home_top sidebar footer inline"`
	ImageURL  string     `json:"image_url" validate:"omitempty,url,max=500"`
	TargetURL string     `json:"target_url" validate:"required,url,max=500"`
	StartsAt  *time.Time `json:"starts_at"`
	EndsAt    *time.Time `json:"ends_at"`
	IsActive  *bool      `json:"is_active"`
	Priority  int        `json:"priority" validate:"min=0,max=1000"`
}

// Validate for validating AdRequest struct
func (r *AdRequest) Validate() error {
	return validators.Struct(r)
}

// ToDomain builds the ad; ads are active unless stated otherwise
func (r *AdRequest) ToDomain(id string) *content.Ad {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &content.Ad{
		ID:        id,
		Title:     r.Title,
		Placement: r.Placement,
		ImageURL:  r.ImageURL,
		TargetURL: r.TargetURL,
		StartsAt:  r.StartsAt,
		EndsAt:    r.EndsAt,
		IsActive:  active,
		Priority:  r.Priority,
	}
}

// AdResponse is the view of an ad. Counters are only meaningful to admins.
type AdResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Placement   string     `json:"placement"`
	ImageURL    string     `json:"image_url,omitempty"`
	TargetURL   string     `json:"target_url"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	IsActive    bool       `json:"is_active"`
	Priority    int        `json:"priority"`
	Impressions int64      `json:"impressions"`
	Clicks      int64      `json:"clicks"`
	CTR         float64    `json:"ctr"`
}

func newAdResponse(a *content.Ad) AdResponse {
	return AdResponse{
		ID:          a.ID,
		Title:       a.Title,
		Placement:   a.Placement,
		ImageURL:    a.ImageURL,
		TargetURL:   a.TargetURL,
		StartsAt:    a.StartsAt,
		EndsAt:      a.EndsAt,
		IsActive:    a.IsActive,
		Priority:    a.Priority,
		Impressions: a.Impressions,
		Clicks:      a.Clicks,
		CTR:         a.CTR(),
	}
}

// SeoRequest sets the metadata of a site path
type SeoRequest struct {
	Path        string   `json:"path" validate:"required,startswith=/,max=255"`
	Title       string   `json:"title" validate:"required,max=70"`
	Description string   `json:"description" validate:"max=320"`
	Keywords    []string `json:"keywords" validate:"omitempty,max=30,dive,required,max=50"`
	OGImage     string   `json:"og_image" validate:"omitempty,url,max=500"`
}

// Validate for validating SeoRequest struct
func (r *SeoRequest) Validate() error {
	return validators.Struct(r)
}

// ToDomain builds the metadata record
func (r *SeoRequest) ToDomain() *content.SeoMeta {
	return &content.SeoMeta{
		Path:        r.Path,
		Title:       r.Title,
		Description: r.Description,
		Keywords:    r.Keywords,
		OGImage:     r.OGImage,
	}
}

// SeoResponse is the view of a path's metadata
type SeoResponse struct {
	Path        string   `json:"path"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords"`
	OGImage     string   `json:"og_image,omitempty"`
}

func newSeoResponse(s *content.SeoMeta) SeoResponse {
	keywords := s.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return SeoResponse{
		Path:        s.Path,
		Title:       s.Title,
		Description: s.Description,
		Keywords:    keywords,
		OGImage:     s.OGImage,
	}
}
