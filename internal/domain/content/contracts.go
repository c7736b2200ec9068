package content

import (
	"context"
	"time"
)

// BlogService manages blog posts. Public callers only see published posts.
type BlogService interface {
	Create(ctx context.Context, post *BlogPost) (*BlogPost, error)
	Update(ctx context.Context, post *BlogPost) (*BlogPost, error)
	GetByID(ctx context.Context, postID string) (*BlogPost, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*BlogPost, error)
	List(ctx context.Context, query *PostQuery) ([]*BlogPost, error)
	DeleteByID(ctx context.Context, postID string) error
}

// PageService manages static pages.
type PageService interface {
	Create(ctx context.Context, page *Page) (*Page, error)
	Update(ctx context.Context, page *Page) (*Page, error)
	GetByID(ctx context.Context, pageID string) (*Page, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*Page, error)
	List(ctx context.Context) ([]*Page, error)
	DeleteByID(ctx context.Context, pageID string) error
}

// MenuService manages navigation menus.
type MenuService interface {
	Create(ctx context.Context, menu *Menu) (*Menu, error)
	Update(ctx context.Context, menu *Menu) (*Menu, error)
	GetByID(ctx context.Context, menuID string) (*Menu, error)
	// GetByLocation returns the menu with its items ordered for display.
	GetByLocation(ctx context.Context, location string) (*Menu, error)
	List(ctx context.Context) ([]*Menu, error)
	DeleteByID(ctx context.Context, menuID string) error
}

// AdService manages ads and serves them to the site.
type AdService interface {
	Create(ctx context.Context, ad *Ad) (*Ad, error)
	Update(ctx context.Context, ad *Ad) (*Ad, error)
	GetByID(ctx context.Context, adID string) (*Ad, error)
	List(ctx context.Context, query *AdQuery) ([]*Ad, error)
	DeleteByID(ctx context.Context, adID string) error
	// Fetch returns the live ads of placement and counts an impression for each.
	Fetch(ctx context.Context, placement string, now time.Time, limit int) ([]*Ad, error)
	// Click counts a click and returns the ad's target URL.
	Click(ctx context.Context, adID string) (string, error)
}

// SeoService manages per path search engine metadata.
type SeoService interface {
	Upsert(ctx context.Context, meta *SeoMeta) (*SeoMeta, error)
	GetByPath(ctx context.Context, path string) (*SeoMeta, error)
	List(ctx context.Context) ([]*SeoMeta, error)
	DeleteByPath(ctx context.Context, path string) error
}

// BlogPostRepository defines the interface for BlogPost-related operations
type BlogPostRepository interface {
	Create(ctx context.Context, post *BlogPost) error
	GetByID(ctx context.Context, postID string) (*BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*BlogPost, error)
	List(ctx context.Context, query *PostQuery) ([]*BlogPost, error)
	UpdateByID(ctx context.Context, post *BlogPost) error
	DeleteByID(ctx context.Context, postID string) error
}

// PageRepository defines the interface for Page-related operations
type PageRepository interface {
	Create(ctx context.Context, page *Page) error
	GetByID(ctx context.Context, pageID string) (*Page, error)
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	List(ctx context.Context) ([]*Page, error)
	UpdateByID(ctx context.Context, page *Page) error
	DeleteByID(ctx context.Context, pageID string) error
}

// MenuRepository defines the interface for Menu-related operations
type MenuRepository interface {
	Create(ctx context.Context, menu *Menu) error
	GetByID(ctx context.Context, menuID string) (*Menu, error)
	GetByLocation(ctx context.Context, location string) (*Menu, error)
	List(ctx context.Context) ([]*Menu, error)
	UpdateByID(ctx context.Context, menu *Menu) error
	DeleteByID(ctx context.Context, menuID string) error
}

// AdRepository defines the interface for Ad-related operations
type AdRepository interface {
	Create(ctx context.Context, ad *Ad) error
	GetByID(ctx context.Context, adID string) (*Ad, error)
	List(ctx context.Context, query *AdQuery) ([]*Ad, error)
	// ListActiveByPlacement returns active ads of placement regardless of their date window.
	ListActiveByPlacement(ctx context.Context, placement string) ([]*Ad, error)
	UpdateByID(ctx context.Context, ad *Ad) error
	DeleteByID(ctx context.Context, adID string) error
	IncrementImpressions(ctx context.Context, adIDs ...string) error
	IncrementClicks(ctx context.Context, adID string) error
}

// SeoMetaRepository defines the interface for SeoMeta-related operations
type SeoMetaRepository interface {
	Upsert(ctx context.Context, meta *SeoMeta) error
	GetByPath(ctx context.Context, path string) (*SeoMeta, error)
	List(ctx context.Context) ([]*SeoMeta, error)
	DeleteByPath(ctx context.Context, path string) error
}
