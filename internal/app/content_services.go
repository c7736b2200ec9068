package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/caching"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/content"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/utils"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/validators"

	"github.com/google/uuid"
)

// Ad fetch limits
const (
	DefaultAdFetchLimit = 3
	MaxAdFetchLimit     = 20
)

// blogService implements the BlogService interface
type blogService struct {
	postRepo content.BlogPostRepository
	logger   logger.Logger
	now      func() time.Time
}

// NewBlogService creates a new blogService instance
func NewBlogService(postRepo content.BlogPostRepository, logger logger.Logger) (content.BlogService, error) {
	return &blogService{postRepo: postRepo, logger: logger, now: time.Now}, nil
}

func (s *blogService) Create(ctx context.Context, post *content.BlogPost) (*content.BlogPost, error) {
	now := s.now().UTC()
	post.ID = uuid.NewString()
	if post.Slug == "" {
		post.Slug = utils.Slugify(post.Title)
	}
	if post.Status == "" {
		post.Status = content.PostDraft
	}
	post.PublishedAt = nil
	post.SyncPublishedAt(now)
	post.CreatedAt = now
	post.UpdatedAt = now

	if err := post.Validate(); err != nil {
		return nil, err
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return post, nil
}

// Update keeps the author, creation time and first publication time of the stored post
func (s *blogService) Update(ctx context.Context, post *content.BlogPost) (*content.BlogPost, error) {
	existing, err := s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	if post.Slug == "" {
		post.Slug = existing.Slug
	}
	post.AuthorID = existing.AuthorID
	post.CreatedAt = existing.CreatedAt
	post.PublishedAt = existing.PublishedAt
	post.SyncPublishedAt(now)
	post.UpdatedAt = now

	if err := post.Validate(); err != nil {
		return nil, err
	}
	if err := s.postRepo.UpdateByID(ctx, post); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return post, nil
}

func (s *blogService) GetByID(ctx context.Context, postID string) (*content.BlogPost, error) {
	return s.postRepo.GetByID(ctx, postID)
}

// GetBySlug hides drafts from public callers
func (s *blogService) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*content.BlogPost, error) {
	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if publishedOnly && !post.IsPublished() {
		return nil, apperr.NotFoundf("blog post %s not found", slug)
	}
	return post, nil
}

func (s *blogService) List(ctx context.Context, query *content.PostQuery) ([]*content.BlogPost, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.postRepo.List(ctx, query)
}

func (s *blogService) DeleteByID(ctx context.Context, postID string) error {
	return s.postRepo.DeleteByID(ctx, postID)
}

// pageService implements the PageService interface
type pageService struct {
	pageRepo content.PageRepository
	logger   logger.Logger
	now      func() time.Time
}

// NewPageService creates a new pageService instance
func NewPageService(pageRepo content.PageRepository, logger logger.Logger) (content.PageService, error) {
	return &pageService{pageRepo: pageRepo, logger: logger, now: time.Now}, nil
}

func (s *pageService) Create(ctx context.Context, page *content.Page) (*content.Page, error) {
	page.ID = uuid.NewString()
	if page.Slug == "" {
		page.Slug = utils.Slugify(page.Title)
	}
	page.CreatedAt = s.now().UTC()
	page.UpdatedAt = page.CreatedAt

	if err := page.Validate(); err != nil {
		return nil, err
	}
	if err := s.pageRepo.Create(ctx, page); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return page, nil
}

func (s *pageService) Update(ctx context.Context, page *content.Page) (*content.Page, error) {
	existing, err := s.pageRepo.GetByID(ctx, page.ID)
	if err != nil {
		return nil, err
	}
	if page.Slug == "" {
		page.Slug = existing.Slug
	}
	page.CreatedAt = existing.CreatedAt
	page.UpdatedAt = s.now().UTC()

	if err := page.Validate(); err != nil {
		return nil, err
	}
	if err := s.pageRepo.UpdateByID(ctx, page); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return page, nil
}

func (s *pageService) GetByID(ctx context.Context, pageID string) (*content.Page, error) {
	return s.pageRepo.GetByID(ctx, pageID)
}

func (s *pageService) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*content.Page, error) {
	page, err := s.pageRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if publishedOnly && !page.IsPublished {
		return nil, apperr.NotFoundf("page %s not found", slug)
	}
	return page, nil
}

func (s *pageService) List(ctx context.Context) ([]*content.Page, error) {
	return s.pageRepo.List(ctx)
}

func (s *pageService) DeleteByID(ctx context.Context, pageID string) error {
	return s.pageRepo.DeleteByID(ctx, pageID)
}

// menuService implements the MenuService interface
type menuService struct {
	menuRepo content.MenuRepository
	logger   logger.Logger
	now      func() time.Time
}

// NewMenuService creates a new menuService instance
func NewMenuService(menuRepo content.MenuRepository, logger logger.Logger) (content.MenuService, error) {
	return &menuService{menuRepo: menuRepo, logger: logger, now: time.Now}, nil
}

func (s *menuService) Create(ctx context.Context, menu *content.Menu) (*content.Menu, error) {
	menu.ID = uuid.NewString()
	menu.CreatedAt = s.now().UTC()
	menu.UpdatedAt = menu.CreatedAt

	if err := menu.Validate(); err != nil {
		return nil, err
	}
	if err := s.menuRepo.Create(ctx, menu); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return menu, nil
}

func (s *menuService) Update(ctx context.Context, menu *content.Menu) (*content.Menu, error) {
	existing, err := s.menuRepo.GetByID(ctx, menu.ID)
	if err != nil {
		return nil, err
	}
	menu.CreatedAt = existing.CreatedAt
	menu.UpdatedAt = s.now().UTC()

	if err := menu.Validate(); err != nil {
		return nil, err
	}
	if err := s.menuRepo.UpdateByID(ctx, menu); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return menu, nil
}

func (s *menuService) GetByID(ctx context.Context, menuID string) (*content.Menu, error) {
	return s.menuRepo.GetByID(ctx, menuID)
}

// GetByLocation returns the menu with items in display order
func (s *menuService) GetByLocation(ctx context.Context, location string) (*content.Menu, error) {
	if err := validators.Var("Location", location, "required,oneof=header footer sidebar"); err != nil {
		return nil, err
	}
	menu, err := s.menuRepo.GetByLocation(ctx, location)
	if err != nil {
		return nil, err
	}
	menu.Items = menu.SortedItems()
	return menu, nil
}

func (s *menuService) List(ctx context.Context) ([]*content.Menu, error) {
	return s.menuRepo.List(ctx)
}

func (s *menuService) DeleteByID(ctx context.Context, menuID string) error {
	return s.menuRepo.DeleteByID(ctx, menuID)
}

// adService implements the AdService interface. The active ads of each placement
// are cached; date windows are applied on every read so the cache never serves an ad outside its window.
type adService struct {
	adRepo   content.AdRepository
	cache    caching.Cache
	cacheTTL time.Duration
	logger   logger.Logger
	now      func() time.Time
}

// NewAdService creates a new adService instance
func NewAdService(adRepo content.AdRepository, cache caching.Cache, cacheTTL time.Duration, logger logger.Logger) (content.AdService, error) {
	return &adService{adRepo: adRepo, cache: cache, cacheTTL: cacheTTL, logger: logger, now: time.Now}, nil
}

func adCacheKey(placement string) string {
	return "ads:placement:" + placement
}

func (s *adService) invalidate(ctx context.Context, placements ...string) {
	keys := make([]string, len(placements))
	for i, p := range placements {
		keys[i] = adCacheKey(p)
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.Warn("Failed to invalidate ad cache: ", err)
	}
}

func (s *adService) Create(ctx context.Context, ad *content.Ad) (*content.Ad, error) {
	ad.ID = uuid.NewString()
	ad.Impressions = 0
	ad.Clicks = 0
	ad.CreatedAt = s.now().UTC()
	ad.UpdatedAt = ad.CreatedAt

	if err := ad.Validate(); err != nil {
		return nil, err
	}
	if err := s.adRepo.Create(ctx, ad); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	s.invalidate(ctx, ad.Placement)
	return ad, nil
}

// Update keeps the stored counters; moving an ad invalidates both placements
func (s *adService) Update(ctx context.Context, ad *content.Ad) (*content.Ad, error) {
	existing, err := s.adRepo.GetByID(ctx, ad.ID)
	if err != nil {
		return nil, err
	}
	ad.Impressions = existing.Impressions
	ad.Clicks = existing.Clicks
	ad.CreatedAt = existing.CreatedAt
	ad.UpdatedAt = s.now().UTC()

	if err := ad.Validate(); err != nil {
		return nil, err
	}
	if err := s.adRepo.UpdateByID(ctx, ad); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	s.invalidate(ctx, existing.Placement, ad.Placement)
	return ad, nil
}

func (s *adService) GetByID(ctx context.Context, adID string) (*content.Ad, error) {
	return s.adRepo.GetByID(ctx, adID)
}

func (s *adService) List(ctx context.Context, query *content.AdQuery) ([]*content.Ad, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.adRepo.List(ctx, query)
}

func (s *adService) DeleteByID(ctx context.Context, adID string) error {
	existing, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		return err
	}
	if err := s.adRepo.DeleteByID(ctx, adID); err != nil {
		return err
	}
	s.invalidate(ctx, existing.Placement)
	return nil
}

// Fetch returns up to limit live ads of placement, highest priority first, and counts an impression for each
func (s *adService) Fetch(ctx context.Context, placement string, now time.Time, limit int) ([]*content.Ad, error) {
	if err := validators.Var("Placement", placement, "required,oneof=home_top sidebar footer inline"); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultAdFetchLimit
	}
	if limit > MaxAdFetchLimit {
		return nil, apperr.NewValidationError("Limit", fmt.Sprintf("max=%d", MaxAdFetchLimit))
	}

	active, err := s.activeAds(ctx, placement)
	if err != nil {
		return nil, err
	}
	live := content.SelectLive(active, now, limit)
	if len(live) == 0 {
		return live, nil
	}

	ids := make([]string, len(live))
	for i, ad := range live {
		ids[i] = ad.ID
	}
	if err := s.adRepo.IncrementImpressions(ctx, ids...); err != nil {
		s.logger.Warn("Failed to count impressions for ", placement, ": ", err)
	}
	return live, nil
}

func (s *adService) activeAds(ctx context.Context, placement string) ([]*content.Ad, error) {
	key := adCacheKey(placement)
	if raw, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("Ad cache read failed for ", key, ": ", err)
	} else if ok {
		var ads []*content.Ad
		if err := json.Unmarshal(raw, &ads); err == nil {
			return ads, nil
		}
		s.logger.Warn("Discarding undecodable cache entry ", key)
	}

	ads, err := s.adRepo.ListActiveByPlacement(ctx, placement)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(ads); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
			s.logger.Warn("Ad cache write failed for ", key, ": ", err)
		}
	}
	return ads, nil
}

// Click counts a click and returns where to send the visitor
func (s *adService) Click(ctx context.Context, adID string) (string, error) {
	ad, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		return "", err
	}
	if err := s.adRepo.IncrementClicks(ctx, adID); err != nil {
		return "", err
	}
	return ad.TargetURL, nil
}

// seoService implements the SeoService interface with a read-through cache per path
type seoService struct {
	seoRepo  content.SeoMetaRepository
	cache    caching.Cache
	cacheTTL time.Duration
	logger   logger.Logger
	now      func() time.Time
}

// NewSeoService creates a new seoService instance
func NewSeoService(seoRepo content.SeoMetaRepository, cache caching.Cache, cacheTTL time.Duration, logger logger.Logger) (content.SeoService, error) {
	return &seoService{seoRepo: seoRepo, cache: cache, cacheTTL: cacheTTL, logger: logger, now: time.Now}, nil
}

func seoCacheKey(path string) string {
	return "seo:path:" + path
}

// normalizePath strips the query string and any trailing slash except on the root
func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

// Upsert creates or replaces the metadata of a path
func (s *seoService) Upsert(ctx context.Context, meta *content.SeoMeta) (*content.SeoMeta, error) {
	meta.Path = normalizePath(meta.Path)
	now := s.now().UTC()
	if existing, err := s.seoRepo.GetByPath(ctx, meta.Path); err == nil {
		meta.ID = existing.ID
		meta.CreatedAt = existing.CreatedAt
	} else {
		meta.ID = uuid.NewString()
		meta.CreatedAt = now
	}
	meta.UpdatedAt = now

	if err := meta.Validate(); err != nil {
		return nil, err
	}
	if err := s.seoRepo.Upsert(ctx, meta); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if err := s.cache.Delete(ctx, seoCacheKey(meta.Path)); err != nil {
		s.logger.Warn("Failed to invalidate seo cache: ", err)
	}
	return meta, nil
}

// GetByPath serves from cache when possible
func (s *seoService) GetByPath(ctx context.Context, path string) (*content.SeoMeta, error) {
	path = normalizePath(path)
	key := seoCacheKey(path)

	if raw, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		var meta content.SeoMeta
		if err := json.Unmarshal(raw, &meta); err == nil {
			return &meta, nil
		}
	}

	meta, err := s.seoRepo.GetByPath(ctx, path)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(meta); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
			s.logger.Warn("Seo cache write failed for ", key, ": ", err)
		}
	}
	return meta, nil
}

func (s *seoService) List(ctx context.Context) ([]*content.SeoMeta, error) {
	return s.seoRepo.List(ctx)
}

func (s *seoService) DeleteByPath(ctx context.Context, path string) error {
	path = normalizePath(path)
	if err := s.seoRepo.DeleteByPath(ctx, path); err != nil {
		return err
	}
	if err := s.cache.Delete(ctx, seoCacheKey(path)); err != nil {
		s.logger.Warn("Failed to invalidate seo cache: ", err)
	}
	return nil
}
