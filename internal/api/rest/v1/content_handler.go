package v1

import (
	"net/http"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/content"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// BlogHandler defines the interface for blog operations
type BlogHandler interface {
	ListPublished(ctx *gin.Context)
	GetPublished(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type blogHandler struct {
	blogService content.BlogService
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(blogService content.BlogService) BlogHandler {
	return &blogHandler{blogService: blogService}
}

func (handler *blogHandler) list(ctx *gin.Context, query *content.PostQuery) {
	if tag := ctx.Query("tag"); len(tag) > 0 {
		query.Tag = tag
	}
	readPaging(ctx, &query.Limit, &query.Offset)
	readSorting(ctx, &query.SortBy, &query.SortOrder)

	posts, err := handler.blogService.List(ctx, query)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := make([]BlogPostResponse, 0, len(posts))
	for _, post := range posts {
		response = append(response, newBlogPostResponse(post))
	}
	ctx.JSON(http.StatusOK, response)
}

// ListPublished returns published posts
// @Summary List blog posts
// @Tags Content
// @Produce json
// @Param tag query string false "Tag filter"
// @Success 200 {array} BlogPostResponse
// @Router /blog [get]
func (handler *blogHandler) ListPublished(ctx *gin.Context) {
	query := content.NewPostQuery()
	query.Status = content.PostPublished
	handler.list(ctx, query)
}

func (handler *blogHandler) GetPublished(ctx *gin.Context) {
	post, err := handler.blogService.GetBySlug(ctx, ctx.Param("slug"), true)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newBlogPostResponse(post))
}

// List returns posts of any status
func (handler *blogHandler) List(ctx *gin.Context) {
	query := content.NewPostQuery()
	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}
	handler.list(ctx, query)
}

func (handler *blogHandler) GetByID(ctx *gin.Context) {
	post, err := handler.blogService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newBlogPostResponse(post))
}

func (handler *blogHandler) Create(ctx *gin.Context) {
	principal := principalFrom(ctx)
	if principal == nil {
		writeError(ctx, apperr.ErrUnauthorized)
		return
	}
	var request BlogPostRequest
	if !bindJSON(ctx, &request) {
		return
	}

	post, err := handler.blogService.Create(ctx, request.ToDomain("", principal.UserID))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newBlogPostResponse(post))
}

// Update keeps the original author
func (handler *blogHandler) Update(ctx *gin.Context) {
	var request BlogPostRequest
	if !bindJSON(ctx, &request) {
		return
	}

	post, err := handler.blogService.Update(ctx, request.ToDomain(ctx.Param("id"), ""))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newBlogPostResponse(post))
}

func (handler *blogHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.blogService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// PageHandler defines the interface for static page operations
type PageHandler interface {
	GetPublished(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type pageHandler struct {
	pageService content.PageService
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(pageService content.PageService) PageHandler {
	return &pageHandler{pageService: pageService}
}

func (handler *pageHandler) GetPublished(ctx *gin.Context) {
	page, err := handler.pageService.GetBySlug(ctx, ctx.Param("slug"), true)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newPageResponse(page))
}

func (handler *pageHandler) List(ctx *gin.Context) {
	pages, err := handler.pageService.List(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := make([]PageResponse, 0, len(pages))
	for _, page := range pages {
		response = append(response, newPageResponse(page))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *pageHandler) GetByID(ctx *gin.Context) {
	page, err := handler.pageService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newPageResponse(page))
}

func (handler *pageHandler) Create(ctx *gin.Context) {
	var request PageRequest
	if !bindJSON(ctx, &request) {
		return
	}

	page, err := handler.pageService.Create(ctx, request.ToDomain(""))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newPageResponse(page))
}

func (handler *pageHandler) Update(ctx *gin.Context) {
	var request PageRequest
	if !bindJSON(ctx, &request) {
		return
	}

	page, err := handler.pageService.Update(ctx, request.ToDomain(ctx.Param("id")))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newPageResponse(page))
}

func (handler *pageHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.pageService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// MenuHandler defines the interface for navigation menu operations
type MenuHandler interface {
	GetByLocation(ctx *gin.Context)
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type menuHandler struct {
	menuService content.MenuService
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(menuService content.MenuService) MenuHandler {
	return &menuHandler{menuService: menuService}
}

// GetByLocation returns the menu rendered at a site location
// @Summary Get a menu
// @Tags Content
// @Produce json
// @Param location path string true "header, footer or sidebar"
// @Success 200 {object} MenuResponse
// @Failure 404 {object} ErrorResponse
// @Router /menus/{location} [get]
func (handler *menuHandler) GetByLocation(ctx *gin.Context) {
	menu, err := handler.menuService.GetByLocation(ctx, ctx.Param("location"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newMenuResponse(menu))
}

func (handler *menuHandler) List(ctx *gin.Context) {
	menus, err := handler.menuService.List(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := make([]MenuResponse, 0, len(menus))
	for _, menu := range menus {
		response = append(response, newMenuResponse(menu))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *menuHandler) Create(ctx *gin.Context) {
	var request MenuRequest
	if !bindJSON(ctx, &request) {
		return
	}

	menu, err := handler.menuService.Create(ctx, request.ToDomain(""))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newMenuResponse(menu))
}

func (handler *menuHandler) Update(ctx *gin.Context) {
	var request MenuRequest
	if !bindJSON(ctx, &request) {
		return
	}

	menu, err := handler.menuService.Update(ctx, request.ToDomain(ctx.Param("id")))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newMenuResponse(menu))
}

func (handler *menuHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.menuService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SeoHandler defines the interface for search engine metadata operations
type SeoHandler interface {
	GetByPath(ctx *gin.Context)
	List(ctx *gin.Context)
	Upsert(ctx *gin.Context)
	DeleteByPath(ctx *gin.Context)
}

type seoHandler struct {
	seoService content.SeoService
}

// NewSeoHandler creates a new SeoHandler
func NewSeoHandler(seoService content.SeoService) SeoHandler {
	return &seoHandler{seoService: seoService}
}

// GetByPath returns the metadata of the site path given by the path parameter
func (handler *seoHandler) GetByPath(ctx *gin.Context) {
	path := ctx.Query("path")
	if path == "" {
		writeError(ctx, apperr.NewValidationError("path", "required"))
		return
	}

	meta, err := handler.seoService.GetByPath(ctx, path)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newSeoResponse(meta))
}

func (handler *seoHandler) List(ctx *gin.Context) {
	metas, err := handler.seoService.List(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := make([]SeoResponse, 0, len(metas))
	for _, meta := range metas {
		response = append(response, newSeoResponse(meta))
	}
	ctx.JSON(http.StatusOK, response)
}

// Upsert creates or replaces the metadata of a path
func (handler *seoHandler) Upsert(ctx *gin.Context) {
	var request SeoRequest
	if !bindJSON(ctx, &request) {
		return
	}

	meta, err := handler.seoService.Upsert(ctx, request.ToDomain())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newSeoResponse(meta))
}

func (handler *seoHandler) DeleteByPath(ctx *gin.Context) {
	path := ctx.Query("path")
	if path == "" {
		writeError(ctx, apperr.NewValidationError("path", "required"))
		return
	}

	if err := handler.seoService.DeleteByPath(ctx, path); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
