package v1

import (
	"net/http"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/services"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// ModuleHandler defines the interface for service catalogue operations
type ModuleHandler interface {
	ListActive(ctx *gin.Context)
	GetBySlug(ctx *gin.Context)
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type moduleHandler struct {
	moduleService services.ServiceModuleService
}

// NewModuleHandler creates a new ModuleHandler
func NewModuleHandler(moduleService services.ServiceModuleService) ModuleHandler {
	return &moduleHandler{moduleService: moduleService}
}

func (handler *moduleHandler) list(ctx *gin.Context, activeOnly bool) {
	query := services.NewModuleQuery()
	query.ActiveOnly = activeOnly
	if category := ctx.Query("category"); len(category) > 0 {
		query.Category = category
	}
	if name := ctx.Query("name"); len(name) > 0 {
		query.Name = name
	}
	readPaging(ctx, &query.Limit, &query.Offset)
	readSorting(ctx, &query.SortBy, &query.SortOrder)

	modules, err := handler.moduleService.List(ctx, query)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := make([]ModuleResponse, 0, len(modules))
	for _, module := range modules {
		response = append(response, newModuleResponse(module))
	}
	ctx.JSON(http.StatusOK, response)
}

// ListActive returns the modules open for applications
// @Summary List service modules
// @Tags Services
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} ModuleResponse
// @Router /services [get]
func (handler *moduleHandler) ListActive(ctx *gin.Context) {
	handler.list(ctx, true)
}

// GetBySlug returns an active module with its form definition
func (handler *moduleHandler) GetBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	module, err := handler.moduleService.GetBySlug(ctx, slug)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if !module.IsActive {
		writeError(ctx, apperr.NotFoundf("service %s not found", slug))
		return
	}

	ctx.JSON(http.StatusOK, newModuleResponse(module))
}

// List returns every module, inactive ones included
func (handler *moduleHandler) List(ctx *gin.Context) {
	handler.list(ctx, false)
}

// Create handles the POST request to add a service module
func (handler *moduleHandler) Create(ctx *gin.Context) {
	var request ModuleRequest
	if !bindJSON(ctx, &request) {
		return
	}

	module, err := handler.moduleService.Create(ctx, request.ToDomain(""))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newModuleResponse(module))
}

// Update handles the PUT request replacing a service module
func (handler *moduleHandler) Update(ctx *gin.Context) {
	var request ModuleRequest
	if !bindJSON(ctx, &request) {
		return
	}

	module, err := handler.moduleService.Update(ctx, request.ToDomain(ctx.Param("id")))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newModuleResponse(module))
}

// DeleteByID removes a service module
func (handler *moduleHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.moduleService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
