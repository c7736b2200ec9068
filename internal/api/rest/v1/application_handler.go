package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/services"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/metrics"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler defines the interface for service application operations
type ApplicationHandler interface {
	Submit(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Cancel(ctx *gin.Context)
	UploadDocument(ctx *gin.Context)
	DownloadDocument(ctx *gin.Context)
	SubmitTouristVisa(ctx *gin.Context)
	ListTouristVisa(ctx *gin.Context)
	GetTouristVisa(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
	AssignAgency(ctx *gin.Context)
}

type applicationHandler struct {
	applicationService services.ServiceApplicationService
	moduleService      services.ServiceModuleService
	metrics            *metrics.Metrics
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(applicationService services.ServiceApplicationService, moduleService services.ServiceModuleService, m *metrics.Metrics) ApplicationHandler {
	return &applicationHandler{
		applicationService: applicationService,
		moduleService:      moduleService,
		metrics:            m,
	}
}

func (handler *applicationHandler) submit(ctx *gin.Context, slug string) {
	var request SubmitApplicationRequest
	if !bindJSON(ctx, &request) {
		return
	}

	application, err := handler.applicationService.Submit(ctx, principalFrom(ctx), slug, request.FormData)
	if err != nil {
		writeError(ctx, err)
		return
	}
	handler.metrics.ApplicationSubmitted(slug)

	ctx.JSON(http.StatusCreated, newApplicationResponse(application))
}

func (handler *applicationHandler) list(ctx *gin.Context, query *services.ApplicationQuery) {
	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}
	readPaging(ctx, &query.Limit, &query.Offset)
	readSorting(ctx, &query.SortBy, &query.SortOrder)

	applications, err := handler.applicationService.List(ctx, principalFrom(ctx), query)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := make([]ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		response = append(response, newApplicationResponse(application))
	}
	ctx.JSON(http.StatusOK, response)
}

// Submit handles the POST request applying for the service named by the slug
// @Summary Apply for a service
// @Tags Applications
// @Accept json
// @Produce json
// @Param slug path string true "Service slug"
// @Param request body SubmitApplicationRequest true "Form answers"
// @Success 201 {object} ApplicationResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /services/{slug}/applications [post]
func (handler *applicationHandler) Submit(ctx *gin.Context) {
	handler.submit(ctx, ctx.Param("slug"))
}

// List returns the applications visible to the caller
// @Summary List applications
// @Tags Applications
// @Produce json
// @Param status query string false "Status filter"
// @Param service_module_id query string false "Service module filter"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {array} ApplicationResponse
// @Router /applications [get]
func (handler *applicationHandler) List(ctx *gin.Context) {
	query := services.NewApplicationQuery()
	if moduleID := ctx.Query("service_module_id"); len(moduleID) > 0 {
		query.ServiceModuleID = moduleID
	}
	if principalFrom(ctx).IsAdmin() {
		if userID := ctx.Query("user_id"); len(userID) > 0 {
			query.UserID = userID
		}
		if agencyID := ctx.Query("agency_id"); len(agencyID) > 0 {
			query.AgencyID = agencyID
		}
	}
	handler.list(ctx, query)
}

// GetByID returns one application
func (handler *applicationHandler) GetByID(ctx *gin.Context) {
	application, err := handler.applicationService.GetByID(ctx, principalFrom(ctx), ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newApplicationResponse(application))
}

// Cancel withdraws the caller's own application
func (handler *applicationHandler) Cancel(ctx *gin.Context) {
	application, err := handler.applicationService.Cancel(ctx, principalFrom(ctx), ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newApplicationResponse(application))
}

// UploadDocument attaches the multipart field "file" to an application
// @Summary Attach a document
// @Tags Applications
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Application ID"
// @Param file formData file true "Document"
// @Success 201 {object} services.Document
// @Failure 400 {object} ErrorResponse
// @Router /applications/{id}/documents [post]
func (handler *applicationHandler) UploadDocument(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: "invalid form data: missing file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeError(ctx, fmt.Errorf("failed to open upload: %w", err))
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	document, err := handler.applicationService.AttachDocument(ctx, principalFrom(ctx), ctx.Param("id"), fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, document)
}

// DownloadDocument streams an attached document
func (handler *applicationHandler) DownloadDocument(ctx *gin.Context) {
	document, rc, err := handler.applicationService.OpenDocument(ctx, principalFrom(ctx), ctx.Param("id"), ctx.Param("documentId"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	defer rc.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename="%s"`, document.Name),
	}
	ctx.DataFromReader(http.StatusOK, document.Size, document.ContentType, rc, extraHeaders)
}

// SubmitTouristVisa applies for a tourist visa
// @Summary Apply for a tourist visa
// @Tags Tourist visa
// @Accept json
// @Produce json
// @Param request body SubmitApplicationRequest true "Form answers"
// @Success 201 {object} ApplicationResponse
// @Router /tourist-visa-applications [post]
func (handler *applicationHandler) SubmitTouristVisa(ctx *gin.Context) {
	handler.submit(ctx, services.TouristVisaSlug)
}

// ListTouristVisa returns the caller's visible tourist visa applications
func (handler *applicationHandler) ListTouristVisa(ctx *gin.Context) {
	module, err := handler.moduleService.GetBySlug(ctx, services.TouristVisaSlug)
	if err != nil {
		writeError(ctx, err)
		return
	}

	query := services.NewApplicationQuery()
	query.ServiceModuleID = module.ID
	handler.list(ctx, query)
}

// GetTouristVisa returns one tourist visa application
func (handler *applicationHandler) GetTouristVisa(ctx *gin.Context) {
	applicationID := ctx.Param("id")

	module, err := handler.moduleService.GetBySlug(ctx, services.TouristVisaSlug)
	if err != nil {
		writeError(ctx, err)
		return
	}
	application, err := handler.applicationService.GetByID(ctx, principalFrom(ctx), applicationID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if application.ServiceModuleID != module.ID {
		writeError(ctx, apperr.NotFoundf("tourist visa application %s not found", applicationID))
		return
	}

	ctx.JSON(http.StatusOK, newApplicationResponse(application))
}

// UpdateStatus applies a staff decision
// @Summary Change an application's status
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} ApplicationResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/applications/{id}/status [patch]
func (handler *applicationHandler) UpdateStatus(ctx *gin.Context) {
	var request UpdateStatusRequest
	if !bindJSON(ctx, &request) {
		return
	}

	application, err := handler.applicationService.UpdateStatus(ctx, ctx.Param("id"), request.Status, request.Notes)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newApplicationResponse(application))
}

// AssignAgency hands an application to an agency
func (handler *applicationHandler) AssignAgency(ctx *gin.Context) {
	var request AssignAgencyRequest
	if !bindJSON(ctx, &request) {
		return
	}

	application, err := handler.applicationService.AssignAgency(ctx, ctx.Param("id"), request.AgencyID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newApplicationResponse(application))
}
