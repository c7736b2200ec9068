package v1

import (
	"net/http"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/agencies"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// AgencyHandler defines the interface for partner agency administration
type AgencyHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	Suspend(ctx *gin.Context)
	Activate(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	CreateAccount(ctx *gin.Context)
}

type agencyHandler struct {
	agencyService agencies.AgencyService
	authService   users.AuthService
}

// NewAgencyHandler creates a new AgencyHandler
func NewAgencyHandler(agencyService agencies.AgencyService, authService users.AuthService) AgencyHandler {
	return &agencyHandler{
		agencyService: agencyService,
		authService:   authService,
	}
}

// Create handles the POST request onboarding an agency
// @Summary Onboard an agency
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body AgencyRequest true "Agency"
// @Success 201 {object} AgencyResponse
// @Failure 422 {object} ErrorResponse
// @Router /admin/agencies [post]
func (handler *agencyHandler) Create(ctx *gin.Context) {
	var request AgencyRequest
	if !bindJSON(ctx, &request) {
		return
	}

	agency, err := handler.agencyService.Create(ctx, request.ToDomain(""))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newAgencyResponse(agency))
}

// List returns agencies filtered by status and country
func (handler *agencyHandler) List(ctx *gin.Context) {
	query := agencies.NewAgencyQuery()
	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}
	if country := ctx.Query("country"); len(country) > 0 {
		query.Country = country
	}
	readPaging(ctx, &query.Limit, &query.Offset)
	readSorting(ctx, &query.SortBy, &query.SortOrder)

	list, err := handler.agencyService.List(ctx, query)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := make([]AgencyResponse, 0, len(list))
	for _, agency := range list {
		response = append(response, newAgencyResponse(agency))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *agencyHandler) GetByID(ctx *gin.Context) {
	agency, err := handler.agencyService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newAgencyResponse(agency))
}

func (handler *agencyHandler) Update(ctx *gin.Context) {
	var request AgencyRequest
	if !bindJSON(ctx, &request) {
		return
	}

	agency, err := handler.agencyService.Update(ctx, request.ToDomain(ctx.Param("id")))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newAgencyResponse(agency))
}

func (handler *agencyHandler) setStatus(ctx *gin.Context, status string) {
	agency, err := handler.agencyService.SetStatus(ctx, ctx.Param("id"), status)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newAgencyResponse(agency))
}

// Suspend stops an agency from receiving work
func (handler *agencyHandler) Suspend(ctx *gin.Context) {
	handler.setStatus(ctx, agencies.StatusSuspended)
}

// Activate lets a suspended agency receive work again
func (handler *agencyHandler) Activate(ctx *gin.Context) {
	handler.setStatus(ctx, agencies.StatusActive)
}

func (handler *agencyHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.agencyService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CreateAccount creates a login acting for the agency
// @Summary Create an agency login
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Agency ID"
// @Param request body AccountRequest true "Account"
// @Success 201 {object} UserResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/agencies/{id}/accounts [post]
func (handler *agencyHandler) CreateAccount(ctx *gin.Context) {
	var request AccountRequest
	if !bindJSON(ctx, &request) {
		return
	}

	agency, err := handler.agencyService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	user, err := handler.authService.CreateAccount(ctx, request.Name, request.Email, request.Password, users.RoleAgency, &agency.ID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newUserResponse(user))
}
