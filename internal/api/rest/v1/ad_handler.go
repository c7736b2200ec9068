package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/content"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AdHandler defines the interface for ad serving and administration
type AdHandler interface {
	Fetch(ctx *gin.Context)
	Click(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type adHandler struct {
	adService content.AdService
	now       func() time.Time
}

// NewAdHandler creates a new AdHandler
func NewAdHandler(adService content.AdService) AdHandler {
	return &adHandler{adService: adService, now: time.Now}
}

// Fetch serves the live ads of a placement and counts their impressions
// @Summary Fetch ads
// @Tags Ads
// @Produce json
// @Param placement query string true "home_top, sidebar, footer or inline"
// @Param limit query int false "Number of ads, default 3"
// @Success 200 {array} AdResponse
// @Failure 422 {object} ErrorResponse
// @Router /ads/fetch [get]
func (handler *adHandler) Fetch(ctx *gin.Context) {
	limit := 0
	if value := ctx.Query("limit"); len(value) > 0 {
		limit = utils.ConvertToInt(value)
	}

	ads, err := handler.adService.Fetch(ctx, ctx.Query("placement"), handler.now().UTC(), limit)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := make([]AdResponse, 0, len(ads))
	for _, ad := range ads {
		response = append(response, newAdResponse(ad))
	}
	ctx.JSON(http.StatusOK, response)
}

// Click counts a click and redirects to the advertiser
// @Summary Follow an ad
// @Tags Ads
// @Param id path string true "Ad ID"
// @Success 302
// @Failure 404 {object} ErrorResponse
// @Router /ads/{id}/click [get]
func (handler *adHandler) Click(ctx *gin.Context) {
	target, err := handler.adService.Click(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, target)
}

func (handler *adHandler) List(ctx *gin.Context) {
	query := content.NewAdQuery()
	if placement := ctx.Query("placement"); len(placement) > 0 {
		query.Placement = placement
	}
	if value := ctx.Query("active"); len(value) > 0 {
		active, err := strconv.ParseBool(value)
		if err != nil {
			writeError(ctx, apperr.NewValidationError("active", "boolean"))
			return
		}
		query.Active = &active
	}
	readPaging(ctx, &query.Limit, &query.Offset)

	ads, err := handler.adService.List(ctx, query)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := make([]AdResponse, 0, len(ads))
	for _, ad := range ads {
		response = append(response, newAdResponse(ad))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *adHandler) GetByID(ctx *gin.Context) {
	ad, err := handler.adService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newAdResponse(ad))
}

func (handler *adHandler) Create(ctx *gin.Context) {
	var request AdRequest
	if !bindJSON(ctx, &request) {
		return
	}

	ad, err := handler.adService.Create(ctx, request.ToDomain(""))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newAdResponse(ad))
}

func (handler *adHandler) Update(ctx *gin.Context) {
	var request AdRequest
	if !bindJSON(ctx, &request) {
		return
	}

	ad, err := handler.adService.Update(ctx, request.ToDomain(ctx.Param("id")))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newAdResponse(ad))
}

func (handler *adHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.adService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
