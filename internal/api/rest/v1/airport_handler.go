package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/catalog"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AirportHandler defines the interface for airport lookups
type AirportHandler interface {
	Search(ctx *gin.Context)
	GetByIATA(ctx *gin.Context)
	Import(ctx *gin.Context)
}

type airportHandler struct {
	airportService catalog.AirportService
}

// NewAirportHandler creates a new AirportHandler
func NewAirportHandler(airportService catalog.AirportService) AirportHandler {
	return &airportHandler{airportService: airportService}
}

// Search suggests airports for a flight search box
// @Summary Search airports
// @Tags Airports
// @Produce json
// @Param q query string false "IATA prefix, city or name"
// @Param limit query int false "Limit, default 10, max 50"
// @Success 200 {array} AirportResponse
// @Failure 422 {object} ErrorResponse
// @Router /airports [get]
func (handler *airportHandler) Search(ctx *gin.Context) {
	search := &catalog.AirportSearch{Query: ctx.Query("q")}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		search.Limit = utils.ConvertToInt(limit)
	}

	airports, err := handler.airportService.Search(ctx, search)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := make([]AirportResponse, 0, len(airports))
	for _, airport := range airports {
		response = append(response, newAirportResponse(airport))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *airportHandler) GetByIATA(ctx *gin.Context) {
	airport, err := handler.airportService.GetByIATA(ctx, ctx.Param("iata"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newAirportResponse(airport))
}

// Import upserts airports from the CSV in the multipart field "file"
func (handler *airportHandler) Import(ctx *gin.Context) {
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

	result, err := handler.airportService.Import(ctx, file)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ImportResponse{Imported: result.Imported, Skipped: result.Skipped})
}
