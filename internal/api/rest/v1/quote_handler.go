package v1

import (
	"net/http"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/services"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// QuoteHandler defines the interface for agency quote operations
type QuoteHandler interface {
	Submit(ctx *gin.Context)
	ListByApplication(ctx *gin.Context)
	Accept(ctx *gin.Context)
	Reject(ctx *gin.Context)
	Withdraw(ctx *gin.Context)
}

type quoteHandler struct {
	quoteService services.ServiceQuoteService
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(quoteService services.ServiceQuoteService) QuoteHandler {
	return &quoteHandler{quoteService: quoteService}
}

// Submit handles the POST request of an agency quoting on an application
// @Summary Quote on an application
// @Tags Quotes
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body SubmitQuoteRequest true "Offer"
// @Success 201 {object} QuoteResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /applications/{id}/quotes [post]
func (handler *quoteHandler) Submit(ctx *gin.Context) {
	var request SubmitQuoteRequest
	if !bindJSON(ctx, &request) {
		return
	}

	quote, err := handler.quoteService.Submit(ctx, principalFrom(ctx), ctx.Param("id"), request.Price, request.ProcessingDays, request.Notes, request.ValidUntil)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newQuoteResponse(quote))
}

// ListByApplication returns the quotes on an application visible to the caller
func (handler *quoteHandler) ListByApplication(ctx *gin.Context) {
	quotes, err := handler.quoteService.ListByApplication(ctx, principalFrom(ctx), ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := make([]QuoteResponse, 0, len(quotes))
	for _, quote := range quotes {
		response = append(response, newQuoteResponse(quote))
	}
	ctx.JSON(http.StatusOK, response)
}

func (handler *quoteHandler) resolve(ctx *gin.Context, action func(*gin.Context, *users.Principal, string) (*services.ServiceQuote, error)) {
	quote, err := action(ctx, principalFrom(ctx), ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newQuoteResponse(quote))
}

// Accept accepts a quote; the application is approved and invoiced
func (handler *quoteHandler) Accept(ctx *gin.Context) {
	handler.resolve(ctx, func(c *gin.Context, p *users.Principal, id string) (*services.ServiceQuote, error) {
		return handler.quoteService.Accept(c, p, id)
	})
}

// Reject declines a quote
func (handler *quoteHandler) Reject(ctx *gin.Context) {
	handler.resolve(ctx, func(c *gin.Context, p *users.Principal, id string) (*services.ServiceQuote, error) {
		return handler.quoteService.Reject(c, p, id)
	})
}

// Withdraw retracts the calling agency's quote
func (handler *quoteHandler) Withdraw(ctx *gin.Context) {
	handler.resolve(ctx, func(c *gin.Context, p *users.Principal, id string) (*services.ServiceQuote, error) {
		return handler.quoteService.Withdraw(c, p, id)
	})
}
