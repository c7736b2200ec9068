package v1

import (
	"errors"
	"net/http"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request. Errors maps field names
// to the violated rule on validation failures.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// InfoResponse acknowledges requests that return no resource
type InfoResponse struct {
	Message string `json:"message"`
}

// statusFor maps an error kind to its HTTP status code
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	}
	return http.StatusInternalServerError
}

// writeError aborts the request with the status matching err. Internal errors
// are attached to the context for the request logger and not echoed to the client.
func writeError(ctx *gin.Context, err error) {
	status := statusFor(err)
	response := ErrorResponse{Message: err.Error()}

	var validationErr *apperr.ValidationError
	if errors.As(err, &validationErr) {
		response.Message = "validation failed"
		response.Errors = validationErr.Fields
	}
	if status == http.StatusInternalServerError {
		_ = ctx.Error(err)
		response.Message = "internal server error"
	}

	ctx.AbortWithStatusJSON(status, response)
}

// bindJSON decodes the request body into req and validates it. It writes the
// error response itself and reports whether the handler may continue.
func bindJSON(ctx *gin.Context, req interface{ Validate() error }) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body: " + err.Error()})
		return false
	}
	if err := req.Validate(); err != nil {
		writeError(ctx, err)
		return false
	}
	return true
}

// readPaging overrides the query defaults with the limit and offset parameters when present.
// A limit that is not a positive number keeps the default, never an unbounded list.
func readPaging(ctx *gin.Context, limit, offset *int) {
	if value := ctx.Query("limit"); len(value) > 0 {
		if n := utils.ConvertToInt(value); n > 0 {
			*limit = n
		}
	}
	if value := ctx.Query("offset"); len(value) > 0 {
		if n := utils.ConvertToInt(value); n >= 0 {
			*offset = n
		}
	}
}

// readSorting overrides the query defaults with the sortBy and sortOrder parameters when present
func readSorting(ctx *gin.Context, sortBy, sortOrder *string) {
	if value := ctx.Query("sortBy"); len(value) > 0 {
		*sortBy = value
	}
	if value := ctx.Query("sortOrder"); len(value) > 0 {
		*sortOrder = value
	}
}
