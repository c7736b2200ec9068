package v1

import (
	"net/http"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for account and session operations
type AuthHandler interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Me(ctx *gin.Context)
	ListUsers(ctx *gin.Context)
}

type authHandler struct {
	authService users.AuthService
	userService users.UserService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService users.AuthService, userService users.UserService) AuthHandler {
	return &authHandler{
		authService: authService,
		userService: userService,
	}
}

// Register handles the POST request to create a customer account
// @Summary Register a customer account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} UserResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /auth/register [post]
func (handler *authHandler) Register(ctx *gin.Context) {
	var request RegisterRequest
	if !bindJSON(ctx, &request) {
		return
	}

	user, err := handler.authService.Register(ctx, request.Name, request.Email, request.Password, request.Phone)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newUserResponse(user))
}

// Login handles the POST request exchanging credentials for a bearer token
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if !bindJSON(ctx, &request) {
		return
	}

	token, expiresAt, user, err := handler.authService.Login(ctx, request.Email, request.Password)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, TokenResponse{Token: token, ExpiresAt: expiresAt, User: newUserResponse(user)})
}

// Me returns the account behind the bearer token
func (handler *authHandler) Me(ctx *gin.Context) {
	principal := principalFrom(ctx)
	if principal == nil {
		writeError(ctx, apperr.ErrUnauthorized)
		return
	}

	user, err := handler.userService.GetByID(ctx, principal.UserID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// ListUsers returns accounts filtered by role and email
func (handler *authHandler) ListUsers(ctx *gin.Context) {
	query := users.NewUserQuery()
	if role := ctx.Query("role"); len(role) > 0 {
		query.Role = role
	}
	if email := ctx.Query("email"); len(email) > 0 {
		query.Email = email
	}
	readPaging(ctx, &query.Limit, &query.Offset)
	readSorting(ctx, &query.SortBy, &query.SortOrder)

	list, err := handler.userService.List(ctx, query)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := make([]UserResponse, 0, len(list))
	for _, user := range list {
		response = append(response, newUserResponse(user))
	}
	ctx.JSON(http.StatusOK, response)
}
