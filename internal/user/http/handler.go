// Package http provides the public profile, profile management and slug check handlers.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/atluixx/lynkt/internal/auth/domain"
	authHTTP "github.com/atluixx/lynkt/internal/auth/http"
	"github.com/atluixx/lynkt/internal/httputil"
	"github.com/atluixx/lynkt/internal/user/http/dto"
	"github.com/atluixx/lynkt/internal/user/usecase"
	customValidation "github.com/atluixx/lynkt/internal/validation"
)

// UserHandler handles HTTP requests for profiles.
type UserHandler struct {
	userUseCase usecase.UseCase
	cookie      authHTTP.CookieConfig
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(userUseCase usecase.UseCase, cookie authHTTP.CookieConfig, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		cookie:      cookie,
		logger:      logger,
	}
}

// ListHandler lists public profiles with pagination.
// GET /users/?offset=0&limit=20 - Returns 200 OK with {"data": [...]}.
func (h *UserHandler) ListHandler(c *gin.Context) {
	page, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	users, err := h.userUseCase.List(c.Request.Context(), page.Offset, page.Limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUsersToListResponse(users))
}

// GetHandler returns one public profile.
// GET /users/:slug/ - Returns 200 OK with {"user": projection}.
func (h *UserHandler) GetHandler(c *gin.Context) {
	user, err := h.userUseCase.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToEnvelope(user))
}

// UpdateHandler applies a partial update to the caller's own profile.
// PATCH /users/:slug/ - Requires the token gate. Returns 200 OK with {"user": projection}.
func (h *UserHandler) UpdateHandler(c *gin.Context, claims authDomain.Claims) {
	actorID, err := claims.AccountID()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateUserRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.userUseCase.Update(c.Request.Context(), actorID, c.Param("slug"), req.ToUpdateUserInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToEnvelope(user))
}

// DeleteHandler removes the caller's own account and ends the session.
// DELETE /users/:slug/ - Requires the token gate. Returns 204 No Content.
func (h *UserHandler) DeleteHandler(c *gin.Context, claims authDomain.Claims) {
	actorID, err := claims.AccountID()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), actorID, c.Param("slug")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	authHTTP.ClearSessionCookie(c, h.cookie)
	c.Status(http.StatusNoContent)
}

// SlugCheckHandler reports whether a slug can still be registered.
// GET /slug/check/:slug/ - Returns 200 OK with {"slug": ..., "available": bool}.
func (h *UserHandler) SlugCheckHandler(c *gin.Context) {
	slug := c.Param("slug")

	available, err := h.userUseCase.IsSlugAvailable(c.Request.Context(), slug)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.SlugAvailabilityResponse{Slug: slug, Available: available})
}
