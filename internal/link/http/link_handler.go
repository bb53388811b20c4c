// Package http provides the link and collection handlers nested under a profile.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/atluixx/lynkt/internal/auth/domain"
	"github.com/atluixx/lynkt/internal/httputil"
	"github.com/atluixx/lynkt/internal/link/http/dto"
	"github.com/atluixx/lynkt/internal/link/usecase"
	customValidation "github.com/atluixx/lynkt/internal/validation"
)

var (
	errInvalidLinkID  = errors.New("invalid link id: must be a UUID")
	errInvalidGroupID = errors.New("invalid group id: must be a UUID")
)

// LinkHandler handles HTTP requests for links.
type LinkHandler struct {
	linkUseCase usecase.LinkUseCase
	logger      *slog.Logger
}

// NewLinkHandler creates a new link handler with required dependencies.
func NewLinkHandler(linkUseCase usecase.LinkUseCase, logger *slog.Logger) *LinkHandler {
	return &LinkHandler{
		linkUseCase: linkUseCase,
		logger:      logger,
	}
}

// ListHandler lists the visible links of a profile.
// GET /users/:slug/links/ - Returns 200 OK with {"links": [...]}.
func (h *LinkHandler) ListHandler(c *gin.Context) {
	links, err := h.linkUseCase.List(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLinksToListResponse(links))
}

// GetHandler returns one link of a profile.
// GET /users/:slug/links/:id/ - Returns 200 OK with {"link": ...}.
func (h *LinkHandler) GetHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	link, err := h.linkUseCase.Get(c.Request.Context(), c.Param("slug"), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLinkToEnvelope(link))
}

// CreateHandler adds a link to the caller's own profile.
// POST /users/:slug/links/ - Requires the token gate. Returns 201 Created with {"link": ...}.
func (h *LinkHandler) CreateHandler(c *gin.Context, claims authDomain.Claims) {
	actorID, err := claims.AccountID()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.CreateLinkRequest

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

	link, err := h.linkUseCase.Create(c.Request.Context(), actorID, c.Param("slug"), req.ToCreateLinkInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapLinkToEnvelope(link))
}

// UpdateHandler applies a partial update to a link on the caller's own profile.
// PATCH /users/:slug/links/:id/ - Requires the token gate. Returns 200 OK with {"link": ...}.
func (h *LinkHandler) UpdateHandler(c *gin.Context, claims authDomain.Claims) {
	actorID, err := claims.AccountID()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateLinkRequest

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

	link, err := h.linkUseCase.Update(c.Request.Context(), actorID, c.Param("slug"), id, req.ToUpdateLinkInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLinkToEnvelope(link))
}

// DeleteHandler removes a link from the caller's own profile.
// DELETE /users/:slug/links/:id/ - Requires the token gate. Returns 204 No Content.
func (h *LinkHandler) DeleteHandler(c *gin.Context, claims authDomain.Claims) {
	actorID, err := claims.AccountID()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.linkUseCase.Delete(c.Request.Context(), actorID, c.Param("slug"), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// ClickHandler counts a visit and returns where to send the visitor.
// POST /users/:slug/links/:id/click/ - Returns 200 OK with {"url": ...}, or 404 when unavailable.
func (h *LinkHandler) ClickHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	url, err := h.linkUseCase.Click(c.Request.Context(), c.Param("slug"), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ClickResponse{URL: url})
}

func (h *LinkHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, errInvalidLinkID, h.logger)
		return uuid.Nil, false
	}
	return id, true
}
