package http

import (
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

// GroupHandler handles HTTP requests for link collections.
type GroupHandler struct {
	groupUseCase usecase.GroupUseCase
	logger       *slog.Logger
}

// NewGroupHandler creates a new group handler with required dependencies.
func NewGroupHandler(groupUseCase usecase.GroupUseCase, logger *slog.Logger) *GroupHandler {
	return &GroupHandler{
		groupUseCase: groupUseCase,
		logger:       logger,
	}
}

// ListHandler lists the collections of a profile.
// GET /users/:slug/groups/ - Returns 200 OK with {"groups": [...]}.
func (h *GroupHandler) ListHandler(c *gin.Context) {
	groups, err := h.groupUseCase.List(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapGroupsToListResponse(groups))
}

// CreateHandler adds a collection to the caller's own profile.
// POST /users/:slug/groups/ - Requires the token gate. Returns 201 Created with {"group": ...}.
func (h *GroupHandler) CreateHandler(c *gin.Context, claims authDomain.Claims) {
	actorID, err := claims.AccountID()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	req, ok := h.bind(c)
	if !ok {
		return
	}

	group, err := h.groupUseCase.Create(c.Request.Context(), actorID, c.Param("slug"), req.Title)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapGroupToEnvelope(group))
}

// RenameHandler changes the title of a collection.
// PATCH /users/:slug/groups/:id/ - Requires the token gate. Returns 200 OK with {"group": ...}.
func (h *GroupHandler) RenameHandler(c *gin.Context, claims authDomain.Claims) {
	actorID, err := claims.AccountID()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, errInvalidGroupID, h.logger)
		return
	}

	req, ok := h.bind(c)
	if !ok {
		return
	}

	group, err := h.groupUseCase.Rename(c.Request.Context(), actorID, c.Param("slug"), id, req.Title)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapGroupToEnvelope(group))
}

// DeleteHandler removes a collection. Its links stay on the profile, ungrouped.
// DELETE /users/:slug/groups/:id/ - Requires the token gate. Returns 204 No Content.
func (h *GroupHandler) DeleteHandler(c *gin.Context, claims authDomain.Claims) {
	actorID, err := claims.AccountID()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, errInvalidGroupID, h.logger)
		return
	}

	if err := h.groupUseCase.Delete(c.Request.Context(), actorID, c.Param("slug"), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *GroupHandler) bind(c *gin.Context) (*dto.GroupRequest, bool) {
	var req dto.GroupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return nil, false
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return nil, false
	}
	return &req, true
}
