package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/atluixx/lynkt/internal/auth/domain"
	"github.com/atluixx/lynkt/internal/auth/http/dto"
	authUseCase "github.com/atluixx/lynkt/internal/auth/usecase"
	apperrors "github.com/atluixx/lynkt/internal/errors"
	"github.com/atluixx/lynkt/internal/httputil"
	userDTO "github.com/atluixx/lynkt/internal/user/http/dto"
	customValidation "github.com/atluixx/lynkt/internal/validation"
)

// AuthHandler handles registration, login, session lookup and logout.
type AuthHandler struct {
	authUseCase authUseCase.UseCase
	cookie      CookieConfig
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(useCase authUseCase.UseCase, cookie CookieConfig, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: useCase,
		cookie:      cookie,
		logger:      logger,
	}
}

// RegisterHandler creates a new account.
// POST /auth/register/ - Returns 201 Created with {"user": projection}.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest

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

	user, err := h.authUseCase.Register(c.Request.Context(), req.ToRegisterInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, userDTO.MapUserToEnvelope(user))
}

// LoginHandler verifies credentials and sets the session cookie.
// POST /auth/login/ - Returns 200 OK with {"user": projection}.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

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

	output, err := h.authUseCase.Login(c.Request.Context(), req.ToLoginInput())
	if err != nil {
		if apperrors.Is(err, authDomain.ErrInvalidCredentials) {
			httputil.HandleErrorWithCodeGin(c, err, authDomain.CodeInvalidCredentials, h.logger)
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	SetSessionCookie(c, h.cookie, output.Token)
	c.JSON(http.StatusOK, userDTO.MapUserToEnvelope(output.User))
}

// MeHandler returns the account behind the verified session.
// POST /auth/me/ - Requires the token gate. Returns 200 OK with {"user": projection}.
func (h *AuthHandler) MeHandler(c *gin.Context, claims authDomain.Claims) {
	user, err := h.authUseCase.Me(c.Request.Context(), claims)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, userDTO.MapUserToEnvelope(user))
}

// LogoutHandler clears the session cookie. Tokens are stateless, so nothing is revoked.
// POST /auth/logout/ - Returns 204 No Content.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	ClearSessionCookie(c, h.cookie)
	c.Status(http.StatusNoContent)
}
