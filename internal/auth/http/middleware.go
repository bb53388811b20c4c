package http

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"log/slog"

	"github.com/gin-gonic/gin"

	authDomain "github.com/atluixx/lynkt/internal/auth/domain"
	authService "github.com/atluixx/lynkt/internal/auth/service"
	apperrors "github.com/atluixx/lynkt/internal/errors"
	"github.com/atluixx/lynkt/internal/httputil"
	userDomain "github.com/atluixx/lynkt/internal/user/domain"
)

// ProfileResolver looks up the profile named by a route's :slug parameter.
type ProfileResolver interface {
	GetBySlug(ctx context.Context, slug string) (*userDomain.User, error)
}

// FrontendSecretMiddleware admits only requests carrying the shared frontend secret
// in the X-Frontend-Secret header.
//
// Error handling:
//   - Missing header → 401 Unauthorized, code "frontend_secret_missing"
//   - Mismatched header → 401 Unauthorized, code "frontend_secret_invalid"
//
// Both values are reduced to SHA-256 digests before a constant-time compare, so
// neither the content nor the length of the secret leaks through timing.
func FrontendSecretMiddleware(secret string, logger *slog.Logger) gin.HandlerFunc {
	expected := sha256.Sum256([]byte(secret))

	return func(c *gin.Context) {
		presented := c.GetHeader(authDomain.FrontendSecretHeader)
		if presented == "" {
			reject(c, authDomain.ErrFrontendSecretMissing, authDomain.CodeFrontendSecretMissing, logger)
			return
		}

		digest := sha256.Sum256([]byte(presented))
		if subtle.ConstantTimeCompare(digest[:], expected[:]) != 1 {
			reject(c, authDomain.ErrFrontendSecretInvalid, authDomain.CodeFrontendSecretInvalid, logger)
			return
		}

		c.Next()
	}
}

// AuthenticationMiddleware verifies the session token carried in the "token" cookie.
//
// The middleware:
//  1. Reads the "token" cookie; a missing or empty cookie is a client usage error
//  2. Verifies it with the TokenCodec
//  3. On Valid, stores the claims in the request context and calls the next handler
//
// Error handling:
//   - Missing cookie → 400 Bad Request, code "token_cookie_missing"
//   - Expired token → 401 Unauthorized, code "token_expired"
//   - Invalid token → 401 Unauthorized, code "token_invalid"
//
// No persistence is touched; rejection aborts the chain so the handler never runs.
func AuthenticationMiddleware(codec authService.TokenCodec, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(authDomain.TokenCookieName)
		if err != nil || token == "" {
			reject(c, authDomain.ErrTokenCookieMissing, authDomain.CodeTokenCookieMissing, logger)
			return
		}

		switch outcome := codec.Verify(token).(type) {
		case authDomain.Valid:
			ctx := WithAuthClaims(c.Request.Context(), outcome.Claims)
			c.Request = c.Request.WithContext(ctx)

			if logger != nil {
				logger.Debug("authentication successful", slog.String("subject", outcome.Claims.Subject))
			}

			c.Next()
		case authDomain.Expired:
			if logger != nil {
				logger.Debug("authentication failed: token expired", slog.Time("expired_at", outcome.ExpiredAt))
			}
			reject(c, authDomain.ErrTokenExpired, authDomain.CodeTokenExpired, logger)
		case authDomain.Invalid:
			if logger != nil {
				logger.Debug("authentication failed: token invalid", slog.Any("reason", outcome.Reason))
			}
			reject(c, authDomain.ErrTokenInvalid, authDomain.CodeTokenInvalid, logger)
		default:
			reject(c, authDomain.ErrTokenInvalid, authDomain.CodeTokenInvalid, logger)
		}
	}
}

// WithClaims adapts a handler that takes verified claims as an explicit argument.
// It must run behind AuthenticationMiddleware; without claims it rejects with 401.
//
// Usage:
//
//	router.POST("/auth/me/",
//	    AuthenticationMiddleware(codec, logger),
//	    WithClaims(handler.MeHandler))
func WithClaims(fn func(c *gin.Context, claims authDomain.Claims)) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetAuthClaims(c.Request.Context())
		if !ok {
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, nil)
			c.Abort()
			return
		}
		fn(c, claims)
	}
}

// OwnershipMiddleware admits only the owner of the profile named by :slug.
// It must run behind AuthenticationMiddleware and before any body is bound, so a
// foreign caller learns nothing about payload rules.
//
// Error handling:
//   - Unknown slug → 404 Not Found
//   - Profile owned by another account → 403 Forbidden
func OwnershipMiddleware(profiles ProfileResolver, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetAuthClaims(c.Request.Context())
		if !ok {
			reject(c, apperrors.ErrUnauthorized, "", logger)
			return
		}

		actorID, err := claims.AccountID()
		if err != nil {
			reject(c, err, "", logger)
			return
		}

		user, err := profiles.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			reject(c, err, "", logger)
			return
		}

		if !user.IsOwnedBy(actorID) {
			reject(c, userDomain.ErrNotOwner, "", logger)
			return
		}

		c.Next()
	}
}

func reject(c *gin.Context, err error, code string, logger *slog.Logger) {
	httputil.HandleErrorWithCodeGin(c, err, code, logger)
	c.Abort()
}
