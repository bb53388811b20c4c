package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/atluixx/lynkt/internal/auth/domain"
)

// CookieConfig holds the deployment-specific attributes of the session cookie.
type CookieConfig struct {
	Secure   bool
	SameSite http.SameSite
}

// SetSessionCookie writes the token as an HTTP-only cookie scoped to "/" that
// expires together with the token.
func SetSessionCookie(c *gin.Context, cfg CookieConfig, token *authDomain.IssuedToken) {
	c.SetSameSite(cfg.SameSite)
	c.SetCookie(authDomain.TokenCookieName, token.Token, token.MaxAge(), "/", "", cfg.Secure, true)
}

// ClearSessionCookie instructs the browser to drop the session cookie.
func ClearSessionCookie(c *gin.Context, cfg CookieConfig) {
	c.SetSameSite(cfg.SameSite)
	c.SetCookie(authDomain.TokenCookieName, "", -1, "/", "", cfg.Secure, true)
}
