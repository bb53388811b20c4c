// Package http provides the auth gates and the register, login, me and logout handlers.
package http

import (
	"context"

	authDomain "github.com/atluixx/lynkt/internal/auth/domain"
)

// authClaimsKey is a context key type for storing verified token claims.
type authClaimsKey struct{}

// WithAuthClaims stores verified claims in the context.
// This is called by AuthenticationMiddleware after a token verifies as Valid.
func WithAuthClaims(ctx context.Context, claims authDomain.Claims) context.Context {
	return context.WithValue(ctx, authClaimsKey{}, claims)
}

// GetAuthClaims retrieves verified claims from the context.
// Returns (claims, true) if present, or (zero, false) if the token gate did not run.
func GetAuthClaims(ctx context.Context) (authDomain.Claims, bool) {
	claims, ok := ctx.Value(authClaimsKey{}).(authDomain.Claims)
	return claims, ok
}
