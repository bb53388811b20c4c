// Package domain defines the session and credential model shared by the auth
// service, use cases and HTTP layer.
//
// Sessions are stateless: a signed token carries the account id as its subject
// and lives in an HTTP-only cookie. Nothing about a session is persisted.
package domain

const (
	// TokenCookieName is the cookie carrying the session token.
	TokenCookieName = "token"

	// FrontendSecretHeader is the header the trusted frontend sends its shared secret in.
	FrontendSecretHeader = "X-Frontend-Secret" //nolint:gosec // header name, not a credential
)

// Machine-readable rejection codes returned in the "code" field of auth errors.
const (
	CodeFrontendSecretMissing = "frontend_secret_missing"
	CodeFrontendSecretInvalid = "frontend_secret_invalid"
	CodeTokenCookieMissing    = "token_cookie_missing"
	CodeTokenExpired          = "token_expired"
	CodeTokenInvalid          = "token_invalid"
	CodeInvalidCredentials    = "invalid_credentials"
)
