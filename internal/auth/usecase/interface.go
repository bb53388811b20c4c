// Package usecase orchestrates registration, login and session lookup on top of
// the credential hasher, the token codec and the account store.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/atluixx/lynkt/internal/auth/domain"
	userDomain "github.com/atluixx/lynkt/internal/user/domain"
)

// UserRepository is the slice of account persistence the auth flows need.
type UserRepository interface {
	Create(ctx context.Context, user *userDomain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error)
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)
}

// RegisterInput is a validated registration payload. A nil Bio stores the default bio.
type RegisterInput struct {
	Name     string
	Slug     string
	Email    string
	Password string //nolint:gosec // plaintext only until hashed
	Country  string
	Bio      *string
}

// LoginInput carries the credentials presented at login.
type LoginInput struct {
	Email    string
	Password string //nolint:gosec // plaintext only until verified
}

// LoginOutput is the authenticated account and the session token issued for it.
type LoginOutput struct {
	User  *userDomain.User
	Token *authDomain.IssuedToken
}

// UseCase defines the auth flows.
type UseCase interface {
	// Register hashes the password and stores a new account.
	// Returns ErrUserAlreadyExists when the email or slug is taken.
	Register(ctx context.Context, input RegisterInput) (*userDomain.User, error)

	// Login verifies credentials and issues a session token. An unknown email and
	// a wrong password both return ErrInvalidCredentials.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Me resolves verified claims to the account they belong to.
	Me(ctx context.Context, claims authDomain.Claims) (*userDomain.User, error)
}
