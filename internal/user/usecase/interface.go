// Package usecase implements profile management for registered accounts.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/atluixx/lynkt/internal/user/domain"
)

// UserRepository defines persistence operations for accounts.
// Implementations must support transaction-aware operations via context propagation.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetBySlug(ctx context.Context, slug string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// PasswordHasher derives a hash for a new password.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// UpdateUserInput carries a partial profile update. Nil fields are left unchanged.
type UpdateUserInput struct {
	Name     *string
	Slug     *string
	Email    *string
	Password *string
	Bio      *string
	Country  *string
}

// UseCase defines profile operations.
type UseCase interface {
	// List returns a page of public profiles.
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)

	// GetBySlug returns the profile behind a public handle.
	GetBySlug(ctx context.Context, slug string) (*domain.User, error)

	// Update applies a partial update to the profile at slug. The actor must own it.
	// A new password is rehashed before it is stored.
	Update(ctx context.Context, actorID uuid.UUID, slug string, input UpdateUserInput) (*domain.User, error)

	// Delete removes the account at slug together with its links and groups. The actor must own it.
	Delete(ctx context.Context, actorID uuid.UUID, slug string) error

	// IsSlugAvailable reports whether slug can still be registered.
	IsSlugAvailable(ctx context.Context, slug string) (bool, error)
}
