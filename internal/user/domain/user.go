// Package domain defines the account entity behind every public profile.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/atluixx/lynkt/internal/errors"
)

// DefaultBio is stored when a registration omits the bio.
const DefaultBio = "Hey! I am using Lynkt!"

// User is a registered account. Its slug is the public handle in profile URLs.
type User struct {
	ID           uuid.UUID
	Name         string
	Slug         string
	Email        string
	PasswordHash string `json:"-"`
	Bio          string
	Country      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOwnedBy reports whether the account belongs to the authenticated actor.
func (u *User) IsOwnedBy(actorID uuid.UUID) bool {
	return u != nil && u.ID == actorID
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates the email or slug is already registered.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "email or slug already in use")

	// ErrNotOwner indicates the authenticated actor does not own the profile.
	ErrNotOwner = errors.Wrap(errors.ErrForbidden, "profile belongs to another account")
)
