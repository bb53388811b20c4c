// Package usecase implements link and collection management on public profiles.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/atluixx/lynkt/internal/link/domain"
	userDomain "github.com/atluixx/lynkt/internal/user/domain"
)

// ProfileRepository resolves the public handle in link routes to its account.
type ProfileRepository interface {
	GetBySlug(ctx context.Context, slug string) (*userDomain.User, error)
}

// LinkRepository defines persistence operations for links.
// Every lookup is scoped to the owning account.
type LinkRepository interface {
	Create(ctx context.Context, link *domain.Link) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Link, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Link, error)
	Update(ctx context.Context, link *domain.Link) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	RegisterClick(ctx context.Context, userID, id uuid.UUID, now time.Time) (string, error)
}

// GroupRepository defines persistence operations for collections.
type GroupRepository interface {
	Create(ctx context.Context, group *domain.Group) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Group, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Group, error)
	Update(ctx context.Context, group *domain.Group) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// CreateLinkInput carries a validated new link.
type CreateLinkInput struct {
	URL         string
	Label       string
	Icon        *string
	GroupID     *uuid.UUID
	OrderIndex  int
	IsActive    bool
	MaxClicks   int
	ActiveUntil *time.Time
}

// UpdateLinkInput carries a partial link update. Nil fields are left unchanged.
type UpdateLinkInput struct {
	URL         *string
	Label       *string
	Icon        *string
	GroupID     *uuid.UUID
	OrderIndex  *int
	IsActive    *bool
	MaxClicks   *int
	ActiveUntil *time.Time
}

// LinkUseCase defines link operations. Mutations require the actor to own the profile.
type LinkUseCase interface {
	// List returns the links of the profile that are visible now, in display order.
	List(ctx context.Context, slug string) ([]*domain.Link, error)

	// Get returns one link of the profile.
	Get(ctx context.Context, slug string, id uuid.UUID) (*domain.Link, error)

	// Create adds a link. A group id must name a collection of the same profile.
	Create(ctx context.Context, actorID uuid.UUID, slug string, input CreateLinkInput) (*domain.Link, error)

	// Update applies a partial update to a link.
	Update(
		ctx context.Context,
		actorID uuid.UUID,
		slug string,
		id uuid.UUID,
		input UpdateLinkInput,
	) (*domain.Link, error)

	// Delete removes a link.
	Delete(ctx context.Context, actorID uuid.UUID, slug string, id uuid.UUID) error

	// Click counts a visit and returns the target URL.
	// Returns ErrLinkUnavailable when the link is not visible.
	Click(ctx context.Context, slug string, id uuid.UUID) (string, error)
}

// GroupUseCase defines collection operations. Mutations require the actor to own the profile.
type GroupUseCase interface {
	List(ctx context.Context, slug string) ([]*domain.Group, error)
	Create(ctx context.Context, actorID uuid.UUID, slug, title string) (*domain.Group, error)
	Rename(ctx context.Context, actorID uuid.UUID, slug string, id uuid.UUID, title string) (*domain.Group, error)
	Delete(ctx context.Context, actorID uuid.UUID, slug string, id uuid.UUID) error
}
