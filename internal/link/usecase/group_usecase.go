package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atluixx/lynkt/internal/link/domain"
)

// groupUseCase implements GroupUseCase.
type groupUseCase struct {
	profiles  ProfileRepository
	groupRepo GroupRepository
}

// NewGroupUseCase creates a new GroupUseCase.
func NewGroupUseCase(profiles ProfileRepository, groupRepo GroupRepository) GroupUseCase {
	return &groupUseCase{
		profiles:  profiles,
		groupRepo: groupRepo,
	}
}

// List returns the collections of a profile.
func (uc *groupUseCase) List(ctx context.Context, slug string) ([]*domain.Group, error) {
	user, err := uc.profiles.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return uc.groupRepo.ListByUser(ctx, user.ID)
}

// Create adds a collection to the actor's own profile.
func (uc *groupUseCase) Create(ctx context.Context, actorID uuid.UUID, slug, title string) (*domain.Group, error) {
	user, err := ownedProfile(ctx, uc.profiles, actorID, slug)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	group := &domain.Group{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    user.ID,
		Title:     strings.TrimSpace(title),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// Rename changes the title of a collection on the actor's own profile.
func (uc *groupUseCase) Rename(
	ctx context.Context,
	actorID uuid.UUID,
	slug string,
	id uuid.UUID,
	title string,
) (*domain.Group, error) {
	user, err := ownedProfile(ctx, uc.profiles, actorID, slug)
	if err != nil {
		return nil, err
	}

	group, err := uc.groupRepo.GetByID(ctx, user.ID, id)
	if err != nil {
		return nil, err
	}

	group.Title = strings.TrimSpace(title)
	group.UpdatedAt = time.Now().UTC()

	if err := uc.groupRepo.Update(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// Delete removes a collection from the actor's own profile. Its links become ungrouped.
func (uc *groupUseCase) Delete(ctx context.Context, actorID uuid.UUID, slug string, id uuid.UUID) error {
	user, err := ownedProfile(ctx, uc.profiles, actorID, slug)
	if err != nil {
		return err
	}
	return uc.groupRepo.Delete(ctx, user.ID, id)
}
