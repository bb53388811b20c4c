package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/atluixx/lynkt/internal/database"
	"github.com/atluixx/lynkt/internal/link/domain"
	userDomain "github.com/atluixx/lynkt/internal/user/domain"
)

// linkUseCase implements LinkUseCase.
type linkUseCase struct {
	txManager database.TxManager
	profiles  ProfileRepository
	linkRepo  LinkRepository
	groupRepo GroupRepository
}

// NewLinkUseCase creates a new LinkUseCase.
func NewLinkUseCase(
	txManager database.TxManager,
	profiles ProfileRepository,
	linkRepo LinkRepository,
	groupRepo GroupRepository,
) LinkUseCase {
	return &linkUseCase{
		txManager: txManager,
		profiles:  profiles,
		linkRepo:  linkRepo,
		groupRepo: groupRepo,
	}
}

// List returns the visible links of a profile.
func (uc *linkUseCase) List(ctx context.Context, slug string) ([]*domain.Link, error) {
	user, err := uc.profiles.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	links, err := uc.linkRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	visible := make([]*domain.Link, 0, len(links))
	for _, link := range links {
		if link.IsVisible(now) {
			visible = append(visible, link)
		}
	}
	return visible, nil
}

// Get returns one link of a profile.
func (uc *linkUseCase) Get(ctx context.Context, slug string, id uuid.UUID) (*domain.Link, error) {
	user, err := uc.profiles.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return uc.linkRepo.GetByID(ctx, user.ID, id)
}

// Create adds a link to the actor's own profile.
func (uc *linkUseCase) Create(
	ctx context.Context,
	actorID uuid.UUID,
	slug string,
	input CreateLinkInput,
) (*domain.Link, error) {
	user, err := ownedProfile(ctx, uc.profiles, actorID, slug)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	link := &domain.Link{
		ID:          uuid.Must(uuid.NewV7()),
		UserID:      user.ID,
		GroupID:     input.GroupID,
		URL:         input.URL,
		Label:       input.Label,
		Icon:        input.Icon,
		OrderIndex:  input.OrderIndex,
		IsActive:    input.IsActive,
		MaxClicks:   input.MaxClicks,
		ActiveUntil: input.ActiveUntil,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.checkGroup(ctx, user, link.GroupID); err != nil {
			return err
		}
		return uc.linkRepo.Create(ctx, link)
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

// Update applies a partial update to a link of the actor's own profile.
func (uc *linkUseCase) Update(
	ctx context.Context,
	actorID uuid.UUID,
	slug string,
	id uuid.UUID,
	input UpdateLinkInput,
) (*domain.Link, error) {
	user, err := ownedProfile(ctx, uc.profiles, actorID, slug)
	if err != nil {
		return nil, err
	}

	var link *domain.Link
	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		current, err := uc.linkRepo.GetByID(ctx, user.ID, id)
		if err != nil {
			return err
		}

		if input.GroupID != nil {
			if err := uc.checkGroup(ctx, user, input.GroupID); err != nil {
				return err
			}
			current.GroupID = input.GroupID
		}
		applyLinkUpdate(current, input)
		current.UpdatedAt = time.Now().UTC()

		if err := uc.linkRepo.Update(ctx, current); err != nil {
			return err
		}
		link = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

// Delete removes a link of the actor's own profile.
func (uc *linkUseCase) Delete(ctx context.Context, actorID uuid.UUID, slug string, id uuid.UUID) error {
	user, err := ownedProfile(ctx, uc.profiles, actorID, slug)
	if err != nil {
		return err
	}
	return uc.linkRepo.Delete(ctx, user.ID, id)
}

// Click counts a visit to a visible link.
func (uc *linkUseCase) Click(ctx context.Context, slug string, id uuid.UUID) (string, error) {
	user, err := uc.profiles.GetBySlug(ctx, slug)
	if err != nil {
		return "", err
	}

	var url string
	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		url, err = uc.linkRepo.RegisterClick(ctx, user.ID, id, time.Now().UTC())
		return err
	})
	if err != nil {
		return "", err
	}
	return url, nil
}

// checkGroup verifies that groupID, when set, names a collection of user.
func (uc *linkUseCase) checkGroup(ctx context.Context, user *userDomain.User, groupID *uuid.UUID) error {
	if groupID == nil {
		return nil
	}
	if _, err := uc.groupRepo.GetByID(ctx, user.ID, *groupID); err != nil {
		if errors.Is(err, domain.ErrGroupNotFound) {
			return domain.ErrForeignGroup
		}
		return err
	}
	return nil
}

func applyLinkUpdate(link *domain.Link, input UpdateLinkInput) {
	if input.URL != nil {
		link.URL = *input.URL
	}
	if input.Label != nil {
		link.Label = *input.Label
	}
	if input.Icon != nil {
		link.Icon = input.Icon
	}
	if input.OrderIndex != nil {
		link.OrderIndex = *input.OrderIndex
	}
	if input.IsActive != nil {
		link.IsActive = *input.IsActive
	}
	if input.MaxClicks != nil {
		link.MaxClicks = *input.MaxClicks
	}
	if input.ActiveUntil != nil {
		link.ActiveUntil = input.ActiveUntil
	}
}
