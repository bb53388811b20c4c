package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atluixx/lynkt/internal/user/domain"
)

// userUseCase implements UseCase.
type userUseCase struct {
	userRepo UserRepository
	hasher   PasswordHasher
}

// NewUserUseCase creates a new profile UseCase.
func NewUserUseCase(userRepo UserRepository, hasher PasswordHasher) UseCase {
	return &userUseCase{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// List returns a page of public profiles.
func (uc *userUseCase) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	return uc.userRepo.List(ctx, offset, limit)
}

// GetBySlug returns the profile behind a public handle.
func (uc *userUseCase) GetBySlug(ctx context.Context, slug string) (*domain.User, error) {
	return uc.userRepo.GetBySlug(ctx, slug)
}

// Update applies a partial profile update on behalf of its owner.
func (uc *userUseCase) Update(
	ctx context.Context,
	actorID uuid.UUID,
	slug string,
	input UpdateUserInput,
) (*domain.User, error) {
	user, err := uc.owned(ctx, actorID, slug)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Slug != nil {
		user.Slug = *input.Slug
	}
	if input.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Country != nil {
		user.Country = strings.TrimSpace(*input.Country)
	}
	if input.Password != nil {
		hash, err := uc.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the account on behalf of its owner.
func (uc *userUseCase) Delete(ctx context.Context, actorID uuid.UUID, slug string) error {
	user, err := uc.owned(ctx, actorID, slug)
	if err != nil {
		return err
	}
	return uc.userRepo.Delete(ctx, user.ID)
}

// IsSlugAvailable reports whether slug is still free.
func (uc *userUseCase) IsSlugAvailable(ctx context.Context, slug string) (bool, error) {
	exists, err := uc.userRepo.SlugExists(ctx, slug)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

func (uc *userUseCase) owned(ctx context.Context, actorID uuid.UUID, slug string) (*domain.User, error) {
	user, err := uc.userRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !user.IsOwnedBy(actorID) {
		return nil, domain.ErrNotOwner
	}
	return user, nil
}
