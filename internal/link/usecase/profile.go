package usecase

import (
	"context"

	"github.com/google/uuid"

	userDomain "github.com/atluixx/lynkt/internal/user/domain"
)

// ownedProfile resolves slug and checks that actorID owns it.
func ownedProfile(
	ctx context.Context,
	profiles ProfileRepository,
	actorID uuid.UUID,
	slug string,
) (*userDomain.User, error) {
	user, err := profiles.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !user.IsOwnedBy(actorID) {
		return nil, userDomain.ErrNotOwner
	}
	return user, nil
}
