package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/atluixx/lynkt/internal/auth/domain"
	authService "github.com/atluixx/lynkt/internal/auth/service"
	apperrors "github.com/atluixx/lynkt/internal/errors"
	userDomain "github.com/atluixx/lynkt/internal/user/domain"
)

// dummyPassword is hashed once and verified against on unknown emails so that
// both login failure paths pay for one Argon2id verification.
const dummyPassword = "lynkt-dummy-password" //nolint:gosec // not a credential

// authUseCase implements UseCase.
type authUseCase struct {
	userRepo UserRepository
	hasher   authService.PasswordHasher
	codec    authService.TokenCodec

	dummyHash string
}

// NewAuthUseCase creates the auth UseCase. The dummy hash is computed up front;
// a hasher that cannot produce it is a startup error.
func NewAuthUseCase(
	userRepo UserRepository,
	hasher authService.PasswordHasher,
	codec authService.TokenCodec,
) (UseCase, error) {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to compute dummy password hash: %w", err)
	}

	return &authUseCase{
		userRepo:  userRepo,
		hasher:    hasher,
		codec:     codec,
		dummyHash: dummyHash,
	}, nil
}

// Register stores a new account with a freshly hashed password.
func (uc *authUseCase) Register(ctx context.Context, input RegisterInput) (*userDomain.User, error) {
	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	bio := userDomain.DefaultBio
	if input.Bio != nil {
		bio = *input.Bio
	}

	now := time.Now().UTC()
	user := &userDomain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Name:         strings.TrimSpace(input.Name),
		Slug:         input.Slug,
		Email:        normalizeEmail(input.Email),
		PasswordHash: hash,
		Bio:          bio,
		Country:      strings.TrimSpace(input.Country),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a session token.
func (uc *authUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	user, err := uc.userRepo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if apperrors.Is(err, userDomain.ErrUserNotFound) {
			uc.hasher.Verify(input.Password, uc.dummyHash)
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !uc.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, authDomain.ErrInvalidCredentials
	}

	token, err := uc.codec.Issue(user.ID.String())
	if err != nil {
		return nil, err
	}

	return &LoginOutput{User: user, Token: token}, nil
}

// Me loads the account named by the token subject.
func (uc *authUseCase) Me(ctx context.Context, claims authDomain.Claims) (*userDomain.User, error) {
	accountID, err := claims.AccountID()
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, accountID)
	if err != nil {
		if apperrors.Is(err, userDomain.ErrUserNotFound) {
			return nil, authDomain.ErrAccountGone
		}
		return nil, err
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
