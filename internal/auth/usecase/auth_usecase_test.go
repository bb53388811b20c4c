package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/atluixx/lynkt/internal/auth/domain"
	apperrors "github.com/atluixx/lynkt/internal/errors"
	userDomain "github.com/atluixx/lynkt/internal/user/domain"
)

// mockUserRepository is a mock implementation of UserRepository for testing.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *userDomain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

// mockPasswordHasher is a mock implementation of PasswordHasher for testing.
type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Verify(password, hash string) bool {
	args := m.Called(password, hash)
	return args.Bool(0)
}

// mockTokenCodec is a mock implementation of TokenCodec for testing.
type mockTokenCodec struct {
	mock.Mock
}

func (m *mockTokenCodec) Issue(subject string) (*authDomain.IssuedToken, error) {
	args := m.Called(subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.IssuedToken), args.Error(1)
}

func (m *mockTokenCodec) Verify(token string) authDomain.VerificationOutcome {
	args := m.Called(token)
	return args.Get(0).(authDomain.VerificationOutcome)
}

type fixture struct {
	repo   *mockUserRepository
	hasher *mockPasswordHasher
	codec  *mockTokenCodec
	uc     UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:   &mockUserRepository{},
		hasher: &mockPasswordHasher{},
		codec:  &mockTokenCodec{},
	}
	f.hasher.On("Hash", dummyPassword).Return("$argon2id$dummy", nil).Once()

	uc, err := NewAuthUseCase(f.repo, f.hasher, f.codec)
	require.NoError(t, err)
	f.uc = uc
	return f
}

func TestNewAuthUseCase(t *testing.T) {
	t.Run("Success_HashesDummyPasswordUpFront", func(t *testing.T) {
		hasher := &mockPasswordHasher{}
		hasher.On("Hash", dummyPassword).Return("$argon2id$dummy", nil).Once()

		uc, err := NewAuthUseCase(&mockUserRepository{}, hasher, &mockTokenCodec{})

		require.NoError(t, err)
		assert.NotNil(t, uc)
		hasher.AssertExpectations(t)
	})

	t.Run("Error_DummyHashFailure", func(t *testing.T) {
		hasher := &mockPasswordHasher{}
		hasher.On("Hash", dummyPassword).Return("", authDomain.ErrHashFailed).Once()

		uc, err := NewAuthUseCase(&mockUserRepository{}, hasher, &mockTokenCodec{})

		assert.Nil(t, uc)
		assert.ErrorIs(t, err, authDomain.ErrHashFailed)
	})
}

func alice() *userDomain.User {
	return &userDomain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Name:         "Alice Smith",
		Slug:         "alice",
		Email:        "alice@x.com",
		PasswordHash: "$argon2id$alice",
		Bio:          userDomain.DefaultBio,
		Country:      "US",
	}
}

func TestAuthUseCase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_HashesAndStores", func(t *testing.T) {
		f := newFixture(t)
		input := RegisterInput{
			Name:     "Alice Smith",
			Slug:     "alice",
			Email:    " Alice@X.com ",
			Password: "Str0ng!Pass",
			Country:  "US",
		}

		f.hasher.On("Hash", "Str0ng!Pass").Return("$argon2id$hash", nil).Once()
		f.repo.On("Create", ctx, mock.MatchedBy(func(u *userDomain.User) bool {
			return u.PasswordHash == "$argon2id$hash" &&
				u.Email == "alice@x.com" &&
				u.Bio == userDomain.DefaultBio &&
				u.ID != uuid.Nil
		})).Return(nil).Once()

		user, err := f.uc.Register(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Slug)
		assert.False(t, user.CreatedAt.IsZero())
		assert.Equal(t, user.CreatedAt, user.UpdatedAt)
		f.repo.AssertExpectations(t)
	})

	t.Run("Success_CustomBio", func(t *testing.T) {
		f := newFixture(t)
		bio := "Designer and climber based in Lisbon."

		f.hasher.On("Hash", mock.Anything).Return("$argon2id$hash", nil).Once()
		f.repo.On("Create", ctx, mock.MatchedBy(func(u *userDomain.User) bool {
			return u.Bio == bio
		})).Return(nil).Once()

		_, err := f.uc.Register(ctx, RegisterInput{Name: "Alice", Password: "x", Bio: &bio})
		require.NoError(t, err)
	})

	t.Run("Error_Duplicate", func(t *testing.T) {
		f := newFixture(t)

		f.hasher.On("Hash", mock.Anything).Return("$argon2id$hash", nil).Once()
		f.repo.On("Create", ctx, mock.Anything).Return(userDomain.ErrUserAlreadyExists).Once()

		_, err := f.uc.Register(ctx, RegisterInput{Password: "x"})
		assert.ErrorIs(t, err, userDomain.ErrUserAlreadyExists)
	})

	t.Run("Error_HashFailed", func(t *testing.T) {
		f := newFixture(t)

		f.hasher.On("Hash", mock.Anything).Return("", authDomain.ErrHashFailed).Once()

		_, err := f.uc.Register(ctx, RegisterInput{Password: "x"})

		assert.ErrorIs(t, err, authDomain.ErrHashFailed)
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_IssuesToken", func(t *testing.T) {
		f := newFixture(t)
		user := alice()
		issued := &authDomain.IssuedToken{Token: "signed.jwt.token"}

		f.repo.On("GetByEmail", ctx, "alice@x.com").Return(user, nil).Once()
		f.hasher.On("Verify", "Str0ng!Pass", user.PasswordHash).Return(true).Once()
		f.codec.On("Issue", user.ID.String()).Return(issued, nil).Once()

		output, err := f.uc.Login(ctx, LoginInput{Email: "ALICE@x.com", Password: "Str0ng!Pass"})

		require.NoError(t, err)
		assert.Equal(t, user, output.User)
		assert.Equal(t, issued, output.Token)
	})

	t.Run("Error_WrongPassword", func(t *testing.T) {
		f := newFixture(t)
		user := alice()

		f.repo.On("GetByEmail", ctx, "alice@x.com").Return(user, nil).Once()
		f.hasher.On("Verify", "wrong", user.PasswordHash).Return(false).Once()

		output, err := f.uc.Login(ctx, LoginInput{Email: "alice@x.com", Password: "wrong"})

		assert.Nil(t, output)
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		f.codec.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("Error_UnknownEmailLooksLikeWrongPassword", func(t *testing.T) {
		f := newFixture(t)

		f.repo.On("GetByEmail", ctx, "nobody@x.com").Return(nil, userDomain.ErrUserNotFound).Once()
		f.hasher.On("Verify", "Str0ng!Pass", "$argon2id$dummy").Return(false).Once()

		output, err := f.uc.Login(ctx, LoginInput{Email: "nobody@x.com", Password: "Str0ng!Pass"})

		assert.Nil(t, output)
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		assert.False(t, apperrors.Is(err, apperrors.ErrNotFound))
		f.hasher.AssertExpectations(t)
	})

	t.Run("Error_DummyHashComputedOnce", func(t *testing.T) {
		f := newFixture(t)

		f.repo.On("GetByEmail", ctx, "nobody@x.com").Return(nil, userDomain.ErrUserNotFound).Twice()
		f.hasher.On("Verify", mock.Anything, "$argon2id$dummy").Return(false).Twice()

		_, _ = f.uc.Login(ctx, LoginInput{Email: "nobody@x.com", Password: "a"})
		_, _ = f.uc.Login(ctx, LoginInput{Email: "nobody@x.com", Password: "b"})

		f.hasher.AssertNumberOfCalls(t, "Hash", 1)
	})

	t.Run("Error_DatabaseFailureIsNotCredentialFailure", func(t *testing.T) {
		f := newFixture(t)

		f.repo.On("GetByEmail", ctx, "alice@x.com").Return(nil, errors.New("pool exhausted")).Once()

		_, err := f.uc.Login(ctx, LoginInput{Email: "alice@x.com", Password: "Str0ng!Pass"})

		require.Error(t, err)
		assert.NotErrorIs(t, err, authDomain.ErrInvalidCredentials)
	})

	t.Run("Error_IssueFailed", func(t *testing.T) {
		f := newFixture(t)
		user := alice()

		f.repo.On("GetByEmail", ctx, "alice@x.com").Return(user, nil).Once()
		f.hasher.On("Verify", mock.Anything, mock.Anything).Return(true).Once()
		f.codec.On("Issue", user.ID.String()).Return(nil, errors.New("sign failed")).Once()

		_, err := f.uc.Login(ctx, LoginInput{Email: "alice@x.com", Password: "Str0ng!Pass"})
		assert.EqualError(t, err, "sign failed")
	})
}

func TestAuthUseCase_Me(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		user := alice()

		f.repo.On("GetByID", ctx, user.ID).Return(user, nil).Once()

		got, err := f.uc.Me(ctx, authDomain.Claims{Subject: user.ID.String(), IssuedAt: now})

		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("Error_SubjectNotUUID", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Me(ctx, authDomain.Claims{Subject: "alice"})

		assert.ErrorIs(t, err, authDomain.ErrInvalidSubject)
		f.repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Error_AccountGone", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.Must(uuid.NewV7())

		f.repo.On("GetByID", ctx, id).Return(nil, userDomain.ErrUserNotFound).Once()

		_, err := f.uc.Me(ctx, authDomain.Claims{Subject: id.String()})

		assert.ErrorIs(t, err, authDomain.ErrAccountGone)
		assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
	})
}
