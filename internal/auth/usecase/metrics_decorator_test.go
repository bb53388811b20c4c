package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/atluixx/lynkt/internal/auth/domain"
	"github.com/atluixx/lynkt/internal/auth/usecase"
	usecaseMocks "github.com/atluixx/lynkt/internal/auth/usecase/mocks"
	userDomain "github.com/atluixx/lynkt/internal/user/domain"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics to avoid dependency issues.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func TestAuthUseCaseWithMetrics(t *testing.T) {
	mockNext := &usecaseMocks.MockUseCase{}
	mockMetrics := &mockBusinessMetrics{}
	uc := usecase.NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

	ctx := context.Background()

	t.Run("Register success", func(t *testing.T) {
		input := usecase.RegisterInput{Slug: "alice"}
		user := &userDomain.User{Slug: "alice"}

		mockNext.On("Register", ctx, input).Return(user, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "register", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "register", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Register(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, user, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Login error", func(t *testing.T) {
		input := usecase.LoginInput{Email: "alice@x.com", Password: "wrong"}

		mockNext.On("Login", ctx, input).Return(nil, authDomain.ErrInvalidCredentials).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "login", "rejected").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "rejected").
			Return().
			Once()

		res, err := uc.Login(ctx, input)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Me success", func(t *testing.T) {
		claims := authDomain.Claims{Subject: "id"}
		user := &userDomain.User{Slug: "alice"}

		mockNext.On("Me", ctx, claims).Return(user, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "me", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "me", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Me(ctx, claims)
		assert.NoError(t, err)
		assert.Equal(t, user, res)
		mockMetrics.AssertExpectations(t)
	})
}
