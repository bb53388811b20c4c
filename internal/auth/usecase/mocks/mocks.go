// Package mocks provides testify mocks for the auth use case layer.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/atluixx/lynkt/internal/auth/domain"
	"github.com/atluixx/lynkt/internal/auth/usecase"
	userDomain "github.com/atluixx/lynkt/internal/user/domain"
)

// MockUseCase is a mock implementation of usecase.UseCase.
type MockUseCase struct {
	mock.Mock
}

// Register mocks the Register method of UseCase.
func (m *MockUseCase) Register(ctx context.Context, input usecase.RegisterInput) (*userDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

// Login mocks the Login method of UseCase.
func (m *MockUseCase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.LoginOutput), args.Error(1)
}

// Me mocks the Me method of UseCase.
func (m *MockUseCase) Me(ctx context.Context, claims authDomain.Claims) (*userDomain.User, error) {
	args := m.Called(ctx, claims)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}
