// Package mocks provides testify mocks for the link use case layer.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/atluixx/lynkt/internal/link/domain"
	"github.com/atluixx/lynkt/internal/link/usecase"
	userDomain "github.com/atluixx/lynkt/internal/user/domain"
)

// MockTxManager runs the callback inline unless an error is configured.
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

// MockProfileRepository is a mock implementation of usecase.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetBySlug(ctx context.Context, slug string) (*userDomain.User, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

// MockLinkRepository is a mock implementation of usecase.LinkRepository.
type MockLinkRepository struct {
	mock.Mock
}

func (m *MockLinkRepository) Create(ctx context.Context, link *domain.Link) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockLinkRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Link, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Link), args.Error(1)
}

func (m *MockLinkRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Link, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Link), args.Error(1)
}

func (m *MockLinkRepository) Update(ctx context.Context, link *domain.Link) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockLinkRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockLinkRepository) RegisterClick(
	ctx context.Context,
	userID, id uuid.UUID,
	now time.Time,
) (string, error) {
	args := m.Called(ctx, userID, id, now)
	return args.String(0), args.Error(1)
}

// MockGroupRepository is a mock implementation of usecase.GroupRepository.
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Create(ctx context.Context, group *domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Group, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockGroupRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Group, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Group), args.Error(1)
}

func (m *MockGroupRepository) Update(ctx context.Context, group *domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockLinkUseCase is a mock implementation of usecase.LinkUseCase.
type MockLinkUseCase struct {
	mock.Mock
}

func (m *MockLinkUseCase) List(ctx context.Context, slug string) ([]*domain.Link, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Link), args.Error(1)
}

func (m *MockLinkUseCase) Get(ctx context.Context, slug string, id uuid.UUID) (*domain.Link, error) {
	args := m.Called(ctx, slug, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Link), args.Error(1)
}

func (m *MockLinkUseCase) Create(
	ctx context.Context,
	actorID uuid.UUID,
	slug string,
	input usecase.CreateLinkInput,
) (*domain.Link, error) {
	args := m.Called(ctx, actorID, slug, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Link), args.Error(1)
}

func (m *MockLinkUseCase) Update(
	ctx context.Context,
	actorID uuid.UUID,
	slug string,
	id uuid.UUID,
	input usecase.UpdateLinkInput,
) (*domain.Link, error) {
	args := m.Called(ctx, actorID, slug, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Link), args.Error(1)
}

func (m *MockLinkUseCase) Delete(ctx context.Context, actorID uuid.UUID, slug string, id uuid.UUID) error {
	args := m.Called(ctx, actorID, slug, id)
	return args.Error(0)
}

func (m *MockLinkUseCase) Click(ctx context.Context, slug string, id uuid.UUID) (string, error) {
	args := m.Called(ctx, slug, id)
	return args.String(0), args.Error(1)
}

// MockGroupUseCase is a mock implementation of usecase.GroupUseCase.
type MockGroupUseCase struct {
	mock.Mock
}

func (m *MockGroupUseCase) List(ctx context.Context, slug string) ([]*domain.Group, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Group), args.Error(1)
}

func (m *MockGroupUseCase) Create(
	ctx context.Context,
	actorID uuid.UUID,
	slug, title string,
) (*domain.Group, error) {
	args := m.Called(ctx, actorID, slug, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockGroupUseCase) Rename(
	ctx context.Context,
	actorID uuid.UUID,
	slug string,
	id uuid.UUID,
	title string,
) (*domain.Group, error) {
	args := m.Called(ctx, actorID, slug, id, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockGroupUseCase) Delete(ctx context.Context, actorID uuid.UUID, slug string, id uuid.UUID) error {
	args := m.Called(ctx, actorID, slug, id)
	return args.Error(0)
}
