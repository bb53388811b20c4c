package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/atluixx/lynkt/internal/metrics"
	"github.com/atluixx/lynkt/internal/user/domain"
)

// userUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *userUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	metrics.Observe(ctx, u.metrics, "user", operation, start, err)
}

// List records metrics for profile list operations.
func (u *userUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	start := time.Now()
	users, err := u.next.List(ctx, offset, limit)
	u.record(ctx, "user_list", start, err)
	return users, err
}

// GetBySlug records metrics for profile lookups.
func (u *userUseCaseWithMetrics) GetBySlug(ctx context.Context, slug string) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.GetBySlug(ctx, slug)
	u.record(ctx, "user_get", start, err)
	return user, err
}

// Update records metrics for profile updates.
func (u *userUseCaseWithMetrics) Update(
	ctx context.Context,
	actorID uuid.UUID,
	slug string,
	input UpdateUserInput,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Update(ctx, actorID, slug, input)
	u.record(ctx, "user_update", start, err)
	return user, err
}

// Delete records metrics for account deletion.
func (u *userUseCaseWithMetrics) Delete(ctx context.Context, actorID uuid.UUID, slug string) error {
	start := time.Now()
	err := u.next.Delete(ctx, actorID, slug)
	u.record(ctx, "user_delete", start, err)
	return err
}

// IsSlugAvailable records metrics for slug availability checks.
func (u *userUseCaseWithMetrics) IsSlugAvailable(ctx context.Context, slug string) (bool, error) {
	start := time.Now()
	available, err := u.next.IsSlugAvailable(ctx, slug)
	u.record(ctx, "slug_check", start, err)
	return available, err
}
