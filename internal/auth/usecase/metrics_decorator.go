package usecase

import (
	"context"
	"time"

	authDomain "github.com/atluixx/lynkt/internal/auth/domain"
	"github.com/atluixx/lynkt/internal/metrics"
	userDomain "github.com/atluixx/lynkt/internal/user/domain"
)

// authUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Register records metrics for registrations.
func (a *authUseCaseWithMetrics) Register(
	ctx context.Context,
	input RegisterInput,
) (*userDomain.User, error) {
	start := time.Now()
	user, err := a.next.Register(ctx, input)

	status := metrics.StatusFromError(err)

	a.metrics.RecordOperation(ctx, "auth", "register", status)
	a.metrics.RecordDuration(ctx, "auth", "register", time.Since(start), status)

	return user, err
}

// Login records metrics for login attempts.
func (a *authUseCaseWithMetrics) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	start := time.Now()
	output, err := a.next.Login(ctx, input)

	status := metrics.StatusFromError(err)

	a.metrics.RecordOperation(ctx, "auth", "login", status)
	a.metrics.RecordDuration(ctx, "auth", "login", time.Since(start), status)

	return output, err
}

// Me records metrics for session lookups.
func (a *authUseCaseWithMetrics) Me(ctx context.Context, claims authDomain.Claims) (*userDomain.User, error) {
	start := time.Now()
	user, err := a.next.Me(ctx, claims)

	status := metrics.StatusFromError(err)

	a.metrics.RecordOperation(ctx, "auth", "me", status)
	a.metrics.RecordDuration(ctx, "auth", "me", time.Since(start), status)

	return user, err
}
