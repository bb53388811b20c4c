package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/atluixx/lynkt/internal/link/domain"
	"github.com/atluixx/lynkt/internal/metrics"
)

// linkUseCaseWithMetrics decorates LinkUseCase with metrics instrumentation.
type linkUseCaseWithMetrics struct {
	next    LinkUseCase
	metrics metrics.BusinessMetrics
}

// NewLinkUseCaseWithMetrics wraps a LinkUseCase with metrics recording.
func NewLinkUseCaseWithMetrics(useCase LinkUseCase, m metrics.BusinessMetrics) LinkUseCase {
	return &linkUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// List records metrics for link list operations.
func (l *linkUseCaseWithMetrics) List(ctx context.Context, slug string) ([]*domain.Link, error) {
	start := time.Now()
	links, err := l.next.List(ctx, slug)
	metrics.Observe(ctx, l.metrics, "link", "link_list", start, err)
	return links, err
}

// Get records metrics for link lookups.
func (l *linkUseCaseWithMetrics) Get(ctx context.Context, slug string, id uuid.UUID) (*domain.Link, error) {
	start := time.Now()
	link, err := l.next.Get(ctx, slug, id)
	metrics.Observe(ctx, l.metrics, "link", "link_get", start, err)
	return link, err
}

// Create records metrics for link creation.
func (l *linkUseCaseWithMetrics) Create(
	ctx context.Context,
	actorID uuid.UUID,
	slug string,
	input CreateLinkInput,
) (*domain.Link, error) {
	start := time.Now()
	link, err := l.next.Create(ctx, actorID, slug, input)
	metrics.Observe(ctx, l.metrics, "link", "link_create", start, err)
	return link, err
}

// Update records metrics for link updates.
func (l *linkUseCaseWithMetrics) Update(
	ctx context.Context,
	actorID uuid.UUID,
	slug string,
	id uuid.UUID,
	input UpdateLinkInput,
) (*domain.Link, error) {
	start := time.Now()
	link, err := l.next.Update(ctx, actorID, slug, id, input)
	metrics.Observe(ctx, l.metrics, "link", "link_update", start, err)
	return link, err
}

// Delete records metrics for link deletion.
func (l *linkUseCaseWithMetrics) Delete(ctx context.Context, actorID uuid.UUID, slug string, id uuid.UUID) error {
	start := time.Now()
	err := l.next.Delete(ctx, actorID, slug, id)
	metrics.Observe(ctx, l.metrics, "link", "link_delete", start, err)
	return err
}

// Click records metrics for link clicks. Unavailable links count as errors.
func (l *linkUseCaseWithMetrics) Click(ctx context.Context, slug string, id uuid.UUID) (string, error) {
	start := time.Now()
	url, err := l.next.Click(ctx, slug, id)
	metrics.Observe(ctx, l.metrics, "link", "link_click", start, err)
	return url, err
}

// groupUseCaseWithMetrics decorates GroupUseCase with metrics instrumentation.
type groupUseCaseWithMetrics struct {
	next    GroupUseCase
	metrics metrics.BusinessMetrics
}

// NewGroupUseCaseWithMetrics wraps a GroupUseCase with metrics recording.
func NewGroupUseCaseWithMetrics(useCase GroupUseCase, m metrics.BusinessMetrics) GroupUseCase {
	return &groupUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (g *groupUseCaseWithMetrics) List(ctx context.Context, slug string) ([]*domain.Group, error) {
	start := time.Now()
	groups, err := g.next.List(ctx, slug)
	metrics.Observe(ctx, g.metrics, "link_group", "group_list", start, err)
	return groups, err
}

func (g *groupUseCaseWithMetrics) Create(
	ctx context.Context,
	actorID uuid.UUID,
	slug, title string,
) (*domain.Group, error) {
	start := time.Now()
	group, err := g.next.Create(ctx, actorID, slug, title)
	metrics.Observe(ctx, g.metrics, "link_group", "group_create", start, err)
	return group, err
}

func (g *groupUseCaseWithMetrics) Rename(
	ctx context.Context,
	actorID uuid.UUID,
	slug string,
	id uuid.UUID,
	title string,
) (*domain.Group, error) {
	start := time.Now()
	group, err := g.next.Rename(ctx, actorID, slug, id, title)
	metrics.Observe(ctx, g.metrics, "link_group", "group_rename", start, err)
	return group, err
}

func (g *groupUseCaseWithMetrics) Delete(ctx context.Context, actorID uuid.UUID, slug string, id uuid.UUID) error {
	start := time.Now()
	err := g.next.Delete(ctx, actorID, slug, id)
	metrics.Observe(ctx, g.metrics, "link_group", "group_delete", start, err)
	return err
}
