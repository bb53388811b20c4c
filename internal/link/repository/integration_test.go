package repository

import (
	"context"
	"database/sql"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/atluixx/lynkt/internal/errors"
	"github.com/atluixx/lynkt/internal/link/domain"
	"github.com/atluixx/lynkt/internal/testutil"
)

type linkStore interface {
	Create(ctx context.Context, link *domain.Link) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Link, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Link, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	RegisterClick(ctx context.Context, userID, id uuid.UUID, now time.Time) (string, error)
}

type groupStore interface {
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type driverCase struct {
	driver string
	setup  func(t *testing.T) *sql.DB
	links  func(db *sql.DB) linkStore
	groups func(db *sql.DB) groupStore
}

func driverCases() []driverCase {
	return []driverCase{
		{
			driver: "postgres",
			setup: func(t *testing.T) *sql.DB {
				testutil.SkipIfNoPostgres(t)
				return testutil.SetupPostgresDB(t)
			},
			links:  func(db *sql.DB) linkStore { return NewPostgreSQLLinkRepository(db) },
			groups: func(db *sql.DB) groupStore { return NewPostgreSQLGroupRepository(db) },
		},
		{
			driver: "mysql",
			setup: func(t *testing.T) *sql.DB {
				testutil.SkipIfNoMySQL(t)
				return testutil.SetupMySQLDB(t)
			},
			links:  func(db *sql.DB) linkStore { return NewMySQLLinkRepository(db) },
			groups: func(db *sql.DB) groupStore { return NewMySQLGroupRepository(db) },
		},
	}
}

func newStoredLink(userID uuid.UUID, maxClicks int) *domain.Link {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Link{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    userID,
		URL:       "https://github.com/alice",
		Label:     "GitHub",
		IsActive:  true,
		MaxClicks: maxClicks,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestIntegration_ConcurrentClicksRespectCap(t *testing.T) {
	for _, dc := range driverCases() {
		t.Run(dc.driver, func(t *testing.T) {
			db := dc.setup(t)
			defer testutil.TeardownDB(t, db)

			ctx := context.Background()
			repo := dc.links(db)
			userID := testutil.CreateTestUser(t, db, dc.driver, "alice")

			link := newStoredLink(userID, 5)
			require.NoError(t, repo.Create(ctx, link))

			var served, refused atomic.Int32
			g, gCtx := errgroup.WithContext(ctx)
			for range 20 {
				g.Go(func() error {
					_, err := repo.RegisterClick(gCtx, userID, link.ID, time.Now().UTC())
					switch {
					case err == nil:
						served.Add(1)
					case apperrors.Is(err, domain.ErrLinkUnavailable):
						refused.Add(1)
					default:
						return err
					}
					return nil
				})
			}
			require.NoError(t, g.Wait())

			assert.Equal(t, int32(5), served.Load())
			assert.Equal(t, int32(15), refused.Load())

			stored, err := repo.GetByID(ctx, userID, link.ID)
			require.NoError(t, err)
			assert.Equal(t, 5, stored.CurrentClicks)
		})
	}
}

func TestIntegration_ExpiredLinkRefusesClicks(t *testing.T) {
	for _, dc := range driverCases() {
		t.Run(dc.driver, func(t *testing.T) {
			db := dc.setup(t)
			defer testutil.TeardownDB(t, db)

			ctx := context.Background()
			repo := dc.links(db)
			userID := testutil.CreateTestUser(t, db, dc.driver, "alice")

			link := newStoredLink(userID, 0)
			until := time.Now().UTC().Add(-time.Minute).Truncate(time.Microsecond)
			link.ActiveUntil = &until
			require.NoError(t, repo.Create(ctx, link))

			_, err := repo.RegisterClick(ctx, userID, link.ID, time.Now().UTC())
			assert.ErrorIs(t, err, domain.ErrLinkUnavailable)
		})
	}
}

func TestIntegration_GroupDeleteKeepsLinks(t *testing.T) {
	for _, dc := range driverCases() {
		t.Run(dc.driver, func(t *testing.T) {
			db := dc.setup(t)
			defer testutil.TeardownDB(t, db)

			ctx := context.Background()
			repo := dc.links(db)
			userID := testutil.CreateTestUser(t, db, dc.driver, "alice")
			groupID := testutil.CreateTestGroup(t, db, dc.driver, userID, "Socials")

			link := newStoredLink(userID, 0)
			link.GroupID = &groupID
			require.NoError(t, repo.Create(ctx, link))

			require.NoError(t, dc.groups(db).Delete(ctx, userID, groupID))

			stored, err := repo.GetByID(ctx, userID, link.ID)
			require.NoError(t, err)
			assert.Nil(t, stored.GroupID)
		})
	}
}

func TestIntegration_LinksAreScopedToOwner(t *testing.T) {
	for _, dc := range driverCases() {
		t.Run(dc.driver, func(t *testing.T) {
			db := dc.setup(t)
			defer testutil.TeardownDB(t, db)

			ctx := context.Background()
			repo := dc.links(db)
			alice := testutil.CreateTestUser(t, db, dc.driver, "alice")
			bob := testutil.CreateTestUser(t, db, dc.driver, "bob")

			link := newStoredLink(alice, 0)
			require.NoError(t, repo.Create(ctx, link))

			_, err := repo.GetByID(ctx, bob, link.ID)
			assert.ErrorIs(t, err, domain.ErrLinkNotFound)
			assert.ErrorIs(t, repo.Delete(ctx, bob, link.ID), domain.ErrLinkNotFound)

			links, err := repo.ListByUser(ctx, alice)
			require.NoError(t, err)
			assert.Len(t, links, 1)
		})
	}
}
