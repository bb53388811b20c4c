package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/atluixx/lynkt/internal/database"
	apperrors "github.com/atluixx/lynkt/internal/errors"
	"github.com/atluixx/lynkt/internal/link/domain"
)

// PostgreSQLLinkRepository handles link persistence for PostgreSQL
type PostgreSQLLinkRepository struct {
	db *sql.DB
}

// NewPostgreSQLLinkRepository creates a new PostgreSQLLinkRepository
func NewPostgreSQLLinkRepository(db *sql.DB) *PostgreSQLLinkRepository {
	return &PostgreSQLLinkRepository{
		db: db,
	}
}

// Create inserts a new link
func (r *PostgreSQLLinkRepository) Create(ctx context.Context, link *domain.Link) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO links (` + linkColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := querier.ExecContext(
		ctx,
		query,
		link.ID,
		link.UserID,
		link.GroupID,
		link.URL,
		link.Label,
		link.Icon,
		link.OrderIndex,
		link.IsActive,
		link.MaxClicks,
		link.CurrentClicks,
		link.ActiveUntil,
		link.CreatedAt,
		link.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create link")
	}
	return nil
}

// GetByID retrieves a link that belongs to userID
func (r *PostgreSQLLinkRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Link, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + linkColumns + ` FROM links WHERE id = $1 AND user_id = $2`

	link, err := scanLink(querier.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get link by id")
	}
	return link, nil
}

// ListByUser returns every link of userID in display order.
func (r *PostgreSQLLinkRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Link, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + linkColumns + ` FROM links
			  WHERE user_id = $1
			  ORDER BY order_index ASC, created_at ASC, id ASC`

	rows, err := querier.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list links")
	}
	return collectLinks(rows)
}

// Update persists every mutable link field. Click counters are left to RegisterClick.
func (r *PostgreSQLLinkRepository) Update(ctx context.Context, link *domain.Link) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE links
			  SET group_id = $1, url = $2, label = $3, icon = $4, order_index = $5, is_active = $6,
			      max_clicks = $7, active_until = $8, updated_at = $9
			  WHERE id = $10 AND user_id = $11`

	result, err := querier.ExecContext(
		ctx,
		query,
		link.GroupID,
		link.URL,
		link.Label,
		link.Icon,
		link.OrderIndex,
		link.IsActive,
		link.MaxClicks,
		link.ActiveUntil,
		link.UpdatedAt,
		link.ID,
		link.UserID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update link")
	}

	return requireRowAffected(result, domain.ErrLinkNotFound)
}

// Delete removes a link that belongs to userID
func (r *PostgreSQLLinkRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM links WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete link")
	}

	return requireRowAffected(result, domain.ErrLinkNotFound)
}

// RegisterClick counts one click and returns the target URL. The counter only
// moves while the link is visible at now, so concurrent clicks never pass max_clicks.
func (r *PostgreSQLLinkRepository) RegisterClick(
	ctx context.Context,
	userID, id uuid.UUID,
	now time.Time,
) (string, error) {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE links
			  SET current_clicks = current_clicks + 1
			  WHERE id = $1 AND user_id = $2
			    AND is_active
			    AND (active_until IS NULL OR active_until > $3)
			    AND (max_clicks = 0 OR current_clicks < max_clicks)
			  RETURNING url`

	var url string
	err := querier.QueryRowContext(ctx, query, id, userID, now).Scan(&url)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrLinkUnavailable
		}
		return "", apperrors.Wrap(err, "failed to register click")
	}
	return url, nil
}
