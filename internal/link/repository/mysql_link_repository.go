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

// MySQLLinkRepository handles link persistence for MySQL.
// IDs are stored as BINARY(16).
type MySQLLinkRepository struct {
	db *sql.DB
}

// NewMySQLLinkRepository creates a new MySQLLinkRepository
func NewMySQLLinkRepository(db *sql.DB) *MySQLLinkRepository {
	return &MySQLLinkRepository{
		db: db,
	}
}

// Create inserts a new link
func (r *MySQLLinkRepository) Create(ctx context.Context, link *domain.Link) error {
	querier := database.GetTx(ctx, r.db)

	ids, err := binaryUUIDs(link.ID, link.UserID)
	if err != nil {
		return err
	}
	groupID, err := nullableBinaryUUID(link.GroupID)
	if err != nil {
		return err
	}

	query := `INSERT INTO links (` + linkColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		ids[0],
		ids[1],
		groupID,
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
func (r *MySQLLinkRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Link, error) {
	querier := database.GetTx(ctx, r.db)

	args, err := binaryUUIDs(id, userID)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + linkColumns + ` FROM links WHERE id = ? AND user_id = ?`

	link, err := scanLink(querier.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get link by id")
	}
	return link, nil
}

// ListByUser returns every link of userID in display order.
func (r *MySQLLinkRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Link, error) {
	querier := database.GetTx(ctx, r.db)

	args, err := binaryUUIDs(userID)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + linkColumns + ` FROM links
			  WHERE user_id = ?
			  ORDER BY order_index ASC, created_at ASC, id ASC`

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list links")
	}
	return collectLinks(rows)
}

// Update persists every mutable link field. Click counters are left to RegisterClick.
func (r *MySQLLinkRepository) Update(ctx context.Context, link *domain.Link) error {
	querier := database.GetTx(ctx, r.db)

	ids, err := binaryUUIDs(link.ID, link.UserID)
	if err != nil {
		return err
	}
	groupID, err := nullableBinaryUUID(link.GroupID)
	if err != nil {
		return err
	}

	query := `UPDATE links
			  SET group_id = ?, url = ?, label = ?, icon = ?, order_index = ?, is_active = ?,
			      max_clicks = ?, active_until = ?, updated_at = ?
			  WHERE id = ? AND user_id = ?`

	_, err = querier.ExecContext(
		ctx,
		query,
		groupID,
		link.URL,
		link.Label,
		link.Icon,
		link.OrderIndex,
		link.IsActive,
		link.MaxClicks,
		link.ActiveUntil,
		link.UpdatedAt,
		ids[0],
		ids[1],
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update link")
	}
	return nil
}

// Delete removes a link that belongs to userID
func (r *MySQLLinkRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	args, err := binaryUUIDs(id, userID)
	if err != nil {
		return err
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM links WHERE id = ? AND user_id = ?`, args...)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete link")
	}

	return requireRowAffected(result, domain.ErrLinkNotFound)
}

// RegisterClick counts one click and returns the target URL. MySQL has no
// RETURNING, so the conditional UPDATE is followed by a read in the same querier.
func (r *MySQLLinkRepository) RegisterClick(
	ctx context.Context,
	userID, id uuid.UUID,
	now time.Time,
) (string, error) {
	querier := database.GetTx(ctx, r.db)

	args, err := binaryUUIDs(id, userID)
	if err != nil {
		return "", err
	}

	query := `UPDATE links
			  SET current_clicks = current_clicks + 1
			  WHERE id = ? AND user_id = ?
			    AND is_active
			    AND (active_until IS NULL OR active_until > ?)
			    AND (max_clicks = 0 OR current_clicks < max_clicks)`

	result, err := querier.ExecContext(ctx, query, args[0], args[1], now)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to register click")
	}
	if err := requireRowAffected(result, domain.ErrLinkUnavailable); err != nil {
		return "", err
	}

	var url string
	err = querier.QueryRowContext(ctx, `SELECT url FROM links WHERE id = ?`, args[0]).Scan(&url)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to read clicked link")
	}
	return url, nil
}
