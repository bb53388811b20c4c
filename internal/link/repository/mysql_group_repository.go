package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/atluixx/lynkt/internal/database"
	apperrors "github.com/atluixx/lynkt/internal/errors"
	"github.com/atluixx/lynkt/internal/link/domain"
)

// MySQLGroupRepository handles link group persistence for MySQL.
// IDs are stored as BINARY(16).
type MySQLGroupRepository struct {
	db *sql.DB
}

// NewMySQLGroupRepository creates a new MySQLGroupRepository
func NewMySQLGroupRepository(db *sql.DB) *MySQLGroupRepository {
	return &MySQLGroupRepository{
		db: db,
	}
}

// Create inserts a new group
func (r *MySQLGroupRepository) Create(ctx context.Context, group *domain.Group) error {
	querier := database.GetTx(ctx, r.db)

	ids, err := binaryUUIDs(group.ID, group.UserID)
	if err != nil {
		return err
	}

	query := `INSERT INTO link_groups (` + groupColumns + `) VALUES (?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query, ids[0], ids[1], group.Title, group.CreatedAt, group.UpdatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create group")
	}
	return nil
}

// GetByID retrieves a group that belongs to userID
func (r *MySQLGroupRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Group, error) {
	querier := database.GetTx(ctx, r.db)

	args, err := binaryUUIDs(id, userID)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + groupColumns + ` FROM link_groups WHERE id = ? AND user_id = ?`

	group, err := scanGroup(querier.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get group by id")
	}
	return group, nil
}

// ListByUser returns every group of userID, oldest first.
func (r *MySQLGroupRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Group, error) {
	querier := database.GetTx(ctx, r.db)

	args, err := binaryUUIDs(userID)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + groupColumns + ` FROM link_groups
			  WHERE user_id = ?
			  ORDER BY created_at ASC, id ASC`

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list groups")
	}
	return collectGroups(rows)
}

// Update persists the group title
func (r *MySQLGroupRepository) Update(ctx context.Context, group *domain.Group) error {
	querier := database.GetTx(ctx, r.db)

	ids, err := binaryUUIDs(group.ID, group.UserID)
	if err != nil {
		return err
	}

	query := `UPDATE link_groups SET title = ?, updated_at = ? WHERE id = ? AND user_id = ?`

	_, err = querier.ExecContext(ctx, query, group.Title, group.UpdatedAt, ids[0], ids[1])
	if err != nil {
		return apperrors.Wrap(err, "failed to update group")
	}
	return nil
}

// Delete removes a group. Its links stay and lose their group through ON DELETE SET NULL.
func (r *MySQLGroupRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	args, err := binaryUUIDs(id, userID)
	if err != nil {
		return err
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM link_groups WHERE id = ? AND user_id = ?`, args...)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete group")
	}

	return requireRowAffected(result, domain.ErrGroupNotFound)
}
