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

// PostgreSQLGroupRepository handles link group persistence for PostgreSQL
type PostgreSQLGroupRepository struct {
	db *sql.DB
}

// NewPostgreSQLGroupRepository creates a new PostgreSQLGroupRepository
func NewPostgreSQLGroupRepository(db *sql.DB) *PostgreSQLGroupRepository {
	return &PostgreSQLGroupRepository{
		db: db,
	}
}

// Create inserts a new group
func (r *PostgreSQLGroupRepository) Create(ctx context.Context, group *domain.Group) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO link_groups (` + groupColumns + `) VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(ctx, query, group.ID, group.UserID, group.Title, group.CreatedAt, group.UpdatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create group")
	}
	return nil
}

// GetByID retrieves a group that belongs to userID
func (r *PostgreSQLGroupRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Group, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + groupColumns + ` FROM link_groups WHERE id = $1 AND user_id = $2`

	group, err := scanGroup(querier.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get group by id")
	}
	return group, nil
}

// ListByUser returns every group of userID, oldest first.
func (r *PostgreSQLGroupRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Group, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + groupColumns + ` FROM link_groups
			  WHERE user_id = $1
			  ORDER BY created_at ASC, id ASC`

	rows, err := querier.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list groups")
	}
	return collectGroups(rows)
}

// Update persists the group title
func (r *PostgreSQLGroupRepository) Update(ctx context.Context, group *domain.Group) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE link_groups SET title = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`

	result, err := querier.ExecContext(ctx, query, group.Title, group.UpdatedAt, group.ID, group.UserID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update group")
	}

	return requireRowAffected(result, domain.ErrGroupNotFound)
}

// Delete removes a group. Its links stay and lose their group through ON DELETE SET NULL.
func (r *PostgreSQLGroupRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM link_groups WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete group")
	}

	return requireRowAffected(result, domain.ErrGroupNotFound)
}
