// Package repository provides data persistence implementations for links and link groups.
package repository

import (
	"database/sql"

	"github.com/google/uuid"

	apperrors "github.com/atluixx/lynkt/internal/errors"
	"github.com/atluixx/lynkt/internal/link/domain"
)

const linkColumns = `id, user_id, group_id, url, label, icon, order_index, is_active, max_clicks, ` +
	`current_clicks, active_until, created_at, updated_at`

const groupColumns = `id, user_id, title, created_at, updated_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanLink reads one link row. uuid scanning accepts both the native PostgreSQL
// representation and MySQL BINARY(16), so both dialects share it.
func scanLink(row rowScanner) (*domain.Link, error) {
	var (
		link        domain.Link
		groupID     uuid.NullUUID
		icon        sql.NullString
		activeUntil sql.NullTime
	)

	err := row.Scan(
		&link.ID,
		&link.UserID,
		&groupID,
		&link.URL,
		&link.Label,
		&icon,
		&link.OrderIndex,
		&link.IsActive,
		&link.MaxClicks,
		&link.CurrentClicks,
		&activeUntil,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if groupID.Valid {
		link.GroupID = &groupID.UUID
	}
	if icon.Valid {
		link.Icon = &icon.String
	}
	if activeUntil.Valid {
		link.ActiveUntil = &activeUntil.Time
	}
	return &link, nil
}

func scanGroup(row rowScanner) (*domain.Group, error) {
	var group domain.Group
	err := row.Scan(
		&group.ID,
		&group.UserID,
		&group.Title,
		&group.CreatedAt,
		&group.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func collectLinks(rows *sql.Rows) ([]*domain.Link, error) {
	defer func() {
		_ = rows.Close()
	}()

	links := make([]*domain.Link, 0)
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan link")
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate links")
	}
	return links, nil
}

func collectGroups(rows *sql.Rows) ([]*domain.Group, error) {
	defer func() {
		_ = rows.Close()
	}()

	groups := make([]*domain.Group, 0)
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan group")
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate groups")
	}
	return groups, nil
}

// requireRowAffected maps an UPDATE or DELETE that matched nothing to notFound.
func requireRowAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

// binaryUUIDs marshals ids for MySQL BINARY(16) columns.
func binaryUUIDs(ids ...uuid.UUID) ([]any, error) {
	out := make([]any, 0, len(ids))
	for _, id := range ids {
		b, err := id.MarshalBinary()
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to marshal UUID")
		}
		out = append(out, b)
	}
	return out, nil
}

// nullableBinaryUUID marshals an optional id for a nullable BINARY(16) column.
func nullableBinaryUUID(id *uuid.UUID) (any, error) {
	if id == nil {
		return nil, nil
	}
	b, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}
	return b, nil
}
