package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/storely/mission-engine/pkg/domain"
	"github.com/storely/mission-engine/pkg/errors"
)

// PostgresBadgeRepository implements BadgeRepository using PostgreSQL.
type PostgresBadgeRepository struct {
	db *sql.DB
}

// NewPostgresBadgeRepository creates a new PostgreSQL-backed badge repository.
func NewPostgresBadgeRepository(db *sql.DB) *PostgresBadgeRepository {
	return &PostgresBadgeRepository{
		db: db,
	}
}

// BadgeExists reports whether the owner already holds a badge with the given name.
func (r *PostgresBadgeRepository) BadgeExists(ctx context.Context, ownerID int64, badgeName string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM badges WHERE owner_id = $1 AND badge_name = $2
		)
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, ownerID, badgeName).Scan(&exists); err != nil {
		return false, errors.ErrDatabaseError("check badge exists", err)
	}

	return exists, nil
}

// InsertBadge records a granted badge. The unique (owner_id, badge_name)
// constraint makes duplicate grants a no-op, so concurrent completions of the
// same mission cannot produce two rows.
func (r *PostgresBadgeRepository) InsertBadge(ctx context.Context, badge *domain.Badge) error {
	query := `
		INSERT INTO badges (id, owner_id, badge_name, badge_image_url, awarded_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (owner_id, badge_name) DO NOTHING
	`

	id := badge.ID
	if id == "" {
		id = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx, query,
		id,
		badge.OwnerID,
		badge.BadgeName,
		badge.BadgeImageURL,
		badge.AwardedAt,
	)

	if err != nil {
		return errors.ErrDatabaseError("insert badge", err)
	}

	return nil
}
