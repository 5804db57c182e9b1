package repository

import (
	"context"
	"database/sql"

	"github.com/storely/mission-engine/pkg/domain"
	"github.com/storely/mission-engine/pkg/errors"
)

// PostgresMissionRepository implements MissionRepository using PostgreSQL.
type PostgresMissionRepository struct {
	db *sql.DB
}

// NewPostgresMissionRepository creates a new PostgreSQL-backed mission repository.
func NewPostgresMissionRepository(db *sql.DB) *PostgresMissionRepository {
	return &PostgresMissionRepository{
		db: db,
	}
}

// ListActiveMissions retrieves all active missions matching an event type.
func (r *PostgresMissionRepository) ListActiveMissions(ctx context.Context, eventType string) ([]*domain.Mission, error) {
	query := `
		SELECT id, type, target_value, is_recurring, reset_frequency,
		       accumulation, reward_type, reward_value, badge_image_url, is_active
		FROM missions
		WHERE type = $1 AND is_active = true
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, eventType)
	if err != nil {
		return nil, errors.ErrDatabaseError("list active missions", err)
	}
	defer func() { _ = rows.Close() }()

	var missions []*domain.Mission
	for rows.Next() {
		var mission domain.Mission
		err := rows.Scan(
			&mission.ID,
			&mission.Type,
			&mission.TargetValue,
			&mission.IsRecurring,
			&mission.ResetFrequency,
			&mission.Accumulation,
			&mission.RewardType,
			&mission.RewardValue,
			&mission.BadgeImageURL,
			&mission.IsActive,
		)
		if err != nil {
			return nil, errors.ErrDatabaseError("scan mission row", err)
		}
		missions = append(missions, &mission)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError("iterate mission rows", err)
	}

	return missions, nil
}
