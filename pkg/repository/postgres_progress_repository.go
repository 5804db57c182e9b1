package repository

import (
	"context"
	"database/sql"

	"github.com/storely/mission-engine/pkg/domain"
	"github.com/storely/mission-engine/pkg/errors"
)

// PostgresProgressRepository implements ProgressRepository using PostgreSQL.
type PostgresProgressRepository struct {
	db *sql.DB
}

// NewPostgresProgressRepository creates a new PostgreSQL-backed progress repository.
func NewPostgresProgressRepository(db *sql.DB) *PostgresProgressRepository {
	return &PostgresProgressRepository{
		db: db,
	}
}

// GetProgress retrieves an owner's progress for a specific mission.
// Returns nil if no record exists yet (lazy initialization).
func (r *PostgresProgressRepository) GetProgress(ctx context.Context, ownerID int64, missionID string) (*domain.Progress, error) {
	query := `
		SELECT owner_id, mission_id, current_progress, is_completed,
		       completed_count, last_completed_at, created_at, updated_at
		FROM mission_progress
		WHERE owner_id = $1 AND mission_id = $2
	`

	var progress domain.Progress
	err := r.db.QueryRowContext(ctx, query, ownerID, missionID).Scan(
		&progress.OwnerID,
		&progress.MissionID,
		&progress.CurrentProgress,
		&progress.IsCompleted,
		&progress.CompletedCount,
		&progress.LastCompletedAt,
		&progress.CreatedAt,
		&progress.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil // No progress record exists yet
	}

	if err != nil {
		return nil, errors.ErrDatabaseError("get progress", err)
	}

	return &progress, nil
}

// UpsertProgress creates or updates a progress record in a single atomic
// statement keyed by (owner_id, mission_id). Concurrent writers never observe
// a partially applied row.
func (r *PostgresProgressRepository) UpsertProgress(ctx context.Context, progress *domain.Progress) error {
	query := `
		INSERT INTO mission_progress (
			owner_id, mission_id, current_progress, is_completed,
			completed_count, last_completed_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, NOW(), NOW()
		)
		ON CONFLICT (owner_id, mission_id) DO UPDATE SET
			current_progress = EXCLUDED.current_progress,
			is_completed = EXCLUDED.is_completed,
			completed_count = EXCLUDED.completed_count,
			last_completed_at = EXCLUDED.last_completed_at,
			updated_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query,
		progress.OwnerID,
		progress.MissionID,
		progress.CurrentProgress,
		progress.IsCompleted,
		progress.CompletedCount,
		progress.LastCompletedAt,
	)

	if err != nil {
		return errors.ErrDatabaseError("upsert progress", err)
	}

	return nil
}
