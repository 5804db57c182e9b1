// Package migrations bootstraps the mission engine schema.
// Statements are idempotent so Apply can run on every worker start.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS missions (
		id VARCHAR(100) PRIMARY KEY,
		type VARCHAR(100) NOT NULL,
		target_value DOUBLE PRECISION NOT NULL,
		is_recurring BOOLEAN NOT NULL DEFAULT false,
		reset_frequency VARCHAR(20) NOT NULL DEFAULT 'never',
		accumulation VARCHAR(20) NOT NULL DEFAULT 'additive',
		reward_type VARCHAR(20) NOT NULL,
		reward_value TEXT NOT NULL,
		badge_image_url TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT true,
		CONSTRAINT check_reset_frequency CHECK (reset_frequency IN ('daily', 'weekly', 'monthly', 'never')),
		CONSTRAINT check_accumulation CHECK (accumulation IN ('additive', 'highwater'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_missions_type_active
		ON missions(type) WHERE is_active`,

	`CREATE TABLE IF NOT EXISTS mission_progress (
		owner_id BIGINT NOT NULL,
		mission_id VARCHAR(100) NOT NULL,
		current_progress DOUBLE PRECISION NOT NULL DEFAULT 0,
		is_completed BOOLEAN NOT NULL DEFAULT false,
		completed_count INT NOT NULL DEFAULT 0,
		last_completed_at TIMESTAMP NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
		PRIMARY KEY (owner_id, mission_id),
		CONSTRAINT check_progress_non_negative CHECK (current_progress >= 0),
		CONSTRAINT check_completed_count_non_negative CHECK (completed_count >= 0)
	)`,

	`CREATE TABLE IF NOT EXISTS badges (
		id UUID PRIMARY KEY,
		owner_id BIGINT NOT NULL,
		badge_name VARCHAR(200) NOT NULL,
		badge_image_url TEXT NOT NULL DEFAULT '',
		awarded_at TIMESTAMP NOT NULL DEFAULT NOW(),
		CONSTRAINT uq_badges_owner_name UNIQUE (owner_id, badge_name)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_badges_owner ON badges(owner_id)`,
}

// Apply executes all schema statements in order.
func Apply(ctx context.Context, db *sql.DB) error {
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}
