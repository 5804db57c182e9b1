package repository

import (
	"context"

	"github.com/storely/mission-engine/pkg/domain"
)

// MissionRepository reads the operator-administered mission catalog.
// The catalog is read-only to the engine.
type MissionRepository interface {
	// ListActiveMissions retrieves all active missions whose type matches the
	// given event type. Returns an empty slice if none match.
	ListActiveMissions(ctx context.Context, eventType string) ([]*domain.Mission, error)
}

// ProgressRepository manages per-owner, per-mission progress records.
type ProgressRepository interface {
	// GetProgress retrieves an owner's progress for a specific mission.
	// Returns nil if no progress record exists (lazy initialization).
	GetProgress(ctx context.Context, ownerID int64, missionID string) (*domain.Progress, error)

	// UpsertProgress creates or updates a progress record as a single atomic
	// operation, using INSERT ... ON CONFLICT (owner_id, mission_id) DO UPDATE.
	UpsertProgress(ctx context.Context, progress *domain.Progress) error
}

// BadgeRepository manages granted badge audit records.
type BadgeRepository interface {
	// BadgeExists reports whether the owner already holds a badge with the
	// given name.
	BadgeExists(ctx context.Context, ownerID int64, badgeName string) (bool, error)

	// InsertBadge records a granted badge. The (owner_id, badge_name) pair is
	// unique, so a concurrent duplicate insert is a no-op rather than an error.
	InsertBadge(ctx context.Context, badge *domain.Badge) error
}
