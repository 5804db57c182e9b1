package tracker

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/storely/mission-engine/pkg/domain"
	"github.com/storely/mission-engine/pkg/errors"
	"github.com/storely/mission-engine/pkg/repository"
)

// RewardGranter issues a mission's reward to an owner exactly once per
// completion transition.
type RewardGranter interface {
	Grant(ctx context.Context, ownerID int64, mission *domain.Mission) error
}

// Tracker applies business events to mission progress.
//
// For each event it resolves the active missions matching the event type,
// applies the recurrence/reset policy, folds the observed value into
// progress, detects completion transitions and delegates reward grants.
// Each mission is processed independently: one mission's failure never
// aborts its siblings, and a reward grant failure never blocks the progress
// write (re-granting is idempotent; re-accumulating is not).
type Tracker struct {
	missions repository.MissionRepository
	progress repository.ProgressRepository
	granter  RewardGranter
	logger   *slog.Logger

	// locks serializes processing per (owner, mission) pair.
	locks *keyedMutex

	// now is swappable for tests.
	now func() time.Time
}

// New creates a mission tracker.
func New(missions repository.MissionRepository, progress repository.ProgressRepository, granter RewardGranter, logger *slog.Logger) *Tracker {
	return &Tracker{
		missions: missions,
		progress: progress,
		granter:  granter,
		logger:   logger,
		locks:    newKeyedMutex(),
		now:      time.Now,
	}
}

// TrackProgress applies one observed value to every active mission matching
// the event type. A zero value is still tracked: reset cycles must be
// applied and degenerate progress persisted, never silently skipped.
//
// Per-mission failures are logged, collected and returned in aggregate; the
// remaining missions are still processed.
func (t *Tracker) TrackProgress(ctx context.Context, ownerID int64, eventType string, value float64) error {
	missions, err := t.missions.ListActiveMissions(ctx, eventType)
	if err != nil {
		return errors.ErrMissionLookupFailed(eventType, err)
	}

	if len(missions) == 0 {
		return nil
	}

	var errs []error
	for _, mission := range missions {
		if err := t.trackMission(ctx, ownerID, mission, value); err != nil {
			t.logger.Error("Mission tracking failed",
				"owner_id", ownerID,
				"mission_id", mission.ID,
				"event_type", eventType,
				"error", err,
			)
			errs = append(errs, err)
		}
	}

	return stderrors.Join(errs...)
}

// trackMission applies the value to a single mission's progress.
// All reads and writes for the (owner, mission) pair happen under its lock.
func (t *Tracker) trackMission(ctx context.Context, ownerID int64, mission *domain.Mission, value float64) error {
	unlock := t.locks.Lock(progressKey(ownerID, mission.ID))
	defer unlock()

	prev, err := t.progress.GetProgress(ctx, ownerID, mission.ID)
	if err != nil {
		return errors.ErrProgressLookupFailed(ownerID, mission.ID, err)
	}
	if prev == nil {
		prev = domain.NewProgress(ownerID, mission.ID)
	}

	next := *prev
	now := t.now()

	// Reset check: a recurring mission whose reset cycle elapsed starts the
	// new cycle from zero before the value is applied.
	if mission.ResetDue(next.LastCompletedAt, now) {
		next.CurrentProgress = 0
		next.IsCompleted = false
	}

	// Completion gate: a completed non-recurring mission is terminal. Its
	// record must never change again.
	if next.IsCompleted && !mission.IsRecurring {
		return nil
	}

	wasCompleted := next.IsCompleted

	// Accumulation. Additive missions treat the value as a delta; highwater
	// missions treat it as a period-absolute observation.
	switch mission.Accumulation {
	case domain.AccumulationHighwater:
		if value > next.CurrentProgress {
			next.CurrentProgress = value
		}
	default:
		next.CurrentProgress += value
	}

	// Non-recurring progress never exceeds the target.
	if !mission.IsRecurring && next.CurrentProgress > mission.TargetValue {
		next.CurrentProgress = mission.TargetValue
	}

	next.IsCompleted = next.MeetsTarget(mission)

	if next.IsCompleted && !wasCompleted {
		// Completion transition: count it, stamp it, grant the reward.
		next.CompletedCount++
		next.LastCompletedAt = &now

		if err := t.granter.Grant(ctx, ownerID, mission); err != nil {
			// The progress write is authoritative. Failing it here would
			// re-accumulate the same event on retry; a missed grant can be
			// reconciled later from completed-but-unrewarded records.
			t.logger.Error("Reward grant failed, progress write continues",
				"owner_id", ownerID,
				"mission_id", mission.ID,
				"error", err,
			)
		}
	}

	// Persist unconditionally: partial progress is saved on every call.
	if err := t.progress.UpsertProgress(ctx, &next); err != nil {
		return errors.ErrProgressWriteFailed(ownerID, mission.ID, err)
	}

	return nil
}

func progressKey(ownerID int64, missionID string) string {
	return fmt.Sprintf("%d/%s", ownerID, missionID)
}
