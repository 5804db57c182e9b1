package reward

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/storely/mission-engine/pkg/domain"
	"github.com/storely/mission-engine/pkg/errors"
	"github.com/storely/mission-engine/pkg/repository"
)

// Granter issues mission rewards at most once per completion.
//
// Badge grants are idempotent: the badge table carries a unique
// (owner_id, badge_name) constraint and the granter checks for an existing
// badge first, so retries and concurrent completions produce exactly one row.
// Experience point grants delegate to an ExperienceLedger when one is wired.
type Granter struct {
	badges repository.BadgeRepository
	ledger ExperienceLedger
	logger *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewGranter creates a reward granter. ledger may be nil if no experience
// ledger exists yet; xp_points missions then log and no-op.
func NewGranter(badges repository.BadgeRepository, ledger ExperienceLedger, logger *slog.Logger) *Granter {
	return &Granter{
		badges: badges,
		ledger: ledger,
		logger: logger,
		now:    time.Now,
	}
}

// Grant issues the mission's configured reward to the owner.
//
// An already granted badge is treated as success, not an error. An unknown
// reward type is a logged warning and a no-op: a misconfigured mission must
// never break the commerce flows that feed the tracker.
func (g *Granter) Grant(ctx context.Context, ownerID int64, mission *domain.Mission) error {
	switch mission.RewardType {
	case domain.RewardTypeBadge:
		return g.grantBadge(ctx, ownerID, mission)
	case domain.RewardTypeXPPoints:
		return g.grantExperience(ctx, ownerID, mission)
	default:
		g.logger.Warn("Unknown reward type, skipping grant",
			"owner_id", ownerID,
			"mission_id", mission.ID,
			"reward_type", string(mission.RewardType),
		)
		return nil
	}
}

// grantBadge records a badge for the owner unless one already exists.
func (g *Granter) grantBadge(ctx context.Context, ownerID int64, mission *domain.Mission) error {
	badgeName := mission.RewardValue

	exists, err := g.badges.BadgeExists(ctx, ownerID, badgeName)
	if err != nil {
		return errors.ErrRewardGrantFailed(string(mission.RewardType), badgeName, err)
	}

	if exists {
		g.logger.Info("Badge already granted, skipping",
			"owner_id", ownerID,
			"badge_name", badgeName,
		)
		return nil
	}

	badge := &domain.Badge{
		OwnerID:       ownerID,
		BadgeName:     badgeName,
		BadgeImageURL: mission.BadgeImageURL,
		AwardedAt:     g.now(),
	}

	if err := g.badges.InsertBadge(ctx, badge); err != nil {
		return errors.ErrRewardGrantFailed(string(mission.RewardType), badgeName, err)
	}

	g.logger.Info("Badge granted",
		"owner_id", ownerID,
		"mission_id", mission.ID,
		"badge_name", badgeName,
	)

	return nil
}

// grantExperience credits experience points via the ledger.
func (g *Granter) grantExperience(ctx context.Context, ownerID int64, mission *domain.Mission) error {
	amount, err := strconv.Atoi(mission.RewardValue)
	if err != nil {
		// Misconfigured reward value: warn and no-op, never crash.
		g.logger.Warn("Invalid xp_points reward value, skipping grant",
			"owner_id", ownerID,
			"mission_id", mission.ID,
			"reward_value", mission.RewardValue,
		)
		return nil
	}

	if g.ledger == nil {
		g.logger.Info("No experience ledger configured, skipping xp grant",
			"owner_id", ownerID,
			"mission_id", mission.ID,
			"amount", amount,
		)
		return nil
	}

	if err := g.ledger.AddExperience(ctx, ownerID, amount); err != nil {
		return errors.ErrRewardGrantFailed(string(mission.RewardType), mission.RewardValue, err)
	}

	g.logger.Info("Experience granted",
		"owner_id", ownerID,
		"mission_id", mission.ID,
		"amount", amount,
	)

	return nil
}
