package domain

import "time"

// RewardType defines the kind of reward granted when a mission completes.
type RewardType string

const (
	// RewardTypeBadge grants a named badge, recorded at most once per owner.
	RewardTypeBadge RewardType = "badge"

	// RewardTypeXPPoints credits experience points to the owner's ledger.
	RewardTypeXPPoints RewardType = "xp_points"
)

// IsValid returns true if the reward type is a known type.
func (r RewardType) IsValid() bool {
	switch r {
	case RewardTypeBadge, RewardTypeXPPoints:
		return true
	default:
		return false
	}
}

// ResetFrequency defines how often a recurring mission's progress resets
// after a completion.
type ResetFrequency string

const (
	ResetDaily   ResetFrequency = "daily"
	ResetWeekly  ResetFrequency = "weekly"
	ResetMonthly ResetFrequency = "monthly"
	ResetNever   ResetFrequency = "never"
)

// IsValid returns true if the reset frequency is a known value.
func (f ResetFrequency) IsValid() bool {
	switch f {
	case ResetDaily, ResetWeekly, ResetMonthly, ResetNever:
		return true
	default:
		return false
	}
}

// Duration returns the length of one reset cycle.
// Monthly is a fixed 30-day window, matching the catalog's operational
// definition rather than calendar months. Never returns 0.
func (f ResetFrequency) Duration() time.Duration {
	switch f {
	case ResetDaily:
		return 24 * time.Hour
	case ResetWeekly:
		return 7 * 24 * time.Hour
	case ResetMonthly:
		return 30 * 24 * time.Hour
	default:
		return 0
	}
}

// Accumulation defines how an observed value is folded into progress.
//
// Usage in event processing:
//   - additive: progress = progress + value (the value is a delta)
//   - highwater: progress = max(progress, value) (the value is a
//     period-absolute observation, e.g. "total revenue this week")
//
// Producers that report absolute period totals must be paired with
// highwater missions, otherwise repeated reports within one cycle compound
// incorrectly.
type Accumulation string

const (
	AccumulationAdditive  Accumulation = "additive"
	AccumulationHighwater Accumulation = "highwater"
)

// IsValid returns true if the accumulation mode is a known value.
func (a Accumulation) IsValid() bool {
	switch a {
	case AccumulationAdditive, AccumulationHighwater:
		return true
	default:
		return false
	}
}

// Mission represents a configured goal that store owners progress toward.
// Missions are defined by operators in the mission catalog and are read-only
// to the tracking engine.
type Mission struct {
	ID             string         `json:"id" db:"id"`
	Type           string         `json:"type" db:"type"` // Event type key (e.g. "weekly_revenue")
	TargetValue    float64        `json:"target_value" db:"target_value"`
	IsRecurring    bool           `json:"is_recurring" db:"is_recurring"`
	ResetFrequency ResetFrequency `json:"reset_frequency" db:"reset_frequency"`
	Accumulation   Accumulation   `json:"accumulation" db:"accumulation"`
	RewardType     RewardType     `json:"reward_type" db:"reward_type"`
	RewardValue    string         `json:"reward_value" db:"reward_value"` // Badge name or XP amount, depending on RewardType
	BadgeImageURL  string         `json:"badge_image_url,omitempty" db:"badge_image_url"`
	IsActive       bool           `json:"is_active" db:"is_active"`
}

// ResetDue returns true if a new reset cycle has begun since the last
// completion. Only recurring missions with a real frequency ever reset;
// a recurring mission with ResetNever progresses perpetually.
func (m *Mission) ResetDue(lastCompletedAt *time.Time, now time.Time) bool {
	if !m.IsRecurring || lastCompletedAt == nil {
		return false
	}
	if m.ResetFrequency == ResetNever || m.ResetFrequency == "" {
		return false
	}
	return now.Sub(*lastCompletedAt) > m.ResetFrequency.Duration()
}

// Progress tracks one owner's running state toward one mission's target.
// Rows are lazily initialized (created on-demand when the first event for
// the owner/mission pair arrives) and are mutated only by the tracker.
type Progress struct {
	OwnerID         int64      `json:"owner_id" db:"owner_id"`
	MissionID       string     `json:"mission_id" db:"mission_id"`
	CurrentProgress float64    `json:"current_progress" db:"current_progress"`
	IsCompleted     bool       `json:"is_completed" db:"is_completed"`
	CompletedCount  int        `json:"completed_count" db:"completed_count"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty" db:"last_completed_at"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// NewProgress returns the zero-state progress record for an owner/mission
// pair that has no row yet.
func NewProgress(ownerID int64, missionID string) *Progress {
	return &Progress{
		OwnerID:   ownerID,
		MissionID: missionID,
	}
}

// MeetsTarget returns true if the current progress satisfies the mission's
// target value.
func (p *Progress) MeetsTarget(m *Mission) bool {
	return p.CurrentProgress >= m.TargetValue
}

// Badge is the audit record of a granted non-repeatable reward.
// At most one row exists per (owner, badge name) pair.
type Badge struct {
	ID            string    `json:"id" db:"id"`
	OwnerID       int64     `json:"owner_id" db:"owner_id"`
	BadgeName     string    `json:"badge_name" db:"badge_name"`
	BadgeImageURL string    `json:"badge_image_url,omitempty" db:"badge_image_url"`
	AwardedAt     time.Time `json:"awarded_at" db:"awarded_at"`
}
