package reward

import "context"

// ExperienceLedger credits experience points to a store owner's account.
// The ledger is an external collaborator; the engine only depends on this
// interface. A nil ledger disables the xp_points reward path.
type ExperienceLedger interface {
	// AddExperience credits the given amount of experience points to the owner.
	AddExperience(ctx context.Context, ownerID int64, amount int) error
}
