package reward

import (
	"context"
	"log"
)

// DevMockExperienceLedger is a simple mock implementation for local
// development. Unlike MockExperienceLedger (testify/mock), this doesn't
// require explicit setup and always succeeds with logged output.
type DevMockExperienceLedger struct{}

// NewDevMockExperienceLedger creates a new development mock ledger.
func NewDevMockExperienceLedger() *DevMockExperienceLedger {
	return &DevMockExperienceLedger{}
}

// AddExperience logs the credit and returns success.
func (d *DevMockExperienceLedger) AddExperience(ctx context.Context, ownerID int64, amount int) error {
	log.Printf("[DevMock] AddExperience: ownerID=%d, amount=%d", ownerID, amount)
	return nil
}
