package reward

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockExperienceLedger is a mock implementation of ExperienceLedger for
// testing. It uses testify/mock to allow assertions on method calls.
type MockExperienceLedger struct {
	mock.Mock
}

// NewMockExperienceLedger creates a new mock experience ledger.
func NewMockExperienceLedger() *MockExperienceLedger {
	return &MockExperienceLedger{}
}

// AddExperience mocks crediting experience points.
func (m *MockExperienceLedger) AddExperience(ctx context.Context, ownerID int64, amount int) error {
	args := m.Called(ctx, ownerID, amount)
	return args.Error(0)
}
