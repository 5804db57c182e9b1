package producer

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockStoreDirectory is a mock implementation of StoreDirectory.
type MockStoreDirectory struct {
	mock.Mock
}

func (m *MockStoreDirectory) ListStores(ctx context.Context) ([]Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Store), args.Error(1)
}

// MockOrderStats is a mock implementation of OrderStats.
type MockOrderStats struct {
	mock.Mock
}

func (m *MockOrderStats) CompletedRevenue(ctx context.Context, storeID int64, from, to time.Time) (float64, error) {
	args := m.Called(ctx, storeID, from, to)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockOrderStats) BestSellerUnits(ctx context.Context, storeID int64, from, to time.Time) (float64, error) {
	args := m.Called(ctx, storeID, from, to)
	return args.Get(0).(float64), args.Error(1)
}

// MockProgressTracker is a mock implementation of ProgressTracker.
type MockProgressTracker struct {
	mock.Mock
}

func (m *MockProgressTracker) TrackProgress(ctx context.Context, ownerID int64, eventType string, value float64) error {
	args := m.Called(ctx, ownerID, eventType, value)
	return args.Error(0)
}
