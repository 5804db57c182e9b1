package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/storely/mission-engine/pkg/domain"
)

// MockMissionRepository is a testify mock of MissionRepository.
type MockMissionRepository struct {
	mock.Mock
}

// NewMockMissionRepository creates a new mock mission repository.
func NewMockMissionRepository() *MockMissionRepository {
	return &MockMissionRepository{}
}

// ListActiveMissions mocks listing active missions for an event type.
func (m *MockMissionRepository) ListActiveMissions(ctx context.Context, eventType string) ([]*domain.Mission, error) {
	args := m.Called(ctx, eventType)
	if missions := args.Get(0); missions != nil {
		return missions.([]*domain.Mission), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockProgressRepository is a testify mock of ProgressRepository.
type MockProgressRepository struct {
	mock.Mock
}

// NewMockProgressRepository creates a new mock progress repository.
func NewMockProgressRepository() *MockProgressRepository {
	return &MockProgressRepository{}
}

// GetProgress mocks reading a progress record.
func (m *MockProgressRepository) GetProgress(ctx context.Context, ownerID int64, missionID string) (*domain.Progress, error) {
	args := m.Called(ctx, ownerID, missionID)
	if progress := args.Get(0); progress != nil {
		return progress.(*domain.Progress), args.Error(1)
	}
	return nil, args.Error(1)
}

// UpsertProgress mocks writing a progress record.
func (m *MockProgressRepository) UpsertProgress(ctx context.Context, progress *domain.Progress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

// MockBadgeRepository is a testify mock of BadgeRepository.
type MockBadgeRepository struct {
	mock.Mock
}

// NewMockBadgeRepository creates a new mock badge repository.
func NewMockBadgeRepository() *MockBadgeRepository {
	return &MockBadgeRepository{}
}

// BadgeExists mocks the badge existence check.
func (m *MockBadgeRepository) BadgeExists(ctx context.Context, ownerID int64, badgeName string) (bool, error) {
	args := m.Called(ctx, ownerID, badgeName)
	return args.Bool(0), args.Error(1)
}

// InsertBadge mocks recording a granted badge.
func (m *MockBadgeRepository) InsertBadge(ctx context.Context, badge *domain.Badge) error {
	args := m.Called(ctx, badge)
	return args.Error(0)
}
