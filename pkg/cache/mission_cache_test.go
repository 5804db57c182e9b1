package cache

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/storely/mission-engine/pkg/domain"
	"github.com/storely/mission-engine/pkg/repository"
)

func newTestCache(source repository.MissionRepository, ttl time.Duration) *CachedMissionRepository {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCachedMissionRepository(source, ttl, logger)
}

func TestCachedMissionRepository_ServesFromCacheWithinTTL(t *testing.T) {
	source := new(repository.MockMissionRepository)
	missions := []*domain.Mission{{ID: "first-sale", Type: "order_completed"}}
	source.On("ListActiveMissions", mock.Anything, "order_completed").Return(missions, nil).Once()

	c := newTestCache(source, 5*time.Minute)

	got1, err := c.ListActiveMissions(context.Background(), "order_completed")
	assert.NoError(t, err)
	got2, err := c.ListActiveMissions(context.Background(), "order_completed")
	assert.NoError(t, err)

	assert.Equal(t, missions, got1)
	assert.Equal(t, missions, got2)
	source.AssertNumberOfCalls(t, "ListActiveMissions", 1)
}

func TestCachedMissionRepository_ExpiredEntryReloads(t *testing.T) {
	source := new(repository.MockMissionRepository)
	missions := []*domain.Mission{{ID: "first-sale", Type: "order_completed"}}
	source.On("ListActiveMissions", mock.Anything, "order_completed").Return(missions, nil)

	c := newTestCache(source, time.Minute)

	current := time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	_, err := c.ListActiveMissions(context.Background(), "order_completed")
	assert.NoError(t, err)

	current = current.Add(2 * time.Minute)

	_, err = c.ListActiveMissions(context.Background(), "order_completed")
	assert.NoError(t, err)

	source.AssertNumberOfCalls(t, "ListActiveMissions", 2)
}

func TestCachedMissionRepository_DistinctEventTypesCacheSeparately(t *testing.T) {
	source := new(repository.MockMissionRepository)
	source.On("ListActiveMissions", mock.Anything, "order_completed").
		Return([]*domain.Mission{{ID: "first-sale"}}, nil).Once()
	source.On("ListActiveMissions", mock.Anything, "weekly_revenue").
		Return([]*domain.Mission{{ID: "weekly-goal"}}, nil).Once()

	c := newTestCache(source, 5*time.Minute)

	orders, err := c.ListActiveMissions(context.Background(), "order_completed")
	assert.NoError(t, err)
	revenue, err := c.ListActiveMissions(context.Background(), "weekly_revenue")
	assert.NoError(t, err)

	assert.Equal(t, "first-sale", orders[0].ID)
	assert.Equal(t, "weekly-goal", revenue[0].ID)
	source.AssertExpectations(t)
}

func TestCachedMissionRepository_SourceFailureNotCached(t *testing.T) {
	source := new(repository.MockMissionRepository)
	cause := stderrors.New("connection refused")
	source.On("ListActiveMissions", mock.Anything, "order_completed").Return(nil, cause).Once()
	source.On("ListActiveMissions", mock.Anything, "order_completed").
		Return([]*domain.Mission{{ID: "first-sale"}}, nil).Once()

	c := newTestCache(source, 5*time.Minute)

	_, err := c.ListActiveMissions(context.Background(), "order_completed")
	assert.ErrorIs(t, err, cause)

	// Retry after the failure reaches the source again and succeeds.
	missions, err := c.ListActiveMissions(context.Background(), "order_completed")
	assert.NoError(t, err)
	assert.Len(t, missions, 1)
}

func TestCachedMissionRepository_InvalidateDropsEntries(t *testing.T) {
	source := new(repository.MockMissionRepository)
	source.On("ListActiveMissions", mock.Anything, "order_completed").
		Return([]*domain.Mission{{ID: "first-sale"}}, nil)

	c := newTestCache(source, time.Hour)

	_, err := c.ListActiveMissions(context.Background(), "order_completed")
	assert.NoError(t, err)

	c.Invalidate()

	_, err = c.ListActiveMissions(context.Background(), "order_completed")
	assert.NoError(t, err)

	source.AssertNumberOfCalls(t, "ListActiveMissions", 2)
}
