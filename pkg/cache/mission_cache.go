package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/storely/mission-engine/pkg/domain"
	"github.com/storely/mission-engine/pkg/repository"
)

// CachedMissionRepository is a read-through TTL cache in front of a
// MissionRepository. Mission definitions change rarely and are read on every
// tracked event, so lookups are served from memory and refreshed from the
// source when an entry expires.
//
// All lookups are thread-safe.
type CachedMissionRepository struct {
	source repository.MissionRepository
	ttl    time.Duration
	logger *slog.Logger

	mu      sync.RWMutex
	entries map[string]*cacheEntry // event type -> cached mission list

	// now is swappable for tests.
	now func() time.Time
}

type cacheEntry struct {
	missions  []*domain.Mission
	expiresAt time.Time
}

// NewCachedMissionRepository wraps source with a TTL cache.
func NewCachedMissionRepository(source repository.MissionRepository, ttl time.Duration, logger *slog.Logger) *CachedMissionRepository {
	return &CachedMissionRepository{
		source:  source,
		ttl:     ttl,
		logger:  logger,
		entries: make(map[string]*cacheEntry),
		now:     time.Now,
	}
}

// ListActiveMissions returns the active missions for the event type, serving
// from cache while the entry is fresh. On a source failure nothing is cached
// and the error is returned as-is.
func (c *CachedMissionRepository) ListActiveMissions(ctx context.Context, eventType string) ([]*domain.Mission, error) {
	if missions, ok := c.lookup(eventType); ok {
		return missions, nil
	}

	missions, err := c.source.ListActiveMissions(ctx, eventType)
	if err != nil {
		return nil, err
	}

	c.store(eventType, missions)

	c.logger.Debug("Mission cache refreshed",
		"event_type", eventType,
		"missions", len(missions),
		"ttl", c.ttl,
	)

	return missions, nil
}

// Invalidate drops every cached entry. The next lookup per event type reloads
// from the source.
func (c *CachedMissionRepository) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
}

func (c *CachedMissionRepository) lookup(eventType string) ([]*domain.Mission, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[eventType]
	if !ok || c.now().After(entry.expiresAt) {
		return nil, false
	}

	// Safe to hand out directly: cached missions are treated as immutable.
	return entry.missions, true
}

func (c *CachedMissionRepository) store(eventType string, missions []*domain.Mission) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[eventType] = &cacheEntry{
		missions:  missions,
		expiresAt: c.now().Add(c.ttl),
	}
}
