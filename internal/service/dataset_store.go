package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/channelchat/channelchat-go/internal/model"
)

// DatasetStore maps session IDs to their loaded channel dataset. Each session
// holds at most one dataset; loading a new one replaces the old. Entries are
// written through to Redis when a cache is configured, so Get can rehydrate
// after a restart.
type DatasetStore struct {
	mu    sync.RWMutex
	items map[string]*datasetEntry
	cache *CacheService
}

type datasetEntry struct {
	dataset    *model.ChannelDataset
	lastAccess time.Time
}

func NewDatasetStore(cache *CacheService) *DatasetStore {
	return &DatasetStore{
		items: make(map[string]*datasetEntry),
		cache: cache,
	}
}

// Get returns the dataset for a session, or nil when none is loaded. Misses
// fall through to the cache so datasets survive process restarts.
func (s *DatasetStore) Get(ctx context.Context, sessionID string) *model.ChannelDataset {
	s.mu.Lock()
	if entry, ok := s.items[sessionID]; ok {
		entry.lastAccess = time.Now()
		s.mu.Unlock()
		return entry.dataset
	}
	s.mu.Unlock()

	ds, err := s.cache.GetDataset(ctx, sessionID)
	if err != nil {
		log.Warn().Err(err).Str("session", sessionID).Msg("dataset cache read failed")
		return nil
	}
	if ds == nil {
		return nil
	}

	s.mu.Lock()
	s.items[sessionID] = &datasetEntry{dataset: ds, lastAccess: time.Now()}
	s.mu.Unlock()
	return ds
}

// Put replaces the session's dataset.
func (s *DatasetStore) Put(ctx context.Context, sessionID string, ds *model.ChannelDataset) {
	s.mu.Lock()
	s.items[sessionID] = &datasetEntry{dataset: ds, lastAccess: time.Now()}
	s.mu.Unlock()

	if err := s.cache.SetDataset(ctx, sessionID, ds); err != nil {
		log.Warn().Err(err).Str("session", sessionID).Msg("dataset cache write failed")
	}
}

// Drop removes the session's dataset, if any.
func (s *DatasetStore) Drop(ctx context.Context, sessionID string) {
	s.mu.Lock()
	delete(s.items, sessionID)
	s.mu.Unlock()

	if err := s.cache.InvalidateDataset(ctx, sessionID); err != nil {
		log.Warn().Err(err).Str("session", sessionID).Msg("dataset cache invalidation failed")
	}
}

// Len returns the number of in-memory datasets.
func (s *DatasetStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// evictIdle drops in-memory entries not touched within maxIdle and returns
// how many were removed. Cached copies are left to expire on their own TTL.
func (s *DatasetStore) evictIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, entry := range s.items {
		if entry.lastAccess.Before(cutoff) {
			delete(s.items, id)
			evicted++
		}
	}
	return evicted
}
