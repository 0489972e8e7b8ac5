package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// DatasetJanitor is a periodic background job that evicts idle in-memory
// datasets so long-running instances don't accumulate abandoned sessions.
type DatasetJanitor struct {
	store    *DatasetStore
	maxIdle  time.Duration
	interval time.Duration
	stopCh   chan struct{}
}

// NewDatasetJanitor creates a janitor that ticks every interval and evicts
// datasets idle for longer than maxIdle.
func NewDatasetJanitor(store *DatasetStore, maxIdle, interval time.Duration) *DatasetJanitor {
	return &DatasetJanitor{
		store:    store,
		maxIdle:  maxIdle,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the eviction loop. It runs one tick immediately, then every
// interval.
func (j *DatasetJanitor) Start(ctx context.Context) {
	log.Info().Dur("interval", j.interval).Dur("max_idle", j.maxIdle).Msg("dataset-janitor: starting")

	j.tick()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.tick()
		case <-ctx.Done():
			log.Info().Msg("dataset-janitor: stopping (context cancelled)")
			return
		case <-j.stopCh:
			log.Info().Msg("dataset-janitor: stopping (stop signal)")
			return
		}
	}
}

// Stop signals the janitor to stop.
func (j *DatasetJanitor) Stop() {
	close(j.stopCh)
}

func (j *DatasetJanitor) tick() {
	if evicted := j.store.evictIdle(j.maxIdle); evicted > 0 {
		log.Info().Int("evicted", evicted).Int("remaining", j.store.Len()).Msg("dataset-janitor: tick complete")
	}
}
