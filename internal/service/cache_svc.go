package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/channelchat/channelchat-go/internal/model"
)

// CacheService provides a Redis write-through layer for channel datasets so a
// restarted instance can rehydrate sessions that are still within their TTL.
type CacheService struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops).
func NewCacheService(redisURL string, ttl time.Duration) *CacheService {
	if redisURL == "" {
		log.Info().Msg("redis: no URL configured, caching disabled")
		return &CacheService{ttl: ttl}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Str("url", redisURL).Msg("redis: invalid URL, caching disabled")
		return &CacheService{ttl: ttl}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis: connection failed, caching disabled")
		return &CacheService{ttl: ttl}
	}

	log.Info().Msg("redis: connected, caching enabled")
	return &CacheService{rdb: rdb, ttl: ttl}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetDataset retrieves a cached dataset for a session. Returns nil if not
// cached or cache is disabled.
func (c *CacheService) GetDataset(ctx context.Context, sessionID string) (*model.ChannelDataset, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, datasetKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var ds model.ChannelDataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

// SetDataset stores a session's dataset in cache.
func (c *CacheService) SetDataset(ctx context.Context, sessionID string, ds *model.ChannelDataset) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(ds)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, datasetKey(sessionID), b, c.ttl).Err()
}

// InvalidateDataset removes a session's dataset from cache.
func (c *CacheService) InvalidateDataset(ctx context.Context, sessionID string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, datasetKey(sessionID)).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func datasetKey(sessionID string) string {
	return fmt.Sprintf("dataset:%s", sessionID)
}
