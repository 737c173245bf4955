// Package cache provides the Redis-backed cache for derived alert feeds.
// Alerts are never persisted; they are recomputed from the reading history on
// every read. Because readings are append-only, a feed snapshot is fully
// identified by (patient, reading count, last sequence number), which makes
// the cache safe to serve without invalidation logic.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// NewClient connects to Redis using a redis:// URL and verifies the
// connection with a ping.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// AlertFeed caches serialized alert feeds keyed by reading snapshot. All
// failures are advisory: a miss or a Redis error simply means the caller
// recomputes the feed.
type AlertFeed struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewAlertFeed(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *AlertFeed {
	return &AlertFeed{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func alertKey(patientID uuid.UUID, count int, lastSeq int64) string {
	return fmt.Sprintf("alerts:%s:%d:%d", patientID, count, lastSeq)
}

// Get returns the cached feed for the given snapshot, or ok=false on a miss
// or Redis failure.
func (f *AlertFeed) Get(ctx context.Context, patientID uuid.UUID, count int, lastSeq int64) ([]byte, bool) {
	key := alertKey(patientID, count, lastSeq)
	val, err := f.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			f.logger.Debug().Err(err).Str("key", key).Msg("alert cache read failed")
		}
		return nil, false
	}
	return []byte(val), true
}

// Set stores the serialized feed for the given snapshot. Errors are logged
// and dropped; the next read recomputes.
func (f *AlertFeed) Set(ctx context.Context, patientID uuid.UUID, count int, lastSeq int64, payload []byte) {
	key := alertKey(patientID, count, lastSeq)
	if err := f.client.Set(ctx, key, payload, f.ttl).Err(); err != nil {
		f.logger.Debug().Err(err).Str("key", key).Msg("alert cache write failed")
	}
}
