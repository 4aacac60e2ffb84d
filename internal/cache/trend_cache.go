package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"

	"mindtrack/internal/model"
)

// TrendCache stores computed trend reports per user and window so repeated
// dashboard loads do not recompute over the full assessment history.
type TrendCache interface {
	Set(ctx context.Context, userID string, days int, report *model.TrendReport) error
	Get(ctx context.Context, userID string, days int) (*model.TrendReport, error)
	Invalidate(ctx context.Context, userID string) error
}

type trendCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTrendCache(client *redis.Client, ttl time.Duration) TrendCache {
	return &trendCache{client: client, ttl: ttl}
}

func trendKey(userID string, days int) string {
	return fmt.Sprintf("trend:%s:%d", userID, days)
}

func (c *trendCache) Set(ctx context.Context, userID string, days int, report *model.TrendReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return eris.Wrap(err, "cache: marshal trend report")
	}
	if err := c.client.Set(ctx, trendKey(userID, days), data, c.ttl).Err(); err != nil {
		return eris.Wrap(err, "cache: set trend report")
	}
	return nil
}

func (c *trendCache) Get(ctx context.Context, userID string, days int) (*model.TrendReport, error) {
	data, err := c.client.Get(ctx, trendKey(userID, days)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "cache: get trend report")
	}

	var report model.TrendReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, eris.Wrap(err, "cache: unmarshal trend report")
	}
	return &report, nil
}

// Invalidate drops every cached window for the user. Called after each new
// submission so trends never serve stale direction.
func (c *trendCache) Invalidate(ctx context.Context, userID string) error {
	pattern := fmt.Sprintf("trend:%s:*", userID)

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return eris.Wrap(err, "cache: scan trend keys")
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return eris.Wrap(err, "cache: delete trend keys")
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
