package cache

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"

	"mindtrack/internal/model"
)

// AssessmentCache keeps each user's most recent assessment hot so the
// dashboard "latest" endpoint avoids a database round trip.
type AssessmentCache interface {
	SetLatest(ctx context.Context, userID string, assessment *model.Assessment) error
	GetLatest(ctx context.Context, userID string) (*model.Assessment, error)
	DeleteLatest(ctx context.Context, userID string) error
}

type assessmentCache struct {
	client *redis.Client
}

func NewAssessmentCache(client *redis.Client) AssessmentCache {
	return &assessmentCache{client: client}
}

func latestKey(userID string) string {
	return "assessment:latest:" + userID
}

func (c *assessmentCache) SetLatest(ctx context.Context, userID string, assessment *model.Assessment) error {
	data, err := json.Marshal(assessment)
	if err != nil {
		return eris.Wrap(err, "cache: marshal assessment")
	}
	// Overwritten on every submission, so no expiry.
	if err := c.client.Set(ctx, latestKey(userID), data, 0).Err(); err != nil {
		return eris.Wrap(err, "cache: set latest assessment")
	}
	return nil
}

func (c *assessmentCache) GetLatest(ctx context.Context, userID string) (*model.Assessment, error) {
	data, err := c.client.Get(ctx, latestKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "cache: get latest assessment")
	}

	var assessment model.Assessment
	if err := json.Unmarshal(data, &assessment); err != nil {
		return nil, eris.Wrap(err, "cache: unmarshal assessment")
	}
	return &assessment, nil
}

func (c *assessmentCache) DeleteLatest(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, latestKey(userID)).Err(); err != nil {
		return eris.Wrap(err, "cache: delete latest assessment")
	}
	return nil
}
