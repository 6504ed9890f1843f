package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"parallelhearts/internal/model"
)

// AnalysisCache stores the most recent analysis per session. Last writer
// wins; there is no history and no versioning.
type AnalysisCache interface {
	Set(ctx context.Context, sessionID string, analysis *model.Analysis) error
	Get(ctx context.Context, sessionID string) (*model.Analysis, error)
	Clear(ctx context.Context, sessionID string) error
}

type analysisCache struct {
	client *redis.Client
}

// NewAnalysisCache creates a new analysis cache.
func NewAnalysisCache(client *redis.Client) AnalysisCache {
	return &analysisCache{client: client}
}

func (c *analysisCache) Set(ctx context.Context, sessionID string, analysis *model.Analysis) error {
	data, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "analysis:"+sessionID, data, 24*time.Hour).Err()
}

func (c *analysisCache) Get(ctx context.Context, sessionID string) (*model.Analysis, error) {
	data, err := c.client.Get(ctx, "analysis:"+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var analysis model.Analysis
	if err := json.Unmarshal([]byte(data), &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (c *analysisCache) Clear(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, "analysis:"+sessionID).Err()
}
