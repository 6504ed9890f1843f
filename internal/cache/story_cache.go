package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"parallelhearts/internal/model"
)

// StoryCache stores generated scenario narratives keyed by session and
// scenario id. Most recent only.
type StoryCache interface {
	Set(ctx context.Context, sessionID, scenarioID string, story *model.ScenarioStory) error
	Get(ctx context.Context, sessionID, scenarioID string) (*model.ScenarioStory, error)
}

type storyCache struct {
	client *redis.Client
}

// NewStoryCache creates a new story cache.
func NewStoryCache(client *redis.Client) StoryCache {
	return &storyCache{client: client}
}

func storyKey(sessionID, scenarioID string) string {
	return "story:" + sessionID + ":" + scenarioID
}

func (c *storyCache) Set(ctx context.Context, sessionID, scenarioID string, story *model.ScenarioStory) error {
	data, err := json.Marshal(story)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, storyKey(sessionID, scenarioID), data, 24*time.Hour).Err()
}

func (c *storyCache) Get(ctx context.Context, sessionID, scenarioID string) (*model.ScenarioStory, error) {
	data, err := c.client.Get(ctx, storyKey(sessionID, scenarioID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var story model.ScenarioStory
	if err := json.Unmarshal([]byte(data), &story); err != nil {
		return nil, err
	}
	return &story, nil
}
