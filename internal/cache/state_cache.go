package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"parallelhearts/internal/model"
)

// StateCache stashes in-progress wizard and simulator state so flows can be
// resumed across page navigations. Each state is owned by a single session;
// writes are last-writer-wins.
type StateCache interface {
	SetAssessment(ctx context.Context, a *model.AssessmentSession) error
	GetAssessment(ctx context.Context, id string) (*model.AssessmentSession, error)
	SetSimulation(ctx context.Context, s *model.FightSimState) error
	GetSimulation(ctx context.Context, id string) (*model.FightSimState, error)
}

type stateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStateCache creates a new state cache.
func NewStateCache(client *redis.Client) StateCache {
	return &stateCache{client: client, ttl: 6 * time.Hour}
}

func (c *stateCache) SetAssessment(ctx context.Context, a *model.AssessmentSession) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "assessment:"+a.ID, data, c.ttl).Err()
}

func (c *stateCache) GetAssessment(ctx context.Context, id string) (*model.AssessmentSession, error) {
	data, err := c.client.Get(ctx, "assessment:"+id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var a model.AssessmentSession
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *stateCache) SetSimulation(ctx context.Context, s *model.FightSimState) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "simulation:"+s.ID, data, c.ttl).Err()
}

func (c *stateCache) GetSimulation(ctx context.Context, id string) (*model.FightSimState, error) {
	data, err := c.client.Get(ctx, "simulation:"+id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s model.FightSimState
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, err
	}
	return &s, nil
}
