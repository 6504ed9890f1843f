package service

import (
	"context"
	"log"

	lru "github.com/hashicorp/golang-lru/v2"

	"parallelhearts/internal/cache"
	"parallelhearts/internal/model"
)

// StoryService generates narrative vignettes for projected scenarios. A
// small in-process LRU sits in front of Redis so repeat reads within one
// server skip the round trip.
type StoryService struct {
	oracle *OracleService
	intake *IntakeService
	cache  cache.StoryCache
	local  *lru.Cache[string, *model.ScenarioStory]
}

// NewStoryService creates a new story service.
func NewStoryService(oracle *OracleService, intake *IntakeService, storyCache cache.StoryCache) *StoryService {
	local, _ := lru.New[string, *model.ScenarioStory](256)
	return &StoryService{
		oracle: oracle,
		intake: intake,
		cache:  storyCache,
		local:  local,
	}
}

// Generate returns the story for one scenario of the session's latest
// analysis, producing it on first request. Oracle failure is absorbed with
// the built-in narrative, flagged as fallback in the result.
func (s *StoryService) Generate(ctx context.Context, sessionID, scenarioID string) (*model.ScenarioStory, error) {
	if story := s.cached(ctx, sessionID, scenarioID); story != nil {
		return story, nil
	}

	scenario, err := s.findScenario(ctx, sessionID, scenarioID)
	if err != nil {
		return nil, err
	}

	story, err := s.oracle.GenerateStory(ctx, scenario)
	if err != nil {
		log.Printf("[Story] oracle unavailable, using fallback: %v", err)
		story = FallbackStory(scenario)
	}

	s.local.Add(storyLocalKey(sessionID, scenarioID), story)
	if err := s.cache.Set(ctx, sessionID, scenarioID, story); err != nil {
		log.Printf("[Story] cache set failed: %v", err)
	}
	return story, nil
}

// Get returns an already generated story without generating a new one.
func (s *StoryService) Get(ctx context.Context, sessionID, scenarioID string) (*model.ScenarioStory, error) {
	if story := s.cached(ctx, sessionID, scenarioID); story != nil {
		return story, nil
	}
	return nil, ErrNotFound
}

func (s *StoryService) cached(ctx context.Context, sessionID, scenarioID string) *model.ScenarioStory {
	if story, ok := s.local.Get(storyLocalKey(sessionID, scenarioID)); ok {
		return story
	}

	story, err := s.cache.Get(ctx, sessionID, scenarioID)
	if err != nil {
		log.Printf("[Story] cache get failed: %v", err)
		return nil
	}
	if story != nil {
		s.local.Add(storyLocalKey(sessionID, scenarioID), story)
	}
	return story
}

func (s *StoryService) findScenario(ctx context.Context, sessionID, scenarioID string) (*model.Scenario, error) {
	analysis, err := s.intake.GetLatest(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for i := range analysis.Scenarios {
		if analysis.Scenarios[i].ID == scenarioID {
			return &analysis.Scenarios[i], nil
		}
	}
	return nil, ErrNotFound
}

func storyLocalKey(sessionID, scenarioID string) string {
	return sessionID + ":" + scenarioID
}
