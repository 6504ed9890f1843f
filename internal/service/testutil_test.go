package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"parallelhearts/internal/config"
	"parallelhearts/internal/model"
)

// In-memory fakes for the repository and cache interfaces.

type fakeConvRepo struct {
	convs  map[string]*model.Conversation
	nextID int
}

func newFakeConvRepo() *fakeConvRepo {
	return &fakeConvRepo{convs: map[string]*model.Conversation{}}
}

func (r *fakeConvRepo) Create(_ context.Context, conv *model.Conversation) (string, error) {
	r.nextID++
	id := fmt.Sprintf("conv_%d", r.nextID)
	conv.ID = id
	conv.CreatedAt = time.Now()
	r.convs[id] = conv
	return id, nil
}

func (r *fakeConvRepo) GetByID(_ context.Context, id string) (*model.Conversation, error) {
	return r.convs[id], nil
}

func (r *fakeConvRepo) GetBySessionID(_ context.Context, sessionID string) ([]*model.Conversation, error) {
	var out []*model.Conversation
	for _, c := range r.convs {
		if c.SessionID == sessionID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeConvRepo) Delete(_ context.Context, id string) error {
	delete(r.convs, id)
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*model.Profile
	nextID   int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*model.Profile{}}
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *model.Profile) (string, error) {
	r.nextID++
	id := fmt.Sprintf("prof_%d", r.nextID)
	clone := *profile
	clone.ID = id
	clone.CreatedAt = time.Now()
	r.profiles[id] = &clone
	return id, nil
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id string) (*model.Profile, error) {
	return r.profiles[id], nil
}

func (r *fakeProfileRepo) GetLatestBySessionID(_ context.Context, sessionID string) (*model.Profile, error) {
	var ids []string
	for id, p := range r.profiles {
		if p.SessionID == sessionID {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}
	sort.Strings(ids)
	return r.profiles[ids[len(ids)-1]], nil
}

func (r *fakeProfileRepo) Delete(_ context.Context, id string) error {
	delete(r.profiles, id)
	return nil
}

type fakeAnalysisCache struct {
	data map[string]*model.Analysis
}

func newFakeAnalysisCache() *fakeAnalysisCache {
	return &fakeAnalysisCache{data: map[string]*model.Analysis{}}
}

func (c *fakeAnalysisCache) Set(_ context.Context, sessionID string, analysis *model.Analysis) error {
	c.data[sessionID] = analysis
	return nil
}

func (c *fakeAnalysisCache) Get(_ context.Context, sessionID string) (*model.Analysis, error) {
	return c.data[sessionID], nil
}

func (c *fakeAnalysisCache) Clear(_ context.Context, sessionID string) error {
	delete(c.data, sessionID)
	return nil
}

type fakeStoryCache struct {
	data map[string]*model.ScenarioStory
}

func newFakeStoryCache() *fakeStoryCache {
	return &fakeStoryCache{data: map[string]*model.ScenarioStory{}}
}

func (c *fakeStoryCache) Set(_ context.Context, sessionID, scenarioID string, story *model.ScenarioStory) error {
	c.data[sessionID+":"+scenarioID] = story
	return nil
}

func (c *fakeStoryCache) Get(_ context.Context, sessionID, scenarioID string) (*model.ScenarioStory, error) {
	return c.data[sessionID+":"+scenarioID], nil
}

type fakeStateCache struct {
	assessments map[string]*model.AssessmentSession
	simulations map[string]*model.FightSimState
}

func newFakeStateCache() *fakeStateCache {
	return &fakeStateCache{
		assessments: map[string]*model.AssessmentSession{},
		simulations: map[string]*model.FightSimState{},
	}
}

func (c *fakeStateCache) SetAssessment(_ context.Context, a *model.AssessmentSession) error {
	clone := *a
	c.assessments[a.ID] = &clone
	return nil
}

func (c *fakeStateCache) GetAssessment(_ context.Context, id string) (*model.AssessmentSession, error) {
	if a, ok := c.assessments[id]; ok {
		clone := *a
		return &clone, nil
	}
	return nil, nil
}

func (c *fakeStateCache) SetSimulation(_ context.Context, s *model.FightSimState) error {
	clone := *s
	c.simulations[s.ID] = &clone
	return nil
}

func (c *fakeStateCache) GetSimulation(_ context.Context, id string) (*model.FightSimState, error) {
	if s, ok := c.simulations[id]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, nil
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []string
}

func (b *recordingBroadcaster) BroadcastToSession(sessionID, msgType string, _ interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, msgType)
}

func (b *recordingBroadcaster) DisconnectSession(string) {}

func (b *recordingBroadcaster) sent() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.events...)
}

// newTestOracle spins up an httptest server speaking the Messages API shape
// and an OracleService pointed at it.
func newTestOracle(t *testing.T, handler http.HandlerFunc) *OracleService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewOracleService(&config.AIConfig{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		APIVersion: "2023-06-01",
		Models: config.OracleModels{
			Analysis: "test-analysis-model",
			Story:    "test-story-model",
		},
		MaxTokens: 1024,
		TimeoutMS: 5000,
	})
}

// disabledOracle has no API key configured.
func disabledOracle() *OracleService {
	return NewOracleService(&config.AIConfig{
		BaseURL:   "http://localhost:1",
		Models:    config.OracleModels{Analysis: "m", Story: "m"},
		MaxTokens: 1024,
		TimeoutMS: 100,
	})
}

func jsonDecode(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// completionResponse wraps text in the Messages API envelope.
func completionResponse(t *testing.T, text string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"content": []map[string]string{{"type": "text", "text": text}},
	})
	if err != nil {
		t.Fatal(err)
	}
	return body
}

// oracleAnalysisJSON is a minimal oracle completion carrying an analysis.
const oracleAnalysisJSON = `Here is the analysis you requested:
{
  "couple_profile": {"archetype": "The Anchor & Kite", "archetype_emoji": "⚓🪁", "compatibility_score": 81, "relationship_stage": "Deepening"},
  "partner_1": {"name": "Alex", "attachment_style": "secure"},
  "partner_2": {"name": "Sam", "attachment_style": "anxious"},
  "scenarios": [
    {"id": "steady_growth", "title": "Steady Growth", "probability": 55, "trend": "positive", "timeline": "6 months"},
    {"id": "plateau", "title": "Plateau", "probability": 45, "trend": "neutral"}
  ],
  "insights": {"key_insight": "Strong base, uneven reassurance"}
}`

func longConversation() string {
	s := ""
	for i := 0; i < 30; i++ {
		s += "Alex: I really appreciate how we talk through things together.\nSam: Me too, it makes hard weeks feel lighter.\n"
	}
	return s
}
