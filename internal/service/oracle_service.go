package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"parallelhearts/internal/config"
	"parallelhearts/internal/model"
)

// OracleService talks to the external analysis oracle (Anthropic Messages
// API). It returns raw results and errors; fallback policy lives with the
// callers, because the conversation and assessment paths handle failure
// differently.
type OracleService struct {
	config *config.AIConfig
	client *http.Client
}

// NewOracleService creates a new oracle service.
func NewOracleService(cfg *config.AIConfig) *OracleService {
	return &OracleService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// Enabled reports whether an API key is configured.
func (s *OracleService) Enabled() bool {
	return s.config.IsEnabled()
}

// ModelName returns the model used for full analyses.
func (s *OracleService) ModelName() string {
	return s.config.Models.Analysis
}

// AnalyzeConversation runs the full psychological analysis of a transcript.
func (s *OracleService) AnalyzeConversation(ctx context.Context, req *model.AnalysisRequest) (*model.Analysis, error) {
	if !s.config.IsEnabled() {
		return nil, fmt.Errorf("oracle not configured")
	}

	prompt := s.buildConversationPrompt(req)
	response, err := s.callClaude(ctx, s.config.Models.Analysis, prompt)
	if err != nil {
		return nil, err
	}

	return parseAnalysis(response)
}

// AnalyzeAssessment runs the analysis over questionnaire answers instead of
// a transcript.
func (s *OracleService) AnalyzeAssessment(ctx context.Context, mode model.AssessmentMode, answers map[string]string) (*model.Analysis, error) {
	if !s.config.IsEnabled() {
		return nil, fmt.Errorf("oracle not configured")
	}

	prompt := s.buildAssessmentPrompt(mode, answers)
	response, err := s.callClaude(ctx, s.config.Models.Analysis, prompt)
	if err != nil {
		return nil, err
	}

	return parseAnalysis(response)
}

// GenerateStory produces the narrative vignettes for one projected scenario.
func (s *OracleService) GenerateStory(ctx context.Context, scenario *model.Scenario) (*model.ScenarioStory, error) {
	if !s.config.IsEnabled() {
		return nil, fmt.Errorf("oracle not configured")
	}

	prompt := s.buildStoryPrompt(scenario)
	response, err := s.callClaude(ctx, s.config.Models.Story, prompt)
	if err != nil {
		return nil, err
	}

	raw, err := extractJSON(response)
	if err != nil {
		return nil, err
	}

	var story model.ScenarioStory
	if err := json.Unmarshal([]byte(raw), &story); err != nil {
		return nil, fmt.Errorf("parse story: %w", err)
	}
	story.ScenarioID = scenario.ID
	story.GeneratedAt = time.Now()
	return &story, nil
}

// callClaude makes a request to the Anthropic Messages API.
func (s *OracleService) callClaude(ctx context.Context, modelName, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model":       modelName,
		"max_tokens":  s.config.MaxTokens,
		"temperature": 0.7,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.BaseURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.config.APIKey)
	req.Header.Set("anthropic-version", s.config.APIVersion)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("oracle returned status %d", resp.StatusCode)
	}

	var claudeResp struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(body, &claudeResp); err != nil {
		return "", err
	}

	if len(claudeResp.Content) == 0 {
		return "", fmt.Errorf("empty response from oracle")
	}
	return claudeResp.Content[0].Text, nil
}

// parseAnalysis extracts and decodes the analysis JSON embedded in a
// completion, then normalizes it so callers never see nil collections.
func parseAnalysis(completion string) (*model.Analysis, error) {
	raw, err := extractJSON(completion)
	if err != nil {
		return nil, err
	}

	var analysis model.Analysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, fmt.Errorf("parse analysis: %w", err)
	}
	analysis.Normalize()
	return &analysis, nil
}

// extractJSON pulls the outermost JSON object out of a completion that may
// carry prose around it.
func extractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON object in completion")
	}
	return text[start : end+1], nil
}

func (s *OracleService) buildConversationPrompt(req *model.AnalysisRequest) string {
	contextStr := ""
	if len(req.AdditionalContext) > 0 {
		keys := make([]string, 0, len(req.AdditionalContext))
		for k := range req.AdditionalContext {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var sb strings.Builder
		sb.WriteString("\nAdditional context provided by the user:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", k, req.AdditionalContext[k]))
		}
		contextStr = sb.String()
	}

	return fmt.Sprintf(`You are an expert relationship psychologist analyzing a %s relationship. Analyze the conversation below and return ONLY valid JSON matching this schema:
%s

Conversation:
%s
%s
Base every finding on evidence from the conversation. Identify both partners by how they appear in the transcript. Include exactly 5 scenarios with probabilities reflecting your genuine assessment.`,
		req.RelationshipType, analysisSchema, req.Conversation, contextStr)
}

func (s *OracleService) buildAssessmentPrompt(mode model.AssessmentMode, answers map[string]string) string {
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", k, answers[k]))
	}

	perspective := "The answers describe one partner's view of themselves."
	switch mode {
	case model.ModeDual:
		perspective = "Answers prefixed self_ are from one partner, partner_ from the other, each describing themselves."
	case model.ModeSoloBoth:
		perspective = "All answers come from one user: self_ answers describe themselves, partner_ answers describe how they perceive their partner."
	}

	return fmt.Sprintf(`You are an expert relationship psychologist. A user completed a 12-realm relationship assessment. %s Return ONLY valid JSON matching this schema:
%s

Assessment answers:
%s
Build the psychological profiles from the questionnaire answers. Include exactly 5 scenarios with probabilities reflecting your genuine assessment.`,
		perspective, analysisSchema, sb.String())
}

func (s *OracleService) buildStoryPrompt(scenario *model.Scenario) string {
	return fmt.Sprintf(`You are a relationship storyteller. Write a short narrative exploring this projected future for a couple. Return ONLY valid JSON:
{
  "title": "evocative story title",
  "glimpses": [
    {"title": "moment title", "text": "2-3 sentence vignette"},
    {"title": "moment title", "text": "2-3 sentence vignette"},
    {"title": "moment title", "text": "2-3 sentence vignette"}
  ]
}

Scenario: %s (%s trend, %d%% likely)
Reasoning: %s
Key factors: %s
Timeline: %s

Write three glimpses showing how this future unfolds over the timeline. Keep them warm, specific and grounded in the factors above.`,
		scenario.Title, scenario.Trend, scenario.Probability,
		scenario.Reasoning, strings.Join(scenario.KeyFactors, ", "), scenario.Timeline)
}

const analysisSchema = `{
  "couple_profile": {
    "archetype": "two-word archetype name",
    "archetype_emoji": "two emoji",
    "compatibility_score": 0-100,
    "relationship_stage": "stage name",
    "description": "2-3 sentences",
    "strengths": ["..."],
    "challenges": ["..."],
    "conflict_points": ["..."],
    "resolution_path": ["..."]
  },
  "partner_1": {
    "name": "name or Partner 1",
    "emoji": "one emoji",
    "needs": ["..."],
    "values": ["..."],
    "attachment_style": "secure|anxious|avoidant|disorganized",
    "love_language": "...",
    "personality": {
      "jungian_archetype": "...",
      "enneagram_type": "...",
      "ocean_traits": {"openness": "high|medium|low", "conscientiousness": "...", "extraversion": "...", "agreeableness": "...", "neuroticism": "..."},
      "traits": ["..."]
    },
    "emotions": {
      "primary_emotions": ["..."],
      "emotion_intensities": {"emotion": 1-10},
      "hidden_emotions": ["..."],
      "triggers": ["..."],
      "emotional_patterns": "..."
    },
    "communication_style": "...",
    "goals": ["..."],
    "subconscious_patterns": ["..."],
    "root_causes": ["..."],
    "strengths": ["..."],
    "growth_areas": ["..."]
  },
  "partner_2": { same shape as partner_1 },
  "scenarios": [
    {"id": "scenario_1", "title": "...", "probability": 0-100, "trend": "positive|neutral|negative", "reasoning": "...", "key_factors": ["..."], "recommendations": ["..."], "timeline": "e.g. 6-12 months"}
  ],
  "communication_patterns": {
    "overall_quality": "...",
    "positive_patterns": ["..."],
    "concerning_patterns": ["..."],
    "unconscious_dynamics": ["..."]
  },
  "insights": {
    "key_insight": "...",
    "biggest_strength": "...",
    "primary_challenge": "...",
    "immediate_recommendation": "...",
    "long_term_vision": "...",
    "shadow_work_needed": "..."
  }
}`
