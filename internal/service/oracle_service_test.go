package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parallelhearts/internal/model"
)

func TestOracleAnalyzeConversation(t *testing.T) {
	var gotBody struct {
		Model       string  `json:"model"`
		MaxTokens   int     `json:"max_tokens"`
		Temperature float64 `json:"temperature"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	oracle := newTestOracle(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, jsonDecode(r, &gotBody))
		w.Write(completionResponse(t, oracleAnalysisJSON))
	})

	analysis, err := oracle.AnalyzeConversation(context.Background(), &model.AnalysisRequest{
		Conversation:     "Alex: hi\nSam: hey",
		RelationshipType: model.RelationshipRomantic,
	})
	require.NoError(t, err)

	assert.Equal(t, "test-analysis-model", gotBody.Model)
	assert.Equal(t, 1024, gotBody.MaxTokens)
	assert.Equal(t, 0.7, gotBody.Temperature)
	require.Len(t, gotBody.Messages, 1)
	assert.Equal(t, "user", gotBody.Messages[0].Role)
	assert.Contains(t, gotBody.Messages[0].Content, "Alex: hi")
	assert.Contains(t, gotBody.Messages[0].Content, "romantic")

	assert.Equal(t, "The Anchor & Kite", analysis.CoupleProfile.Archetype)
	// Normalization applied at the boundary
	assert.NotNil(t, analysis.Partner1.Needs)
	assert.Equal(t, "Not specified", analysis.Scenarios[1].Timeline)
}

func TestOracleSurfacesHTTPErrors(t *testing.T) {
	oracle := newTestOracle(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := oracle.AnalyzeConversation(context.Background(), &model.AnalysisRequest{Conversation: "x"})
	assert.Error(t, err)
}

func TestOracleRejectsEmptyCompletion(t *testing.T) {
	oracle := newTestOracle(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[]}`))
	})

	_, err := oracle.AnalyzeConversation(context.Background(), &model.AnalysisRequest{Conversation: "x"})
	assert.Error(t, err)
}

func TestOracleDisabledWithoutKey(t *testing.T) {
	oracle := disabledOracle()
	assert.False(t, oracle.Enabled())

	_, err := oracle.AnalyzeConversation(context.Background(), &model.AnalysisRequest{Conversation: "x"})
	assert.Error(t, err)
}

func TestExtractJSON(t *testing.T) {
	raw, err := extractJSON(`Sure! Here it is: {"a": {"b": 1}} hope that helps`)
	require.NoError(t, err)
	assert.Equal(t, `{"a": {"b": 1}}`, raw)

	raw, err = extractJSON(`{"bare": true}`)
	require.NoError(t, err)
	assert.Equal(t, `{"bare": true}`, raw)

	_, err = extractJSON("no json here")
	assert.Error(t, err)

	_, err = extractJSON("} reversed {")
	assert.Error(t, err)
}

func TestOracleAssessmentPromptCarriesAnswers(t *testing.T) {
	var prompt string
	oracle := newTestOracle(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		_ = jsonDecode(r, &body)
		prompt = body.Messages[0].Content
		w.Write(completionResponse(t, oracleAnalysisJSON))
	})

	_, err := oracle.AnalyzeAssessment(context.Background(), model.ModeSoloBoth, map[string]string{
		"self_attachment_1":    "secure",
		"partner_attachment_1": "avoidant",
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "self_attachment_1: secure")
	assert.Contains(t, prompt, "partner_attachment_1: avoidant")
	assert.Contains(t, prompt, "how they perceive their partner")
}
