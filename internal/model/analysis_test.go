package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFillsNilCollections(t *testing.T) {
	var a Analysis
	a.Normalize()

	assert.NotNil(t, a.CoupleProfile.Strengths)
	assert.NotNil(t, a.CoupleProfile.ResolutionPath)
	assert.NotNil(t, a.Partner1.Needs)
	assert.NotNil(t, a.Partner2.GrowthAreas)
	assert.NotNil(t, a.Partner1.Emotions.Triggers)
	assert.NotNil(t, a.Scenarios)
	assert.NotNil(t, a.CommunicationPatterns.PositivePatterns)
}

func TestNormalizeDefaultsScenarioTimeline(t *testing.T) {
	a := Analysis{Scenarios: []Scenario{
		{ID: "s1", Probability: 40},
		{ID: "s2", Probability: 30, Timeline: "3-6 months"},
	}}
	a.Normalize()

	assert.Equal(t, "Not specified", a.Scenarios[0].Timeline)
	assert.Equal(t, "3-6 months", a.Scenarios[1].Timeline)
	assert.NotNil(t, a.Scenarios[0].KeyFactors)
}

func TestNormalizeNeverRescalesProbabilities(t *testing.T) {
	// A set summing to 140 stays exactly as the oracle produced it
	a := Analysis{Scenarios: []Scenario{
		{ID: "s1", Probability: 80},
		{ID: "s2", Probability: 60},
	}}
	a.Normalize()

	assert.Equal(t, 80, a.Scenarios[0].Probability)
	assert.Equal(t, 60, a.Scenarios[1].Probability)
}

func TestNormalizeKeepsContent(t *testing.T) {
	a := Analysis{}
	a.CoupleProfile.CompatibilityScore = 72
	a.CoupleProfile.Strengths = []string{"humor"}
	a.Normalize()

	assert.Equal(t, 72, a.CoupleProfile.CompatibilityScore)
	assert.Equal(t, []string{"humor"}, a.CoupleProfile.Strengths)
}

func TestAnalysisJSONRoundTrip(t *testing.T) {
	raw := `{
		"couple_profile": {"archetype": "The Garden & Flame", "compatibility_score": 72},
		"partner_1": {"name": "Alex", "attachment_style": "anxious"},
		"partner_2": {"name": "Sam"},
		"scenarios": [{"id": "s1", "title": "Deepening", "probability": 35, "trend": "positive"}]
	}`

	var a Analysis
	require.NoError(t, json.Unmarshal([]byte(raw), &a))
	a.Normalize()

	assert.Equal(t, "The Garden & Flame", a.CoupleProfile.Archetype)
	assert.Equal(t, "Alex", a.Partner1.Name)
	assert.Equal(t, TrendPositive, a.Scenarios[0].Trend)
	assert.Equal(t, "Not specified", a.Scenarios[0].Timeline)
}
