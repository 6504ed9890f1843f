package model

import "time"

// StoryGlimpse is one vignette inside a scenario narrative.
type StoryGlimpse struct {
	Title string `json:"title" bson:"title"`
	Text  string `json:"text" bson:"text"`
}

// ScenarioStory is the generated narrative for one projected future,
// cached per session and scenario id. Most recent only, no history.
type ScenarioStory struct {
	ScenarioID  string         `json:"scenario_id" bson:"scenarioId"`
	Title       string         `json:"title" bson:"title"`
	Glimpses    []StoryGlimpse `json:"glimpses" bson:"glimpses"`
	Fallback    bool           `json:"fallback" bson:"fallback"`
	GeneratedAt time.Time      `json:"generated_at" bson:"generatedAt"`
}
