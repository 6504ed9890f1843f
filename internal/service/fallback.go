package service

import (
	"time"

	"parallelhearts/internal/model"
)

// FallbackAnalysis returns the built-in analysis used when the oracle cannot
// be reached on the conversation path. The substitution is silent: the result
// travels through the same normalization, persistence and caching as a real
// one, distinguishable only by the stored fallback flag.
func FallbackAnalysis() *model.Analysis {
	a := &model.Analysis{
		CoupleProfile: model.CoupleProfile{
			Archetype:          "The Garden & Flame",
			ArchetypeEmoji:     "🌹🔥",
			CompatibilityScore: 72,
			RelationshipStage:  "Growth & Integration",
			Description:        "A dynamic pairing of nurturing warmth and independent passion, learning to balance closeness with autonomy",
			Strengths:          []string{"Deep care for each other", "Willingness to work on issues", "Complementary strengths"},
			Challenges:         []string{"Attachment style differences", "Communication timing", "Balancing needs"},
			ConflictPoints:     []string{"Frequency of quality time", "Emotional expression expectations"},
			ResolutionPath:     []string{"Learn each other's attachment patterns", "Create predictable connection rituals", "Practice non-defensive communication"},
		},
		Partner1: model.PartnerProfile{
			Name:            "Person 1",
			Emoji:           "🌟",
			Needs:           []string{"emotional security", "clear communication", "quality time"},
			Values:          []string{"honesty", "loyalty", "growth"},
			AttachmentStyle: "Anxious-Secure",
			LoveLanguage:    "Quality Time",
			Personality: model.Personality{
				JungianArchetype: "The Caregiver",
				EnneagramType:    "Type 2",
				Traits:           []string{"empathetic", "supportive", "sensitive"},
			},
			Emotions: model.EmotionalLandscape{
				PrimaryEmotions:   []string{"hopeful", "anxious", "caring"},
				EmotionIntensity:  map[string]int{"hopeful": 7, "anxious": 6, "caring": 8},
				HiddenEmotions:    []string{"fear of rejection", "desire for deeper connection"},
				EmotionalPatterns: "Shows vulnerability through caring actions",
			},
			CommunicationStyle:   "Direct but gentle, seeks reassurance",
			SubconsciousPatterns: []string{"seeks validation", "fears abandonment"},
			RootCauses:           []string{"past relationship trauma", "childhood attachment patterns"},
			Strengths:            []string{"emotional intelligence", "commitment", "communication skills"},
			GrowthAreas:          []string{"managing anxiety", "setting boundaries"},
		},
		Partner2: model.PartnerProfile{
			Name:            "Person 2",
			Emoji:           "🔥",
			Needs:           []string{"personal space", "autonomy", "understanding"},
			Values:          []string{"independence", "authenticity", "respect"},
			AttachmentStyle: "Avoidant-Secure",
			LoveLanguage:    "Acts of Service",
			Personality: model.Personality{
				JungianArchetype: "The Independent",
				EnneagramType:    "Type 5",
				Traits:           []string{"analytical", "introspective", "private"},
			},
			Emotions: model.EmotionalLandscape{
				PrimaryEmotions:   []string{"defensive", "overwhelmed", "loving"},
				EmotionIntensity:  map[string]int{"defensive": 7, "overwhelmed": 8, "loving": 6},
				HiddenEmotions:    []string{"fear of vulnerability", "desire for independence"},
				EmotionalPatterns: "Withdraws when feeling pressured",
			},
			CommunicationStyle:   "Reserved, needs processing time",
			SubconsciousPatterns: []string{"avoids conflict", "needs alone time to recharge"},
			RootCauses:           []string{"learned self-reliance", "fear of engulfment"},
			Strengths:            []string{"self-awareness", "problem-solving", "loyalty"},
			GrowthAreas:          []string{"emotional expression", "vulnerability"},
		},
		Scenarios: []model.Scenario{
			{
				ID: "deepening_connection", Title: "Deepening Connection", Probability: 35,
				Trend: model.TrendPositive, Timeline: "3-6 months",
				Reasoning:       "Both partners show commitment and willingness to understand each other",
				KeyFactors:      []string{"Consistent communication", "Mutual respect", "Growth mindset"},
				Recommendations: []string{"Continue therapy or counseling", "Practice attachment-aware communication", "Celebrate small wins"},
			},
			{
				ID: "comfortable_distance", Title: "Comfortable Distance", Probability: 25,
				Trend: model.TrendNeutral, Timeline: "6-12 months",
				Reasoning:       "Finding a middle ground that works for both",
				KeyFactors:      []string{"Compromise", "Clear boundaries", "Realistic expectations"},
				Recommendations: []string{"Define relationship agreements", "Regular check-ins", "Individual therapy"},
			},
			{
				ID: "growing_apart", Title: "Growing Apart", Probability: 20,
				Trend: model.TrendNegative, Timeline: "6-12 months",
				Reasoning:       "If patterns continue without intervention",
				KeyFactors:      []string{"Unresolved conflicts", "Resentment building", "Lack of progress"},
				Recommendations: []string{"Couples therapy urgently", "Honest conversation about future", "Consider break if needed"},
			},
			{
				ID: "breakthrough_moment", Title: "Breakthrough Moment", Probability: 15,
				Trend: model.TrendPositive, Timeline: "1-3 months",
				Reasoning:       "High awareness and motivation for change",
				KeyFactors:      []string{"Aha moments", "Behavior changes", "Increased empathy"},
				Recommendations: []string{"Capitalize on momentum", "Document insights", "Create action plan"},
			},
			{
				ID: "status_quo", Title: "Status Quo", Probability: 5,
				Trend: model.TrendNeutral, Timeline: "Ongoing",
				Reasoning:       "Maintaining current patterns without significant change",
				KeyFactors:      []string{"Comfort with familiar", "Fear of change", "Lack of urgency"},
				Recommendations: []string{"Shake up routine", "Try new experiences together", "Set relationship goals"},
			},
		},
		CommunicationPatterns: model.CommunicationPatterns{
			OverallQuality:      "Moderate - both feel safe to express but not always heard or understood",
			PositivePatterns:    []string{"Both express care", "Willing to discuss issues", "Show commitment"},
			ConcerningPatterns:  []string{"Pursue-withdraw dynamic", "Defensive responses", "Unmet expectations"},
			UnconsciousDynamics: []string{"Space is interpreted as rejection", "Closeness feels like pressure"},
		},
		Insights: model.Insights{
			KeyInsight:              "An anxious-avoidant attachment dance where one partner's need for closeness triggers the other's need for space",
			BiggestStrength:         "Deep care for each other and willingness to work on issues",
			PrimaryChallenge:        "Attachment style incompatibility creating a pursue-withdraw cycle",
			ImmediateRecommendation: "Establish a daily 15-minute check-in where you share highs and lows without problem-solving",
			LongTermVision:          "A relationship that balances predictable connection with respected autonomy",
			ShadowWorkNeeded:        "Recognize when you are in the pursue-withdraw cycle and name it without blame",
		},
	}
	a.Normalize()
	return a
}

// FallbackStory returns the built-in narrative used when the oracle cannot
// generate one for a scenario.
func FallbackStory(scenario *model.Scenario) *model.ScenarioStory {
	return &model.ScenarioStory{
		ScenarioID: scenario.ID,
		Title:      "Glimpses of " + scenario.Title,
		Glimpses: []model.StoryGlimpse{
			{
				Title: "The First Step",
				Text:  "It starts with a small moment: one of you pauses mid-sentence and actually listens. Nothing dramatic, just a choice to stay present instead of reacting.",
			},
			{
				Title: "Finding the Rhythm",
				Text:  "Weeks pass and the new patterns begin to feel less like effort. The conversations that used to spiral now find their way back to solid ground.",
			},
			{
				Title: "Looking Back",
				Text:  "Later, you will both remember this stretch as the turning point. Not because everything changed at once, but because you kept choosing each other.",
			},
		},
		Fallback:    true,
		GeneratedAt: time.Now(),
	}
}
