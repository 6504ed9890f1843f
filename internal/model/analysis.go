package model

import "time"

// RelationshipType tags what kind of relationship the transcript describes.
type RelationshipType string

const (
	RelationshipRomantic RelationshipType = "romantic"
	RelationshipFamily   RelationshipType = "family"
	RelationshipBusiness RelationshipType = "business"
	RelationshipFriend   RelationshipType = "friendship"
)

// AnalysisRequest is the immutable payload sent to the oracle for a
// transcript-based analysis. Built once per submission.
type AnalysisRequest struct {
	Conversation      string            `json:"conversation"`
	RelationshipType  RelationshipType  `json:"relationship_type"`
	AdditionalContext map[string]string `json:"additional_context,omitempty"`
}

// CoupleProfile describes the relationship as a whole.
type CoupleProfile struct {
	Archetype          string   `json:"archetype" bson:"archetype"`
	ArchetypeEmoji     string   `json:"archetype_emoji" bson:"archetypeEmoji"`
	CompatibilityScore int      `json:"compatibility_score" bson:"compatibilityScore"`
	RelationshipStage  string   `json:"relationship_stage" bson:"relationshipStage"`
	Description        string   `json:"description" bson:"description"`
	Strengths          []string `json:"strengths" bson:"strengths"`
	Challenges         []string `json:"challenges" bson:"challenges"`
	ConflictPoints     []string `json:"conflict_points" bson:"conflictPoints"`
	ResolutionPath     []string `json:"resolution_path" bson:"resolutionPath"`
}

// Personality groups the typology readings for one partner.
type Personality struct {
	JungianArchetype string            `json:"jungian_archetype" bson:"jungianArchetype"`
	EnneagramType    string            `json:"enneagram_type" bson:"enneagramType"`
	OceanTraits      map[string]string `json:"ocean_traits,omitempty" bson:"oceanTraits,omitempty"`
	Traits           []string          `json:"traits,omitempty" bson:"traits,omitempty"`
}

// EmotionalLandscape holds what a partner feels on and under the surface.
// Intensities are 1-10 and advisory, keyed by emotion name.
type EmotionalLandscape struct {
	PrimaryEmotions   []string       `json:"primary_emotions" bson:"primaryEmotions"`
	EmotionIntensity  map[string]int `json:"emotion_intensities,omitempty" bson:"emotionIntensities,omitempty"`
	HiddenEmotions    []string       `json:"hidden_emotions" bson:"hiddenEmotions"`
	Triggers          []string       `json:"triggers,omitempty" bson:"triggers,omitempty"`
	EmotionalPatterns string         `json:"emotional_patterns,omitempty" bson:"emotionalPatterns,omitempty"`
}

// PartnerProfile is the oracle's psychological read of one partner.
type PartnerProfile struct {
	Name                 string             `json:"name" bson:"name"`
	Emoji                string             `json:"emoji" bson:"emoji"`
	Needs                []string           `json:"needs" bson:"needs"`
	Values               []string           `json:"values" bson:"values"`
	AttachmentStyle      string             `json:"attachment_style" bson:"attachmentStyle"`
	LoveLanguage         string             `json:"love_language" bson:"loveLanguage"`
	Personality          Personality        `json:"personality" bson:"personality"`
	Emotions             EmotionalLandscape `json:"emotions" bson:"emotions"`
	CommunicationStyle   string             `json:"communication_style" bson:"communicationStyle"`
	Goals                []string           `json:"goals" bson:"goals"`
	SubconsciousPatterns []string           `json:"subconscious_patterns" bson:"subconsciousPatterns"`
	RootCauses           []string           `json:"root_causes" bson:"rootCauses"`
	Strengths            []string           `json:"strengths" bson:"strengths"`
	GrowthAreas          []string           `json:"growth_areas" bson:"growthAreas"`
}

// ScenarioTrend is the direction a projected future leans.
type ScenarioTrend string

const (
	TrendPositive ScenarioTrend = "positive"
	TrendNeutral  ScenarioTrend = "neutral"
	TrendNegative ScenarioTrend = "negative"
)

// Scenario is one probability-weighted projected trajectory. Probabilities
// are advisory likelihoods; the set is not required to sum to 100 and is
// never rescaled.
type Scenario struct {
	ID              string        `json:"id" bson:"id"`
	Title           string        `json:"title" bson:"title"`
	Probability     int           `json:"probability" bson:"probability"`
	Trend           ScenarioTrend `json:"trend" bson:"trend"`
	Reasoning       string        `json:"reasoning" bson:"reasoning"`
	KeyFactors      []string      `json:"key_factors" bson:"keyFactors"`
	Recommendations []string      `json:"recommendations" bson:"recommendations"`
	Timeline        string        `json:"timeline" bson:"timeline"`
}

// CommunicationPatterns summarizes the couple's conversational dynamics.
type CommunicationPatterns struct {
	OverallQuality      string   `json:"overall_quality,omitempty" bson:"overallQuality,omitempty"`
	PositivePatterns    []string `json:"positive_patterns" bson:"positivePatterns"`
	ConcerningPatterns  []string `json:"concerning_patterns" bson:"concerningPatterns"`
	UnconsciousDynamics []string `json:"unconscious_dynamics" bson:"unconsciousDynamics"`
}

// Insights is the oracle's headline takeaways.
type Insights struct {
	KeyInsight              string `json:"key_insight,omitempty" bson:"keyInsight,omitempty"`
	BiggestStrength         string `json:"biggest_strength,omitempty" bson:"biggestStrength,omitempty"`
	PrimaryChallenge        string `json:"primary_challenge,omitempty" bson:"primaryChallenge,omitempty"`
	ImmediateRecommendation string `json:"immediate_recommendation,omitempty" bson:"immediateRecommendation,omitempty"`
	LongTermVision          string `json:"long_term_vision,omitempty" bson:"longTermVision,omitempty"`
	ShadowWorkNeeded        string `json:"shadow_work_needed,omitempty" bson:"shadowWorkNeeded,omitempty"`
}

// Analysis is the structured profile returned by the oracle. The shape is
// not contractually guaranteed; Normalize resolves missing collections once
// at the boundary so readers never have to.
type Analysis struct {
	CoupleProfile         CoupleProfile         `json:"couple_profile" bson:"coupleProfile"`
	Partner1              PartnerProfile        `json:"partner_1" bson:"partner1"`
	Partner2              PartnerProfile        `json:"partner_2" bson:"partner2"`
	Scenarios             []Scenario            `json:"scenarios" bson:"scenarios"`
	CommunicationPatterns CommunicationPatterns `json:"communication_patterns" bson:"communicationPatterns"`
	Insights              Insights              `json:"insights" bson:"insights"`
}

// Normalize fills nil slices and maps with empty values so downstream code
// can range and index without nil checks. Content is never altered: scores
// and scenario probabilities pass through untouched.
func (a *Analysis) Normalize() {
	a.CoupleProfile.Strengths = orEmpty(a.CoupleProfile.Strengths)
	a.CoupleProfile.Challenges = orEmpty(a.CoupleProfile.Challenges)
	a.CoupleProfile.ConflictPoints = orEmpty(a.CoupleProfile.ConflictPoints)
	a.CoupleProfile.ResolutionPath = orEmpty(a.CoupleProfile.ResolutionPath)

	normalizePartner(&a.Partner1)
	normalizePartner(&a.Partner2)

	if a.Scenarios == nil {
		a.Scenarios = []Scenario{}
	}
	for i := range a.Scenarios {
		a.Scenarios[i].KeyFactors = orEmpty(a.Scenarios[i].KeyFactors)
		a.Scenarios[i].Recommendations = orEmpty(a.Scenarios[i].Recommendations)
		if a.Scenarios[i].Timeline == "" {
			a.Scenarios[i].Timeline = "Not specified"
		}
	}

	a.CommunicationPatterns.PositivePatterns = orEmpty(a.CommunicationPatterns.PositivePatterns)
	a.CommunicationPatterns.ConcerningPatterns = orEmpty(a.CommunicationPatterns.ConcerningPatterns)
	a.CommunicationPatterns.UnconsciousDynamics = orEmpty(a.CommunicationPatterns.UnconsciousDynamics)
}

func normalizePartner(p *PartnerProfile) {
	p.Needs = orEmpty(p.Needs)
	p.Values = orEmpty(p.Values)
	p.Goals = orEmpty(p.Goals)
	p.SubconsciousPatterns = orEmpty(p.SubconsciousPatterns)
	p.RootCauses = orEmpty(p.RootCauses)
	p.Strengths = orEmpty(p.Strengths)
	p.GrowthAreas = orEmpty(p.GrowthAreas)
	p.Emotions.PrimaryEmotions = orEmpty(p.Emotions.PrimaryEmotions)
	p.Emotions.HiddenEmotions = orEmpty(p.Emotions.HiddenEmotions)
	p.Emotions.Triggers = orEmpty(p.Emotions.Triggers)
	p.Personality.Traits = orEmpty(p.Personality.Traits)
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Conversation is a stored submission with its quality assessment.
type Conversation struct {
	ID                string            `json:"id" bson:"_id,omitempty"`
	SessionID         string            `json:"sessionId" bson:"sessionId"`
	Text              string            `json:"text" bson:"text"`
	QualityBadge      QualityBadge      `json:"qualityBadge" bson:"qualityBadge"`
	Metrics           TextMetrics       `json:"metrics" bson:"metrics"`
	RelationshipType  RelationshipType  `json:"relationshipType" bson:"relationshipType"`
	AdditionalContext map[string]string `json:"additionalContext,omitempty" bson:"additionalContext,omitempty"`
	CreatedAt         time.Time         `json:"createdAt" bson:"createdAt"`
}

// Profile is a stored analysis result tied to a conversation or assessment.
type Profile struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	SessionID      string    `json:"sessionId" bson:"sessionId"`
	ConversationID string    `json:"conversationId,omitempty" bson:"conversationId,omitempty"`
	AssessmentID   string    `json:"assessmentId,omitempty" bson:"assessmentId,omitempty"`
	Analysis       Analysis  `json:"analysis" bson:"analysis"`
	Fallback       bool      `json:"fallback" bson:"fallback"`
	ModelUsed      string    `json:"modelUsed,omitempty" bson:"modelUsed,omitempty"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}
