package model

import "strings"

// QualityBadge is one of five ordered buckets classifying how much signal a
// conversation carries. Ordering follows the minimum character threshold.
type QualityBadge string

const (
	BadgeNovice      QualityBadge = "novice"
	BadgeApprentice  QualityBadge = "apprentice"
	BadgeAdept       QualityBadge = "adept"
	BadgeMaster      QualityBadge = "master"
	BadgeGrandmaster QualityBadge = "grandmaster"
)

// MinConversationChars is the absolute floor below which a submission is
// rejected outright instead of being classified.
const MinConversationChars = 50

// QualityTier carries the badge plus its display metadata and whether the
// supplemental questionnaire gate applies.
type QualityTier struct {
	Badge          QualityBadge `json:"badge"`
	Label          string       `json:"label"`
	Color          string       `json:"badge_color"`
	Icon           string       `json:"icon"`
	Message        string       `json:"message"`
	MinChars       int          `json:"min_chars"`
	NeedsQuestions bool         `json:"needs_questions"`
}

// Tiers ordered highest threshold first so the first matching band wins.
var qualityTiers = []QualityTier{
	{
		Badge:    BadgeGrandmaster,
		Label:    "GRANDMASTER",
		Color:    "#ff00ff",
		Icon:     "🔮",
		Message:  "Exceptional conversation depth!",
		MinChars: 2000,
	},
	{
		Badge:    BadgeMaster,
		Label:    "MASTER",
		Color:    "#00ffff",
		Icon:     "👑",
		Message:  "Excellent conversation quality!",
		MinChars: 1000,
	},
	{
		Badge:    BadgeAdept,
		Label:    "ADEPT",
		Color:    "#00ff80",
		Icon:     "💎",
		Message:  "Great conversation depth!",
		MinChars: 500,
	},
	{
		Badge:          BadgeApprentice,
		Label:          "APPRENTICE",
		Color:          "#ff6600",
		Icon:           "⭐",
		Message:        "Good start! A bit more context would help",
		MinChars:       200,
		NeedsQuestions: true,
	},
	{
		Badge:          BadgeNovice,
		Label:          "NOVICE",
		Color:          "#ff0055",
		Icon:           "🌱",
		Message:        "Your conversation is too brief for deep analysis",
		MinChars:       0,
		NeedsQuestions: true,
	},
}

// Classify maps a character count to its quality tier. Classification has no
// lower bound; the 50-char precondition is enforced upstream.
func Classify(charCount int) QualityTier {
	for _, t := range qualityTiers {
		if charCount >= t.MinChars {
			return t
		}
	}
	return qualityTiers[len(qualityTiers)-1]
}

// SupplementalQuestion is one of the four follow-up questions shown when the
// conversation alone is too thin to analyze.
type SupplementalQuestion struct {
	ID          string `json:"id"`
	Question    string `json:"question"`
	Placeholder string `json:"placeholder"`
	ContextKey  string `json:"context_key"`
}

// SupplementalQuestions is the fixed q1..q4 set. ContextKey is the label the
// answer is filed under in the oracle's additional_context payload.
var SupplementalQuestions = []SupplementalQuestion{
	{
		ID:          "q1",
		Question:    "What are the main topics you and your partner discuss most often?",
		Placeholder: "e.g., Work, family, future plans, hobbies...",
		ContextKey:  "Main topics discussed",
	},
	{
		ID:          "q2",
		Question:    "How do you typically resolve disagreements?",
		Placeholder: "e.g., We talk it through, we take time apart, we compromise...",
		ContextKey:  "Conflict resolution style",
	},
	{
		ID:          "q3",
		Question:    "What makes you feel most connected to your partner?",
		Placeholder: "e.g., Deep conversations, physical touch, shared activities...",
		ContextKey:  "Connection factors",
	},
	{
		ID:          "q4",
		Question:    "What is one thing you wish was different in your relationship?",
		Placeholder: "e.g., More quality time, better communication, more support...",
		ContextKey:  "Desired changes",
	},
}

// MinSupplementalAnswerLen is the trimmed length each supplemental answer
// must exceed. Exactly 10 characters is not enough.
const MinSupplementalAnswerLen = 10

// AnswersComplete reports whether every supplemental question has an answer
// whose trimmed length exceeds MinSupplementalAnswerLen.
func AnswersComplete(answers map[string]string) bool {
	for _, q := range SupplementalQuestions {
		if len(strings.TrimSpace(answers[q.ID])) <= MinSupplementalAnswerLen {
			return false
		}
	}
	return true
}
