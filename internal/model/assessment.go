package model

import (
	"fmt"
	"time"
)

// AssessmentMode selects how the 12-realm questionnaire is run. It is a
// closed set: parse at the boundary, then switch exhaustively.
type AssessmentMode string

const (
	// ModeSolo runs the questionnaire once, for the requesting user.
	ModeSolo AssessmentMode = "solo"
	// ModeDual runs it twice, each partner answering for themselves.
	ModeDual AssessmentMode = "dual"
	// ModeSoloBoth runs it twice with one user answering for both sides.
	ModeSoloBoth AssessmentMode = "solo_both"
)

// ParseAssessmentMode validates a mode string from a request.
func ParseAssessmentMode(s string) (AssessmentMode, error) {
	switch AssessmentMode(s) {
	case ModeSolo, ModeDual, ModeSoloBoth:
		return AssessmentMode(s), nil
	default:
		return "", fmt.Errorf("unknown assessment mode %q", s)
	}
}

// Phases returns the assessing-for labels the mode walks through, in order.
func (m AssessmentMode) Phases() []AssessingFor {
	switch m {
	case ModeDual, ModeSoloBoth:
		return []AssessingFor{ForSelf, ForPartner}
	default:
		return []AssessingFor{ForSelf}
	}
}

// AssessingFor labels whose perspective the current pass captures.
type AssessingFor string

const (
	ForSelf    AssessingFor = "self"
	ForPartner AssessingFor = "partner"
)

// QuestionKind is the input widget a realm question uses.
type QuestionKind string

const (
	QuestionChoice  QuestionKind = "choice"
	QuestionVisual  QuestionKind = "visual"
	QuestionSlider  QuestionKind = "slider"
	QuestionRanking QuestionKind = "ranking"
)

// QuestionOption is one selectable answer for choice and visual questions.
type QuestionOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Emoji string `json:"emoji,omitempty"`
}

// RealmQuestion is one question inside a realm.
type RealmQuestion struct {
	ID      string           `json:"id"`
	Text    string           `json:"text"`
	Kind    QuestionKind     `json:"type"`
	Options []QuestionOption `json:"options,omitempty"`
	Min     int              `json:"min,omitempty"`
	Max     int              `json:"max,omitempty"`
	Labels  []string         `json:"labels,omitempty"`
}

// Realm is one themed group of questions in the assessment.
type Realm struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Emoji       string          `json:"emoji"`
	Theme       string          `json:"theme"`
	Description string          `json:"description"`
	Color       string          `json:"color"`
	Questions   []RealmQuestion `json:"questions"`
}

// RealmQuestionIDs flattens the realm bank into the ordered step sequence
// the wizard machine walks.
func RealmQuestionIDs(realms []Realm) []string {
	var ids []string
	for _, r := range realms {
		for _, q := range r.Questions {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

// StepAt resolves a flat step index back to its realm and question.
// Returns nils when the index is past the end.
func StepAt(realms []Realm, index int) (*Realm, *RealmQuestion) {
	for ri := range realms {
		if index < len(realms[ri].Questions) {
			return &realms[ri], &realms[ri].Questions[index]
		}
		index -= len(realms[ri].Questions)
	}
	return nil, nil
}

// AssessmentSession is one run of the questionnaire, resumable across page
// navigations. Dual-phase modes complete the wizard once per phase; the
// machine is reset between phases and the first pass is parked in
// SelfAnswers.
type AssessmentSession struct {
	ID             string            `json:"id" bson:"_id,omitempty"`
	SessionID      string            `json:"sessionId" bson:"sessionId"`
	Mode           AssessmentMode    `json:"mode" bson:"mode"`
	Phase          AssessingFor      `json:"assessingFor" bson:"assessingFor"`
	Wizard         WizardState       `json:"wizard" bson:"wizard"`
	SelfAnswers    map[string]string `json:"selfAnswers,omitempty" bson:"selfAnswers,omitempty"`
	PartnerAnswers map[string]string `json:"partnerAnswers,omitempty" bson:"partnerAnswers,omitempty"`
	Completed      bool              `json:"completed" bson:"completed"`
	CreatedAt      time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt" bson:"updatedAt"`
}

// CombinedAnswers builds the terminal payload: answer maps from both phases
// merged under self_/partner_ prefixes. Solo runs only carry self answers.
func (s *AssessmentSession) CombinedAnswers() map[string]string {
	combined := make(map[string]string, len(s.SelfAnswers)+len(s.PartnerAnswers))
	for k, v := range s.SelfAnswers {
		combined["self_"+k] = v
	}
	for k, v := range s.PartnerAnswers {
		combined["partner_"+k] = v
	}
	return combined
}
