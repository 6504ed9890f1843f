package model

import (
	"strings"
	"time"
)

const (
	// FightSimStartHeat is the tension level a fresh simulation opens at.
	FightSimStartHeat = 30
	// FightSimMaxTurns ends the simulation after this many user responses.
	FightSimMaxTurns = 3
	// FightSimCalmHeat ends the simulation early once heat drops below it.
	FightSimCalmHeat = 10
)

// Speaker identifies who produced a simulator message.
type Speaker string

const (
	SpeakerUser    Speaker = "user"
	SpeakerPartner Speaker = "partner"
	SpeakerCoach   Speaker = "coach"
)

// SimMessage is one line of the simulated exchange.
type SimMessage struct {
	Speaker Speaker `json:"speaker" bson:"speaker"`
	Text    string  `json:"text" bson:"text"`
}

// ResponseKind tags the communication move a response represents and keys
// the partner's scripted reply in the mid-heat band.
type ResponseKind string

const (
	ResponseValidating ResponseKind = "validating"
	ResponseCurious    ResponseKind = "curious"
	ResponseDefensive  ResponseKind = "defensive"
	ResponseDismissive ResponseKind = "dismissive"
	ResponseCustom     ResponseKind = "custom"
)

// ResponseChoice carries the deltas a response applies to the running scores.
type ResponseChoice struct {
	Text         string       `json:"text"`
	Kind         ResponseKind `json:"type"`
	HeatDelta    int          `json:"heat_change"`
	EmpathyDelta int          `json:"empathy_points"`
	Feedback     string       `json:"feedback,omitempty"`
}

// FightSimState is the two-variable accumulator behind the simulator. Heat
// stays clamped to [0,100]; empathy is unbounded and may go negative.
type FightSimState struct {
	ID           string       `json:"id" bson:"_id,omitempty"`
	SessionID    string       `json:"sessionId" bson:"sessionId"`
	ScenarioID   int          `json:"scenarioId" bson:"scenarioId"`
	HeatLevel    int          `json:"heatLevel" bson:"heatLevel"`
	EmpathyScore int          `json:"empathyScore" bson:"empathyScore"`
	TurnCount    int          `json:"turnCount" bson:"turnCount"`
	Messages     []SimMessage `json:"messages" bson:"messages"`
	Complete     bool         `json:"complete" bson:"complete"`
	Grade        string       `json:"grade,omitempty" bson:"grade,omitempty"`
	CreatedAt    time.Time    `json:"createdAt" bson:"createdAt"`
}

// ApplyChoice folds one response into the state: clamp heat, accumulate
// empathy, bump the turn counter, append the user's line and the partner's
// scripted reply, then run the terminal check.
func (s *FightSimState) ApplyChoice(choice ResponseChoice) {
	if s.Complete {
		return
	}

	s.HeatLevel = clamp(s.HeatLevel+choice.HeatDelta, 0, 100)
	s.EmpathyScore += choice.EmpathyDelta
	s.TurnCount++

	s.Messages = append(s.Messages, SimMessage{Speaker: SpeakerUser, Text: choice.Text})
	if choice.Feedback != "" {
		s.Messages = append(s.Messages, SimMessage{Speaker: SpeakerCoach, Text: choice.Feedback})
	}
	s.Messages = append(s.Messages, SimMessage{
		Speaker: SpeakerPartner,
		Text:    PartnerReply(choice.Kind, s.HeatLevel),
	})

	if s.TurnCount >= FightSimMaxTurns || s.HeatLevel < FightSimCalmHeat {
		s.Complete = true
		s.Grade = GradeEmpathy(s.EmpathyScore)
	}
}

// PartnerReply selects the scripted partner response: reconciliatory once
// the exchange has cooled, withdrawal once it has boiled over, otherwise
// keyed off the user's move.
func PartnerReply(kind ResponseKind, heat int) string {
	switch {
	case heat < 15:
		return "Thank you for hearing me out. I really appreciate you working with me on this. I feel much better now."
	case heat > 70:
		return "You know what, I don't think you're even trying to understand. Maybe we should talk about this later."
	case kind == ResponseValidating || kind == ResponseCurious:
		return "I appreciate you listening. It means a lot that you're willing to work on this together."
	default:
		return "I just wish you could see things from my perspective. This is really important to me."
	}
}

// GradeEmpathy is the final grade step function over the empathy score.
func GradeEmpathy(empathy int) string {
	switch {
	case empathy > 40:
		return "A"
	case empathy > 20:
		return "B"
	case empathy > 0:
		return "C"
	default:
		return "D"
	}
}

// ScoreFreeText converts a typed response into a choice via the keyword
// heuristic: "i feel" earns empathy, validation language earns empathy and
// cools the exchange, exclamations and absolutes heat it up.
func ScoreFreeText(text string) ResponseChoice {
	lower := strings.ToLower(text)

	choice := ResponseChoice{Text: text, Kind: ResponseCustom}

	if strings.Contains(lower, "i feel") {
		choice.EmpathyDelta += 10
	}
	if strings.Contains(lower, "understand") || strings.Contains(lower, "hear you") {
		choice.EmpathyDelta += 15
		choice.HeatDelta -= 10
	}
	if strings.Contains(text, "!") || strings.Contains(text, "always") || strings.Contains(text, "never") {
		choice.HeatDelta += 15
		choice.EmpathyDelta -= 10
	}
	return choice
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
