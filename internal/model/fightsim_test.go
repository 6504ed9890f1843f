package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newSimState() *FightSimState {
	return &FightSimState{
		HeatLevel: FightSimStartHeat,
		Messages: []SimMessage{
			{Speaker: SpeakerPartner, Text: FightScenarios[0].PartnerMessage},
		},
	}
}

func TestApplyChoiceAccumulates(t *testing.T) {
	s := newSimState()
	s.ApplyChoice(ResponseChoice{Text: "ok", Kind: ResponseDefensive, HeatDelta: 20, EmpathyDelta: -10})

	assert.Equal(t, 50, s.HeatLevel)
	assert.Equal(t, -10, s.EmpathyScore)
	assert.Equal(t, 1, s.TurnCount)
	assert.False(t, s.Complete)
}

func TestApplyChoiceClampsHeat(t *testing.T) {
	s := newSimState()
	s.HeatLevel = 95
	s.ApplyChoice(ResponseChoice{Text: "x", Kind: ResponseDismissive, HeatDelta: 25})
	assert.Equal(t, 100, s.HeatLevel)

	s2 := newSimState()
	s2.HeatLevel = 20
	s2.ApplyChoice(ResponseChoice{Text: "x", Kind: ResponseValidating, HeatDelta: -50, EmpathyDelta: 5})
	assert.Equal(t, 0, s2.HeatLevel)
}

func TestApplyChoiceEndsAfterMaxTurns(t *testing.T) {
	s := newSimState()
	for i := 0; i < FightSimMaxTurns; i++ {
		s.ApplyChoice(ResponseChoice{Text: "x", Kind: ResponseDefensive, HeatDelta: 5, EmpathyDelta: 10})
	}

	assert.True(t, s.Complete)
	assert.Equal(t, "B", s.Grade)
}

func TestApplyChoiceEndsEarlyWhenCalm(t *testing.T) {
	s := newSimState()
	s.ApplyChoice(ResponseChoice{Text: "x", Kind: ResponseValidating, HeatDelta: -15, EmpathyDelta: 25})
	assert.False(t, s.Complete)

	s.ApplyChoice(ResponseChoice{Text: "x", Kind: ResponseValidating, HeatDelta: -15, EmpathyDelta: 25})
	assert.True(t, s.Complete, "heat dropped below %d", FightSimCalmHeat)
	assert.Equal(t, 2, s.TurnCount)
	assert.Equal(t, "A", s.Grade)
}

func TestApplyChoiceAfterCompleteIsNoop(t *testing.T) {
	s := newSimState()
	s.Complete = true
	s.ApplyChoice(ResponseChoice{Text: "x", HeatDelta: 50})

	assert.Equal(t, FightSimStartHeat, s.HeatLevel)
	assert.Zero(t, s.TurnCount)
}

func TestApplyChoiceAppendsTranscript(t *testing.T) {
	s := newSimState()
	s.ApplyChoice(QuickResponses[0])

	assert.Len(t, s.Messages, 4)
	assert.Equal(t, SpeakerUser, s.Messages[1].Speaker)
	assert.Equal(t, SpeakerCoach, s.Messages[2].Speaker)
	assert.Equal(t, SpeakerPartner, s.Messages[3].Speaker)
}

func TestApplyChoiceSkipsCoachWithoutFeedback(t *testing.T) {
	s := newSimState()
	s.ApplyChoice(ResponseChoice{Text: "typed reply", Kind: ResponseCustom})

	assert.Len(t, s.Messages, 3)
	assert.Equal(t, SpeakerUser, s.Messages[1].Speaker)
	assert.Equal(t, SpeakerPartner, s.Messages[2].Speaker)
}

func TestPartnerReplyBands(t *testing.T) {
	assert.Contains(t, PartnerReply(ResponseDefensive, 10), "Thank you for hearing me out")
	assert.Contains(t, PartnerReply(ResponseValidating, 80), "don't think you're even trying")
	assert.Contains(t, PartnerReply(ResponseValidating, 40), "appreciate you listening")
	assert.Contains(t, PartnerReply(ResponseCurious, 40), "appreciate you listening")
	assert.Contains(t, PartnerReply(ResponseDefensive, 40), "see things from my perspective")
}

func TestGradeEmpathy(t *testing.T) {
	assert.Equal(t, "A", GradeEmpathy(41))
	assert.Equal(t, "B", GradeEmpathy(40))
	assert.Equal(t, "B", GradeEmpathy(21))
	assert.Equal(t, "C", GradeEmpathy(20))
	assert.Equal(t, "C", GradeEmpathy(1))
	assert.Equal(t, "D", GradeEmpathy(0))
	assert.Equal(t, "D", GradeEmpathy(-30))
}

func TestScoreFreeText(t *testing.T) {
	c := ScoreFreeText("I feel hurt when this happens")
	assert.Equal(t, 10, c.EmpathyDelta)
	assert.Zero(t, c.HeatDelta)

	c = ScoreFreeText("I understand where you're coming from")
	assert.Equal(t, 15, c.EmpathyDelta)
	assert.Equal(t, -10, c.HeatDelta)

	c = ScoreFreeText("You always do this!")
	assert.Equal(t, 15, c.HeatDelta)
	assert.Equal(t, -10, c.EmpathyDelta)

	c = ScoreFreeText("I feel like I hear you and understand")
	assert.Equal(t, 25, c.EmpathyDelta)
	assert.Equal(t, -10, c.HeatDelta)

	c = ScoreFreeText("okay")
	assert.Equal(t, ResponseCustom, c.Kind)
	assert.Zero(t, c.HeatDelta)
	assert.Zero(t, c.EmpathyDelta)
}

func TestFightScenarioByID(t *testing.T) {
	s := FightScenarioByID(2)
	assert.NotNil(t, s)
	assert.Equal(t, "Quality Time Conflict", s.Title)

	assert.Nil(t, FightScenarioByID(99))
}
