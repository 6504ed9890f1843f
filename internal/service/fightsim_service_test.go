package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parallelhearts/internal/model"
)

func intp(i int) *int { return &i }

func TestSimulationStart(t *testing.T) {
	svc := NewFightSimService(newFakeStateCache())

	view, err := svc.Start(context.Background(), "sess_1", 1)
	require.NoError(t, err)

	assert.Equal(t, model.FightSimStartHeat, view.State.HeatLevel)
	assert.Zero(t, view.State.EmpathyScore)
	require.Len(t, view.State.Messages, 1)
	assert.Equal(t, model.SpeakerPartner, view.State.Messages[0].Speaker)
	assert.Len(t, view.Responses, len(model.QuickResponses))
	assert.NotEmpty(t, view.CoachHints)
}

func TestSimulationStartUnknownScenario(t *testing.T) {
	svc := NewFightSimService(newFakeStateCache())

	_, err := svc.Start(context.Background(), "sess_1", 42)
	assert.ErrorIs(t, err, ErrUnknownScenario)
}

func TestSimulationQuickResponseTurn(t *testing.T) {
	svc := NewFightSimService(newFakeStateCache())
	view, _ := svc.Start(context.Background(), "sess_1", 1)

	// Defensive option: +20 heat, -10 empathy
	after, err := svc.Respond(context.Background(), "sess_1", view.State.ID, intp(1), "")
	require.NoError(t, err)

	assert.Equal(t, 50, after.State.HeatLevel)
	assert.Equal(t, -10, after.State.EmpathyScore)
	assert.Equal(t, 1, after.State.TurnCount)
}

func TestSimulationValidatingPathEndsCalm(t *testing.T) {
	svc := NewFightSimService(newFakeStateCache())
	view, _ := svc.Start(context.Background(), "sess_1", 2)
	id := view.State.ID

	// Two validating moves: 30 -> 15 -> 0, ending early below the calm floor
	after, err := svc.Respond(context.Background(), "sess_1", id, intp(0), "")
	require.NoError(t, err)
	assert.False(t, after.State.Complete)

	after, err = svc.Respond(context.Background(), "sess_1", id, intp(0), "")
	require.NoError(t, err)

	assert.True(t, after.State.Complete)
	assert.Equal(t, "A", after.State.Grade)
	assert.Empty(t, after.Responses, "no options once complete")

	last := after.State.Messages[len(after.State.Messages)-1]
	assert.Contains(t, last.Text, "Thank you for hearing me out")
}

func TestSimulationEndsAfterThreeTurns(t *testing.T) {
	svc := NewFightSimService(newFakeStateCache())
	view, _ := svc.Start(context.Background(), "sess_1", 1)
	id := view.State.ID

	var after *SimulationView
	var err error
	for i := 0; i < model.FightSimMaxTurns; i++ {
		after, err = svc.Respond(context.Background(), "sess_1", id, intp(1), "")
		require.NoError(t, err)
	}

	assert.True(t, after.State.Complete)
	assert.Equal(t, "D", after.State.Grade)

	_, err = svc.Respond(context.Background(), "sess_1", id, intp(0), "")
	assert.ErrorIs(t, err, ErrWizardCompleted)
}

func TestSimulationFreeTextTurn(t *testing.T) {
	svc := NewFightSimService(newFakeStateCache())
	view, _ := svc.Start(context.Background(), "sess_1", 3)

	after, err := svc.Respond(context.Background(), "sess_1", view.State.ID, nil, "I hear you and I understand the worry")
	require.NoError(t, err)

	assert.Equal(t, 20, after.State.HeatLevel)
	assert.Equal(t, 15, after.State.EmpathyScore)
	assert.Equal(t, "I hear you and I understand the worry", after.State.Messages[1].Text)
}

func TestSimulationRespondValidation(t *testing.T) {
	svc := NewFightSimService(newFakeStateCache())
	view, _ := svc.Start(context.Background(), "sess_1", 1)

	_, err := svc.Respond(context.Background(), "sess_1", view.State.ID, nil, "   ")
	assert.ErrorIs(t, err, ErrAnswersIncomplete)

	_, err = svc.Respond(context.Background(), "sess_1", view.State.ID, intp(9), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSimulationOwnershipEnforced(t *testing.T) {
	svc := NewFightSimService(newFakeStateCache())
	view, _ := svc.Start(context.Background(), "sess_1", 1)

	_, err := svc.Get(context.Background(), "sess_other", view.State.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSimulationResumeAcrossLoads(t *testing.T) {
	states := newFakeStateCache()
	svc := NewFightSimService(states)
	view, _ := svc.Start(context.Background(), "sess_1", 1)
	id := view.State.ID

	_, err := svc.Respond(context.Background(), "sess_1", id, intp(2), "")
	require.NoError(t, err)

	loaded, err := svc.Get(context.Background(), "sess_1", id)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.State.TurnCount)
	assert.Equal(t, 20, loaded.State.HeatLevel)
	assert.Equal(t, 20, loaded.State.EmpathyScore)
}
