package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var wizardSteps = []string{"a", "b", "c"}

func TestWizardAdvanceRecordsInOrder(t *testing.T) {
	w := NewWizardState()

	w = w.Advance(wizardSteps, "first")
	assert.Equal(t, 1, w.StepIndex)
	assert.Equal(t, "first", w.Answers["a"])
	assert.False(t, w.Completed)

	w = w.Advance(wizardSteps, "second")
	assert.Equal(t, 2, w.StepIndex)
	assert.False(t, w.Completed)
}

func TestWizardCompletesOnLastStep(t *testing.T) {
	w := NewWizardState()
	w = w.Advance(wizardSteps, "1")
	w = w.Advance(wizardSteps, "2")
	w = w.Advance(wizardSteps, "3")

	assert.True(t, w.Completed)
	// Index never runs past the final step
	assert.Equal(t, 2, w.StepIndex)
	assert.Len(t, w.Answers, 3)
}

func TestWizardAdvanceAfterCompleteIsNoop(t *testing.T) {
	w := NewWizardState()
	for range wizardSteps {
		w = w.Advance(wizardSteps, "x")
	}

	after := w.Advance(wizardSteps, "extra")
	assert.Equal(t, w, after)
	assert.Len(t, after.Answers, 3)
}

func TestWizardRetreat(t *testing.T) {
	w := NewWizardState()
	w = w.Advance(wizardSteps, "1")
	w = w.Advance(wizardSteps, "2")

	w = w.Retreat()
	assert.Equal(t, 1, w.StepIndex)
	// Answers survive going back
	assert.Equal(t, "2", w.Answers["b"])
}

func TestWizardRetreatAtStartIsNoop(t *testing.T) {
	w := NewWizardState()
	w = w.Retreat()
	assert.Zero(t, w.StepIndex)
}

func TestWizardReanswerAfterRetreat(t *testing.T) {
	w := NewWizardState()
	w = w.Advance(wizardSteps, "old")
	w = w.Retreat()
	w = w.Advance(wizardSteps, "new")

	assert.Equal(t, "new", w.Answers["a"])
	assert.Equal(t, 1, w.StepIndex)
}

func TestWizardAdvanceDoesNotShareAnswerMap(t *testing.T) {
	w := NewWizardState()
	next := w.Advance(wizardSteps, "1")

	assert.Empty(t, w.Answers)
	assert.Len(t, next.Answers, 1)
}
