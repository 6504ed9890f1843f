package model

// WizardState is the shared linear wizard machine. Three flows run on it:
// the conversation intake questions, the 12-realm assessment, and each phase
// of the dual assessment. Steps are answered strictly in order; there is no
// skip transition.
type WizardState struct {
	StepIndex int               `json:"stepIndex"`
	Answers   map[string]string `json:"answers"`
	Completed bool              `json:"completed"`
}

// NewWizardState returns a fresh machine positioned at the first step.
func NewWizardState() WizardState {
	return WizardState{Answers: map[string]string{}}
}

// Advance records the answer for the current step and moves forward.
// Completed flips to true only when the final step receives its answer; the
// index does not run past the last step. Advancing a completed wizard is a
// no-op; restarts get a fresh state instead.
func (w WizardState) Advance(stepIDs []string, answer string) WizardState {
	if w.Completed || w.StepIndex >= len(stepIDs) {
		w.Completed = true
		return w
	}

	answers := make(map[string]string, len(w.Answers)+1)
	for k, v := range w.Answers {
		answers[k] = v
	}
	answers[stepIDs[w.StepIndex]] = answer
	w.Answers = answers

	if w.StepIndex+1 < len(stepIDs) {
		w.StepIndex++
	} else {
		w.Completed = true
	}
	return w
}

// Retreat steps back one question without touching recorded answers.
// At the first step it is a no-op.
func (w WizardState) Retreat() WizardState {
	if w.StepIndex > 0 {
		w.StepIndex--
	}
	return w
}
