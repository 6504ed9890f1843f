package service

import "errors"

var (
	// ErrConversationTooShort rejects submissions under the 50 character floor.
	ErrConversationTooShort = errors.New("conversation must be at least 50 characters")
	// ErrAnswersIncomplete rejects supplemental answers that are missing or
	// too short.
	ErrAnswersIncomplete = errors.New("each answer must be longer than 10 characters")
	// ErrInvalidMode rejects assessment starts with an unknown mode.
	ErrInvalidMode = errors.New("unknown assessment mode")
	// ErrNotFound signals a missing session, assessment or simulation.
	ErrNotFound = errors.New("not found")
	// ErrWizardCompleted rejects answers submitted after a wizard finished.
	ErrWizardCompleted = errors.New("wizard already completed")
	// ErrWizardIncomplete rejects analysis of an unfinished assessment.
	ErrWizardIncomplete = errors.New("assessment not yet completed")
	// ErrOracleUnavailable is returned on assessment analysis when the oracle
	// cannot produce a result. Unlike the conversation path there is no
	// fallback here; the caller sees the failure.
	ErrOracleUnavailable = errors.New("analysis service unavailable")
	// ErrUnknownScenario rejects simulator starts with an unknown scenario id.
	ErrUnknownScenario = errors.New("unknown scenario")
)
