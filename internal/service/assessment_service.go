package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"parallelhearts/internal/cache"
	"parallelhearts/internal/model"
	"parallelhearts/internal/repository"
)

// AssessmentView is an assessment session plus its resolved current position
// in the realm bank.
type AssessmentView struct {
	Session      *model.AssessmentSession `json:"session"`
	Realm        *model.Realm             `json:"realm,omitempty"`
	Question     *model.RealmQuestion     `json:"question,omitempty"`
	StepIndex    int                      `json:"step_index"`
	TotalSteps   int                      `json:"total_steps"`
	AssessingFor model.AssessingFor       `json:"assessing_for"`
}

// AssessmentService drives the 12-realm questionnaire wizard. Sessions live
// in the state cache and are resumable; dual-phase modes run the wizard once
// per partner, parking the first pass before resetting.
type AssessmentService struct {
	oracle      *OracleService
	profileRepo repository.ProfileRepo
	states      cache.StateCache
	analyses    cache.AnalysisCache
}

// NewAssessmentService creates a new assessment service.
func NewAssessmentService(oracle *OracleService, profileRepo repository.ProfileRepo, states cache.StateCache, analyses cache.AnalysisCache) *AssessmentService {
	return &AssessmentService{
		oracle:      oracle,
		profileRepo: profileRepo,
		states:      states,
		analyses:    analyses,
	}
}

// Start opens a fresh assessment session in the given mode.
func (s *AssessmentService) Start(ctx context.Context, sessionID, modeStr string) (*AssessmentView, error) {
	mode, err := model.ParseAssessmentMode(modeStr)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrInvalidMode, modeStr)
	}

	now := time.Now()
	session := &model.AssessmentSession{
		ID:        "asmt_" + uuid.New().String(),
		SessionID: sessionID,
		Mode:      mode,
		Phase:     model.ForSelf,
		Wizard:    model.NewWizardState(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.states.SetAssessment(ctx, session); err != nil {
		return nil, err
	}
	return s.view(session), nil
}

// Get loads an assessment session owned by the caller.
func (s *AssessmentService) Get(ctx context.Context, sessionID, id string) (*AssessmentView, error) {
	session, err := s.load(ctx, sessionID, id)
	if err != nil {
		return nil, err
	}
	return s.view(session), nil
}

// Answer records the answer for the current step and advances the wizard.
// When the last step of a phase lands, the phase's answers are parked and
// either the next phase begins on a reset wizard or the session completes.
func (s *AssessmentService) Answer(ctx context.Context, sessionID, id, answer string) (*AssessmentView, error) {
	session, err := s.load(ctx, sessionID, id)
	if err != nil {
		return nil, err
	}
	if session.Completed {
		return nil, ErrWizardCompleted
	}

	stepIDs := model.RealmQuestionIDs(model.Realms)
	session.Wizard = session.Wizard.Advance(stepIDs, answer)

	if session.Wizard.Completed {
		switch session.Phase {
		case model.ForSelf:
			session.SelfAnswers = session.Wizard.Answers
			if len(session.Mode.Phases()) > 1 {
				session.Phase = model.ForPartner
				session.Wizard = model.NewWizardState()
			} else {
				session.Completed = true
			}
		case model.ForPartner:
			session.PartnerAnswers = session.Wizard.Answers
			session.Completed = true
		}
	}
	session.UpdatedAt = time.Now()

	if err := s.states.SetAssessment(ctx, session); err != nil {
		return nil, err
	}
	return s.view(session), nil
}

// Back retreats one step without touching recorded answers.
func (s *AssessmentService) Back(ctx context.Context, sessionID, id string) (*AssessmentView, error) {
	session, err := s.load(ctx, sessionID, id)
	if err != nil {
		return nil, err
	}
	if session.Completed {
		return nil, ErrWizardCompleted
	}

	session.Wizard = session.Wizard.Retreat()
	session.UpdatedAt = time.Now()

	if err := s.states.SetAssessment(ctx, session); err != nil {
		return nil, err
	}
	return s.view(session), nil
}

// Analyze sends a completed assessment to the oracle. Unlike the
// conversation path there is no silent fallback here: oracle failure
// surfaces to the caller as ErrOracleUnavailable.
func (s *AssessmentService) Analyze(ctx context.Context, sessionID, id string) (*model.Profile, error) {
	session, err := s.load(ctx, sessionID, id)
	if err != nil {
		return nil, err
	}
	if !session.Completed {
		return nil, ErrWizardIncomplete
	}

	analysis, err := s.oracle.AnalyzeAssessment(ctx, session.Mode, session.CombinedAnswers())
	if err != nil {
		log.Printf("[Assessment] oracle failed for %s: %v", id, err)
		return nil, ErrOracleUnavailable
	}

	profile := &model.Profile{
		SessionID:    sessionID,
		AssessmentID: session.ID,
		Analysis:     *analysis,
		ModelUsed:    s.oracle.ModelName(),
	}
	profileID, err := s.profileRepo.Create(ctx, profile)
	if err != nil {
		return nil, err
	}
	profile.ID = profileID

	if err := s.analyses.Set(ctx, sessionID, analysis); err != nil {
		log.Printf("[Assessment] cache set failed: %v", err)
	}
	return profile, nil
}

func (s *AssessmentService) load(ctx context.Context, sessionID, id string) (*model.AssessmentSession, error) {
	session, err := s.states.GetAssessment(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil || session.SessionID != sessionID {
		return nil, ErrNotFound
	}
	return session, nil
}

func (s *AssessmentService) view(session *model.AssessmentSession) *AssessmentView {
	stepIDs := model.RealmQuestionIDs(model.Realms)
	v := &AssessmentView{
		Session:      session,
		StepIndex:    session.Wizard.StepIndex,
		TotalSteps:   len(stepIDs),
		AssessingFor: session.Phase,
	}
	if !session.Completed {
		v.Realm, v.Question = model.StepAt(model.Realms, session.Wizard.StepIndex)
	}
	return v
}
