package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"parallelhearts/internal/cache"
	"parallelhearts/internal/model"
)

// SimulationView is a simulation state plus the response options for the
// next turn. Options are omitted once the run completes.
type SimulationView struct {
	State      *model.FightSimState   `json:"state"`
	Responses  []model.ResponseChoice `json:"responses,omitempty"`
	CoachHints []string               `json:"coach_hints,omitempty"`
}

// FightSimService runs the conflict practice loop: scripted scenarios, a
// heat/empathy accumulator, and a grade at the end.
type FightSimService struct {
	states cache.StateCache
}

// NewFightSimService creates a new fight simulator service.
func NewFightSimService(states cache.StateCache) *FightSimService {
	return &FightSimService{states: states}
}

// Scenarios lists the built-in conflict scenarios.
func (s *FightSimService) Scenarios() []model.FightScenario {
	return model.FightScenarios
}

// Start opens a simulation for one scenario, seeded with the partner's
// opening message.
func (s *FightSimService) Start(ctx context.Context, sessionID string, scenarioID int) (*SimulationView, error) {
	scenario := model.FightScenarioByID(scenarioID)
	if scenario == nil {
		return nil, ErrUnknownScenario
	}

	state := &model.FightSimState{
		ID:         "sim_" + uuid.New().String(),
		SessionID:  sessionID,
		ScenarioID: scenarioID,
		HeatLevel:  model.FightSimStartHeat,
		Messages: []model.SimMessage{
			{Speaker: model.SpeakerPartner, Text: scenario.PartnerMessage},
		},
		CreatedAt: time.Now(),
	}

	if err := s.states.SetSimulation(ctx, state); err != nil {
		return nil, err
	}
	return s.view(state), nil
}

// Get loads a simulation owned by the caller.
func (s *FightSimService) Get(ctx context.Context, sessionID, id string) (*SimulationView, error) {
	state, err := s.load(ctx, sessionID, id)
	if err != nil {
		return nil, err
	}
	return s.view(state), nil
}

// Respond applies one turn. A choiceIndex picks a canned response; free text
// goes through the keyword heuristic instead. Responding to a completed
// simulation is rejected.
func (s *FightSimService) Respond(ctx context.Context, sessionID, id string, choiceIndex *int, freeText string) (*SimulationView, error) {
	state, err := s.load(ctx, sessionID, id)
	if err != nil {
		return nil, err
	}
	if state.Complete {
		return nil, ErrWizardCompleted
	}

	var choice model.ResponseChoice
	switch {
	case choiceIndex != nil:
		if *choiceIndex < 0 || *choiceIndex >= len(model.QuickResponses) {
			return nil, ErrNotFound
		}
		choice = model.QuickResponses[*choiceIndex]
	case strings.TrimSpace(freeText) != "":
		choice = model.ScoreFreeText(freeText)
	default:
		return nil, ErrAnswersIncomplete
	}

	state.ApplyChoice(choice)

	if err := s.states.SetSimulation(ctx, state); err != nil {
		return nil, err
	}
	return s.view(state), nil
}

func (s *FightSimService) load(ctx context.Context, sessionID, id string) (*model.FightSimState, error) {
	state, err := s.states.GetSimulation(ctx, id)
	if err != nil {
		return nil, err
	}
	if state == nil || state.SessionID != sessionID {
		return nil, ErrNotFound
	}
	return state, nil
}

func (s *FightSimService) view(state *model.FightSimState) *SimulationView {
	v := &SimulationView{State: state}
	if !state.Complete {
		v.Responses = model.QuickResponses
		v.CoachHints = model.CoachHints
	}
	return v
}
