package service

import (
	"context"
	"log"
	"time"

	"parallelhearts/internal/cache"
	"parallelhearts/internal/model"
	"parallelhearts/internal/repository"
)

// QualityResult is what a quality check returns: the tier, the measurements
// behind it, and the supplemental questions when the tier requires them.
type QualityResult struct {
	Tier      model.QualityTier            `json:"tier"`
	Metrics   model.TextMetrics            `json:"metrics"`
	Questions []model.SupplementalQuestion `json:"questions,omitempty"`
}

// IntakeService runs the conversation pipeline: quality classification, the
// supplemental questionnaire gate, oracle analysis with silent fallback, and
// persistence of the result.
type IntakeService struct {
	oracle      *OracleService
	convRepo    repository.ConversationRepo
	profileRepo repository.ProfileRepo
	cache       cache.AnalysisCache
	broadcaster Broadcaster
}

// NewIntakeService creates a new intake service.
func NewIntakeService(oracle *OracleService, convRepo repository.ConversationRepo, profileRepo repository.ProfileRepo, analysisCache cache.AnalysisCache, broadcaster Broadcaster) *IntakeService {
	return &IntakeService{
		oracle:      oracle,
		convRepo:    convRepo,
		profileRepo: profileRepo,
		cache:       analysisCache,
		broadcaster: broadcaster,
	}
}

// CheckQuality measures and classifies a submitted conversation.
func (s *IntakeService) CheckQuality(text string) (*QualityResult, error) {
	metrics := model.ComputeMetrics(text)
	if metrics.CharCount < model.MinConversationChars {
		return nil, ErrConversationTooShort
	}

	tier := model.Classify(metrics.CharCount)
	result := &QualityResult{Tier: tier, Metrics: metrics}
	if tier.NeedsQuestions {
		result.Questions = model.SupplementalQuestions
	}
	return result, nil
}

// Analyze runs the full pipeline for one submission. Low-quality tiers must
// carry complete supplemental answers keyed by question id; the answers are
// refiled under their context labels before reaching the oracle. Oracle
// failure on this path is absorbed: the built-in analysis is substituted and
// the pipeline continues as if nothing happened.
func (s *IntakeService) Analyze(ctx context.Context, sessionID, text string, relType model.RelationshipType, answers map[string]string) (*model.Profile, error) {
	quality, err := s.CheckQuality(text)
	if err != nil {
		return nil, err
	}

	additionalContext := map[string]string{}
	if quality.Tier.NeedsQuestions {
		if !model.AnswersComplete(answers) {
			return nil, ErrAnswersIncomplete
		}
		for _, q := range model.SupplementalQuestions {
			additionalContext[q.ContextKey] = answers[q.ID]
		}
	}

	if relType == "" {
		relType = model.RelationshipRomantic
	}

	conv := &model.Conversation{
		SessionID:         sessionID,
		Text:              text,
		QualityBadge:      quality.Tier.Badge,
		Metrics:           quality.Metrics,
		RelationshipType:  relType,
		AdditionalContext: additionalContext,
	}
	convID, err := s.convRepo.Create(ctx, conv)
	if err != nil {
		return nil, err
	}

	stopProgress := s.startProgress(sessionID)
	defer stopProgress()

	req := &model.AnalysisRequest{
		Conversation:      text,
		RelationshipType:  relType,
		AdditionalContext: additionalContext,
	}

	profile := &model.Profile{
		SessionID:      sessionID,
		ConversationID: convID,
	}

	analysis, err := s.oracle.AnalyzeConversation(ctx, req)
	if err != nil {
		log.Printf("[Intake] oracle unavailable, using fallback: %v", err)
		analysis = FallbackAnalysis()
		profile.Fallback = true
	} else {
		profile.ModelUsed = s.oracle.ModelName()
	}
	profile.Analysis = *analysis

	profileID, err := s.profileRepo.Create(ctx, profile)
	if err != nil {
		return nil, err
	}
	profile.ID = profileID

	if err := s.cache.Set(ctx, sessionID, analysis); err != nil {
		log.Printf("[Intake] cache set failed: %v", err)
	}

	stopProgress()
	s.broadcaster.BroadcastToSession(sessionID, "analysis_complete", map[string]interface{}{
		"profileId": profileID,
		"fallback":  profile.Fallback,
	})

	return profile, nil
}

// GetLatest returns the most recent analysis for a session, consulting the
// cache first and refilling it from storage on a miss.
func (s *IntakeService) GetLatest(ctx context.Context, sessionID string) (*model.Analysis, error) {
	analysis, err := s.cache.Get(ctx, sessionID)
	if err != nil {
		log.Printf("[Intake] cache get failed: %v", err)
	}
	if analysis != nil {
		return analysis, nil
	}

	profile, err := s.profileRepo.GetLatestBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}

	if err := s.cache.Set(ctx, sessionID, &profile.Analysis); err != nil {
		log.Printf("[Intake] cache refill failed: %v", err)
	}
	return &profile.Analysis, nil
}

// ClearLatest drops the cached analysis for a session. Stored profiles are
// untouched.
func (s *IntakeService) ClearLatest(ctx context.Context, sessionID string) error {
	return s.cache.Clear(ctx, sessionID)
}

// startProgress emits simulated progress ticks while the oracle works: five
// points every half second, holding at 90 until the real result lands. The
// returned stop function is idempotent.
func (s *IntakeService) startProgress(sessionID string) func() {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(500 * time.Millisecond)
		defer ticker.Stop()

		progress := 0
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if progress < 90 {
					progress += 5
				}
				s.broadcaster.BroadcastToSession(sessionID, "analysis_progress", map[string]interface{}{
					"progress": progress,
				})
			}
		}
	}()

	var stopped bool
	return func() {
		if !stopped {
			stopped = true
			close(done)
		}
	}
}
