package service

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"mindtrack/internal/assess"
	"mindtrack/internal/cache"
	"mindtrack/internal/model"
	"mindtrack/internal/repository"
)

// QuestionnaireService runs the risk engine over submitted questionnaires
// and persists both the raw response and the derived assessment.
type QuestionnaireService struct {
	responses   repository.ResponseRepo
	assessments repository.AssessmentRepo
	latest      cache.AssessmentCache
	trends      cache.TrendCache
	notifier    Notifier
	engine      assess.Config
	logger      *zap.Logger
}

func NewQuestionnaireService(
	responses repository.ResponseRepo,
	assessments repository.AssessmentRepo,
	latest cache.AssessmentCache,
	trends cache.TrendCache,
	notifier Notifier,
	engine assess.Config,
	logger *zap.Logger,
) *QuestionnaireService {
	return &QuestionnaireService{
		responses:   responses,
		assessments: assessments,
		latest:      latest,
		trends:      trends,
		notifier:    notifier,
		engine:      engine,
		logger:      logger,
	}
}

// Submit scores one questionnaire and returns the stored assessment.
// Any JSON object is accepted; missing or malformed fields fall back to
// neutral defaults inside the engine.
func (s *QuestionnaireService) Submit(ctx context.Context, userID string, raw map[string]any) (*model.Assessment, error) {
	features := assess.Normalize(raw)
	score := assess.Score(features, s.engine)
	level := assess.Classify(score, s.engine)
	factors, recommendations := assess.Generate(features, level, s.engine)

	now := time.Now().UTC()

	response := &model.QuestionnaireResponse{
		UserID:    userID,
		Data:      raw,
		RiskScore: score,
		RiskLevel: level,
		CreatedAt: now,
	}
	if err := s.responses.Create(ctx, response); err != nil {
		return nil, eris.Wrap(err, "questionnaire: store response")
	}

	assessment := &model.Assessment{
		UserID:          userID,
		RiskScore:       score,
		RiskLevel:       level,
		Factors:         factors,
		Recommendations: recommendations,
		CreatedAt:       now,
	}
	if err := s.assessments.Create(ctx, assessment); err != nil {
		return nil, eris.Wrap(err, "questionnaire: store assessment")
	}

	// Cache refresh is best-effort; a cold cache just costs one DB read.
	if err := s.latest.SetLatest(ctx, userID, assessment); err != nil {
		s.logger.Warn("failed to cache latest assessment", zap.Error(err))
	}
	if err := s.trends.Invalidate(ctx, userID); err != nil {
		s.logger.Warn("failed to invalidate trend cache", zap.Error(err))
	}

	s.notifier.AssessmentCompleted(userID, assessment)

	s.logger.Info("questionnaire scored",
		zap.String("userId", userID),
		zap.Float64("riskScore", score),
		zap.String("riskLevel", string(level)))
	return assessment, nil
}

// History returns the user's raw submissions, newest first.
func (s *QuestionnaireService) History(ctx context.Context, userID string, limit int) ([]*model.QuestionnaireResponse, error) {
	responses, err := s.responses.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, eris.Wrap(err, "questionnaire: list history")
	}
	if responses == nil {
		responses = []*model.QuestionnaireResponse{}
	}
	return responses, nil
}
