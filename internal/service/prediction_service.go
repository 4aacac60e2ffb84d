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

// ErrNoAssessments is returned when a user has no assessment history yet.
var ErrNoAssessments = eris.New("no assessments found")

// insightSampleSize caps how much history feeds the insight summary.
const insightSampleSize = 30

// PredictionService serves assessment history, trends and insights.
type PredictionService struct {
	assessments repository.AssessmentRepo
	latest      cache.AssessmentCache
	trends      cache.TrendCache
	logger      *zap.Logger
}

func NewPredictionService(
	assessments repository.AssessmentRepo,
	latest cache.AssessmentCache,
	trends cache.TrendCache,
	logger *zap.Logger,
) *PredictionService {
	return &PredictionService{
		assessments: assessments,
		latest:      latest,
		trends:      trends,
		logger:      logger,
	}
}

// History returns the user's assessments, newest first.
func (s *PredictionService) History(ctx context.Context, userID string, limit int) ([]*model.Assessment, error) {
	assessments, err := s.assessments.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, eris.Wrap(err, "predictions: list history")
	}
	if assessments == nil {
		assessments = []*model.Assessment{}
	}
	return assessments, nil
}

// Latest returns the most recent assessment, cache first.
func (s *PredictionService) Latest(ctx context.Context, userID string) (*model.Assessment, error) {
	cached, err := s.latest.GetLatest(ctx, userID)
	if err != nil {
		s.logger.Warn("latest assessment cache read failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	assessment, err := s.assessments.Latest(ctx, userID)
	if err != nil {
		return nil, eris.Wrap(err, "predictions: load latest")
	}
	if assessment == nil {
		return nil, ErrNoAssessments
	}

	if err := s.latest.SetLatest(ctx, userID, assessment); err != nil {
		s.logger.Warn("failed to cache latest assessment", zap.Error(err))
	}
	return assessment, nil
}

// Trends analyzes the user's assessments over the last N days.
func (s *PredictionService) Trends(ctx context.Context, userID string, days int) (*model.TrendReport, error) {
	cached, err := s.trends.Get(ctx, userID, days)
	if err != nil {
		s.logger.Warn("trend cache read failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	now := time.Now().UTC()
	window := time.Duration(days) * 24 * time.Hour

	history, err := s.assessments.ListSince(ctx, userID, now.Add(-window))
	if err != nil {
		return nil, eris.Wrap(err, "predictions: load trend window")
	}

	report := assess.AnalyzeTrend(deref(history), window, now)

	if err := s.trends.Set(ctx, userID, days, &report); err != nil {
		s.logger.Warn("failed to cache trend report", zap.Error(err))
	}
	return &report, nil
}

// Insights summarizes the user's recent assessment history.
func (s *PredictionService) Insights(ctx context.Context, userID string) (*model.InsightSummary, error) {
	history, err := s.assessments.ListByUser(ctx, userID, insightSampleSize)
	if err != nil {
		return nil, eris.Wrap(err, "predictions: load insight sample")
	}

	summary := assess.SummarizeInsights(deref(history))
	return &summary, nil
}

func deref(assessments []*model.Assessment) []model.Assessment {
	out := make([]model.Assessment, len(assessments))
	for i, a := range assessments {
		out[i] = *a
	}
	return out
}
