package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mindtrack/internal/model"
)

func newPredictionFixture() (*PredictionService, *fakeAssessmentRepo, *fakeAssessmentCache, *fakeTrendCache) {
	assessments := &fakeAssessmentRepo{}
	latest := newFakeAssessmentCache()
	trends := newFakeTrendCache()

	svc := NewPredictionService(assessments, latest, trends, zap.NewNop())
	return svc, assessments, latest, trends
}

func seedAssessments(t *testing.T, repo *fakeAssessmentRepo, userID string, scores []float64) {
	t.Helper()
	base := time.Now().UTC().Add(-time.Duration(len(scores)) * 24 * time.Hour)
	for i, score := range scores {
		level := model.RiskLow
		if score >= 60 {
			level = model.RiskHigh
		} else if score >= 30 {
			level = model.RiskMedium
		}
		err := repo.Create(context.Background(), &model.Assessment{
			UserID:          userID,
			RiskScore:       score,
			RiskLevel:       level,
			Factors:         []string{},
			Recommendations: []string{},
			CreatedAt:       base.Add(time.Duration(i) * 24 * time.Hour),
		})
		require.NoError(t, err)
	}
}

func TestLatestFallsBackToRepoAndWarmsCache(t *testing.T) {
	svc, repo, cache, _ := newPredictionFixture()
	seedAssessments(t, repo, "user-1", []float64{20, 45})

	result, err := svc.Latest(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, float64(45), result.RiskScore)

	// Second read served from cache.
	assert.Equal(t, result, cache.latest["user-1"])
	_, err = svc.Latest(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, cache.gets)
}

func TestLatestPrefersCachedValue(t *testing.T) {
	svc, repo, cache, _ := newPredictionFixture()
	seedAssessments(t, repo, "user-1", []float64{20})

	cached := &model.Assessment{UserID: "user-1", RiskScore: 99, RiskLevel: model.RiskHigh}
	require.NoError(t, cache.SetLatest(context.Background(), "user-1", cached))

	result, err := svc.Latest(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, float64(99), result.RiskScore)
}

func TestLatestNoHistory(t *testing.T) {
	svc, _, _, _ := newPredictionFixture()

	_, err := svc.Latest(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrNoAssessments)
}

func TestTrendsComputesAndCaches(t *testing.T) {
	svc, repo, _, trends := newPredictionFixture()
	seedAssessments(t, repo, "user-1", []float64{80, 60, 40})

	report, err := svc.Trends(context.Background(), "user-1", 30)
	require.NoError(t, err)
	assert.Equal(t, model.TrendImproving, report.Trend)
	assert.Equal(t, 60.0, report.AverageScore)
	assert.Equal(t, 3, report.TotalPredictions)

	assert.Equal(t, report, trends.reports[trendFakeKey("user-1", 30)])
}

func TestTrendsServedFromCache(t *testing.T) {
	svc, repo, _, trends := newPredictionFixture()
	seedAssessments(t, repo, "user-1", []float64{10, 90})

	cached := &model.TrendReport{Trend: model.TrendStable, AverageScore: 50}
	require.NoError(t, trends.Set(context.Background(), "user-1", 30, cached))

	report, err := svc.Trends(context.Background(), "user-1", 30)
	require.NoError(t, err)
	assert.Equal(t, model.TrendStable, report.Trend)
}

func TestTrendsNoData(t *testing.T) {
	svc, _, _, _ := newPredictionFixture()

	report, err := svc.Trends(context.Background(), "user-1", 7)
	require.NoError(t, err)
	assert.Equal(t, "No data available for the selected period", report.Message)
	assert.Zero(t, report.TotalPredictions)
}

func TestTrendsWindowExcludesOldAssessments(t *testing.T) {
	svc, repo, _, _ := newPredictionFixture()

	old := &model.Assessment{
		UserID:    "user-1",
		RiskScore: 90,
		RiskLevel: model.RiskHigh,
		CreatedAt: time.Now().UTC().Add(-40 * 24 * time.Hour),
	}
	require.NoError(t, repo.Create(context.Background(), old))
	seedAssessments(t, repo, "user-1", []float64{20, 25})

	report, err := svc.Trends(context.Background(), "user-1", 30)
	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalPredictions)
	assert.Equal(t, 22.5, report.AverageScore)
}

func TestInsightsSummarizesHistory(t *testing.T) {
	svc, repo, _, _ := newPredictionFixture()
	seedAssessments(t, repo, "user-1", []float64{70, 75, 80, 85})

	summary, err := svc.Insights(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Summary.TotalAssessments)
	assert.Equal(t, 4, summary.Summary.HighRiskCount)

	var hasWarning bool
	for _, insight := range summary.Insights {
		if insight.Type == model.InsightWarning {
			hasWarning = true
		}
	}
	assert.True(t, hasWarning, "majority high-risk history should produce a warning")
}

func TestInsightsNoHistory(t *testing.T) {
	svc, _, _, _ := newPredictionFixture()

	summary, err := svc.Insights(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Complete questionnaires to receive personalized insights", summary.Message)
	assert.Zero(t, summary.Summary.TotalAssessments)
}

func TestHistoryLimit(t *testing.T) {
	svc, repo, _, _ := newPredictionFixture()
	seedAssessments(t, repo, "user-1", []float64{10, 20, 30, 40, 50})

	history, err := svc.History(context.Background(), "user-1", 3)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, float64(50), history[0].RiskScore)
}
