package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mindtrack/internal/assess"
	"mindtrack/internal/model"
)

func newQuestionnaireFixture() (*QuestionnaireService, *fakeResponseRepo, *fakeAssessmentRepo, *fakeAssessmentCache, *fakeTrendCache, *fakeNotifier) {
	responses := &fakeResponseRepo{}
	assessments := &fakeAssessmentRepo{}
	latest := newFakeAssessmentCache()
	trends := newFakeTrendCache()
	notifier := &fakeNotifier{}

	svc := NewQuestionnaireService(
		responses, assessments, latest, trends, notifier,
		assess.DefaultConfig(), zap.NewNop())
	return svc, responses, assessments, latest, trends, notifier
}

func TestSubmitScoresAndPersists(t *testing.T) {
	svc, responses, assessments, latest, trends, notifier := newQuestionnaireFixture()

	payload := map[string]any{
		"feel_sad":                  float64(5),
		"feel_lonely":               float64(5),
		"feel_stressed":             float64(5),
		"feel_angry":                float64(5),
		"feel_confident":            float64(1),
		"feel_happy":                float64(1),
		"hours_sleep":               float64(5),
		"minutes_physical_activity": float64(10),
		"friends_count":             float64(1),
		"family_support":            float64(1),
		"school_belonging":          float64(1),
		"self_harm_ever":            true,
		"bullied_recently":          true,
		"stress_level":              float64(5),
		"anxiety_level":             float64(5),
	}

	result, err := svc.Submit(context.Background(), "user-1", payload)
	require.NoError(t, err)

	assert.Equal(t, float64(100), result.RiskScore)
	assert.Equal(t, model.RiskHigh, result.RiskLevel)
	assert.Contains(t, result.Factors, "History of self-harm")
	assert.Contains(t, result.Factors, "Recent bullying experience")

	require.Len(t, responses.responses, 1)
	assert.Equal(t, payload, responses.responses[0].Data)
	assert.Equal(t, result.RiskScore, responses.responses[0].RiskScore)

	require.Len(t, assessments.assessments, 1)
	assert.Equal(t, result, assessments.assessments[0])
	assert.Equal(t, responses.responses[0].CreatedAt, result.CreatedAt)

	assert.Equal(t, result, latest.latest["user-1"])
	assert.Equal(t, 1, trends.invalidations)
	require.Len(t, notifier.events, 1)
	assert.Equal(t, result, notifier.events[0])
}

func TestSubmitEmptyPayloadScoresWithDefaults(t *testing.T) {
	svc, _, _, _, _, _ := newQuestionnaireFixture()

	result, err := svc.Submit(context.Background(), "user-1", map[string]any{})
	require.NoError(t, err)

	// Neutral defaults: emotional balance 4, no activity 10, fair belonging 5.
	assert.Equal(t, float64(19), result.RiskScore)
	assert.Equal(t, model.RiskLow, result.RiskLevel)
	assert.NotNil(t, result.Factors)
	assert.NotNil(t, result.Recommendations)
}

func TestSubmitNilPayloadScoresWithDefaults(t *testing.T) {
	svc, _, _, _, _, _ := newQuestionnaireFixture()

	result, err := svc.Submit(context.Background(), "user-1", nil)
	require.NoError(t, err)
	assert.Equal(t, float64(19), result.RiskScore)
	assert.Equal(t, model.RiskLow, result.RiskLevel)
}

func TestHistoryReturnsNewestFirst(t *testing.T) {
	svc, _, _, _, _, _ := newQuestionnaireFixture()

	_, err := svc.Submit(context.Background(), "user-1", map[string]any{"feel_sad": float64(1)})
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "user-1", map[string]any{"feel_sad": float64(5)})
	require.NoError(t, err)

	history, err := svc.History(context.Background(), "user-1", 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, float64(5), history[0].Data["feel_sad"])
	assert.Equal(t, float64(1), history[1].Data["feel_sad"])
}

func TestHistoryEmptyIsNotNil(t *testing.T) {
	svc, _, _, _, _, _ := newQuestionnaireFixture()

	history, err := svc.History(context.Background(), "user-1", 0)
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestHistoryIsPerUser(t *testing.T) {
	svc, _, _, _, _, _ := newQuestionnaireFixture()

	_, err := svc.Submit(context.Background(), "user-1", map[string]any{})
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "user-2", map[string]any{})
	require.NoError(t, err)

	history, err := svc.History(context.Background(), "user-1", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "user-1", history[0].UserID)
}
