package service

import (
	"context"
	"fmt"
	"time"

	"mindtrack/internal/model"
)

// In-memory stand-ins for the mongo repositories and redis caches.
// Assessments are appended in chronological order.

type fakeResponseRepo struct {
	responses []*model.QuestionnaireResponse
}

func (f *fakeResponseRepo) Create(_ context.Context, response *model.QuestionnaireResponse) error {
	response.ID = fmt.Sprintf("resp-%d", len(f.responses)+1)
	f.responses = append(f.responses, response)
	return nil
}

func (f *fakeResponseRepo) ListByUser(_ context.Context, userID string, limit int) ([]*model.QuestionnaireResponse, error) {
	var out []*model.QuestionnaireResponse
	for i := len(f.responses) - 1; i >= 0; i-- {
		if f.responses[i].UserID != userID {
			continue
		}
		out = append(out, f.responses[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeAssessmentRepo struct {
	assessments []*model.Assessment
}

func (f *fakeAssessmentRepo) Create(_ context.Context, assessment *model.Assessment) error {
	assessment.ID = fmt.Sprintf("assess-%d", len(f.assessments)+1)
	f.assessments = append(f.assessments, assessment)
	return nil
}

func (f *fakeAssessmentRepo) ListByUser(_ context.Context, userID string, limit int) ([]*model.Assessment, error) {
	var out []*model.Assessment
	for i := len(f.assessments) - 1; i >= 0; i-- {
		if f.assessments[i].UserID != userID {
			continue
		}
		out = append(out, f.assessments[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeAssessmentRepo) Latest(_ context.Context, userID string) (*model.Assessment, error) {
	for i := len(f.assessments) - 1; i >= 0; i-- {
		if f.assessments[i].UserID == userID {
			return f.assessments[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAssessmentRepo) ListSince(_ context.Context, userID string, since time.Time) ([]*model.Assessment, error) {
	var out []*model.Assessment
	for _, a := range f.assessments {
		if a.UserID == userID && !a.CreatedAt.Before(since) {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeAssessmentCache struct {
	latest map[string]*model.Assessment
	gets   int
}

func newFakeAssessmentCache() *fakeAssessmentCache {
	return &fakeAssessmentCache{latest: make(map[string]*model.Assessment)}
}

func (f *fakeAssessmentCache) SetLatest(_ context.Context, userID string, assessment *model.Assessment) error {
	f.latest[userID] = assessment
	return nil
}

func (f *fakeAssessmentCache) GetLatest(_ context.Context, userID string) (*model.Assessment, error) {
	f.gets++
	return f.latest[userID], nil
}

func (f *fakeAssessmentCache) DeleteLatest(_ context.Context, userID string) error {
	delete(f.latest, userID)
	return nil
}

type fakeTrendCache struct {
	reports       map[string]*model.TrendReport
	invalidations int
}

func newFakeTrendCache() *fakeTrendCache {
	return &fakeTrendCache{reports: make(map[string]*model.TrendReport)}
}

func trendFakeKey(userID string, days int) string {
	return fmt.Sprintf("%s:%d", userID, days)
}

func (f *fakeTrendCache) Set(_ context.Context, userID string, days int, report *model.TrendReport) error {
	f.reports[trendFakeKey(userID, days)] = report
	return nil
}

func (f *fakeTrendCache) Get(_ context.Context, userID string, days int) (*model.TrendReport, error) {
	return f.reports[trendFakeKey(userID, days)], nil
}

func (f *fakeTrendCache) Invalidate(_ context.Context, userID string) error {
	f.invalidations++
	for key := range f.reports {
		delete(f.reports, key)
	}
	return nil
}

type fakeNotifier struct {
	events []*model.Assessment
}

func (f *fakeNotifier) AssessmentCompleted(_ string, assessment *model.Assessment) {
	f.events = append(f.events, assessment)
}
