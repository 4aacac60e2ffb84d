package service

import (
	"context"
	"math"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"mindtrack/internal/model"
	"mindtrack/internal/repository"
)

// ErrNoSurveyData is returned when the survey collection is empty.
var ErrNoSurveyData = eris.New("no survey data available")

// StatsOverview summarizes the survey dataset.
type StatsOverview struct {
	TotalRecords      int64   `json:"total_records"`
	SelfHarmPercent   float64 `json:"self_harm_percent"`
	BulliedPercent    float64 `json:"bullied_percent"`
	Categories        int     `json:"categories"`
	DatasetDescriptor string  `json:"dataset"`
}

// Distribution is one named breakdown of the survey dataset, with per-label
// percentages of the total.
type Distribution struct {
	Field   string                    `json:"field"`
	Total   int64                     `json:"total"`
	Entries []model.DistributionEntry `json:"entries"`
}

// StatsService computes aggregate statistics over the anonymized survey
// dataset. All endpoints are public; nothing here touches user data.
type StatsService struct {
	survey repository.SurveyRepo
	logger *zap.Logger
}

func NewStatsService(survey repository.SurveyRepo, logger *zap.Logger) *StatsService {
	return &StatsService{survey: survey, logger: logger}
}

// statCategories names the breakdowns the API can serve.
var statCategories = []string{
	"demographics",
	"mental-health",
	"risk-factors",
}

// Categories lists the available statistic groups.
func (s *StatsService) Categories() []string {
	return statCategories
}

// Overview returns dataset-level headline numbers.
func (s *StatsService) Overview(ctx context.Context) (*StatsOverview, error) {
	total, err := s.survey.TotalCount(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "stats: total count")
	}
	if total == 0 {
		return nil, ErrNoSurveyData
	}

	selfHarm, err := s.survey.BoolCount(ctx, "selfHarmEver")
	if err != nil {
		return nil, eris.Wrap(err, "stats: self-harm count")
	}
	bullied, err := s.survey.BoolCount(ctx, "bulliedRecently")
	if err != nil {
		return nil, eris.Wrap(err, "stats: bullied count")
	}

	return &StatsOverview{
		TotalRecords:      total,
		SelfHarmPercent:   percent(selfHarm, total),
		BulliedPercent:    percent(bullied, total),
		Categories:        len(statCategories),
		DatasetDescriptor: "anonymized school wellbeing survey",
	}, nil
}

// Demographics breaks the dataset down by year group, gender and ethnicity.
func (s *StatsService) Demographics(ctx context.Context) ([]Distribution, error) {
	return s.distributions(ctx, []string{"yearGroup", "gender", "ethnicity"})
}

// MentalHealth breaks down the emotional-state responses.
func (s *StatsService) MentalHealth(ctx context.Context) ([]Distribution, error) {
	return s.distributions(ctx, []string{"feelSad", "feelLonely", "feelStressed", "feelHappy"})
}

// RiskFactors buckets sleep and physical activity and counts the boolean
// risk flags, mirroring the thresholds the risk engine scores against.
func (s *StatsService) RiskFactors(ctx context.Context) ([]Distribution, error) {
	total, err := s.survey.TotalCount(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "stats: total count")
	}
	if total == 0 {
		return nil, ErrNoSurveyData
	}

	sleep, err := s.survey.RangeCounts(ctx, "hoursSleep",
		[]float64{0, 6, 7, 8, 24},
		[]string{"under 6h", "6-7h", "7-8h", "8h or more"})
	if err != nil {
		return nil, eris.Wrap(err, "stats: sleep buckets")
	}

	activity, err := s.survey.RangeCounts(ctx, "minutesPhysicalActivity",
		[]float64{0, 30, 60, 10000},
		[]string{"under 30min", "30-60min", "60min or more"})
	if err != nil {
		return nil, eris.Wrap(err, "stats: activity buckets")
	}

	selfHarm, err := s.survey.BoolCount(ctx, "selfHarmEver")
	if err != nil {
		return nil, eris.Wrap(err, "stats: self-harm count")
	}
	bullied, err := s.survey.BoolCount(ctx, "bulliedRecently")
	if err != nil {
		return nil, eris.Wrap(err, "stats: bullied count")
	}

	return []Distribution{
		{Field: "hoursSleep", Total: total, Entries: toPercents(sleep, total)},
		{Field: "minutesPhysicalActivity", Total: total, Entries: toPercents(activity, total)},
		{Field: "flags", Total: total, Entries: []model.DistributionEntry{
			{Label: "self_harm_ever", Value: percent(selfHarm, total)},
			{Label: "bullied_recently", Value: percent(bullied, total)},
		}},
	}, nil
}

func (s *StatsService) distributions(ctx context.Context, fields []string) ([]Distribution, error) {
	total, err := s.survey.TotalCount(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "stats: total count")
	}
	if total == 0 {
		return nil, ErrNoSurveyData
	}

	out := make([]Distribution, 0, len(fields))
	for _, field := range fields {
		entries, err := s.survey.ValueCounts(ctx, field)
		if err != nil {
			return nil, eris.Wrap(err, "stats: value counts")
		}
		out = append(out, Distribution{
			Field:   field,
			Total:   total,
			Entries: toPercents(entries, total),
		})
	}
	return out, nil
}

func toPercents(entries []model.DistributionEntry, total int64) []model.DistributionEntry {
	out := make([]model.DistributionEntry, len(entries))
	for i, e := range entries {
		out[i] = model.DistributionEntry{
			Label: e.Label,
			Value: percent(int64(e.Value), total),
		}
	}
	return out
}

func percent(count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*100*100) / 100
}
