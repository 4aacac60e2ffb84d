package assess

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"mindtrack/internal/model"
)

// insightSampleSize caps how much history the insight summary inspects.
const insightSampleSize = 30

// noTrendDataMessage is the sentinel report message for an empty window.
const noTrendDataMessage = "No data available for the selected period"

// AnalyzeTrend filters history to assessments within window of now
// (inclusive) and computes the aggregate trend report. History must be
// ordered chronologically ascending; the function only reads it. An empty
// window yields the sentinel no-data report.
func AnalyzeTrend(history []model.Assessment, window time.Duration, now time.Time) model.TrendReport {
	start := now.Add(-window)

	var points []model.TrendPoint
	var sum float64
	for _, a := range history {
		if a.CreatedAt.Before(start) {
			continue
		}
		points = append(points, model.TrendPoint{
			Date:  a.CreatedAt,
			Score: a.RiskScore,
			Level: a.RiskLevel,
		})
		sum += a.RiskScore
	}

	if len(points) == 0 {
		return model.TrendReport{
			Message:    noTrendDataMessage,
			DataPoints: []model.TrendPoint{},
		}
	}

	trend := model.TrendInsufficientData
	if len(points) >= 2 {
		first, last := points[0].Score, points[len(points)-1].Score
		switch {
		case last < first:
			trend = model.TrendImproving
		case last > first:
			trend = model.TrendDeclining
		default:
			trend = model.TrendStable
		}
	}

	return model.TrendReport{
		AverageScore:     round2(sum / float64(len(points))),
		Trend:            trend,
		TotalPredictions: len(points),
		DataPoints:       points,
	}
}

// SummarizeInsights derives qualitative insights from a user's most recent
// assessments. History must be ordered most-recent-first; at most the 30
// newest entries are considered. Each insight check is independent, so
// multiple insights may co-occur, always in warning/positive/info order.
func SummarizeInsights(history []model.Assessment) model.InsightSummary {
	if len(history) > insightSampleSize {
		history = history[:insightSampleSize]
	}

	summary := model.InsightSummary{
		Insights: []model.Insight{},
		Summary:  model.InsightCounts{TotalAssessments: len(history)},
	}
	if len(history) == 0 {
		summary.Message = "Complete questionnaires to receive personalized insights"
		return summary
	}

	for _, a := range history {
		switch a.RiskLevel {
		case model.RiskHigh:
			summary.Summary.HighRiskCount++
		case model.RiskMedium:
			summary.Summary.MediumRiskCount++
		case model.RiskLow:
			summary.Summary.LowRiskCount++
		}
	}

	if float64(summary.Summary.HighRiskCount) > float64(len(history))*0.5 {
		summary.Insights = append(summary.Insights, model.Insight{
			Type:    model.InsightWarning,
			Title:   "Consistently High Risk",
			Message: "You've been experiencing high risk levels frequently. Consider seeking professional support.",
		})
	}

	if len(history) >= 3 {
		recent := meanScore(history[:3])
		oldest := meanScore(history[len(history)-3:])
		if recent < oldest-10 {
			summary.Insights = append(summary.Insights, model.Insight{
				Type:    model.InsightPositive,
				Title:   "Great Progress!",
				Message: "Your risk scores have been improving. Keep up the good work!",
			})
		}
	}

	if common := commonFactors(history, 3); len(common) > 0 {
		summary.Insights = append(summary.Insights, model.Insight{
			Type:    model.InsightInfo,
			Title:   "Common Challenges",
			Message: fmt.Sprintf("Most common factors: %s", strings.Join(common, ", ")),
		})
	}

	return summary
}

func meanScore(assessments []model.Assessment) float64 {
	var sum float64
	for _, a := range assessments {
		sum += a.RiskScore
	}
	return sum / float64(len(assessments))
}

// commonFactors returns the top-n most frequent factor strings across the
// sampled assessments. Ties break toward the factor encountered first.
func commonFactors(history []model.Assessment, n int) []string {
	counts := map[string]int{}
	firstSeen := map[string]int{}
	order := 0
	for _, a := range history {
		for _, f := range a.Factors {
			if _, ok := counts[f]; !ok {
				firstSeen[f] = order
				order++
			}
			counts[f]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	factors := make([]string, 0, len(counts))
	for f := range counts {
		factors = append(factors, f)
	}
	sort.Slice(factors, func(i, j int) bool {
		if counts[factors[i]] != counts[factors[j]] {
			return counts[factors[i]] > counts[factors[j]]
		}
		return firstSeen[factors[i]] < firstSeen[factors[j]]
	})

	if len(factors) > n {
		factors = factors[:n]
	}
	return factors
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
