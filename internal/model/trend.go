package model

import "time"

// Trend direction labels
const (
	TrendImproving        = "improving"
	TrendDeclining        = "declining"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient_data"
)

// TrendPoint is one assessment in a trend series
type TrendPoint struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
	Level RiskLevel `json:"level"`
}

// TrendReport aggregates a user's assessments within a time window
type TrendReport struct {
	AverageScore     float64      `json:"average_score"`
	Trend            string       `json:"trend,omitempty"`
	TotalPredictions int          `json:"total_predictions"`
	DataPoints       []TrendPoint `json:"data_points"`
	Message          string       `json:"message,omitempty"`
}

// Insight type labels
const (
	InsightWarning  = "warning"
	InsightPositive = "positive"
	InsightInfo     = "info"
)

// Insight is a qualitative observation derived from assessment history
type Insight struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// InsightCounts summarizes risk-level frequency in the sampled history
type InsightCounts struct {
	TotalAssessments int `json:"total_assessments"`
	HighRiskCount    int `json:"high_risk_count"`
	MediumRiskCount  int `json:"medium_risk_count"`
	LowRiskCount     int `json:"low_risk_count"`
}

// InsightSummary is the personalized-insights payload
type InsightSummary struct {
	Insights []Insight     `json:"insights"`
	Summary  InsightCounts `json:"summary"`
	Message  string        `json:"message,omitempty"`
}
