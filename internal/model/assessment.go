package model

import "time"

// RiskLevel is a coarse bucketing of the risk score
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Assessment is the result of one questionnaire submission.
// Immutable after creation; factors and recommendations keep
// the order in which the engine detected them.
type Assessment struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	UserID          string    `json:"userId" bson:"userId"`
	RiskScore       float64   `json:"risk_score" bson:"riskScore"`
	RiskLevel       RiskLevel `json:"risk_level" bson:"riskLevel"`
	Factors         []string  `json:"factors" bson:"factors"`
	Recommendations []string  `json:"recommendations" bson:"recommendations"`
	CreatedAt       time.Time `json:"created_at" bson:"createdAt"`
}
