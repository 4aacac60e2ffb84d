package model

import "time"

// QuestionnaireResponse stores one raw submission together with the
// score it produced. The raw payload is kept as submitted so the
// engine can be re-run against historical data.
type QuestionnaireResponse struct {
	ID        string         `json:"id" bson:"_id,omitempty"`
	UserID    string         `json:"userId" bson:"userId"`
	Data      map[string]any `json:"questionnaire_data" bson:"questionnaireData"`
	RiskScore float64        `json:"risk_score" bson:"riskScore"`
	RiskLevel RiskLevel      `json:"risk_level" bson:"riskLevel"`
	CreatedAt time.Time      `json:"created_at" bson:"createdAt"`
}
