package model

import "time"

// ProgressEntry is a self-logged mood check-in. RiskScore snapshots the
// user's latest assessment at the time of logging, when one exists.
type ProgressEntry struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	UserID     string    `json:"userId" bson:"userId"`
	Date       time.Time `json:"date" bson:"date"`
	RiskScore  *float64  `json:"risk_score,omitempty" bson:"riskScore,omitempty"`
	MoodRating int       `json:"mood_rating" bson:"moodRating"`
	Notes      string    `json:"notes,omitempty" bson:"notes,omitempty"`
}
