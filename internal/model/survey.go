package model

// SurveyRecord is one anonymized row of the imported wellbeing survey
// dataset used by the statistics endpoints.
type SurveyRecord struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	YearGroup string `json:"yearGroup" bson:"yearGroup"`
	Gender    string `json:"gender" bson:"gender"`
	Ethnicity string `json:"ethnicity" bson:"ethnicity"`

	// Emotional responses (1-5 scale)
	FeelSad      int `json:"feelSad" bson:"feelSad"`
	FeelLonely   int `json:"feelLonely" bson:"feelLonely"`
	FeelStressed int `json:"feelStressed" bson:"feelStressed"`
	FeelHappy    int `json:"feelHappy" bson:"feelHappy"`

	HoursSleep              float64 `json:"hoursSleep" bson:"hoursSleep"`
	MinutesPhysicalActivity int     `json:"minutesPhysicalActivity" bson:"minutesPhysicalActivity"`

	SelfHarmEver    bool `json:"selfHarmEver" bson:"selfHarmEver"`
	BulliedRecently bool `json:"bulliedRecently" bson:"bulliedRecently"`
}

// DistributionEntry is one label/percentage pair in a statistics breakdown
type DistributionEntry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
