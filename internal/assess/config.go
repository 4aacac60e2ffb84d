package assess

// Config holds the scoring weights, bin edges, classification thresholds,
// and locale-specific resources used by the assessment engine. Callers pass
// it into Score, Classify, and Generate so regional deployments can override
// values without touching the rules themselves.
type Config struct {
	// EmotionWeight multiplies the net negative-emotion balance
	// (sad+lonely+stressed+angry minus confident+happy).
	EmotionWeight float64

	// Sleep bins, strict upper bounds in hours. An entry applies when
	// hours_sleep is below its bound and no earlier bin matched.
	SleepSevereHours  float64
	SleepSeverePoints float64
	SleepLowHours     float64
	SleepLowPoints    float64
	SleepFairHours    float64
	SleepFairPoints   float64

	// Physical activity bins, strict upper bounds in minutes per week.
	ActivityLowMinutes  int
	ActivityLowPoints   float64
	ActivityFairMinutes int
	ActivityFairPoints  float64

	// Social factors. Friends bins are strict upper bounds; family
	// support applies below the given 1-5 rating.
	FriendsFewCount     int
	FriendsFewPoints    float64
	FriendsSomeCount    int
	FriendsSomePoints   float64
	FamilySupportBelow  int
	FamilySupportPoints float64

	// School belonging bins, strict upper bounds on the 1-5 rating.
	BelongingLowRating  int
	BelongingLowPoints  float64
	BelongingFairRating int
	BelongingFairPoints float64

	// Flat additions for boolean risk flags.
	SelfHarmPoints float64
	BulliedPoints  float64

	// Classification thresholds: score < MediumThreshold is Low,
	// score < HighThreshold is Medium, anything else is High.
	MediumThreshold float64
	HighThreshold   float64

	// CrisisResource is the locale-specific crisis support line appended
	// to the self-harm recommendation.
	CrisisResource string
}

// DefaultConfig returns the production weighting. The exact values are
// load-bearing: changing them invalidates comparisons against stored scores.
func DefaultConfig() Config {
	return Config{
		EmotionWeight: 2,

		SleepSevereHours:  6,
		SleepSeverePoints: 15,
		SleepLowHours:     7,
		SleepLowPoints:    10,
		SleepFairHours:    8,
		SleepFairPoints:   5,

		ActivityLowMinutes:  30,
		ActivityLowPoints:   10,
		ActivityFairMinutes: 60,
		ActivityFairPoints:  5,

		FriendsFewCount:     2,
		FriendsFewPoints:    10,
		FriendsSomeCount:    3,
		FriendsSomePoints:   5,
		FamilySupportBelow:  3,
		FamilySupportPoints: 5,

		BelongingLowRating:  3,
		BelongingLowPoints:  10,
		BelongingFairRating: 4,
		BelongingFairPoints: 5,

		SelfHarmPoints: 15,
		BulliedPoints:  10,

		MediumThreshold: 30,
		HighThreshold:   60,

		CrisisResource: "You can contact Samaritans helpline: 116 123",
	}
}
