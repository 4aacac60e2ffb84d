package assess

import "mindtrack/internal/model"

// Score maps normalized features to a risk score in [0, 100]. Pure and
// deterministic: the same features and config always produce the same
// score. Category contributions are additive; only the final sum is
// clamped, which reproduces the behavior of all previously stored scores.
func Score(f Features, cfg Config) float64 {
	var score float64

	// Emotional balance: negative emotions push the score up, positive
	// emotions pull it down.
	negative := f.FeelSad + f.FeelLonely + f.FeelStressed + f.FeelAngry
	positive := f.FeelConfident + f.FeelHappy
	score += float64(negative-positive) * cfg.EmotionWeight

	// Sleep: half-open bins on hours per night.
	switch {
	case f.HoursSleep < cfg.SleepSevereHours:
		score += cfg.SleepSeverePoints
	case f.HoursSleep < cfg.SleepLowHours:
		score += cfg.SleepLowPoints
	case f.HoursSleep < cfg.SleepFairHours:
		score += cfg.SleepFairPoints
	}

	// Physical activity: minutes per week.
	switch {
	case f.MinutesPhysicalActivity < cfg.ActivityLowMinutes:
		score += cfg.ActivityLowPoints
	case f.MinutesPhysicalActivity < cfg.ActivityFairMinutes:
		score += cfg.ActivityFairPoints
	}

	// Social: friends and family support are independent checks.
	switch {
	case f.FriendsCount < cfg.FriendsFewCount:
		score += cfg.FriendsFewPoints
	case f.FriendsCount < cfg.FriendsSomeCount:
		score += cfg.FriendsSomePoints
	}
	if f.FamilySupport < cfg.FamilySupportBelow {
		score += cfg.FamilySupportPoints
	}

	// School belonging.
	switch {
	case f.SchoolBelonging < cfg.BelongingLowRating:
		score += cfg.BelongingLowPoints
	case f.SchoolBelonging < cfg.BelongingFairRating:
		score += cfg.BelongingFairPoints
	}

	// Flat risk flags.
	if f.SelfHarmEver {
		score += cfg.SelfHarmPoints
	}
	if f.BulliedRecently {
		score += cfg.BulliedPoints
	}

	// Stress and anxiety contribute their rating above baseline.
	score += float64(f.StressLevel - 1)
	score += float64(f.AnxietyLevel - 1)

	return clamp(score, 0, 100)
}

// Classify buckets a score into one of three ordered risk levels.
func Classify(score float64, cfg Config) model.RiskLevel {
	switch {
	case score < cfg.MediumThreshold:
		return model.RiskLow
	case score < cfg.HighThreshold:
		return model.RiskMedium
	default:
		return model.RiskHigh
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
