package assess

import "strings"

// Features is the fixed, typed feature set consumed by the scorer. Every
// field carries a domain default applied by Normalize when the raw payload
// is missing or uncoercible. JSON tags match the raw questionnaire field
// names, so a marshalled Features value is itself a valid raw payload.
type Features struct {
	FeelSad       int `json:"feel_sad"`
	FeelLonely    int `json:"feel_lonely"`
	FeelConfident int `json:"feel_confident"`
	FeelStressed  int `json:"feel_stressed"`
	FeelHappy     int `json:"feel_happy"`
	FeelAngry     int `json:"feel_angry"`

	HoursSleep              float64 `json:"hours_sleep"`
	MinutesPhysicalActivity int     `json:"minutes_physical_activity"`

	FriendsCount    int `json:"friends_count"`
	FamilySupport   int `json:"family_support"`
	SchoolBelonging int `json:"school_belonging"`

	SelfHarmEver    bool `json:"self_harm_ever"`
	BulliedRecently bool `json:"bullied_recently"`

	StressLevel  int `json:"stress_level"`
	AnxietyLevel int `json:"anxiety_level"`
}

// Normalize canonicalizes a raw questionnaire payload into Features.
// Coercion is total: ints, floats, and bools are accepted as numbers
// (bools as 0/1), strings fall into a three-tier frequency bucket, and
// anything else degrades to the field default. Never fails.
func Normalize(raw map[string]any) Features {
	return Features{
		FeelSad:       intField(raw, "feel_sad", 1),
		FeelLonely:    intField(raw, "feel_lonely", 1),
		FeelConfident: intField(raw, "feel_confident", 1),
		FeelStressed:  intField(raw, "feel_stressed", 1),
		FeelHappy:     intField(raw, "feel_happy", 1),
		FeelAngry:     intField(raw, "feel_angry", 1),

		HoursSleep:              floatField(raw, "hours_sleep", 8),
		MinutesPhysicalActivity: intField(raw, "minutes_physical_activity", 0),

		FriendsCount:    intField(raw, "friends_count", 3),
		FamilySupport:   intField(raw, "family_support", 3),
		SchoolBelonging: intField(raw, "school_belonging", 3),

		SelfHarmEver:    boolField(raw, "self_harm_ever", false),
		BulliedRecently: boolField(raw, "bullied_recently", false),

		StressLevel:  intField(raw, "stress_level", 1),
		AnxietyLevel: intField(raw, "anxiety_level", 1),
	}
}

// coerceNumber maps the accepted raw value shapes onto a number.
// Frequency words bucket into three tiers, matching how the original
// survey encoding treated categorical intensity.
func coerceNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		switch strings.ToLower(t) {
		case "never", "no", "false":
			return 0, true
		case "rarely", "sometimes":
			return 1, true
		case "often", "yes", "true":
			return 2, true
		default:
			return 0, true
		}
	default:
		return 0, false
	}
}

func intField(raw map[string]any, key string, def int) int {
	v, ok := raw[key]
	if !ok {
		return def
	}
	n, ok := coerceNumber(v)
	if !ok {
		return def
	}
	return int(n)
}

func floatField(raw map[string]any, key string, def float64) float64 {
	v, ok := raw[key]
	if !ok {
		return def
	}
	n, ok := coerceNumber(v)
	if !ok {
		return def
	}
	return n
}

func boolField(raw map[string]any, key string, def bool) bool {
	v, ok := raw[key]
	if !ok {
		return def
	}
	if b, ok := v.(bool); ok {
		return b
	}
	n, ok := coerceNumber(v)
	if !ok {
		return def
	}
	return n != 0
}
