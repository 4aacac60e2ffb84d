package assess

import "mindtrack/internal/model"

// insightRule pairs one predicate with the factor label and
// recommendations it contributes. Rules are evaluated in declaration
// order and are independent of each other, so the output ordering is
// fixed and each rule can be tested on its own.
type insightRule struct {
	applies         func(Features) bool
	factor          string
	recommendations []string
}

func insightRules(cfg Config) []insightRule {
	return []insightRule{
		{
			applies: func(f Features) bool { return f.HoursSleep < 7 },
			factor:  "Poor sleep patterns",
			recommendations: []string{
				"Try to get 7-9 hours of sleep each night. Establish a regular bedtime routine.",
			},
		},
		{
			applies: func(f Features) bool { return f.MinutesPhysicalActivity < 60 },
			factor:  "Low physical activity",
			recommendations: []string{
				"Aim for at least 60 minutes of physical activity per day. Even a 10-minute walk can help.",
			},
		},
		{
			applies: func(f Features) bool { return f.FeelSad >= 4 },
			factor:  "Feelings of sadness",
			recommendations: []string{
				"Consider talking to someone you trust about how you're feeling. Practice self-care activities.",
			},
		},
		{
			applies: func(f Features) bool { return f.FeelStressed >= 4 },
			factor:  "High stress levels",
			recommendations: []string{
				"Try stress management techniques like deep breathing, meditation, or taking breaks.",
			},
		},
		{
			applies: func(f Features) bool { return f.SelfHarmEver },
			factor:  "History of self-harm",
			recommendations: []string{
				"Please consider reaching out to a mental health professional for support.",
				cfg.CrisisResource,
			},
		},
		{
			applies: func(f Features) bool { return f.BulliedRecently },
			factor:  "Recent bullying experience",
			recommendations: []string{
				"Speak to a trusted adult or teacher about what's happening.",
				"Remember: it's not your fault, and help is available.",
			},
		},
		{
			applies: func(f Features) bool { return f.FamilySupport < 3 },
			factor:  "Limited family support",
			recommendations: []string{
				"Consider building support networks through friends, mentors, or school counselors.",
			},
		},
	}
}

// generalRecommendations are appended after the rule table, two per
// risk level, regardless of how many rules fired.
var generalRecommendations = map[model.RiskLevel][]string{
	model.RiskHigh: {
		"Consider scheduling an appointment with a mental health professional.",
		"Practice daily mindfulness or grounding exercises.",
	},
	model.RiskMedium: {
		"Regular exercise and healthy sleep can help improve your mental health.",
		"Try keeping a mood journal to track your emotions.",
	},
	model.RiskLow: {
		"Great job taking care of your mental health! Keep up the good work.",
		"Continue maintaining healthy habits and supporting others.",
	},
}

// Generate evaluates the rule table against the features and returns the
// detected risk factors and the matching recommendations, followed by the
// two level-conditioned general recommendations. Factors keep rule order
// and contain no duplicates within one call.
func Generate(f Features, level model.RiskLevel, cfg Config) (factors, recommendations []string) {
	factors = []string{}
	recommendations = []string{}

	for _, rule := range insightRules(cfg) {
		if rule.applies(f) {
			factors = append(factors, rule.factor)
			recommendations = append(recommendations, rule.recommendations...)
		}
	}

	recommendations = append(recommendations, generalRecommendations[level]...)
	return factors, recommendations
}
