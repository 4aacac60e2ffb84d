package assess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindtrack/internal/model"
)

func TestGenerate_NoFactors(t *testing.T) {
	cfg := DefaultConfig()

	factors, recs := Generate(minimumRiskFeatures(), model.RiskLow, cfg)
	assert.Empty(t, factors)
	// The two level-conditioned recommendations are always appended.
	require.Len(t, recs, 2)
	assert.Contains(t, recs[0], "Great job")
}

func TestGenerate_FactorCountMatchesPredicates(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name        string
		features    Features
		wantFactors int
	}{
		{"all clear", minimumRiskFeatures(), 0},
		{
			"poor sleep only",
			func() Features { f := minimumRiskFeatures(); f.HoursSleep = 6; return f }(),
			1,
		},
		{
			"sleep and activity",
			func() Features {
				f := minimumRiskFeatures()
				f.HoursSleep = 5
				f.MinutesPhysicalActivity = 10
				return f
			}(),
			2,
		},
		{"everything fires", maximumRiskFeatures(), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factors, recs := Generate(tt.features, model.RiskMedium, cfg)
			assert.Len(t, factors, tt.wantFactors)
			// Every factor contributes at least one recommendation, plus
			// the two general ones.
			assert.GreaterOrEqual(t, len(recs), tt.wantFactors+2)
		})
	}
}

func TestGenerate_ChecklistOrder(t *testing.T) {
	cfg := DefaultConfig()

	factors, _ := Generate(maximumRiskFeatures(), model.RiskHigh, cfg)
	assert.Equal(t, []string{
		"Poor sleep patterns",
		"Low physical activity",
		"Feelings of sadness",
		"High stress levels",
		"History of self-harm",
		"Recent bullying experience",
		"Limited family support",
	}, factors)
}

func TestGenerate_NoDuplicateFactors(t *testing.T) {
	cfg := DefaultConfig()

	factors, _ := Generate(maximumRiskFeatures(), model.RiskHigh, cfg)
	seen := map[string]bool{}
	for _, f := range factors {
		assert.False(t, seen[f], "duplicate factor %q", f)
		seen[f] = true
	}
}

func TestGenerate_CrisisResourcePluggable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CrisisResource = "Call 988 Suicide & Crisis Lifeline"

	f := minimumRiskFeatures()
	f.SelfHarmEver = true

	_, recs := Generate(f, model.RiskHigh, cfg)
	assert.Contains(t, recs, "Call 988 Suicide & Crisis Lifeline")
}

func TestGenerate_LevelConditionedTail(t *testing.T) {
	cfg := DefaultConfig()
	f := minimumRiskFeatures()

	tests := []struct {
		level model.RiskLevel
		want  string
	}{
		{model.RiskHigh, "Consider scheduling an appointment with a mental health professional."},
		{model.RiskMedium, "Regular exercise and healthy sleep can help improve your mental health."},
		{model.RiskLow, "Great job taking care of your mental health! Keep up the good work."},
	}

	for _, tt := range tests {
		_, recs := Generate(f, tt.level, cfg)
		require.Len(t, recs, 2)
		assert.Equal(t, tt.want, recs[0])
	}
}

func TestGenerate_NeverNil(t *testing.T) {
	cfg := DefaultConfig()

	factors, recs := Generate(Features{FamilySupport: 5, HoursSleep: 9, MinutesPhysicalActivity: 90}, "unknown", cfg)
	assert.NotNil(t, factors)
	assert.NotNil(t, recs)
}
