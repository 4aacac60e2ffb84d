package assess

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mindtrack/internal/model"
)

// minimumRiskFeatures has every field at its lowest-risk value.
func minimumRiskFeatures() Features {
	return Features{
		FeelSad:       1,
		FeelLonely:    1,
		FeelConfident: 5,
		FeelStressed:  1,
		FeelHappy:     5,
		FeelAngry:     1,

		HoursSleep:              9,
		MinutesPhysicalActivity: 90,

		FriendsCount:    5,
		FamilySupport:   5,
		SchoolBelonging: 5,

		SelfHarmEver:    false,
		BulliedRecently: false,

		StressLevel:  1,
		AnxietyLevel: 1,
	}
}

func maximumRiskFeatures() Features {
	return Features{
		FeelSad:       5,
		FeelLonely:    5,
		FeelConfident: 1,
		FeelStressed:  5,
		FeelHappy:     1,
		FeelAngry:     5,

		HoursSleep:              0,
		MinutesPhysicalActivity: 0,

		FriendsCount:    0,
		FamilySupport:   1,
		SchoolBelonging: 1,

		SelfHarmEver:    true,
		BulliedRecently: true,

		StressLevel:  10,
		AnxietyLevel: 10,
	}
}

func TestScore_MinimumRiskClampsToZero(t *testing.T) {
	cfg := DefaultConfig()

	// Pre-clamp sum is (1+1+1+1-5-5)*2 = -12 with every other category
	// at zero, so the lower clamp must engage.
	got := Score(minimumRiskFeatures(), cfg)
	assert.Equal(t, 0.0, got)
}

func TestScore_MaximumRiskClampsToHundred(t *testing.T) {
	cfg := DefaultConfig()

	// Pre-clamp: emotional (5+5+5+5-1-1)*2 = 36, sleep 15, activity 10,
	// friends 10, family 5, belonging 10, self-harm 15, bullying 10,
	// stress 9, anxiety 9 = 129.
	got := Score(maximumRiskFeatures(), cfg)
	assert.Equal(t, 100.0, got)
}

func TestScore_AlwaysBounded(t *testing.T) {
	cfg := DefaultConfig()

	// Sweep over extreme and out-of-domain inputs; the clamp is the only
	// safety net and must always hold.
	extremes := []Features{
		minimumRiskFeatures(),
		maximumRiskFeatures(),
		{StressLevel: 100, AnxietyLevel: 100},
		{FeelConfident: 50, FeelHappy: 50, HoursSleep: 12, MinutesPhysicalActivity: 500, FriendsCount: 20, FamilySupport: 9, SchoolBelonging: 9, StressLevel: 1, AnxietyLevel: 1},
		{},
	}

	for i, f := range extremes {
		got := Score(f, cfg)
		assert.GreaterOrEqual(t, got, 0.0, "case %d", i)
		assert.LessOrEqual(t, got, 100.0, "case %d", i)
	}
}

func TestScore_CategoryContributions(t *testing.T) {
	cfg := DefaultConfig()
	base := minimumRiskFeatures()
	baseScore := Score(base, cfg) // 0 after clamp, -12 before

	tests := []struct {
		name   string
		mutate func(*Features)
		want   float64 // expected score (emotional floor of -12 still applies)
	}{
		{"sleep under 6h", func(f *Features) { f.HoursSleep = 5.9 }, 3},  // 15 - 12
		{"sleep 6-7h", func(f *Features) { f.HoursSleep = 6 }, 0},        // 10 - 12, clamped
		{"sleep 7-8h", func(f *Features) { f.HoursSleep = 7.5 }, 0},      // 5 - 12, clamped
		{"self-harm flag", func(f *Features) { f.SelfHarmEver = true }, 3},
		{"bullying flag", func(f *Features) { f.BulliedRecently = true }, 0},
		{"stress and anxiety", func(f *Features) { f.StressLevel = 10; f.AnxietyLevel = 10 }, 6}, // 18 - 12
		{"no friends", func(f *Features) { f.FriendsCount = 1; f.MinutesPhysicalActivity = 90 }, 0},
	}

	assert.Equal(t, 0.0, baseScore)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := minimumRiskFeatures()
			tt.mutate(&f)
			assert.Equal(t, tt.want, Score(f, cfg))
		})
	}
}

func TestScore_SleepBinBoundaries(t *testing.T) {
	cfg := DefaultConfig()

	// Neutralize the emotional floor so sleep points show through.
	f := minimumRiskFeatures()
	f.FeelSad = 4
	f.FeelLonely = 4
	f.FeelStressed = 4
	f.FeelAngry = 4
	f.FeelConfident = 4
	f.FeelHappy = 4
	// Emotional balance: (16-8)*2 = 16.

	cases := []struct {
		hours float64
		want  float64
	}{
		{5.99, 31}, // 16 + 15
		{6, 26},    // 16 + 10, lower bound is exclusive of the severe bin
		{6.99, 26},
		{7, 21}, // 16 + 5
		{7.99, 21},
		{8, 16}, // no sleep points at 8h or more
		{9, 16},
	}

	for _, c := range cases {
		f.HoursSleep = c.hours
		assert.Equal(t, c.want, Score(f, cfg), "hours %v", c.hours)
	}
}

func TestClassify_Boundaries(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		score float64
		want  model.RiskLevel
	}{
		{0, model.RiskLow},
		{29.99, model.RiskLow},
		{30, model.RiskMedium},
		{59.99, model.RiskMedium},
		{60, model.RiskHigh},
		{100, model.RiskHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.score, cfg), "score %v", tt.score)
	}
}

func TestClassify_Monotonic(t *testing.T) {
	cfg := DefaultConfig()

	rank := map[model.RiskLevel]int{model.RiskLow: 0, model.RiskMedium: 1, model.RiskHigh: 2}
	prev := model.RiskLow
	for s := 0.0; s <= 100; s += 0.5 {
		level := Classify(s, cfg)
		assert.GreaterOrEqual(t, rank[level], rank[prev], "score %v", s)
		prev = level
	}
}

func TestScore_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	f := maximumRiskFeatures()
	f.StressLevel = 4

	first := Score(f, cfg)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(f, cfg))
	}
}
