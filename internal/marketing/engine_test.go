// internal/marketing/engine_test.go
package marketing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanStartUnknownCampaign(t *testing.T) {
	s := NewMarketingState(20, 2000)
	res := CanStart(s, "skywriting", 1e6)
	assert.False(t, res.CanStart)
	assert.Equal(t, `Unknown campaign "skywriting"`, res.Reason)
}

func TestCanStartInsufficientCash(t *testing.T) {
	s := NewMarketingState(20, 2000)
	res := CanStart(s, "radio_spot", 100)
	assert.False(t, res.CanStart)
	// Setup 500 + first day 300.
	assert.Equal(t, "Need $800 to start (have $100)", res.Reason)
}

func TestCanStartOnCooldownNamesRemainingDays(t *testing.T) {
	s := NewMarketingState(20, 2000)
	s.Cooldowns["radio_spot"] = 9

	res := CanStart(s, "radio_spot", 1e6)
	assert.False(t, res.CanStart)
	assert.Contains(t, res.Reason, "9 more days")
}

func TestCanStartMaxConcurrent(t *testing.T) {
	s := NewMarketingState(20, 2000)
	started := Start(s, "radio_spot", 1, 30)
	require.NotNil(t, started)

	res := CanStart(started.State, "radio_spot", 1e6)
	assert.False(t, res.CanStart)
	assert.Contains(t, res.Reason, "limit of 1")
}

func TestStartClampsDuration(t *testing.T) {
	s := NewMarketingState(20, 2000)

	tests := []struct {
		requested int
		want      int
	}{
		{1, 14},
		{1000, 60},
		{30, 30},
	}
	for _, tc := range tests {
		res := Start(s, "radio_spot", 5, tc.requested)
		require.NotNil(t, res)
		assert.Equal(t, tc.want, res.State.Active[0].PlannedDuration)
		assert.Equal(t, 0, res.State.Active[0].ElapsedDays)
		assert.Equal(t, 500.0, res.State.Active[0].TotalCost)
		assert.Equal(t, 500.0, res.SetupCost)
	}
}

func TestStartUnknownCampaignReturnsNil(t *testing.T) {
	s := NewMarketingState(20, 2000)
	assert.Nil(t, Start(s, "skywriting", 1, 10))
}

func TestStopWithoutMatchingCampaignIsNoOp(t *testing.T) {
	s := NewMarketingState(20, 2000)
	s.Cooldowns["billboard"] = 3

	out := Stop(s, "radio_spot", 12)
	assert.Equal(t, s, out)
}

func TestTickAccrualAndCompletion(t *testing.T) {
	s := NewMarketingState(20, 2000)
	started := Start(s, "twilight_special", 1, 7)
	require.NotNil(t, started)
	s = started.State

	var completed []string
	for day := 2; day <= 8; day++ {
		res := Tick(s, day, 25, 2400)
		s = res.State
		completed = append(completed, res.CompletedNames...)
		if day < 8 {
			assert.Equal(t, 50.0, res.DailyCost)
			assert.Len(t, s.Active, 1)
		}
	}

	assert.Empty(t, s.Active)
	assert.Equal(t, []string{"Twilight Special"}, completed)
	require.Len(t, s.History, 1)
	assert.Equal(t, "twilight_special", s.History[0].CampaignID)
	assert.Equal(t, 7, s.History[0].DaysRun)
	// Completion arms the cooldown to exactly CooldownDays.
	assert.Equal(t, 7, s.Cooldowns["twilight_special"])
}

func TestTickCompletionCooldownVisibleToNextStart(t *testing.T) {
	s := NewMarketingState(20, 2000)
	started := Start(s, "free_vouchers", 1, 5)
	require.NotNil(t, started)
	s = started.State

	for day := 2; day <= 6; day++ {
		s = Tick(s, day, 30, 2500).State
	}

	res := CanStart(s, "free_vouchers", 1e6)
	assert.False(t, res.CanStart)
	assert.Contains(t, res.Reason, "21 more days")
}

func TestTickDecrementsCooldownsIndependently(t *testing.T) {
	s := NewMarketingState(20, 2000)
	s.Cooldowns["radio_spot"] = 2
	s.Cooldowns["billboard"] = 1
	s.Cooldowns["social_media"] = 0

	s = Tick(s, 40, 0, 0).State
	assert.Equal(t, 1, s.Cooldowns["radio_spot"])
	assert.Equal(t, 0, s.Cooldowns["billboard"])
	assert.Equal(t, 0, s.Cooldowns["social_media"])

	s = Tick(s, 41, 0, 0).State
	assert.Equal(t, 0, s.Cooldowns["radio_spot"])
}

func TestEvaluateROIAndRecommendation(t *testing.T) {
	def, ok := Definition("radio_spot")
	require.True(t, ok)

	c := ActiveCampaign{
		CampaignID:      "radio_spot",
		StartDay:        10,
		PlannedDuration: 10,
		ElapsedDays:     10,
		TotalCost:       3500, // 500 setup + 10 × 300
		TotalBookings:   300,  // 30/day vs baseline 20
		TotalRevenue:    45000,
	}
	eff := evaluate(def, c, 20, 20, 2000)

	assert.InDelta(t, 100, eff.AdditionalBookings, 1e-9)     // (30-20) × 10
	assert.InDelta(t, 25000, eff.AdditionalRevenue, 1e-9)    // (4500-2000) × 10
	assert.InDelta(t, (25000-3500)/3500.0, eff.ROI, 1e-9)    // ≈ 6.14
	assert.Equal(t, RecommendationHighlyEffective, eff.Recommendation)
}

func TestEvaluateZeroCostROIIsZero(t *testing.T) {
	def := CampaignDefinition{ID: "x", Name: "X", Type: TypeAwareness}
	eff := evaluate(def, ActiveCampaign{CampaignID: "x", ElapsedDays: 3, TotalRevenue: 900}, 3, 0, 0)
	assert.Equal(t, 0.0, eff.ROI)
}

func TestEvaluateLiftFlooredAtZero(t *testing.T) {
	def, _ := Definition("social_media")
	c := ActiveCampaign{CampaignID: "social_media", ElapsedDays: 5, TotalBookings: 50, TotalRevenue: 5000, TotalCost: 950}
	eff := evaluate(def, c, 6, 20, 2000) // underperformed the baseline
	assert.Equal(t, 0.0, eff.AdditionalBookings)
	assert.Equal(t, 0.0, eff.AdditionalRevenue)
	assert.Equal(t, RecommendationIneffective, eff.Recommendation)
}

func TestRecommendationBuckets(t *testing.T) {
	tests := []struct {
		roi  float64
		want string
	}{
		{2.0, RecommendationHighlyEffective},
		{1.5, RecommendationEffective},
		{1.0, RecommendationEffective},
		{0.5, RecommendationMarginal},
		{0.49, RecommendationIneffective},
		{-1, RecommendationIneffective},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, recommendation(tc.roi), fmt.Sprintf("roi=%v", tc.roi))
	}
}

func TestPrestigeDelta(t *testing.T) {
	celebrity, _ := Definition("celebrity_visit")
	tournament, _ := Definition("club_championship")
	voucher, _ := Definition("free_vouchers")
	radio, _ := Definition("radio_spot")

	assert.Equal(t, 100.0, PrestigeDelta(celebrity, 2))
	assert.Equal(t, 75.0, PrestigeDelta(tournament, 3))
	assert.Equal(t, -10.0, PrestigeDelta(voucher, 14))
	assert.Equal(t, 19.0, PrestigeDelta(radio, 14))
	assert.Equal(t, 50.0, PrestigeDelta(radio, 60)) // capped
}

func TestCombinedDemandMultiplier(t *testing.T) {
	s := NewMarketingState(20, 2000)
	assert.Equal(t, 1.0, CombinedDemandMultiplier(s))

	s = Start(s, "radio_spot", 1, 30).State // 1.15
	s = Start(s, "billboard", 1, 30).State  // 1.20
	assert.Equal(t, 1.38, CombinedDemandMultiplier(s))

	// Event campaigns with multiplier 0 are excluded, not multiplied in.
	s = Start(s, "club_championship", 1, 2).State
	assert.Equal(t, 1.38, CombinedDemandMultiplier(s))
}

func TestCombinedElasticityEffectIsASum(t *testing.T) {
	s := NewMarketingState(20, 2000)
	s = Start(s, "radio_spot", 1, 30).State       // +0.05
	s = Start(s, "twilight_special", 1, 10).State // -0.15
	assert.InDelta(t, -0.10, CombinedElasticityEffect(s), 1e-9)
}

// A radio spot started on day 10 for 30 days survives 14 ticks, then an
// explicit stop arms the full 14-day cooldown.
func TestRadioSpotScenario(t *testing.T) {
	s := NewMarketingState(20, 2000)
	started := Start(s, "radio_spot", 10, 30)
	require.NotNil(t, started)
	assert.Equal(t, 500.0, started.SetupCost)
	s = started.State

	for day := 11; day <= 24; day++ {
		res := Tick(s, day, 30, 3000)
		s = res.State
		assert.Empty(t, res.CompletedNames)
	}

	require.Len(t, s.Active, 1)
	assert.Equal(t, 14, s.Active[0].ElapsedDays)

	s = Stop(s, "radio_spot", 24)
	assert.Empty(t, s.Active)
	require.Len(t, s.History, 1)
	assert.Equal(t, 14, s.Cooldowns["radio_spot"])
	assert.Equal(t, 1, s.CampaignsRun)
}

func TestOperationsDoNotMutateInput(t *testing.T) {
	s := NewMarketingState(20, 2000)
	s = Start(s, "radio_spot", 1, 30).State
	snapshot := s.clone()

	Tick(s, 2, 30, 3000)
	Stop(s, "radio_spot", 2)
	CanStart(s, "radio_spot", 100)

	assert.Equal(t, snapshot, s)
}
