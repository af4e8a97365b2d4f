// internal/sim/daytick.go

// Package sim is the daily-tick orchestrator. The three engines never
// reference each other; this package calls each engine's pure functions in
// sequence and threads the outputs between them: campaign effects shift
// demand, demand and occupancy shift pricing, and the day's outcomes and
// terrain conditions feed the prestige record.
package sim

import (
	"fairlinks/internal/marketing"
	"fairlinks/internal/prestige"
	"fairlinks/internal/teetime"
)

// DayInput carries everything the orchestrator needs for one simulated
// day: the calendar day, the terrain collaborator's condition score, the
// day's slot feed, and the booking outcomes observed since the last tick.
type DayInput struct {
	Day           int                             `json:"day"`
	Conditions    prestige.CurrentConditionsScore `json:"conditions"`
	Slots         []teetime.TeeTimeSlot           `json:"slots"`
	DailyBookings float64                         `json:"daily_bookings"`
	DailyRevenue  float64                         `json:"daily_revenue"`
}

// DayResult is the new state of every engine plus the derived figures the
// orchestration layer feeds back into demand generation.
type DayResult struct {
	Marketing marketing.MarketingState `json:"marketing"`
	Prestige  prestige.PrestigeState   `json:"prestige"`

	MarketingDailyCost float64  `json:"marketing_daily_cost"`
	CompletedCampaigns []string `json:"completed_campaigns"`

	BookingRate       float64 `json:"booking_rate"`
	PriceMultiplier   float64 `json:"price_multiplier"`
	EffectiveGreenFee float64 `json:"effective_green_fee"`
	DemandMultiplier  float64 `json:"demand_multiplier"`
}

// DayTick advances one simulated day. Order matters: marketing ticks
// first so completions arm cooldowns before anything downstream reads the
// state; pricing derives from today's occupancy; the combined demand
// multiplier folds campaign lift and the fee-tolerance response to the
// dynamically adjusted fee; finally the prestige record absorbs today's
// conditions and the daily counters reset for tomorrow.
func DayTick(mkt marketing.MarketingState, pricing teetime.DynamicPricingConfig, p prestige.PrestigeState, in DayInput) DayResult {
	tick := marketing.Tick(mkt, in.Day, in.DailyBookings, in.DailyRevenue)

	rate := teetime.BookingRate(in.Slots)
	priceMult := teetime.DynamicMultiplier(pricing, rate)

	campaignMult := marketing.CombinedDemandMultiplier(tick.State)
	elasticity := marketing.CombinedElasticityEffect(tick.State)

	// Discount-leaning campaigns (negative elasticity sum) soften how the
	// posted fee is perceived against the tier's tolerance curve.
	effectiveFee := p.GreenFee * priceMult * (1 + elasticity)
	if effectiveFee < 0 {
		effectiveFee = 0
	}
	tolMult := prestige.DemandMultiplier(effectiveFee, p.Tolerance())

	health := in.Conditions.Composite / 10
	snapshot := prestige.DailySnapshot{
		Day:    in.Day,
		Health: health,
		Rating: prestige.ConditionRating(health),
	}
	p2 := p
	p2.Historical = prestige.UpdateHistoricalExcellence(p.Historical, snapshot)
	p2 = prestige.UpdatePrestigeScore(p2, in.Conditions)
	p2 = prestige.ResetDailyStats(p2)

	return DayResult{
		Marketing:          tick.State,
		Prestige:           p2,
		MarketingDailyCost: tick.DailyCost,
		CompletedCampaigns: tick.CompletedNames,
		BookingRate:        rate,
		PriceMultiplier:    priceMult,
		EffectiveGreenFee:  effectiveFee,
		DemandMultiplier:   campaignMult * tolMult,
	}
}
