// pkg/scenario/world.go
package scenario

import (
	"math"
	"time"

	"github.com/google/uuid"

	"fairlinks/internal/marketing"
	"fairlinks/internal/prestige"
	"fairlinks/internal/sim"
	"fairlinks/internal/teetime"
)

// World is one simulated course advancing day by day. Demand feeds back
// on itself: each day's demand multiplier scales the next day's bookings,
// which drive occupancy, pricing, and revenue. Everything is
// deterministic; there is no randomness to average away.
type World struct {
	Day       int
	Cash      float64
	Marketing marketing.MarketingState
	Prestige  prestige.PrestigeState
	Pricing   teetime.DynamicPricingConfig

	// ConditionComposite is the terrain input, 0-1000. Shocks move it.
	ConditionComposite float64

	// BaselineDemand is expected bookings per day at unit demand.
	BaselineDemand float64
	TotalSlots     int

	LastResult sim.DayResult
}

// NewWorld builds a course in a healthy steady state.
func NewWorld() *World {
	return &World{
		Day:  1,
		Cash: 5000,
		Marketing: marketing.NewMarketingState(
			20,   // baseline bookings
			1800, // baseline revenue
		),
		Prestige: prestige.NewPrestigeState(300, 45),
		Pricing: teetime.DynamicPricingConfig{
			Enabled:           true,
			MinMultiplier:     0.7,
			MaxMultiplier:     1.3,
			TargetBookingRate: 0.6,
		},
		ConditionComposite: 850,
		BaselineDemand:     20,
		TotalSlots:         40,
		LastResult: sim.DayResult{
			DemandMultiplier:  1.0,
			EffectiveGreenFee: 45,
		},
	}
}

// Advance runs one day and folds the outcome back into the world.
func (w *World) Advance() {
	demand := w.BaselineDemand * w.LastResult.DemandMultiplier
	booked := int(math.Round(demand))
	if booked > w.TotalSlots {
		booked = w.TotalSlots
	}
	if booked < 0 {
		booked = 0
	}

	revenue := demand * w.LastResult.EffectiveGreenFee

	res := sim.DayTick(w.Marketing, w.Pricing, w.Prestige, sim.DayInput{
		Day:           w.Day,
		Conditions:    prestige.CurrentConditionsScore{Composite: w.ConditionComposite},
		Slots:         syntheticSheet(booked, w.TotalSlots),
		DailyBookings: demand,
		DailyRevenue:  revenue,
	})

	w.Marketing = res.Marketing
	w.Prestige = res.Prestige
	w.Cash += revenue - res.MarketingDailyCost
	w.LastResult = res
	w.Day++
}

func syntheticSheet(booked, total int) []teetime.TeeTimeSlot {
	slots := make([]teetime.TeeTimeSlot, 0, total)
	for i := 0; i < total; i++ {
		status := teetime.SlotAvailable
		if i < booked {
			status = teetime.SlotReserved
		}
		slots = append(slots, teetime.TeeTimeSlot{
			ID:          uuid.New(),
			ScheduledAt: time.Date(2026, time.January, 1, 7, 0, 0, 0, time.UTC).Add(time.Duration(i) * 10 * time.Minute),
			Status:      status,
		})
	}
	return slots
}
