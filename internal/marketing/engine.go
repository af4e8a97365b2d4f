// internal/marketing/engine.go
package marketing

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// CanStartResult reports whether a campaign may start and, if not, a
// display-ready reason.
type CanStartResult struct {
	CanStart bool   `json:"can_start"`
	Reason   string `json:"reason,omitempty"`
}

// StartResult carries the new state and the setup cost charged on start.
type StartResult struct {
	State     MarketingState `json:"state"`
	SetupCost float64        `json:"setup_cost"`
}

// TickResult carries the new state, the cost accrued this day, and the
// names of campaigns that auto-completed during the tick.
type TickResult struct {
	State          MarketingState `json:"state"`
	DailyCost      float64        `json:"daily_cost"`
	CompletedNames []string       `json:"completed_names"`
}

// CanStart checks whether the campaign may start today. It is pure and has
// no side effects; rejections are reported as values, never errors.
func CanStart(s MarketingState, campaignID string, cash float64) CanStartResult {
	def, ok := Definition(campaignID)
	if !ok {
		return CanStartResult{Reason: fmt.Sprintf("Unknown campaign %q", campaignID)}
	}
	if days := s.Cooldowns[campaignID]; days > 0 {
		return CanStartResult{Reason: fmt.Sprintf("%s is on cooldown for %d more days", def.Name, days)}
	}
	if s.activeCount(campaignID) >= def.MaxConcurrent {
		return CanStartResult{Reason: fmt.Sprintf("%s already running at its limit of %d", def.Name, def.MaxConcurrent)}
	}
	needed := def.SetupCost + def.DailyCost
	if cash < needed {
		return CanStartResult{Reason: fmt.Sprintf("Need $%.0f to start (have $%.0f)", needed, cash)}
	}
	return CanStartResult{CanStart: true}
}

// Start launches a campaign on the given day. The requested duration is
// clamped into the definition's [MinDuration, MaxDuration]. Returns nil if
// the campaign id is unknown.
func Start(s MarketingState, campaignID string, day, requestedDuration int) *StartResult {
	def, ok := Definition(campaignID)
	if !ok {
		return nil
	}

	duration := requestedDuration
	if duration < def.MinDuration {
		duration = def.MinDuration
	}
	if duration > def.MaxDuration {
		duration = def.MaxDuration
	}

	out := s.clone()
	out.Active = append(out.Active, ActiveCampaign{
		InstanceID:      uuid.New(),
		CampaignID:      campaignID,
		StartDay:        day,
		PlannedDuration: duration,
		ElapsedDays:     0,
		Status:          StatusActive,
		TotalCost:       def.SetupCost,
	})
	return &StartResult{State: out, SetupCost: def.SetupCost}
}

// Stop cancels the first active instance of the campaign, evaluating its
// effectiveness into history and arming the cooldown. Stopping a campaign
// that is not running is an idempotent no-op: the input state is returned
// unchanged.
func Stop(s MarketingState, campaignID string, day int) MarketingState {
	idx := -1
	for i, c := range s.Active {
		if c.CampaignID == campaignID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}

	out := s.clone()
	c := out.Active[idx]
	c.Status = StatusCancelled
	out.Active = append(out.Active[:idx], out.Active[idx+1:]...)
	return terminate(out, c, day)
}

// Tick advances one simulated day. Every active campaign accrues its daily
// cost and the same observed bookings/revenue figures; campaigns reaching
// their planned duration complete into history. Cooldown counters decrement
// exactly once per tick before completions arm new cooldowns, so a cooldown
// set by a campaign completing this tick is fully effective for any start
// attempted after the tick returns.
func Tick(s MarketingState, day int, dailyBookings, dailyRevenue float64) TickResult {
	out := s.clone()

	for id, days := range out.Cooldowns {
		if days > 0 {
			out.Cooldowns[id] = days - 1
		}
	}

	active := out.Active
	out.Active = nil

	var (
		dailyCost float64
		completed []string
	)
	for _, c := range active {
		def, ok := Definition(c.CampaignID)
		if !ok {
			// An instance without a definition cannot accrue anything.
			out.Active = append(out.Active, c)
			continue
		}
		c.ElapsedDays++
		c.TotalCost += def.DailyCost
		c.TotalBookings += dailyBookings
		c.TotalRevenue += dailyRevenue
		dailyCost += def.DailyCost

		if c.ElapsedDays >= c.PlannedDuration {
			c.Status = StatusCompleted
			out = terminate(out, c, day)
			completed = append(completed, def.Name)
			continue
		}
		out.Active = append(out.Active, c)
	}

	return TickResult{State: out, DailyCost: dailyCost, CompletedNames: completed}
}

// terminate evaluates a finished campaign into history, updates aggregate
// metrics, and arms the cooldown to exactly CooldownDays regardless of how
// much of the planned duration elapsed.
func terminate(s MarketingState, c ActiveCampaign, day int) MarketingState {
	def, ok := Definition(c.CampaignID)
	if !ok {
		return s
	}

	eff := evaluate(def, c, day, s.BaselineDailyBookings, s.BaselineDailyRevenue)
	s.History = append(s.History, eff)

	s.TotalSpend += c.TotalCost
	s.TotalRevenue += eff.AdditionalRevenue
	s.CampaignsRun++
	s.AverageROI = s.AverageROI + (eff.ROI-s.AverageROI)/float64(s.CampaignsRun)

	if def.CooldownDays > 0 {
		s.Cooldowns[def.ID] = def.CooldownDays
	}
	return s
}

// evaluate measures campaign performance against the declared baseline.
// Additional bookings/revenue are the per-day lift times days run, floored
// at zero; ROI guards the cost=0 divide explicitly.
func evaluate(def CampaignDefinition, c ActiveCampaign, day int, baselineBookings, baselineRevenue float64) CampaignEffectiveness {
	days := float64(c.ElapsedDays)

	var avgBookings, avgRevenue float64
	if c.ElapsedDays > 0 {
		avgBookings = c.TotalBookings / days
		avgRevenue = c.TotalRevenue / days
	}

	additionalBookings := math.Max(0, (avgBookings-baselineBookings)*days)
	additionalRevenue := math.Max(0, (avgRevenue-baselineRevenue)*days)

	roi := 0.0
	if c.TotalCost > 0 {
		roi = (additionalRevenue - c.TotalCost) / c.TotalCost
	}

	return CampaignEffectiveness{
		CampaignID:         def.ID,
		CampaignName:       def.Name,
		StartDay:           c.StartDay,
		EndDay:             day,
		DaysRun:            c.ElapsedDays,
		TotalCost:          c.TotalCost,
		AdditionalBookings: additionalBookings,
		AdditionalRevenue:  additionalRevenue,
		ROI:                roi,
		Recommendation:     recommendation(roi),
		PrestigeDelta:      PrestigeDelta(def, c.ElapsedDays),
	}
}

func recommendation(roi float64) string {
	switch {
	case roi >= 2.0:
		return RecommendationHighlyEffective
	case roi >= 1.0:
		return RecommendationEffective
	case roi >= 0.5:
		return RecommendationMarginal
	default:
		return RecommendationIneffective
	}
}

// PrestigeDelta is the reputation payout for running a campaign. Awareness
// and discount campaigns scale with duration and cap; event campaigns pay
// flat; vouchers cheapen the course's image.
func PrestigeDelta(def CampaignDefinition, days int) float64 {
	switch def.Type {
	case TypeCelebrity:
		return 100
	case TypeTournament:
		return 75
	case TypeVoucher:
		return -10
	case TypeDiscount:
		return math.Min(25, float64(days))
	default:
		return math.Min(50, 5+float64(days))
	}
}

// CombinedDemandMultiplier is the product of demand multipliers across
// active campaigns, rounded to two decimals. Campaigns whose definition
// carries no multiplier (events) are excluded from the product entirely.
func CombinedDemandMultiplier(s MarketingState) float64 {
	product := 1.0
	for _, c := range s.Active {
		def, ok := Definition(c.CampaignID)
		if !ok || def.DemandMultiplier <= 0 {
			continue
		}
		product *= def.DemandMultiplier
	}
	return math.Round(product*100) / 100
}

// CombinedElasticityEffect sums the price-elasticity effects of all active
// campaigns.
func CombinedElasticityEffect(s MarketingState) float64 {
	sum := 0.0
	for _, c := range s.Active {
		if def, ok := Definition(c.CampaignID); ok {
			sum += def.PriceElasticityEffect
		}
	}
	return sum
}
