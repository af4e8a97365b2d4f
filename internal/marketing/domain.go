// internal/marketing/domain.go
package marketing

import (
	"github.com/google/uuid"
)

// Campaign lifecycle statuses.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Recommendation buckets produced by campaign evaluation.
const (
	RecommendationHighlyEffective = "highly_effective"
	RecommendationEffective       = "effective"
	RecommendationMarginal        = "marginal"
	RecommendationIneffective     = "ineffective"
)

// CampaignDefinition is an immutable catalog entry describing a campaign
// that the course can run.
type CampaignDefinition struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Type                  string   `json:"type"`
	DailyCost             float64  `json:"daily_cost"`
	SetupCost             float64  `json:"setup_cost"`
	MinDuration           int      `json:"min_duration"`
	MaxDuration           int      `json:"max_duration"`
	DemandMultiplier      float64  `json:"demand_multiplier"`
	PriceElasticityEffect float64  `json:"price_elasticity_effect"`
	TargetAudience        []string `json:"target_audience"`
	CooldownDays          int      `json:"cooldown_days"`
	MaxConcurrent         int      `json:"max_concurrent"`
	TwilightOnly          bool     `json:"twilight_only"`
	IsEvent               bool     `json:"is_event"`
}

// ActiveCampaign is a running instance of a catalog campaign. Created by
// Start, advanced by Tick, terminated by Stop or auto-completion.
type ActiveCampaign struct {
	InstanceID      uuid.UUID `json:"instance_id"`
	CampaignID      string    `json:"campaign_id"`
	StartDay        int       `json:"start_day"`
	PlannedDuration int       `json:"planned_duration"`
	ElapsedDays     int       `json:"elapsed_days"`
	Status          string    `json:"status"`
	TotalCost       float64   `json:"total_cost"`
	TotalBookings   float64   `json:"total_bookings"`
	TotalRevenue    float64   `json:"total_revenue"`
}

// CampaignEffectiveness is the history record appended when a campaign
// terminates.
type CampaignEffectiveness struct {
	CampaignID         string  `json:"campaign_id"`
	CampaignName       string  `json:"campaign_name"`
	StartDay           int     `json:"start_day"`
	EndDay             int     `json:"end_day"`
	DaysRun            int     `json:"days_run"`
	TotalCost          float64 `json:"total_cost"`
	AdditionalBookings float64 `json:"additional_bookings"`
	AdditionalRevenue  float64 `json:"additional_revenue"`
	ROI                float64 `json:"roi"`
	PrestigeDelta      float64 `json:"prestige_delta"`
	Recommendation     string  `json:"recommendation"`
}

// MarketingState is the whole marketing engine state. Operations never
// mutate it in place; they return a new value.
type MarketingState struct {
	Active                []ActiveCampaign        `json:"active"`
	History               []CampaignEffectiveness `json:"history"`
	Cooldowns             map[string]int          `json:"cooldowns"`
	TotalSpend            float64                 `json:"total_spend"`
	TotalRevenue          float64                 `json:"total_revenue"`
	CampaignsRun          int                     `json:"campaigns_run"`
	AverageROI            float64                 `json:"average_roi"`
	BaselineDailyBookings float64                 `json:"baseline_daily_bookings"`
	BaselineDailyRevenue  float64                 `json:"baseline_daily_revenue"`
}

// NewMarketingState returns an empty state with the declared demand
// baseline used for effectiveness evaluation.
func NewMarketingState(baselineBookings, baselineRevenue float64) MarketingState {
	return MarketingState{
		Cooldowns:             map[string]int{},
		BaselineDailyBookings: baselineBookings,
		BaselineDailyRevenue:  baselineRevenue,
	}
}

// clone returns a deep copy so operations can replace state wholesale.
func (s MarketingState) clone() MarketingState {
	out := s
	out.Active = append([]ActiveCampaign(nil), s.Active...)
	out.History = append([]CampaignEffectiveness(nil), s.History...)
	out.Cooldowns = make(map[string]int, len(s.Cooldowns))
	for id, days := range s.Cooldowns {
		out.Cooldowns[id] = days
	}
	return out
}

// activeCount reports how many instances of one campaign id are running.
func (s MarketingState) activeCount(campaignID string) int {
	n := 0
	for _, c := range s.Active {
		if c.CampaignID == campaignID {
			n++
		}
	}
	return n
}
