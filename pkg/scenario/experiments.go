// pkg/scenario/experiments.go
package scenario

import (
	"fairlinks/internal/marketing"
)

// RegisterExperiments registers the predefined season-stress suite.
func (e *Engine) RegisterExperiments() {
	e.RegisterExperiment(CampaignSaturationExperiment())
	e.RegisterExperiment(PriceShockExperiment())
	e.RegisterExperiment(ConditionCollapseExperiment())
}

func startCampaign(w *World, campaignID string, duration int) {
	res := marketing.Start(w.Marketing, campaignID, w.Day, duration)
	if res == nil {
		return
	}
	w.Marketing = res.State
	w.Cash -= res.SetupCost
}

// CampaignSaturationExperiment launches every non-event campaign the
// catalog allows at once and checks the daily burn never bankrupts the
// course.
func CampaignSaturationExperiment() Experiment {
	return Experiment{
		Name:       "campaign-saturation",
		Hypothesis: "Running the full campaign roster at once stays cash-positive on baseline demand",
		SteadyState: []Metric{
			{
				Name:      "cash",
				Query:     func(w *World) float64 { return w.Cash },
				Threshold: Threshold{Operator: ">", Value: 0},
			},
			{
				Name:      "demand_multiplier",
				Query:     func(w *World) float64 { return w.LastResult.DemandMultiplier },
				Threshold: Threshold{Operator: ">", Value: 0.5},
			},
		},
		Method: []Shock{
			{
				Day:    0,
				Type:   "start-campaigns",
				Target: "marketing",
				Apply: func(w *World) {
					startCampaign(w, "social_media", 21)
					startCampaign(w, "newspaper_ad", 21)
					// Outlives the observation window so the closing
					// assertion sees a campaign-lifted market.
					startCampaign(w, "billboard", 70)
					startCampaign(w, "radio_spot", 30)
				},
			},
		},
		Validation: []Assertion{
			{
				Metric:    "cash",
				Condition: func(v float64) bool { return v > 0 },
				Message:   "Course must end the window solvent",
			},
			{
				Metric:    "demand_multiplier",
				Condition: func(v float64) bool { return v > 1.0 },
				Message:   "Stacked campaigns must lift demand above baseline",
			},
		},
		WarmupDays:  10,
		ObserveDays: 60,
	}
}

// PriceShockExperiment triples the posted green fee mid-season and
// checks demand collapses and then recovers once the fee is restored.
func PriceShockExperiment() Experiment {
	var originalFee float64

	return Experiment{
		Name:       "price-shock",
		Hypothesis: "Demand punished by a tripled fee recovers within the season once the fee is restored",
		SteadyState: []Metric{
			{
				Name:      "demand_multiplier",
				Query:     func(w *World) float64 { return w.LastResult.DemandMultiplier },
				Threshold: Threshold{Operator: ">=", Value: 0.8},
			},
		},
		Method: []Shock{
			{
				Day:    0,
				Type:   "raise-fee",
				Target: "pricing",
				Apply: func(w *World) {
					originalFee = w.Prestige.GreenFee
					w.Prestige.GreenFee = originalFee * 3
				},
			},
			{
				Day:    20,
				Type:   "restore-fee",
				Target: "pricing",
				Apply: func(w *World) {
					w.Prestige.GreenFee = originalFee
				},
			},
		},
		Validation: []Assertion{
			{
				Metric:    "demand_multiplier",
				Condition: func(v float64) bool { return v >= 0.8 },
				Message:   "Demand must return to steady state after the fee is restored",
			},
		},
		WarmupDays:  10,
		ObserveDays: 45,
	}
}

// ConditionCollapseExperiment crashes course conditions for two weeks
// and checks the prestige record climbs back once the terrain recovers.
func ConditionCollapseExperiment() Experiment {
	return Experiment{
		Name:       "condition-collapse-recovery",
		Hypothesis: "A two-week conditions collapse dents prestige but the score recovers within the season",
		SteadyState: []Metric{
			{
				Name:      "prestige_score",
				Query:     func(w *World) float64 { return w.Prestige.CurrentScore },
				Threshold: Threshold{Operator: ">", Value: 250},
			},
		},
		Method: []Shock{
			{
				Day:    0,
				Type:   "collapse-conditions",
				Target: "terrain",
				Apply: func(w *World) {
					w.ConditionComposite = 200
				},
			},
			{
				Day:    14,
				Type:   "restore-conditions",
				Target: "terrain",
				Apply: func(w *World) {
					w.ConditionComposite = 900
				},
			},
		},
		Validation: []Assertion{
			{
				Metric:    "prestige_score",
				Condition: func(v float64) bool { return v > 250 },
				Message:   "Prestige must climb back above the steady-state floor",
			},
		},
		WarmupDays:  20,
		ObserveDays: 120,
	}
}
