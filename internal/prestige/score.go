// internal/prestige/score.go
package prestige

import (
	"math"
	"strings"
)

// Asymmetric daily convergence caps: reputation is harder to build than to
// lose, so the decrease cap is strictly larger than the increase cap.
const (
	maxDailyIncrease = 5.0
	maxDailyDecrease = 8.0
)

// Master-score blend weights; they sum to 1.
const (
	weightConditions  = 0.35
	weightHistorical  = 0.30
	weightAmenities   = 0.15
	weightExclusivity = 0.10
	weightReputation  = 0.10
)

// Defaults used when a caller has no exclusivity or reputation inputs.
const (
	DefaultExclusivityScore = 300.0
	DefaultReputationScore  = 100.0
)

// tierTolerances is monotonically increasing across tiers: the grander the
// club, the more its clientele will pay before balking.
var tierTolerances = map[string]FeeTolerance{
	TierMunicipal:    {SweetSpot: 30, RejectionThreshold: 50, MaxTolerance: 80},
	TierPublic:       {SweetSpot: 45, RejectionThreshold: 75, MaxTolerance: 120},
	TierSemiPrivate:  {SweetSpot: 65, RejectionThreshold: 110, MaxTolerance: 180},
	TierPrivateClub:  {SweetSpot: 90, RejectionThreshold: 160, MaxTolerance: 260},
	TierChampionship: {SweetSpot: 130, RejectionThreshold: 220, MaxTolerance: 400},
}

// TierFor maps a 0–1000 score onto its reputation band. The bands are
// half-open except the top, which absorbs a perfect 1000.
func TierFor(score float64) string {
	switch {
	case score < 200:
		return TierMunicipal
	case score < 400:
		return TierPublic
	case score < 600:
		return TierSemiPrivate
	case score < 800:
		return TierPrivateClub
	default:
		return TierChampionship
	}
}

// ToleranceFor returns the fee tolerance for a tier. Unknown tiers fall
// back to municipal, the least tolerant band.
func ToleranceFor(tier string) FeeTolerance {
	if tol, ok := tierTolerances[tier]; ok {
		return tol
	}
	return tierTolerances[TierMunicipal]
}

// StarRating maps the score linearly onto half-star steps in [0.5, 5.0].
func StarRating(score float64) float64 {
	raw := 0.5 + clampScore(score)/1000*4.5
	stars := math.Round(raw*2) / 2
	if stars < 0.5 {
		return 0.5
	}
	if stars > 5 {
		return 5
	}
	return stars
}

// StarDisplay renders a five-position glyph row with filled, half, and
// empty stars.
func StarDisplay(stars float64) string {
	full := int(stars)
	half := stars-float64(full) >= 0.5
	var b strings.Builder
	for i := 0; i < 5; i++ {
		switch {
		case i < full:
			b.WriteRune('★')
		case i == full && half:
			b.WriteRune('✬')
		default:
			b.WriteRune('☆')
		}
	}
	return b.String()
}

// DemandMultiplier is the piecewise fee response for a tolerance band:
// full demand at or below the sweet spot, easing to 0.8 at the rejection
// threshold, collapsing to 0.2 at max tolerance, and continuing down past
// it on the same slope with a hard floor of 0.05.
func DemandMultiplier(fee float64, tol FeeTolerance) float64 {
	switch {
	case fee <= tol.SweetSpot:
		return 1.0
	case fee <= tol.RejectionThreshold:
		span := tol.RejectionThreshold - tol.SweetSpot
		return 1.0 - 0.2*(fee-tol.SweetSpot)/span
	case fee <= tol.MaxTolerance:
		span := tol.MaxTolerance - tol.RejectionThreshold
		return 0.8 - 0.6*(fee-tol.RejectionThreshold)/span
	default:
		slope := 0.6 / (tol.MaxTolerance - tol.RejectionThreshold)
		return math.Max(0.05, 0.2-slope*(fee-tol.MaxTolerance))
	}
}

// ProcessGolferArrival accrues one golfer into the daily counters: served
// and paying when didPay, rejected with the fee counted as lost otherwise.
func ProcessGolferArrival(s PrestigeState, fee float64, didPay bool) PrestigeState {
	out := s.clone()
	if didPay {
		out.GolfersToday++
		out.RevenueToday += fee
	} else {
		out.GolfersRejectedToday++
		out.RevenueLostToday += fee
	}
	return out
}

// ResetDailyStats zeroes the four daily counters and nothing else.
func ResetDailyStats(s PrestigeState) PrestigeState {
	out := s.clone()
	out.GolfersToday = 0
	out.GolfersRejectedToday = 0
	out.RevenueToday = 0
	out.RevenueLostToday = 0
	return out
}

// UpdatePrestigeScore recomputes the target score from the weighted blend
// of today's conditions and the stored sub-scores, then moves the current
// score toward it under the asymmetric daily caps, snapping exactly onto
// the target when the remaining gap is smaller than the applicable cap.
func UpdatePrestigeScore(s PrestigeState, conditions CurrentConditionsScore) PrestigeState {
	out := s.clone()
	out.TargetScore = MasterScore(
		conditions.Composite,
		out.Historical.Composite,
		out.AmenityScore,
		out.ExclusivityScore,
		out.ReputationScore,
	)

	gap := out.TargetScore - out.CurrentScore
	switch {
	case gap > maxDailyIncrease:
		out.CurrentScore += maxDailyIncrease
	case gap < -maxDailyDecrease:
		out.CurrentScore -= maxDailyDecrease
	default:
		out.CurrentScore = out.TargetScore
	}
	out.CurrentScore = clampScore(out.CurrentScore)
	return out
}

// MasterScore is the weighted combination of the five prestige components,
// clamped to [0, 1000]. All components are on the 0–1000 scale.
func MasterScore(conditions, historical, amenity, exclusivity, reputation float64) float64 {
	score := weightConditions*conditions +
		weightHistorical*historical +
		weightAmenities*amenity +
		weightExclusivity*exclusivity +
		weightReputation*reputation
	return clampScore(score)
}
