// internal/prestige/historical.go
package prestige

// neverPoor marks a record that has never seen a poor day.
const neverPoor = -1

// Historical composite blend weights; they sum to 1.
const (
	weightRolling  = 0.5
	weightStreak   = 0.3
	weightRecovery = 0.2
)

// poorDayPenalty is deducted from the composite per poor day in the last
// 90 snapshots.
const poorDayPenalty = 5.0

// ConditionRating buckets a 0–100 health score.
func ConditionRating(health float64) string {
	switch {
	case health >= 80:
		return RatingExcellent
	case health >= 60:
		return RatingGood
	case health >= 40:
		return RatingFair
	default:
		return RatingPoor
	}
}

// UpdateHistoricalExcellence appends one daily snapshot and incrementally
// updates streaks, rolling windows, and the composite. Snapshots are
// retained unbounded; streak state is never recomputed from scratch.
func UpdateHistoricalExcellence(s HistoricalState, snapshot DailySnapshot) HistoricalState {
	out := s.clone()
	out.Snapshots = append(out.Snapshots, snapshot)

	switch snapshot.Rating {
	case RatingExcellent:
		out.ConsecutiveExcellentDays++
		out.ConsecutiveGoodDays++
	case RatingGood:
		out.ConsecutiveExcellentDays = 0
		out.ConsecutiveGoodDays++
	default:
		out.ConsecutiveExcellentDays = 0
		out.ConsecutiveGoodDays = 0
	}
	if out.ConsecutiveExcellentDays > out.LongestExcellentStreak {
		out.LongestExcellentStreak = out.ConsecutiveExcellentDays
	}

	if snapshot.Rating == RatingPoor {
		out.DaysSinceLastPoor = 0
	} else if out.DaysSinceLastPoor != neverPoor {
		out.DaysSinceLastPoor++
	}

	out.RollingAverage30 = rollingAverage(out.Snapshots, 30)
	out.PoorDaysInLast90 = poorCount(out.Snapshots, 90)
	out.Composite = historicalComposite(out)
	return out
}

func rollingAverage(snapshots []DailySnapshot, window int) float64 {
	if len(snapshots) == 0 {
		return 0
	}
	start := len(snapshots) - window
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for _, snap := range snapshots[start:] {
		sum += snap.Health
	}
	return sum / float64(len(snapshots)-start)
}

func poorCount(snapshots []DailySnapshot, window int) int {
	start := len(snapshots) - window
	if start < 0 {
		start = 0
	}
	n := 0
	for _, snap := range snapshots[start:] {
		if snap.Rating == RatingPoor {
			n++
		}
	}
	return n
}

// historicalComposite blends the rolling average, streak bonuses, and the
// recovery term into a 0–1000 score, then deducts for poor days still in
// the 90-day window.
func historicalComposite(s HistoricalState) float64 {
	rollingScore := s.RollingAverage30 * 10 // 0–100 health onto 0–1000

	streakScore := float64(s.ConsecutiveGoodDays)*15 +
		float64(s.ConsecutiveExcellentDays)*25 +
		float64(s.LongestExcellentStreak)*5
	if streakScore > 1000 {
		streakScore = 1000
	}

	composite := weightRolling*rollingScore +
		weightStreak*streakScore +
		weightRecovery*recoveryScore(s.DaysSinceLastPoor)

	composite -= float64(s.PoorDaysInLast90) * poorDayPenalty
	return clampScore(composite)
}

// recoveryScore is the tiered recovery term: the penalty weighs heaviest
// in the week after a poor day and tapers across the 8–14, 15–30, and
// 31–60 day bands until fully recovered.
func recoveryScore(daysSincePoor int) float64 {
	switch {
	case daysSincePoor == neverPoor:
		return 1000
	case daysSincePoor <= 7:
		return 200
	case daysSincePoor <= 14:
		return 400
	case daysSincePoor <= 30:
		return 650
	case daysSincePoor <= 60:
		return 850
	default:
		return 1000
	}
}
