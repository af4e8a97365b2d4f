// internal/prestige/historical_test.go
package prestige

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func snap(day int, health float64) DailySnapshot {
	return DailySnapshot{Day: day, Health: health, Rating: ConditionRating(health)}
}

func TestConditionRating(t *testing.T) {
	tests := []struct {
		health float64
		want   string
	}{
		{100, RatingExcellent},
		{80, RatingExcellent},
		{79.9, RatingGood},
		{60, RatingGood},
		{59.9, RatingFair},
		{40, RatingFair},
		{39.9, RatingPoor},
		{0, RatingPoor},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ConditionRating(tc.health), "health=%v", tc.health)
	}
}

func TestStreaksAccumulate(t *testing.T) {
	s := NewHistoricalState()

	s = UpdateHistoricalExcellence(s, snap(1, 85))
	s = UpdateHistoricalExcellence(s, snap(2, 90))
	assert.Equal(t, 2, s.ConsecutiveExcellentDays)
	assert.Equal(t, 2, s.ConsecutiveGoodDays)
	assert.Equal(t, 2, s.LongestExcellentStreak)

	// A good day keeps the good streak but ends the excellent one.
	s = UpdateHistoricalExcellence(s, snap(3, 70))
	assert.Equal(t, 0, s.ConsecutiveExcellentDays)
	assert.Equal(t, 3, s.ConsecutiveGoodDays)
	assert.Equal(t, 2, s.LongestExcellentStreak)

	// A fair day ends both streaks but is not poor.
	s = UpdateHistoricalExcellence(s, snap(4, 50))
	assert.Equal(t, 0, s.ConsecutiveGoodDays)
	assert.Equal(t, neverPoor, s.DaysSinceLastPoor)
}

func TestPoorDayResetsEverythingInOneCall(t *testing.T) {
	s := NewHistoricalState()
	for day := 1; day <= 5; day++ {
		s = UpdateHistoricalExcellence(s, snap(day, 85))
	}
	assert.Equal(t, 5, s.ConsecutiveExcellentDays)

	s = UpdateHistoricalExcellence(s, snap(6, 20))
	assert.Equal(t, 0, s.ConsecutiveExcellentDays)
	assert.Equal(t, 0, s.ConsecutiveGoodDays)
	assert.Equal(t, 0, s.DaysSinceLastPoor)
	assert.Equal(t, 1, s.PoorDaysInLast90)
	// The longest streak is a running max and never decreases.
	assert.Equal(t, 5, s.LongestExcellentStreak)
}

func TestDaysSinceLastPoorCountsUpAfterPoor(t *testing.T) {
	s := NewHistoricalState()
	assert.Equal(t, neverPoor, s.DaysSinceLastPoor)

	s = UpdateHistoricalExcellence(s, snap(1, 30))
	assert.Equal(t, 0, s.DaysSinceLastPoor)

	s = UpdateHistoricalExcellence(s, snap(2, 70))
	s = UpdateHistoricalExcellence(s, snap(3, 70))
	assert.Equal(t, 2, s.DaysSinceLastPoor)
}

func TestNeverPoorStaysSentinel(t *testing.T) {
	s := NewHistoricalState()
	for day := 1; day <= 40; day++ {
		s = UpdateHistoricalExcellence(s, snap(day, 75))
	}
	assert.Equal(t, neverPoor, s.DaysSinceLastPoor)
}

func TestRollingAverage30UsesMostRecentWindow(t *testing.T) {
	s := NewHistoricalState()
	// 10 mediocre days followed by 30 excellent days: the window holds
	// only the excellent run.
	for day := 1; day <= 10; day++ {
		s = UpdateHistoricalExcellence(s, snap(day, 50))
	}
	for day := 11; day <= 40; day++ {
		s = UpdateHistoricalExcellence(s, snap(day, 90))
	}
	assert.InDelta(t, 90, s.RollingAverage30, 1e-9)
	assert.Len(t, s.Snapshots, 40) // retention is unbounded
}

func TestPoorDaysInLast90SlidesOut(t *testing.T) {
	s := NewHistoricalState()
	s = UpdateHistoricalExcellence(s, snap(1, 20))
	for day := 2; day <= 91; day++ {
		s = UpdateHistoricalExcellence(s, snap(day, 70))
	}
	// The poor day is the 91st-from-last snapshot now: out of the window.
	assert.Equal(t, 0, s.PoorDaysInLast90)
}

func TestCompositeBounds(t *testing.T) {
	s := NewHistoricalState()
	for day := 1; day <= 120; day++ {
		s = UpdateHistoricalExcellence(s, snap(day, 100))
	}
	assert.LessOrEqual(t, s.Composite, 1000.0)
	assert.Greater(t, s.Composite, 900.0)

	bad := NewHistoricalState()
	for day := 1; day <= 120; day++ {
		bad = UpdateHistoricalExcellence(bad, snap(day, 5))
	}
	assert.GreaterOrEqual(t, bad.Composite, 0.0)
	assert.Less(t, bad.Composite, 150.0)
}

func TestCompositeRecoversAcrossBands(t *testing.T) {
	s := NewHistoricalState()
	for day := 1; day <= 30; day++ {
		s = UpdateHistoricalExcellence(s, snap(day, 85))
	}
	s = UpdateHistoricalExcellence(s, snap(31, 20))
	afterPoor := s.Composite

	// Recovery term steps up through the 8–14 and 15–30 day bands.
	for day := 32; day <= 41; day++ {
		s = UpdateHistoricalExcellence(s, snap(day, 85))
	}
	midRecovery := s.Composite
	for day := 42; day <= 95; day++ {
		s = UpdateHistoricalExcellence(s, snap(day, 85))
	}
	recovered := s.Composite

	assert.Greater(t, midRecovery, afterPoor)
	assert.Greater(t, recovered, midRecovery)
}

func TestUpdateHistoricalDoesNotMutateInput(t *testing.T) {
	s := NewHistoricalState()
	s = UpdateHistoricalExcellence(s, snap(1, 85))
	before := s.clone()

	UpdateHistoricalExcellence(s, snap(2, 20))
	assert.Equal(t, before, s)
}
