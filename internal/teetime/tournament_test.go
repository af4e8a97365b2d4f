// internal/teetime/tournament_test.go
package teetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memberGuest() Tournament {
	return Tournament{
		ID:              "member_guest",
		Name:            "Member-Guest Invitational",
		DayOfYear:       150,
		Duration:        2,
		EntryFee:        125,
		MaxParticipants: 80,
		PrestigeBonus:   40,
		FullClosure:     true,
	}
}

func TestScheduleTournamentIsSetInsert(t *testing.T) {
	var s TournamentState
	s = ScheduleTournament(s, memberGuest())
	s = ScheduleTournament(s, memberGuest())
	assert.Len(t, s.Scheduled, 1)
}

func TestScheduleCompletedTournamentIsNoOp(t *testing.T) {
	var s TournamentState
	s = ScheduleTournament(s, memberGuest())
	s = CompleteTournament(s, "member_guest", 60).State

	s = ScheduleTournament(s, memberGuest())
	assert.Empty(t, s.Scheduled)
	assert.Equal(t, []string{"member_guest"}, s.CompletedIDs)
}

func TestCancelTournament(t *testing.T) {
	var s TournamentState
	s = ScheduleTournament(s, memberGuest())

	s = CancelTournament(s, "member_guest")
	assert.Empty(t, s.Scheduled)

	// Unknown id: no-op.
	out := CancelTournament(s, "member_guest")
	assert.Equal(t, s, out)
}

func TestTournamentDayWindow(t *testing.T) {
	var s TournamentState
	s = ScheduleTournament(s, memberGuest()) // days 150 and 151

	assert.False(t, IsTournamentDay(s, 149))
	assert.True(t, IsTournamentDay(s, 150))
	assert.True(t, IsTournamentDay(s, 151))
	assert.False(t, IsTournamentDay(s, 152))
}

func TestAvailableSlotsFullClosure(t *testing.T) {
	var s TournamentState
	s = ScheduleTournament(s, memberGuest())

	assert.Equal(t, 0, AvailableSlotsOn(s, 150, 72))
	assert.Equal(t, 0, AvailableSlotsOn(s, 151, 40))
	assert.Equal(t, 72, AvailableSlotsOn(s, 152, 72))
}

func TestAvailableSlotsPartialClosure(t *testing.T) {
	tour := memberGuest()
	tour.FullClosure = false
	tour.ReservedSlots = 20

	assert.Equal(t, 52, TournamentAvailableSlots(tour, 72))
	assert.Equal(t, 0, TournamentAvailableSlots(tour, 12)) // reserved exceeds total
}

func TestCompleteTournament(t *testing.T) {
	var s TournamentState
	s = ScheduleTournament(s, memberGuest())

	res := CompleteTournament(s, "member_guest", 60)
	require.True(t, res.Completed)

	assert.Empty(t, res.State.Scheduled)
	assert.Equal(t, []string{"member_guest"}, res.State.CompletedIDs)
	assert.InDelta(t, 7500, res.Revenue, 1e-9) // 125 × 60
	assert.InDelta(t, 7500, res.State.TotalRevenue, 1e-9)
	assert.Equal(t, 60, res.State.TotalParticipants)
	// 10 baseline + 40 × 60/80.
	assert.InDelta(t, 40, res.PrestigeDelta, 1e-9)
}

func TestCompleteUnknownTournamentIsNoOp(t *testing.T) {
	var s TournamentState
	s = ScheduleTournament(s, memberGuest())

	res := CompleteTournament(s, "pro_am", 30)
	assert.False(t, res.Completed)
	assert.Equal(t, s, res.State)
	assert.Zero(t, res.PrestigeDelta)
}

func TestCompleteTournamentZeroCapacityGuard(t *testing.T) {
	tour := memberGuest()
	tour.ID = "charity_scramble"
	tour.MaxParticipants = 0

	var s TournamentState
	s = ScheduleTournament(s, tour)
	res := CompleteTournament(s, "charity_scramble", 25)
	assert.InDelta(t, tournamentBasePrestige, res.PrestigeDelta, 1e-9)
}
