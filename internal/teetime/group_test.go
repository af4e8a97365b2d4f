// internal/teetime/group_test.go
package teetime

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupConfig() GroupBookingConfig {
	return GroupBookingConfig{
		Enabled:            true,
		MinGroupSize:       8,
		MaxGroupSize:       32,
		DiscountPercentage: 10,
		DepositPercentage:  25,
	}
}

func standardFees() GroupFeeStructure {
	return GroupFeeStructure{WeekdayRate: 45, WeekendRate: 65}
}

func TestGroupDiscount(t *testing.T) {
	cfg := groupConfig()

	assert.Equal(t, 0.0, GroupDiscount(cfg, 7, 315)) // below minimum size
	assert.InDelta(t, 36.0, GroupDiscount(cfg, 8, 360), 1e-9)

	cfg.Enabled = false
	assert.Equal(t, 0.0, GroupDiscount(cfg, 12, 540))
}

func TestGroupTotal(t *testing.T) {
	cfg := groupConfig()
	fees := standardFees()

	q := GroupTotal(cfg, fees, 12, false)
	assert.InDelta(t, 540, q.Subtotal, 1e-9)
	assert.InDelta(t, 54, q.Discount, 1e-9)
	assert.InDelta(t, 486, q.Total, 1e-9)
	assert.InDelta(t, 121.5, q.Deposit, 1e-9)

	weekend := GroupTotal(cfg, fees, 12, true)
	assert.InDelta(t, 780, weekend.Subtotal, 1e-9)
	assert.InDelta(t, 702, weekend.Total, 1e-9)
}

func TestSlotsNeeded(t *testing.T) {
	tests := []struct{ size, want int }{
		{4, 1}, {5, 2}, {8, 2}, {9, 3}, {16, 4}, {17, 5},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, SlotsNeeded(tc.size), "size=%d", tc.size)
	}
}

func TestCreateGroupBookingRejectsOversize(t *testing.T) {
	cfg := groupConfig()
	var s GroupBookingState

	res := CreateGroupBooking(s, cfg, "Acme Outing", 33, 200, 180)
	assert.False(t, res.OK)
	assert.Nil(t, res.Booking)
	assert.Equal(t, "Group of 33 exceeds the maximum of 32 players", res.Reason)
	assert.Empty(t, res.State.Bookings)
}

func TestCreateGroupBookingRejectsUndersize(t *testing.T) {
	cfg := groupConfig()
	var s GroupBookingState

	res := CreateGroupBooking(s, cfg, "Half a Foursome", 2, 200, 180)
	assert.False(t, res.OK)
	assert.Equal(t, "Group of 2 is below the minimum of 8 players", res.Reason)
	assert.Empty(t, res.State.Bookings)
}

func TestGroupBookingLifecycle(t *testing.T) {
	cfg := groupConfig()
	var s GroupBookingState

	created := CreateGroupBooking(s, cfg, "Acme Outing", 16, 200, 180)
	require.True(t, created.OK)
	s = created.State
	id := created.Booking.ID
	assert.Equal(t, GroupInquiry, s.Bookings[0].Status)

	s = ConfirmGroupBooking(s, id, 936, 234)
	assert.Equal(t, GroupDepositPaid, s.Bookings[0].Status)
	assert.InDelta(t, 936, s.Bookings[0].TotalPrice, 1e-9)

	s = CompleteGroupBooking(s, id)
	assert.Equal(t, GroupCompleted, s.Bookings[0].Status)
	assert.InDelta(t, 936, s.TotalRevenue, 1e-9)
	assert.Equal(t, 1, s.GroupsServed)
}

func TestConfirmWithoutDepositGoesToConfirmed(t *testing.T) {
	cfg := groupConfig()
	created := CreateGroupBooking(GroupBookingState{}, cfg, "Acme", 10, 200, 180)
	require.True(t, created.OK)

	s := ConfirmGroupBooking(created.State, created.Booking.ID, 500, 0)
	assert.Equal(t, GroupConfirmed, s.Bookings[0].Status)
}

func TestReconfirmIsNoOp(t *testing.T) {
	cfg := groupConfig()
	created := CreateGroupBooking(GroupBookingState{}, cfg, "Acme", 10, 200, 180)
	s := ConfirmGroupBooking(created.State, created.Booking.ID, 500, 100)

	again := ConfirmGroupBooking(s, created.Booking.ID, 999, 0)
	assert.Equal(t, s, again)
}

func TestCancelFromAnyNonTerminalState(t *testing.T) {
	cfg := groupConfig()

	created := CreateGroupBooking(GroupBookingState{}, cfg, "Acme", 10, 200, 180)
	s := CancelGroupBooking(created.State, created.Booking.ID)
	assert.Equal(t, GroupCancelled, s.Bookings[0].Status)

	// Cancelling again, or cancelling an unknown id, changes nothing.
	assert.Equal(t, s, CancelGroupBooking(s, created.Booking.ID))
	assert.Equal(t, s, CancelGroupBooking(s, uuid.New()))
}

func TestCompleteRequiresConfirmedState(t *testing.T) {
	cfg := groupConfig()
	created := CreateGroupBooking(GroupBookingState{}, cfg, "Acme", 10, 200, 180)

	// Still an inquiry: complete is a no-op.
	out := CompleteGroupBooking(created.State, created.Booking.ID)
	assert.Equal(t, created.State, out)
	assert.Zero(t, out.GroupsServed)
}

func TestReadViewsExcludeCancelled(t *testing.T) {
	cfg := groupConfig()
	var s GroupBookingState

	a := CreateGroupBooking(s, cfg, "A", 10, 200, 180)
	s = a.State
	b := CreateGroupBooking(s, cfg, "B", 12, 200, 180)
	s = b.State
	s = CancelGroupBooking(s, a.Booking.ID)

	active := ActiveGroupBookings(s)
	require.Len(t, active, 1)
	assert.Equal(t, "B", active[0].GroupName)

	onDay := GroupBookingsOn(s, 200)
	require.Len(t, onDay, 1)
	assert.Equal(t, "B", onDay[0].GroupName)
}
