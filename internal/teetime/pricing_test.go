// internal/teetime/pricing_test.go
package teetime

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func pricingConfig() DynamicPricingConfig {
	return DynamicPricingConfig{
		Enabled:           true,
		MinMultiplier:     0.7,
		MaxMultiplier:     1.5,
		TargetBookingRate: 0.6,
	}
}

func TestDynamicMultiplierDisabled(t *testing.T) {
	cfg := pricingConfig()
	cfg.Enabled = false
	assert.Equal(t, 1.0, DynamicMultiplier(cfg, 0.95))
}

func TestDynamicMultiplierLinearResponse(t *testing.T) {
	cfg := pricingConfig()
	assert.InDelta(t, 1.0, DynamicMultiplier(cfg, 0.6), 1e-9)
	assert.InDelta(t, 1.2, DynamicMultiplier(cfg, 0.7), 1e-9)
	assert.InDelta(t, 0.8, DynamicMultiplier(cfg, 0.5), 1e-9)
}

func TestDynamicMultiplierClamps(t *testing.T) {
	cfg := pricingConfig()
	assert.Equal(t, 1.5, DynamicMultiplier(cfg, 1.0))
	assert.Equal(t, 0.7, DynamicMultiplier(cfg, 0.0))
}

func TestDynamicMultiplierProperties(t *testing.T) {
	cfg := pricingConfig()
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.Float64Range(0, 1).Draw(t, "lo")
		hi := rapid.Float64Range(lo, 1).Draw(t, "hi")

		mLo := DynamicMultiplier(cfg, lo)
		mHi := DynamicMultiplier(cfg, hi)

		// Non-decreasing in occupancy and always inside the clamp band.
		assert.LessOrEqual(t, mLo, mHi)
		assert.GreaterOrEqual(t, mLo, cfg.MinMultiplier)
		assert.LessOrEqual(t, mHi, cfg.MaxMultiplier)
	})
}

func slotAt(hour, minute int, status string) TeeTimeSlot {
	return TeeTimeSlot{
		ID:          uuid.New(),
		ScheduledAt: time.Date(2026, time.June, 15, hour, minute, 0, 0, time.UTC),
		Status:      status,
	}
}

func TestBookingRate(t *testing.T) {
	assert.Equal(t, 0.0, BookingRate(nil))

	slots := []TeeTimeSlot{
		slotAt(7, 0, SlotReserved),
		slotAt(7, 10, SlotCheckedIn),
		slotAt(7, 20, SlotAvailable),
		slotAt(7, 30, SlotBlocked),
	}
	assert.InDelta(t, 0.5, BookingRate(slots), 1e-9)
}

func memberConfig() MemberPriorityConfig {
	return MemberPriorityConfig{
		Enabled:             true,
		MemberAdvanceDays:   14,
		PublicAdvanceDays:   7,
		ReservedMemberSlots: 2,
		PremiumHourStart:    7,
		PremiumHourEnd:      10,
	}
}

func TestBookingWindows(t *testing.T) {
	cfg := memberConfig()

	assert.True(t, CanBookAsMember(cfg, 100, 114))
	assert.False(t, CanBookAsMember(cfg, 100, 115))
	assert.True(t, CanBookAsPublic(cfg, 100, 107))
	assert.False(t, CanBookAsPublic(cfg, 100, 108))
}

func TestIsPremiumSlot(t *testing.T) {
	cfg := memberConfig()
	assert.False(t, IsPremiumSlot(cfg, 6))
	assert.True(t, IsPremiumSlot(cfg, 7))
	assert.True(t, IsPremiumSlot(cfg, 9))
	assert.False(t, IsPremiumSlot(cfg, 10))
}

func TestIsMemberReservedSlotRankLimited(t *testing.T) {
	cfg := memberConfig()

	first := slotAt(7, 0, SlotAvailable)
	second := slotAt(7, 10, SlotAvailable)
	third := slotAt(8, 0, SlotAvailable)
	afternoon := slotAt(14, 0, SlotAvailable)
	day := []TeeTimeSlot{third, first, afternoon, second} // deliberately unsorted

	// Day 110 booked from day 100: inside the member window, outside the
	// public window, so the first two premium slots are held back.
	assert.True(t, IsMemberReservedSlot(first, cfg, day, 100, 110))
	assert.True(t, IsMemberReservedSlot(second, cfg, day, 100, 110))
	assert.False(t, IsMemberReservedSlot(third, cfg, day, 100, 110))
	assert.False(t, IsMemberReservedSlot(afternoon, cfg, day, 100, 110))
}

func TestIsMemberReservedSlotOpensWithPublicWindow(t *testing.T) {
	cfg := memberConfig()
	first := slotAt(7, 0, SlotAvailable)
	day := []TeeTimeSlot{first}

	// Once the public can book the day, nothing is held back.
	assert.False(t, IsMemberReservedSlot(first, cfg, day, 100, 105))
}

func TestIsMemberReservedSlotIgnoresUnavailableAndDisabled(t *testing.T) {
	cfg := memberConfig()
	reserved := slotAt(7, 0, SlotReserved)
	day := []TeeTimeSlot{reserved}
	assert.False(t, IsMemberReservedSlot(reserved, cfg, day, 100, 110))

	cfg.Enabled = false
	open := slotAt(7, 0, SlotAvailable)
	assert.False(t, IsMemberReservedSlot(open, cfg, []TeeTimeSlot{open}, 100, 110))
}

func TestIsMemberReservedSlotRankSkipsBookedSlots(t *testing.T) {
	cfg := memberConfig()
	cfg.ReservedMemberSlots = 1

	booked := slotAt(7, 0, SlotReserved)
	open := slotAt(7, 10, SlotAvailable)
	day := []TeeTimeSlot{booked, open}

	// The booked 7:00 does not consume the reserved rank; 7:10 is first
	// among available premium slots.
	assert.True(t, IsMemberReservedSlot(open, cfg, day, 100, 110))
}
