// internal/teetime/pricing.go
package teetime

import "sort"

// pricingSlope converts occupancy deviation into price response: each 10
// points of booking rate above target add 20% before clamping.
const pricingSlope = 2.0

// DynamicMultiplier returns the price multiplier for the current booking
// rate. It is a pure function of its two inputs: 1.0 when pricing is
// disabled, otherwise a linear response to (rate − target) clamped into
// [MinMultiplier, MaxMultiplier].
func DynamicMultiplier(cfg DynamicPricingConfig, bookingRate float64) float64 {
	if !cfg.Enabled {
		return 1.0
	}
	m := 1.0 + pricingSlope*(bookingRate-cfg.TargetBookingRate)
	if m < cfg.MinMultiplier {
		return cfg.MinMultiplier
	}
	if m > cfg.MaxMultiplier {
		return cfg.MaxMultiplier
	}
	return m
}

// BookingRate is the fraction of the day's slots that are reserved or
// checked in; 0 when there are no slots.
func BookingRate(slots []TeeTimeSlot) float64 {
	if len(slots) == 0 {
		return 0
	}
	booked := 0
	for _, s := range slots {
		if s.Status == SlotReserved || s.Status == SlotCheckedIn {
			booked++
		}
	}
	return float64(booked) / float64(len(slots))
}

// CanBookAsMember reports whether a member may book targetDay from
// currentDay: the gap must fit inside the member advance window.
func CanBookAsMember(cfg MemberPriorityConfig, currentDay, targetDay int) bool {
	return targetDay-currentDay <= cfg.MemberAdvanceDays
}

// CanBookAsPublic reports whether the public may book targetDay from
// currentDay. The public window is shorter than the member window.
func CanBookAsPublic(cfg MemberPriorityConfig, currentDay, targetDay int) bool {
	return targetDay-currentDay <= cfg.PublicAdvanceDays
}

// IsPremiumSlot reports whether the hour falls in the prime morning range.
func IsPremiumSlot(cfg MemberPriorityConfig, hour int) bool {
	return hour >= cfg.PremiumHourStart && hour < cfg.PremiumHourEnd
}

// IsMemberReservedSlot reports whether this slot is currently held for
// members. A slot is reserved only while the request sits outside the
// public booking window, and only for the first ReservedMemberSlots
// available premium slots of the day in chronological order; premium slots
// beyond that rank are open to everyone.
func IsMemberReservedSlot(slot TeeTimeSlot, cfg MemberPriorityConfig, allSlotsForDay []TeeTimeSlot, currentDay, targetDay int) bool {
	if !cfg.Enabled || cfg.ReservedMemberSlots <= 0 {
		return false
	}
	if slot.Status != SlotAvailable || !IsPremiumSlot(cfg, slot.ScheduledAt.Hour()) {
		return false
	}
	if CanBookAsPublic(cfg, currentDay, targetDay) {
		return false
	}

	premium := make([]TeeTimeSlot, 0, len(allSlotsForDay))
	for _, s := range allSlotsForDay {
		if s.Status == SlotAvailable && IsPremiumSlot(cfg, s.ScheduledAt.Hour()) {
			premium = append(premium, s)
		}
	}
	sort.Slice(premium, func(i, j int) bool {
		return premium[i].ScheduledAt.Before(premium[j].ScheduledAt)
	})

	for rank, s := range premium {
		if s.ID == slot.ID {
			return rank < cfg.ReservedMemberSlots
		}
	}
	return false
}
