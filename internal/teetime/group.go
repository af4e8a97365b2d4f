// internal/teetime/group.go
package teetime

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// slotsPerGroupUnit is the foursome: one tee-time slot seats four players.
const slotsPerGroupUnit = 4

// GroupQuote prices a group before any booking exists.
type GroupQuote struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
	Deposit  float64 `json:"deposit"`
}

// CreateGroupResult reports the outcome of a creation attempt. Size-bound
// violations are rejections with a display-ready reason, never an insert.
type CreateGroupResult struct {
	State   GroupBookingState `json:"state"`
	Booking *GroupBooking     `json:"booking,omitempty"`
	OK      bool              `json:"ok"`
	Reason  string            `json:"reason,omitempty"`
}

// GroupDiscount is zero unless group booking is enabled and the party
// qualifies by size; otherwise the configured percentage of the subtotal.
func GroupDiscount(cfg GroupBookingConfig, size int, subtotal float64) float64 {
	if !cfg.Enabled || size < cfg.MinGroupSize {
		return 0
	}
	return subtotal * cfg.DiscountPercentage / 100
}

// GroupTotal prices a group: per-person weekend/weekday rate times size,
// minus the volume discount, with the deposit as a fixed fraction of the
// discounted total.
func GroupTotal(cfg GroupBookingConfig, fees GroupFeeStructure, size int, isWeekend bool) GroupQuote {
	rate := fees.WeekdayRate
	if isWeekend {
		rate = fees.WeekendRate
	}
	subtotal := rate * float64(size)
	discount := GroupDiscount(cfg, size, subtotal)
	total := subtotal - discount
	return GroupQuote{
		Subtotal: subtotal,
		Discount: discount,
		Total:    total,
		Deposit:  total * cfg.DepositPercentage / 100,
	}
}

// SlotsNeeded is the number of tee-time slots a group occupies.
func SlotsNeeded(size int) int {
	return int(math.Ceil(float64(size) / slotsPerGroupUnit))
}

// CreateGroupBooking validates the group size and inserts an inquiry.
// Groups outside [MinGroupSize, MaxGroupSize] are rejected and never
// stored.
func CreateGroupBooking(s GroupBookingState, cfg GroupBookingConfig, name string, size, day, currentDay int) CreateGroupResult {
	if size > cfg.MaxGroupSize {
		return CreateGroupResult{
			State:  s,
			Reason: fmt.Sprintf("Group of %d exceeds the maximum of %d players", size, cfg.MaxGroupSize),
		}
	}
	if size < cfg.MinGroupSize {
		return CreateGroupResult{
			State:  s,
			Reason: fmt.Sprintf("Group of %d is below the minimum of %d players", size, cfg.MinGroupSize),
		}
	}

	out := s.clone()
	booking := GroupBooking{
		ID:         uuid.New(),
		GroupName:  name,
		GroupSize:  size,
		Day:        day,
		Status:     GroupInquiry,
		CreatedDay: currentDay,
	}
	out.Bookings = append(out.Bookings, booking)
	return CreateGroupResult{State: out, Booking: &booking, OK: true}
}

// ConfirmGroupBooking moves an inquiry forward, recording the agreed total:
// to deposit_paid when money came in, to confirmed otherwise. Confirming a
// booking that is missing or already past inquiry is a no-op.
func ConfirmGroupBooking(s GroupBookingState, id uuid.UUID, total, depositPaid float64) GroupBookingState {
	for i, b := range s.Bookings {
		if b.ID != id || b.Status != GroupInquiry {
			continue
		}
		out := s.clone()
		out.Bookings[i].TotalPrice = total
		out.Bookings[i].DepositPaid = depositPaid
		if depositPaid > 0 {
			out.Bookings[i].Status = GroupDepositPaid
		} else {
			out.Bookings[i].Status = GroupConfirmed
		}
		return out
	}
	return s
}

// CancelGroupBooking cancels any non-terminal booking; cancelling a
// missing or terminal booking returns the state unchanged.
func CancelGroupBooking(s GroupBookingState, id uuid.UUID) GroupBookingState {
	for i, b := range s.Bookings {
		if b.ID != id || b.Status == GroupCancelled || b.Status == GroupCompleted {
			continue
		}
		out := s.clone()
		out.Bookings[i].Status = GroupCancelled
		return out
	}
	return s
}

// CompleteGroupBooking closes out a confirmed booking after the group has
// played, accruing its revenue into the aggregates. Only confirmed or
// deposit_paid bookings complete.
func CompleteGroupBooking(s GroupBookingState, id uuid.UUID) GroupBookingState {
	for i, b := range s.Bookings {
		if b.ID != id || (b.Status != GroupConfirmed && b.Status != GroupDepositPaid) {
			continue
		}
		out := s.clone()
		out.Bookings[i].Status = GroupCompleted
		out.TotalRevenue += b.TotalPrice
		out.GroupsServed++
		return out
	}
	return s
}

// ActiveGroupBookings is the read view of the book: everything except
// cancelled bookings.
func ActiveGroupBookings(s GroupBookingState) []GroupBooking {
	out := make([]GroupBooking, 0, len(s.Bookings))
	for _, b := range s.Bookings {
		if b.Status != GroupCancelled {
			out = append(out, b)
		}
	}
	return out
}

// GroupBookingsOn lists non-cancelled bookings for one day.
func GroupBookingsOn(s GroupBookingState, day int) []GroupBooking {
	out := make([]GroupBooking, 0, len(s.Bookings))
	for _, b := range s.Bookings {
		if b.Day == day && b.Status != GroupCancelled {
			out = append(out, b)
		}
	}
	return out
}
