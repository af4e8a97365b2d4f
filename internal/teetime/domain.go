// internal/teetime/domain.go
package teetime

import (
	"time"

	"github.com/google/uuid"
)

// Slot statuses, owned by the booking collaborator. This package only ever
// reads slots.
const (
	SlotAvailable = "available"
	SlotReserved  = "reserved"
	SlotCheckedIn = "checked_in"
	SlotBlocked   = "blocked"
)

// Group booking lifecycle statuses.
const (
	GroupInquiry     = "inquiry"
	GroupConfirmed   = "confirmed"
	GroupDepositPaid = "deposit_paid"
	GroupCancelled   = "cancelled"
	GroupCompleted   = "completed"
)

// TeeTimeSlot is a read-only view of one tee time from the slot feed.
type TeeTimeSlot struct {
	ID          uuid.UUID `json:"id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
}

// DynamicPricingConfig tunes the occupancy price response.
type DynamicPricingConfig struct {
	Enabled           bool    `json:"enabled"`
	MinMultiplier     float64 `json:"min_multiplier"`
	MaxMultiplier     float64 `json:"max_multiplier"`
	TargetBookingRate float64 `json:"target_booking_rate"`
}

// MemberPriorityConfig controls member versus public advance booking and
// the premium-slot reservation for members.
type MemberPriorityConfig struct {
	Enabled             bool `json:"enabled"`
	MemberAdvanceDays   int  `json:"member_advance_days"`
	PublicAdvanceDays   int  `json:"public_advance_days"`
	ReservedMemberSlots int  `json:"reserved_member_slots"`
	PremiumHourStart    int  `json:"premium_hour_start"`
	PremiumHourEnd      int  `json:"premium_hour_end"`
}

// Tournament is a scheduled (or completable) tournament.
type Tournament struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DayOfYear       int     `json:"day_of_year"`
	Duration        int     `json:"duration"`
	EntryFee        float64 `json:"entry_fee"`
	MaxParticipants int     `json:"max_participants"`
	PrestigeBonus   float64 `json:"prestige_bonus"`
	FullClosure     bool    `json:"full_closure"`
	ReservedSlots   int     `json:"reserved_slots"`
}

// TournamentState tracks the scheduled set, completed ids, and cumulative
// tournament business. A tournament id is never in both sets at once.
type TournamentState struct {
	Scheduled         []Tournament `json:"scheduled"`
	CompletedIDs      []string     `json:"completed_ids"`
	TotalRevenue      float64      `json:"total_revenue"`
	TotalParticipants int          `json:"total_participants"`
}

// GroupBookingConfig bounds group size and sets the volume discount and
// deposit fractions.
type GroupBookingConfig struct {
	Enabled            bool    `json:"enabled"`
	MinGroupSize       int     `json:"min_group_size"`
	MaxGroupSize       int     `json:"max_group_size"`
	DiscountPercentage float64 `json:"discount_percentage"`
	DepositPercentage  float64 `json:"deposit_percentage"`
}

// GroupFeeStructure is the per-person rate table used to price groups.
type GroupFeeStructure struct {
	WeekdayRate float64 `json:"weekday_rate"`
	WeekendRate float64 `json:"weekend_rate"`
}

// GroupBooking is one bulk reservation moving through the
// inquiry → confirmed/deposit_paid → completed lifecycle.
type GroupBooking struct {
	ID          uuid.UUID `json:"id"`
	GroupName   string    `json:"group_name"`
	GroupSize   int       `json:"group_size"`
	Day         int       `json:"day"`
	Status      string    `json:"status"`
	TotalPrice  float64   `json:"total_price"`
	DepositPaid float64   `json:"deposit_paid"`
	CreatedDay  int       `json:"created_day"`
}

// GroupBookingState is the whole group-booking subsystem state.
type GroupBookingState struct {
	Bookings     []GroupBooking `json:"bookings"`
	TotalRevenue float64        `json:"total_revenue"`
	GroupsServed int            `json:"groups_served"`
}

func (s TournamentState) clone() TournamentState {
	out := s
	out.Scheduled = append([]Tournament(nil), s.Scheduled...)
	out.CompletedIDs = append([]string(nil), s.CompletedIDs...)
	return out
}

func (s GroupBookingState) clone() GroupBookingState {
	out := s
	out.Bookings = append([]GroupBooking(nil), s.Bookings...)
	return out
}

// ScheduleState is the persisted tee-sheet aggregate: the tournament
// calendar and the group-booking book for one course.
type ScheduleState struct {
	Tournaments TournamentState   `json:"tournaments"`
	Groups      GroupBookingState `json:"groups"`
}

// CourseSetup fixes the policy knobs the tee-time service runs with.
type CourseSetup struct {
	TotalSlotsPerDay int                  `json:"total_slots_per_day"`
	Pricing          DynamicPricingConfig `json:"pricing"`
	MemberPriority   MemberPriorityConfig `json:"member_priority"`
	GroupPolicy      GroupBookingConfig   `json:"group_policy"`
	GroupFees        GroupFeeStructure    `json:"group_fees"`
}
