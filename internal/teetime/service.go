// internal/teetime/service.go
package teetime

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the interface for the tee-time service.
type Service interface {
	GetSchedule(ctx context.Context) (*ScheduleState, error)

	ScheduleTournament(ctx context.Context, t Tournament) (*ScheduleState, error)
	CancelTournament(ctx context.Context, id string) (*ScheduleState, error)
	CompleteTournament(ctx context.Context, id string, participants int) (*CompleteTournamentResult, error)
	AvailableSlots(ctx context.Context, day int) (int, error)

	QuoteGroup(ctx context.Context, size int, isWeekend bool) (*GroupQuote, error)
	CreateGroupBooking(ctx context.Context, name string, size, day, currentDay int) (*CreateGroupResult, error)
	ConfirmGroupBooking(ctx context.Context, id uuid.UUID, isWeekend bool) (*ScheduleState, error)
	CancelGroupBooking(ctx context.Context, id uuid.UUID) (*ScheduleState, error)
	CompleteGroupBooking(ctx context.Context, id uuid.UUID) (*ScheduleState, error)

	PriceQuote(ctx context.Context, slots []TeeTimeSlot) (*PricingQuote, error)
	BookingWindow(ctx context.Context, isMember bool, currentDay, targetDay int) (bool, error)
}

// PricingQuote is the dynamic-pricing readout for one day's tee sheet.
type PricingQuote struct {
	BookingRate     float64 `json:"booking_rate"`
	PriceMultiplier float64 `json:"price_multiplier"`
}
