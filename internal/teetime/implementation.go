// internal/teetime/implementation.go
package teetime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"fairlinks/pkg/eventstore"
)

const aggregateType = "tee_sheet"

// service implements the Service interface. The tee sheet for one course
// is a single aggregate; commands load the snapshot, apply the pure
// engine function, and persist the whole new value with the event that
// produced it.
type service struct {
	eventStore *eventstore.EventStore
	courseID   uuid.UUID
	setup      CourseSetup
}

// NewService creates a tee-time service for one course with a fixed
// policy setup.
func NewService(es *eventstore.EventStore, courseID uuid.UUID, setup CourseSetup) Service {
	return &service{
		eventStore: es,
		courseID:   courseID,
		setup:      setup,
	}
}

func (s *service) loadState(ctx context.Context) (ScheduleState, int, error) {
	snap, err := s.eventStore.LoadSnapshot(ctx, s.courseID)
	if err != nil {
		return ScheduleState{}, 0, fmt.Errorf("load tee-sheet snapshot: %w", err)
	}
	if snap == nil {
		return ScheduleState{}, 0, nil
	}

	var state ScheduleState
	if err := json.Unmarshal(snap.State, &state); err != nil {
		return ScheduleState{}, 0, fmt.Errorf("decode tee-sheet snapshot: %w", err)
	}
	return state, snap.Version, nil
}

func (s *service) saveState(ctx context.Context, version int, eventType string, payload interface{}, state ScheduleState) error {
	eventData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event data: %w", err)
	}

	event := eventstore.Event{
		AggregateID:   s.courseID,
		AggregateType: aggregateType,
		EventType:     eventType,
		EventData:     eventData,
	}
	if err := s.eventStore.AppendEvents(ctx, s.courseID, aggregateType, version, []eventstore.Event{event}); err != nil {
		return fmt.Errorf("append event: %w", err)
	}

	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	return s.eventStore.SaveSnapshot(ctx, eventstore.Snapshot{
		AggregateID:   s.courseID,
		AggregateType: aggregateType,
		Version:       version + 1,
		State:         stateJSON,
	})
}

// GetSchedule returns the current tee-sheet aggregate.
func (s *service) GetSchedule(ctx context.Context) (*ScheduleState, error) {
	state, _, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// ScheduleTournament adds a tournament to the calendar. Scheduling an id
// already on the calendar or already completed journals nothing.
func (s *service) ScheduleTournament(ctx context.Context, t Tournament) (*ScheduleState, error) {
	state, version, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	next := state
	next.Tournaments = ScheduleTournament(state.Tournaments, t)
	if len(next.Tournaments.Scheduled) == len(state.Tournaments.Scheduled) {
		return &next, nil
	}

	if err := s.saveState(ctx, version, "TournamentScheduled", t, next); err != nil {
		return nil, err
	}
	return &next, nil
}

// CancelTournament removes a scheduled tournament.
func (s *service) CancelTournament(ctx context.Context, id string) (*ScheduleState, error) {
	state, version, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	next := state
	next.Tournaments = CancelTournament(state.Tournaments, id)
	if len(next.Tournaments.Scheduled) == len(state.Tournaments.Scheduled) {
		return &next, nil
	}

	payload := struct {
		ID string `json:"id"`
	}{id}
	if err := s.saveState(ctx, version, "TournamentCancelled", payload, next); err != nil {
		return nil, err
	}
	return &next, nil
}

// CompleteTournament settles a tournament's revenue and prestige award.
func (s *service) CompleteTournament(ctx context.Context, id string, participants int) (*CompleteTournamentResult, error) {
	state, version, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	res := CompleteTournament(state.Tournaments, id, participants)
	if !res.Completed {
		return nil, fmt.Errorf("tournament %q is not scheduled", id)
	}

	next := state
	next.Tournaments = res.State

	payload := struct {
		ID            string  `json:"id"`
		Participants  int     `json:"participants"`
		Revenue       float64 `json:"revenue"`
		PrestigeDelta float64 `json:"prestige_delta"`
	}{id, participants, res.Revenue, res.PrestigeDelta}
	if err := s.saveState(ctx, version, "TournamentCompleted", payload, next); err != nil {
		return nil, err
	}
	return &res, nil
}

// AvailableSlots reports how many public slots survive tournament
// closures on the given day.
func (s *service) AvailableSlots(ctx context.Context, day int) (int, error) {
	state, _, err := s.loadState(ctx)
	if err != nil {
		return 0, err
	}
	return AvailableSlotsOn(state.Tournaments, day, s.setup.TotalSlotsPerDay), nil
}

// QuoteGroup prices a group of the given size without booking it.
func (s *service) QuoteGroup(ctx context.Context, size int, isWeekend bool) (*GroupQuote, error) {
	quote := GroupTotal(s.setup.GroupPolicy, s.setup.GroupFees, size, isWeekend)
	return &quote, nil
}

// CreateGroupBooking opens a group inquiry. Size-bound rejections come
// back in the result, not as errors.
func (s *service) CreateGroupBooking(ctx context.Context, name string, size, day, currentDay int) (*CreateGroupResult, error) {
	state, version, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	res := CreateGroupBooking(state.Groups, s.setup.GroupPolicy, name, size, day, currentDay)
	if !res.OK {
		return &res, nil
	}

	next := state
	next.Groups = res.State

	payload := struct {
		ID        uuid.UUID `json:"id"`
		GroupName string    `json:"group_name"`
		GroupSize int       `json:"group_size"`
		Day       int       `json:"day"`
	}{res.Booking.ID, name, size, day}
	if err := s.saveState(ctx, version, "GroupInquiryCreated", payload, next); err != nil {
		return nil, err
	}
	return &res, nil
}

// ConfirmGroupBooking confirms an inquiry, pricing it with the current
// fee table and taking the deposit if the policy requires one.
func (s *service) ConfirmGroupBooking(ctx context.Context, id uuid.UUID, isWeekend bool) (*ScheduleState, error) {
	state, version, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	var booking *GroupBooking
	for i := range state.Groups.Bookings {
		if state.Groups.Bookings[i].ID == id {
			booking = &state.Groups.Bookings[i]
			break
		}
	}
	if booking == nil {
		return nil, fmt.Errorf("group booking %s not found", id)
	}

	quote := GroupTotal(s.setup.GroupPolicy, s.setup.GroupFees, booking.GroupSize, isWeekend)

	next := state
	next.Groups = ConfirmGroupBooking(state.Groups, id, quote.Total, quote.Deposit)
	if groupStatus(next.Groups, id) == groupStatus(state.Groups, id) {
		return &next, nil
	}

	payload := struct {
		ID      uuid.UUID `json:"id"`
		Total   float64   `json:"total"`
		Deposit float64   `json:"deposit"`
	}{id, quote.Total, quote.Deposit}
	if err := s.saveState(ctx, version, "GroupBookingConfirmed", payload, next); err != nil {
		return nil, err
	}
	return &next, nil
}

// groupStatus reports a booking's current status, or "" when the id is
// not on the sheet.
func groupStatus(s GroupBookingState, id uuid.UUID) string {
	for _, b := range s.Bookings {
		if b.ID == id {
			return b.Status
		}
	}
	return ""
}

// CancelGroupBooking cancels any non-terminal group booking. Cancelling
// an unknown or terminal booking journals nothing.
func (s *service) CancelGroupBooking(ctx context.Context, id uuid.UUID) (*ScheduleState, error) {
	state, version, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	next := state
	next.Groups = CancelGroupBooking(state.Groups, id)
	if groupStatus(next.Groups, id) == groupStatus(state.Groups, id) {
		return &next, nil
	}

	payload := struct {
		ID uuid.UUID `json:"id"`
	}{id}
	if err := s.saveState(ctx, version, "GroupBookingCancelled", payload, next); err != nil {
		return nil, err
	}
	return &next, nil
}

// CompleteGroupBooking settles a confirmed booking after play. Completing
// a booking that is not confirmed or deposit_paid journals nothing.
func (s *service) CompleteGroupBooking(ctx context.Context, id uuid.UUID) (*ScheduleState, error) {
	state, version, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	next := state
	next.Groups = CompleteGroupBooking(state.Groups, id)
	if groupStatus(next.Groups, id) == groupStatus(state.Groups, id) {
		return &next, nil
	}

	payload := struct {
		ID uuid.UUID `json:"id"`
	}{id}
	if err := s.saveState(ctx, version, "GroupBookingCompleted", payload, next); err != nil {
		return nil, err
	}
	return &next, nil
}

// PriceQuote computes the occupancy-driven price multiplier for a day's
// slot feed. Read-only; nothing is journaled.
func (s *service) PriceQuote(ctx context.Context, slots []TeeTimeSlot) (*PricingQuote, error) {
	rate := BookingRate(slots)
	return &PricingQuote{
		BookingRate:     rate,
		PriceMultiplier: DynamicMultiplier(s.setup.Pricing, rate),
	}, nil
}

// BookingWindow reports whether a booking for targetDay may be placed
// today under the member-priority policy.
func (s *service) BookingWindow(ctx context.Context, isMember bool, currentDay, targetDay int) (bool, error) {
	if isMember {
		return CanBookAsMember(s.setup.MemberPriority, currentDay, targetDay), nil
	}
	return CanBookAsPublic(s.setup.MemberPriority, currentDay, targetDay), nil
}
