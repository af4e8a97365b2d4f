// internal/prestige/implementation.go
package prestige

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"fairlinks/pkg/eventstore"
)

const aggregateType = "prestige"

// service implements the Service interface. The prestige record for one
// course is a single aggregate; commands load the snapshot, apply the
// pure engine function, and persist the whole new value with the event
// that produced it.
type service struct {
	eventStore *eventstore.EventStore
	courseID   uuid.UUID

	startScore float64
	greenFee   float64
}

// NewService creates a prestige service for one course. startScore and
// greenFee seed a fresh record when no state has been persisted yet.
func NewService(es *eventstore.EventStore, courseID uuid.UUID, startScore, greenFee float64) Service {
	return &service{
		eventStore: es,
		courseID:   courseID,
		startScore: startScore,
		greenFee:   greenFee,
	}
}

func (s *service) loadState(ctx context.Context) (PrestigeState, int, error) {
	snap, err := s.eventStore.LoadSnapshot(ctx, s.courseID)
	if err != nil {
		return PrestigeState{}, 0, fmt.Errorf("load prestige snapshot: %w", err)
	}
	if snap == nil {
		return NewPrestigeState(s.startScore, s.greenFee), 0, nil
	}

	var state PrestigeState
	if err := json.Unmarshal(snap.State, &state); err != nil {
		return PrestigeState{}, 0, fmt.Errorf("decode prestige snapshot: %w", err)
	}
	return state, snap.Version, nil
}

func (s *service) saveState(ctx context.Context, version int, eventType string, payload interface{}, state PrestigeState) error {
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

// apply is the shared command path: load, transform, journal, snapshot.
// Transforms that return the state unchanged journal nothing.
func (s *service) apply(ctx context.Context, eventType string, payload interface{}, fn func(PrestigeState) PrestigeState) (*PrestigeState, error) {
	state, version, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	next := fn(state)
	if statesEqual(state, next) {
		return &next, nil
	}

	if err := s.saveState(ctx, version, eventType, payload, next); err != nil {
		return nil, err
	}
	return &next, nil
}

func statesEqual(a, b PrestigeState) bool {
	aj, _ := json.Marshal(a)
	bj, _ := json.Marshal(b)
	return string(aj) == string(bj)
}

// GetState returns the current prestige record.
func (s *service) GetState(ctx context.Context) (*PrestigeState, error) {
	state, _, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// GetSummary returns the derived tier, star rating, and fee tolerance.
func (s *service) GetSummary(ctx context.Context) (*Summary, error) {
	state, _, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}
	stars := state.Stars()
	return &Summary{
		Score:       state.CurrentScore,
		Tier:        state.Tier(),
		Stars:       stars,
		StarDisplay: StarDisplay(stars),
		Tolerance:   state.Tolerance(),
	}, nil
}

// DemandQuote reports the demand multiplier a given fee would see against
// the current tier's tolerance.
func (s *service) DemandQuote(ctx context.Context, fee float64) (float64, error) {
	state, _, err := s.loadState(ctx)
	if err != nil {
		return 0, err
	}
	return DemandMultiplier(fee, state.Tolerance()), nil
}

// RecordArrival counts one golfer against today's stats.
func (s *service) RecordArrival(ctx context.Context, fee float64, didPay bool) (*PrestigeState, error) {
	payload := struct {
		Fee    float64 `json:"fee"`
		DidPay bool    `json:"did_pay"`
	}{fee, didPay}
	return s.apply(ctx, "GolferArrived", payload, func(st PrestigeState) PrestigeState {
		return ProcessGolferArrival(st, fee, didPay)
	})
}

// TickDay absorbs the day's terrain conditions into the historical record,
// converges the master score, and resets the daily counters.
func (s *service) TickDay(ctx context.Context, day int, conditions CurrentConditionsScore) (*PrestigeState, error) {
	payload := struct {
		Day        int                    `json:"day"`
		Conditions CurrentConditionsScore `json:"conditions"`
	}{day, conditions}
	return s.apply(ctx, "PrestigeDayTicked", payload, func(st PrestigeState) PrestigeState {
		health := conditions.Composite / 10
		st.Historical = UpdateHistoricalExcellence(st.Historical, DailySnapshot{
			Day:    day,
			Health: health,
			Rating: ConditionRating(health),
		})
		st = UpdatePrestigeScore(st, conditions)
		return ResetDailyStats(st)
	})
}

// UpgradeAmenity adds an amenity to the course.
func (s *service) UpgradeAmenity(ctx context.Context, amenityID string) (*PrestigeState, error) {
	payload := struct {
		AmenityID string `json:"amenity_id"`
	}{amenityID}
	return s.apply(ctx, "AmenityUpgraded", payload, func(st PrestigeState) PrestigeState {
		return UpgradeAmenity(st, amenityID)
	})
}

// GrantAward records an industry award.
func (s *service) GrantAward(ctx context.Context, awardID string) (*PrestigeState, error) {
	payload := struct {
		AwardID string `json:"award_id"`
	}{awardID}
	return s.apply(ctx, "AwardGranted", payload, func(st PrestigeState) PrestigeState {
		return AwardPrestige(st, awardID)
	})
}

// RevokeAward withdraws a previously granted award.
func (s *service) RevokeAward(ctx context.Context, awardID string) (*PrestigeState, error) {
	payload := struct {
		AwardID string `json:"award_id"`
	}{awardID}
	return s.apply(ctx, "AwardRevoked", payload, func(st PrestigeState) PrestigeState {
		return RevokeAward(st, awardID)
	})
}

// SetMembership updates the member roll size.
func (s *service) SetMembership(ctx context.Context, count int) (*PrestigeState, error) {
	payload := struct {
		Count int `json:"count"`
	}{count}
	return s.apply(ctx, "MembershipUpdated", payload, func(st PrestigeState) PrestigeState {
		return UpdateMembership(st, count)
	})
}

// SetWaitlist updates the membership waitlist size.
func (s *service) SetWaitlist(ctx context.Context, count int) (*PrestigeState, error) {
	payload := struct {
		Count int `json:"count"`
	}{count}
	return s.apply(ctx, "WaitlistUpdated", payload, func(st PrestigeState) PrestigeState {
		return UpdateWaitlist(st, count)
	})
}

// SetBookingWindow updates the member advance-booking window.
func (s *service) SetBookingWindow(ctx context.Context, days int) (*PrestigeState, error) {
	payload := struct {
		Days int `json:"days"`
	}{days}
	return s.apply(ctx, "BookingWindowUpdated", payload, func(st PrestigeState) PrestigeState {
		return UpdateBookingWindow(st, days)
	})
}

// SetDressCode updates the dress-code level.
func (s *service) SetDressCode(ctx context.Context, level string) (*PrestigeState, error) {
	payload := struct {
		Level string `json:"level"`
	}{level}
	return s.apply(ctx, "DressCodeUpdated", payload, func(st PrestigeState) PrestigeState {
		return UpdateDressCode(st, level)
	})
}
