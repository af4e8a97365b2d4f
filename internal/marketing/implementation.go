// internal/marketing/implementation.go
package marketing

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"fairlinks/pkg/eventstore"
)

// service implements the Service interface. The campaign ledger for one
// course is a single aggregate: every command loads the snapshot, applies
// the pure engine function, and persists the whole new value with the
// event that produced it.
type service struct {
	eventStore *eventstore.EventStore
	courseID   uuid.UUID

	baselineBookings float64
	baselineRevenue  float64
}

// NewService creates a marketing service for one course. The baselines
// seed a fresh ledger when no state has been persisted yet.
func NewService(es *eventstore.EventStore, courseID uuid.UUID, baselineBookings, baselineRevenue float64) Service {
	return &service{
		eventStore:       es,
		courseID:         courseID,
		baselineBookings: baselineBookings,
		baselineRevenue:  baselineRevenue,
	}
}

const aggregateType = "marketing"

func (s *service) loadState(ctx context.Context) (MarketingState, int, error) {
	snap, err := s.eventStore.LoadSnapshot(ctx, s.courseID)
	if err != nil {
		return MarketingState{}, 0, fmt.Errorf("load marketing snapshot: %w", err)
	}
	if snap == nil {
		return NewMarketingState(s.baselineBookings, s.baselineRevenue), 0, nil
	}

	var state MarketingState
	if err := json.Unmarshal(snap.State, &state); err != nil {
		return MarketingState{}, 0, fmt.Errorf("decode marketing snapshot: %w", err)
	}
	return state, snap.Version, nil
}

func (s *service) saveState(ctx context.Context, version int, eventType string, payload interface{}, state MarketingState) error {
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

// GetCatalog returns the campaign definitions on offer.
func (s *service) GetCatalog(ctx context.Context) ([]CampaignDefinition, error) {
	return Catalog(), nil
}

// GetState returns the current campaign ledger.
func (s *service) GetState(ctx context.Context) (*MarketingState, error) {
	state, _, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// CheckStart reports whether a campaign could start right now, without
// starting it.
func (s *service) CheckStart(ctx context.Context, campaignID string, availableFunds float64) (*CanStartResult, error) {
	state, _, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}
	res := CanStart(state, campaignID, availableFunds)
	return &res, nil
}

// StartCampaign launches a campaign and journals the launch.
func (s *service) StartCampaign(ctx context.Context, campaignID string, day int, durationDays int, availableFunds float64) (*StartResult, error) {
	state, version, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	if check := CanStart(state, campaignID, availableFunds); !check.CanStart {
		return nil, fmt.Errorf("cannot start campaign: %s", check.Reason)
	}

	res := Start(state, campaignID, day, durationDays)
	if res == nil {
		return nil, fmt.Errorf("unknown campaign %q", campaignID)
	}

	payload := struct {
		CampaignID string  `json:"campaign_id"`
		Day        int     `json:"day"`
		Duration   int     `json:"duration_days"`
		SetupCost  float64 `json:"setup_cost"`
	}{campaignID, day, durationDays, res.SetupCost}

	if err := s.saveState(ctx, version, "CampaignStarted", payload, res.State); err != nil {
		return nil, err
	}
	return res, nil
}

// StopCampaign ends a running campaign early. Stopping a campaign that
// is not running journals nothing.
func (s *service) StopCampaign(ctx context.Context, campaignID string, day int) (*MarketingState, error) {
	state, version, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	next := Stop(state, campaignID, day)
	if len(next.Active) == len(state.Active) {
		return &next, nil
	}

	payload := struct {
		CampaignID string `json:"campaign_id"`
		Day        int    `json:"day"`
	}{campaignID, day}

	if err := s.saveState(ctx, version, "CampaignStopped", payload, next); err != nil {
		return nil, err
	}
	return &next, nil
}

// TickDay advances the ledger one day, accruing costs and completing
// campaigns whose run ends today.
func (s *service) TickDay(ctx context.Context, day int, dailyBookings, dailyRevenue float64) (*TickResult, error) {
	state, version, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	res := Tick(state, day, dailyBookings, dailyRevenue)

	payload := struct {
		Day                int      `json:"day"`
		DailyCost          float64  `json:"daily_cost"`
		CompletedCampaigns []string `json:"completed_campaigns"`
	}{day, res.DailyCost, res.CompletedNames}

	if err := s.saveState(ctx, version, "MarketingDayTicked", payload, res.State); err != nil {
		return nil, err
	}
	return &res, nil
}
