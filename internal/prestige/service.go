// internal/prestige/service.go
package prestige

import (
	"context"
)

// Service defines the interface for the prestige service.
type Service interface {
	GetState(ctx context.Context) (*PrestigeState, error)
	GetSummary(ctx context.Context) (*Summary, error)
	DemandQuote(ctx context.Context, fee float64) (float64, error)

	RecordArrival(ctx context.Context, fee float64, didPay bool) (*PrestigeState, error)
	TickDay(ctx context.Context, day int, conditions CurrentConditionsScore) (*PrestigeState, error)

	UpgradeAmenity(ctx context.Context, amenityID string) (*PrestigeState, error)
	GrantAward(ctx context.Context, awardID string) (*PrestigeState, error)
	RevokeAward(ctx context.Context, awardID string) (*PrestigeState, error)

	SetMembership(ctx context.Context, count int) (*PrestigeState, error)
	SetWaitlist(ctx context.Context, count int) (*PrestigeState, error)
	SetBookingWindow(ctx context.Context, days int) (*PrestigeState, error)
	SetDressCode(ctx context.Context, level string) (*PrestigeState, error)
}

// Summary is the front-of-house readout of the course's standing.
type Summary struct {
	Score       float64      `json:"score"`
	Tier        string       `json:"tier"`
	Stars       float64      `json:"stars"`
	StarDisplay string       `json:"star_display"`
	Tolerance   FeeTolerance `json:"tolerance"`
}
