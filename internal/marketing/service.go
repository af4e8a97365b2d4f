// internal/marketing/service.go
package marketing

import (
	"context"
)

// Service defines the interface for the marketing service.
type Service interface {
	GetCatalog(ctx context.Context) ([]CampaignDefinition, error)
	GetState(ctx context.Context) (*MarketingState, error)
	CheckStart(ctx context.Context, campaignID string, availableFunds float64) (*CanStartResult, error)
	StartCampaign(ctx context.Context, campaignID string, day int, durationDays int, availableFunds float64) (*StartResult, error)
	StopCampaign(ctx context.Context, campaignID string, day int) (*MarketingState, error)
	TickDay(ctx context.Context, day int, dailyBookings, dailyRevenue float64) (*TickResult, error)
}
