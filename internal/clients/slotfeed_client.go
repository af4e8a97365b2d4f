// internal/clients/slotfeed_client.go
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"fairlinks/internal/teetime"
)

// SlotFeedClient fetches a day's tee sheet from the booking front end.
type SlotFeedClient struct {
	baseURL string
}

func NewSlotFeedClient(baseURL string) *SlotFeedClient {
	return &SlotFeedClient{baseURL: baseURL}
}

// GetSlots returns every slot on the sheet for the given day, with its
// current booking status.
func (c *SlotFeedClient) GetSlots(ctx context.Context, day int) ([]teetime.TeeTimeSlot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/sheet/%d", c.baseURL, day), nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var slots []teetime.TeeTimeSlot
	if err := json.NewDecoder(resp.Body).Decode(&slots); err != nil {
		return nil, err
	}

	return slots, nil
}
