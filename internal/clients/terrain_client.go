// internal/clients/terrain_client.go
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"fairlinks/internal/prestige"
)

// TerrainClient fetches the day's course-condition scores from the
// terrain collaborator service.
type TerrainClient struct {
	baseURL string
}

func NewTerrainClient(baseURL string) *TerrainClient {
	return &TerrainClient{baseURL: baseURL}
}

// GetConditions returns the condition sub-scores for the given day.
func (c *TerrainClient) GetConditions(ctx context.Context, day int) (*prestige.CurrentConditionsScore, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/conditions/%d", c.baseURL, day), nil)
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

	var conditions prestige.CurrentConditionsScore
	if err := json.NewDecoder(resp.Body).Decode(&conditions); err != nil {
		return nil, err
	}

	return &conditions, nil
}
