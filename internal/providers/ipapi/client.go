package ipapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"skycast/internal/types"
)

// API Docs: https://ip-api.com/docs/api:json
// Sample request: http://ip-api.com/json/
const (
	baseURL = "http://ip-api.com/json/"
)

type positionAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Client resolves the device's approximate position from its public IP.
// It is a single best-effort call; callers bound it with a context timeout.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

// CurrentPosition returns the device's coordinate. The result is never
// reverse-geocoded to a place name; callers label it with a placeholder.
func (c *Client) CurrentPosition(ctx context.Context) (types.Coords, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return types.Coords{}, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.Coords{}, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return types.Coords{}, fmt.Errorf("fetch returned status %d", resp.StatusCode)
	}

	var apiResp positionAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return types.Coords{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if apiResp.Status != "success" {
		return types.Coords{}, fmt.Errorf("position lookup failed: %s", apiResp.Message)
	}

	return types.NewCoords(apiResp.Lat, apiResp.Lon), nil
}

// SetBaseURL overrides the API endpoint; used by tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}
