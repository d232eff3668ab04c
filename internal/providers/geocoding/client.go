package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"skycast/internal/types"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api
// Sample request: https://geocoding-api.open-meteo.com/v1/search?name=London&count=5&language=en&format=json
const (
	baseSearchURL = "https://geocoding-api.open-meteo.com/v1/search"

	// resultCount bounds the candidate list returned per query.
	resultCount = 5
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// NewClient creates a geocoding client. Outbound requests are rate limited to
// stay within the public API's courtesy limits.
func NewClient(rps float64, burst int) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseSearchURL,
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Search resolves a free-text query to a ranked list of candidate locations.
// An empty or malformed response yields an empty candidate list, not an error.
func (c *Client) Search(ctx context.Context, query string) ([]types.Location, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("name", query)
	q.Set("count", fmt.Sprintf("%d", resultCount))
	q.Set("language", "en")
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		// Treated as "no candidates" rather than an error.
		return nil, nil
	}

	var apiResp SearchAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, nil
	}

	locations := make([]types.Location, 0, len(apiResp.Results))
	for _, r := range apiResp.Results {
		locations = append(locations, types.Location{
			Name:    r.Name,
			Country: r.Country,
			Admin1:  r.Admin1,
			Lat:     r.Latitude,
			Lon:     r.Longitude,
		})
	}
	return locations, nil
}

// SetBaseURL overrides the API endpoint; used by tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}
