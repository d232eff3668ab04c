package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://open-meteo.com/en/docs/air-quality-api
// Sample request: https://air-quality-api.open-meteo.com/v1/air-quality?latitude=51.5074&longitude=-0.1278&current=european_aqi
const (
	baseAirQualityURL = "https://air-quality-api.open-meteo.com/v1/air-quality"
)

type AirQualityClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewAirQualityClient() *AirQualityClient {
	return &AirQualityClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseAirQualityURL,
	}
}

// GetAirQuality fetches the current European AQI for the given coordinate.
// Callers treat any error as "no AQI data"; it is never surfaced to the user.
func (c *AirQualityClient) GetAirQuality(ctx context.Context, latitude, longitude float64) (*AirQualityAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("current", "european_aqi")
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
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp AirQualityAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}

// SetBaseURL overrides the API endpoint; used by tests.
func (c *AirQualityClient) SetBaseURL(u string) {
	c.baseURL = u
}
