package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=51.5074&longitude=-0.1278&current=temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,cloud_cover,wind_speed_10m&hourly=temperature_2m,weather_code&daily=weather_code,temperature_2m_max,temperature_2m_min&timezone=auto
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"
)

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	circuit    *gobreaker.CircuitBreaker
}

func NewForecastClient() *ForecastClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo-forecast",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &ForecastClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseForecastURL,
		circuit:    cb,
	}
}

// GetForecast fetches the forecast payload for the given coordinate. The
// response is schema-validated before it is returned.
func (c *ForecastClient) GetForecast(ctx context.Context, latitude, longitude float64) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	currentVars := []string{
		"temperature_2m",
		"relative_humidity_2m",
		"apparent_temperature",
		"weather_code",
		"cloud_cover",
		"wind_speed_10m",
	}

	hourlyVars := []string{
		"temperature_2m",
		"weather_code",
	}

	dailyVars := []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("current", strings.Join(currentVars, ","))
	q.Set("hourly", strings.Join(hourlyVars, ","))
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("timezone", "auto")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	result, err := c.circuit.Execute(func() (interface{}, error) {
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

		var apiResp ForecastAPIResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &apiResp, nil
	})
	if err != nil {
		return nil, err
	}

	apiResp := result.(*ForecastAPIResponse)
	if err := apiResp.Validate(); err != nil {
		return nil, fmt.Errorf("invalid forecast payload: %w", err)
	}

	return apiResp, nil
}

// SetBaseURL overrides the API endpoint; used by tests.
func (c *ForecastClient) SetBaseURL(u string) {
	c.baseURL = u
}
