package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const validForecastBody = `{
	"latitude": 51.5,
	"longitude": -0.125,
	"timezone": "Europe/London",
	"current": {
		"time": "2026-03-10T14:00",
		"temperature_2m": 17.5,
		"relative_humidity_2m": 62,
		"apparent_temperature": 16.8,
		"weather_code": 2,
		"cloud_cover": 75,
		"wind_speed_10m": 11.2
	},
	"hourly": {
		"time": ["2026-03-10T14:00", "2026-03-10T15:00"],
		"temperature_2m": [17.5, 17.1],
		"weather_code": [2, 3]
	},
	"daily": {
		"time": ["2026-03-10"],
		"weather_code": [2],
		"temperature_2m_max": [18.0],
		"temperature_2m_min": [9.5]
	}
}`

func TestGetForecast(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(validForecastBody))
	}))
	defer server.Close()

	client := NewForecastClient()
	client.SetBaseURL(server.URL)

	resp, err := client.GetForecast(context.Background(), 51.5074, -0.1278)
	if err != nil {
		t.Fatalf("GetForecast() returned error: %v", err)
	}

	if resp.Timezone != "Europe/London" {
		t.Errorf("Timezone = %q, want Europe/London", resp.Timezone)
	}
	if resp.Current.Temperature2M != 17.5 {
		t.Errorf("Current.Temperature2M = %v, want 17.5", resp.Current.Temperature2M)
	}
	if len(resp.Hourly.Time) != 2 {
		t.Errorf("len(Hourly.Time) = %d, want 2", len(resp.Hourly.Time))
	}
	if len(resp.Daily.Time) != 1 {
		t.Errorf("len(Daily.Time) = %d, want 1", len(resp.Daily.Time))
	}

	// The request must ask for every variable the view layer derives from.
	if got := gotQuery["current"]; !strings.Contains(got, "cloud_cover") || !strings.Contains(got, "apparent_temperature") {
		t.Errorf("current vars = %q, missing expected fields", got)
	}
	if got := gotQuery["hourly"]; got != "temperature_2m,weather_code" {
		t.Errorf("hourly vars = %q, want temperature_2m,weather_code", got)
	}
	if got := gotQuery["daily"]; got != "weather_code,temperature_2m_max,temperature_2m_min" {
		t.Errorf("daily vars = %q, want weather_code,temperature_2m_max,temperature_2m_min", got)
	}
	if got := gotQuery["timezone"]; got != "auto" {
		t.Errorf("timezone = %q, want auto", got)
	}
}

func TestGetForecastServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewForecastClient()
	client.SetBaseURL(server.URL)

	if _, err := client.GetForecast(context.Background(), 51.5074, -0.1278); err == nil {
		t.Fatal("expected error for 500 response, got nil")
	}
}

func TestGetForecastMisalignedSeries(t *testing.T) {
	// Hourly temperature array shorter than the time array.
	body := `{
		"hourly": {
			"time": ["2026-03-10T14:00", "2026-03-10T15:00"],
			"temperature_2m": [17.5],
			"weather_code": [2, 3]
		},
		"daily": {
			"time": ["2026-03-10"],
			"weather_code": [2],
			"temperature_2m_max": [18.0],
			"temperature_2m_min": [9.5]
		}
	}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	client := NewForecastClient()
	client.SetBaseURL(server.URL)

	if _, err := client.GetForecast(context.Background(), 51.5074, -0.1278); err == nil {
		t.Fatal("expected error for misaligned series, got nil")
	}
}

func TestForecastResponseValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ForecastAPIResponse)
		expectErr bool
	}{
		{
			name:      "aligned",
			mutate:    func(r *ForecastAPIResponse) {},
			expectErr: false,
		},
		{
			name: "empty hourly",
			mutate: func(r *ForecastAPIResponse) {
				r.Hourly.Time = nil
			},
			expectErr: true,
		},
		{
			name: "empty daily",
			mutate: func(r *ForecastAPIResponse) {
				r.Daily.Time = nil
			},
			expectErr: true,
		},
		{
			name: "daily min shorter",
			mutate: func(r *ForecastAPIResponse) {
				r.Daily.Temperature2MMin = r.Daily.Temperature2MMin[:0]
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &ForecastAPIResponse{
				Hourly: HourlySeries{
					Time:          []string{"2026-03-10T14:00"},
					Temperature2M: []float64{17.5},
					WeatherCode:   []int{2},
				},
				Daily: DailySeries{
					Time:             []string{"2026-03-10"},
					WeatherCode:      []int{2},
					Temperature2MMax: []float64{18},
					Temperature2MMin: []float64{9.5},
				},
			}
			tt.mutate(resp)

			err := resp.Validate()
			if tt.expectErr && err == nil {
				t.Error("Validate() = nil, want error")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
