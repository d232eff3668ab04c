package timezone

import "testing"

func TestGetTimezone(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("NewService() returned error: %v", err)
	}

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		expected  string
	}{
		{
			name:      "london",
			latitude:  51.5074,
			longitude: -0.1278,
			expected:  "Europe/London",
		},
		{
			name:      "new york",
			latitude:  40.7128,
			longitude: -74.0060,
			expected:  "America/New_York",
		},
		{
			name:      "tokyo",
			latitude:  35.6762,
			longitude: 139.6503,
			expected:  "Asia/Tokyo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tz, err := svc.GetTimezone(tt.latitude, tt.longitude)
			if err != nil {
				t.Fatalf("GetTimezone() returned error: %v", err)
			}
			if tz != tt.expected {
				t.Errorf("GetTimezone() = %q, want %q", tz, tt.expected)
			}
		})
	}
}

func TestLocalNow(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("NewService() returned error: %v", err)
	}

	now, err := svc.LocalNow(35.6762, 139.6503)
	if err != nil {
		t.Fatalf("LocalNow() returned error: %v", err)
	}
	if now.IsZero() {
		t.Fatal("LocalNow() returned zero time")
	}
	if got := now.Location().String(); got != "Asia/Tokyo" {
		t.Errorf("LocalNow() location = %q, want Asia/Tokyo", got)
	}
}
