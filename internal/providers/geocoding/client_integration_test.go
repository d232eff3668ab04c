//go:build integration

package geocoding

import (
	"context"
	"testing"
)

func TestSearch_Integration(t *testing.T) {
	client := NewClient(2, 5)

	t.Logf("Making API call to Open-Meteo Geocoding API...")

	results, err := client.Search(context.Background(), "London")
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}

	if len(results) == 0 {
		t.Fatal("No results for London")
	}
	if len(results) > 5 {
		t.Errorf("Got %d results, want at most 5", len(results))
	}

	for i, r := range results {
		t.Logf("Result %d: %s, %s (%s) at (%f, %f)", i, r.Name, r.Country, r.Admin1, r.Lat, r.Lon)
	}

	first := results[0]
	if first.Name != "London" {
		t.Errorf("First result name = %q, want London", first.Name)
	}
	if first.Lat < 51 || first.Lat > 52 {
		t.Errorf("First result latitude = %f, expected central London", first.Lat)
	}

	t.Log("✓ API call successful")
}
