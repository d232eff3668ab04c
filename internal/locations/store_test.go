package locations

import (
	"io"
	"log/slog"
	"testing"

	"skycast/internal/storage"
	"skycast/internal/types"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var fallbackLondon = types.Location{
	Name:    "London",
	Country: "UK",
	Lat:     51.5074,
	Lon:     -0.1278,
}

func newTestStore(t *testing.T, kv storage.KV) *Store {
	t.Helper()
	s := NewStore(kv, fallbackLondon, testLogger)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}
	return s
}

func TestStoreInitDefaults(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryKV())

	if got := s.Active(); got != fallbackLondon {
		t.Errorf("Active() = %+v, want fallback %+v", got, fallbackLondon)
	}
	if got := s.Saved(); len(got) != 0 {
		t.Errorf("Saved() = %v, want empty", got)
	}
}

func TestStoreInitMalformedData(t *testing.T) {
	kv := storage.NewMemoryKV()
	_ = kv.Set("active_location", "{not json")
	_ = kv.Set("saved_locations", "also not json")

	// Malformed persisted state is treated as absent, never as an error.
	s := newTestStore(t, kv)

	if got := s.Active(); got != fallbackLondon {
		t.Errorf("Active() = %+v, want fallback %+v", got, fallbackLondon)
	}
	if got := s.Saved(); len(got) != 0 {
		t.Errorf("Saved() = %v, want empty", got)
	}
}

func TestStoreSelectPersists(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := newTestStore(t, kv)

	paris := types.Location{Name: "Paris", Country: "France", Lat: 48.8566, Lon: 2.3522}
	if err := s.Select(paris); err != nil {
		t.Fatalf("Select() returned error: %v", err)
	}
	if got := s.Active(); got != paris {
		t.Errorf("Active() = %+v, want %+v", got, paris)
	}

	// A fresh store over the same storage sees the selection.
	s2 := newTestStore(t, kv)
	if got := s2.Active(); got != paris {
		t.Errorf("Active() after reload = %+v, want %+v", got, paris)
	}
}

func TestStoreToggleSave(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryKV())

	paris := types.Location{Name: "Paris", Country: "France", Lat: 48.8566, Lon: 2.3522}
	tokyo := types.Location{Name: "Tokyo", Country: "Japan", Lat: 35.6762, Lon: 139.6503}

	if err := s.ToggleSave(paris); err != nil {
		t.Fatalf("ToggleSave(paris) returned error: %v", err)
	}
	if err := s.ToggleSave(tokyo); err != nil {
		t.Fatalf("ToggleSave(tokyo) returned error: %v", err)
	}

	if !s.IsSaved(paris) || !s.IsSaved(tokyo) {
		t.Fatal("both locations should be saved")
	}

	saved := s.Saved()
	if len(saved) != 2 || saved[0].Name != "Paris" || saved[1].Name != "Tokyo" {
		t.Errorf("Saved() = %v, want [Paris Tokyo] in insertion order", saved)
	}

	// Second toggle removes; membership is by coordinate, not name.
	renamed := types.Location{Name: "Somewhere Else", Lat: 48.8566, Lon: 2.3522}
	if err := s.ToggleSave(renamed); err != nil {
		t.Fatalf("ToggleSave(renamed) returned error: %v", err)
	}

	if s.IsSaved(paris) {
		t.Error("paris should have been removed by coordinate-equal toggle")
	}
	if !s.IsSaved(tokyo) {
		t.Error("tokyo should still be saved")
	}
}

func TestStoreToggleTwiceRestoresState(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryKV())

	paris := types.Location{Name: "Paris", Lat: 48.8566, Lon: 2.3522}
	tokyo := types.Location{Name: "Tokyo", Lat: 35.6762, Lon: 139.6503}
	berlin := types.Location{Name: "Berlin", Lat: 52.52, Lon: 13.405}

	for _, loc := range []types.Location{paris, tokyo, berlin} {
		if err := s.ToggleSave(loc); err != nil {
			t.Fatalf("ToggleSave(%s) returned error: %v", loc.Name, err)
		}
	}

	// Remove and re-add the middle entry; it moves to the end.
	if err := s.ToggleSave(tokyo); err != nil {
		t.Fatalf("ToggleSave returned error: %v", err)
	}
	if err := s.ToggleSave(tokyo); err != nil {
		t.Fatalf("ToggleSave returned error: %v", err)
	}

	saved := s.Saved()
	if len(saved) != 3 {
		t.Fatalf("len(Saved()) = %d, want 3", len(saved))
	}
	if saved[0].Name != "Paris" || saved[1].Name != "Berlin" || saved[2].Name != "Tokyo" {
		t.Errorf("Saved() order = [%s %s %s], want [Paris Berlin Tokyo]",
			saved[0].Name, saved[1].Name, saved[2].Name)
	}
}

func TestStoreRemove(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryKV())

	paris := types.Location{Name: "Paris", Lat: 48.8566, Lon: 2.3522}
	if err := s.ToggleSave(paris); err != nil {
		t.Fatalf("ToggleSave returned error: %v", err)
	}

	if err := s.Remove(paris); err != nil {
		t.Fatalf("Remove() returned error: %v", err)
	}
	if s.IsSaved(paris) {
		t.Error("paris should be removed")
	}

	// Removing an absent coordinate is a no-op.
	if err := s.Remove(paris); err != nil {
		t.Errorf("Remove() of absent location returned error: %v", err)
	}
}

func TestStoreSavedReturnsCopy(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryKV())

	paris := types.Location{Name: "Paris", Lat: 48.8566, Lon: 2.3522}
	if err := s.ToggleSave(paris); err != nil {
		t.Fatalf("ToggleSave returned error: %v", err)
	}

	saved := s.Saved()
	saved[0].Name = "Mutated"

	if got := s.Saved()[0].Name; got != "Paris" {
		t.Errorf("Saved()[0].Name = %q, want Paris; internal state was mutated", got)
	}
}
