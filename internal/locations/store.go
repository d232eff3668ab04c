package locations

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"skycast/internal/storage"
	"skycast/internal/types"
)

// Persisted keys. The active location is a single JSON-encoded Location; the
// saved set is a JSON-encoded array written whole on every mutation.
const (
	keyActiveLocation = "active_location"
	keySavedLocations = "saved_locations"
)

// Store is the single source of truth for the active location and the saved
// set. Both are persisted synchronously after every mutation; there is no
// eventual-consistency window between memory and storage.
type Store struct {
	mu       sync.RWMutex
	kv       storage.KV
	logger   *slog.Logger
	fallback types.Location

	active types.Location
	saved  []types.Location
}

// NewStore creates a store backed by kv. fallback is used when no active
// location has ever been persisted.
func NewStore(kv storage.KV, fallback types.Location, logger *slog.Logger) *Store {
	return &Store{
		kv:       kv,
		logger:   logger.With("component", "location-store"),
		fallback: fallback,
	}
}

// Init loads persisted state. Malformed persisted data fails open: it is
// logged and treated as absent, never surfaced as an error.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = s.fallback
	if raw, ok, err := s.kv.Get(keyActiveLocation); err != nil {
		return fmt.Errorf("failed to load active location: %w", err)
	} else if ok {
		var loc types.Location
		if err := json.Unmarshal([]byte(raw), &loc); err != nil {
			s.logger.Warn("malformed persisted active location, using default", "error", err)
		} else {
			s.active = loc
		}
	}

	s.saved = nil
	if raw, ok, err := s.kv.Get(keySavedLocations); err != nil {
		return fmt.Errorf("failed to load saved locations: %w", err)
	} else if ok {
		var saved []types.Location
		if err := json.Unmarshal([]byte(raw), &saved); err != nil {
			s.logger.Warn("malformed persisted saved locations, starting empty", "error", err)
		} else {
			s.saved = saved
		}
	}

	return nil
}

// Active returns the current active location.
func (s *Store) Active() types.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Saved returns the saved set in insertion order.
func (s *Store) Saved() []types.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Location, len(s.saved))
	copy(out, s.saved)
	return out
}

// Select sets the active location and persists it. The saved set is untouched.
func (s *Store) Select(loc types.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persistActive(loc); err != nil {
		return err
	}
	s.active = loc
	return nil
}

// ToggleSave flips membership of loc's coordinate in the saved set: present
// entries are removed, absent ones appended. The whole set is persisted
// atomically. Two identical toggles cancel out.
func (s *Store) ToggleSave(loc types.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.without(loc)
	if len(next) == len(s.saved) {
		next = append(next, loc)
	}

	if err := s.persistSaved(next); err != nil {
		return err
	}
	s.saved = next
	return nil
}

// Remove deletes loc's coordinate from the saved set. Removing an absent
// location is a no-op, not an error.
func (s *Store) Remove(loc types.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.without(loc)
	if len(next) == len(s.saved) {
		return nil
	}

	if err := s.persistSaved(next); err != nil {
		return err
	}
	s.saved = next
	return nil
}

// IsSaved reports coordinate-equality membership in the saved set.
func (s *Store) IsSaved(loc types.Location) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.saved {
		if l.SameCoords(loc) {
			return true
		}
	}
	return false
}

// without returns the saved set with loc's coordinate filtered out,
// preserving the order of the remaining entries.
func (s *Store) without(loc types.Location) []types.Location {
	next := make([]types.Location, 0, len(s.saved))
	for _, l := range s.saved {
		if !l.SameCoords(loc) {
			next = append(next, l)
		}
	}
	return next
}

func (s *Store) persistActive(loc types.Location) error {
	raw, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("failed to encode active location: %w", err)
	}
	if err := s.kv.Set(keyActiveLocation, string(raw)); err != nil {
		return fmt.Errorf("failed to persist active location: %w", err)
	}
	return nil
}

func (s *Store) persistSaved(saved []types.Location) error {
	raw, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("failed to encode saved locations: %w", err)
	}
	if err := s.kv.Set(keySavedLocations, string(raw)); err != nil {
		return fmt.Errorf("failed to persist saved locations: %w", err)
	}
	return nil
}
