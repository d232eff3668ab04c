package search

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"skycast/internal/types"
)

// minQueryLen is the shortest query ever sent to the geocoding API.
const minQueryLen = 2

var (
	// ErrQueryTooShort is returned for queries under the minimum length.
	ErrQueryTooShort = errors.New("query too short")
	// ErrSuperseded is returned when a newer query was issued while this one
	// was debouncing or in flight; its results must never be applied.
	ErrSuperseded = errors.New("query superseded by a newer one")
)

// Client resolves a free-text query to candidate locations.
type Client interface {
	Search(ctx context.Context, query string) ([]types.Location, error)
}

// Service debounces queries and guarantees that only the most-recently-issued
// query's results are ever delivered. Each call bumps a generation counter;
// a call whose generation is no longer current returns ErrSuperseded, whether
// it was still waiting out the debounce delay or its results arrived late.
type Service struct {
	client   Client
	debounce time.Duration
	logger   *slog.Logger

	mu  sync.Mutex
	gen uint64
}

func NewService(client Client, debounce time.Duration, logger *slog.Logger) *Service {
	return &Service{
		client:   client,
		debounce: debounce,
		logger:   logger.With("component", "search"),
	}
}

// Search runs one debounced query. Queries shorter than two characters are
// never sent. A query superseded at any point yields ErrSuperseded and no
// results.
func (s *Service) Search(ctx context.Context, query string) ([]types.Location, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minQueryLen {
		return nil, ErrQueryTooShort
	}

	s.mu.Lock()
	s.gen++
	myGen := s.gen
	s.mu.Unlock()

	// Debounce: wait out the quiet period before touching the network.
	timer := time.NewTimer(s.debounce)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if !s.isLatest(myGen) {
		return nil, ErrSuperseded
	}

	results, err := s.client.Search(ctx, query)
	if err != nil {
		s.logger.Warn("geocoding search failed", "query", query, "error", err)
		return nil, err
	}

	// Results that arrive after a newer query started are discarded.
	if !s.isLatest(myGen) {
		return nil, ErrSuperseded
	}

	return results, nil
}

func (s *Service) isLatest(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen == s.gen
}
