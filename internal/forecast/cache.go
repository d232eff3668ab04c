package forecast

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"skycast/internal/types"
)

// backgroundFetchTimeout bounds refreshes that outlive the triggering request.
const backgroundFetchTimeout = 30 * time.Second

// Cache memoizes the last fetch per coordinate key and refreshes entries older
// than the staleness window. Entries are never evicted: the set of keys a
// single user touches is small. Refreshes happen only on Fetch or Refetch,
// never from timers or other ambient triggers.
type Cache struct {
	mu      sync.Mutex
	svc     Service
	ttl     time.Duration
	logger  *slog.Logger
	entries map[string]*entry
}

type entry struct {
	payload   *Combined
	fetchedAt time.Time
	err       error
	inflight  chan struct{} // non-nil while a fetch for this key is running
}

func NewCache(svc Service, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		svc:     svc,
		ttl:     ttl,
		logger:  logger.With("component", "forecast-cache"),
		entries: make(map[string]*entry),
	}
}

// Fetch returns the cached entry when fresher than the staleness window.
// A stale entry is served immediately while a background refresh runs
// (stale-while-revalidate). The first fetch for a key blocks until data or an
// error is available.
func (c *Cache) Fetch(ctx context.Context, coords types.Coords) Snapshot {
	key := coords.Key()

	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}

	// Fresh hit.
	if e.payload != nil && e.err == nil && time.Since(e.fetchedAt) < c.ttl {
		snap := c.snapshotLocked(e)
		c.mu.Unlock()
		return snap
	}

	// A fetch is already running for this key.
	if e.inflight != nil {
		if e.payload != nil {
			snap := c.snapshotLocked(e)
			c.mu.Unlock()
			return snap
		}
		// First load in flight elsewhere: join it.
		done := e.inflight
		c.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return Snapshot{IsLoading: true, IsFetching: true, Err: ctx.Err()}
		}
		c.mu.Lock()
		snap := c.snapshotLocked(e)
		c.mu.Unlock()
		return snap
	}

	done := make(chan struct{})
	e.inflight = done

	if e.payload != nil {
		// Stale data available: serve it now, refresh in the background. The
		// refresh must not die with the triggering request's context.
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), backgroundFetchTimeout)
			defer cancel()
			c.doFetch(bgCtx, coords, e, done)
		}()
		snap := c.snapshotLocked(e)
		c.mu.Unlock()
		return snap
	}

	// First load: block until settled.
	c.mu.Unlock()
	c.doFetch(ctx, coords, e, done)

	c.mu.Lock()
	snap := c.snapshotLocked(e)
	c.mu.Unlock()
	return snap
}

// Refetch forces a new fetch regardless of freshness. Previously fetched data
// stays visible until the new result arrives; on failure the old payload is
// kept and the error recorded for the consumer to surface with a retry action.
func (c *Cache) Refetch(ctx context.Context, coords types.Coords) Snapshot {
	key := coords.Key()

	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}

	if e.inflight != nil {
		// Join the fetch already in flight rather than stacking another.
		done := e.inflight
		c.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return Snapshot{IsFetching: true, Err: ctx.Err()}
		}
	} else {
		done := make(chan struct{})
		e.inflight = done
		c.mu.Unlock()
		c.doFetch(ctx, coords, e, done)
	}

	c.mu.Lock()
	snap := c.snapshotLocked(e)
	c.mu.Unlock()
	return snap
}

func (c *Cache) doFetch(ctx context.Context, coords types.Coords, e *entry, done chan struct{}) {
	payload, err := c.svc.Fetch(ctx, coords)

	c.mu.Lock()
	if err != nil {
		// Keep the last good payload visible; the error is retryable.
		e.err = err
		c.logger.Warn("forecast fetch failed", "key", coords.Key(), "error", err)
	} else {
		e.payload = payload
		e.fetchedAt = time.Now()
		e.err = nil
	}
	e.inflight = nil
	close(done)
	c.mu.Unlock()
}

// snapshotLocked builds the consumer view of an entry. Callers hold c.mu.
func (c *Cache) snapshotLocked(e *entry) Snapshot {
	return Snapshot{
		Payload:    e.payload,
		FetchedAt:  e.fetchedAt,
		Err:        e.err,
		IsLoading:  e.payload == nil && e.inflight != nil,
		IsFetching: e.inflight != nil,
	}
}
