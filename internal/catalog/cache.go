package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lijaymere/filmzy-bot/internal/models"
)

// DefaultRefreshInterval is the staleness threshold applied when the
// configuration does not set one.
const DefaultRefreshInterval = 300 * time.Second

// Lister is the narrow store contract the cache refreshes from.
// Implemented by repositories.CatalogRepository.
type Lister interface {
	List(ctx context.Context) ([]models.Entry, error)
}

// Snapshot is an immutable view of the catalog. It is replaced wholesale
// on refresh and never patched; callers may read it without locking.
type Snapshot struct {
	Entries     []models.Entry
	RefreshedAt time.Time
}

// Len returns the number of entries in the snapshot. Safe on nil.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Entries)
}

// Cache mirrors the movies table in memory.
//
// The snapshot pointer is the only shared mutable state. refreshMu
// serializes refreshes so two concurrent refreshes cannot interleave;
// mu guards only the pointer itself, so a slow store call never blocks
// readers, and readers always observe a complete snapshot.
type Cache struct {
	refreshMu sync.Mutex
	mu        sync.RWMutex
	store     Lister
	interval  time.Duration
	logger    *log.Logger

	snap *Snapshot
}

// NewCache creates a Cache over the given store. A non-positive interval
// falls back to [DefaultRefreshInterval].
func NewCache(store Lister, interval time.Duration, logger *log.Logger) *Cache {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	return &Cache{
		store:    store,
		interval: interval,
		logger:   logger,
	}
}

// Snapshot returns the current snapshot. Nil until the first successful
// refresh.
func (c *Cache) Snapshot() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Stale reports whether the snapshot is older than the refresh interval
// at the given instant. A snapshot exactly at the boundary is fresh; a
// cache that has never refreshed is stale.
func (c *Cache) Stale(now time.Time) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.snap == nil {
		return true
	}
	return now.Sub(c.snap.RefreshedAt) > c.interval
}

// Refresh reloads the snapshot from the store and swaps it in
// atomically. On store failure the previous snapshot is kept untouched
// and the error is returned to the caller; nothing is partially merged.
func (c *Cache) Refresh(ctx context.Context) (*Snapshot, error) {
	// The store call runs under refreshMu only, so readers keep serving
	// the old snapshot while a refresh is in flight.
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	entries, err := c.store.List(ctx)
	if err != nil {
		return c.Snapshot(), fmt.Errorf("cache refresh failed: %w", err)
	}

	snap := &Snapshot{
		Entries:     entries,
		RefreshedAt: time.Now(),
	}

	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.Info("refreshed catalog cache", "entries", len(entries))
	}

	return snap, nil
}

// Ensure returns a usable snapshot, refreshing first when stale. When a
// needed refresh fails, the previous snapshot is returned alongside the
// error so read paths can degrade to stale data.
func (c *Cache) Ensure(ctx context.Context) (*Snapshot, error) {
	if !c.Stale(time.Now()) {
		return c.Snapshot(), nil
	}
	return c.Refresh(ctx)
}
