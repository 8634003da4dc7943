package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lijaymere/filmzy-bot/internal/models"
)

// stubLister is a scriptable Lister for cache tests.
type stubLister struct {
	entries []models.Entry
	err     error
	calls   int
}

func (s *stubLister) List(ctx context.Context) ([]models.Entry, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.entries, nil
}

// gatedLister parks List until released, to model a stuck store.
type gatedLister struct {
	started chan struct{}
	release chan struct{}
}

func (g *gatedLister) List(ctx context.Context) ([]models.Entry, error) {
	close(g.started)
	<-g.release
	return nil, nil
}

func TestCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Refresh", func(t *testing.T) {
		t.Run("swaps in a new snapshot", func(t *testing.T) {
			store := &stubLister{entries: []models.Entry{
				{ID: 1, Title: "Inception", Category: "Sci-Fi"},
				{ID: 2, Title: "The Matrix", Category: "Sci-Fi"},
			}}
			cache := NewCache(store, time.Minute, nil)

			snap, err := cache.Refresh(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if snap.Len() != 2 {
				t.Errorf("expected 2 entries, got %d", snap.Len())
			}
			if snap.RefreshedAt.IsZero() {
				t.Error("expected RefreshedAt to be set")
			}
		})

		t.Run("failure keeps the previous snapshot", func(t *testing.T) {
			store := &stubLister{entries: []models.Entry{{ID: 1, Title: "Dune", Category: "Sci-Fi"}}}
			cache := NewCache(store, time.Minute, nil)

			before, err := cache.Refresh(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			store.err = errors.New("store down")
			after, err := cache.Refresh(ctx)
			if err == nil {
				t.Fatal("expected error from failed refresh")
			}
			if after != before {
				t.Error("expected failed refresh to return the previous snapshot")
			}
			if cache.Snapshot() != before {
				t.Error("expected stored snapshot to be unchanged")
			}
		})

		t.Run("repeated refreshes are stable", func(t *testing.T) {
			store := &stubLister{entries: []models.Entry{
				{ID: 1, Title: "Dune", Category: "Sci-Fi"},
				{ID: 2, Title: "Heat", Category: "Crime"},
			}}
			cache := NewCache(store, time.Minute, nil)

			first, err := cache.Refresh(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			second, err := cache.Refresh(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if store.calls != 2 {
				t.Errorf("expected 2 store calls, got %d", store.calls)
			}
			if second.Len() != first.Len() {
				t.Fatalf("expected the same entry count, got %d then %d", first.Len(), second.Len())
			}
			for i := range first.Entries {
				if second.Entries[i] != first.Entries[i] {
					t.Errorf("entry %d changed between refreshes: %+v vs %+v", i, first.Entries[i], second.Entries[i])
				}
			}
			if second.RefreshedAt.Before(first.RefreshedAt) {
				t.Error("expected RefreshedAt to be non-decreasing across refreshes")
			}
		})

		t.Run("readers are not blocked by a slow store", func(t *testing.T) {
			store := &gatedLister{
				started: make(chan struct{}),
				release: make(chan struct{}),
			}
			cache := NewCache(store, time.Minute, nil)

			done := make(chan struct{})
			go func() {
				defer close(done)
				cache.Refresh(ctx)
			}()
			<-store.started

			read := make(chan struct{})
			go func() {
				defer close(read)
				cache.Snapshot()
				cache.Stale(time.Now())
			}()

			select {
			case <-read:
			case <-time.After(time.Second):
				t.Fatal("snapshot read blocked behind an in-flight refresh")
			}

			close(store.release)
			<-done
		})

		t.Run("empty catalog yields an empty snapshot", func(t *testing.T) {
			cache := NewCache(&stubLister{}, time.Minute, nil)

			snap, err := cache.Refresh(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if snap.Len() != 0 {
				t.Errorf("expected empty snapshot, got %d entries", snap.Len())
			}
		})
	})

	t.Run("Stale", func(t *testing.T) {
		t.Run("never refreshed is stale", func(t *testing.T) {
			cache := NewCache(&stubLister{}, time.Minute, nil)
			if !cache.Stale(time.Now()) {
				t.Error("expected unrefreshed cache to be stale")
			}
		})

		t.Run("exactly at the interval is fresh", func(t *testing.T) {
			store := &stubLister{}
			cache := NewCache(store, time.Minute, nil)

			snap, err := cache.Refresh(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			boundary := snap.RefreshedAt.Add(time.Minute)
			if cache.Stale(boundary) {
				t.Error("expected snapshot at the interval boundary to be fresh")
			}
			if !cache.Stale(boundary.Add(time.Nanosecond)) {
				t.Error("expected snapshot past the boundary to be stale")
			}
		})
	})

	t.Run("Ensure", func(t *testing.T) {
		t.Run("fresh snapshot skips the store", func(t *testing.T) {
			store := &stubLister{}
			cache := NewCache(store, time.Minute, nil)

			if _, err := cache.Refresh(ctx); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, err := cache.Ensure(ctx); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if store.calls != 1 {
				t.Errorf("expected 1 store call, got %d", store.calls)
			}
		})

		t.Run("stale cache refreshes", func(t *testing.T) {
			store := &stubLister{}
			cache := NewCache(store, time.Minute, nil)

			if _, err := cache.Ensure(ctx); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if store.calls != 1 {
				t.Errorf("expected Ensure to hit the store, got %d calls", store.calls)
			}
		})

		t.Run("failed refresh degrades to stale snapshot", func(t *testing.T) {
			store := &stubLister{entries: []models.Entry{{ID: 1, Title: "Dune", Category: "Sci-Fi"}}}
			cache := NewCache(store, time.Nanosecond, nil)

			before, err := cache.Refresh(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			time.Sleep(time.Millisecond)
			store.err = errors.New("store down")

			snap, err := cache.Ensure(ctx)
			if err == nil {
				t.Fatal("expected error from stale refresh")
			}
			if snap != before {
				t.Error("expected stale snapshot to be returned alongside the error")
			}
		})
	})
}
