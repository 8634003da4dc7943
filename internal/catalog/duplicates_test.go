package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/lijaymere/filmzy-bot/internal/models"
)

type stubFinder struct {
	groups []models.DuplicateGroup
	err    error
}

func (s *stubFinder) FindDuplicateTitles(ctx context.Context) ([]models.DuplicateGroup, error) {
	return s.groups, s.err
}

func TestDetector(t *testing.T) {
	ctx := context.Background()

	t.Run("returns groups from the store", func(t *testing.T) {
		detector := NewDetector(&stubFinder{groups: []models.DuplicateGroup{
			{Title: "Dune", Count: 3},
		}})

		groups, err := detector.Find(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(groups) != 1 || groups[0].Title != "Dune" || groups[0].Count != 3 {
			t.Errorf("unexpected groups: %v", groups)
		}
	})

	t.Run("empty store yields no groups", func(t *testing.T) {
		detector := NewDetector(&stubFinder{})

		groups, err := detector.Find(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(groups) != 0 {
			t.Errorf("expected no groups, got %v", groups)
		}
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		detector := NewDetector(&stubFinder{err: errors.New("store down")})

		if _, err := detector.Find(ctx); err == nil {
			t.Fatal("expected error from failing store")
		}
	})
}
