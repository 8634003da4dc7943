package catalog

import (
	"context"
	"fmt"

	"github.com/lijaymere/filmzy-bot/internal/models"
)

// DuplicateFinder is the store contract for the duplicate-title report.
// Implemented by repositories.CatalogRepository.
type DuplicateFinder interface {
	FindDuplicateTitles(ctx context.Context) ([]models.DuplicateGroup, error)
}

// Detector surfaces titles appearing more than once in the catalog.
//
// Every call reads fresh from the store; the report is never cached.
// Grouping is exact-title, case-sensitive and unnormalized: "Dune" and
// "dune " are distinct groups.
type Detector struct {
	store DuplicateFinder
}

// NewDetector creates a Detector over the given store.
func NewDetector(store DuplicateFinder) *Detector {
	return &Detector{store: store}
}

// Find returns the duplicate groups currently in the store.
func (d *Detector) Find(ctx context.Context) ([]models.DuplicateGroup, error) {
	groups, err := d.store.FindDuplicateTitles(ctx)
	if err != nil {
		return nil, fmt.Errorf("duplicate scan failed: %w", err)
	}
	return groups, nil
}
