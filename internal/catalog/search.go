package catalog

import (
	"strings"

	"github.com/lijaymere/filmzy-bot/internal/models"
)

// MinQueryLength is the shortest query accepted by callers before
// reaching [Search]; shorter queries are rejected at the handler.
const MinQueryLength = 2

// Search selects entries whose title contains any of the query's
// whitespace-separated terms, case-insensitively. Snapshot order is
// preserved and no ranking is applied. The result aliases the
// snapshot's entries and is only valid for the request that produced it.
func Search(snap *Snapshot, query string) []models.Entry {
	if snap == nil {
		return nil
	}

	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	var results []models.Entry
	for _, entry := range snap.Entries {
		title := strings.ToLower(entry.Title)
		for _, term := range terms {
			if strings.Contains(title, term) {
				results = append(results, entry)
				break
			}
		}
	}

	return results
}

// FilterByCategory selects entries whose category equals the requested
// one, case-insensitively. Snapshot order is preserved.
func FilterByCategory(snap *Snapshot, category string) []models.Entry {
	if snap == nil {
		return nil
	}

	var results []models.Entry
	for _, entry := range snap.Entries {
		if strings.EqualFold(entry.Category, category) {
			results = append(results, entry)
		}
	}

	return results
}

// Categories returns the distinct category names present in the
// snapshot, in first-seen order.
func Categories(snap *Snapshot) []string {
	if snap == nil {
		return nil
	}

	seen := make(map[string]bool)
	var names []string
	for _, entry := range snap.Entries {
		if !seen[entry.Category] {
			seen[entry.Category] = true
			names = append(names, entry.Category)
		}
	}

	return names
}
