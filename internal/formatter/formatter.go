// package formatter provides functions to export catalog data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lijaymere/filmzy-bot/internal/models"
	"github.com/lijaymere/filmzy-bot/internal/shared"
)

// ExportToCSV converts catalog entries to CSV format with columns: ID, Title, Category, Kind, ContentRef, AddedAt
func ExportToCSV(entries []models.Entry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Category", "Kind", "ContentRef", "AddedAt"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, entry := range entries {
		record := []string{
			strconv.Itoa(entry.ID),
			entry.Title,
			entry.Category,
			string(entry.Kind),
			entry.ContentRef,
			entry.AddedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts catalog entries to a Markdown listing grouped by category
func ExportToMarkdown(entries []models.Entry, title string) ([]byte, error) {
	var buf bytes.Buffer

	if title == "" {
		title = "Catalog"
	}
	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Entries**: %d\n\n", len(entries)))

	byCategory := make(map[string][]models.Entry)
	var order []string
	for _, entry := range entries {
		if _, seen := byCategory[entry.Category]; !seen {
			order = append(order, entry.Category)
		}
		byCategory[entry.Category] = append(byCategory[entry.Category], entry)
	}

	for _, category := range order {
		buf.WriteString(fmt.Sprintf("## %s\n\n", category))
		for i, entry := range byCategory[category] {
			buf.WriteString(fmt.Sprintf("%d. %s [%s]\n", i+1, entry.Title, entry.Kind))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// ExportToText converts catalog entries to plain text format
func ExportToText(entries []models.Entry) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Entries: %d\n\n", len(entries)))
	for i, entry := range entries {
		buf.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, entry.Title, entry.Category))
	}

	return buf.Bytes(), nil
}

// DuplicateReport renders duplicate title groups as plain text, one
// group per line with its occurrence count.
func DuplicateReport(groups []models.DuplicateGroup) []byte {
	var buf bytes.Buffer

	if len(groups) == 0 {
		buf.WriteString("No duplicate titles found.\n")
		return buf.Bytes()
	}

	buf.WriteString(fmt.Sprintf("Duplicated titles: %d\n\n", len(groups)))
	for _, group := range groups {
		buf.WriteString(fmt.Sprintf("%s x%d\n", group.Title, group.Count))
	}

	return buf.Bytes()
}

// ToEntryJSON generates a JSON representation of a catalog entry
func ToEntryJSON(entry models.Entry) ([]byte, error) {
	return shared.MarshalJSON(entry, true)
}

// CSVExportResult contains the paths of files created by WriteCSVExport
type CSVExportResult struct {
	EntriesFile string
}

// WriteCSVExport writes catalog entries to {base}_catalog.csv.
//
// Defaults to "export" as the base filename.
func WriteCSVExport(entries []models.Entry, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = "export"
	}

	csvData, err := ExportToCSV(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	entriesFile := baseFilepath + "_catalog.csv"
	if err := os.WriteFile(entriesFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	return &CSVExportResult{EntriesFile: entriesFile}, nil
}
