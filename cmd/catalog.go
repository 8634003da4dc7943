package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lijaymere/filmzy-bot/internal/catalog"
	"github.com/lijaymere/filmzy-bot/internal/formatter"
	"github.com/lijaymere/filmzy-bot/internal/models"
	"github.com/lijaymere/filmzy-bot/internal/shared"
	"github.com/urfave/cli/v3"
)

// CatalogList prints every catalog entry.
func (r *Runner) CatalogList(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	repo, err := r.catalogRepo()
	if err != nil {
		return err
	}

	entries, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list catalog: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(entries, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Catalog (%d entries)", len(entries)))
	for _, entry := range entries {
		r.writePlain("%6d  %-40s  %s\n", entry.ID, entry.Title, entry.Category)
	}

	return nil
}

// CatalogSearch runs the term match against a fresh snapshot.
func (r *Runner) CatalogSearch(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	query := strings.TrimSpace(cmd.StringArg("query"))
	if utf8.RuneCountInString(query) < catalog.MinQueryLength {
		return fmt.Errorf("%w: query must be at least %d characters", shared.ErrQueryTooShort, catalog.MinQueryLength)
	}

	cache, err := r.catalogCache()
	if err != nil {
		return err
	}

	snap, err := cache.Refresh(ctx)
	if err != nil {
		return err
	}

	matches := catalog.Search(snap, query)
	if cmd.Bool("json") {
		return r.writeJSON(matches, true)
	}

	r.writePlainln("Found %d result(s) for %q", len(matches), query)
	for _, entry := range matches {
		r.writePlain("%6d  %-40s  %s\n", entry.ID, entry.Title, entry.Category)
	}

	return nil
}

// CatalogAdd registers an archived message as a catalog entry.
func (r *Runner) CatalogAdd(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	repo, err := r.catalogRepo()
	if err != nil {
		return err
	}

	entry := models.Entry{
		ID:         cmd.Int("id"),
		Title:      strings.TrimSpace(cmd.String("title")),
		Category:   cmd.String("category"),
		ContentRef: cmd.String("ref"),
		Kind:       models.ParseMediaKind(cmd.String("kind")),
		AddedAt:    time.Now(),
	}

	if err := repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("failed to add entry: %w", err)
	}

	r.writePlainln("✓ Added %q (message %d)", entry.Title, entry.ID)
	return nil
}

// CatalogRename changes an entry's title.
func (r *Runner) CatalogRename(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	repo, err := r.catalogRepo()
	if err != nil {
		return err
	}

	id := cmd.Int("id")
	title := strings.TrimSpace(cmd.String("title"))
	if err := repo.UpdateTitle(ctx, id, title); err != nil {
		return fmt.Errorf("failed to rename entry: %w", err)
	}

	r.writePlainln("✓ Renamed entry %d to %q", id, title)
	return nil
}

// CatalogRecategorize moves an entry to another category.
func (r *Runner) CatalogRecategorize(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	repo, err := r.catalogRepo()
	if err != nil {
		return err
	}

	id := cmd.Int("id")
	category := strings.TrimSpace(cmd.String("category"))
	if err := repo.UpdateCategory(ctx, id, category); err != nil {
		return fmt.Errorf("failed to recategorize entry: %w", err)
	}

	r.writePlainln("✓ Moved entry %d to %s", id, category)
	return nil
}

// CatalogRemove deletes an entry.
func (r *Runner) CatalogRemove(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	repo, err := r.catalogRepo()
	if err != nil {
		return err
	}

	id := cmd.Int("id")
	if err := repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to remove entry: %w", err)
	}

	r.writePlainln("✓ Removed entry %d", id)
	return nil
}

// CatalogDuplicates prints titles stored more than once.
func (r *Runner) CatalogDuplicates(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	repo, err := r.catalogRepo()
	if err != nil {
		return err
	}

	groups, err := catalog.NewDetector(repo).Find(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(groups, true)
	}

	return r.writePlain("%s", formatter.DuplicateReport(groups))
}

// CatalogExport writes the catalog to a file in the requested format.
func (r *Runner) CatalogExport(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	repo, err := r.catalogRepo()
	if err != nil {
		return err
	}

	entries, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list catalog: %w", err)
	}

	format := cmd.String("format")
	output := cmd.String("output")

	if format == "csv" {
		result, err := formatter.WriteCSVExport(entries, strings.TrimSuffix(output, ".csv"))
		if err != nil {
			return err
		}
		r.writePlainln("✓ Exported %d entries to %s", len(entries), result.EntriesFile)
		return nil
	}

	var data []byte
	var ext string
	switch format {
	case "markdown", "md":
		data, err = formatter.ExportToMarkdown(entries, "Catalog")
		ext = ".md"
	case "text", "txt":
		data, err = formatter.ExportToText(entries)
		ext = ".txt"
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return err
	}

	if output == "" {
		output = "export" + ext
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	r.writePlainln("✓ Exported %d entries to %s", len(entries), output)
	return nil
}
