package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lijaymere/filmzy-bot/internal/models"
	"github.com/urfave/cli/v3"
)

// SeriesList prints every stored series.
func (r *Runner) SeriesList(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	repo, err := r.seriesRepo()
	if err != nil {
		return err
	}

	series, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list series: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(series, true)
	}

	r.writePlainHeader(fmt.Sprintf("Series (%d)", len(series)))
	for _, s := range series {
		r.writePlain("%6d  %s\n", s.ID, s.Title)
	}

	return nil
}

// SeriesAdd registers an archived message as a series.
func (r *Runner) SeriesAdd(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	repo, err := r.seriesRepo()
	if err != nil {
		return err
	}

	series := models.Series{
		ID:         cmd.Int("id"),
		Title:      strings.TrimSpace(cmd.String("title")),
		ContentRef: cmd.String("ref"),
		Kind:       models.ParseMediaKind(cmd.String("kind")),
		AddedAt:    time.Now(),
	}

	if err := repo.Insert(ctx, series); err != nil {
		return fmt.Errorf("failed to add series: %w", err)
	}

	r.writePlainln("✓ Added series %q (message %d)", series.Title, series.ID)
	return nil
}

// SeriesRemove deletes a series.
func (r *Runner) SeriesRemove(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	repo, err := r.seriesRepo()
	if err != nil {
		return err
	}

	id := cmd.Int("id")
	if err := repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to remove series: %w", err)
	}

	r.writePlainln("✓ Removed series %d", id)
	return nil
}
