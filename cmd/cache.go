package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"
)

// CacheRefresh loads the catalog into a fresh snapshot and prints a
// summary, exercising the same path the bot serves from.
func (r *Runner) CacheRefresh(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	cache, err := r.catalogCache()
	if err != nil {
		return err
	}

	snap, err := cache.Refresh(ctx)
	if err != nil {
		return err
	}

	r.writePlainln("✓ Cache refreshed: %d entries at %s", snap.Len(), snap.RefreshedAt.Format(time.RFC3339))
	return nil
}

// CacheStats prints library counters alongside the cache settings.
func (r *Runner) CacheStats(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	entries, err := r.catalogRepo()
	if err != nil {
		return err
	}
	series, err := r.seriesRepo()
	if err != nil {
		return err
	}
	users, err := r.userRepo()
	if err != nil {
		return err
	}

	movieCount, err := entries.Count(ctx)
	if err != nil {
		return err
	}
	seriesCount, err := series.Count(ctx)
	if err != nil {
		return err
	}
	userCount, adminCount, err := users.Count(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{
			"movies":                   movieCount,
			"series":                   seriesCount,
			"users":                    userCount,
			"admins":                   adminCount,
			"refresh_interval_seconds": r.config.Cache.RefreshIntervalSeconds,
			"batch_send_cap":           r.config.Cache.BatchSendCap,
		}, true)
	}

	r.writePlainHeader("Library stats")
	r.writePlain("Movies:  %d\n", movieCount)
	r.writePlain("Series:  %d\n", seriesCount)
	r.writePlain("Users:   %d (%d admins)\n", userCount, adminCount)
	r.writePlain("Refresh: every %s, batches capped at %d\n",
		r.config.Cache.RefreshInterval(), r.config.Cache.BatchSendCap)
	return nil
}
