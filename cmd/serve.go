package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/lijaymere/filmzy-bot/internal/bot"
	"github.com/lijaymere/filmzy-bot/internal/catalog"
	"github.com/lijaymere/filmzy-bot/internal/delivery"
	"github.com/lijaymere/filmzy-bot/internal/repositories"
	"github.com/lijaymere/filmzy-bot/internal/services"
	"github.com/lijaymere/filmzy-bot/internal/shared"
	"github.com/urfave/cli/v3"
)

// Serve wires the full bot and long-polls until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	if err := r.config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	db, err := r.database()
	if err != nil {
		return err
	}
	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	telegram, err := services.NewTelegramService(r.config.Bot.Token, r.config.Delivery.RateLimit, r.logger)
	if err != nil {
		return err
	}

	catalogRepo := repositories.NewCatalogRepository(db)
	cache := catalog.NewCache(catalogRepo, r.config.Cache.RefreshInterval(), r.logger)
	coordinator := delivery.NewCoordinator(telegram, r.config.Bot.StorageChannelID, r.logger)

	b := bot.New(bot.Opts{
		Telegram:    telegram,
		Coordinator: coordinator,
		Cache:       cache,
		Detector:    catalog.NewDetector(catalogRepo),
		Entries:     catalogRepo,
		Series:      repositories.NewSeriesRepository(db),
		Categories:  repositories.NewCategoryRepository(db),
		Users:       repositories.NewUserRepository(db),
		Config:      r.config,
		Logger:      r.logger,
	})

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return b.Run(runCtx)
}
