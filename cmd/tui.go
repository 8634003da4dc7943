package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lijaymere/filmzy-bot/internal/catalog"
	"github.com/lijaymere/filmzy-bot/internal/shared"
	"github.com/lijaymere/filmzy-bot/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive library browser.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	repo, err := r.catalogRepo()
	if err != nil {
		return err
	}
	users, err := r.userRepo()
	if err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/filmzy-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	cache := catalog.NewCache(repo, r.config.Cache.RefreshInterval(), fileLogger)
	model := ui.NewModel(ctx, cache, catalog.NewDetector(repo), users)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
