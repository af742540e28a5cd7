package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/callx/internal/shared"
	"github.com/desertthunder/callx/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive call list.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	logPath := r.config.Log.File
	if logPath == "" {
		logPath = "./tmp/callx-tui.log"
	}
	fileLogger, err := shared.NewFileLogger(logPath)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	shared.SetLogLevel(fileLogger, shared.ParseLogLevel(r.config.Log.Level))
	r.SetLogger(fileLogger)

	repo, err := r.store()
	if err != nil {
		return fmt.Errorf("failed to open call store: %w", err)
	}
	defer r.Close()

	active, source := r.activeColumns()
	r.logger.Info("starting call list", "columns", r.catalog.Tokens(active), "source", source)

	model := ui.NewModel(ctx, ui.Options{
		Repo:     repo,
		Catalog:  r.catalog,
		Saver:    r.merger,
		Logger:   shared.WithLogger(r.logger, "component", "ui"),
		Active:   active,
		PageSize: r.config.Display.PageSize,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
