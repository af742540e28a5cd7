package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/desertthunder/callx/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup writes a config file when none exists, then prepares the call database.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	config, created := r.ensureConfig(cmd.String("config"))
	if created {
		r.writePlain("✓ Config written: %s\n", cmd.String("config"))
	}

	r.logger.Info("preparing call store", "path", config.Database.Path)
	db, err := shared.OpenStore(config.Database)
	if err != nil {
		return fmt.Errorf("failed to prepare call store: %w", err)
	}
	if err := db.Close(); err != nil {
		r.logger.Warn("failed to close call store", "error", err)
	}

	r.writePlain("✓ Database ready: %s\n", config.Database.Path)
	if path, err := r.merger.Path(); err == nil {
		r.writePlain("Column layouts are saved to: %s\n", path)
	} else {
		r.writePlain("No rc file location found; set $CALLXRC or $HOME to save column layouts\n")
	}
	return nil
}

// ensureConfig loads the config at path, creating it from the embedded template first if missing.
// A config that cannot be written or parsed falls back to the defaults.
func (r *Runner) ensureConfig(path string) (*shared.Config, bool) {
	created := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := shared.CreateConfigFile(path); err != nil {
			r.logger.Warn("could not create config, continuing with defaults", "path", path, "error", err)
			return shared.DefaultConfig(), false
		}
		r.logger.Debug("config created from template", "path", path)
		created = true
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		r.logger.Warn("could not load config, continuing with defaults", "path", path, "error", err)
		return shared.DefaultConfig(), created
	}
	return config, created
}
