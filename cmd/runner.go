package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/callx/internal/catalog"
	"github.com/desertthunder/callx/internal/models"
	"github.com/desertthunder/callx/internal/rcfile"
	"github.com/desertthunder/callx/internal/repositories"
	"github.com/desertthunder/callx/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	logger     *log.Logger
	output     io.Writer
	db         *sql.DB
	repo       models.Repository
	catalog    *catalog.Catalog
	merger     *rcfile.Merger
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Logger     *log.Logger
	Output     io.Writer
	Repo       models.Repository // Opened lazily from Config.Database when nil
	Catalog    *catalog.Catalog
	Merger     *rcfile.Merger
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.New()
	}
	if opts.Merger == nil {
		opts.Merger = rcfile.NewMerger(rcfile.MergerOpts{
			Path:   opts.Config.RC.Path,
			Logger: shared.WithLogger(opts.Logger, "component", "rcfile"),
		})
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		logger:     opts.Logger,
		output:     opts.Output,
		repo:       opts.Repo,
		catalog:    opts.Catalog,
		merger:     opts.Merger,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, callsCommand, columnsCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger replaces the logger used by the runner and its merger.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
	r.merger = rcfile.NewMerger(rcfile.MergerOpts{
		Path:   r.config.RC.Path,
		Logger: shared.WithLogger(l, "component", "rcfile"),
	})
}

// store returns the call repository, opening the configured database on first use.
func (r *Runner) store() (models.Repository, error) {
	if r.repo != nil {
		return r.repo, nil
	}

	db, err := shared.OpenStore(r.config.Database)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("database opened", "path", r.config.Database.Path)

	r.db = db
	r.repo = repositories.NewCallRepository(db)
	return r.repo, nil
}

// Close releases the database opened by [Runner.store].
func (r *Runner) Close() error {
	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}

// activeColumns resolves the call list columns: rc file directives, then config, then catalog defaults.
//
// An rc file without directives, including one saved from an empty selection, defers to the next source.
func (r *Runner) activeColumns() ([]models.Attribute, string) {
	tokens, err := r.merger.Load()
	if err != nil {
		r.logger.Warn("failed to read rc file", "error", err)
	}
	if attrs := r.catalog.Resolve(tokens); len(attrs) > 0 {
		return attrs, "rc"
	}

	if attrs := r.catalog.Resolve(r.config.Display.Columns); len(attrs) > 0 {
		return attrs, "config"
	}

	return r.catalog.Defaults(), "default"
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
