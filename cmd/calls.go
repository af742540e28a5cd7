package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/callx/internal/formatter"
	"github.com/desertthunder/callx/internal/shared"
	"github.com/desertthunder/callx/internal/tasks"
	"github.com/urfave/cli/v3"
)

// CallsList prints stored calls as a fixed-width table or JSON.
func (r *Runner) CallsList(ctx context.Context, cmd *cli.Command) error {
	repo, err := r.store()
	if err != nil {
		return err
	}
	defer r.Close()

	calls, err := repo.List(int(cmd.Int("limit")))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(calls, cmd.Bool("pretty"))
	}

	if len(calls) == 0 {
		return r.writePlain("No calls stored. Import some with 'callx calls import <file>'.\n")
	}

	active, _ := r.activeColumns()
	table, err := formatter.ExportToText(calls, active)
	if err != nil {
		return err
	}
	return r.writePlain("%s", table)
}

// CallsImport loads a JSON dump of calls into the store.
func (r *Runner) CallsImport(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		return fmt.Errorf("%w: path to a JSON call dump", shared.ErrMissingArgument)
	}

	repo, err := r.store()
	if err != nil {
		return err
	}
	defer r.Close()

	r.logger.Info("importing calls", "path", path)

	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			switch update.Phase {
			case tasks.ReadSource:
				r.writePlain("📥 %s\n", update.Message)
			case tasks.ImportCalls:
				r.writePlain("   %s\n", update.Message)
			case tasks.Summary:
				r.writePlain("\n%s\n", update.Message)
			}
		}
	}()

	importer := tasks.NewImporter(repo, shared.WithLogger(r.logger, "component", "import"))
	result, err := importer.ImportFile(ctx, path, progressCh)
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	if result.Failed > 0 {
		r.writePlain("\nFailed to import %d calls:\n", result.Failed)
		for _, f := range result.Failures {
			r.writePlain("  - %s: %v\n", f.CallID, f.Err)
		}
	}
	return nil
}

// CallsExport writes stored calls to a file using the active columns.
func (r *Runner) CallsExport(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	repo, err := r.store()
	if err != nil {
		return err
	}
	defer r.Close()

	calls, err := repo.List(int(cmd.Int("limit")))
	if err != nil {
		return err
	}

	active, source := r.activeColumns()
	r.logger.Debug("exporting calls", "format", format, "columns", r.catalog.Tokens(active), "source", source)

	path, err := formatter.WriteExport(format, calls, active, cmd.String("output"))
	if err != nil {
		return err
	}

	r.logger.Info("calls exported", "path", path, "count", len(calls))
	return r.writePlain("✓ Exported %d calls to %s\n", len(calls), path)
}

// CallsDelete removes a stored call.
func (r *Runner) CallsDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: call ID", shared.ErrMissingArgument)
	}

	repo, err := r.store()
	if err != nil {
		return err
	}
	defer r.Close()

	if err := repo.Delete(id); err != nil {
		return err
	}

	r.logger.Info("call deleted", "id", id)
	return r.writePlain("✓ Deleted call %s\n", id)
}
