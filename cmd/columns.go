package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/callx/internal/formatter"
	"github.com/desertthunder/callx/internal/rcfile"
	"github.com/desertthunder/callx/internal/shared"
	"github.com/urfave/cli/v3"
)

type columnJSON struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Width       int    `json:"width"`
	Description string `json:"description"`
}

// ColumnsList prints every attribute of the catalog.
func (r *Runner) ColumnsList(ctx context.Context, cmd *cli.Command) error {
	attrs := r.catalog.Enumerate()

	if cmd.Bool("json") {
		out := make([]columnJSON, len(attrs))
		for i, a := range attrs {
			out[i] = columnJSON{Name: a.Name, Title: a.Title, Width: a.Width, Description: a.Description}
		}
		return r.writeJSON(out, true)
	}

	for _, a := range attrs {
		r.writePlain("%s %s %s\n", formatter.Cell(a.Name, 12), formatter.Cell(a.Title, 14), a.Description)
	}
	return nil
}

// ColumnsShow prints the active columns and the layer that supplied them.
func (r *Runner) ColumnsShow(ctx context.Context, cmd *cli.Command) error {
	active, source := r.activeColumns()
	tokens := r.catalog.Tokens(active)

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{"source": source, "columns": tokens}, true)
	}

	r.writePlainHeader(fmt.Sprintf("Active columns (%s)", source))
	for i, token := range tokens {
		r.writePlain("%2d. %s\n", i, token)
	}
	return nil
}

// ColumnsSave writes the given column tokens to the rc file.
func (r *Runner) ColumnsSave(ctx context.Context, cmd *cli.Command) error {
	tokens := cmd.Args().Slice()
	if len(tokens) == 0 {
		return fmt.Errorf("%w: at least one column", shared.ErrMissingArgument)
	}

	for _, token := range tokens {
		if _, ok := r.catalog.Lookup(token); !ok {
			return fmt.Errorf("%w: %s", shared.ErrUnknownColumn, token)
		}
	}

	selection := r.catalog.Resolve(tokens)
	path, err := r.merger.Save(selection)
	if errors.Is(err, rcfile.ErrPathUnresolved) {
		return fmt.Errorf("%w: set $%s or $%s, or rc.path in the config", err, rcfile.EnvPath, rcfile.EnvHome)
	}
	if err != nil {
		return err
	}

	r.logger.Info("column layout saved", "path", path, "columns", r.catalog.Tokens(selection))
	return r.writePlain("Column layout successfully saved to %s\n", path)
}
