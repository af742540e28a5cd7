// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

var configFlag = &cli.StringFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Usage:   "Path to configuration file",
	Value:   "config.toml",
}

func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Create the config file and initialize the call database",
		Flags:  []cli.Flag{configFlag},
		Action: r.Setup,
	}
}

// callsCommand handles the local call store
func callsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "calls",
		Usage: "Manage stored calls",
		Commands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List stored calls using the active columns",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of calls to return (0 for all)",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.CallsList,
			},
			{
				Name:  "import",
				Usage: "Import calls from a JSON dump",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "path"},
				},
				Action: r.CallsImport,
			},
			{
				Name:  "export",
				Usage: "Export stored calls using the active columns",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format (csv, md, json, txt)",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (defaults to calls.<format>)",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of calls to export (0 for all)",
					},
				},
				Action: r.CallsExport,
			},
			{
				Name:    "delete",
				Aliases: []string{"rm"},
				Usage:   "Delete a stored call by ID",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.CallsDelete,
			},
		},
	}
}

// columnsCommand inspects and persists the call list column layout
func columnsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "columns",
		Aliases: []string{"cols"},
		Usage:   "Inspect and save the call list columns",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List every available column",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.ColumnsList,
			},
			{
				Name:  "show",
				Usage: "Show the active columns and where they come from",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.ColumnsShow,
			},
			{
				Name:      "save",
				Usage:     "Save a column layout to the rc file",
				ArgsUsage: "<column> [column...]",
				Action:    r.ColumnsSave,
			},
		},
	}
}

func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"ui"},
		Usage:   "Browse calls in the interactive call list",
		Action:  r.TUI,
	}
}
