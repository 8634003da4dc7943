// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// setupCommand initializes the database and configuration file
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Initialize database and run migrations",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Setup,
	}
}

// serveCommand runs the bot against the Telegram Bot API
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Run the bot (long polling)",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Serve,
	}
}

// catalogCommand handles movie catalog operations
func catalogCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "catalog",
		Aliases: []string{"movies"},
		Usage:   "Movie catalog operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all catalog entries",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.CatalogList,
			},
			{
				Name:  "search",
				Usage: "Search entries by title terms",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "query",
					},
				},
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.CatalogSearch,
			},
			{
				Name:  "add",
				Usage: "Add a catalog entry",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Archived message ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Entry title",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "category",
						Usage: "Category name",
						Value: "Other",
					},
					&cli.StringFlag{
						Name:  "ref",
						Usage: "Content reference for direct sends",
					},
					&cli.StringFlag{
						Name:  "kind",
						Usage: "Media kind (document or video)",
						Value: "document",
					},
				},
				Action: r.CatalogAdd,
			},
			{
				Name:  "rename",
				Usage: "Rename a catalog entry",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Archived message ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "title",
						Usage:    "New title",
						Required: true,
					},
				},
				Action: r.CatalogRename,
			},
			{
				Name:  "recategorize",
				Usage: "Move a catalog entry to another category",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Archived message ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "category",
						Usage:    "New category",
						Required: true,
					},
				},
				Action: r.CatalogRecategorize,
			},
			{
				Name:    "remove",
				Aliases: []string{"rm"},
				Usage:   "Remove a catalog entry",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Archived message ID",
						Required: true,
					},
				},
				Action: r.CatalogRemove,
			},
			{
				Name:  "duplicates",
				Usage: "Report duplicated titles",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.CatalogDuplicates,
			},
			{
				Name:  "export",
				Usage: "Export the catalog to a file",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:  "format",
						Usage: "Export format (csv, markdown, text)",
						Value: "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				},
				Action: r.CatalogExport,
			},
		},
	}
}

// seriesCommand handles series operations
func seriesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "series",
		Usage: "Series operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all series",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.SeriesList,
			},
			{
				Name:  "add",
				Usage: "Add a series",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Archived message ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Series title",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "ref",
						Usage:    "Content reference for direct sends",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "kind",
						Usage: "Media kind (document or video)",
						Value: "document",
					},
				},
				Action: r.SeriesAdd,
			},
			{
				Name:    "remove",
				Aliases: []string{"rm"},
				Usage:   "Remove a series",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Archived message ID",
						Required: true,
					},
				},
				Action: r.SeriesRemove,
			},
		},
	}
}

// usersCommand handles registered user operations
func usersCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "Registered user operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List registered users",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.UsersList,
			},
			{
				Name:  "promote",
				Usage: "Grant a user admin rights",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Telegram user ID",
						Required: true,
					},
				},
				Action: r.UsersPromote,
			},
		},
	}
}

// cacheCommand handles the in-memory catalog cache
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Catalog cache operations",
		Commands: []*cli.Command{
			{
				Name:   "refresh",
				Usage:  "Load the catalog and print a summary",
				Flags:  []cli.Flag{configFlag()},
				Action: r.CacheRefresh,
			},
			{
				Name:  "stats",
				Usage: "Print library counters and cache settings",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.CacheStats,
			},
		},
	}
}

// tuiCommand launches the interactive library browser
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Browse the library interactively",
		Flags:  []cli.Flag{configFlag()},
		Action: r.TUI,
	}
}
