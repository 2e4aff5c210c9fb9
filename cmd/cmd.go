// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "input-format",
			Aliases: []string{"i"},
			Usage:   "Encoding of stdin (json or yaml)",
			Value:   "json",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (json, text, csv, toon); defaults to the config file",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print JSON output",
		},
	}
}

// groupCommand groups track titles by release year
func groupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "group",
		Aliases: []string{"by-year"},
		Usage:   "Group track titles by year, sorted within each year",
		Flags:   outputFlags(),
		Action:  r.Group,
	}
}

// filterCommand filters tracks and adds decade labels
func filterCommand(r *Runner) *cli.Command {
	flags := append(outputFlags(),
		&cli.FloatFlag{
			Name:  "min-year",
			Usage: "Exclude tracks released before this year",
		},
		&cli.FloatFlag{
			Name:  "max-year",
			Usage: "Exclude tracks released after this year",
		},
		&cli.StringFlag{
			Name:    "artist",
			Aliases: []string{"a"},
			Usage:   "Keep only tracks by this artist (case-insensitive)",
		},
	)

	return &cli.Command{
		Name:   "filter",
		Usage:  "Filter tracks by year range and artist, adding each track's decade",
		Flags:  flags,
		Action: r.Filter,
	}
}

// configCommand manages the configuration file
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write an example config.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Where to write the config file",
						Value: "config.toml",
					},
				},
				Action: r.ConfigInit,
			},
			{
				Name:   "show",
				Usage:  "Print the effective configuration as TOML",
				Action: r.ConfigShow,
			},
		},
	}
}
