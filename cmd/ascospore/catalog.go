//nolint:wrapcheck
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/farcloser/primordium/format"
	"github.com/urfave/cli/v3"

	ascospore "github.com/farcloser/ascospore"
)

func organismsCommand() *cli.Command {
	return &cli.Command{
		Name:  "organisms",
		Usage: "List organism profiles in the builtin catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   "console",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			catalog := ascospore.DefaultCatalog()

			entries := make([]*format.Data, 0, len(catalog.Organisms()))

			for _, org := range catalog.Organisms() {
				meta := map[string]any{
					"name":         org.Name,
					"expected_gc":  fmt.Sprintf("%.1f%% (±%.1f%%)", org.GCContent.Mean, org.GCContent.Tolerance),
					"duplication":  fmt.Sprintf("%.0f%% / %.0f%%", org.Duplication.Acceptable, org.Duplication.Critical),
					"quality_tier": fmt.Sprintf("Q%.0f excellent, Q%.0f acceptable", org.Quality.ExcellentMean, org.Quality.AcceptableMean),
				}
				if len(org.Aliases) > 0 {
					meta["aliases"] = strings.Join(org.Aliases, ", ")
				}

				if org.Notes != "" {
					meta["notes"] = org.Notes
				}

				entries = append(entries, &format.Data{Object: org.Code, Meta: meta})
			}

			return printAll(entries, cmd.String("format"))
		},
	}
}

func experimentsCommand() *cli.Command {
	return &cli.Command{
		Name:  "experiments",
		Usage: "List experiment-type profiles in the builtin catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   "console",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			catalog := ascospore.DefaultCatalog()

			entries := make([]*format.Data, 0, len(catalog.Experiments()))

			for _, exp := range catalog.Experiments() {
				meta := map[string]any{
					"name":        exp.Name,
					"description": exp.Description,
				}
				if len(exp.Aliases) > 0 {
					meta["aliases"] = strings.Join(exp.Aliases, ", ")
				}

				if dup := exp.Overrides.Duplication; dup != nil && dup.AllowHigh {
					meta["duplication"] = fmt.Sprintf("high duplication tolerated (%s)", dup.Cause)
				}

				if exp.Notes != "" {
					meta["notes"] = exp.Notes
				}

				entries = append(entries, &format.Data{Object: exp.Code, Meta: meta})
			}

			return printAll(entries, cmd.String("format"))
		},
	}
}

func printAll(entries []*format.Data, formatName string) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	return formatter.PrintAll(entries, os.Stdout)
}
