//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	ascospore "github.com/farcloser/ascospore"
)

var errInvalidArgCount = errors.New("expected exactly one argument: file path or \"-\" for stdin")

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Evaluate parsed QC metrics for a single sample",
		ArgsUsage: "<file | ->",
		Flags: append(profileFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   "console",
			},
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errInvalidArgCount, cmd.NArg())
			}

			inputPath := cmd.Args().First()

			data, err := readInput(inputPath)
			if err != nil {
				return err
			}

			sample, err := decodeSample(inputPath, data)
			if err != nil {
				return err
			}

			opts, err := parseOptions(cmd)
			if err != nil {
				return err
			}

			report, err := ascospore.Analyze(sample.Name, sample.Metrics, opts)
			if err != nil {
				return err
			}

			return outputReport(report, cmd.String("format"))
		},
	}
}

func profileFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "organism",
			Aliases: []string{"o"},
			Usage:   "Organism name, alias, or assembly (e.g. human, hg38, ecoli)",
			Value:   "human",
		},
		&cli.StringFlag{
			Name:    "experiment",
			Aliases: []string{"e"},
			Usage:   "Experiment type (e.g. wgs, rnaseq, chipseq)",
			Value:   "wgs",
		},
		&cli.FloatFlag{
			Name:  "expected-gc",
			Usage: "Override expected GC percentage (e.g. for custom references)",
		},
	}
}

func parseOptions(cmd *cli.Command) (ascospore.Options, error) {
	opts := ascospore.Options{
		Organism:   cmd.String("organism"),
		Experiment: cmd.String("experiment"),
	}

	if cmd.IsSet("expected-gc") {
		gc := cmd.Float("expected-gc")
		if gc <= 0 || gc >= 100 {
			return opts, fmt.Errorf("--expected-gc: %w", errInvalidGC)
		}

		opts.ExpectedGC = &gc
	}

	return opts, nil
}

var errInvalidGC = errors.New("must be between 0 and 100 exclusive")
