//nolint:wrapcheck
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli/v3"

	ascospore "github.com/farcloser/ascospore"
)

func batchCommand() *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Usage:     "Evaluate a JSON array of samples and summarize the cohort",
		ArgsUsage: "<file | ->",
		Flags: append(profileFlags(),
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"j"},
				Usage:   "Number of concurrent workers",
				Value:   runtime.NumCPU(),
			},
			&cli.FloatFlag{
				Name:  "sigma",
				Usage: "Outlier threshold in standard deviations",
				Value: ascospore.DefaultSigma,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   "console",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errInvalidArgCount, cmd.NArg())
			}

			inputPath := cmd.Args().First()

			data, err := readInput(inputPath)
			if err != nil {
				return err
			}

			samples, err := decodeSamples(inputPath, data)
			if err != nil {
				return err
			}

			opts, err := parseOptions(cmd)
			if err != nil {
				return err
			}

			workers := cmd.Int("workers")

			fmt.Fprintf(os.Stderr, "Evaluating %d samples (%d workers)\n", len(samples), max(workers, 1))

			result := ascospore.AnalyzeBatch(ctx, samples, ascospore.BatchOptions{
				Options:     opts,
				Concurrency: workers,
				Sigma:       cmd.Float("sigma"),
			})

			return outputBatch(result, cmd.String("format"))
		},
	}
}
