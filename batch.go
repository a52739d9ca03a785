package ascospore

import (
	"context"
	"fmt"
	"sync"

	"github.com/farcloser/ascospore/internal/profile"
	"github.com/farcloser/ascospore/internal/stats"
	"github.com/farcloser/ascospore/internal/types"
)

// Sample pairs a sample name with its parsed metric mapping.
type Sample struct {
	Name    string      `json:"sample_name"`
	Metrics *RawMetrics `json:"metrics"`
}

// BatchOptions configure a batch run.
type BatchOptions struct {
	Options

	// Concurrency bounds the worker pool. Values below 1 mean 1.
	Concurrency int

	// Sigma is the outlier threshold in standard deviations (default 2.0).
	Sigma float64
}

// DefaultSigma is the default outlier threshold for aggregate statistics.
const DefaultSigma = stats.DefaultSigma

// AnalyzeBatch runs the single-sample pipeline over every sample with a
// bounded worker pool. Results are indexed at dispatch, so the returned
// order always equals input order regardless of completion order. Any
// per-sample failure (unknown profile, unexpected internal error) is
// captured as a failure record for that sample; other samples are
// unaffected. After cancellation, in-flight samples finish but no further
// samples start, and the skipped ones carry failure records.
func AnalyzeBatch(ctx context.Context, samples []Sample, opts BatchOptions) *BatchResult {
	workers := max(opts.Concurrency, 1)

	entries := make([]BatchEntry, len(samples))
	sem := make(chan struct{}, workers)

	var waitGroup sync.WaitGroup

	for idx, sample := range samples {
		if err := ctx.Err(); err != nil {
			entries[idx] = failureEntry(sample.Name, fmt.Sprintf("not dispatched: %v", err))

			continue
		}

		waitGroup.Add(1)

		go func(idx int, sample Sample) {
			defer waitGroup.Done()

			sem <- struct{}{}

			defer func() { <-sem }()

			if err := ctx.Err(); err != nil {
				entries[idx] = failureEntry(sample.Name, fmt.Sprintf("not started: %v", err))

				return
			}

			entries[idx] = analyzeOne(sample, opts.Options)
		}(idx, sample)
	}

	waitGroup.Wait()

	result := &BatchResult{
		Total:   len(samples),
		Samples: entries,
	}

	var reports []*SampleReport

	for idx := range entries {
		report := entries[idx].Report
		if report == nil {
			result.StatusCounts.Error++

			continue
		}

		result.Processed++

		reports = append(reports, report)

		switch report.OverallStatus {
		case StatusPass:
			result.StatusCounts.Pass++
		case StatusWarn:
			result.StatusCounts.Warn++
		case StatusFail:
			result.StatusCounts.Fail++
		}
	}

	result.AggregateStats = stats.Aggregate(reports, opts.Sigma, batchNotes(opts.Options))

	return result
}

// analyzeOne runs one task, converting resolution errors and panics into
// failure records so no task can abort the batch.
func analyzeOne(sample Sample, opts Options) (entry BatchEntry) {
	defer func() {
		if r := recover(); r != nil {
			err := &SampleAnalysisError{Sample: sample.Name, Err: fmt.Errorf("internal error: %v", r)}
			entry = failureEntry(sample.Name, err.Error())
		}
	}()

	report, err := Analyze(sample.Name, sample.Metrics, opts)
	if err != nil {
		return failureEntry(sample.Name, err.Error())
	}

	return BatchEntry{Report: report}
}

func failureEntry(name, reason string) BatchEntry {
	return BatchEntry{Failure: &types.SampleFailure{SampleName: name, Error: reason}}
}

// batchNotes resolves the batch-wide profile pair once to build aggregate
// qualifiers. If resolution fails every sample fails too, so empty notes
// are fine.
func batchNotes(opts Options) map[string]string {
	cat := opts.catalog()

	org, err := cat.ResolveOrganism(opts.Organism)
	if err != nil {
		return nil
	}

	exp, err := cat.ResolveExperiment(opts.Experiment)
	if err != nil {
		return nil
	}

	return profileNotes(profile.Merge(org, exp, opts.ExpectedGC))
}
