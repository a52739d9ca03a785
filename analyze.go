package ascospore

import (
	"fmt"

	"github.com/farcloser/ascospore/internal/advice"
	"github.com/farcloser/ascospore/internal/profile"
	"github.com/farcloser/ascospore/internal/rules"
	"github.com/farcloser/ascospore/internal/types"
)

/*
Usage:

	raw := &ascospore.RawMetrics{
	    GCContent:      &ascospore.PercentMetric{Percent: 49.7},
	    PerBaseQuality: &ascospore.QualityMetric{Mean: 34.2, Median: 36.0},
	}

	report, err := ascospore.Analyze("SRR123", raw, ascospore.Options{
	    Organism:   "human",
	    Experiment: "rnaseq",
	})
	if report.OverallStatus == ascospore.StatusFail {
	    fmt.Println("sample failed QC")
	}

	// Batch
	result := ascospore.AnalyzeBatch(ctx, samples, ascospore.BatchOptions{
	    Options:     ascospore.Options{Organism: "human", Experiment: "wgs"},
	    Concurrency: 8,
	})
*/

// Options configure a single-sample analysis.
type Options struct {
	// Organism is free-text organism input ("human", "Homo sapiens", ...).
	Organism string

	// Experiment is free-text experiment-type input ("rnaseq", "RNA seq", ...).
	Experiment string

	// ExpectedGC, when non-nil, overrides the expected GC percentage from
	// both profiles.
	ExpectedGC *float64

	// Catalog to resolve against. Nil uses the builtin catalog.
	Catalog *Catalog
}

func (o Options) catalog() *Catalog {
	if o.Catalog != nil {
		return o.Catalog
	}

	return profile.Builtin()
}

// Analyze runs the full single-sample pipeline: resolve profiles, merge,
// evaluate each metric, derive recommendations, and assemble the report.
// It is pure and safe to call concurrently. Resolution failures are fatal
// and returned as *UnknownOrganismError / *UnknownExperimentError.
func Analyze(sampleName string, raw *RawMetrics, opts Options) (*SampleReport, error) {
	cat := opts.catalog()

	org, err := cat.ResolveOrganism(opts.Organism)
	if err != nil {
		return nil, err
	}

	exp, err := cat.ResolveExperiment(opts.Experiment)
	if err != nil {
		return nil, err
	}

	eff := profile.Merge(org, exp, opts.ExpectedGC)

	if raw == nil {
		raw = &RawMetrics{}
	}

	results := rules.Evaluate(eff, raw)

	return &SampleReport{
		SampleName:         sampleName,
		OverallStatus:      overallStatus(results),
		ProfileInfo:        profileInfo(eff),
		Metrics:            results,
		AllRecommendations: advice.Recommend(eff, results),
	}, nil
}

// overallStatus is the maximum severity across all metric results.
// It is always derived from the metric set, never stored independently.
func overallStatus(results Metrics) Status {
	overall := types.StatusPass
	for _, result := range results {
		if result.Status > overall {
			overall = result.Status
		}
	}

	return overall
}

func profileInfo(eff EffectiveProfile) string {
	return fmt.Sprintf("Organism: %s | Experiment: %s", eff.OrganismName, eff.ExperimentName)
}

// profileNotes builds the aggregate-stats qualifier per tracked metric,
// using the same experiment-aware wording as the per-sample summaries.
func profileNotes(eff EffectiveProfile) map[string]string {
	duplication := "standard duplication expectations"
	if eff.Duplication.AllowHigh {
		duplication = fmt.Sprintf("high duplication is normal for %s", eff.ExperimentName)
	}

	return map[string]string{
		MetricPerBaseQuality: fmt.Sprintf("mean Phred score; excellent tier is Q%.0f", eff.Quality.ExcellentMean),
		MetricGCContent:      fmt.Sprintf("expected ~%.1f%% for %s", eff.ExpectedGC, eff.OrganismName),
		MetricDuplication:    duplication,
		MetricAdapterContent: fmt.Sprintf("acceptable below %.1f%%", eff.Adapters.Acceptable),
	}
}
