// Package ascospore assesses sequencing-quality metrics against
// organism- and experiment-aware expectations, producing per-metric
// verdicts, an overall status, and ordered recommendations for one sample
// or a batch of samples.
package ascospore

import (
	"github.com/farcloser/ascospore/internal/profile"
	"github.com/farcloser/ascospore/internal/types"
)

// Verdict and report types, shared with the internal evaluation packages.
type (
	Status       = types.Status
	MetricResult = types.MetricResult
	Metrics      = types.Metrics
	SampleReport = types.SampleReport

	SampleFailure    = types.SampleFailure
	BatchEntry       = types.BatchEntry
	StatusCounts     = types.StatusCounts
	BatchResult      = types.BatchResult
	MetricStats      = types.MetricStats
	MetricStatsEntry = types.MetricStatsEntry
	AggregateStats   = types.AggregateStats

	RawMetrics            = types.RawMetrics
	QualityMetric         = types.QualityMetric
	PercentMetric         = types.PercentMetric
	OverrepresentedMetric = types.OverrepresentedMetric
)

const (
	StatusPass = types.StatusPass
	StatusWarn = types.StatusWarn
	StatusFail = types.StatusFail
)

// Canonical metric identifiers.
const (
	MetricPerBaseQuality  = types.MetricPerBaseQuality
	MetricGCContent       = types.MetricGCContent
	MetricDuplication     = types.MetricDuplication
	MetricAdapterContent  = types.MetricAdapterContent
	MetricOverrepresented = types.MetricOverrepresented
)

// Profile catalog types.
type (
	Catalog           = profile.Catalog
	OrganismProfile   = profile.Organism
	ExperimentProfile = profile.Experiment
	EffectiveProfile  = profile.Effective

	UnknownOrganismError   = profile.UnknownOrganismError
	UnknownExperimentError = profile.UnknownExperimentError
)

// DefaultCatalog returns the builtin, process-wide immutable catalog.
func DefaultCatalog() *Catalog {
	return profile.Builtin()
}
