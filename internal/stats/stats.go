// Package stats computes cross-sample aggregate statistics over successful
// sample reports.
package stats

import (
	"gonum.org/v1/gonum/stat"

	"github.com/farcloser/ascospore/internal/types"
)

// DefaultSigma is the default outlier threshold in standard deviations.
const DefaultSigma = 2.0

// tracked lists the numeric metrics aggregated across a batch, with the
// detail key carrying the raw value, in output order.
//
//nolint:gochecknoglobals // configuration data, effectively const
var tracked = []struct {
	metric string
	detail string
}{
	{types.MetricPerBaseQuality, "mean"},
	{types.MetricGCContent, "percent"},
	{types.MetricDuplication, "percent"},
	{types.MetricAdapterContent, "percent"},
}

// Aggregate computes per-metric mean, population standard deviation, and
// outlier flags over successful reports. A sample missing a metric (a FAIL
// verdict with no raw value) is excluded from that metric's denominators
// but still contributes the metrics it does carry. notes attaches the
// profile-aware qualifier per metric.
func Aggregate(reports []*types.SampleReport, sigma float64, notes map[string]string) types.AggregateStats {
	if sigma <= 0 {
		sigma = DefaultSigma
	}

	out := make(types.AggregateStats, 0, len(tracked))

	for _, t := range tracked {
		var (
			values  []float64
			samples []string
		)

		for _, report := range reports {
			result, ok := report.Metrics.Get(t.metric)
			if !ok {
				continue
			}

			value, ok := result.Details[t.detail].(float64)
			if !ok {
				continue
			}

			values = append(values, value)
			samples = append(samples, report.SampleName)
		}

		if len(values) == 0 {
			continue
		}

		mean := stat.Mean(values, nil)
		stddev := stat.PopStdDev(values, nil)

		outliers := []string{}

		if stddev > 0 {
			for i, value := range values {
				deviation := value - mean
				if deviation < 0 {
					deviation = -deviation
				}

				if deviation > sigma*stddev {
					outliers = append(outliers, samples[i])
				}
			}
		}

		out = append(out, types.MetricStatsEntry{
			Metric: t.metric,
			Stats: types.MetricStats{
				Mean:     mean,
				StdDev:   stddev,
				Outliers: outliers,
				Note:     notes[t.metric],
			},
		})
	}

	return out
}
