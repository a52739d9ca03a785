// Package output provides shared result serialization for ascospore JSON output.
package output

import (
	"github.com/farcloser/ascospore/internal/types"
)

// ReportToMap converts a sample report into the canonical map structure
// used for JSON and JSONL serialization.
func ReportToMap(report *types.SampleReport) map[string]any {
	meta := map[string]any{
		"overall_status": report.OverallStatus.String(),
		"profile_info":   report.ProfileInfo,
	}

	metrics := make(map[string]any, len(report.Metrics))
	for _, result := range report.Metrics {
		metrics[result.Metric] = metricToMap(&result)
	}

	meta["metrics"] = metrics
	meta["recommendations"] = report.AllRecommendations

	return meta
}

func metricToMap(result *types.MetricResult) map[string]any {
	return map[string]any{
		"status":  result.Status.String(),
		"summary": result.Summary,
		"details": result.Details,
	}
}

// BatchToMap converts a batch result into the canonical map structure.
func BatchToMap(batch *types.BatchResult) map[string]any {
	samples := make([]any, 0, len(batch.Samples))

	for idx := range batch.Samples {
		entry := &batch.Samples[idx]
		if entry.Report != nil {
			sample := ReportToMap(entry.Report)
			sample["sample_name"] = entry.Report.SampleName
			samples = append(samples, sample)

			continue
		}

		samples = append(samples, map[string]any{
			"sample_name": entry.Failure.SampleName,
			"error":       entry.Failure.Error,
		})
	}

	stats := make(map[string]any, len(batch.AggregateStats))
	for _, entry := range batch.AggregateStats {
		metric := map[string]any{
			"mean":     entry.Stats.Mean,
			"stddev":   entry.Stats.StdDev,
			"outliers": entry.Stats.Outliers,
		}
		if entry.Stats.Note != "" {
			metric["note"] = entry.Stats.Note
		}

		stats[entry.Metric] = metric
	}

	return map[string]any{
		"total":     batch.Total,
		"processed": batch.Processed,
		"status_counts": map[string]any{
			"pass":  batch.StatusCounts.Pass,
			"warn":  batch.StatusCounts.Warn,
			"fail":  batch.StatusCounts.Fail,
			"error": batch.StatusCounts.Error,
		},
		"samples":         samples,
		"aggregate_stats": stats,
	}
}
