// Package rules evaluates raw metric values against an effective profile,
// producing one verdict per recognized metric.
package rules

import (
	"fmt"

	"github.com/farcloser/ascospore/internal/profile"
	"github.com/farcloser/ascospore/internal/types"
)

// Evaluator turns one metric's raw value into a verdict. Evaluators are
// pure; the raw input is echoed into the result's detail mapping.
type Evaluator func(eff profile.Effective, raw *types.RawMetrics) types.MetricResult

// table maps metric identifiers to evaluators in canonical evaluation
// order. Adding a metric means adding one row here plus its evaluator.
//
//nolint:gochecknoglobals // configuration data, effectively const
var table = []struct {
	metric string
	eval   Evaluator
}{
	{types.MetricPerBaseQuality, evaluateQuality},
	{types.MetricGCContent, evaluateGC},
	{types.MetricDuplication, evaluateDuplication},
	{types.MetricAdapterContent, evaluateAdapter},
	{types.MetricOverrepresented, evaluateOverrepresented},
}

// Evaluate produces one MetricResult per recognized metric, in canonical
// order. A metric absent from the input yields a FAIL result with a
// missing-data summary; absence is never silently skipped.
func Evaluate(eff profile.Effective, raw *types.RawMetrics) types.Metrics {
	out := make(types.Metrics, 0, len(table))
	for _, entry := range table {
		out = append(out, entry.eval(eff, raw))
	}

	return out
}

func missing(metric string) types.MetricResult {
	return types.MetricResult{
		Metric:  metric,
		Status:  types.StatusFail,
		Summary: fmt.Sprintf("Missing data: %s not present in parsed input", metric),
		Details: map[string]any{"missing": true},
	}
}

func evaluateQuality(eff profile.Effective, raw *types.RawMetrics) types.MetricResult {
	input := raw.PerBaseQuality
	if input == nil {
		return missing(types.MetricPerBaseQuality)
	}

	tiers := eff.Quality
	details := map[string]any{
		"mean":   input.Mean,
		"median": input.Median,
	}

	var (
		status  types.Status
		summary string
	)

	switch {
	case input.Mean >= tiers.ExcellentMean && input.Median >= tiers.ExcellentMedian:
		status = types.StatusPass
		summary = fmt.Sprintf("Excellent quality: mean Q=%.1f, median Q=%.1f", input.Mean, input.Median)
	case input.Mean >= tiers.AcceptableMean && input.Median >= tiers.AcceptableMedian:
		status = types.StatusWarn
		summary = fmt.Sprintf("Acceptable quality: mean Q=%.1f, median Q=%.1f", input.Mean, input.Median)
	default:
		status = types.StatusFail
		summary = fmt.Sprintf("Poor quality: mean Q=%.1f, median Q=%.1f", input.Mean, input.Median)
	}

	if input.TailMean != nil {
		details["tail_mean"] = *input.TailMean

		if *input.TailMean < tiers.AcceptableMean {
			details["tail_drop"] = true
		}
	}

	return types.MetricResult{
		Metric:  types.MetricPerBaseQuality,
		Status:  status,
		Summary: summary,
		Details: details,
	}
}

func evaluateGC(eff profile.Effective, raw *types.RawMetrics) types.MetricResult {
	input := raw.GCContent
	if input == nil {
		return missing(types.MetricGCContent)
	}

	deviation := input.Percent - eff.ExpectedGC
	if deviation < 0 {
		deviation = -deviation
	}

	details := map[string]any{
		"percent":   input.Percent,
		"expected":  eff.ExpectedGC,
		"deviation": deviation,
		"tolerance": eff.GCTolerance,
	}

	var (
		status  types.Status
		summary string
	)

	switch {
	case deviation <= eff.GCTolerance:
		status = types.StatusPass
		summary = fmt.Sprintf("Normal GC content: %.1f%% (expected ~%.1f%%)", input.Percent, eff.ExpectedGC)
	case deviation <= eff.GCTolerance*2:
		status = types.StatusWarn
		summary = fmt.Sprintf(
			"GC content %.1f%% deviates %.1f%% from expected %.1f%%",
			input.Percent, deviation, eff.ExpectedGC,
		)
	default:
		status = types.StatusFail
		summary = fmt.Sprintf(
			"GC content %.1f%% deviates %.1f%% from expected %.1f%%",
			input.Percent, deviation, eff.ExpectedGC,
		)
	}

	return types.MetricResult{
		Metric:  types.MetricGCContent,
		Status:  status,
		Summary: summary,
		Details: details,
	}
}

func evaluateDuplication(eff profile.Effective, raw *types.RawMetrics) types.MetricResult {
	input := raw.DuplicationLevels
	if input == nil {
		return missing(types.MetricDuplication)
	}

	thresholds := eff.Duplication
	details := map[string]any{
		"percent":    input.Percent,
		"acceptable": thresholds.Acceptable,
		"critical":   thresholds.Critical,
	}

	var (
		status  types.Status
		summary string
	)

	if thresholds.AllowHigh {
		// Experiment types where duplication is expected biology never
		// escalate beyond WARN; the summary names the cause.
		details["expected_high"] = true

		if input.Percent <= thresholds.Acceptable {
			status = types.StatusPass
			summary = fmt.Sprintf("Duplication: %.1f%% (normal for %s)", input.Percent, eff.ExperimentName)
		} else {
			status = types.StatusWarn
			summary = fmt.Sprintf(
				"High duplication: %.1f%% (expected for %s: %s)",
				input.Percent, eff.ExperimentName, thresholds.Cause,
			)
		}
	} else {
		switch {
		case input.Percent <= thresholds.Acceptable:
			status = types.StatusPass
			summary = fmt.Sprintf("Low duplication: %.1f%%", input.Percent)
		case input.Percent <= thresholds.Critical:
			status = types.StatusWarn
			summary = fmt.Sprintf("Moderate duplication: %.1f%%", input.Percent)
		default:
			status = types.StatusFail
			summary = fmt.Sprintf("High duplication: %.1f%%", input.Percent)
		}
	}

	return types.MetricResult{
		Metric:  types.MetricDuplication,
		Status:  status,
		Summary: summary,
		Details: details,
	}
}

func evaluateAdapter(eff profile.Effective, raw *types.RawMetrics) types.MetricResult {
	input := raw.AdapterContent
	if input == nil {
		return missing(types.MetricAdapterContent)
	}

	thresholds := eff.Adapters
	details := map[string]any{
		"percent":    input.Percent,
		"acceptable": thresholds.Acceptable,
		"critical":   thresholds.Critical,
	}

	var (
		status  types.Status
		summary string
	)

	switch {
	case input.Percent <= thresholds.Acceptable:
		status = types.StatusPass
		summary = fmt.Sprintf("Minimal adapter content: %.2f%%", input.Percent)
	case input.Percent <= thresholds.Critical:
		status = types.StatusWarn
		summary = fmt.Sprintf("Adapter content detected: %.2f%%", input.Percent)
	default:
		status = types.StatusFail
		summary = fmt.Sprintf("High adapter content: %.2f%%", input.Percent)
	}

	return types.MetricResult{
		Metric:  types.MetricAdapterContent,
		Status:  status,
		Summary: summary,
		Details: details,
	}
}

const maxExampleEcho = 5

func evaluateOverrepresented(eff profile.Effective, raw *types.RawMetrics) types.MetricResult {
	input := raw.Overrepresented
	if input == nil {
		return missing(types.MetricOverrepresented)
	}

	thresholds := eff.Overrepresented

	examples := input.Examples
	if len(examples) > maxExampleEcho {
		examples = examples[:maxExampleEcho]
	}

	details := map[string]any{
		"count":    input.Count,
		"examples": examples,
	}

	var (
		status  types.Status
		summary string
	)

	switch {
	case input.Count == 0:
		status = types.StatusPass
		summary = "No overrepresented sequences detected"
	case input.Count <= thresholds.PassCount:
		status = types.StatusPass
		summary = fmt.Sprintf("Few overrepresented sequences: %d", input.Count)
	case input.Count <= thresholds.WarnCount:
		status = types.StatusWarn
		summary = fmt.Sprintf("Multiple overrepresented sequences: %d", input.Count)
	default:
		status = types.StatusFail
		summary = fmt.Sprintf("Many overrepresented sequences: %d", input.Count)
	}

	return types.MetricResult{
		Metric:  types.MetricOverrepresented,
		Status:  status,
		Summary: summary,
		Details: details,
	}
}
