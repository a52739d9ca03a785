package advice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farcloser/ascospore/internal/advice"
	"github.com/farcloser/ascospore/internal/profile"
	"github.com/farcloser/ascospore/internal/types"
)

func standardEff() profile.Effective {
	return profile.Effective{
		ExperimentName: "Whole-Genome Sequencing",
		Duplication:    profile.DuplicationThresholds{Acceptable: 20.0, Critical: 50.0},
	}
}

func rnaEff() profile.Effective {
	return profile.Effective{
		ExperimentName: "RNA-seq",
		Duplication: profile.DuplicationThresholds{
			Acceptable: 60.0,
			Critical:   90.0,
			AllowHigh:  true,
			Cause:      "abundant transcripts produce duplicate reads",
		},
	}
}

func metricResult(metric string, status types.Status, details map[string]any) types.MetricResult {
	return types.MetricResult{Metric: metric, Status: status, Details: details}
}

func TestRecommendAllPassIsEmpty(t *testing.T) {
	t.Parallel()

	results := types.Metrics{
		metricResult(types.MetricPerBaseQuality, types.StatusPass, nil),
		metricResult(types.MetricGCContent, types.StatusPass, nil),
		metricResult(types.MetricDuplication, types.StatusPass, nil),
		metricResult(types.MetricAdapterContent, types.StatusPass, nil),
		metricResult(types.MetricOverrepresented, types.StatusPass, nil),
	}

	out := advice.Recommend(standardEff(), results)

	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestRecommendHighDuplicationSuppression(t *testing.T) {
	t.Parallel()

	results := types.Metrics{
		metricResult(types.MetricDuplication, types.StatusWarn, map[string]any{"expected_high": true}),
	}

	out := advice.Recommend(rnaEff(), results)

	assert.Contains(t, out, "High duplication is expected for this experiment type")
	assert.Contains(t, out, "Do not remove duplicates: they carry real biological signal")
	assert.NotContains(t, out, "Consider duplicate removal (e.g. Picard MarkDuplicates)")
	assert.NotContains(t, out, "Duplication may indicate PCR over-amplification")
}

func TestRecommendStandardDuplication(t *testing.T) {
	t.Parallel()

	results := types.Metrics{
		metricResult(types.MetricDuplication, types.StatusWarn, nil),
	}

	out := advice.Recommend(standardEff(), results)

	assert.Contains(t, out, "Consider duplicate removal (e.g. Picard MarkDuplicates)")
	assert.NotContains(t, out, "Do not remove duplicates: they carry real biological signal")
}

func TestRecommendFailBeforeWarn(t *testing.T) {
	t.Parallel()

	// Adapter failed, quality only warned: adapter advice leads even
	// though quality appears first in the result order.
	results := types.Metrics{
		metricResult(types.MetricPerBaseQuality, types.StatusWarn, nil),
		metricResult(types.MetricAdapterContent, types.StatusFail, nil),
	}

	out := advice.Recommend(standardEff(), results)

	adapterIdx := indexOf(t, out, "Adapter trimming is essential before analysis")
	qualityIdx := indexOf(t, out, "Consider quality filtering or trimming low-quality bases")
	assert.Less(t, adapterIdx, qualityIdx)
}

func TestRecommendTailDrop(t *testing.T) {
	t.Parallel()

	results := types.Metrics{
		metricResult(types.MetricPerBaseQuality, types.StatusWarn, map[string]any{"tail_drop": true}),
	}

	out := advice.Recommend(standardEff(), results)

	assert.Contains(t, out, "Quality drops at read ends: trim the last 5-10 bases")
}

func TestRecommendDeduplicates(t *testing.T) {
	t.Parallel()

	// Two missing metrics trigger the same advice once.
	results := types.Metrics{
		metricResult(types.MetricGCContent, types.StatusFail, map[string]any{"missing": true}),
		metricResult(types.MetricAdapterContent, types.StatusFail, map[string]any{"missing": true}),
	}

	out := advice.Recommend(standardEff(), results)

	count := 0

	for _, text := range out {
		if text == "Verify the QC report is complete and re-run the parser" {
			count++
		}
	}

	assert.Equal(t, 1, count)
}

func TestRecommendDeterministic(t *testing.T) {
	t.Parallel()

	results := types.Metrics{
		metricResult(types.MetricPerBaseQuality, types.StatusFail, map[string]any{"tail_drop": true}),
		metricResult(types.MetricGCContent, types.StatusWarn, nil),
		metricResult(types.MetricDuplication, types.StatusWarn, nil),
		metricResult(types.MetricOverrepresented, types.StatusFail, nil),
	}

	first := advice.Recommend(standardEff(), results)

	for range 10 {
		assert.Equal(t, first, advice.Recommend(standardEff(), results))
	}
}

func indexOf(t *testing.T, haystack []string, needle string) int {
	t.Helper()

	for i, s := range haystack {
		if s == needle {
			return i
		}
	}

	t.Fatalf("%q not found in %v", needle, haystack)

	return -1
}
