package ascospore_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ascospore "github.com/farcloser/ascospore"
)

// cleanMetrics is a full set of values that PASS every check under the
// human/WGS profile.
func cleanMetrics() *ascospore.RawMetrics {
	return &ascospore.RawMetrics{
		PerBaseQuality:    &ascospore.QualityMetric{Mean: 34.0, Median: 36.0},
		GCContent:         &ascospore.PercentMetric{Percent: 41.2},
		DuplicationLevels: &ascospore.PercentMetric{Percent: 12.0},
		AdapterContent:    &ascospore.PercentMetric{Percent: 0.5},
		Overrepresented:   &ascospore.OverrepresentedMetric{Count: 0},
	}
}

func humanWGS() ascospore.Options {
	return ascospore.Options{Organism: "human", Experiment: "wgs"}
}

func TestAnalyzeCleanSample(t *testing.T) {
	t.Parallel()

	report, err := ascospore.Analyze("SRR0001", cleanMetrics(), humanWGS())
	require.NoError(t, err)

	assert.Equal(t, "SRR0001", report.SampleName)
	assert.Equal(t, ascospore.StatusPass, report.OverallStatus)
	assert.Equal(t, "Organism: Human | Experiment: Whole-Genome Sequencing", report.ProfileInfo)
	assert.Len(t, report.Metrics, 5)
	assert.Empty(t, report.AllRecommendations)
	assert.NotNil(t, report.AllRecommendations)
}

func TestAnalyzeOverallStatusIsWorstMetric(t *testing.T) {
	t.Parallel()

	// One WARN among passes.
	raw := cleanMetrics()
	raw.AdapterContent.Percent = 7.5

	report, err := ascospore.Analyze("s", raw, humanWGS())
	require.NoError(t, err)
	assert.Equal(t, ascospore.StatusWarn, report.OverallStatus)

	// One FAIL outranks any number of warns.
	raw.AdapterContent.Percent = 12.0

	report, err = ascospore.Analyze("s", raw, humanWGS())
	require.NoError(t, err)
	assert.Equal(t, ascospore.StatusFail, report.OverallStatus)
}

func TestAnalyzeMissingMetricFails(t *testing.T) {
	t.Parallel()

	raw := cleanMetrics()
	raw.GCContent = nil

	report, err := ascospore.Analyze("s", raw, humanWGS())
	require.NoError(t, err)

	assert.Equal(t, ascospore.StatusFail, report.OverallStatus)

	gc, ok := report.Metrics.Get(ascospore.MetricGCContent)
	require.True(t, ok)
	assert.Equal(t, ascospore.StatusFail, gc.Status)
	assert.Equal(t, true, gc.Details["missing"])
	assert.Contains(t, report.AllRecommendations, "Verify the QC report is complete and re-run the parser")
}

func TestAnalyzeNilMetrics(t *testing.T) {
	t.Parallel()

	// A nil metric set behaves like an all-missing one.
	report, err := ascospore.Analyze("s", nil, humanWGS())
	require.NoError(t, err)

	assert.Equal(t, ascospore.StatusFail, report.OverallStatus)
	assert.Len(t, report.Metrics, 5)
}

func TestAnalyzeUnknownProfile(t *testing.T) {
	t.Parallel()

	_, err := ascospore.Analyze("s", cleanMetrics(), ascospore.Options{
		Organism:   "klingon",
		Experiment: "wgs",
	})

	var unknownOrg *ascospore.UnknownOrganismError

	require.ErrorAs(t, err, &unknownOrg)

	_, err = ascospore.Analyze("s", cleanMetrics(), ascospore.Options{
		Organism:   "human",
		Experiment: "nanopore",
	})

	var unknownExp *ascospore.UnknownExperimentError

	require.ErrorAs(t, err, &unknownExp)
}

func TestAnalyzeExpectedGCOverride(t *testing.T) {
	t.Parallel()

	// 55% GC fails the human default but passes an explicit override.
	raw := cleanMetrics()
	raw.GCContent.Percent = 55.0

	report, err := ascospore.Analyze("s", raw, humanWGS())
	require.NoError(t, err)

	gc, _ := report.Metrics.Get(ascospore.MetricGCContent)
	assert.Equal(t, ascospore.StatusFail, gc.Status)

	expected := 55.0
	opts := humanWGS()
	opts.ExpectedGC = &expected

	report, err = ascospore.Analyze("s", raw, opts)
	require.NoError(t, err)

	gc, _ = report.Metrics.Get(ascospore.MetricGCContent)
	assert.Equal(t, ascospore.StatusPass, gc.Status)
}

func TestAnalyzeRNASeqDuplication(t *testing.T) {
	t.Parallel()

	raw := cleanMetrics()
	raw.DuplicationLevels.Percent = 86.1

	// WGS: severe duplication fails outright.
	report, err := ascospore.Analyze("s", raw, humanWGS())
	require.NoError(t, err)
	assert.Equal(t, ascospore.StatusFail, report.OverallStatus)

	// RNA-seq: the same value warns and the advice flips.
	report, err = ascospore.Analyze("s", raw, ascospore.Options{Organism: "human", Experiment: "rnaseq"})
	require.NoError(t, err)
	assert.Equal(t, ascospore.StatusWarn, report.OverallStatus)
	assert.Contains(t, report.AllRecommendations, "Do not remove duplicates: they carry real biological signal")
	assert.NotContains(t, report.AllRecommendations, "Consider duplicate removal (e.g. Picard MarkDuplicates)")
}

func TestAnalyzeIdempotent(t *testing.T) {
	t.Parallel()

	raw := cleanMetrics()
	raw.DuplicationLevels.Percent = 35.0
	raw.AdapterContent.Percent = 12.0

	first, err := ascospore.Analyze("s", raw, humanWGS())
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)

	for range 5 {
		again, err := ascospore.Analyze("s", raw, humanWGS())
		require.NoError(t, err)

		againJSON, err := json.Marshal(again)
		require.NoError(t, err)

		assert.Equal(t, string(firstJSON), string(againJSON))
	}
}

func TestReportJSONShape(t *testing.T) {
	t.Parallel()

	report, err := ascospore.Analyze("SRR0001", cleanMetrics(), humanWGS())
	require.NoError(t, err)

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage

	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{"sample_name", "overall_status", "profile_info", "metrics", "all_recommendations"} {
		assert.Contains(t, decoded, key)
	}

	var metrics map[string]json.RawMessage

	require.NoError(t, json.Unmarshal(decoded["metrics"], &metrics))

	for _, key := range []string{
		"per_base_quality", "gc_content", "duplication_levels",
		"adapter_content", "overrepresented_sequences",
	} {
		assert.Contains(t, metrics, key)
	}

	// Statuses serialize as their display strings.
	var status string

	require.NoError(t, json.Unmarshal(decoded["overall_status"], &status))
	assert.Equal(t, "PASS", status)
}

func TestMetricsJSONPreservesOrder(t *testing.T) {
	t.Parallel()

	report, err := ascospore.Analyze("s", cleanMetrics(), humanWGS())
	require.NoError(t, err)

	data, err := json.Marshal(report.Metrics)
	require.NoError(t, err)

	// The metrics object is rendered in canonical evaluation order, not
	// map order.
	text := string(data)

	prev := -1

	for _, key := range []string{
		`"per_base_quality"`, `"gc_content"`, `"duplication_levels"`,
		`"adapter_content"`, `"overrepresented_sequences"`,
	} {
		idx := indexAfter(text, key, prev)
		require.GreaterOrEqual(t, idx, 0, "key %s not found in order", key)

		prev = idx
	}
}

func indexAfter(s, sub string, after int) int {
	for i := after + 1; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}

	return -1
}
