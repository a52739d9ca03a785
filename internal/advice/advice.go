// Package advice derives ordered, deduplicated recommendations from metric
// verdicts and the experiment context.
package advice

import (
	"github.com/farcloser/ascospore/internal/profile"
	"github.com/farcloser/ascospore/internal/types"
)

// rule is one row of the declarative recommendation table. A rule fires
// when the named metric carries the exact status, the experiment context
// matches, and (when set) the detail flag is present on the result.
type rule struct {
	metric string
	status types.Status

	// highDup restricts the rule to experiment types where high
	// duplication is (true) or is not (false) expected biology; nil
	// applies everywhere. Suppression of generic duplicate-removal
	// advice for RNA-seq-like experiments is expressed this way.
	highDup *bool

	// detailFlag, when non-empty, requires the result detail of that
	// name to be true.
	detailFlag string

	texts []string
}

//nolint:gochecknoglobals // configuration data, effectively const
var (
	highDupOnly  = ptr(true)
	standardOnly = ptr(false)
)

func ptr(b bool) *bool { return &b }

// ruleTable declaration order is the tiebreak within a severity group.
//
//nolint:gochecknoglobals // configuration data, effectively const
var ruleTable = []rule{
	// Missing data, any metric.
	{metric: "", status: types.StatusFail, detailFlag: "missing", texts: []string{
		"Verify the QC report is complete and re-run the parser",
	}},

	// Per-base quality.
	{metric: types.MetricPerBaseQuality, status: types.StatusFail, texts: []string{
		"Quality trimming strongly recommended",
		"Consider discarding this sample or re-sequencing",
	}},
	{metric: types.MetricPerBaseQuality, status: types.StatusWarn, texts: []string{
		"Consider quality filtering or trimming low-quality bases",
	}},
	{metric: types.MetricPerBaseQuality, status: types.StatusWarn, detailFlag: "tail_drop", texts: []string{
		"Quality drops at read ends: trim the last 5-10 bases",
	}},
	{metric: types.MetricPerBaseQuality, status: types.StatusFail, detailFlag: "tail_drop", texts: []string{
		"Quality drops at read ends: trim the last 5-10 bases",
	}},

	// GC content.
	{metric: types.MetricGCContent, status: types.StatusFail, texts: []string{
		"Severe GC bias detected",
		"Check for contamination, adapter dimers, or the wrong organism profile",
	}},
	{metric: types.MetricGCContent, status: types.StatusWarn, texts: []string{
		"GC content outside the expected range for this organism",
	}},

	// Duplication, standard experiments only.
	{metric: types.MetricDuplication, status: types.StatusFail, highDup: standardOnly, texts: []string{
		"Severe duplication detected: remove duplicates before downstream analysis",
		"May indicate low library complexity or PCR issues",
	}},
	{metric: types.MetricDuplication, status: types.StatusWarn, highDup: standardOnly, texts: []string{
		"Duplication may indicate PCR over-amplification",
		"Consider duplicate removal (e.g. Picard MarkDuplicates)",
	}},

	// Duplication, experiments where high duplication is expected. These
	// take precedence over the generic advice by construction: the rows
	// above never fire for high-duplication experiment types.
	{metric: types.MetricDuplication, status: types.StatusWarn, highDup: highDupOnly, texts: []string{
		"High duplication is expected for this experiment type",
		"Do not remove duplicates: they carry real biological signal",
	}},

	// Adapter content.
	{metric: types.MetricAdapterContent, status: types.StatusFail, texts: []string{
		"Adapter trimming is essential before analysis",
		"High adapter content may reduce mappability",
	}},
	{metric: types.MetricAdapterContent, status: types.StatusWarn, texts: []string{
		"Trim adapters with Cutadapt or Trimmomatic",
	}},

	// Overrepresented sequences.
	{metric: types.MetricOverrepresented, status: types.StatusFail, texts: []string{
		"Severe contamination likely",
		"BLAST overrepresented sequences to identify contaminants",
		"Consider re-library prep or sample cleanup",
	}},
	{metric: types.MetricOverrepresented, status: types.StatusWarn, texts: []string{
		"Check for contamination or adapter dimers",
		"BLAST overrepresented sequences to identify their source",
	}},
}

// Recommend derives the ordered recommendation list for a set of metric
// results. Output is grouped by descending triggering-metric severity,
// then rule declaration order; duplicates keep their first occurrence.
func Recommend(eff profile.Effective, results types.Metrics) []string {
	out := []string{}
	seen := make(map[string]bool)

	for _, severity := range []types.Status{types.StatusFail, types.StatusWarn} {
		for _, r := range ruleTable {
			if r.status != severity {
				continue
			}

			if r.highDup != nil && *r.highDup != eff.Duplication.AllowHigh {
				continue
			}

			if !fires(r, results) {
				continue
			}

			for _, text := range r.texts {
				if seen[text] {
					continue
				}

				seen[text] = true

				out = append(out, text)
			}
		}
	}

	return out
}

func fires(r rule, results types.Metrics) bool {
	for _, result := range results {
		if r.metric != "" && result.Metric != r.metric {
			continue
		}

		if result.Status != r.status {
			continue
		}

		if r.detailFlag != "" {
			flagged, _ := result.Details[r.detailFlag].(bool)
			if !flagged {
				continue
			}
		}

		return true
	}

	return false
}
