// Package types holds the result and input structures shared between the
// root package and the internal evaluation packages.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Status is a per-metric (and overall) verdict level, ordered by severity.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusWarn:
		return "WARN"
	case StatusFail:
		return "FAIL"
	}

	return "UNKNOWN"
}

// MarshalJSON renders the status as its string form ("PASS", "WARN", "FAIL").
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses the string form back into a Status.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch raw {
	case "PASS":
		*s = StatusPass
	case "WARN":
		*s = StatusWarn
	case "FAIL":
		*s = StatusFail
	default:
		return fmt.Errorf("unknown status %q", raw)
	}

	return nil
}

// Canonical metric identifiers. These are the keys of the parser contract
// and the canonical evaluation order.
const (
	MetricPerBaseQuality  = "per_base_quality"
	MetricGCContent       = "gc_content"
	MetricDuplication     = "duplication_levels"
	MetricAdapterContent  = "adapter_content"
	MetricOverrepresented = "overrepresented_sequences"
)

// MetricNames lists all recognized metrics in canonical evaluation order.
//
//nolint:gochecknoglobals // configuration data, effectively const
var MetricNames = []string{
	MetricPerBaseQuality,
	MetricGCContent,
	MetricDuplication,
	MetricAdapterContent,
	MetricOverrepresented,
}

// QualityMetric carries averaged Phred scores for a sample.
type QualityMetric struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`

	// TailMean is the mean Phred score over the final stretch of the read,
	// when the parser supplies it. Used to report end-of-read quality drops.
	TailMean *float64 `json:"tail_mean,omitempty"`
}

// PercentMetric carries a single percentage value.
type PercentMetric struct {
	Percent float64 `json:"percent"`
}

// OverrepresentedMetric carries detected overrepresented sequences.
type OverrepresentedMetric struct {
	Count    int      `json:"count"`
	Examples []string `json:"examples"`
}

// RawMetrics is the metric mapping delivered by the external parser.
// A nil field means the metric was absent from the parsed report; absence
// is a QC finding, not a parse error.
type RawMetrics struct {
	PerBaseQuality    *QualityMetric         `json:"per_base_quality,omitempty"`
	GCContent         *PercentMetric         `json:"gc_content,omitempty"`
	DuplicationLevels *PercentMetric         `json:"duplication_levels,omitempty"`
	AdapterContent    *PercentMetric         `json:"adapter_content,omitempty"`
	Overrepresented   *OverrepresentedMetric `json:"overrepresented_sequences,omitempty"`
}

// MetricResult is the verdict for a single metric.
type MetricResult struct {
	Metric  string         `json:"-"`
	Status  Status         `json:"status"`
	Summary string         `json:"summary"`
	Details map[string]any `json:"details"`
}

// Metrics is an ordered collection of metric results. Order is the canonical
// evaluation order and is preserved in JSON output.
type Metrics []MetricResult

// Get returns the result for a metric by identifier.
func (m Metrics) Get(name string) (MetricResult, bool) {
	for _, result := range m {
		if result.Metric == name {
			return result, true
		}
	}

	return MetricResult{}, false
}

// MarshalJSON renders the collection as a JSON object keyed by metric name,
// preserving insertion order. A plain map would lose the canonical order.
func (m Metrics) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, result := range m {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(result.Metric)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(result)
		if err != nil {
			return nil, err
		}

		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// SampleReport is the full verdict for one sample.
type SampleReport struct {
	SampleName         string   `json:"sample_name"`
	OverallStatus      Status   `json:"overall_status"`
	ProfileInfo        string   `json:"profile_info"`
	Metrics            Metrics  `json:"metrics"`
	AllRecommendations []string `json:"all_recommendations"`
}

// SampleFailure records a sample whose analysis could not be completed.
type SampleFailure struct {
	SampleName string `json:"sample_name"`
	Error      string `json:"error"`
}

// BatchEntry is one per-sample outcome in a batch: either a report or a
// failure record, never both.
type BatchEntry struct {
	Report  *SampleReport
	Failure *SampleFailure
}

// MarshalJSON renders whichever side of the entry is populated.
func (e BatchEntry) MarshalJSON() ([]byte, error) {
	if e.Failure != nil {
		return json.Marshal(e.Failure)
	}

	return json.Marshal(e.Report)
}

// StatusCounts tallies per-sample outcomes across a batch.
type StatusCounts struct {
	Pass  int `json:"pass"`
	Warn  int `json:"warn"`
	Fail  int `json:"fail"`
	Error int `json:"error"`
}

// MetricStats summarizes one tracked metric across a batch.
type MetricStats struct {
	Mean     float64  `json:"mean"`
	StdDev   float64  `json:"stddev"`
	Outliers []string `json:"outliers"`
	Note     string   `json:"note"`
}

// MetricStatsEntry pairs a tracked metric name with its statistics.
type MetricStatsEntry struct {
	Metric string
	Stats  MetricStats
}

// AggregateStats is an ordered collection of per-metric batch statistics.
type AggregateStats []MetricStatsEntry

// Get returns the statistics for a metric by identifier.
func (a AggregateStats) Get(name string) (MetricStats, bool) {
	for _, entry := range a {
		if entry.Metric == name {
			return entry.Stats, true
		}
	}

	return MetricStats{}, false
}

// MarshalJSON renders the collection as a JSON object keyed by metric name,
// preserving tracked-metric order.
func (a AggregateStats) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, entry := range a {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(entry.Metric)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(entry.Stats)
		if err != nil {
			return nil, err
		}

		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// BatchResult is the assembled outcome of a batch run. Samples appear in
// original input order regardless of task completion order.
type BatchResult struct {
	Processed      int            `json:"processed"`
	Total          int            `json:"total"`
	StatusCounts   StatusCounts   `json:"status_counts"`
	Samples        []BatchEntry   `json:"samples"`
	AggregateStats AggregateStats `json:"aggregate_stats"`
}
