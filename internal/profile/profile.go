// Package profile holds the organism and experiment-type expectation
// catalog, free-text resolution, and profile merging.
package profile

// GCExpectation is the expected GC percentage and tolerance band for an
// organism (or, rarely, an experiment override such as bisulfite).
type GCExpectation struct {
	Mean      float64 `yaml:"mean"`
	Tolerance float64 `yaml:"tolerance"`
}

// QualityTiers are the Phred-score thresholds for the per-base quality
// verdict. Meeting the excellent tier (both mean and median) is PASS,
// meeting only the acceptable tier is WARN, below that is FAIL.
type QualityTiers struct {
	ExcellentMean    float64 `yaml:"excellent_mean"`
	ExcellentMedian  float64 `yaml:"excellent_median"`
	AcceptableMean   float64 `yaml:"acceptable_mean"`
	AcceptableMedian float64 `yaml:"acceptable_median"`
}

// DuplicationThresholds control the duplication-level verdict.
// When AllowHigh is set, duplication above Acceptable degrades to WARN
// rather than FAIL, and Cause names the expected biological reason.
type DuplicationThresholds struct {
	Acceptable float64 `yaml:"acceptable"`
	Critical   float64 `yaml:"critical"`
	AllowHigh  bool    `yaml:"allow_high"`
	Cause      string  `yaml:"cause"`
}

// AdapterThresholds are percentage cutoffs for residual adapter content.
type AdapterThresholds struct {
	Acceptable float64 `yaml:"acceptable"`
	Critical   float64 `yaml:"critical"`
}

// OverrepThresholds are count cutoffs for overrepresented sequences.
type OverrepThresholds struct {
	PassCount int `yaml:"pass_count"`
	WarnCount int `yaml:"warn_count"`
}

// Organism is an immutable organism definition from the catalog.
type Organism struct {
	Code            string                `yaml:"code"`
	Name            string                `yaml:"name"`
	Aliases         []string              `yaml:"aliases"`
	GCContent       GCExpectation         `yaml:"gc_content"`
	Quality         QualityTiers          `yaml:"quality"`
	Duplication     DuplicationThresholds `yaml:"duplication"`
	Adapters        AdapterThresholds     `yaml:"adapters"`
	Overrepresented OverrepThresholds     `yaml:"overrepresented"`
	Notes           string                `yaml:"notes"`
}

// ExperimentOverrides are threshold overrides keyed by metric. A nil field
// means the organism value applies for that metric.
type ExperimentOverrides struct {
	PerBaseQuality  *QualityTiers          `yaml:"per_base_quality"`
	GCContent       *GCExpectation         `yaml:"gc_content"`
	Duplication     *DuplicationThresholds `yaml:"duplication_levels"`
	Adapters        *AdapterThresholds     `yaml:"adapter_content"`
	Overrepresented *OverrepThresholds     `yaml:"overrepresented_sequences"`
}

// Experiment is an immutable experiment-type definition from the catalog.
type Experiment struct {
	Code        string              `yaml:"code"`
	Name        string              `yaml:"name"`
	Description string              `yaml:"description"`
	Aliases     []string            `yaml:"aliases"`
	Overrides   ExperimentOverrides `yaml:"overrides"`
	Notes       string              `yaml:"notes"`
}

// Effective is the merged view of one organism and one experiment profile.
type Effective struct {
	OrganismName   string
	ExperimentName string
	ExperimentCode string

	ExpectedGC  float64
	GCTolerance float64

	Quality         QualityTiers
	Duplication     DuplicationThresholds
	Adapters        AdapterThresholds
	Overrepresented OverrepThresholds
}

// Merge combines an organism profile and an experiment profile into one
// effective profile. Experiment overrides win over organism defaults per
// metric; expectedGC, when non-nil, outranks both. Merge is pure and total:
// same inputs always produce the same Effective.
func Merge(org *Organism, exp *Experiment, expectedGC *float64) Effective {
	eff := Effective{
		OrganismName:   org.Name,
		ExperimentName: exp.Name,
		ExperimentCode: exp.Code,

		ExpectedGC:  org.GCContent.Mean,
		GCTolerance: org.GCContent.Tolerance,

		Quality:         org.Quality,
		Duplication:     org.Duplication,
		Adapters:        org.Adapters,
		Overrepresented: org.Overrepresented,
	}

	if gc := exp.Overrides.GCContent; gc != nil {
		eff.ExpectedGC = gc.Mean
		eff.GCTolerance = gc.Tolerance
	}

	if q := exp.Overrides.PerBaseQuality; q != nil {
		eff.Quality = *q
	}

	if d := exp.Overrides.Duplication; d != nil {
		eff.Duplication = *d
	}

	if a := exp.Overrides.Adapters; a != nil {
		eff.Adapters = *a
	}

	if o := exp.Overrides.Overrepresented; o != nil {
		eff.Overrepresented = *o
	}

	if expectedGC != nil {
		eff.ExpectedGC = *expectedGC
	}

	return eff
}
