package ascospore

import "fmt"

// SampleAnalysisError wraps an unexpected failure while analyzing one
// sample. Batch runs capture these per sample instead of aborting.
type SampleAnalysisError struct {
	Sample string
	Err    error
}

func (e *SampleAnalysisError) Error() string {
	return fmt.Sprintf("sample %q: %v", e.Sample, e.Err)
}

func (e *SampleAnalysisError) Unwrap() error {
	return e.Err
}
