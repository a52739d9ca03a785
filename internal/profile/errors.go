package profile

import (
	"fmt"
	"strings"
)

// UnknownOrganismError reports organism input that resolved to nothing,
// with near-miss catalog codes for diagnostics.
type UnknownOrganismError struct {
	Input       string
	Suggestions []string
}

func (e *UnknownOrganismError) Error() string {
	return unknownMessage("organism", e.Input, e.Suggestions)
}

// UnknownExperimentError reports experiment-type input that resolved to
// nothing, with near-miss catalog codes for diagnostics.
type UnknownExperimentError struct {
	Input       string
	Suggestions []string
}

func (e *UnknownExperimentError) Error() string {
	return unknownMessage("experiment type", e.Input, e.Suggestions)
}

func unknownMessage(kind, input string, suggestions []string) string {
	if len(suggestions) == 0 {
		return fmt.Sprintf("unknown %s %q", kind, input)
	}

	return fmt.Sprintf("unknown %s %q (did you mean: %s?)", kind, input, strings.Join(suggestions, ", "))
}
