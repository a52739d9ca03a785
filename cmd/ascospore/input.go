//nolint:wrapcheck
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/farcloser/primordium/fault"

	ascospore "github.com/farcloser/ascospore"
)

// sampleInput is the JSON document accepted by the analyze command.
type sampleInput struct {
	SampleName string                `json:"sample_name"`
	Metrics    *ascospore.RawMetrics `json:"metrics"`
}

// readInput reads the whole of a file path, or stdin for "-".
func readInput(source string) ([]byte, error) {
	if source == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", fault.ErrReadFailure, err)
		}

		return data, nil
	}

	data, err := os.ReadFile(source) //nolint:gosec // CLI tool reads user-specified report files
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", fault.ErrReadFailure, source, err)
	}

	return data, nil
}

func decodeSample(source string, data []byte) (ascospore.Sample, error) {
	var input sampleInput

	if err := json.Unmarshal(data, &input); err != nil {
		return ascospore.Sample{}, fmt.Errorf("%w: %s: %w", fault.ErrInvalidJSON, source, err)
	}

	name := input.SampleName
	if name == "" {
		name = sampleNameFromPath(source)
	}

	return ascospore.Sample{Name: name, Metrics: input.Metrics}, nil
}

func decodeSamples(source string, data []byte) ([]ascospore.Sample, error) {
	var inputs []sampleInput

	if err := json.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", fault.ErrInvalidJSON, source, err)
	}

	samples := make([]ascospore.Sample, 0, len(inputs))

	for idx, input := range inputs {
		name := input.SampleName
		if name == "" {
			name = fmt.Sprintf("sample_%d", idx+1)
		}

		samples = append(samples, ascospore.Sample{Name: name, Metrics: input.Metrics})
	}

	return samples, nil
}

// sampleNameFromPath falls back to the file base name without extension.
func sampleNameFromPath(source string) string {
	if source == "-" {
		return "stdin"
	}

	base := filepath.Base(source)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
