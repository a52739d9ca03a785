//nolint:wrapcheck
package main

import (
	"fmt"
	"os"

	"github.com/farcloser/primordium/format"

	ascospore "github.com/farcloser/ascospore"
	"github.com/farcloser/ascospore/internal/output"
)

func outputReport(report *ascospore.SampleReport, formatName string) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	data := &format.Data{
		Object: report.SampleName,
		Meta:   output.ReportToMap(report),
	}

	return formatter.PrintAll([]*format.Data{data}, os.Stdout)
}

func outputBatch(result *ascospore.BatchResult, formatName string) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	data := &format.Data{
		Object: fmt.Sprintf("%d/%d samples processed", result.Processed, result.Total),
		Meta:   output.BatchToMap(result),
	}

	return formatter.PrintAll([]*format.Data{data}, os.Stdout)
}
