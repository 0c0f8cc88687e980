package sarif

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/hashicorp/go-hclog"
	"github.com/owenrumney/go-sarif/v2/sarif"
	"github.com/spf13/afero"

	scanioerrors "github.com/scan-io-git/sarif2md/pkg/shared/errors"
	"github.com/scan-io-git/sarif2md/pkg/shared/files"
)

type Report struct {
	*sarif.Report
	logger hclog.Logger
}

// ReadOptions tunes how a report is loaded.
type ReadOptions struct {
	// ExcludeSuppressed drops results that carry suppressions.
	ExcludeSuppressed bool
}

// readSarifReport reads path from fsys; displayPath is the path as the user gave it, used in errors.
func readSarifReport(fsys afero.Fs, path, displayPath string) (*sarif.Report, error) {
	data, err := files.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, scanioerrors.NewNotFoundError(displayPath, err)
		}
		return nil, fmt.Errorf("failed to read %s: %w", displayPath, err)
	}

	sarifReport, err := sarif.FromBytes(data)
	if err != nil {
		return nil, scanioerrors.NewParseError(displayPath, err)
	}
	return sarifReport, nil
}

// remove all results with Suppressions property
func removeSuppressedResults(report *sarif.Report) int {
	removed := 0
	for _, run := range report.Runs {
		if run == nil || run.Results == nil {
			continue
		}
		filteredResults := []*sarif.Result{}

		for _, result := range run.Results {
			if result != nil && len(result.Suppressions) > 0 {
				removed++
				continue
			}
			filteredResults = append(filteredResults, result)
		}

		run.Results = filteredResults
	}
	return removed
}

// ReadReport loads and parses the SARIF file at inputPath.
// A missing file yields a not-found error naming the path, unparsable content a parse error.
func ReadReport(fsys afero.Fs, inputPath string, logger hclog.Logger, opts ReadOptions) (*Report, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	expandedPath, err := files.ExpandPath(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to expand input path %q: %w", inputPath, err)
	}

	logger.Debug("reading SARIF report", "path", expandedPath)
	sarifReport, err := readSarifReport(fsys, expandedPath, inputPath)
	if err != nil {
		return nil, err
	}

	if opts.ExcludeSuppressed {
		removed := removeSuppressedResults(sarifReport)
		logger.Debug("removed suppressed results", "count", removed)
	}

	return &Report{
		Report: sarifReport,
		logger: logger,
	}, nil
}

// NewReport wraps an already parsed SARIF report.
func NewReport(report *sarif.Report, logger hclog.Logger) *Report {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Report{Report: report, logger: logger}
}

// HasRuns reports whether the document carries at least one run.
func (r Report) HasRuns() bool {
	return r.Report != nil && len(r.Runs) > 0
}

// Summaries extracts every run in document order. It fails with ErrNoRuns on an empty document.
func (r Report) Summaries() ([]RunSummary, error) {
	if !r.HasRuns() {
		return nil, scanioerrors.ErrNoRuns
	}

	summaries := make([]RunSummary, 0, len(r.Runs))
	for i, run := range r.Runs {
		summary, err := extractRun(i, run)
		if err != nil {
			return nil, err
		}
		r.logger.Debug("extracted run", "tool", summary.ToolName, "version", summary.ToolVersion, "findings", len(summary.Findings))
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
