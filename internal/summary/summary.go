package summary

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	scaniosarif "github.com/scan-io-git/sarif2md/internal/sarif"
	"github.com/scan-io-git/sarif2md/internal/template"
	scanioerrors "github.com/scan-io-git/sarif2md/pkg/shared/errors"
	"github.com/scan-io-git/sarif2md/pkg/shared/files"
)

// Render writes the Markdown summary for runs to w.
func Render(w io.Writer, runs []scaniosarif.RunSummary) error {
	tmpl, err := template.NewSummaryTemplate()
	if err != nil {
		return fmt.Errorf("failed to parse summary template: %w", err)
	}

	data := struct {
		Runs []scaniosarif.RunSummary
	}{
		Runs: runs,
	}
	return tmpl.Execute(w, data)
}

// Write renders report into outputPath, replacing any existing content.
// Every run is extracted before the file is opened, so a report without runs
// or with a malformed result leaves outputPath untouched.
func Write(fs afero.Fs, report *scaniosarif.Report, outputPath string, logger hclog.Logger) (err error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	if report == nil {
		return scanioerrors.ErrNoRuns
	}
	runs, err := report.Summaries()
	if err != nil {
		return err
	}

	file, err := files.CreateFile(fs, outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", outputPath, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file %q: %w", outputPath, cerr)
		}
	}()

	w := bufio.NewWriter(file)
	if err := Render(w, runs); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output file %q: %w", outputPath, err)
	}

	logger.Debug("summary written", "path", outputPath, "runs", len(runs), "findings", countFindings(runs))
	return nil
}

func countFindings(runs []scaniosarif.RunSummary) int {
	total := 0
	for _, run := range runs {
		total += len(run.Findings)
	}
	return total
}
