package sarif

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/owenrumney/go-sarif/v2/sarif"

	scanioerrors "github.com/scan-io-git/sarif2md/pkg/shared/errors"
)

// Fallback values substituted for optional SARIF fields.
const (
	UnknownVersion   = "Unknown Version"
	UnknownRule      = "Unknown Rule"
	UnknownFile      = "Unknown File"
	UnknownLine      = "Unknown Line"
	NoSnippetMessage = "No code snippet available"
)

// RunSummary is the tool identity and findings extracted from one SARIF run.
type RunSummary struct {
	ToolName    string
	ToolVersion string
	Findings    []Finding
}

// Finding is one SARIF result flattened for rendering.
type Finding struct {
	Rule      string
	Message   string
	Locations []string
	Snippet   string
}

// ExtractRun flattens a single run. The run is not modified.
func ExtractRun(run *sarif.Run) (RunSummary, error) {
	return extractRun(0, run)
}

// extractRun is ExtractRun with the run's index, used to name missing fields.
func extractRun(index int, run *sarif.Run) (RunSummary, error) {
	if run == nil {
		return RunSummary{}, scanioerrors.NewMissingFieldError(fmt.Sprintf("runs[%d]", index))
	}
	if run.Tool.Driver == nil {
		return RunSummary{}, scanioerrors.NewMissingFieldError(fmt.Sprintf("runs[%d].tool.driver", index))
	}
	// go-sarif decodes an absent name as "", so an empty name counts as missing.
	if run.Tool.Driver.Name == "" {
		return RunSummary{}, scanioerrors.NewMissingFieldError(fmt.Sprintf("runs[%d].tool.driver.name", index))
	}

	summary := RunSummary{
		ToolName:    run.Tool.Driver.Name,
		ToolVersion: stringOr(run.Tool.Driver.Version, UnknownVersion),
		Findings:    make([]Finding, 0, len(run.Results)),
	}

	for j, result := range run.Results {
		if result == nil {
			return RunSummary{}, scanioerrors.NewMissingFieldError(fmt.Sprintf("runs[%d].results[%d]", index, j))
		}
		// message.text has no fallback: a result without it is malformed.
		if result.Message.Text == nil {
			return RunSummary{}, scanioerrors.NewMissingFieldError(fmt.Sprintf("runs[%d].results[%d].message.text", index, j))
		}
		summary.Findings = append(summary.Findings, extractFinding(result))
	}

	return summary, nil
}

func extractFinding(result *sarif.Result) Finding {
	finding := Finding{
		Rule:      stringOr(result.RuleID, UnknownRule),
		Message:   *result.Message.Text,
		Locations: make([]string, 0, len(result.Locations)),
	}

	var snippets []string
	for _, location := range result.Locations {
		file, line, snippet := locationDetails(location)
		finding.Locations = append(finding.Locations, fmt.Sprintf("File: %s, Line: %s", file, line))
		if snippet != "" {
			snippets = append(snippets, snippet)
		}
	}

	if len(snippets) > 0 {
		finding.Snippet = strings.Join(snippets, "\n")
	} else {
		finding.Snippet = NoSnippetMessage
	}
	return finding
}

// locationDetails returns the file, start line and snippet text of a location, with fallbacks applied.
func locationDetails(location *sarif.Location) (file, line, snippet string) {
	file, line = UnknownFile, UnknownLine
	if location == nil || location.PhysicalLocation == nil {
		return file, line, ""
	}

	physical := location.PhysicalLocation
	if physical.ArtifactLocation != nil {
		file = stringOr(physical.ArtifactLocation.URI, UnknownFile)
	}

	region := physical.Region
	if region == nil {
		return file, line, ""
	}
	if region.StartLine != nil {
		line = strconv.Itoa(*region.StartLine)
	}
	if region.Snippet != nil && region.Snippet.Text != nil {
		snippet = *region.Snippet.Text
	}
	return file, line, snippet
}

func stringOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}
