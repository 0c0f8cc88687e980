package sarif

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	gosarif "github.com/owenrumney/go-sarif/v2/sarif"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scanioerrors "github.com/scan-io-git/sarif2md/pkg/shared/errors"
)

const roundTripSarif = `{"runs":[{"tool":{"driver":{"name":"X","version":"1.0"}},"results":[{"ruleId":"R1","message":{"text":"bad thing"},"locations":[{"physicalLocation":{"artifactLocation":{"uri":"a.yml"},"region":{"startLine":5,"snippet":{"text":"foo: bar"}}}}]}]}]}`

const suppressedSarif = `{
  "version": "2.1.0",
  "runs": [
    {
      "tool": {"driver": {"name": "checkov"}},
      "results": [
        {"ruleId": "CKV_1", "message": {"text": "kept"}},
        {"ruleId": "CKV_2", "message": {"text": "dropped"}, "suppressions": [{"kind": "inSource"}]}
      ]
    }
  ]
}`

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestReadReport(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/scan/result.sarif", roundTripSarif)

	report, err := ReadReport(fs, "/scan/result.sarif", hclog.NewNullLogger(), ReadOptions{})
	require.NoError(t, err)
	require.True(t, report.HasRuns())
	require.Len(t, report.Runs, 1)
	assert.Equal(t, "X", report.Runs[0].Tool.Driver.Name)
	require.Len(t, report.Runs[0].Results, 1)
	assert.Equal(t, "R1", *report.Runs[0].Results[0].RuleID)
}

func TestReadReportNotFound(t *testing.T) {
	_, err := ReadReport(afero.NewMemMapFs(), "/scan/missing.sarif", nil, ReadOptions{})
	require.Error(t, err)
	assert.Equal(t, scanioerrors.KindNotFound, scanioerrors.KindOf(err))
	assert.Contains(t, err.Error(), "/scan/missing.sarif")
}

func TestReadReportParseError(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "truncated", content: `{"runs": [`},
		{name: "not json", content: "runs:\n  - tool: x\n"},
		{name: "empty", content: ""},
		{name: "wrong shape", content: `{"runs": "nope"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeFile(t, fs, "bad.sarif", tc.content)

			_, err := ReadReport(fs, "bad.sarif", hclog.NewNullLogger(), ReadOptions{})
			require.Error(t, err)
			assert.Equal(t, scanioerrors.KindParse, scanioerrors.KindOf(err))
			assert.Contains(t, err.Error(), "bad.sarif")
		})
	}
}

func TestReadReportDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/scan", 0o755))

	_, err := ReadReport(fs, "/scan", hclog.NewNullLogger(), ReadOptions{})
	require.Error(t, err)
	assert.Equal(t, scanioerrors.KindUnexpected, scanioerrors.KindOf(err))
}

func TestReadReportExcludeSuppressed(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "s.sarif", suppressedSarif)

	kept, err := ReadReport(fs, "s.sarif", hclog.NewNullLogger(), ReadOptions{})
	require.NoError(t, err)
	assert.Len(t, kept.Runs[0].Results, 2)

	filtered, err := ReadReport(fs, "s.sarif", hclog.NewNullLogger(), ReadOptions{ExcludeSuppressed: true})
	require.NoError(t, err)
	require.Len(t, filtered.Runs[0].Results, 1)
	assert.Equal(t, "kept", *filtered.Runs[0].Results[0].Message.Text)
}

func TestRemoveSuppressedResultsKeepsAbsentResults(t *testing.T) {
	report := &gosarif.Report{
		Runs: []*gosarif.Run{
			{Tool: gosarif.Tool{Driver: &gosarif.ToolComponent{Name: "tool"}}},
		},
	}

	assert.Equal(t, 0, removeSuppressedResults(report))
	assert.Nil(t, report.Runs[0].Results)
}

func TestSummariesNoRuns(t *testing.T) {
	for _, content := range []string{`{}`, `{"runs": []}`, `null`} {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "empty.sarif", content)

		report, err := ReadReport(fs, "empty.sarif", hclog.NewNullLogger(), ReadOptions{})
		require.NoError(t, err, content)
		assert.False(t, report.HasRuns())

		_, err = report.Summaries()
		assert.ErrorIs(t, err, scanioerrors.ErrNoRuns, content)
	}
}

func TestSummariesKeepsRunOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "multi.sarif", `{"runs":[
		{"tool":{"driver":{"name":"first"}}},
		{"tool":{"driver":{"name":"second","version":"2"}},"results":[]}
	]}`)

	report, err := ReadReport(fs, "multi.sarif", hclog.NewNullLogger(), ReadOptions{})
	require.NoError(t, err)

	summaries, err := report.Summaries()
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "first", summaries[0].ToolName)
	assert.Equal(t, UnknownVersion, summaries[0].ToolVersion)
	assert.Empty(t, summaries[0].Findings)
	assert.Equal(t, "second", summaries[1].ToolName)
	assert.Equal(t, "2", summaries[1].ToolVersion)
}

func TestSummariesMissingMessage(t *testing.T) {
	report := NewReport(&gosarif.Report{
		Runs: []*gosarif.Run{
			{
				Tool:    gosarif.Tool{Driver: &gosarif.ToolComponent{Name: "tool"}},
				Results: []*gosarif.Result{{RuleID: strPtr("R1")}},
			},
		},
	}, nil)

	_, err := report.Summaries()
	require.Error(t, err)
	assert.Equal(t, scanioerrors.KindUnexpected, scanioerrors.KindOf(err))
	assert.Contains(t, err.Error(), "runs[0].results[0].message.text")
}
