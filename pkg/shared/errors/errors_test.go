package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected Kind
	}{
		{name: "not found", err: NewNotFoundError("in.sarif", fs.ErrNotExist), expected: KindNotFound},
		{name: "parse", err: NewParseError("in.sarif", fmt.Errorf("bad json")), expected: KindParse},
		{name: "no runs", err: ErrNoRuns, expected: KindNoRuns},
		{name: "missing field", err: NewMissingFieldError("runs[0].results[0].message.text"), expected: KindUnexpected},
		{name: "wrapped", err: fmt.Errorf("render: %w", ErrNoRuns), expected: KindNoRuns},
		{name: "plain", err: fmt.Errorf("boom"), expected: KindUnexpected},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, KindOf(tc.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "the file /tmp/missing.sarif does not exist", NewNotFoundError("/tmp/missing.sarif", nil).Error())
	assert.Equal(t, "the SARIF file contains no runs", ErrNoRuns.Error())
	assert.Contains(t, NewMissingFieldError("runs[0].results[1].message.text").Error(), `"runs[0].results[1].message.text"`)
}

func TestErrorIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &Error{Kind: KindNoRuns})
	assert.True(t, stderrors.Is(err, ErrNoRuns))
	assert.False(t, stderrors.Is(NewParseError("x", nil), ErrNoRuns))

	notFound := NewNotFoundError("x", fs.ErrNotExist)
	assert.True(t, stderrors.Is(notFound, fs.ErrNotExist))

	var missing *MissingFieldError
	assert.True(t, stderrors.As(NewMissingFieldError("field"), &missing))
	assert.Equal(t, "field", missing.Field)
}

func TestNewCommandError(t *testing.T) {
	cmdErr := NewCommandError(NewParseError("in.sarif", fmt.Errorf("unexpected end of JSON input")), 3)
	assert.Equal(t, 3, cmdErr.ExitCode)
	assert.Equal(t, KindParse, cmdErr.Kind)
	assert.Equal(t, "failed to parse in.sarif as SARIF: unexpected end of JSON input", cmdErr.Error())
}
