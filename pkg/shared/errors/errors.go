package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies every failure the converter can surface.
type Kind int

const (
	// KindUnexpected covers anything not classified below, e.g. a SARIF result without message text.
	KindUnexpected Kind = iota
	// KindNotFound means the input path does not name an existing file.
	KindNotFound
	// KindParse means the input could not be parsed as a SARIF document.
	KindParse
	// KindNoRuns means the document has no runs to summarise.
	KindNoRuns
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not-found"
	case KindParse:
		return "parse"
	case KindNoRuns:
		return "no-runs"
	default:
		return "unexpected"
	}
}

// Error is a classified error with an optional path it relates to.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("the file %s does not exist", e.Path)
	case KindParse:
		return fmt.Sprintf("failed to parse %s as SARIF: %v", e.Path, e.Err)
	case KindNoRuns:
		return "the SARIF file contains no runs"
	}
	if e.Err == nil {
		return "unexpected error"
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind, so sentinels like ErrNoRuns match.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// ErrNoRuns is returned when a document carries no runs.
var ErrNoRuns = &Error{Kind: KindNoRuns}

// NewNotFoundError builds a KindNotFound error for path.
func NewNotFoundError(path string, err error) error {
	return &Error{Kind: KindNotFound, Path: path, Err: err}
}

// NewParseError builds a KindParse error for path.
func NewParseError(path string, err error) error {
	return &Error{Kind: KindParse, Path: path, Err: err}
}

// MissingFieldError reports a required SARIF field that is absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}

// NewMissingFieldError builds a KindUnexpected error for a required field.
func NewMissingFieldError(field string) error {
	return &Error{Kind: KindUnexpected, Err: &MissingFieldError{Field: field}}
}

// KindOf classifies err. Errors that were never classified are KindUnexpected.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// CommandError represents a failed command together with the process exit code it maps to.
type CommandError struct {
	ExitCode    int
	CommonError string
	Kind        Kind
}

// Error implements the error interface, returning the message from the common error.
func (e *CommandError) Error() string {
	return e.CommonError
}

// NewCommandError creates a new CommandError from err with the given exit code.
func NewCommandError(err error, code int) *CommandError {
	return &CommandError{
		ExitCode:    code,
		CommonError: err.Error(),
		Kind:        KindOf(err),
	}
}
