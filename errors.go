package portdash

import "fmt"

// The pipeline distinguishes three recoverable failure levels and one fatal
// one. Row-level errors are absorbed inside the parsers, source-level errors
// inside Load; only the total absence of rows reaches the caller.

// SourceUnavailableError reports a source file that could not be read.
// That source is omitted and the remaining ones proceed.
type SourceUnavailableError struct {
	Source Source
	Path   string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("source %s unavailable: cannot read %q: %v", e.Source, e.Path, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }

// MissingColumnError reports an export whose header lacks a required column.
// The whole source aborts, treated like an unavailable one.
type MissingColumnError struct {
	Source Source
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("source %s: missing required column %q", e.Source, e.Column)
}

// MalformedValueError reports a single cell that cannot be coerced to a
// number. The row carrying it is skipped, the parse continues.
type MalformedValueError struct {
	Value string
	Err   error
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("malformed numeric value %q: %v", e.Value, e.Err)
}

func (e *MalformedValueError) Unwrap() error { return e.Err }

// NoDataError is fatal: no source produced any position at all.
// Err joins the per-source causes when there are any.
type NoDataError struct {
	Err error
}

func (e *NoDataError) Error() string {
	if e.Err == nil {
		return "no position data: all sources are empty"
	}
	return fmt.Sprintf("no position data: %v", e.Err)
}

func (e *NoDataError) Unwrap() error { return e.Err }
