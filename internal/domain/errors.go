package domain

import (
	"fmt"

	m "github.com/mouse-blink/esdump/internal/model"
)

// ReadError reports a failure to open or read a source file. It is surfaced
// immediately, never retried.
type ReadError struct {
	Path m.Path
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError reports source that is not valid under its resolved grammar
// mode. Err carries the parser's message verbatim, including whatever
// position information the parser provides.
type ParseError struct {
	Path m.Path
	Mode m.Mode
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s as %s: %v", e.Path, e.Mode, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// EncodingError reports a value class the canonical encoding cannot
// represent. It signals a bug in the parser adapter rather than a
// recoverable runtime condition, so callers abort instead of coercing.
type EncodingError struct {
	FieldName string
	Value     m.Value
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("cannot encode %T under field %q", e.Value, e.FieldName)
}
