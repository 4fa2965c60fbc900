package model

import "fmt"

// Fixture is one corpus-derived test case. It is created when the segmenter
// detects a statement boundary and never mutated afterwards.
type Fixture struct {
	// ID is the ordinal fixture number, monotonically increasing from 1.
	ID int
	// Prefix is the fixture-name prefix, e.g. "es5".
	Prefix string
	// Source is the raw snippet: one or more corpus lines joined by newlines.
	Source string
}

// Name derives the fixture identifier from the counter, e.g. fixture 7 with
// prefix "es5" becomes "es5_7".
func (f Fixture) Name() string {
	return fmt.Sprintf("%s_%d", f.Prefix, f.ID)
}

// CheckResult is the outcome of parsing one file during a check run.
type CheckResult struct {
	Path  Path
	Mode  Mode
	Nodes int
	Err   error
}
