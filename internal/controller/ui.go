// Package controller provides output adapters for displaying esdump results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/mouse-blink/esdump/internal/model"
)

// UI defines the interface for presenting check reports and fixture
// summaries. Implementations can use different output methods (simple text,
// TUI, etc).
type UI interface {
	Start(ctx context.Context) error
	Close(ctx context.Context)
	DisplayCheckProgress(ctx context.Context, done, total int)
	DisplayCheckReport(ctx context.Context, results []m.CheckResult) error
	DisplayFixtureSummary(ctx context.Context, fixtures []m.Fixture, output m.Path) error
}

// NewUI returns a TUI-backed implementation when the output is an
// interactive terminal and the plain implementation otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
