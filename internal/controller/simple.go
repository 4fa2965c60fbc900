package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/esdump/internal/model"
)

const okStatusLabel = "ok"

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI (no-op for SimpleUI).
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayCheckProgress is a no-op: the plain UI reports once, at the end.
func (s *SimpleUI) DisplayCheckProgress(ctx context.Context, _, _ int) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayCheckReport prints the per-file check table.
func (s *SimpleUI) DisplayCheckReport(ctx context.Context, results []m.CheckResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderCheckTable(results))

	return nil
}

// DisplayFixtureSummary prints where the fixtures went and how many there are.
func (s *SimpleUI) DisplayFixtureSummary(ctx context.Context, fixtures []m.Fixture, output m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Wrote %d fixtures to %s\n", len(fixtures), output)

	return nil
}

func renderCheckTable(results []m.CheckResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Mode", "Nodes", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	passed := 0

	for _, result := range results {
		status := okStatusLabel
		nodes := fmt.Sprintf("%d", result.Nodes)

		if result.Err != nil {
			status = result.Err.Error()
			nodes = "-"
		} else {
			passed++
		}

		table.Append([]string{string(result.Path), string(result.Mode), nodes, status})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		"",
		"",
		fmt.Sprintf("%d passed", passed),
	})
	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
