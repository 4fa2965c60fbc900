package controller

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/esdump/internal/model"
)

var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// TUI implements UI using Bubble Tea for interactive display. It runs a
// progress program while work is in flight and prints the final report once
// the program exits.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress program in the background.
func (t *TUI) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.program = tea.NewProgram(newProgressModel(), tea.WithOutput(t.output))
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)
		_, _ = t.program.Run()
	}()

	return nil
}

// Close tears the progress program down if it is still running.
func (t *TUI) Close(_ context.Context) {
	t.finish()
}

// DisplayCheckProgress feeds the progress bar.
func (t *TUI) DisplayCheckProgress(ctx context.Context, done, total int) {
	if err := ctx.Err(); err != nil {
		return
	}

	if t.program != nil {
		t.program.Send(progressMsg{done: done, total: total})
	}
}

// DisplayCheckReport stops the progress program and prints the table.
func (t *TUI) DisplayCheckReport(ctx context.Context, results []m.CheckResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.finish()

	report := renderCheckTable(results)

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}

	if failed > 0 {
		report += failStyle.Render(fmt.Sprintf("%d file(s) failed to parse", failed)) + "\n"
	}

	_, err := fmt.Fprintf(t.output, "\n%s", report)

	return err
}

// DisplayFixtureSummary stops the progress program and prints the summary.
func (t *TUI) DisplayFixtureSummary(ctx context.Context, fixtures []m.Fixture, output m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.finish()

	line := summaryStyle.Render(fmt.Sprintf("Wrote %d fixtures to %s", len(fixtures), output))
	_, err := fmt.Fprintf(t.output, "%s\n", line)

	return err
}

func (t *TUI) finish() {
	if t.program == nil {
		return
	}

	t.program.Send(finishedMsg{})
	<-t.done
	t.program = nil
}

type progressMsg struct {
	done  int
	total int
}

type finishedMsg struct{}

type progressModel struct {
	spinner  spinner.Model
	progress progress.Model
	done     int
	total    int
}

func newProgressModel() progressModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return progressModel{
		spinner:  sp,
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return pm, tea.Quit
		}
	case progressMsg:
		pm.done, pm.total = msg.done, msg.total
		return pm, nil
	case finishedMsg:
		return pm, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm progressModel) View() string {
	if pm.total == 0 {
		return fmt.Sprintf("%s working...\n", pm.spinner.View())
	}

	ratio := float64(pm.done) / float64(pm.total)

	return fmt.Sprintf("%s %s %d/%d\n", pm.spinner.View(), pm.progress.ViewAs(ratio), pm.done, pm.total)
}
