package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mouse-blink/esdump/internal/adapter"
	"github.com/mouse-blink/esdump/internal/controller"
	m "github.com/mouse-blink/esdump/internal/model"
)

// FixturesArgs configures a corpus segmentation run. Corpus and Output are
// configuration, not runtime input: the command reads them from the config
// layer, never from positional arguments.
type FixturesArgs struct {
	Corpus  m.Path
	Output  m.Path
	Prefix  string
	Package string
}

// Workflow is the use-case surface the commands drive.
type Workflow interface {
	// Tree parses one file and writes its canonical serialization to the
	// success stream. Nothing reaches that stream on failure.
	Tree(ctx context.Context, path m.Path) error

	// Fixtures slices the configured corpus into test fixtures and writes
	// them to the configured output file.
	Fixtures(ctx context.Context, args FixturesArgs) error

	// Check parses many files concurrently and displays a per-file report.
	Check(ctx context.Context, args CheckArgs) error
}

type workflow struct {
	fs      adapter.SourceFSAdapter
	ui      controller.UI
	extract *Extractor
	checker *Checker
	out     io.Writer
}

// NewWorkflow creates a Workflow instance wired to the provided ports. out
// is the success stream, diag the diagnostic stream.
func NewWorkflow(
	fs adapter.SourceFSAdapter,
	parser adapter.ESParserAdapter,
	ui controller.UI,
	out, diag io.Writer,
) Workflow {
	extractor := NewExtractor(fs, parser, diag)

	return &workflow{
		fs:      fs,
		ui:      ui,
		extract: extractor,
		checker: NewChecker(fs, extractor),
		out:     out,
	}
}

func (w *workflow) Tree(ctx context.Context, path m.Path) error {
	tree, _, err := w.extract.Extract(ctx, path)
	if err != nil {
		return err
	}

	encoded, err := EncodeTree(tree)
	if err != nil {
		slog.Error("failed to encode tree", "path", path, "error", err)
		return err
	}

	if _, err := w.out.Write(encoded); err != nil {
		return err
	}

	_, err = io.WriteString(w.out, "\n")

	return err
}

// Fixtures performs one full corpus read followed by one synchronous pass.
// A read failure aborts the whole run; partial output is never written.
func (w *workflow) Fixtures(ctx context.Context, args FixturesArgs) error {
	if err := w.ui.Start(ctx); err != nil {
		return err
	}
	defer w.ui.Close(ctx)

	corpus, err := w.fs.ReadFile(args.Corpus)
	if err != nil {
		slog.Error("failed to read corpus", "path", args.Corpus, "error", err)
		return &ReadError{Path: args.Corpus, Err: err}
	}

	fixtures := SegmentCorpus(string(corpus), args.Prefix)
	rendered := RenderFixtures(fixtures, args.Package)

	if err := w.fs.WriteFile(args.Output, rendered, 0o644); err != nil {
		return fmt.Errorf("write fixtures to %s: %w", args.Output, err)
	}

	slog.Info("wrote fixtures", "corpus", args.Corpus, "output", args.Output, "count", len(fixtures))

	return w.ui.DisplayFixtureSummary(ctx, fixtures, args.Output)
}

func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	if err := w.ui.Start(ctx); err != nil {
		return err
	}
	defer w.ui.Close(ctx)

	results, err := w.checker.Check(ctx, args, func(done, total int) {
		w.ui.DisplayCheckProgress(ctx, done, total)
	})
	if err != nil {
		slog.Error("check run failed", "error", err)
		return err
	}

	return w.ui.DisplayCheckReport(ctx, results)
}
