// Package domain implements the esdump use cases: syntax-tree extraction,
// canonical serialization, corpus segmentation and parallel checking.
package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mouse-blink/esdump/internal/adapter"
	m "github.com/mouse-blink/esdump/internal/model"
)

const moduleSuffix = "module.js"

// GrammarMode resolves the grammar a file is parsed under from its name
// alone: a final path segment ending in "module.js" selects module grammar,
// every other name is a plain script.
func GrammarMode(path m.Path) m.Mode {
	if strings.HasSuffix(filepath.Base(string(path)), moduleSuffix) {
		return m.ModeModule
	}

	return m.ModeScript
}

// Extractor turns one source file into a syntax tree via the filesystem and
// parser ports.
type Extractor struct {
	fs     adapter.SourceFSAdapter
	parser adapter.ESParserAdapter

	// diagMu serializes the diagnostic echo; Extract runs concurrently
	// under Checker and diag is a single shared stream.
	diagMu sync.Mutex
	diag   io.Writer
}

// NewExtractor constructs an Extractor writing diagnostics to diag.
func NewExtractor(fs adapter.SourceFSAdapter, parser adapter.ESParserAdapter, diag io.Writer) *Extractor {
	return &Extractor{fs: fs, parser: parser, diag: diag}
}

// Extract reads path once, resolves its grammar mode and hands the contents
// to the parser. The resolved path is echoed to the diagnostic stream before
// the read, so operators can correlate output with input even under failure.
func (e *Extractor) Extract(ctx context.Context, path m.Path) (*m.Node, m.Mode, error) {
	mode := GrammarMode(path)

	e.diagMu.Lock()
	fmt.Fprintln(e.diag, string(path))
	e.diagMu.Unlock()

	src, err := e.fs.ReadFile(path)
	if err != nil {
		slog.Error("failed to read source", "path", path, "error", err)
		return nil, mode, &ReadError{Path: path, Err: err}
	}

	tree, err := e.parser.Parse(ctx, string(src), mode)
	if err != nil {
		slog.Error("failed to parse source", "path", path, "mode", mode, "error", err)
		return nil, mode, &ParseError{Path: path, Mode: mode, Err: err}
	}

	slog.Debug("parsed source", "path", path, "mode", mode)

	return tree, mode, nil
}
