package domain

import (
	"bytes"
	"fmt"
	"strings"

	m "github.com/mouse-blink/esdump/internal/model"
)

// SegmentCorpus slices a line-oriented statement corpus into fixtures in a
// single forward pass.
//
// The boundary detector is a best-effort textual heuristic, not a tokenizer:
// a raw line ending in ";" or "}" flushes the pending statement. A terminator
// inside a string or regex literal therefore mis-segments, and a statement
// whose terminator sits on a later line stays buffered until that line. The
// exact boundaries are load-bearing for existing fixture sets; do not make
// this grammar-aware.
func SegmentCorpus(corpus, prefix string) []m.Fixture {
	var fixtures []m.Fixture
	var pending []string

	counter := 1

	for _, line := range strings.Split(corpus, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") {
			continue
		}

		pending = append(pending, line)

		if !strings.HasSuffix(line, ";") && !strings.HasSuffix(line, "}") {
			continue
		}

		fixtures = append(fixtures, m.Fixture{
			ID:     counter,
			Prefix: prefix,
			Source: strings.Join(pending, "\n"),
		})
		counter++
		pending = nil
	}

	// A trailing statement with no terminator line never flushes: the
	// heuristic only emits boundaries it has actually seen.
	return fixtures
}

// RenderFixtures wraps fixtures into a generated Go test file. Each stub
// passes the fixture name and its snippet to the runFixture entry point,
// which the consuming package provides. Snippets are embedded in raw string
// literals, so a snippet containing a backquote renders a broken stub; like
// the segmentation itself this is best-effort.
func RenderFixtures(fixtures []m.Fixture, pkg string) []byte {
	var buf bytes.Buffer

	buf.WriteString("// Code generated by esdump fixtures; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\nimport \"testing\"\n", pkg)

	for _, f := range fixtures {
		fmt.Fprintf(&buf, "\nfunc Test%sFixture%d(t *testing.T) {\n", strings.ToUpper(f.Prefix), f.ID)
		fmt.Fprintf(&buf, "\trunFixture(t, %q, `%s`)\n", f.Name(), f.Source)
		buf.WriteString("}\n")
	}

	return buf.Bytes()
}
