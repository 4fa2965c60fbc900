package domain

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/esdump/internal/adapter"
	m "github.com/mouse-blink/esdump/internal/model"
)

// CheckArgs configures a check run.
type CheckArgs struct {
	// Paths are files or directories; directories are walked for .js files.
	Paths []m.Path
	// Parallel is the worker limit; values below 1 mean a single worker.
	Parallel int
}

// Checker parses many sources concurrently and reports per-file outcomes.
// Each file is an independent extraction; the only state workers share is
// the diagnostic stream, which the Extractor serializes.
type Checker struct {
	fs        adapter.SourceFSAdapter
	extractor *Extractor
}

// NewChecker constructs a Checker on top of an Extractor.
func NewChecker(fs adapter.SourceFSAdapter, extractor *Extractor) *Checker {
	return &Checker{fs: fs, extractor: extractor}
}

// Check expands args.Paths and parses every file under its resolved grammar
// mode. Results come back in input order regardless of which worker finished
// first; per-file failures land in the result, not in the returned error.
func (c *Checker) Check(ctx context.Context, args CheckArgs, progress func(done, total int)) ([]m.CheckResult, error) {
	files, err := c.expand(args.Paths)
	if err != nil {
		return nil, err
	}

	results := make([]m.CheckResult, len(files))

	threads := args.Parallel
	if threads < 1 {
		threads = 1
	}

	var group errgroup.Group
	group.SetLimit(threads)

	var done atomic.Int64

	for i, path := range files {
		group.Go(func() error {
			tree, mode, err := c.extractor.Extract(ctx, path)

			result := m.CheckResult{Path: path, Mode: mode, Err: err}
			if err == nil {
				result.Nodes = countNodes(tree)
			}

			results[i] = result

			if progress != nil {
				progress(int(done.Add(1)), len(files))
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (c *Checker) expand(paths []m.Path) ([]m.Path, error) {
	var files []m.Path

	for _, path := range paths {
		info, err := c.fs.FileInfo(path)
		if err != nil {
			return nil, &ReadError{Path: path, Err: err}
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		err = c.fs.Walk(path, true, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() || filepath.Ext(p) != ".js" {
				return nil
			}

			files = append(files, m.Path(p))

			return nil
		})
		if err != nil {
			return nil, &ReadError{Path: path, Err: err}
		}
	}

	return files, nil
}

func countNodes(tree *m.Node) int {
	count := 0
	tree.Walk(func(*m.Node) { count++ })

	return count
}
