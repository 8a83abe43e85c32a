// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs documents through the input-shape check, the
// integrity check, and the renderer, one at a time or as a parallel batch.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/elementary-assertions/internal/document"
	"github.com/pdiddy/elementary-assertions/internal/render"
	"github.com/pdiddy/elementary-assertions/internal/validate"
)

// DefaultJobs is the batch parallelism used when the caller gives none.
const DefaultJobs = 4

// Result is the outcome for one document. Err is set when any stage failed;
// Output is then empty.
type Result struct {
	Path     string
	Source   *document.Source
	Index    *validate.Index
	Output   string
	Warnings []string
	Err      error
}

// Runner loads, validates, and renders documents.
type Runner struct {
	loader *document.Loader
}

// NewRunner returns a runner that reads documents with loader.
func NewRunner(loader *document.Loader) *Runner {
	return &Runner{loader: loader}
}

// Check loads a document and runs the shape and integrity checks only.
func (r *Runner) Check(path string) (*document.Source, *validate.Index, error) {
	src, err := r.loader.Load(path)
	if err != nil {
		return nil, nil, err
	}
	ix, err := validate.Check(src.Doc)
	if err != nil {
		return src, nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return src, ix, nil
}

// Run loads, validates, and renders one document.
func (r *Runner) Run(path string, opts render.Options) Result {
	res := Result{Path: path}
	src, ix, err := r.Check(path)
	res.Source = src
	if err != nil {
		res.Err = err
		return res
	}
	res.Index = ix
	out, err := render.RenderIndexed(src.Doc, ix, opts)
	if err != nil {
		res.Err = fmt.Errorf("rendering %s: %w", path, err)
		return res
	}
	res.Output = out
	res.Warnings = render.Warnings(src.Doc)
	return res
}

// RunBatch renders every path with at most limit documents in flight.
// Documents are independent: one failing document is reported in its
// Result and does not stop the others. Results are in input order. The
// returned error is non-nil only when ctx is cancelled.
func (r *Runner) RunBatch(ctx context.Context, paths []string, opts render.Options, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = DefaultJobs
	}
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Path: path, Err: err}
				return err
			}
			results[i] = r.Run(path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("batch interrupted: %w", err)
	}
	return results, nil
}

// Report writes one progress line per result, in the form the CLI prints.
func Report(w io.Writer, results []Result) (failed int) {
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(w, "  %s: error: %v\n", res.Path, res.Err)
			continue
		}
		fmt.Fprintf(w, "  %s: ok (%d warnings)\n", res.Path, len(res.Warnings))
	}
	fmt.Fprintf(w, "%d documents, %d failed\n", len(results), failed)
	return failed
}
