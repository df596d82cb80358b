// Package batch generates occupation metadata for whole datasets.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-compass/internal/soc"
	"github.com/jonathan/career-compass/internal/types"
)

// DefaultWorkers bounds metadata generation concurrency when the caller
// does not choose a worker count.
const DefaultWorkers = 4

// Runner generates metadata for every record of a dataset.
type Runner struct {
	workers int
}

// NewRunner creates a Runner with the given concurrency. Values below one
// fall back to DefaultWorkers.
func NewRunner(workers int) *Runner {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Runner{workers: workers}
}

// Run generates metadata for every record, overwriting any metadata already
// present. Records are processed concurrently; each worker writes only its
// own index, so the output order matches the input order. Generation itself
// is deterministic, so repeated runs over the same input produce identical
// output regardless of worker count.
func (r *Runner) Run(ctx context.Context, records []types.OccupationRecord) ([]types.OccupationRecord, error) {
	out := make([]types.OccupationRecord, len(records))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, rec := range records {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			md := soc.Generate(rec.SOCCode, rec.Title, rec.EducationLevel)
			rec.Metadata = &md
			out[i] = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
