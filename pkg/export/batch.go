package export

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Job is one export of a batch.
type Job struct {
	Path     string
	Document []byte
	Format   ImageFormat
	Width    int
	Height   int
	Scale    float64
}

// ExportBatch exports every job. onDone, when not nil, is called once per
// finished job, from the goroutine that ran it. The first failure cancels
// the jobs not started yet and is returned.
func (e *StaticExporter) ExportBatch(ctx context.Context, jobs []Job, onDone func(Job, error)) error {
	for _, job := range jobs {
		if err := job.Format.Validate(); err != nil {
			return errors.Wrapf(err, "job %s", job.Path)
		}
	}

	// Renders are serialized on the browser session, decoding and writing
	// overlap with the next render.
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(2)

	for _, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			err := e.WriteFig(ctx, job.Path, job.Document, job.Format, job.Width, job.Height, job.Scale)
			if onDone != nil {
				onDone(job, err)
			}
			return errors.Wrapf(err, "job %s", job.Path)
		})
	}

	return g.Wait()
}
