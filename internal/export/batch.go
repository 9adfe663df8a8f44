package export

import (
	"context"
	"sync"

	"github.com/san-kum/monkeysim/internal/layout"
	"github.com/san-kum/monkeysim/internal/scene"
)

// Job is one scene to render in a batch.
type Job struct {
	Name     string
	Params   scene.Params
	Viewport scene.Viewport
}

type Result struct {
	Job   Job
	Frame layout.Frame
	Err   error
}

// RenderBatch settles every job on its own engine, concurrently, and
// returns the results in job order. newEngine is called once per job.
func RenderBatch(ctx context.Context, jobs []Job, newEngine func() *layout.Engine, maxPasses int) []Result {
	results := make([]Result, len(jobs))

	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(idx int, job Job) {
			defer wg.Done()

			results[idx].Job = job
			if err := ctx.Err(); err != nil {
				results[idx].Err = err
				return
			}
			if err := job.Params.Validate(); err != nil {
				results[idx].Err = err
				return
			}
			f := newEngine().Settle(job.Params, job.Viewport, maxPasses)
			if f.Empty() {
				results[idx].Err = scene.ErrDegenerateViewport
			}
			results[idx].Frame = f
		}(i, job)
	}

	wg.Wait()
	return results
}
