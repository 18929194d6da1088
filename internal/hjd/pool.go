package hjd

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/litescript/ls-hjd/internal/coords"
	"github.com/litescript/ls-hjd/internal/logging"
)

// convertJob is one JD to convert, with its position in the batch.
type convertJob struct {
	index int
	jd    float64
}

// Pool converts batches of Julian Dates on a fixed number of goroutines.
type Pool struct {
	workers int
	logger  *logging.Logger
}

// NewPool creates a pool with the given number of workers. A non-positive
// count uses one worker per CPU. A nil logger discards output.
func NewPool(workers int, logger *logging.Logger) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Pool{workers: workers, logger: logger}
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int { return p.workers }

// ConvertBatch converts every JD in jds with conv. The result has the same
// order as jds and each value equals conv.Convert for that JD.
// If ctx is cancelled before the batch completes, ConvertBatch returns
// ctx.Err() and no results.
func (p *Pool) ConvertBatch(ctx context.Context, conv Converter, ra coords.RAInfo, dec coords.DecInfo, jds []float64) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(jds) == 0 {
		return []float64{}, nil
	}

	start := time.Now()
	out := make([]float64, len(jds))

	workers := p.workers
	if workers > len(jds) {
		workers = len(jds)
	}
	jobs := make(chan convertJob, workers*2)

	// Each index is written by exactly one worker.
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				if ctx.Err() != nil {
					return
				}
				out[job.index] = conv.Convert(job.jd, ra, dec)
			}
		}()
	}

	// Feed jobs.
	func() {
		defer close(jobs)
		for i, jd := range jds {
			select {
			case jobs <- convertJob{index: i, jd: jd}:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()

	if err := ctx.Err(); err != nil {
		p.logger.Warn("batch of %d cancelled: %v", len(jds), err)
		return nil, err
	}

	if p.logger.Enabled(logging.LevelDebug) {
		p.logger.Debug("converted %d JDs (%s) on %d workers in %v",
			len(jds), conv.Epoch(), workers, time.Since(start))
	}
	return out, nil
}
