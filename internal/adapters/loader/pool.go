// Package loader loads several snapshots concurrently with a bounded set
// of workers.
package loader

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync"

	"github.com/okian/fiprank/internal/domain/model"
	"github.com/okian/fiprank/pkg/logger"
)

// Source loads the records of one snapshot.
type Source interface {
	Load(ctx context.Context, path string) ([]model.Record, error)
}

// Result is the outcome of loading one path.
type Result struct {
	Path    string
	Records []model.Record
	Err     error
}

type job struct {
	index int
	path  string
}

// Pool fans snapshot loads out to a fixed number of workers.
type Pool struct {
	source  Source
	workers int
	logger  logger.Logger
}

// NewPool creates a pool reading from source. Without WithWorkers the pool
// runs one worker per CPU.
func NewPool(source Source, opts ...Option) *Pool {
	p := &Pool{
		source:  source,
		workers: runtime.NumCPU(),
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Workers reports the configured worker count.
func (p *Pool) Workers() int { return p.workers }

// LoadAll loads every path and returns the results in the order of paths.
// The returned error is the first failure in that order, if any; the other
// results are still filled in.
func (p *Pool) LoadAll(ctx context.Context, paths []string) ([]Result, error) {
	results := make([]Result, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	workers := p.workers
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan job)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go p.run(ctx, "loader-"+strconv.Itoa(i), jobs, results, &wg)
	}

	// Feed jobs until done or canceled; unfed paths keep the context error.
feed:
	for i, path := range paths {
		select {
		case <-ctx.Done():
			for j := i; j < len(paths); j++ {
				results[j] = Result{Path: paths[j], Err: ctx.Err()}
			}
			break feed
		case jobs <- job{index: i, path: path}:
		}
	}
	close(jobs)
	wg.Wait()

	for _, r := range results {
		if r.Err != nil {
			return results, fmt.Errorf("load %s: %w", r.Path, r.Err)
		}
	}
	return results, nil
}

// run processes jobs until the channel is closed. Each job writes only its
// own slot of results.
func (p *Pool) run(ctx context.Context, name string, jobs <-chan job, results []Result, wg *sync.WaitGroup) {
	defer wg.Done()
	log := p.logger.Named(name)

	for j := range jobs {
		if err := ctx.Err(); err != nil {
			results[j.index] = Result{Path: j.path, Err: err}
			continue
		}
		records, err := p.source.Load(ctx, j.path)
		if err != nil {
			log.Error(ctx, "snapshot load failed", logger.String("path", j.path), logger.Error(err))
		} else {
			log.Debug(ctx, "snapshot loaded", logger.String("path", j.path), logger.Int("records", len(records)))
		}
		results[j.index] = Result{Path: j.path, Records: records, Err: err}
	}
}
