package batch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"git.solver4all.com/azaryc2s/cvrp"
	"git.solver4all.com/azaryc2s/cvrp/metrics"
)

// Entry is the manifest record of one job.
type Entry struct {
	Name     string      `json:"name"`
	Params   cvrp.Params `json:"params"`
	Files    []string    `json:"files,omitempty"`
	Capacity int         `json:"capacity,omitempty"`
	Stats    *cvrp.Stats `json:"stats,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// Runner generates jobs concurrently and hands the files to Sink.
type Runner struct {
	Generator *cvrp.Generator
	Sink      Sink
	Workers   int
	// JSON additionally stores every instance as <name>.json.
	JSON bool
	// Metrics is optional.
	Metrics *metrics.Registry
}

// Run executes all jobs and returns one entry per job, in job order. Failed
// jobs do not stop the others; their errors are joined into the returned
// error. Jobs not yet started when ctx is done are skipped.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Entry, error) {
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	entries := make([]Entry, len(jobs))
	errs := make([]error, len(jobs))
	var wg sync.WaitGroup
	for i := range jobs {
		job := jobs[i]
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				entries[job.Index] = Entry{Name: job.Params.Name(), Params: job.Params, Error: err.Error()}
				errs[job.Index] = err
				return
			}
			entries[job.Index], errs[job.Index] = r.runJob(job)
		})
		if err != nil {
			wg.Done()
			entries[job.Index] = Entry{Name: job.Params.Name(), Params: job.Params, Error: err.Error()}
			errs[job.Index] = err
		}
	}
	wg.Wait()
	return entries, errors.Join(errs...)
}

func (r *Runner) runJob(job Job) (Entry, error) {
	entry := Entry{Name: job.Params.Name(), Params: job.Params}

	start := time.Now()
	res, err := r.Generator.Run(job.Params)
	if r.Metrics != nil {
		var st cvrp.Stats
		if res != nil {
			st = res.Stats
		}
		r.Metrics.RecordGeneration(st, time.Since(start), err)
	}
	if err != nil {
		entry.Error = err.Error()
		return entry, fmt.Errorf("%s: %w", entry.Name, err)
	}

	entry.Capacity = res.Instance.Capacity
	entry.Stats = &res.Stats

	path, err := r.Sink.Put(entry.Name+".vrp", res.Instance.MarshalVRP())
	if err != nil {
		entry.Error = err.Error()
		return entry, fmt.Errorf("%s: %w", entry.Name, err)
	}
	entry.Files = append(entry.Files, path)

	if r.JSON {
		data, err := json.MarshalIndent(res.Instance, "", "\t")
		if err != nil {
			entry.Error = err.Error()
			return entry, fmt.Errorf("%s: %w", entry.Name, err)
		}
		path, err := r.Sink.Put(entry.Name+".json", []byte(cvrp.SanitizeJSONArrayLineBreaks(string(data))))
		if err != nil {
			entry.Error = err.Error()
			return entry, fmt.Errorf("%s: %w", entry.Name, err)
		}
		entry.Files = append(entry.Files, path)
	}

	return entry, nil
}
