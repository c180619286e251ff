package arrow

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"runtime"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/npillmayer/fparrow/result"
	"golang.org/x/sync/errgroup"
)

// Minimum and maximum number of concurrent workers for a concurrent map,
// if not set explicitly by option Workers.
const (
	minWorkerCount int = 3
	maxWorkerCount int = 10
)

// Option is a type to help configuring concurrent maps at creation time.
type Option struct {
	config func(poolConfig) poolConfig
}

type poolConfig struct {
	workers int
}

// Workers is an option to set the number of worker goroutines of a concurrent
// map. n < 1 is treated as 1.
//
// Use it like this:
//
//     a := arrow.ConcurrentMap(f, arrow.Workers(4))
//
func Workers(n int) Option {
	conf := func(c poolConfig) poolConfig {
		c.workers = max(n, 1)
		return c
	}
	return Option{config: conf}
}

func configure(opts []Option) poolConfig {
	c := poolConfig{workers: runtime.NumCPU()}
	if c.workers > maxWorkerCount {
		c.workers = maxWorkerCount
	} else if c.workers < minWorkerCount {
		c.workers = minWorkerCount
	}
	for _, option := range opts {
		c = option.config(c)
	}
	return c
}

// ConcurrentMap lifts f to an arrow over sequences. Applications of f are
// distributed over a pool of worker goroutines; the results are collected in
// the order of the input sequence, regardless of the order of completion.
//
// Applying the arrow blocks until all elements are processed. Each
// application owns its pool, which is released before Apply returns.
//
// If f panics for any element, elements not yet dispatched are abandoned,
// and after all workers have stopped the panic is re-raised on the goroutine
// calling Apply, with the original panic value.
func ConcurrentMap[I, O any](f func(I) O, opts ...Option) Arrow[iter.Seq[I], []O] {
	conf := configure(opts)
	task := func(x I) (O, error) {
		return f(x), nil
	}
	return Named(fmt.Sprintf("concurrent-map[%d]", conf.workers), func(xs iter.Seq[I]) []O {
		out, err := runPool(xs, task, conf.workers)
		if err != nil {
			panic(fmt.Sprintf("arrow: inconsistency: unexpected error from pool: %v", err))
		}
		return out
	})
}

// TryConcurrentMap is like ConcurrentMap, but for functions which may fail.
// The first error returned by f aborts the map and is returned as an Err.
// Panics are handled as with ConcurrentMap.
func TryConcurrentMap[I, O any](f func(I) (O, error), opts ...Option) Arrow[iter.Seq[I], result.Result[[]O, error]] {
	conf := configure(opts)
	return Named(fmt.Sprintf("try-concurrent-map[%d]", conf.workers), func(xs iter.Seq[I]) result.Result[[]O, error] {
		return result.Try(runPool(xs, f, conf.workers))
	})
}

// --- Worker pool -----------------------------------------------------------

// workPackage is the type which is transported from the feeder to the workers.
type workPackage[I any] struct {
	item   I
	serial int // serial number of item for ordering
}

type outcome[O any] struct {
	value  O
	serial int
}

// workerPanic transports a panic from a worker goroutine to the caller.
type workerPanic struct {
	value any
	stack []byte
}

func (p *workerPanic) Error() string {
	return fmt.Sprintf("panic in worker: %v", p.value)
}

func protect(err *error) {
	if r := recover(); r != nil {
		*err = &workerPanic{value: r, stack: debug.Stack()}
	}
}

// runPool applies task to every item of xs, using n workers. Results are
// ordered by input position.
func runPool[I, O any](xs iter.Seq[I], task func(I) (O, error), n int) ([]O, error) {
	run := uuid.NewString()
	tracer().P("run", run).Debugf("concurrent map starts %d workers", n)
	g, ctx := errgroup.WithContext(context.Background())
	work := make(chan workPackage[I])
	count := 0
	g.Go(func() (err error) { // feeder
		defer close(work)
		defer protect(&err)
		for x := range xs {
			select {
			case work <- workPackage[I]{item: x, serial: count}:
				count++
			case <-ctx.Done():
				return nil
			}
		}
		return nil
	})
	partial := make([][]outcome[O], n) // results per worker
	for w := 0; w < n; w++ {
		g.Go(func() (err error) {
			defer protect(&err)
			for pkg := range work { // get workpackages until drained
				if ctx.Err() != nil {
					return nil
				}
				v, e := task(pkg.item)
				if e != nil {
					return e
				}
				partial[w] = append(partial[w], outcome[O]{value: v, serial: pkg.serial})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var p *workerPanic
		if errors.As(err, &p) {
			tracer().P("run", run).Errorf("concurrent map aborted: %v\n%s", p.value, p.stack)
			panic(p.value)
		}
		tracer().P("run", run).Infof("concurrent map aborted: %v", err)
		return nil, err
	}
	out := make([]O, count)
	for _, results := range partial {
		for _, r := range results {
			out[r.serial] = r.value
		}
	}
	tracer().P("run", run).Debugf("concurrent map finished %d items", count)
	return out, nil
}
