package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrWorkers indicates an explicit worker count less than one.
	ErrWorkers = errors.New("parallel: workers must be at least 1")

	// ErrChunk indicates an explicit chunk size less than one.
	ErrChunk = errors.New("parallel: chunk must be at least 1")
)

// Options configures Loop and Reduce. The zero value of a field selects
// its default; a nil *Options selects every default.
type Options struct {
	// Workers is the number of concurrent workers.
	// Default: runtime.GOMAXPROCS(0).
	Workers int

	// Chunk is the minimum number of consecutive indices handed to one
	// task. Default: 1.
	Chunk int

	// Ctx cancels the loop early. Default: context.Background().
	Ctx context.Context
}

// DefaultOptions returns an Options with every default made explicit.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Chunk:   1,
		Ctx:     context.Background(),
	}
}

// Loop runs body(i) for every i in [begin, end), fanned out across
// workers in contiguous chunks. The first error from any body cancels the
// remaining chunks and is returned. An empty range is a no-op.
func Loop(begin, end int, opts *Options, body func(i int) error) error {
	o, err := normalize(opts)
	if err != nil {
		return err
	}
	if end <= begin {
		return nil
	}

	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)
	for lo := begin; lo < end; lo += o.Chunk {
		hi := lo + o.Chunk
		if hi > end {
			hi = end
		}
		lo, hi := lo, hi
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				if err := body(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// Reduce runs body(i) for every i in [begin, end) and folds the returned
// values pairwise with combine, which must be associative and safe for
// concurrent use; the fold order is unspecified. For an empty range the
// zero value of V is returned.
func Reduce[V any](begin, end int, opts *Options, body func(i int) (V, error), combine func(V, V) V) (V, error) {
	var acc V
	var mu sync.Mutex
	first := true

	err := Loop(begin, end, opts, func(i int) error {
		v, err := body(i)
		if err != nil {
			return err
		}
		mu.Lock()
		if first {
			acc = v
			first = false
		} else {
			acc = combine(acc, v)
		}
		mu.Unlock()
		return nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return acc, nil
}

// normalize applies defaults and validates explicit options.
func normalize(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts == nil {
		return o, nil
	}
	if opts.Workers != 0 {
		if opts.Workers < 1 {
			return o, ErrWorkers
		}
		o.Workers = opts.Workers
	}
	if opts.Chunk != 0 {
		if opts.Chunk < 1 {
			return o, ErrChunk
		}
		o.Chunk = opts.Chunk
	}
	if opts.Ctx != nil {
		o.Ctx = opts.Ctx
	}
	return o, nil
}
