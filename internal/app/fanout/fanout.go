// Package fanout runs a function over a slice with a bounded number of
// goroutines. Results keep the order of the input.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most maxWorkers calls in flight and
// blocks until all of them return.
//
// An item still waiting for a worker slot when ctx is canceled records
// ctx.Err() and fn is not called for it. Calls already running are not
// interrupted; fn is expected to honor ctx itself.
//
// maxWorkers below 1 is treated as 1. An empty items slice yields an empty,
// non-nil result.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	sem := make(chan struct{}, max(1, maxWorkers))
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
		})
	}

	wg.Wait()
	return results
}

// Collect is Run for callers that need every item to succeed. It returns
// the values in input order, or the error of the lowest failing index.
func Collect[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	results := Run(ctx, maxWorkers, items, fn)

	out := make([]R, len(results))
	for i, r := range results {
		if r.Err != nil {
			return nil, r.Err
		}
		out[i] = r.Value
	}
	return out, nil
}
