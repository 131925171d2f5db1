// Package worker provides a bounded, order-preserving worker pool for bulk
// processing.
package worker

import (
	"context"
	"sync"
)

// Run applies fn to every input using at most size concurrent workers and
// returns one output per input, in input order. Each worker processes one
// input end to end before taking the next. Outputs are written into
// index-addressed slots, so no reordering or merge step is needed and
// completion order is irrelevant. Run waits for all workers to finish.
func Run[T any](ctx context.Context, inputs []string, size int, fn func(context.Context, string) T) []T {
	if len(inputs) == 0 {
		return nil
	}
	if size < 1 {
		size = 1
	}
	if size > len(inputs) {
		size = len(inputs)
	}

	results := make([]T, len(inputs))
	indices := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < size; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indices {
				results[idx] = fn(ctx, inputs[idx])
			}
		}()
	}

	for i := range inputs {
		indices <- i
	}
	close(indices)
	wg.Wait()

	return results
}
