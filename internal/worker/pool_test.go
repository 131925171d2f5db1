package worker_test

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proars/domnix/internal/worker"
)

func TestRun_OrderPreserved(t *testing.T) {
	inputs := make([]string, 20)
	for i := range inputs {
		inputs[i] = fmt.Sprintf("input-%d", i)
	}

	results := worker.Run(context.Background(), inputs, 5, func(_ context.Context, in string) string {
		// Random jitter so completion order differs from input order.
		time.Sleep(time.Duration(rand.Intn(10)) * time.Millisecond)
		return "out-" + in
	})

	require.Len(t, results, len(inputs))
	for i, r := range results {
		assert.Equal(t, "out-"+inputs[i], r)
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	const size = 3
	var inFlight, peak atomic.Int32

	inputs := make([]string, 24)
	for i := range inputs {
		inputs[i] = fmt.Sprintf("d%d", i)
	}

	worker.Run(context.Background(), inputs, size, func(_ context.Context, in string) struct{} {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return struct{}{}
	})

	assert.LessOrEqual(t, peak.Load(), int32(size))
}

func TestRun_EmptyInputs(t *testing.T) {
	results := worker.Run(context.Background(), nil, 5, func(_ context.Context, in string) string {
		return in
	})
	assert.Empty(t, results)
}

func TestRun_SingleWorker(t *testing.T) {
	inputs := []string{"x", "y", "z"}
	results := worker.Run(context.Background(), inputs, 1, func(_ context.Context, in string) string {
		return in
	})
	assert.Equal(t, inputs, results)
}

func TestRun_MoreWorkersThanInputs(t *testing.T) {
	results := worker.Run(context.Background(), []string{"only"}, 10, func(_ context.Context, in string) string {
		return in
	})
	require.Len(t, results, 1)
	assert.Equal(t, "only", results[0])
}

func TestRun_InvalidSizeClamped(t *testing.T) {
	results := worker.Run(context.Background(), []string{"a", "b"}, 0, func(_ context.Context, in string) string {
		return in
	})
	assert.Equal(t, []string{"a", "b"}, results)
}
