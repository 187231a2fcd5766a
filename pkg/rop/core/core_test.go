package core

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestToChanFromChan(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	got := FromChan(ctx, ToChan(ctx, 1, 2, 3))
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestToChan_StopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	core, logs := observer.New(zap.DebugLevel)
	ctx, cancel := context.WithCancel(WithLogger(context.Background(), zap.New(core)))

	ch := ToChan(ctx, 1, 2, 3)
	first := <-ch
	cancel()

	for range ch {
	}

	assert.Equal(t, 1, first)
	assert.NotZero(t, logs.FilterMessage("to chan: context done").Len())
}

func TestSeq_Break(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	ch := ToChan(ctx, "a", "b", "c")
	for v := range Seq(ctx, ch) {
		assert.Equal(t, "a", v)
		break
	}
	cancel()
	for range ch {
	}
}

func TestSeqCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	closed := make(chan int, 1)
	closed <- 1
	close(closed)

	seq, cancelled := SeqCancelled(ctx, closed)
	for range seq {
	}
	assert.False(t, cancelled())

	cancel()
	seq, cancelled = SeqCancelled(ctx, make(chan int))
	for range seq {
	}
	assert.True(t, cancelled())
}

func TestOptions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, 4, GetWorkerMaxCount(ctx, 4))
	assert.Equal(t, 2, GetWorkerMaxCount(WithWorkerOptions(ctx, 2), 4))
	assert.Equal(t, 4, GetWorkerMaxCount(WithWorkerOptions(ctx, 0), 4))

	require.NotNil(t, Logger(ctx))
	l := zap.NewExample()
	assert.Same(t, l, Logger(WithLogger(ctx, l)))
}

func TestLocomotive(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	out := make(chan any, 3)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	in := make(chan any, 3)
	in <- 1
	in <- 2
	in <- 3
	close(in)

	Locomotive(ctx, 0, in, out, func(_ context.Context, v any) any { return v.(int) * 10 },
		CancellationHandlers{}, wg)
	close(out)

	var got []any
	for v := range out {
		got = append(got, v)
	}
	assert.Equal(t, []any{10, 20, 30}, got)
}

func TestLocomotive_CancelProcessed(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan any, 1)
	in <- 1
	out := make(chan any) // never read

	var gotIn, gotProcessed any
	wg := &sync.WaitGroup{}
	wg.Add(1)
	go Locomotive(ctx, 0, in, out, func(_ context.Context, v any) any {
		cancel()
		return v.(int) + 1
	}, CancellationHandlers{
		OnCancelProcessed: func(_ context.Context, in any, processed any) {
			gotIn, gotProcessed = in, processed
		},
	}, wg)
	wg.Wait()

	assert.Equal(t, 1, gotIn)
	assert.Equal(t, 2, gotProcessed)
}
