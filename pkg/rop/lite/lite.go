package lite

import (
	"context"
	"sync"

	"github.com/ib-77/ropshape/pkg/rop"
	"github.com/ib-77/ropshape/pkg/rop/core"
	"github.com/ib-77/ropshape/pkg/rop/mass"
	"github.com/ib-77/ropshape/pkg/rop/solo"
)

// Run fans engine out over lines workers. A non-positive lines falls back to
// the worker count configured in ctx, then to 1. The output channel is closed
// once every worker has stopped.
func Run(ctx context.Context, inputCh <-chan any, engine core.Engine, lines int) <-chan any {
	return RunWith(ctx, inputCh, engine, core.CancellationHandlers{}, lines)
}

func RunWith(ctx context.Context, inputCh <-chan any, engine core.Engine,
	handlers core.CancellationHandlers, lines int) <-chan any {

	if lines <= 0 {
		lines = core.GetWorkerMaxCount(ctx, 1)
	}

	out := make(chan any)
	wg := &sync.WaitGroup{}

	for line := range lines {
		wg.Add(1)
		go core.Locomotive(ctx, line, inputCh, out, engine, handlers, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Map(f func(payload any) any) core.Engine {
	return func(_ context.Context, input any) any {
		return solo.Map(input, f)
	}
}

func MapErr(f func(reason any) any) core.Engine {
	return func(_ context.Context, input any) any {
		return solo.MapErr(input, f)
	}
}

func AndThen(f func(payload any) any) core.Engine {
	return func(_ context.Context, input any) any {
		return solo.AndThen(input, f)
	}
}

func OrElseLazy(f func(reason any) any) core.Engine {
	return func(_ context.Context, input any) any {
		return solo.OrElseLazy(input, f)
	}
}

func Flatten() core.Engine {
	return func(_ context.Context, input any) any {
		return solo.Flatten(input)
	}
}

// All drains in with mass.AllSeq. It stops reading at the first Failure or
// Absent; the caller should cancel ctx afterwards to release the producers.
// If ctx is done before in is drained, the result is Failure(ctx.Err())
// unless a Failure or Absent was already found.
func All(ctx context.Context, in <-chan any) any {
	seq, cancelled := core.SeqCancelled(ctx, in)
	res := mass.AllSeq(seq)
	if cancelled() && rop.ShapeOf(res) == rop.ShapeSuccess {
		return rop.Failure(ctx.Err())
	}
	return res
}

func Values(ctx context.Context, in <-chan any) ([]any, error) {
	res := make([]any, 0)
	for v := range mass.ValuesSeq(core.Seq(ctx, in)) {
		res = append(res, v)
	}
	return res, ctx.Err()
}

func Partition(ctx context.Context, in <-chan any) (successes, failures []any, err error) {
	successes, failures = mass.PartitionSeq(core.Seq(ctx, in))
	return successes, failures, ctx.Err()
}
