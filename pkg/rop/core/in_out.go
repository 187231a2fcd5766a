package core

import (
	"context"
	"iter"

	"go.uber.org/zap"
)

// ToChan emits values in order and closes the channel. It stops early when
// ctx is done.
func ToChan[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		log := Logger(ctx)
		for i, v := range values {
			if ctx.Err() != nil {
				log.Debug("to chan: context done", zap.Int("emitted", i), zap.Int("total", len(values)))
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				log.Debug("to chan: context done", zap.Int("emitted", i), zap.Int("total", len(values)))
				return
			}
		}
	}()

	return in
}

// FromChan drains out until it is closed or ctx is done.
func FromChan[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for v := range Seq(ctx, out) {
		res = append(res, v)
	}
	return res
}

// Seq adapts a channel to an iterator that ends when the channel is closed or
// ctx is done. Breaking out of the loop leaves the channel unread; the
// producer must watch ctx.
func Seq[T any](ctx context.Context, out <-chan T) iter.Seq[T] {
	seq, _ := SeqCancelled(ctx, out)
	return seq
}

// SeqCancelled is Seq plus a report of whether the last iteration stopped
// because ctx was done rather than out being closed or the loop breaking.
func SeqCancelled[T any](ctx context.Context, out <-chan T) (iter.Seq[T], func() bool) {
	var cancelled bool
	seq := func(yield func(T) bool) {
		cancelled = false
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				if !yield(v) {
					return
				}
			case <-ctx.Done():
				cancelled = true
				return
			}
		}
	}
	return seq, func() bool { return cancelled }
}
