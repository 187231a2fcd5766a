package core

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Engine processes one input value.
type Engine func(ctx context.Context, input any) any

type CancellationHandlers struct {
	// OnCancelUnprocessed receives a value that was read but not processed.
	OnCancelUnprocessed func(ctx context.Context, unprocessed any)
	// OnCancelProcessed receives a value that was processed but not delivered.
	OnCancelProcessed func(ctx context.Context, in any, processed any)
}

// Locomotive reads inputCh until it is closed or ctx is done, runs engine on
// every value and writes the result to outCh.
func Locomotive(ctx context.Context, line int, inputCh <-chan any, outCh chan<- any,
	engine Engine, handlers CancellationHandlers, wg *sync.WaitGroup) {
	defer wg.Done()

	log := Logger(ctx).With(zap.Int("line", line))
	processed := 0

	for {
		select {
		case <-ctx.Done():
			log.Debug("locomotive: cancelled", zap.Int("processed", processed))
			return
		case in, ok := <-inputCh:
			if !ok {
				log.Debug("locomotive: input closed", zap.Int("processed", processed))
				return
			}

			if ctx.Err() != nil {
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in)
				}
				log.Debug("locomotive: cancelled", zap.Int("processed", processed))
				return
			}

			pr := engine(ctx, in)

			select {
			case <-ctx.Done():
				if handlers.OnCancelProcessed != nil {
					handlers.OnCancelProcessed(ctx, in, pr)
				}
				log.Debug("locomotive: cancelled", zap.Int("processed", processed))
				return
			case outCh <- pr:
				processed++
			}
		}
	}
}
