package flow

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rk-86/outcome/pkg/outcome"
)

// Source emits each value as a successful result. The channel closes when
// the values run out or the context is cancelled, so downstream readers
// always terminate.
func Source[T, E any](ctx context.Context, values ...T) <-chan outcome.Result[T, E] {
	out := make(chan outcome.Result[T, E])

	go func() {
		defer close(out)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case out <- outcome.Succeed[T, E](v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Results forwards ready-made results, closing on exhaustion or
// cancellation like Source.
func Results[T, E any](ctx context.Context, results ...outcome.Result[T, E]) <-chan outcome.Result[T, E] {
	out := make(chan outcome.Result[T, E])

	go func() {
		defer close(out)

		for _, r := range results {
			if ctx.Err() != nil {
				return
			}

			select {
			case out <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Pipe fans the results from in through stage on a pool of workers and
// returns the output channel. A non-positive workers count falls back to the
// context option and then to runtime.NumCPU. Output order follows completion,
// not input order.
//
// On cancellation the pool stops; with the keep-pending option set, the line
// then forwards every input still pending as an empty result until the
// source closes, so consumers must keep draining the output.
func Pipe[In, Out, E any](ctx context.Context, in <-chan outcome.Result[In, E],
	stage Stage[In, Out, E], workers int) <-chan outcome.Result[Out, E] {

	if workers <= 0 {
		workers = Workers(ctx, runtime.NumCPU())
	}
	if workers <= 0 {
		workers = 1
	}

	out := make(chan outcome.Result[Out, E])
	ln := newLine(ctx)

	go func() {
		defer close(out)

		eg, workerCtx := errgroup.WithContext(ctx)
		for w := 0; w < workers; w++ {
			w := w
			eg.Go(func() error {
				return work(workerCtx, w, in, out, stage, ln)
			})
		}

		if err := eg.Wait(); err != nil && ln.keepPending {
			for range in {
				out <- outcome.Empty[Out, E]()
				ln.observe(DrainWorker, outcome.StateEmpty)
			}
		}
	}()

	return out
}

// work is one worker's loop: take an input, run the stage, forward the
// output, and bail out with the context's error once cancelled.
func work[In, Out, E any](ctx context.Context, worker int, in <-chan outcome.Result[In, E],
	out chan<- outcome.Result[Out, E], stage Stage[In, Out, E], ln line) error {

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("line %s worker %d: %w", ln.id, worker, ctx.Err())
		case r, ok := <-in:
			if !ok {
				return nil
			}

			next := stage(ctx, r)

			select {
			case <-ctx.Done():
				return fmt.Errorf("line %s worker %d: %w", ln.id, worker, ctx.Err())
			case out <- next:
				ln.observe(worker, next.State())
			}
		}
	}
}

// Collect reads the channel to exhaustion and returns everything it carried.
// Every producer in this package closes its channel on cancellation, so
// Collect always terminates.
func Collect[T any](in <-chan T) []T {
	var results []T
	for v := range in {
		results = append(results, v)
	}
	return results
}

// First returns the first value to arrive, or T's zero value when the
// channel closes or the context is cancelled before anything arrives. For
// result elements the zero value is the empty Result.
func First[T any](ctx context.Context, in <-chan T) T {
	var zero T
	select {
	case v, ok := <-in:
		if !ok {
			return zero
		}
		return v
	case <-ctx.Done():
		return zero
	}
}
