package flow

import (
	"context"

	"github.com/rk-86/outcome/pkg/outcome"
)

// Stage transforms one result into the next as it travels through a
// pipeline. Stages receive the pipeline's context so that slow work inside
// them can honor cancellation; the result values themselves stay plain.
type Stage[In, Out, E any] func(context.Context, outcome.Result[In, E]) outcome.Result[Out, E]

// Map lifts a transformation of the success value into a Stage. Failed and
// empty results pass through retyped.
func Map[In, Out, E any](f func(context.Context, In) Out) Stage[In, Out, E] {
	return func(ctx context.Context, r outcome.Result[In, E]) outcome.Result[Out, E] {
		return outcome.AndThen(r, func(v In) outcome.Result[Out, E] {
			return outcome.Succeed[Out, E](f(ctx, v))
		})
	}
}

// Then lifts a continuation that already returns a result into a Stage.
func Then[In, Out, E any](f func(context.Context, In) outcome.Result[Out, E]) Stage[In, Out, E] {
	return func(ctx context.Context, r outcome.Result[In, E]) outcome.Result[Out, E] {
		return outcome.AndThen(r, func(v In) outcome.Result[Out, E] {
			return f(ctx, v)
		})
	}
}

// Try lifts a function following Go's (value, error) convention into a Stage
// over error-typed results.
func Try[In, Out any](f func(context.Context, In) (Out, error)) Stage[In, Out, error] {
	return func(ctx context.Context, r outcome.Result[In, error]) outcome.Result[Out, error] {
		return outcome.AndThen(r, func(v In) outcome.Result[Out, error] {
			return outcome.From(f(ctx, v))
		})
	}
}

// Check lifts a validation predicate into a Stage, failing with err every
// success value the predicate rejects.
func Check[T, E any](pred func(context.Context, T) bool, err E) Stage[T, T, E] {
	return func(ctx context.Context, r outcome.Result[T, E]) outcome.Result[T, E] {
		return outcome.AndThen(r, func(v T) outcome.Result[T, E] {
			if !pred(ctx, v) {
				return outcome.Fail[T, E](err)
			}
			return outcome.Succeed[T, E](v)
		})
	}
}

// Tap lifts a read-only side effect into a Stage. It observes every state
// and forwards the result unchanged.
func Tap[T, E any](f func(context.Context, outcome.Result[T, E])) Stage[T, T, E] {
	return func(ctx context.Context, r outcome.Result[T, E]) outcome.Result[T, E] {
		return r.Inspect(func(snapshot outcome.Result[T, E]) {
			f(ctx, snapshot)
		})
	}
}
