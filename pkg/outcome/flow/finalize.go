package flow

import (
	"context"

	"github.com/rk-86/outcome/pkg/outcome"
)

// Handlers fold one result into a final value, one handler per state. A nil
// handler yields Out's zero value for its state.
type Handlers[In, Out, E any] struct {
	OnSuccess func(context.Context, In) Out
	OnError   func(context.Context, E) Out
	OnEmpty   func(context.Context) Out
}

func (h Handlers[In, Out, E]) fold(ctx context.Context, r outcome.Result[In, E]) Out {
	var zero Out
	switch r.State() {
	case outcome.StateSuccess:
		if h.OnSuccess == nil {
			return zero
		}
		v, _ := r.Success()
		return h.OnSuccess(ctx, v)
	case outcome.StateError:
		if h.OnError == nil {
			return zero
		}
		e, _ := r.Failure()
		return h.OnError(ctx, e)
	default:
		if h.OnEmpty == nil {
			return zero
		}
		return h.OnEmpty(ctx)
	}
}

// Finalize collapses each incoming result into a final value and streams the
// values on the returned channel, which closes when the input closes or the
// context is cancelled.
func Finalize[In, Out, E any](ctx context.Context, in <-chan outcome.Result[In, E],
	handlers Handlers[In, Out, E]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-in:
				if !ok {
					return
				}

				select {
				case out <- handlers.fold(ctx, r):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// Fold collapses a single result with the same handlers Finalize uses.
func Fold[In, Out, E any](ctx context.Context, r outcome.Result[In, E], handlers Handlers[In, Out, E]) Out {
	return handlers.fold(ctx, r)
}
