package chain

import (
	"github.com/rk-86/outcome/pkg/outcome"
)

// Chain wraps an outcome.Result to enable fluent composition. The zero value
// is a chain over an empty Result.
type Chain[T, E any] struct {
	res outcome.Result[T, E]
}

// Start creates a new chain from an outcome.Result.
func Start[T, E any](r outcome.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[T, E any](v T) Chain[T, E] {
	return Start(outcome.Succeed[T, E](v))
}

// FromError creates a new chain from an error value.
func FromError[T, E any](e E) Chain[T, E] {
	return Start(outcome.Fail[T, E](e))
}

// Result returns the underlying outcome.Result.
func (c Chain[T, E]) Result() outcome.Result[T, E] {
	return c.res
}

// Then composes a function that already returns a Result. It runs only on a
// successful chain; failed and empty chains pass through.
func (c Chain[T, E]) Then(f func(T) outcome.Result[T, E]) Chain[T, E] {
	return Start(outcome.AndThen(c.res, f))
}

// Map transforms the successful value.
func (c Chain[T, E]) Map(f func(T) T) Chain[T, E] {
	return Start(c.res.Map(f))
}

// MapError transforms the error value.
func (c Chain[T, E]) MapError(f func(E) E) Chain[T, E] {
	return Start(c.res.MapError(f))
}

// Recover swaps a failure for f's result, keeping successes and empty chains
// as they are.
func (c Chain[T, E]) Recover(f func(E) outcome.Result[T, E]) Chain[T, E] {
	return Start(outcome.OrElse(c.res, f))
}

// Validate fails the chain with err when pred rejects the successful value.
func (c Chain[T, E]) Validate(pred func(T) bool, err E) Chain[T, E] {
	return c.Then(func(v T) outcome.Result[T, E] {
		if !pred(v) {
			return outcome.Fail[T, E](err)
		}
		return outcome.Succeed[T, E](v)
	})
}

// Ensure triggers side effects per state without changing the result. Any
// handler may be nil.
func (c Chain[T, E]) Ensure(onSuccess func(T), onError func(E), onEmpty func()) Chain[T, E] {
	switch c.res.State() {
	case outcome.StateSuccess:
		if onSuccess != nil {
			v, _ := c.res.Success()
			onSuccess(v)
		}
	case outcome.StateError:
		if onError != nil {
			e, _ := c.res.Failure()
			onError(e)
		}
	default:
		if onEmpty != nil {
			onEmpty()
		}
	}
	return c
}

// Tap hands the current result to f unchanged, in every state.
func (c Chain[T, E]) Tap(f func(outcome.Result[T, E])) Chain[T, E] {
	return Start(c.res.Inspect(f))
}

// Or resolves two chains in favor of the first success: c wins when it is
// successful, otherwise the alternative is returned as is.
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	return Start(outcome.Or(c.res, alternative.res))
}

// While repeats step as long as the chain stays successful and cond holds
// for the current value.
func (c Chain[T, E]) While(step func(T) outcome.Result[T, E], cond func(T) bool) Chain[T, E] {
	for {
		v, ok := c.res.Success()
		if !ok || !cond(v) {
			return c
		}
		c = Start(step(v))
	}
}

// AndThen chains a continuation that produces a new success type.
func AndThen[T, E, U any](c Chain[T, E], f func(T) outcome.Result[U, E]) Chain[U, E] {
	return Start(outcome.AndThen(c.res, f))
}

// OrElse chains a recovery step that reports a new error type.
func OrElse[T, E, U any](c Chain[T, E], f func(E) outcome.Result[T, U]) Chain[T, U] {
	return Start(outcome.OrElse(c.res, f))
}

// Try chains a function following Go's (value, error) convention, failing
// the chain when the error is non-nil.
func Try[T, U any](c Chain[T, error], f func(T) (U, error)) Chain[U, error] {
	return Start(outcome.AndThen(c.res, func(v T) outcome.Result[U, error] {
		return outcome.From(f(v))
	}))
}

// Finally collapses the chain into a final value via one handler per state.
func Finally[T, E, U any](c Chain[T, E], onSuccess func(T) U, onError func(E) U, onEmpty func() U) U {
	switch c.res.State() {
	case outcome.StateSuccess:
		v, _ := c.res.Success()
		return onSuccess(v)
	case outcome.StateError:
		e, _ := c.res.Failure()
		return onError(e)
	default:
		return onEmpty()
	}
}
