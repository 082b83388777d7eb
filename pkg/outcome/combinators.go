package outcome

// Map applies f to the success value and returns the transformed Result.
// Failed and empty Results pass through unchanged.
func (r Result[T, E]) Map(f func(T) T) Result[T, E] {
	if r.state != StateSuccess {
		return r
	}
	return Succeed[T, E](f(r.value))
}

// MapError applies f to the error value and returns the transformed Result.
// Successful and empty Results pass through unchanged.
func (r Result[T, E]) MapError(f func(E) E) Result[T, E] {
	if r.state != StateError {
		return r
	}
	return Fail[T, E](f(r.err))
}

// Inspect hands a copy of the Result to f for its side effect and returns
// the Result unchanged. It runs in every state; value semantics keep the tap
// read-only.
func (r Result[T, E]) Inspect(f func(Result[T, E])) Result[T, E] {
	f(r)
	return r
}

// AndThen chains f onto the success value, letting a continuation produce a
// new success type. A failed Result keeps its error under the new type; an
// empty Result stays empty.
func AndThen[T, E, U any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	switch r.state {
	case StateSuccess:
		return f(r.value)
	case StateError:
		return Fail[U, E](r.err)
	default:
		return Empty[U, E]()
	}
}

// OrElse chains f onto the error value, letting a recovery step report a new
// error type. A successful Result keeps its value under the new type; an
// empty Result stays empty.
func OrElse[T, E, U any](r Result[T, E], f func(E) Result[T, U]) Result[T, U] {
	switch r.state {
	case StateError:
		return f(r.err)
	case StateSuccess:
		return Succeed[T, U](r.value)
	default:
		return Empty[T, U]()
	}
}

// Transform hands the whole Result to f in every state; the caller fully
// controls the output shape.
func Transform[T, E, U, V any](r Result[T, E], f func(Result[T, E]) Result[U, V]) Result[U, V] {
	return f(r)
}

// Or resolves two Results in favor of the first success: a successful r
// keeps its value under fallback's error type, while failed and empty
// Results both yield fallback unchanged.
func Or[T, E, U any](r Result[T, E], fallback Result[T, U]) Result[T, U] {
	if r.state == StateSuccess {
		return Succeed[T, U](r.value)
	}
	return fallback
}
