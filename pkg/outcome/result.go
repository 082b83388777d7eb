package outcome

import "fmt"

// Result holds exactly one of: a success value of type T, an error value of
// type E, or nothing at all. The zero value is an empty Result.
//
// A Result is a plain immutable value: accessors and combinators never change
// the receiver, and copying duplicates the live payload. Take is the only
// mutating operation. Concurrent use of distinct copies is safe; concurrent
// mutation of a single instance through Take is not.
type Result[T, E any] struct {
	state State
	value T
	err   E
}

// Succeed returns a successful Result holding value.
func Succeed[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		state: StateSuccess,
		value: value,
	}
}

// Fail returns a failed Result holding err.
func Fail[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		state: StateError,
		err:   err,
	}
}

// Empty returns a Result holding no payload, modelling a computation that has
// not produced anything yet.
func Empty[T, E any]() Result[T, E] {
	return Result[T, E]{}
}

// New builds a Result in the given state from optional payloads, where a nil
// pointer means the payload is absent. The payloads must agree with the
// requested state: a success state needs a value and nothing else, an error
// state needs an error value and nothing else, an empty state needs neither.
// Any other pairing returns an empty Result and a *MismatchError.
func New[T, E any](state State, value *T, err *E) (Result[T, E], error) {
	switch state {
	case StateSuccess:
		if value == nil {
			return Empty[T, E](), &MismatchError{State: state, Reason: "success state without a value"}
		}
		if err != nil {
			return Empty[T, E](), &MismatchError{State: state, Reason: "success state with an error payload"}
		}
		return Succeed[T, E](*value), nil
	case StateError:
		if err == nil {
			return Empty[T, E](), &MismatchError{State: state, Reason: "error state without an error payload"}
		}
		if value != nil {
			return Empty[T, E](), &MismatchError{State: state, Reason: "error state with a value"}
		}
		return Fail[T, E](*err), nil
	case StateEmpty:
		if value != nil || err != nil {
			return Empty[T, E](), &MismatchError{State: state, Reason: "payload paired with the empty state"}
		}
		return Empty[T, E](), nil
	default:
		return Empty[T, E](), &MismatchError{State: state, Reason: "unknown state"}
	}
}

// State reports which payload the Result holds.
func (r Result[T, E]) State() State { return r.state }

// IsSuccess reports whether the Result holds a success value.
func (r Result[T, E]) IsSuccess() bool { return r.state == StateSuccess }

// IsError reports whether the Result holds an error value.
func (r Result[T, E]) IsError() bool { return r.state == StateError }

// IsEmpty reports whether the Result holds no payload.
func (r Result[T, E]) IsEmpty() bool { return r.state == StateEmpty }

// Ok reports whether the Result is successful. Failed and empty Results are
// both not ok; use State to tell them apart.
func (r Result[T, E]) Ok() bool { return r.state == StateSuccess }

// Success returns the success value when present.
func (r Result[T, E]) Success() (T, bool) {
	if r.state != StateSuccess {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Failure returns the error value when present.
func (r Result[T, E]) Failure() (E, bool) {
	if r.state != StateError {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Value returns the success value, or an *AccessError carrying the actual
// state when the Result is not successful.
func (r Result[T, E]) Value() (T, error) {
	if r.state != StateSuccess {
		var zero T
		return zero, &AccessError{State: r.state}
	}
	return r.value, nil
}

// MustValue returns the success value and panics with an *AccessError on any
// other state.
func (r Result[T, E]) MustValue() T {
	v, err := r.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// ValueOr returns the success value, or fallback when the Result is failed
// or empty. It never fails.
func (r Result[T, E]) ValueOr(fallback T) T {
	if r.state != StateSuccess {
		return fallback
	}
	return r.value
}

// Expect returns the success value, or an *ExpectError carrying message
// verbatim when the Result is not successful.
func (r Result[T, E]) Expect(message string) (T, error) {
	if r.state != StateSuccess {
		var zero T
		return zero, &ExpectError{Message: message}
	}
	return r.value, nil
}

// Take returns the Result and leaves the receiver empty, transferring the
// payload to the returned copy. The receiver can be reused afterwards as an
// ordinary empty Result.
func (r *Result[T, E]) Take() Result[T, E] {
	taken := *r
	*r = Result[T, E]{}
	return taken
}

// String renders the live payload's text form: the success value when
// successful, the error value when failed, and the empty string when empty.
func (r Result[T, E]) String() string {
	switch r.state {
	case StateSuccess:
		return fmt.Sprint(r.value)
	case StateError:
		return fmt.Sprint(r.err)
	default:
		return ""
	}
}
