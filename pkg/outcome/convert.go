package outcome

import "errors"

// ConvertValue rebuilds r with its success type changed to U via conv. The
// error payload of a failed Result passes through unchanged. An empty Result
// cannot be converted: there is no payload to carry over, so ConvertValue
// returns an *AccessError instead of silently constructing a zero value.
func ConvertValue[T, E, U any](r Result[T, E], conv func(T) U) (Result[U, E], error) {
	switch r.state {
	case StateSuccess:
		return Succeed[U, E](conv(r.value)), nil
	case StateError:
		return Fail[U, E](r.err), nil
	default:
		return Empty[U, E](), &AccessError{State: r.state}
	}
}

// ConvertError rebuilds r with its error type changed to U via conv. The
// success payload passes through unchanged, making the conversion a no-op on
// successful Results. An empty Result returns an *AccessError, as with
// ConvertValue.
func ConvertError[T, E, U any](r Result[T, E], conv func(E) U) (Result[T, U], error) {
	switch r.state {
	case StateError:
		return Fail[T, U](conv(r.err)), nil
	case StateSuccess:
		return Succeed[T, U](r.value), nil
	default:
		return Empty[T, U](), &AccessError{State: r.state}
	}
}

// From classifies Go's (value, error) pair convention into a Result: a nil
// error succeeds with value, anything else fails with err.
func From[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Fail[T, error](err)
	}
	return Succeed[T, error](value)
}

// Unpack is the inverse of From, collapsing a Result back into Go's
// (value, error) pair. An empty Result yields an *AccessError so that
// emptiness is never mistaken for success.
func Unpack[T any, E error](r Result[T, E]) (T, error) {
	switch r.state {
	case StateSuccess:
		return r.value, nil
	case StateError:
		var zero T
		return zero, r.err
	default:
		var zero T
		return zero, &AccessError{State: r.state}
	}
}

// Validate runs every check against the success value and joins the failures
// into a single failed Result. Failed and empty Results pass through, and a
// success with no failing checks is returned unchanged.
func Validate[T any](r Result[T, error], checks ...func(T) error) Result[T, error] {
	if r.state != StateSuccess {
		return r
	}

	var errs []error
	for _, check := range checks {
		if err := check(r.value); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return Fail[T, error](errors.Join(errs...))
	}
	return r
}
