package outcome

// Sequence collapses a batch into a single Result carrying every success
// value, short-circuiting on the first element that is not successful: a
// failed element yields its error for the whole batch, an empty element
// collapses the batch to empty.
func Sequence[T, E any](results []Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		switch r.state {
		case StateSuccess:
			values = append(values, r.value)
		case StateError:
			return Fail[[]T, E](r.err)
		default:
			return Empty[[]T, E]()
		}
	}
	return Succeed[[]T, E](values)
}

// Partition splits a batch into its success values and its error values,
// keeping encounter order. Empty elements carry nothing and are dropped.
func Partition[T, E any](results []Result[T, E]) ([]T, []E) {
	var (
		values []T
		errs   []E
	)
	for _, r := range results {
		switch r.state {
		case StateSuccess:
			values = append(values, r.value)
		case StateError:
			errs = append(errs, r.err)
		}
	}
	return values, errs
}
