package outcome

// State identifies which payload, if any, a Result currently holds.
type State uint8

const (
	// StateEmpty marks a Result that holds no payload yet.
	StateEmpty State = iota
	// StateSuccess marks a Result that holds a success value.
	StateSuccess
	// StateError marks a Result that holds an error value.
	StateError
)

// String returns the lower-case name of the state.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}
