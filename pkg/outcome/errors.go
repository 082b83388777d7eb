package outcome

import "fmt"

// AccessError reports a payload access that does not match the state of the
// Result, such as reading the success value of a failed or empty Result.
// State carries the state the Result was actually in.
type AccessError struct {
	State State
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("outcome: invalid access, result state is %s", e.State)
}

// MismatchError reports a New call whose payloads do not agree with the
// requested state, for example a success state without a value.
type MismatchError struct {
	State  State
	Reason string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("outcome: cannot build %s result: %s", e.State, e.Reason)
}

// ExpectError carries the caller-supplied message of a failed Expect call.
// Error returns the message verbatim.
type ExpectError struct {
	Message string
}

func (e *ExpectError) Error() string { return e.Message }
