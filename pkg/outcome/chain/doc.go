// Package chain provides a fluent wrapper around outcome.Result[T, E]
// for building synchronous pipelines step by step.
//
// It keeps the branching of success, error and empty states behind a
// convenient Chain[T, E] type, so call sites read as a straight line of
// steps. Same-type steps are methods; steps that change a type parameter
// are package functions, since Go methods cannot introduce type
// parameters.
//
// Key operations:
// - Start/FromValue/FromError: begin a chain from a Result or a payload
// - Then: compose a function that already returns a Result
// - Map/MapError: transform the current payload
// - Recover: swap a failure for a replacement result
// - Validate: fail the chain when a predicate rejects the value
// - Ensure/Tap: run side effects without changing the result
// - Or: keep the first successful chain of two
// - While: repeat a step while it succeeds and a condition holds
// - AndThen/OrElse/Try: type-changing composition
// - Finally: collapse the chain into a final value via handlers
package chain
