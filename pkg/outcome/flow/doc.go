// Package flow lifts outcome.Result values onto channels for streaming
// pipelines with worker fan-out.
//
// The value type stays plain: all concurrency lives here. Sources emit
// results and close their channels on exhaustion or cancellation; Pipe runs
// a Stage over a worker pool; sinks collect, pick or fold what comes out.
// Cancellation maps onto the container's empty state: a cancelled line can
// forward its pending inputs as empty results ("not computed") instead of
// inventing error payloads.
//
// Key operations:
// - Source/Results: turn values or ready results into a channel
// - Pipe: fan a Stage out over workers, one line per call
// - Map/Then/Try/Check/Tap: lift plain functions into stages
// - Collect/First: gather everything, or take the first arrival
// - Finalize/Fold: collapse results into final values via handlers
// - WithWorkers/WithKeepPending/WithTrace: per-context line options
//
// Each Pipe call is one "line" with a uuid identity; an installed TraceFunc
// receives a Trace event for every result a line forwards.
package flow
