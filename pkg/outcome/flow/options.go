package flow

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rk-86/outcome/pkg/outcome"
)

type optionKey uint8

const (
	workersKey optionKey = iota
	keepPendingKey
	traceKey
)

// WithWorkers stores a preferred worker count for pipeline lines in the
// context. Pipe reads it when no explicit count is given.
func WithWorkers(ctx context.Context, workers int) context.Context {
	return context.WithValue(ctx, workersKey, workers)
}

// Workers returns the worker count stored in the context, or fallback when
// none is set.
func Workers(ctx context.Context, fallback int) int {
	if workers, ok := ctx.Value(workersKey).(int); ok {
		return workers
	}
	return fallback
}

// WithKeepPending controls what a cancelled line does with inputs it has not
// processed: when set, they are forwarded as empty results ("not computed")
// until the source closes; when unset they are dropped.
func WithKeepPending(ctx context.Context, keep bool) context.Context {
	return context.WithValue(ctx, keepPendingKey, keep)
}

// KeepPending returns the keep-pending setting from the context, or fallback
// when none is set.
func KeepPending(ctx context.Context, fallback bool) bool {
	if keep, ok := ctx.Value(keepPendingKey).(bool); ok {
		return keep
	}
	return fallback
}

// Trace describes one result leaving a pipeline line. Worker is the index of
// the worker that forwarded it, or DrainWorker for results emitted while a
// cancelled line drains its pending inputs.
type Trace struct {
	Line   uuid.UUID
	Worker int
	State  outcome.State
}

// DrainWorker marks trace events emitted by the drain of a cancelled line.
const DrainWorker = -1

// TraceFunc receives trace events from the lines of a pipeline. It may be
// called concurrently from several workers and must be safe for that.
type TraceFunc func(Trace)

// WithTrace installs fn as the trace hook for pipeline lines started from
// this context. Nothing is traced unless a hook is installed.
func WithTrace(ctx context.Context, fn TraceFunc) context.Context {
	return context.WithValue(ctx, traceKey, fn)
}

// TraceOf returns the trace hook stored in the context, or nil.
func TraceOf(ctx context.Context) TraceFunc {
	if fn, ok := ctx.Value(traceKey).(TraceFunc); ok {
		return fn
	}
	return nil
}

// LogTrace adapts a structured logger into a TraceFunc.
func LogTrace(logger *slog.Logger) TraceFunc {
	return func(tr Trace) {
		logger.Info("line forwarded result",
			"line", tr.Line.String(),
			"worker", tr.Worker,
			"state", tr.State.String(),
		)
	}
}

// line carries the identity and hooks of one Pipe invocation.
type line struct {
	id          uuid.UUID
	trace       TraceFunc
	keepPending bool
}

func newLine(ctx context.Context) line {
	return line{
		id:          uuid.New(),
		trace:       TraceOf(ctx),
		keepPending: KeepPending(ctx, false),
	}
}

func (l line) observe(worker int, state outcome.State) {
	if l.trace == nil {
		return
	}
	l.trace(Trace{Line: l.id, Worker: worker, State: state})
}
