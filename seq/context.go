// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"context"
	"log/slog"
	"time"

	"github.com/sam-fredrickson/fold"
)

// seqCtxKey is the context key for retrieving the seqCtx.
type seqCtxKey struct{}

// seqCtx keeps every value the asynchronous pipeline reads from its context
// behind a single key, so that a monitor firing on every element does one
// lookup instead of one per value.
//
// It embeds the parent context, which handles cancellation, deadlines and
// all other values.
type seqCtx struct {
	context.Context

	// slogger is the logger used by [LogElements]. Never nil.
	slogger *slog.Logger

	// trace receives the events of [TraceElements]. nil if tracing is off.
	trace *fold.Trace
}

func (c *seqCtx) Value(key any) any {
	if _, ok := key.(seqCtxKey); ok {
		return c
	}
	return c.Context.Value(key)
}

// fromContext returns the seqCtx of ctx, or the defaults.
func fromContext(ctx context.Context) *seqCtx {
	if c, ok := ctx.Value(seqCtxKey{}).(*seqCtx); ok {
		return c
	}
	return &seqCtx{Context: ctx, slogger: slog.Default()}
}

// derived copies the pipeline values of ctx into a new seqCtx over ctx.
func derived(ctx context.Context) *seqCtx {
	origin := fromContext(ctx)
	return &seqCtx{Context: ctx, slogger: origin.slogger, trace: origin.trace}
}

// WithSlogger returns a context whose pipelines log with logger. A nil
// logger restores [slog.Default].
func WithSlogger(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = slog.Default()
	}
	c := derived(ctx)
	c.slogger = logger
	return c
}

// Slogger returns the logger set by [WithSlogger], or [slog.Default].
func Slogger(ctx context.Context) *slog.Logger {
	return fromContext(ctx).slogger
}

// WithTrace returns a context whose pipelines record to t.
func WithTrace(ctx context.Context, t *fold.Trace) context.Context {
	c := derived(ctx)
	c.trace = t
	return c
}

// TraceOf returns the trace set by [WithTrace], or nil.
func TraceOf(ctx context.Context) *fold.Trace {
	return fromContext(ctx).trace
}

// LogElements returns an asynchronous monitor that logs every element with
// the logger of the pulling context.
//
// Example:
//
//	ctx = seq.WithSlogger(ctx, logger)
//	lines = lines.Monitor("lines", seq.LogElements[string](slog.LevelDebug))
func LogElements[T any](level slog.Level) AsyncMonitorFunc[T] {
	return func(ctx context.Context, tag string, elem T, index int) {
		Slogger(ctx).Log(ctx, level, "element", "tag", tag, "index", index, "elem", elem)
	}
}

// TraceElements returns an asynchronous monitor that records every element
// in the trace of the pulling context. Without a trace, it does nothing.
func TraceElements[T any]() AsyncMonitorFunc[T] {
	return func(ctx context.Context, tag string, elem T, index int) {
		if t := TraceOf(ctx); t != nil {
			fold.TraceMonitor[T](t)(tag, elem, index)
		}
	}
}

// Lift turns a synchronous monitor into an asynchronous one.
func Lift[T any](effect fold.MonitorFunc[T]) AsyncMonitorFunc[T] {
	return func(_ context.Context, tag string, elem T, index int) {
		effect(tag, elem, index)
	}
}

// Sleep pauses for d. It returns the context's error if ctx is done first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
