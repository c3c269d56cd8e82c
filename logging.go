// SPDX-License-Identifier: Apache-2.0

package fold

import (
	"context"
	"log/slog"
	"slices"
)

// A MonitorFunc is a side effect run for every element passing a monitored
// point, before the element moves on. tag identifies the monitored point.
type MonitorFunc[E any] = func(tag string, elem E, index int)

// Monitor is one tagged side effect.
type Monitor[E any] struct {
	Tag    string
	Effect MonitorFunc[E]
}

// Monitors is an ordered list of side effects. Attaching a monitor never
// replaces an earlier one.
type Monitors[E any] []Monitor[E]

// With returns a copy of ms with one more monitor at the end.
func (ms Monitors[E]) With(tag string, effect MonitorFunc[E]) Monitors[E] {
	return append(slices.Clip(ms), Monitor[E]{Tag: tag, Effect: effect})
}

// Fire runs every monitor in attachment order.
func (ms Monitors[E]) Fire(elem E, index int) {
	for _, m := range ms {
		m.Effect(m.Tag, elem, index)
	}
}

// MonitorInput runs effect on every element before it reaches c.
//
// Monitors compose: monitoring an already monitored collector adds a monitor,
// and monitors fire in the order they were attached.
//
// Example:
//
//	logged := fold.MonitorInput(collectors.Sum[int](), "sum",
//	    fold.SlogMonitor[int](slog.Default(), slog.LevelDebug))
func MonitorInput[E, R any](c Collector[E, R], tag string, effect MonitorFunc[E]) Collector[E, R] {
	if m, ok := c.(*monitorCollector[E, R]); ok {
		return &monitorCollector[E, R]{inner: m.inner, monitors: m.monitors.With(tag, effect)}
	}
	return &monitorCollector[E, R]{inner: c, monitors: Monitors[E]{}.With(tag, effect)}
}

type monitorCollector[E, R any] struct {
	inner    Collector[E, R]
	monitors Monitors[E]
}

func (m *monitorCollector[E, R]) Start() Pass[E, R] {
	return &monitorPass[E, R]{inner: m.inner.Start(), monitors: m.monitors}
}

type monitorPass[E, R any] struct {
	inner    Pass[E, R]
	monitors Monitors[E]
}

func (p *monitorPass[E, R]) Next(elem E, index int) {
	p.monitors.Fire(elem, index)
	p.inner.Next(elem, index)
}

func (p *monitorPass[E, R]) Escape(index int) bool { return p.inner.Escape(index) }
func (p *monitorPass[E, R]) Result(index int) R    { return p.inner.Result(index) }

// SlogMonitor returns a monitor that emits one structured log record per
// element, with "tag", "index" and "elem" attributes.
//
// If logger is nil, [slog.Default] is used.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	words = words.Monitor("words", fold.SlogMonitor[string](logger, slog.LevelInfo))
//
// This would emit records similar to:
//
//	{"level":"INFO","msg":"element","tag":"words","index":0,"elem":"This"}
func SlogMonitor[E any](logger *slog.Logger, level slog.Level) MonitorFunc[E] {
	return func(tag string, elem E, index int) {
		l := logger
		if l == nil {
			l = slog.Default()
		}
		l.Log(context.Background(), level, "element", "tag", tag, "index", index, "elem", elem)
	}
}
