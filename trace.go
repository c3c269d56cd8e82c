// SPDX-License-Identifier: Apache-2.0

package fold

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// TraceEvent records one element passing a monitored point.
type TraceEvent struct {
	// Tag is the tag of the monitor that saw the element.
	Tag string `json:"tag"`

	// Index is the index of the element at the monitored point.
	Index int `json:"index"`

	// Value is the element formatted with the %v verb.
	Value string `json:"value"`

	// Time is when the element was seen.
	Time time.Time `json:"time"`
}

// TraceOption configures a [Trace].
type TraceOption func(*traceOptions)

type traceOptions struct {
	// StreamTo receives events as JSON Lines while they are recorded.
	// If nil, events are only kept in memory.
	StreamTo io.Writer
}

// WithStreamTo configures the trace to stream events as JSON Lines to w.
//
// Events are written one per line as they are recorded, and are also kept in
// memory. Write failures are ignored: tracing never breaks the pipeline it
// observes.
//
// Example:
//
//	f, _ := os.Create("trace.jsonl")
//	defer f.Close()
//	tr := fold.NewTrace(fold.WithStreamTo(f))
//
//	// trace.jsonl contains one JSON object per line:
//	// {"tag":"input","index":0,"value":"42","time":"..."}
func WithStreamTo(w io.Writer) TraceOption {
	return func(opts *traceOptions) {
		opts.StreamTo = w
	}
}

// Trace is a record of the elements seen by trace monitors.
//
// A Trace is safe for use by several monitors at once. Read Events only once
// the traced pipelines are done.
type Trace struct {
	// Events is the list of recorded events, in recording order.
	Events []TraceEvent

	// Start is when the trace was created.
	Start time.Time

	mu       sync.Mutex
	streamTo io.Writer
	encoder  *json.Encoder
}

// NewTrace creates an empty trace.
func NewTrace(opts ...TraceOption) *Trace {
	options := traceOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	t := &Trace{
		Events:   make([]TraceEvent, 0),
		Start:    time.Now(),
		streamTo: options.StreamTo,
	}
	if t.streamTo != nil {
		t.encoder = json.NewEncoder(t.streamTo)
	}
	return t
}

// TraceMonitor returns a monitor recording every element into t.
//
// Example:
//
//	tr := fold.NewTrace()
//	total := seq.Collect(
//	    seq.Of(1, 2, 3).Monitor("input", fold.TraceMonitor[int](tr)),
//	    collectors.Sum[int](),
//	)
//	tr.WriteText(os.Stdout)
func TraceMonitor[E any](t *Trace) MonitorFunc[E] {
	return func(tag string, elem E, index int) {
		t.record(TraceEvent{
			Tag:   tag,
			Index: index,
			Value: fmt.Sprint(elem),
			Time:  time.Now(),
		})
	}
}

// record appends an event and streams it if enabled.
func (t *Trace) record(event TraceEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.Events = append(t.Events, event)

	// best-effort
	if t.encoder != nil {
		_ = t.encoder.Encode(event)
	}
}

// Len returns the number of recorded events.
func (t *Trace) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.Events)
}
