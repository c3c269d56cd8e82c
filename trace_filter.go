// SPDX-License-Identifier: Apache-2.0

package fold

import (
	"path/filepath"
	"time"
)

// TraceFilter is a predicate function for filtering trace events.
type TraceFilter func(TraceEvent) bool

// FindEvent returns the first event matching all provided filters, or nil if
// none match.
//
// Example:
//
//	// Find where the first negative number entered the sum
//	event := tr.FindEvent(
//	    fold.HasTag("sum"),
//	    fold.ValueMatches("-*"),
//	)
func (t *Trace) FindEvent(filters ...TraceFilter) *TraceEvent {
	for i := range t.Events {
		if matchAll(t.Events[i], filters) {
			return &t.Events[i]
		}
	}
	return nil
}

// Filter returns a new Trace containing only events matching all provided
// filters. The original trace is not modified.
//
// The returned trace's Start is the time of its earliest event, or the
// original Start if nothing matched.
func (t *Trace) Filter(filters ...TraceFilter) *Trace {
	filtered := make([]TraceEvent, 0, len(t.Events))
	var earliest time.Time
	for _, event := range t.Events {
		if !matchAll(event, filters) {
			continue
		}
		filtered = append(filtered, event)
		if earliest.IsZero() || event.Time.Before(earliest) {
			earliest = event.Time
		}
	}

	start := t.Start
	if !earliest.IsZero() {
		start = earliest
	}
	return &Trace{Events: filtered, Start: start}
}

func matchAll(event TraceEvent, filters []TraceFilter) bool {
	for _, filter := range filters {
		if !filter(event) {
			return false
		}
	}
	return true
}

// HasTag matches events recorded by a monitor with the given tag.
func HasTag(tag string) TraceFilter {
	return func(event TraceEvent) bool {
		return event.Tag == tag
	}
}

// IndexBetween matches events whose index is in [lo, hi].
func IndexBetween(lo, hi int) TraceFilter {
	return func(event TraceEvent) bool {
		return event.Index >= lo && event.Index <= hi
	}
}

// ValueMatches matches events whose formatted value matches a shell pattern
// as understood by [filepath.Match]. Malformed patterns match nothing.
func ValueMatches(pattern string) TraceFilter {
	return func(event TraceEvent) bool {
		ok, err := filepath.Match(pattern, event.Value)
		return err == nil && ok
	}
}

// Between matches events recorded within [from, to].
func Between(from, to time.Time) TraceFilter {
	return func(event TraceEvent) bool {
		return !event.Time.Before(from) && !event.Time.After(to)
	}
}
