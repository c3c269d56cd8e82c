// SPDX-License-Identifier: Apache-2.0

package fold

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteTo serializes the trace events as a pretty-printed JSON array.
//
// This differs from streaming (via [WithStreamTo]), which writes JSON Lines
// while events are recorded.
func (t *Trace) WriteTo(w io.Writer) (int64, error) {
	data, err := json.MarshalIndent(t.Events, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to marshal trace: %w", err)
	}

	n, err := w.Write(data)
	if err != nil {
		return int64(n), fmt.Errorf("failed to write trace: %w", err)
	}

	nn, err := w.Write([]byte("\n"))
	if err != nil {
		return int64(n + nn), fmt.Errorf("failed to write newline: %w", err)
	}
	return int64(n + nn), nil
}

// WriteText writes one line per event: the tag, the index in brackets and the
// value.
//
// Example output:
//
//	words[0] This
//	words[1] is
//	lengths[0] 4
func (t *Trace) WriteText(w io.Writer) (int64, error) {
	var total int64
	for _, event := range t.Events {
		n, err := fmt.Fprintf(w, "%s[%d] %s\n", event.Tag, event.Index, event.Value)
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("failed to write trace: %w", err)
		}
	}
	return total, nil
}
