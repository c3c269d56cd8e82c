// SPDX-License-Identifier: Apache-2.0

package fold

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by operations that need at least one element,
// such as a reduction or the first element, when the input has none and no
// fallback was supplied.
var ErrEmptyInput = errors.New("empty input")

// IndexedError wraps an error with the index of the element at which it
// occurred.
//
// Example:
//
//	n, err := seq.CollectAsync(ctx, lines, collectors.Count[string]())
//	if err != nil {
//	    var ie *fold.IndexedError
//	    if errors.As(err, &ie) {
//	        fmt.Printf("failed at element %d: %v\n", ie.Index, ie.Err)
//	    }
//	}
type IndexedError struct {
	Index int
	Err   error
}

// Error implements the error interface.
func (e *IndexedError) Error() string {
	return fmt.Sprintf("element %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error for inspection via errors.Is and errors.As.
func (e *IndexedError) Unwrap() error {
	return e.Err
}
