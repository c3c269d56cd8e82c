// SPDX-License-Identifier: Apache-2.0

package fold_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/sam-fredrickson/fold"
	"github.com/stretchr/testify/require"
)

func TestIndexedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("reading lines: %w", &fold.IndexedError{Index: 3, Err: io.ErrUnexpectedEOF})

	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.EqualError(t, err, "reading lines: element 3: unexpected EOF")

	var ie *fold.IndexedError
	require.True(t, errors.As(err, &ie))
	require.Equal(t, 3, ie.Index)
}

func TestRequireEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := fold.None[int]().Require()
	require.ErrorIs(t, err, fold.ErrEmptyInput)

	v, err := fold.Some(0).Require()
	require.NoError(t, err)
	require.Zero(t, v)
}
