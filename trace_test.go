// SPDX-License-Identifier: Apache-2.0

package fold_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"sync"
	"testing"

	"github.com/sam-fredrickson/fold"
	"github.com/sam-fredrickson/fold/collectors"
	"github.com/stretchr/testify/require"
)

func TestTraceMonitor(t *testing.T) {
	t.Parallel()

	tr := fold.NewTrace()
	c := fold.MonitorInput(collectors.Sum[int](), "input", fold.TraceMonitor[int](tr))
	c = fold.TakeInput(c, 2)

	require.Equal(t, 3, fold.CollectSlice([]int{1, 2, 3}, c))
	require.Equal(t, 2, tr.Len())
	require.Equal(t, "input", tr.Events[0].Tag)
	require.Equal(t, 0, tr.Events[0].Index)
	require.Equal(t, "1", tr.Events[0].Value)
	require.Equal(t, "2", tr.Events[1].Value)
	require.False(t, tr.Events[0].Time.Before(tr.Start))
}

func TestTraceStreaming(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := fold.NewTrace(fold.WithStreamTo(&buf))
	c := fold.MonitorInput(collectors.Join(" "), "words", fold.TraceMonitor[string](tr))
	fold.CollectSlice([]string{"This", "is", "a", "test"}, c)

	var events []fold.TraceEvent
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var event fold.TraceEvent
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &event))
		events = append(events, event)
	}
	require.NoError(t, scanner.Err())
	require.Len(t, events, 4)
	require.Equal(t, "test", events[3].Value)
	require.Equal(t, 3, events[3].Index)
	require.Len(t, tr.Events, 4, "streamed events are also kept in memory")
}

func TestTraceConcurrentMonitors(t *testing.T) {
	t.Parallel()

	tr := fold.NewTrace()
	c := fold.MonitorInput(collectors.Count[int](), "n", fold.TraceMonitor[int](tr))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fold.CollectSlice(make([]int, 100), c)
		}()
	}
	wg.Wait()

	require.Equal(t, 800, tr.Len())
}

func TestTraceEmpty(t *testing.T) {
	t.Parallel()

	tr := fold.NewTrace()
	c := fold.MonitorInput(collectors.Count[int](), "n", fold.TraceMonitor[int](tr))
	require.Zero(t, fold.CollectSlice(nil, c))
	require.Zero(t, tr.Len())
	require.Nil(t, tr.FindEvent())
}
