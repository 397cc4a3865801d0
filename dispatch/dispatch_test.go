package dispatch_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/kruto/dispatch"
)

type event struct {
	id   string
	kind string
}

type trace struct {
	mu    sync.Mutex
	calls []string
}

func (t *trace) record(s string) {
	t.mu.Lock()
	t.calls = append(t.calls, s)
	t.mu.Unlock()
}

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func handler(name string, filter func(event) bool, fn func(*trace, event) (dispatch.Continuation, error)) dispatch.Handler[*trace, event] {
	return dispatch.Handler[*trace, event]{
		Name:   name,
		Filter: filter,
		Callback: func(_ context.Context, tr *trace, e event) (dispatch.Continuation, error) {
			tr.record(name + ":" + e.id)
			return fn(tr, e)
		},
	}
}

func TestDispatch_FaultIsolationAndStop(t *testing.T) {
	reg := &dispatch.Registry[*trace, event]{}
	reg.Add(
		handler("h1", nil, func(*trace, event) (dispatch.Continuation, error) {
			panic("boom")
		}),
		handler("h2", func(e event) bool { return e.kind == "text" }, func(*trace, event) (dispatch.Continuation, error) {
			return dispatch.StopPropagation, nil
		}),
		handler("h3", nil, func(*trace, event) (dispatch.Continuation, error) {
			return dispatch.Continue, nil
		}),
	)
	d := dispatch.New(reg, quiet())
	tr := &trace{}

	rep := d.Dispatch(context.Background(), tr, event{id: "e1", kind: "text"})
	assert.Equal(t, dispatch.Report{Matched: 2, Failed: 1, Stopped: true}, rep)

	// h2 only accepts text events. An unfiltered h2 would stop e2 as well,
	// so e2 reaches h1 and h3 while h2 is skipped.
	rep = d.Dispatch(context.Background(), tr, event{id: "e2", kind: "photo"})
	assert.Equal(t, dispatch.Report{Matched: 2, Failed: 1}, rep)

	assert.Equal(t, []string{"h1:e1", "h2:e1", "h1:e2", "h3:e2"}, tr.calls)
}

func TestDispatch_ErrorDoesNotStop(t *testing.T) {
	reg := &dispatch.Registry[*trace, event]{}
	reg.Add(
		handler("bad", nil, func(*trace, event) (dispatch.Continuation, error) {
			return dispatch.StopPropagation, errors.New("nope")
		}),
		handler("good", nil, func(*trace, event) (dispatch.Continuation, error) {
			return dispatch.Continue, nil
		}),
	)
	tr := &trace{}
	rep := dispatch.New(reg, quiet()).Dispatch(context.Background(), tr, event{id: "x"})
	assert.Equal(t, dispatch.Report{Matched: 2, Failed: 1}, rep)
	assert.Equal(t, []string{"bad:x", "good:x"}, tr.calls)
}

func TestDispatch_EmptyRegistry(t *testing.T) {
	rep := dispatch.New(&dispatch.Registry[*trace, event]{}, nil).Dispatch(context.Background(), &trace{}, event{})
	assert.Zero(t, rep)
}

func TestRegistry_SnapshotIsIndependent(t *testing.T) {
	reg := &dispatch.Registry[*trace, event]{}
	reg.Add(dispatch.Handler[*trace, event]{Name: "a"})
	snap := reg.Handlers()
	reg.Add(dispatch.Handler[*trace, event]{Name: "b"})

	require.Len(t, snap, 1)
	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, "b", reg.Handlers()[1].Name)
}

func TestRegistry_ConcurrentAdd(t *testing.T) {
	reg := &dispatch.Registry[*trace, event]{}
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.Add(dispatch.Handler[*trace, event]{})
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, reg.Len())
}

func TestContinuation_String(t *testing.T) {
	assert.Equal(t, "stop", dispatch.StopPropagation.String())
	assert.Equal(t, "continue", dispatch.Continue.String())
}
