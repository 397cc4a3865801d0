// Package dispatch routes events through an ordered list of handlers.
//
// Handlers run in registration order. A handler whose filter rejects the
// event is skipped. A matched handler may end the event with StopPropagation;
// a handler that returns an error or panics is logged and counted, and the
// next handler still runs. Nothing a handler does escapes Dispatch.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

// Continuation tells the dispatcher whether later handlers see the event.
type Continuation int

const (
	// Continue passes the event on to the next matching handler.
	Continue Continuation = iota
	// StopPropagation ends processing of the current event.
	StopPropagation
)

func (c Continuation) String() string {
	if c == StopPropagation {
		return "stop"
	}
	return "continue"
}

// Callback handles one event. C is the context value handed to every handler,
// typically the client that received the event.
type Callback[C, E any] func(ctx context.Context, c C, e E) (Continuation, error)

// Handler pairs a predicate with a callback. A nil Filter matches every event.
type Handler[C, E any] struct {
	Name     string
	Filter   func(E) bool
	Callback Callback[C, E]
}

func (h Handler[C, E]) matches(e E) bool {
	return h.Filter == nil || h.Filter(e)
}

// Registry is an append-only ordered list of handlers. Handlers may be added
// from any goroutine; a dispatch in progress keeps working on the snapshot it
// started with.
type Registry[C, E any] struct {
	mu       sync.RWMutex
	handlers []Handler[C, E]
}

// Add appends handlers in order.
func (r *Registry[C, E]) Add(hs ...Handler[C, E]) {
	r.mu.Lock()
	r.handlers = append(r.handlers, hs...)
	r.mu.Unlock()
}

// Len returns the number of registered handlers.
func (r *Registry[C, E]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

// Handlers returns a copy of the registered handlers.
func (r *Registry[C, E]) Handlers() []Handler[C, E] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Handler[C, E], len(r.handlers))
	copy(out, r.handlers)
	return out
}

// Report summarises one Dispatch call.
type Report struct {
	// Matched counts handlers whose filter accepted the event and whose
	// callback was invoked.
	Matched int
	// Failed counts matched handlers that returned an error or panicked.
	Failed int
	// Stopped is set when a handler returned StopPropagation.
	Stopped bool
}

// Dispatcher runs events through a Registry.
type Dispatcher[C, E any] struct {
	registry *Registry[C, E]
	logger   *slog.Logger
}

// New returns a dispatcher over r. A nil logger means slog.Default().
func New[C, E any](r *Registry[C, E], logger *slog.Logger) *Dispatcher[C, E] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher[C, E]{registry: r, logger: logger}
}

// Registry returns the registry the dispatcher reads from.
func (d *Dispatcher[C, E]) Registry() *Registry[C, E] { return d.registry }

// Dispatch hands e to every matching handler in order until one stops
// propagation. A failing handler never stops propagation.
func (d *Dispatcher[C, E]) Dispatch(ctx context.Context, c C, e E) Report {
	var rep Report
	for i, h := range d.registry.Handlers() {
		if !h.matches(e) {
			continue
		}
		rep.Matched++
		cont, err := d.invoke(ctx, h, c, e)
		if err != nil {
			rep.Failed++
			d.logger.Error("handler failed",
				"handler", handlerName(h, i),
				"error", err,
			)
			continue
		}
		if cont == StopPropagation {
			rep.Stopped = true
			break
		}
	}
	return rep
}

func (d *Dispatcher[C, E]) invoke(ctx context.Context, h Handler[C, E], c C, e E) (cont Continuation, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Debug("handler panic stack", "stack", string(debug.Stack()))
			cont, err = Continue, fmt.Errorf("dispatch: handler panicked: %v", r)
		}
	}()
	if h.Callback == nil {
		return Continue, nil
	}
	return h.Callback(ctx, c, e)
}

func handlerName[C, E any](h Handler[C, E], i int) string {
	if h.Name != "" {
		return h.Name
	}
	return fmt.Sprintf("#%d", i)
}
