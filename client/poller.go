package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/reoring/kruto/types"
)

// State is the lifecycle state of the update loop.
type State int32

const (
	Idle State = iota
	Running
	Stopping
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopping:
		return "stopping"
	default:
		return "idle"
	}
}

// ErrRunning is returned by Start when the loop is already active.
var ErrRunning = errors.New("client: update loop already running")

// State reports the current loop state.
func (c *Client) State() State { return State(c.state.Load()) }

// Start runs the update loop until Stop is called, ctx is done or the
// server rejects the fetch itself as invalid input.
//
// Each iteration fetches one batch with getUpdates and dispatches its
// updates in order to the registered handlers. Handler failures are logged
// and never end the loop. Any fetch failure other than an *InputError is
// logged and retried after the retry interval. Stop takes effect at the top
// of the next iteration; the batch in flight is finished first.
func (c *Client) Start(ctx context.Context) error {
	if !c.state.CompareAndSwap(int32(Idle), int32(Running)) {
		return ErrRunning
	}
	defer c.state.Store(int32(Idle))

	for c.State() == Running {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("client: update loop: %w", err)
		}
		c.metrics.Polls.Inc()
		updates, err := c.GetUpdates(ctx)
		if err != nil {
			if IsInputError(err) {
				return err
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return fmt.Errorf("client: update loop: %w", ctxErr)
			}
			class := errorClass(err)
			c.metrics.FetchFailures.WithLabelValues(class).Inc()
			c.logger.Error("getUpdates failed",
				"class", class,
				"retry_in", c.retry,
				"error", err,
			)
			if err := c.sleep(ctx, c.retry); err != nil {
				return fmt.Errorf("client: update loop: %w", err)
			}
			continue
		}
		for _, u := range updates {
			c.handle(ctx, u)
		}
	}
	return nil
}

// Stop asks a running loop to exit. It returns at once; Start returns after
// the current iteration completes.
func (c *Client) Stop() {
	c.state.CompareAndSwap(int32(Running), int32(Stopping))
}

// Run fetches the signed-in account, logs it and starts the update loop.
func (c *Client) Run(ctx context.Context) error {
	me, err := c.GetMe(ctx)
	if err != nil {
		return err
	}
	name := me.FirstName
	if me.Username != nil {
		name = *me.Username
	}
	c.logger.Info("running as", "user", name, "id", me.ID)
	return c.Start(ctx)
}

func (c *Client) handle(ctx context.Context, u types.Update) {
	variant := types.VariantName(u)
	c.metrics.Updates.WithLabelValues(variant).Inc()
	if variant == "raw" {
		c.logger.Debug("dispatching undecoded update")
	}
	rep := c.dispatcher.Dispatch(ctx, c, u)
	if rep.Failed > 0 {
		c.metrics.HandlerFailures.Add(float64(rep.Failed))
	}
	if rep.Stopped {
		c.metrics.Stops.Inc()
	}
}
