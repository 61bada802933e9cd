package client

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/bridgectl/internal/protocol"
)

// Waiter is the readiness-notification source for the run loop. Wait
// returns when an attached channel becomes readable or the timeout elapses;
// the timeout is the periodic tick that catches messages buffered without a
// readiness edge.
type Waiter interface {
	Wait(timeout time.Duration) error
	Attach(name string)
	Detach(name string)
}

// Run drives the session until the context ends. It is the single logical
// thread of control: every drain, state mutation and outbound command
// happens here, so the session needs no locks.
func (c *Client) Run(ctx context.Context, waiter Waiter) error {
	c.waiter = waiter
	waiter.Attach(c.control.Name())
	if c.eventsLive {
		waiter.Attach(c.events.Name())
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := waiter.Wait(c.cfg.Tick); err != nil {
			if errors.Is(err, protocol.ErrChannelClosed) {
				return nil
			}
			return err
		}
		c.Drain()
		c.drainIntents()
	}
}

// Drain handles everything buffered on the live channels. A channel whose
// drain fails is reported to the user once and detached; draining it again
// requires a restart.
func (c *Client) Drain() {
	if c.controlLive && !c.controlQueue.Drain() {
		c.disableChannel(c.control.Name(), &c.controlLive)
	}
	if c.eventsLive && !c.eventQueue.Drain() {
		c.disableChannel(c.events.Name(), &c.eventsLive)
	}
}

func (c *Client) disableChannel(name string, live *bool) {
	log.Warn().Str("channel", name).Msg("disabling channel after drain failure")
	*live = false
	if c.waiter != nil {
		c.waiter.Detach(name)
	}
	c.presenter.ChannelFailure(name)
}

func (c *Client) drainIntents() {
	for {
		select {
		case intent := <-c.intents:
			if intent.Call != nil {
				c.sendCall(*intent.Call)
			}
			if intent.Card != nil {
				c.sendPlay(*intent.Card)
			}
		default:
			return
		}
	}
}
