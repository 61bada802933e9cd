// Package transport wraps the ZeroMQ sockets the client talks through: a
// DEALER control socket and a SUB event socket, optionally secured with the
// CURVE mechanism.
package transport

import (
	"errors"
	"fmt"

	zmq "github.com/pebbe/zmq4"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/bridgectl/internal/protocol"
)

var ErrIdentityRequired = errors.New("transport: control socket identity required")

// Context owns the ZeroMQ context. It is created by the process entry point
// and terminated exactly once at shutdown; termination discards pending
// outbound messages so the process exits promptly.
type Context struct {
	ctx *zmq.Context
}

func NewContext() (*Context, error) {
	ctx, err := zmq.NewContext()
	if err != nil {
		return nil, fmt.Errorf("transport: create context: %w", err)
	}
	return &Context{ctx: ctx}, nil
}

// NewControlSocket connects a DEALER socket for the request/reply control
// channel. The identity ties the connection to a persistent client session.
func (c *Context) NewControlSocket(endpoint, identity string, curve CurveConfig) (*Socket, error) {
	if identity == "" {
		return nil, ErrIdentityRequired
	}
	soc, err := c.newSocket(zmq.DEALER, curve)
	if err != nil {
		return nil, err
	}
	if err := soc.SetIdentity(identity); err != nil {
		soc.Close()
		return nil, fmt.Errorf("transport: set identity: %w", err)
	}
	if err := soc.Connect(endpoint); err != nil {
		soc.Close()
		return nil, fmt.Errorf("transport: connect control socket: %w", err)
	}
	log.Info().Str("endpoint", endpoint).Msg("control socket connected")
	return &Socket{soc: soc, name: "control"}, nil
}

// NewEventSocket connects a SUB socket for the publish/subscribe event
// channel. It receives nothing until a topic prefix is subscribed.
func (c *Context) NewEventSocket(endpoint string, curve CurveConfig) (*Socket, error) {
	soc, err := c.newSocket(zmq.SUB, curve)
	if err != nil {
		return nil, err
	}
	if err := soc.Connect(endpoint); err != nil {
		soc.Close()
		return nil, fmt.Errorf("transport: connect event socket: %w", err)
	}
	log.Info().Str("endpoint", endpoint).Msg("event socket connected")
	return &Socket{soc: soc, name: "event"}, nil
}

func (c *Context) newSocket(kind zmq.Type, curve CurveConfig) (*zmq.Socket, error) {
	soc, err := c.ctx.NewSocket(kind)
	if err != nil {
		return nil, fmt.Errorf("transport: create socket: %w", err)
	}
	if err := soc.SetLinger(0); err != nil {
		soc.Close()
		return nil, fmt.Errorf("transport: set linger: %w", err)
	}
	if err := curve.apply(soc); err != nil {
		soc.Close()
		return nil, err
	}
	return soc, nil
}

// Terminate tears the context down. Sockets are closed with zero linger, so
// anything still queued for sending is dropped.
func (c *Context) Terminate() error {
	return c.ctx.Term()
}

// classify maps shutdown-time errors onto the shared closed-channel
// sentinel so the dispatcher can tolerate them.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if zmq.AsErrno(err) == zmq.ETERM {
		return fmt.Errorf("%w: %v", protocol.ErrChannelClosed, err)
	}
	return err
}
