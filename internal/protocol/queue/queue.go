// Package queue drains inbound multipart messages from one channel and
// dispatches them to per-tag handlers.
package queue

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/bridgectl/internal/protocol"
)

// Receiver is the inbound side of one channel. Pending must not block; Recv
// is only called after Pending reported a complete buffered message, so it
// never blocks in the steady state.
type Receiver interface {
	Pending() (bool, error)
	Recv() ([][]byte, error)
}

// Handler consumes the decoded keyword arguments of one message.
type Handler func(args protocol.Args) error

// MessageQueue owns message intake for one channel: it validates frame shape
// per the channel kind, correlates the tag to a registered handler, decodes
// argument values and invokes the handler. Tags are unique within a queue.
type MessageQueue struct {
	receiver  Receiver
	name      string
	validator protocol.Validator
	handlers  map[string]Handler
}

func New(receiver Receiver, name string, validator protocol.Validator, handlers map[string]Handler) *MessageQueue {
	owned := make(map[string]Handler, len(handlers))
	for tag, handler := range handlers {
		owned[tag] = handler
	}
	return &MessageQueue{
		receiver:  receiver,
		name:      name,
		validator: validator,
		handlers:  owned,
	}
}

func (q *MessageQueue) Name() string {
	return q.name
}

// Drain handles buffered messages until the channel has nothing ready. A
// failed message never stops the drain of the remaining buffered messages;
// it only makes this call report false. A receive failure caused by shutdown
// is tolerated as success.
func (q *MessageQueue) Drain() bool {
	ok := true
	for {
		ready, err := q.receiver.Pending()
		if err != nil {
			if errors.Is(err, protocol.ErrChannelClosed) {
				return ok
			}
			log.Error().Str("channel", q.name).Err(err).Msg("polling channel failed")
			return false
		}
		if !ready {
			return ok
		}
		parts, err := q.receiver.Recv()
		if err != nil {
			if errors.Is(err, protocol.ErrChannelClosed) {
				return ok
			}
			log.Error().Str("channel", q.name).Err(err).Msg("receiving message failed")
			ok = false
			continue
		}
		if err := q.handle(parts); err != nil {
			if protocolError(err) {
				log.Warn().Str("channel", q.name).Err(err).Msg("unexpected message")
			} else {
				log.Error().Str("channel", q.name).Err(err).Msg("message handler failed")
			}
			ok = false
		}
	}
}

func (q *MessageQueue) handle(parts [][]byte) error {
	log.Debug().Str("channel", q.name).Int("segments", len(parts)).Msg("received message")
	tag, segments, valid := q.validator(parts)
	if !valid {
		return errInvalidFrame(parts)
	}
	handler, known := q.handlers[tag]
	if !known {
		return errUnknownTag(tag)
	}
	args, err := protocol.DecodeArgs(segments)
	if err != nil {
		return err
	}
	return handler(args)
}
