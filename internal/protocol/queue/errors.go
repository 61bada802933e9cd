package queue

import (
	"errors"
	"fmt"

	"github.com/danmuck/bridgectl/internal/protocol"
)

var (
	ErrInvalidFrame = errors.New("queue: invalid message frame")
	ErrUnknownTag   = errors.New("queue: unrecognized tag")
)

func errInvalidFrame(parts [][]byte) error {
	return fmt.Errorf("%w: %d segments", ErrInvalidFrame, len(parts))
}

func errUnknownTag(tag string) error {
	return fmt.Errorf("%w: %q", ErrUnknownTag, tag)
}

// protocolError distinguishes malformed-message failures, which belong to
// the queue, from handler failures, which do not.
func protocolError(err error) bool {
	return errors.Is(err, ErrInvalidFrame) ||
		errors.Is(err, ErrUnknownTag) ||
		errors.Is(err, protocol.ErrInvalidValue)
}
