package protocol

import "errors"

var (
	ErrEncodeArgument = errors.New("protocol: cannot encode argument value")
	ErrInvalidValue   = errors.New("protocol: invalid argument value")
	ErrChannelClosed  = errors.New("protocol: channel closed")
)
