package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Args holds the decoded keyword arguments of one message, keyed by argument
// name. Values stay as raw JSON until a handler decodes them into its own
// parameter shape.
type Args map[string]json.RawMessage

// Get decodes the value stored under key into out. It reports whether the
// key was present at all, so callers can distinguish an absent argument from
// a null one.
func (a Args) Get(key string, out any) (bool, error) {
	raw, ok := a[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("%w: %q: %v", ErrInvalidValue, key, err)
	}
	return true, nil
}

// EncodeValue serializes one argument value into its wire text form.
func EncodeValue(value any) ([]byte, error) {
	return json.Marshal(value)
}

// DecodeValue checks that a raw value segment is well-formed wire text and
// returns it as raw JSON. A segment that does not parse is a protocol error.
func DecodeValue(segment []byte) (json.RawMessage, error) {
	if !json.Valid(segment) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidValue, segment)
	}
	return json.RawMessage(bytes.Clone(segment)), nil
}

// DecodeArgs pairs up key/value segments and validates every value. An odd
// segment count or an unparseable value fails the whole message.
func DecodeArgs(segments [][]byte) (Args, error) {
	if len(segments)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of argument segments: %d", ErrInvalidValue, len(segments))
	}
	args := make(Args, len(segments)/2)
	for i := 0; i < len(segments); i += 2 {
		value, err := DecodeValue(segments[i+1])
		if err != nil {
			return nil, err
		}
		args[string(segments[i])] = value
	}
	return args, nil
}
