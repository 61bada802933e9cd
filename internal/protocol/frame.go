package protocol

import (
	"fmt"
)

// statusPrefix is the two-byte prefix of a successful reply status segment.
const statusPrefix = "OK"

// Arg is one ordered key/value pair of a command. Values are serialized as
// JSON on the wire.
type Arg struct {
	Key   string
	Value any
}

// Command is one outbound control command. Tag defaults to Name when empty.
// A command is immutable once encoded and sent.
type Command struct {
	Name string
	Tag  string
	Args []Arg
}

// Encode lays the command out as a multipart frame:
//
//	[empty, tag, command, key1, value1, ...]
//
// The leading empty segment is the DEALER routing delimiter required on the
// control channel.
func (c Command) Encode() ([][]byte, error) {
	tag := c.Tag
	if tag == "" {
		tag = c.Name
	}
	parts := [][]byte{{}, []byte(tag), []byte(c.Name)}
	for _, arg := range c.Args {
		value, err := EncodeValue(arg.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrEncodeArgument, arg.Key, err)
		}
		parts = append(parts, []byte(arg.Key), value)
	}
	return parts, nil
}

// Validator checks the shape of one inbound multipart frame for its channel
// kind. On success it returns the correlation tag and the remaining key/value
// segments; ok is false for any frame that must be rejected as invalid.
type Validator func(parts [][]byte) (tag string, args [][]byte, ok bool)

// ValidateControlReply accepts frames of the shape
//
//	[empty, tag, status, key1, value1, ...]
//
// where status carries the successful "OK" prefix. Anything else is invalid.
func ValidateControlReply(parts [][]byte) (string, [][]byte, bool) {
	if len(parts) < 3 || len(parts[0]) != 0 || !successStatus(parts[2]) {
		return "", nil, false
	}
	return string(parts[1]), parts[3:], true
}

// ValidateEventMessage accepts frames of the shape
//
//	[topic, key1, value1, ...]
//
// There is nothing else to validate about an event frame.
func ValidateEventMessage(parts [][]byte) (string, [][]byte, bool) {
	if len(parts) < 1 {
		return "", nil, false
	}
	return string(parts[0]), parts[1:], true
}

func successStatus(status []byte) bool {
	return len(status) >= len(statusPrefix) && string(status[:len(statusPrefix)]) == statusPrefix
}
