package transport

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	ErrInvalidEndpoint = errors.New("transport: invalid endpoint")

	endpointPattern = regexp.MustCompile(`^tcp://(.+):(\d+)$`)
)

// Endpoints derives the channel endpoints from one base endpoint: the
// control channel listens at the base port, the event channel one port
// above it.
func Endpoints(base string) (control, event string, err error) {
	match := endpointPattern.FindStringSubmatch(base)
	if match == nil {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidEndpoint, base)
	}
	port, err := strconv.Atoi(match[2])
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidEndpoint, base)
	}
	address := match[1]
	return fmt.Sprintf("tcp://%s:%d", address, port),
		fmt.Sprintf("tcp://%s:%d", address, port+1),
		nil
}
