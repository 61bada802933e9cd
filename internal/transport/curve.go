package transport

import (
	"errors"
	"fmt"

	zmq "github.com/pebbe/zmq4"
)

// The client keypair is the well-known test pair from the ZeroMQ manual. It
// identifies the client mechanically, not cryptographically; the server key
// is what authenticates the connection.
const (
	curveClientPublicKey = "Yne@$w-vo<fVvi]a<NY6T1ed:M$fCG*[IaLV{hID"
	curveClientSecretKey = "D:)Q[IlAW!ahhC2ac:9*A}h:p?([4%wOTJ%JR%cs"

	curveKeyLen = 40
)

var ErrInvalidServerKey = errors.New("transport: invalid curve server key")

// CurveConfig enables the CURVE security mechanism when a server public key
// is configured. The zero value leaves sockets unsecured.
type CurveConfig struct {
	ServerKey string
}

// Enabled reports whether sockets will be set up as CURVE clients.
func (c CurveConfig) Enabled() bool {
	return c.ServerKey != ""
}

// Validate checks the server key is a Z85 key of the right length.
func (c CurveConfig) Validate() error {
	if !c.Enabled() {
		return nil
	}
	if len(c.ServerKey) != curveKeyLen {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidServerKey, len(c.ServerKey), curveKeyLen)
	}
	return nil
}

func (c CurveConfig) apply(soc *zmq.Socket) error {
	if !c.Enabled() {
		return nil
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if err := soc.ClientAuthCurve(c.ServerKey, curveClientPublicKey, curveClientSecretKey); err != nil {
		return fmt.Errorf("transport: set up curve client: %w", err)
	}
	return nil
}
