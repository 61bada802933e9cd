package transport

import (
	zmq "github.com/pebbe/zmq4"
	"github.com/rs/zerolog/log"
)

// Socket is one channel endpoint. It satisfies the dispatcher's Receiver
// contract: Pending is a non-blocking readiness check and Recv is only
// issued once a complete message is buffered.
type Socket struct {
	soc  *zmq.Socket
	name string
}

func (s *Socket) Name() string {
	return s.name
}

// Pending reports whether a complete multipart message is ready to receive.
func (s *Socket) Pending() (bool, error) {
	state, err := s.soc.GetEvents()
	if err != nil {
		return false, classify(err)
	}
	return state&zmq.POLLIN != 0, nil
}

// Recv receives exactly one buffered multipart message.
func (s *Socket) Recv() ([][]byte, error) {
	parts, err := s.soc.RecvMessageBytes(zmq.DONTWAIT)
	if err != nil {
		return nil, classify(err)
	}
	return parts, nil
}

// Send queues one multipart message. A failed send is the caller's to log
// and drop; commands are never queued for retry.
func (s *Socket) Send(parts [][]byte) error {
	if _, err := s.soc.SendMessage(parts); err != nil {
		return classify(err)
	}
	log.Debug().Str("channel", s.name).Int("segments", len(parts)).Msg("sent message")
	return nil
}

// Subscribe filters the event channel down to one topic prefix.
func (s *Socket) Subscribe(prefix string) error {
	return s.soc.SetSubscribe(prefix)
}

func (s *Socket) Close() error {
	return s.soc.Close()
}
