package transport

import (
	"errors"
	"fmt"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/danmuck/bridgectl/internal/protocol"
)

// Poller is the readiness-notification source of the run loop. Waiting
// returns when any attached socket becomes readable or the timeout elapses,
// whichever comes first; the timeout doubles as the periodic drain tick.
type Poller struct {
	poller   *zmq.Poller
	known    map[string]*Socket
	attached map[string]bool
}

func NewPoller(sockets ...*Socket) *Poller {
	p := &Poller{
		poller:   zmq.NewPoller(),
		known:    make(map[string]*Socket),
		attached: make(map[string]bool),
	}
	for _, s := range sockets {
		p.known[s.name] = s
	}
	return p
}

// Attach starts watching the named socket for readability. Attaching an
// already watched or unknown name is a no-op.
func (p *Poller) Attach(name string) {
	s, registered := p.known[name]
	if !registered || p.attached[name] {
		return
	}
	p.attached[name] = true
	p.poller.Add(s.soc, zmq.POLLIN)
}

// Detach stops watching the named socket.
func (p *Poller) Detach(name string) {
	s, registered := p.known[name]
	if !registered || !p.attached[name] {
		return
	}
	delete(p.attached, name)
	_ = p.poller.RemoveBySocket(s.soc)
}

// Wait blocks until a watched socket is readable or the timeout elapses.
func (p *Poller) Wait(timeout time.Duration) error {
	if len(p.attached) == 0 {
		time.Sleep(timeout)
		return nil
	}
	if _, err := p.poller.Poll(timeout); err != nil {
		classified := classify(err)
		if errors.Is(classified, protocol.ErrChannelClosed) {
			return classified
		}
		return fmt.Errorf("transport: poll: %w", classified)
	}
	return nil
}
