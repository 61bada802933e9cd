package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/bridgectl/internal/game"
	"github.com/danmuck/bridgectl/internal/protocol"
	"github.com/danmuck/bridgectl/internal/protocol/queue"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseDisconnected Phase = iota
	PhaseAwaitingHello
	PhaseCreating
	PhaseJoining
	PhaseAwaitingInitialState
	PhaseLive
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseDisconnected:
		return "disconnected"
	case PhaseAwaitingHello:
		return "awaiting-hello"
	case PhaseCreating:
		return "creating"
	case PhaseJoining:
		return "joining"
	case PhaseAwaitingInitialState:
		return "awaiting-initial-state"
	case PhaseLive:
		return "live"
	case PhaseFailed:
		return "failed"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Channel is one transport channel handle the session drains and sends on.
type Channel interface {
	queue.Receiver
	Send(parts [][]byte) error
	Subscribe(prefix string) error
	Close() error
	Name() string
}

// Config carries the session parameters owned by the launcher.
type Config struct {
	// Position is the preferred seat, requested with the join command when
	// set. Any seat is requested otherwise.
	Position *game.Position
	// GameID is the identifier of the game to join, or to create when
	// CreateGame is set. Empty lets the backend pick.
	GameID string
	// CreateGame requests creation of a new game before joining it.
	CreateGame bool
	// Tick bounds the latency of messages that arrive without a readiness
	// edge. Defaults to one second.
	Tick time.Duration
}

// Client is the session state machine. All fields are owned by the single
// run-loop goroutine.
type Client struct {
	control   Channel
	events    Channel
	presenter Presenter
	cfg       Config

	phase   Phase
	gameID  string
	counter game.Counter
	state   *game.State

	controlQueue *queue.MessageQueue
	eventQueue   *queue.MessageQueue
	controlLive  bool
	eventsLive   bool

	waiter  Waiter
	intents chan Intent
}

// New wires a session onto its two channel handles. Start sends the
// handshake; Run drives the session until the context ends.
func New(control, events Channel, presenter Presenter, cfg Config) *Client {
	if cfg.Tick <= 0 {
		cfg.Tick = time.Second
	}
	c := &Client{
		control:   control,
		events:    events,
		presenter: presenter,
		cfg:       cfg,
		phase:     PhaseDisconnected,
		gameID:    cfg.GameID,
		state:     game.NewState(),
		intents:   make(chan Intent, 16),
	}
	c.controlQueue = queue.New(control, control.Name(), protocol.ValidateControlReply, map[string]queue.Handler{
		helloCommand: typed(c.handleHelloReply),
		gameCommand:  typed(c.handleGameReply),
		joinCommand:  typed(c.handleJoinReply),
		initGetTag:   typed(c.handleInitGetReply),
		getCommand:   typed(c.handleGetReply),
		callCommand:  typed(c.handleCallReply),
		playCommand:  typed(c.handlePlayReply),
	})
	c.controlLive = true
	return c
}

// Start enters the handshake phase by sending the hello command.
func (c *Client) Start() {
	c.phase = PhaseAwaitingHello
	c.sendCommand(protocol.Command{Name: helloCommand, Args: []protocol.Arg{
		{Key: versionKey, Value: protocolVersion},
		{Key: roleKey, Value: clientRole},
	}})
}

// Close releases both channel handles.
func (c *Client) Close() error {
	controlErr := c.control.Close()
	eventsErr := c.events.Close()
	if controlErr != nil {
		return controlErr
	}
	return eventsErr
}

// Intents is the inbound command channel for the presentation surface.
func (c *Client) Intents() chan<- Intent {
	return c.intents
}

func (c *Client) Phase() Phase {
	return c.phase
}

func (c *Client) GameID() string {
	return c.gameID
}

// State returns a shallow copy of the local game state mirror.
func (c *Client) State() game.State {
	return *c.state
}

// sendCommand encodes and sends one control command. A failed send is
// logged and dropped; commands are never queued for retry.
func (c *Client) sendCommand(cmd protocol.Command) {
	parts, err := cmd.Encode()
	if err != nil {
		log.Error().Str("command", cmd.Name).Err(err).Msg("encoding command failed")
		return
	}
	log.Debug().Str("command", cmd.Name).Str("tag", cmd.Tag).Msg("sending command")
	if err := c.control.Send(parts); err != nil {
		log.Error().Str("command", cmd.Name).Err(err).Msg("sending command failed")
	}
}

func (c *Client) sendJoin() {
	c.phase = PhaseJoining
	var args []protocol.Arg
	if c.cfg.Position != nil {
		args = append(args, protocol.Arg{Key: positionKey, Value: *c.cfg.Position})
	}
	if c.gameID != "" {
		args = append(args, protocol.Arg{Key: gameKey, Value: c.gameID})
	}
	c.sendCommand(protocol.Command{Name: joinCommand, Args: args})
}

func (c *Client) requestInitialState() {
	c.phase = PhaseAwaitingInitialState
	c.sendCommand(protocol.Command{Name: getCommand, Tag: initGetTag, Args: []protocol.Arg{
		{Key: gameKey, Value: c.gameID},
	}})
}

func (c *Client) requestState(sections ...string) {
	c.sendCommand(protocol.Command{Name: getCommand, Args: []protocol.Arg{
		{Key: gameKey, Value: c.gameID},
		{Key: getKey, Value: sections},
	}})
}

func (c *Client) sendCall(call game.Call) {
	c.sendCommand(protocol.Command{Name: callCommand, Args: []protocol.Arg{
		{Key: gameKey, Value: c.gameID},
		{Key: callKey, Value: call},
	}})
}

func (c *Client) sendPlay(card game.Card) {
	c.sendCommand(protocol.Command{Name: playCommand, Args: []protocol.Arg{
		{Key: gameKey, Value: c.gameID},
		{Key: cardKey, Value: card},
	}})
}

// bindGame subscribes the event channel to the game's topic prefix and
// registers the per-game event handlers.
func (c *Client) bindGame(gameID string) {
	c.gameID = gameID
	if err := c.events.Subscribe(gameID); err != nil {
		log.Error().Str("game", gameID).Err(err).Msg("subscribing to game events failed")
	}
	topic := func(name string) string { return gameID + ":" + name }
	c.eventQueue = queue.New(c.events, c.events.Name(), protocol.ValidateEventMessage, map[string]queue.Handler{
		topic(dealEvent):    typed(c.handleDealEvent),
		topic(turnEvent):    typed(c.handleTurnEvent),
		topic(callEvent):    typed(c.handleCallEvent),
		topic(biddingEvent): typed(c.handleBiddingEvent),
		topic(playEvent):    typed(c.handlePlayEvent),
		topic(dummyEvent):   typed(c.handleDummyEvent),
		topic(trickEvent):   typed(c.handleTrickEvent),
		topic(dealEndEvent): typed(c.handleDealEndEvent),
	})
}

// startHandlingEvents begins draining the event channel. Called once the
// initial state reply has been applied, so no event can observe a state
// older than the one it builds on.
func (c *Client) startHandlingEvents() {
	if c.eventsLive {
		return
	}
	c.eventsLive = true
	if c.waiter != nil {
		c.waiter.Attach(c.events.Name())
	}
}

// staleEvent gates every event on its monotonic counter. Fresh events
// advance the stored counter.
func (c *Client) staleEvent(counter *uint64) bool {
	if c.counter.Stale(counter) {
		last, _ := c.counter.Last()
		if counter != nil {
			log.Debug().Uint64("counter", *counter).Uint64("last", last).Msg("discarding stale event")
		}
		return true
	}
	c.counter.Observe(counter)
	return false
}

// typed adapts a handler taking a per-tag parameter struct into the
// dispatcher's handler shape.
func typed[T any](handle func(T) error) queue.Handler {
	return func(args protocol.Args) error {
		blob, err := json.Marshal(args)
		if err != nil {
			return err
		}
		var params T
		if err := json.Unmarshal(blob, &params); err != nil {
			return fmt.Errorf("decoding arguments: %w", err)
		}
		return handle(params)
	}
}
