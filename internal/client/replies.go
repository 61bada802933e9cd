package client

import (
	"github.com/rs/zerolog/log"

	"github.com/danmuck/bridgectl/internal/game"
	"github.com/danmuck/bridgectl/internal/protocol"
)

type helloReply struct{}

type gameReply struct {
	Game string `json:"game"`
}

type joinReply struct {
	Game string `json:"game"`
}

type stateReply struct {
	Get     game.Snapshot `json:"get"`
	Counter *uint64       `json:"counter"`
}

type ackReply struct{}

func (c *Client) handleHelloReply(helloReply) error {
	log.Info().Msg("handshake successful")
	if c.cfg.CreateGame {
		c.phase = PhaseCreating
		var args []protocol.Arg
		if c.gameID != "" {
			args = append(args, protocol.Arg{Key: gameKey, Value: c.gameID})
		}
		c.sendCommand(protocol.Command{Name: gameCommand, Args: args})
		return nil
	}
	c.sendJoin()
	return nil
}

func (c *Client) handleGameReply(reply gameReply) error {
	log.Info().Str("game", reply.Game).Msg("created game")
	c.gameID = reply.Game
	c.sendJoin()
	return nil
}

func (c *Client) handleJoinReply(reply joinReply) error {
	if reply.Game == "" {
		log.Error().Msg("unable to join game")
		c.phase = PhaseFailed
		c.presenter.JoinFailed()
		return nil
	}
	log.Info().Str("game", reply.Game).Msg("joined game")
	c.bindGame(reply.Game)
	c.requestInitialState()
	return nil
}

func (c *Client) handleInitGetReply(reply stateReply) error {
	if err := c.handleGetReply(reply); err != nil {
		return err
	}
	c.startHandlingEvents()
	c.phase = PhaseLive
	return nil
}

func (c *Client) handleGetReply(reply stateReply) error {
	if reply.Counter != nil {
		c.counter.Observe(reply.Counter)
	} else {
		log.Warn().Msg("no counter included in state reply")
	}
	c.applySnapshot(reply.Get)
	return nil
}

func (c *Client) handleCallReply(ackReply) error {
	log.Debug().Msg("call successful")
	return nil
}

func (c *Client) handlePlayReply(ackReply) error {
	log.Debug().Msg("play successful")
	return nil
}

// applySnapshot merges one full or partial state payload into the local
// mirror, key by key. A key absent from the payload leaves the local field
// untouched; a present key always overwrites, even with an empty value.
// Every changed field triggers exactly one presentation refresh.
func (c *Client) applySnapshot(snapshot game.Snapshot) {
	pub := snapshot.Pub.Value
	self := snapshot.Self.Value

	if self.Position.Present {
		position := self.Position.Value
		if c.state.Position == nil || *c.state.Position != position {
			c.state.Position = &position
			c.presenter.SetPlayerPosition(position)
		}
	}
	if self.PositionInTurn.Present {
		c.state.PositionInTurn = self.PositionInTurn.Value
		c.presenter.SetPositionInTurn(c.state.PositionInTurn)
	}
	if self.AllowedCalls.Present {
		c.state.AllowedCalls = self.AllowedCalls.Value
		c.presenter.SetAllowedCalls(c.state.AllowedCalls)
	}
	if pub.Calls.Present {
		c.state.Calls = pub.Calls.Value
		c.presenter.SetCalls(c.state.Calls)
	}
	if pub.Declarer.Present && pub.Contract.Present {
		c.state.Declarer = pub.Declarer.Value
		c.state.Contract = pub.Contract.Value
		c.presenter.SetBiddingResult(c.state.Declarer, c.state.Contract)
	}
	if cards := snapshot.VisibleCards(); len(cards) > 0 {
		for position, hand := range cards {
			c.state.Cards[position] = hand
		}
		c.presenter.SetCards(cards)
	}
	if self.AllowedCards.Present {
		c.state.AllowedCards = self.AllowedCards.Value
		c.presenter.SetAllowedCards(c.state.AllowedCards)
	}
	if pub.Trick.Present {
		c.state.Trick = pub.Trick.Value
		c.presenter.SetTrick(c.state.Trick)
	}
	if pub.TricksWon.Present {
		c.state.TricksWon = pub.TricksWon.Value
		c.presenter.SetTricksWon(c.state.TricksWon)
	}
	if pub.Vulnerability.Present {
		c.state.Vulnerability = pub.Vulnerability.Value
		c.presenter.SetVulnerability(c.state.Vulnerability)
	}
}
