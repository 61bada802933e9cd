package client

import (
	"github.com/rs/zerolog/log"

	"github.com/danmuck/bridgectl/internal/game"
)

type dealEventParams struct {
	Opener        *game.Position     `json:"opener"`
	Vulnerability game.Vulnerability `json:"vulnerability"`
	Counter       *uint64            `json:"counter"`
}

type turnEventParams struct {
	Position *game.Position `json:"position"`
	Counter  *uint64        `json:"counter"`
}

type callEventParams struct {
	Position game.Position `json:"position"`
	Call     game.Call     `json:"call"`
	Counter  *uint64       `json:"counter"`
}

type biddingEventParams struct {
	Declarer *game.Position `json:"declarer"`
	Contract *game.Contract `json:"contract"`
	Counter  *uint64        `json:"counter"`
}

type playEventParams struct {
	Position game.Position `json:"position"`
	Card     game.Card     `json:"card"`
	Counter  *uint64       `json:"counter"`
}

type dummyEventParams struct {
	Position game.Position `json:"position"`
	Cards    []game.Card   `json:"cards"`
	Counter  *uint64       `json:"counter"`
}

type trickEventParams struct {
	Winner  game.Position `json:"winner"`
	Counter *uint64       `json:"counter"`
}

type dealEndEventParams struct {
	TricksWon game.TricksWon  `json:"tricksWon"`
	Score     game.ScoreEntry `json:"score"`
	Counter   *uint64         `json:"counter"`
}

func (c *Client) handleDealEvent(params dealEventParams) error {
	if c.staleEvent(params.Counter) {
		return nil
	}
	log.Debug().Msg("cards dealt")
	c.state.PositionInTurn = params.Opener
	c.presenter.SetPositionInTurn(params.Opener)
	c.state.Vulnerability = params.Vulnerability
	c.presenter.SetVulnerability(params.Vulnerability)
	c.state.Declarer = nil
	c.state.Contract = nil
	c.presenter.SetBiddingResult(nil, nil)
	c.requestState(pubStateKey, privStateKey)
	return nil
}

func (c *Client) handleTurnEvent(params turnEventParams) error {
	if c.staleEvent(params.Counter) {
		return nil
	}
	log.Debug().Interface("position", params.Position).Msg("turn changed")
	c.state.PositionInTurn = params.Position
	c.presenter.SetPositionInTurn(params.Position)
	ownTurn := params.Position != nil && c.state.Position != nil && *params.Position == *c.state.Position
	if ownTurn {
		c.requestState(selfStateKey)
		return nil
	}
	c.state.AllowedCalls = nil
	c.presenter.SetAllowedCalls(nil)
	c.state.AllowedCards = nil
	c.presenter.SetAllowedCards(nil)
	return nil
}

func (c *Client) handleCallEvent(params callEventParams) error {
	if c.staleEvent(params.Counter) {
		return nil
	}
	log.Debug().Str("position", string(params.Position)).Msg("call made")
	entry := game.PositionCall{Position: params.Position, Call: params.Call}
	c.state.Calls = append(c.state.Calls, entry)
	c.presenter.AddCall(entry)
	return nil
}

func (c *Client) handleBiddingEvent(params biddingEventParams) error {
	if c.staleEvent(params.Counter) {
		return nil
	}
	log.Debug().Msg("bidding completed")
	c.state.Declarer = params.Declarer
	c.state.Contract = params.Contract
	c.presenter.SetBiddingResult(params.Declarer, params.Contract)
	return nil
}

func (c *Client) handlePlayEvent(params playEventParams) error {
	if c.staleEvent(params.Counter) {
		return nil
	}
	log.Debug().Str("position", string(params.Position)).Msg("card played")
	c.state.PlayCard(params.Position, params.Card)
	c.presenter.PlayCard(params.Position, params.Card)
	return nil
}

func (c *Client) handleDummyEvent(params dummyEventParams) error {
	if c.staleEvent(params.Counter) {
		return nil
	}
	log.Debug().Msg("dummy hand revealed")
	c.state.Cards[params.Position] = params.Cards
	c.presenter.SetCards(map[game.Position][]game.Card{params.Position: params.Cards})
	return nil
}

func (c *Client) handleTrickEvent(params trickEventParams) error {
	if c.staleEvent(params.Counter) {
		return nil
	}
	log.Debug().Str("winner", string(params.Winner)).Msg("trick completed")
	c.state.TricksWon = c.state.TricksWon.Add(params.Winner)
	c.state.Trick = nil
	c.presenter.AddTrick(params.Winner)
	return nil
}

func (c *Client) handleDealEndEvent(params dealEndEventParams) error {
	if c.staleEvent(params.Counter) {
		return nil
	}
	log.Debug().Int("score", params.Score.Score).Msg("deal ended")
	c.presenter.AddScore(params.Score)
	c.state.Calls = nil
	c.presenter.SetCalls(nil)
	c.state.TricksWon = params.TricksWon
	c.presenter.SetTricksWon(params.TricksWon)
	return nil
}
