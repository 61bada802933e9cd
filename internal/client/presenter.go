package client

import "github.com/danmuck/bridgectl/internal/game"

// Presenter is the notification boundary toward the presentation surface.
// Every state change the session applies triggers exactly one call here;
// implementations must not call back into the session except by queueing
// intents.
type Presenter interface {
	// SetPlayerPosition re-targets seat-relative rendering after the own
	// seat is assigned or changes.
	SetPlayerPosition(position game.Position)
	SetPositionInTurn(position *game.Position)
	SetAllowedCalls(calls []game.Call)
	SetAllowedCards(cards []game.Card)
	SetCalls(calls []game.PositionCall)
	AddCall(call game.PositionCall)
	SetBiddingResult(declarer *game.Position, contract *game.Contract)
	SetCards(cards map[game.Position][]game.Card)
	PlayCard(position game.Position, card game.Card)
	SetTrick(trick []game.TrickCard)
	SetTricksWon(tricks game.TricksWon)
	AddTrick(winner game.Position)
	SetVulnerability(vulnerability game.Vulnerability)
	AddScore(result game.ScoreEntry)

	// JoinFailed reports the terminal failure to join a game. The session
	// does not retry.
	JoinFailed()
	// ChannelFailure reports that draining the named channel failed and its
	// automatic draining has been disabled.
	ChannelFailure(channel string)
}

// Intent is one user action forwarded from the presentation surface to the
// session: a call made or a card played.
type Intent struct {
	Call *game.Call
	Card *game.Card
}
