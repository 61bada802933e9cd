// Package game owns the domain model of one bridge game session: positions,
// cards, calls and the local mirror of the server-side game state.
package game

import (
	"errors"
	"fmt"
)

var ErrInvalidScore = errors.New("game: invalid score result")

// Position is one of the four seats at the table.
type Position string

const (
	North Position = "north"
	East  Position = "east"
	South Position = "south"
	West  Position = "west"
)

// Positions lists the seats in play order starting from north.
var Positions = []Position{North, East, South, West}

func (p Position) Valid() bool {
	switch p {
	case North, East, South, West:
		return true
	}
	return false
}

// Partnership pairs the opposite seats.
type Partnership string

const (
	NorthSouth Partnership = "northSouth"
	EastWest   Partnership = "eastWest"
)

func (p Position) Partnership() Partnership {
	if p == North || p == South {
		return NorthSouth
	}
	return EastWest
}

// Card is one playing card. Rank and strain names follow the wire protocol
// ("2".."10", "jack", "queen", "king", "ace"; "clubs".."spades").
type Card struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

func (c Card) Equal(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

// Bid is the level/strain part of a bid call.
type Bid struct {
	Level  int    `json:"level"`
	Strain string `json:"strain"`
}

// Call is one call in the auction: a bid, pass, double or redouble.
type Call struct {
	Type string `json:"type"`
	Bid  *Bid   `json:"bid,omitempty"`
}

const (
	CallBid      = "bid"
	CallPass     = "pass"
	CallDouble   = "double"
	CallRedouble = "redouble"
)

// PositionCall is one entry of the public call log.
type PositionCall struct {
	Position Position `json:"position"`
	Call     Call     `json:"call"`
}

// Contract is the result of a completed auction.
type Contract struct {
	Bid      Bid    `json:"bid"`
	Doubling string `json:"doubling"`
}

// Vulnerability flags the partnerships vulnerable in the current deal.
type Vulnerability struct {
	NorthSouth bool `json:"northSouth"`
	EastWest   bool `json:"eastWest"`
}

// TricksWon tallies tricks per partnership in the current deal.
type TricksWon struct {
	NorthSouth int `json:"northSouth"`
	EastWest   int `json:"eastWest"`
}

// Add returns the tally with the winner's partnership incremented by one.
func (t TricksWon) Add(winner Position) TricksWon {
	if winner.Partnership() == NorthSouth {
		t.NorthSouth++
	} else {
		t.EastWest++
	}
	return t
}

// TrickCard is one card of the trick currently on the table.
type TrickCard struct {
	Position Position `json:"position"`
	Card     Card     `json:"card"`
}

// ScoreEntry is the result of one deal. A nil partnership means the deal
// passed out and neither side scores.
type ScoreEntry struct {
	Partnership *Partnership `json:"partnership"`
	Score       int          `json:"score"`
}

// Amounts splits the entry into the (northSouth, eastWest) score sheet row.
func (s ScoreEntry) Amounts() (string, string, error) {
	if s.Partnership == nil {
		return "0", "0", nil
	}
	amount := fmt.Sprintf("%d", s.Score)
	switch *s.Partnership {
	case NorthSouth:
		return amount, "0", nil
	case EastWest:
		return "0", amount, nil
	}
	return "", "", fmt.Errorf("%w: partnership %q", ErrInvalidScore, *s.Partnership)
}
