// Package ui is the terminal presentation surface. It consumes state-change
// notifications from the session and forwards user actions as intents; it
// holds no authority over game state.
package ui

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/danmuck/bridgectl/internal/game"
)

func suitGlyph(suit string) string {
	switch suit {
	case "clubs":
		return pterm.Black("♣")
	case "diamonds":
		return pterm.LightRed("♦")
	case "hearts":
		return pterm.LightRed("♥")
	case "spades":
		return pterm.Black("♠")
	}
	return "?"
}

func rankLabel(rank string) string {
	switch rank {
	case "ace":
		return "A"
	case "king":
		return "K"
	case "queen":
		return "Q"
	case "jack":
		return "J"
	}
	return rank
}

func cardLabel(card game.Card) string {
	return rankLabel(card.Rank) + suitGlyph(card.Suit)
}

func handLabel(cards []game.Card) string {
	if len(cards) == 0 {
		return pterm.Gray("(hidden)")
	}
	out := ""
	for i, card := range cards {
		if i > 0 {
			out += " "
		}
		out += cardLabel(card)
	}
	return out
}

func strainLabel(strain string) string {
	if strain == "notrump" {
		return "NT"
	}
	return suitGlyph(strain)
}

func callLabel(call game.Call) string {
	switch call.Type {
	case game.CallPass:
		return "pass"
	case game.CallDouble:
		return "X"
	case game.CallRedouble:
		return "XX"
	case game.CallBid:
		if call.Bid != nil {
			return fmt.Sprintf("%d%s", call.Bid.Level, strainLabel(call.Bid.Strain))
		}
	}
	return call.Type
}

func contractLabel(contract *game.Contract) string {
	if contract == nil {
		return ""
	}
	label := fmt.Sprintf("%d%s", contract.Bid.Level, strainLabel(contract.Bid.Strain))
	switch contract.Doubling {
	case "doubled":
		label += " X"
	case "redoubled":
		label += " XX"
	}
	return label
}
