package ui

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/bridgectl/internal/game"
)

// Table renders the game to the terminal. It keeps its own display copy of
// the state fed through the presenter notifications; it never reaches back
// into the session.
type Table struct {
	position       *game.Position
	positionInTurn *game.Position
	allowedCalls   []game.Call
	allowedCards   []game.Card
	calls          []game.PositionCall
	declarer       *game.Position
	contract       *game.Contract
	cards          map[game.Position][]game.Card
	trick          []game.TrickCard
	tricksWon      game.TricksWon
	vulnerability  game.Vulnerability
	scores         ScoreSheet
}

func NewTable() *Table {
	return &Table{cards: make(map[game.Position][]game.Card)}
}

func (t *Table) SetPlayerPosition(position game.Position) {
	t.position = &position
	t.Render()
}

func (t *Table) SetPositionInTurn(position *game.Position) {
	t.positionInTurn = position
	t.Render()
}

func (t *Table) SetAllowedCalls(calls []game.Call) {
	t.allowedCalls = calls
	t.Render()
}

func (t *Table) SetAllowedCards(cards []game.Card) {
	t.allowedCards = cards
	t.Render()
}

func (t *Table) SetCalls(calls []game.PositionCall) {
	t.calls = calls
	t.Render()
}

func (t *Table) AddCall(call game.PositionCall) {
	t.calls = append(t.calls, call)
	t.Render()
}

func (t *Table) SetBiddingResult(declarer *game.Position, contract *game.Contract) {
	t.declarer = declarer
	t.contract = contract
	t.Render()
}

func (t *Table) SetCards(cards map[game.Position][]game.Card) {
	for position, hand := range cards {
		t.cards[position] = hand
	}
	t.Render()
}

func (t *Table) PlayCard(position game.Position, card game.Card) {
	hand := t.cards[position]
	for i, held := range hand {
		if held.Equal(card) {
			t.cards[position] = append(hand[:i:i], hand[i+1:]...)
			break
		}
	}
	t.trick = append(t.trick, game.TrickCard{Position: position, Card: card})
	t.Render()
}

func (t *Table) SetTrick(trick []game.TrickCard) {
	t.trick = trick
	t.Render()
}

func (t *Table) SetTricksWon(tricks game.TricksWon) {
	t.tricksWon = tricks
	t.Render()
}

func (t *Table) AddTrick(winner game.Position) {
	if winner.Partnership() == game.NorthSouth {
		t.tricksWon.NorthSouth++
	} else {
		t.tricksWon.EastWest++
	}
	t.trick = nil
	t.Render()
}

func (t *Table) SetVulnerability(vulnerability game.Vulnerability) {
	t.vulnerability = vulnerability
	t.Render()
}

func (t *Table) AddScore(result game.ScoreEntry) {
	if err := t.scores.Add(result); err != nil {
		log.Warn().Err(err).Msg("discarding invalid score result")
		return
	}
	t.Render()
}

func (t *Table) JoinFailed() {
	pterm.Error.Println("Unable to join game.")
}

func (t *Table) ChannelFailure(channel string) {
	pterm.Warning.Printfln("Error while receiving messages from the server (%s channel). Please see logs.", channel)
}

// Render redraws the whole table. The terminal is treated as a dumb frame
// buffer; each refresh appends a new frame.
func (t *Table) Render() {
	box := pterm.DefaultBox.WithHorizontalPadding(2)

	var hands []pterm.Panel
	for _, position := range game.Positions {
		title := string(position)
		if t.position != nil && *t.position == position {
			title += " (you)"
		}
		if t.positionInTurn != nil && *t.positionInTurn == position {
			title = pterm.LightYellow(title + " *")
		}
		hands = append(hands, pterm.Panel{
			Data: box.WithTitle(title).Sprint(handLabel(t.cards[position])),
		})
	}

	auction := box.WithTitle("auction").Sprint(t.auctionText())
	trick := box.WithTitle("trick").Sprint(t.trickText())
	score := box.WithTitle("scores").Sprint(t.scoreText())

	_ = pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		hands,
		{{Data: auction}, {Data: trick}, {Data: score}},
	}).Render()

	if len(t.allowedCalls) > 0 || len(t.allowedCards) > 0 {
		pterm.Info.Println(t.promptText())
	}
}

func (t *Table) auctionText() string {
	var lines []string
	for _, entry := range t.calls {
		lines = append(lines, fmt.Sprintf("%-5s %s", entry.Position, callLabel(entry.Call)))
	}
	if t.declarer != nil && t.contract != nil {
		lines = append(lines, fmt.Sprintf("%s declares %s", *t.declarer, contractLabel(t.contract)))
	}
	if len(lines) == 0 {
		return pterm.Gray("no calls")
	}
	return strings.Join(lines, "\n")
}

func (t *Table) trickText() string {
	var lines []string
	for _, played := range t.trick {
		lines = append(lines, fmt.Sprintf("%-5s %s", played.Position, cardLabel(played.Card)))
	}
	lines = append(lines, fmt.Sprintf("tricks NS %d / EW %d", t.tricksWon.NorthSouth, t.tricksWon.EastWest))
	lines = append(lines, t.vulnerabilityText())
	return strings.Join(lines, "\n")
}

func (t *Table) vulnerabilityText() string {
	var vulnerable []string
	if t.vulnerability.NorthSouth {
		vulnerable = append(vulnerable, "NS")
	}
	if t.vulnerability.EastWest {
		vulnerable = append(vulnerable, "EW")
	}
	if len(vulnerable) == 0 {
		return "none vulnerable"
	}
	return "vulnerable: " + strings.Join(vulnerable, ", ")
}

func (t *Table) scoreText() string {
	rows := t.scores.TableData()
	var lines []string
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%6s %6s", row[0], row[1]))
	}
	return strings.Join(lines, "\n")
}

func (t *Table) promptText() string {
	if len(t.allowedCards) > 0 {
		return "Your turn to play. Allowed: " + handLabel(t.allowedCards)
	}
	var calls []string
	for _, call := range t.allowedCalls {
		calls = append(calls, callLabel(call))
	}
	return "Your turn to call. Allowed: " + strings.Join(calls, " ")
}
