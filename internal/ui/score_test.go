package ui

import (
	"testing"

	"github.com/danmuck/bridgectl/internal/game"
)

func TestScoreSheetColumns(t *testing.T) {
	var sheet ScoreSheet
	winner := game.NorthSouth
	if err := sheet.Add(game.ScoreEntry{Partnership: &winner, Score: 620}); err != nil {
		t.Fatalf("add: %v", err)
	}
	winner = game.EastWest
	if err := sheet.Add(game.ScoreEntry{Partnership: &winner, Score: 100}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := sheet.Add(game.ScoreEntry{}); err != nil {
		t.Fatalf("passed-out deal: %v", err)
	}

	rows := sheet.Rows()
	if len(rows) != 3 {
		t.Fatalf("rows: %d", len(rows))
	}
	if rows[0] != [2]string{"620", "0"} {
		t.Fatalf("north-south row: %v", rows[0])
	}
	if rows[1] != [2]string{"0", "100"} {
		t.Fatalf("east-west row: %v", rows[1])
	}
	if rows[2] != [2]string{"0", "0"} {
		t.Fatalf("passed-out row: %v", rows[2])
	}
}

func TestScoreSheetRejectsUnknownPartnership(t *testing.T) {
	var sheet ScoreSheet
	bogus := game.Partnership("diagonal")
	if err := sheet.Add(game.ScoreEntry{Partnership: &bogus}); err == nil {
		t.Fatalf("unknown partnership must be rejected")
	}
	if len(sheet.Rows()) != 0 {
		t.Fatalf("rejected entry must not add a row")
	}
}

func TestScoreSheetTableData(t *testing.T) {
	var sheet ScoreSheet
	winner := game.NorthSouth
	if err := sheet.Add(game.ScoreEntry{Partnership: &winner, Score: 420}); err != nil {
		t.Fatalf("add: %v", err)
	}
	data := sheet.TableData()
	if len(data) != 2 {
		t.Fatalf("table rows: %d", len(data))
	}
	if data[0][0] != "NS" || data[0][1] != "EW" {
		t.Fatalf("header row: %v", data[0])
	}
	if data[1][0] != "420" || data[1][1] != "0" {
		t.Fatalf("score row: %v", data[1])
	}
}

func TestLabels(t *testing.T) {
	if got := callLabel(game.Call{Type: game.CallDouble}); got != "X" {
		t.Fatalf("double label: %q", got)
	}
	bid := game.Bid{Level: 4, Strain: "notrump"}
	if got := callLabel(game.Call{Type: game.CallBid, Bid: &bid}); got != "4NT" {
		t.Fatalf("bid label: %q", got)
	}
	contract := game.Contract{Bid: bid, Doubling: "redoubled"}
	if got := contractLabel(&contract); got != "4NT XX" {
		t.Fatalf("contract label: %q", got)
	}
	if got := contractLabel(nil); got != "" {
		t.Fatalf("nil contract label: %q", got)
	}
	if got := rankLabel("queen"); got != "Q" {
		t.Fatalf("rank label: %q", got)
	}
}
