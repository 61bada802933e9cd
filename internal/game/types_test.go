package game

import (
	"errors"
	"testing"
)

func TestPartnershipOfPositions(t *testing.T) {
	if North.Partnership() != NorthSouth || South.Partnership() != NorthSouth {
		t.Fatalf("north/south partnership")
	}
	if East.Partnership() != EastWest || West.Partnership() != EastWest {
		t.Fatalf("east/west partnership")
	}
}

func TestTricksWonAdd(t *testing.T) {
	var tally TricksWon
	tally = tally.Add(North)
	tally = tally.Add(West)
	tally = tally.Add(South)
	if tally.NorthSouth != 2 || tally.EastWest != 1 {
		t.Fatalf("tally: %+v", tally)
	}
}

func TestScoreEntryAmounts(t *testing.T) {
	passedOut := ScoreEntry{}
	ns, ew, err := passedOut.Amounts()
	if err != nil || ns != "0" || ew != "0" {
		t.Fatalf("passed out deal: %q %q %v", ns, ew, err)
	}

	winner := EastWest
	scored := ScoreEntry{Partnership: &winner, Score: 420}
	ns, ew, err = scored.Amounts()
	if err != nil || ns != "0" || ew != "420" {
		t.Fatalf("scored deal: %q %q %v", ns, ew, err)
	}

	bogus := Partnership("diagonal")
	if _, _, err := (ScoreEntry{Partnership: &bogus}).Amounts(); !errors.Is(err, ErrInvalidScore) {
		t.Fatalf("expected ErrInvalidScore, got %v", err)
	}
}

func TestStatePlayCardMovesFromHand(t *testing.T) {
	state := NewState()
	ace := Card{Rank: "ace", Suit: "spades"}
	two := Card{Rank: "2", Suit: "clubs"}
	state.Cards[North] = []Card{ace, two}
	state.PlayCard(North, ace)
	if len(state.Cards[North]) != 1 || !state.Cards[North][0].Equal(two) {
		t.Fatalf("hand after play: %+v", state.Cards[North])
	}
	if len(state.Trick) != 1 || !state.Trick[0].Card.Equal(ace) {
		t.Fatalf("trick after play: %+v", state.Trick)
	}
}
