package game

import (
	"encoding/json"
	"testing"
)

func TestOptionalAbsentVersusNull(t *testing.T) {
	var section SelfState
	payload := []byte(`{"positionInTurn": null, "allowedCalls": []}`)
	if err := json.Unmarshal(payload, &section); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if section.Position.Present {
		t.Fatalf("absent key must not be present")
	}
	if !section.PositionInTurn.Present || section.PositionInTurn.Value != nil {
		t.Fatalf("null key must be present with empty value: %+v", section.PositionInTurn)
	}
	if !section.AllowedCalls.Present || len(section.AllowedCalls.Value) != 0 {
		t.Fatalf("empty list must be present and empty: %+v", section.AllowedCalls)
	}
	if section.AllowedCards.Present {
		t.Fatalf("absent allowedCards must not be present")
	}
}

func TestOptionalDecodesValue(t *testing.T) {
	var section PublicState
	payload := []byte(`{"calls": [{"position": "north", "call": {"type": "pass"}}]}`)
	if err := json.Unmarshal(payload, &section); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !section.Calls.Present || len(section.Calls.Value) != 1 {
		t.Fatalf("calls: %+v", section.Calls)
	}
	if section.Calls.Value[0].Position != North || section.Calls.Value[0].Call.Type != CallPass {
		t.Fatalf("call entry: %+v", section.Calls.Value[0])
	}
}

func TestSnapshotVisibleCardsMergesPrivateOverPublic(t *testing.T) {
	var snapshot Snapshot
	payload := []byte(`{
		"pubstate": {"cards": {"north": [], "east": [{"rank": "2", "suit": "clubs"}]}},
		"privstate": {"cards": {"north": [{"rank": "ace", "suit": "spades"}]}}
	}`)
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	cards := snapshot.VisibleCards()
	if len(cards) != 2 {
		t.Fatalf("merged positions: %d", len(cards))
	}
	if len(cards[North]) != 1 || cards[North][0].Rank != "ace" {
		t.Fatalf("private hand must win the merge: %+v", cards[North])
	}
}
