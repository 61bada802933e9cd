package game

// Snapshot is one full or partial state payload from the server. Each
// section and each key inside a section is optional; only the keys present
// in the payload are applied to the local mirror.
type Snapshot struct {
	Pub  Optional[PublicState]  `json:"pubstate,omitzero"`
	Priv Optional[PrivateState] `json:"privstate,omitzero"`
	Self Optional[SelfState]    `json:"self,omitzero"`
}

// PublicState mirrors state visible to everyone at the table.
type PublicState struct {
	Calls         Optional[[]PositionCall]      `json:"calls,omitzero"`
	Declarer      Optional[*Position]           `json:"declarer,omitzero"`
	Contract      Optional[*Contract]           `json:"contract,omitzero"`
	Cards         Optional[map[Position][]Card] `json:"cards,omitzero"`
	Trick         Optional[[]TrickCard]         `json:"trick,omitzero"`
	TricksWon     Optional[TricksWon]           `json:"tricksWon,omitzero"`
	Vulnerability Optional[Vulnerability]       `json:"vulnerability,omitzero"`
}

// PrivateState mirrors state visible only to this player (the own hand).
type PrivateState struct {
	Cards Optional[map[Position][]Card] `json:"cards,omitzero"`
}

// SelfState mirrors the player's own view: seat, turn and allowed actions.
type SelfState struct {
	Position       Optional[Position]   `json:"position,omitzero"`
	PositionInTurn Optional[*Position]  `json:"positionInTurn,omitzero"`
	AllowedCalls   Optional[[]Call]     `json:"allowedCalls,omitzero"`
	AllowedCards   Optional[[]Card]     `json:"allowedCards,omitzero"`
}

// VisibleCards merges the public and private card maps, the private hand
// taking precedence. The result is empty when neither section carries cards.
func (s Snapshot) VisibleCards() map[Position][]Card {
	merged := make(map[Position][]Card)
	if s.Pub.Present {
		for position, cards := range s.Pub.Value.Cards.Value {
			merged[position] = cards
		}
	}
	if s.Priv.Present {
		for position, cards := range s.Priv.Value.Cards.Value {
			merged[position] = cards
		}
	}
	return merged
}

// State is the authoritative local mirror of the game session. It is owned
// by the session state machine and mutated only by reply and event handlers.
type State struct {
	Position       *Position
	PositionInTurn *Position
	AllowedCalls   []Call
	AllowedCards   []Card
	Calls          []PositionCall
	Declarer       *Position
	Contract       *Contract
	Cards          map[Position][]Card
	Trick          []TrickCard
	TricksWon      TricksWon
	Vulnerability  Vulnerability
}

func NewState() *State {
	return &State{Cards: make(map[Position][]Card)}
}

// PlayCard moves a card from the position's hand, when the hand is known,
// onto the current trick.
func (s *State) PlayCard(position Position, card Card) {
	hand := s.Cards[position]
	for i, held := range hand {
		if held.Equal(card) {
			s.Cards[position] = append(hand[:i:i], hand[i+1:]...)
			break
		}
	}
	s.Trick = append(s.Trick, TrickCard{Position: position, Card: card})
}
