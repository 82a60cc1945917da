package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCard is returned when a card token cannot be parsed
var ErrUnknownCard = errors.New("unknown card")

// Rank represents a playing card rank
type Rank int

const (
	King Rank = iota
	Queen
	Jack
	Ten
	Nine
	Eight
	Seven
	Six
	Five
	Four
	Three
	Two
	Ace
	Joker
)

var rankTokens = map[Rank]string{
	King:  "K",
	Queen: "Q",
	Jack:  "J",
	Ten:   "10",
	Nine:  "9",
	Eight: "8",
	Seven: "7",
	Six:   "6",
	Five:  "5",
	Four:  "4",
	Three: "3",
	Two:   "2",
	Ace:   "A",
	Joker: "Joker",
}

var rankNames = map[Rank]string{
	King:  "King",
	Queen: "Queen",
	Jack:  "Jack",
	Ten:   "Ten",
	Nine:  "Nine",
	Eight: "Eight",
	Seven: "Seven",
	Six:   "Six",
	Five:  "Five",
	Four:  "Four",
	Three: "Three",
	Two:   "Two",
	Ace:   "Ace",
	Joker: "Joker",
}

// String returns the short token for the rank (e.g. K, 10, A, Joker)
func (r Rank) String() string {
	if token, ok := rankTokens[r]; ok {
		return token
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

// Name returns the long name of the rank
func (r Rank) Name() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return r.String()
}

// AllRanks returns the standard ranks in canonical order, King first and Ace
// last. Joker is appended when withJoker is set.
func AllRanks(withJoker bool) []Rank {
	ranks := []Rank{
		King, Queen, Jack, Ten, Nine, Eight, Seven,
		Six, Five, Four, Three, Two, Ace,
	}
	if withJoker {
		ranks = append(ranks, Joker)
	}
	return ranks
}

// Suit represents a playing card suit
type Suit int

const (
	Heart Suit = iota
	Diamond
	Club
	Spade
	// None is the suit of a Joker
	None
)

// AllSuits returns the four suits in canonical order
func AllSuits() []Suit {
	return []Suit{Heart, Diamond, Club, Spade}
}

// String returns the suit name
func (s Suit) String() string {
	switch s {
	case Heart:
		return "Heart"
	case Diamond:
		return "Diamond"
	case Club:
		return "Club"
	case Spade:
		return "Spade"
	case None:
		return "None"
	default:
		return fmt.Sprintf("Suit(%d)", int(s))
	}
}

// Symbol returns the suit glyph, or an empty string for None
func (s Suit) Symbol() string {
	switch s {
	case Heart:
		return "♥"
	case Diamond:
		return "♦"
	case Club:
		return "♣"
	case Spade:
		return "♠"
	default:
		return ""
	}
}

// IsRed reports whether the suit is printed in red
func (s Suit) IsRed() bool {
	return s == Heart || s == Diamond
}

// Card represents a playing card. Cards are plain values and compare equal
// when rank and suit match.
type Card struct {
	Rank Rank
	Suit Suit
}

// New creates a card. The pairing is not validated; see Valid.
func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the short display token, e.g. A♠, 10♥ or Joker
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Name returns the long display name, e.g. Ace of Spades
func (c Card) Name() string {
	if c.Suit == None {
		return c.Rank.Name()
	}
	return fmt.Sprintf("%s of %ss", c.Rank.Name(), c.Suit)
}

// Valid reports whether the card pairs Joker with None and every other rank
// with one of the four suits.
func (c Card) Valid() bool {
	if _, ok := rankTokens[c.Rank]; !ok {
		return false
	}
	if c.Rank == Joker {
		return c.Suit == None
	}
	return c.Suit >= Heart && c.Suit <= Spade
}

// Parse parses a short display token back into a card. Suit letters
// (H, D, C, S) are accepted in place of glyphs, case-insensitively.
func Parse(token string) (Card, error) {
	token = strings.TrimSpace(token)
	if strings.EqualFold(token, "joker") {
		return New(Joker, None), nil
	}

	for _, suit := range AllSuits() {
		rankPart, ok := cutSuffix(token, suit)
		if !ok {
			continue
		}
		for _, rank := range AllRanks(false) {
			if strings.EqualFold(rankPart, rank.String()) {
				return New(rank, suit), nil
			}
		}
	}

	return Card{}, fmt.Errorf("%w: %q", ErrUnknownCard, token)
}

// cutSuffix strips the glyph or letter for suit from the end of token
func cutSuffix(token string, suit Suit) (string, bool) {
	if rest, ok := strings.CutSuffix(token, suit.Symbol()); ok {
		return rest, true
	}
	letter := suit.String()[:1]
	if len(token) > 1 && strings.EqualFold(token[len(token)-1:], letter) {
		return token[:len(token)-1], true
	}
	return "", false
}
