package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/arcanaland/deckhand/internal/card"
)

// ErrPlaceOutOfRange is returned by InsertFromTop when the requested place is
// not above the bottom of the deck.
var ErrPlaceOutOfRange = errors.New("insert position out of range")

// Deck is an ordered stack of playing cards. The last element of cards is the
// top of the deck and the first element is the bottom.
//
// A Deck is not safe for concurrent use.
type Deck struct {
	cards []card.Card
}

// NewStandard creates a standard 52 card deck without jokers
func NewStandard() *Deck {
	return &Deck{cards: standardCards()}
}

// NewStandardWithJokers creates a standard 52 card deck followed by two
// jokers, which therefore sit on top until the deck is shuffled.
func NewStandardWithJokers() *Deck {
	cards := standardCards()
	cards = append(cards, card.New(card.Joker, card.None), card.New(card.Joker, card.None))
	return &Deck{cards: cards}
}

// NewStandardMultiple creates a deck of n standard decks placed one after
// another. A non-positive n yields an empty deck.
func NewStandardMultiple(n int) *Deck {
	if n <= 0 {
		return &Deck{}
	}
	cards := make([]card.Card, 0, n*52)
	for i := 0; i < n; i++ {
		cards = append(cards, standardCards()...)
	}
	return &Deck{cards: cards}
}

// Draw removes and returns the top card. ok is false if the deck is empty.
func (d *Deck) Draw() (c card.Card, ok bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	last := len(d.cards) - 1
	c = d.cards[last]
	d.cards = d.cards[:last]
	return c, true
}

// DrawN removes up to n cards from the top and returns them in draw order,
// top card first. Asking for more cards than remain drains the deck.
func (d *Deck) DrawN(n int) []card.Card {
	n = max(0, min(n, len(d.cards)))
	split := len(d.cards) - n

	drawn := make([]card.Card, n)
	copy(drawn, d.cards[split:])
	slices.Reverse(drawn)

	d.cards = d.cards[:split]
	return drawn
}

// DrawFromBottom removes and returns the bottom card. ok is false if the
// deck is empty.
func (d *Deck) DrawFromBottom() (c card.Card, ok bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	c = d.cards[0]
	d.cards = slices.Delete(d.cards, 0, 1)
	return c, true
}

// Peek returns the top card without removing it
func (d *Deck) Peek() (c card.Card, ok bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	return d.cards[len(d.cards)-1], true
}

// InsertAtBottom puts a card at the bottom of the deck
func (d *Deck) InsertAtBottom(c card.Card) {
	d.cards = slices.Insert(d.cards, 0, c)
}

// InsertFromTop inserts a card place positions below the current top card.
// With place 0 the card becomes the second card drawn; with place Len()-1 it
// becomes the bottom card. Any place outside [0, Len()) is rejected and the
// deck is left unchanged.
func (d *Deck) InsertFromTop(place int, c card.Card) error {
	if place < 0 || place >= len(d.cards) {
		return fmt.Errorf("%w: place %d in deck of %d cards", ErrPlaceOutOfRange, place, len(d.cards))
	}
	d.cards = slices.Insert(d.cards, len(d.cards)-1-place, c)
	return nil
}

// Shuffle reorders the deck uniformly at random using the runtime's
// entropy-seeded generator.
func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.cards), d.swap)
}

// ShuffleWith reorders the deck uniformly at random using r, which allows
// callers to get a reproducible order from a seeded source.
func (d *Deck) ShuffleWith(r *rand.Rand) {
	if r == nil {
		d.Shuffle()
		return
	}
	r.Shuffle(len(d.cards), d.swap)
}

func (d *Deck) swap(i, j int) {
	d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
}

// IsEmpty reports whether the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the deck in draw order, top card first
func (d *Deck) Cards() []card.Card {
	out := slices.Clone(d.cards)
	slices.Reverse(out)
	return out
}

// standardCards builds 52 cards, suits outer and ranks inner, both in
// canonical order
func standardCards() []card.Card {
	cards := make([]card.Card, 0, 52)
	for _, suit := range card.AllSuits() {
		for _, rank := range card.AllRanks(false) {
			cards = append(cards, card.New(rank, suit))
		}
	}
	return cards
}
