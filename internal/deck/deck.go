// Package deck tracks study position within a set of flashcards.
package deck

import (
	"math/rand"

	"github.com/JonMunkholm/flashcards/internal/flashcard"
)

// Deck is a study session over a fixed set of cards. Navigation wraps at
// both ends. A Deck is not safe for concurrent use.
type Deck struct {
	cards    []flashcard.Card
	original []flashcard.Card
	index    int
}

// New creates a deck positioned on the first card. The slice is copied.
func New(cards []flashcard.Card) *Deck {
	d := &Deck{
		cards:    append([]flashcard.Card(nil), cards...),
		original: append([]flashcard.Card(nil), cards...),
	}
	return d
}

// Len returns the number of cards.
func (d *Deck) Len() int { return len(d.cards) }

// Current returns the card at the current position, or false if the deck is empty.
func (d *Deck) Current() (flashcard.Card, bool) {
	if len(d.cards) == 0 {
		return flashcard.Card{}, false
	}
	return d.cards[d.index], true
}

// Progress returns the 1-based position and the total. Both are 0 for an empty deck.
func (d *Deck) Progress() (current, total int) {
	if len(d.cards) == 0 {
		return 0, 0
	}
	return d.index + 1, len(d.cards)
}

// Next moves forward, wrapping from the last card to the first.
func (d *Deck) Next() {
	if len(d.cards) == 0 {
		return
	}
	d.index = (d.index + 1) % len(d.cards)
}

// Previous moves back, wrapping from the first card to the last.
func (d *Deck) Previous() {
	if len(d.cards) == 0 {
		return
	}
	d.index = (d.index - 1 + len(d.cards)) % len(d.cards)
}

// Shuffle reorders the cards with a Fisher-Yates shuffle driven by r and
// returns to the first card.
func (d *Deck) Shuffle(r *rand.Rand) {
	if len(d.cards) == 0 {
		return
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	d.index = 0
}

// Restart returns to the first card, keeping the current order.
func (d *Deck) Restart() {
	d.index = 0
}

// Reset restores the original order and returns to the first card.
func (d *Deck) Reset() {
	copy(d.cards, d.original)
	d.index = 0
}

// Cards returns a copy of the cards in their current order.
func (d *Deck) Cards() []flashcard.Card {
	return append([]flashcard.Card(nil), d.cards...)
}
