package engine

import (
	"math/rand/v2"
	"strings"
)

// Deck is a stack of district cards.
type Deck struct {
	cards []District
	rng   *rand.Rand
}

// NewDeck creates a deck from the given cards, shuffled with rng.
func NewDeck(cards []District, rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]District, len(cards)), rng: rng}
	copy(d.cards, cards)
	d.Shuffle()
	return d
}

func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top n cards. Returns fewer if deck is short.
func (d *Deck) Draw(n int) []District {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	if n <= 0 {
		return nil
	}
	drawn := make([]District, n)
	copy(drawn, d.cards[:n])
	d.cards = d.cards[n:]
	return drawn
}

// Return puts cards back at the bottom of the deck.
func (d *Deck) Return(cards []District) {
	d.cards = append(d.cards, cards...)
}

// Remove takes the first card with the given name out of the deck.
func (d *Deck) Remove(name string) bool {
	for i, c := range d.cards {
		if strings.EqualFold(c.Name, name) {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int {
	return len(d.cards)
}
