package deck

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when drawing from a deck with no cards left.
var ErrEmpty = errors.New("deck is empty")

// Rand is the randomness a deck needs to pick a card.
type Rand interface {
	Intn(n int) int
}

// Deck is a pool of cards drawn without replacement.
type Deck[T any] struct {
	cards []T
	drawn int
}

// New creates a deck holding a copy of cards, in the given order.
func New[T any](cards ...T) *Deck[T] {
	c := make([]T, len(cards))
	copy(c, cards)
	return &Deck[T]{cards: c}
}

// Draw removes a uniformly chosen card from the deck and returns it.
// The remaining cards keep their relative order.
func (d *Deck[T]) Draw(rng Rand) (T, error) {
	var zero T
	if len(d.cards) == 0 {
		return zero, fmt.Errorf("draw %d: %w", d.drawn+1, ErrEmpty)
	}
	i := rng.Intn(len(d.cards))
	card := d.cards[i]
	d.cards = append(d.cards[:i], d.cards[i+1:]...)
	d.drawn++
	return card, nil
}

// Len returns the number of cards left.
func (d *Deck[T]) Len() int {
	return len(d.cards)
}
