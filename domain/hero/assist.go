package hero

import (
	"errors"

	"github.com/luca-patrignani/heroes/domain/role"
)

// ErrAlreadyLinked is returned when a link is appended to a chain it already belongs to.
var ErrAlreadyLinked = errors.New("assist link already in chain")

// Assist is the link of a helper-capable hero in a Monarch's assist chain.
// It does not own the hero; the seating order does.
type Assist struct {
	hero *Hero
	next *Assist
}

func (a *Assist) Hero() *Hero {
	return a.hero
}

func (a *Assist) HasNext() bool {
	return a.next != nil
}

func (a *Assist) Next() *Assist {
	return a.next
}

// SetNext replaces the next link. A link has a single slot: a second call
// overwrites the first.
func (a *Assist) SetNext(next *Assist) {
	a.next = next
}

// Handle asks the hero to spend a card so the Monarch dodges. A Minister
// with cards accepts and ends the walk; anyone else declines and passes the
// request down the chain. Declined links are never asked again.
func (a *Assist) Handle() bool {
	h := a.hero
	if h.role == role.Minister && h.cards > 0 {
		h.cards--
		h.record(h.event(EventAssist))
		return true
	}
	h.record(h.event(EventAssistDeclined))
	if a.HasNext() {
		return a.next.Handle()
	}
	return false
}

// Chain is the ordered sequence of helpers, built by appending at the tail.
type Chain struct {
	head *Assist
}

// Append links a at the tail of the chain.
func (c *Chain) Append(a *Assist) error {
	if c.head == nil {
		c.head = a
		return nil
	}
	n := c.head
	for {
		if n == a {
			return ErrAlreadyLinked
		}
		if !n.HasNext() {
			break
		}
		n = n.Next()
	}
	n.SetNext(a)
	return nil
}

func (c *Chain) Head() *Assist {
	return c.head
}

func (c *Chain) Len() int {
	n := 0
	for a := c.head; a != nil; a = a.next {
		n++
	}
	return n
}

// Handle walks the chain from the head; false when nobody helps.
func (c *Chain) Handle() bool {
	if c.head == nil {
		return false
	}
	return c.head.Handle()
}
