package hero

import (
	"errors"
	"fmt"

	"github.com/looplab/fsm"

	"github.com/luca-patrignani/heroes/domain/role"
)

var (
	// ErrNoHelpers is returned when attaching a helper to a hero that never asks for help.
	ErrNoHelpers = errors.New("hero does not use helpers")
	// ErrCannotAssist is returned when attaching a hero that cannot join an assist chain.
	ErrCannotAssist = errors.New("hero cannot assist")
)

// Hero is a seated character. It owns its role, hit points, hand size,
// pending commands and the state machine of its current turn.
type Hero struct {
	character Character
	role      role.Role
	hp        int
	cards     int
	index     int
	abandon   bool
	commands  []Command

	assist  *Assist
	helpers *Chain

	recorder Recorder
	turn     *fsm.FSM
	// table is the seating of the turn in progress, nil between turns.
	table Seating
}

// Option customises a hero at construction time.
type Option func(*Hero)

// WithRecorder sends the hero's narration to r.
func WithRecorder(r Recorder) Option {
	return func(h *Hero) {
		h.recorder = r
	}
}

// WithCards overrides the initial hand size.
func WithCards(n int) Option {
	return func(h *Hero) {
		h.cards = n
	}
}

// WithHP overrides the initial hit points. The maximum is unchanged.
func WithHP(hp int) Option {
	return func(h *Hero) {
		h.hp = hp
	}
}

// New creates a hero of character c holding role r, at full hit points.
func New(c Character, r role.Role, opts ...Option) *Hero {
	h := &Hero{
		character: c,
		role:      r,
		hp:        c.MaxHP,
		cards:     initialCards,
	}
	if c.CanAssist() {
		h.assist = &Assist{hero: h}
	}
	h.turn = newTurn(h)
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Hero) Name() string {
	return h.character.Name
}

func (h *Hero) Character() Character {
	return h.character
}

func (h *Hero) Role() role.Role {
	return h.role
}

// Title forwards to the role's display title.
func (h *Hero) Title() string {
	return h.role.Title()
}

// Enemy forwards to the role's enemy designation.
func (h *Hero) Enemy() string {
	return h.role.Enemy()
}

func (h *Hero) HP() int {
	return h.hp
}

func (h *Hero) MaxHP() int {
	return h.character.MaxHP
}

func (h *Hero) Cards() int {
	return h.cards
}

// Index returns the seat of the hero in the seating order.
func (h *Hero) Index() int {
	return h.index
}

// Abandoned reports whether a command made the hero skip its active phases.
func (h *Hero) Abandoned() bool {
	return h.abandon
}

// Pending returns the number of queued commands.
func (h *Hero) Pending() int {
	return len(h.commands)
}

// Assist returns the hero's assist chain link, or nil if it cannot help.
func (h *Hero) Assist() *Assist {
	return h.assist
}

// Helpers returns the chain consulted when the hero fails to dodge alone.
func (h *Hero) Helpers() *Chain {
	return h.helpers
}

// AttachHelper appends helper to the tail of the hero's assist chain.
func (h *Hero) AttachHelper(helper *Hero) error {
	if !h.character.UsesHelpers() {
		return fmt.Errorf("%s: %w", h.Name(), ErrNoHelpers)
	}
	if helper.assist == nil {
		return fmt.Errorf("%s: %w", helper.Name(), ErrCannotAssist)
	}
	if h.helpers == nil {
		h.helpers = &Chain{}
	}
	return h.helpers.Append(helper.assist)
}

// DrawCards is the draw phase.
func (h *Hero) DrawCards() {
	if h.character.traits.draw != nil {
		h.character.traits.draw(h)
		return
	}
	h.draw(defaultDraw)
}

func (h *Hero) draw(n int) {
	h.cards += n
	e := h.event(EventDraw)
	e.Amount = n
	h.record(e)
}

// PlayCards is the play phase: by default one attack after looking around the table.
func (h *Hero) PlayCards(s Seating) {
	if h.character.traits.play != nil {
		h.character.traits.play(h, s)
		return
	}
	e := h.event(EventNeighbours)
	if left := s.Left(h); left != nil {
		e.Other = left.Name()
	}
	if right := s.Right(h); right != nil {
		e.Right = right.Name()
	}
	h.record(e)
	h.Attack(s)
}

// Attack spends one card against the designated enemy. The hand size is not
// checked first, so attacking with an empty hand leaves it negative.
func (h *Hero) Attack(s Seating) {
	if h.character.traits.attack != nil {
		h.character.traits.attack(h, s)
		return
	}
	h.attack(s)
}

func (h *Hero) attack(s Seating) {
	target := s.Target(h)
	h.cards--
	e := h.event(EventAttack)
	e.Text = h.Enemy()
	if target != nil {
		e.Other = target.Name()
	}
	h.record(e)
	if target != nil {
		target.BeingAttacked(h)
	}
}

// DiscardCards caps the hand size at the current hit points.
func (h *Hero) DiscardCards() {
	if h.character.traits.discard != nil {
		h.character.traits.discard(h)
		return
	}
	h.discard()
}

func (h *Hero) discard() {
	if h.cards <= h.hp {
		h.record(h.event(EventDiscardSkipped))
		return
	}
	n := h.cards - h.hp
	h.cards = h.hp
	e := h.event(EventDiscard)
	e.Amount = n
	h.record(e)
}

// DodgeAttack reports whether an incoming attack is avoided.
func (h *Hero) DodgeAttack() bool {
	if h.character.traits.dodge != nil {
		return h.character.traits.dodge(h)
	}
	return false
}

// BeingAttacked resolves an incoming attack. attacker is nil for the
// start-of-round hazard. A failed dodge always costs one hit point, even
// below zero.
func (h *Hero) BeingAttacked(attacker *Hero) {
	e := h.event(EventAttacked)
	if attacker != nil {
		e.Other = attacker.Name()
	}
	h.record(e)
	if h.DodgeAttack() {
		h.record(h.event(EventDodged))
		return
	}
	h.hp--
	h.record(h.event(EventHit))
}

func (h *Hero) event(kind EventKind) Event {
	return Event{
		Kind:  kind,
		Hero:  h.Name(),
		Role:  h.Title(),
		Seat:  h.index,
		HP:    h.hp,
		Cards: h.cards,
	}
}

func (h *Hero) record(e Event) {
	if h.recorder != nil {
		h.recorder.Record(e)
	}
}
