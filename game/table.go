package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/luca-patrignani/heroes/domain/deck"
	"github.com/luca-patrignani/heroes/domain/hero"
	"github.com/luca-patrignani/heroes/domain/role"
)

var (
	// ErrPoolExhausted is returned when a seat asks for a character and none is left.
	ErrPoolExhausted = errors.New("no hero anymore")
	// ErrNotMonarch is returned when the forced Monarch is not a Monarch character.
	ErrNotMonarch = errors.New("character cannot be monarch")
)

// Rand is the randomness consumed while building a table and playing a round.
type Rand interface {
	Intn(n int) int
	Bool() bool
}

type Options struct {
	// Players counts the seats, Monarch included.
	Players int
	// Monarch forces the Monarch character by name.
	Monarch  string
	Recorder hero.Recorder
	Logger   *slog.Logger
}

// Table is a seated game ready for one round.
type Table struct {
	Seating hero.Seating
	Monarch *hero.Hero
}

// NewTable seats a Monarch followed by Players-1 heroes drawn from the
// character pool. Draws happen in this order: the Monarch, then for every
// other seat its character and its role. The Monarch gets an Abandon card,
// and if it uses helpers every helper-capable hero joins its assist chain.
func NewTable(rng Rand, opts Options) (*Table, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	monarchCharacter, err := pickMonarch(rng, opts.Monarch)
	if err != nil {
		return nil, err
	}

	t := &Table{}
	t.Monarch = hero.New(monarchCharacter, role.Monarch, hero.WithRecorder(opts.Recorder))
	t.Seating.Seat(t.Monarch)
	t.Monarch.Enqueue(hero.NewAbandon(t.Monarch, rng))
	logger.Debug("seated monarch", "hero", t.Monarch.Name(), "hp", t.Monarch.HP())

	pool := deck.New(hero.Pool()...)
	for seat := 1; seat < opts.Players; seat++ {
		c, err := pool.Draw(rng)
		if err != nil {
			return nil, fmt.Errorf("seat %d: %w: %w", seat, ErrPoolExhausted, err)
		}
		r := role.NonMonarch[rng.Intn(len(role.NonMonarch))]
		h := hero.New(c, r, hero.WithRecorder(opts.Recorder))
		if t.Monarch.Character().UsesHelpers() && c.CanAssist() {
			if err := t.Monarch.AttachHelper(h); err != nil {
				return nil, fmt.Errorf("seat %d: %w", seat, err)
			}
		}
		t.Seating.Seat(h)
		logger.Debug("seated hero", "seat", h.Index(), "hero", h.Name(), "role", h.Title(), "hp", h.HP())
	}

	if err := t.Seating.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func pickMonarch(rng Rand, name string) (hero.Character, error) {
	if name == "" {
		return deck.New(hero.Monarchs()...).Draw(rng)
	}
	c, err := hero.Lookup(name)
	if err != nil {
		return hero.Character{}, err
	}
	if c.Faction != hero.FactionMonarch {
		return hero.Character{}, fmt.Errorf("%s: %w", c.Name, ErrNotMonarch)
	}
	return c, nil
}

// Snapshot is the visible state of a hero.
type Snapshot struct {
	Name      string
	Role      string
	Loyal     bool
	Seat      int
	HP        int
	MaxHP     int
	Cards     int
	State     string
	Abandoned bool
}

// Snapshot returns the state of every seat, in seating order.
func (t *Table) Snapshot() []Snapshot {
	out := make([]Snapshot, len(t.Seating))
	for i, h := range t.Seating {
		out[i] = Snapshot{
			Name:      h.Name(),
			Role:      h.Title(),
			Loyal:     h.Role().IsLoyal(),
			Seat:      h.Index(),
			HP:        h.HP(),
			MaxHP:     h.MaxHP(),
			Cards:     h.Cards(),
			State:     h.State(),
			Abandoned: h.Abandoned(),
		}
	}
	return out
}
