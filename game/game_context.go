package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/luca-patrignani/heroes/ledger"
	"github.com/luca-patrignani/heroes/random"
)

// GameContext bundles what one round needs: the random source, the
// narration ledger, the seated table and the round itself.
type GameContext struct {
	Rand   *random.Source
	Ledger *ledger.Ledger
	Table  *Table
	Round  *Round
}

// NewGameContext seeds the random source, derives the round id from it,
// and seats a table whose narration goes to a fresh ledger. Any Recorder
// in opts is replaced by the ledger.
func NewGameContext(seed int64, opts Options) (*GameContext, error) {
	rng := random.New(seed)
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return nil, fmt.Errorf("round id: %w", err)
	}
	l := ledger.New(id.String())
	opts.Recorder = l

	table, err := NewTable(rng, opts)
	if err != nil {
		return nil, err
	}
	return &GameContext{
		Rand:   rng,
		Ledger: l,
		Table:  table,
		Round:  NewRound(id, table, opts.Logger),
	}, nil
}
