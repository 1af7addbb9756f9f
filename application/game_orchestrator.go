// Package application runs a complete round from configuration to report.
package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/luca-patrignani/heroes/config"
	"github.com/luca-patrignani/heroes/domain/hero"
	"github.com/luca-patrignani/heroes/game"
	"github.com/luca-patrignani/heroes/ledger"
)

// GameOrchestrator wires configuration, randomness, the table, the round and
// the narration ledger together.
type GameOrchestrator struct {
	cfg    config.Config
	logger *slog.Logger
}

// Report is what a finished round hands to the presentation layer.
type Report struct {
	RoundID string
	Seed    int64
	// Head is the hash of the last narration block.
	Head    string
	Blocks  []ledger.Block
	Heroes  []game.Snapshot
}

// Events returns the narration of the round in order.
func (r Report) Events() []hero.Event {
	events := make([]hero.Event, 0, len(r.Blocks))
	for _, b := range r.Blocks {
		if b.Event.Kind != ledger.KindGenesis {
			events = append(events, b.Event)
		}
	}
	return events
}

func NewGameOrchestrator(cfg config.Config, logger *slog.Logger) *GameOrchestrator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &GameOrchestrator{cfg: cfg, logger: logger}
}

// Run builds the table, plays exactly one round and verifies the ledger.
// Any failure aborts the run.
func (o *GameOrchestrator) Run(ctx context.Context) (Report, error) {
	if err := o.cfg.Validate(); err != nil {
		return Report{}, err
	}
	gc, err := game.NewGameContext(o.cfg.Seed, game.Options{
		Players: o.cfg.Players,
		Monarch: o.cfg.Monarch,
		Logger:  o.logger,
	})
	if err != nil {
		return Report{}, fmt.Errorf("build table: %w", err)
	}
	o.logger.Info("table ready", "round", gc.Round.ID, "seed", o.cfg.Seed, "players", len(gc.Table.Seating), "monarch", gc.Table.Monarch.Name())

	if err := gc.Round.Play(ctx); err != nil {
		return Report{}, err
	}
	if err := gc.Ledger.Err(); err != nil {
		return Report{}, fmt.Errorf("record narration: %w", err)
	}
	if err := gc.Ledger.Verify(); err != nil {
		return Report{}, fmt.Errorf("verify narration: %w", err)
	}
	head, err := gc.Ledger.GetLatest()
	if err != nil {
		return Report{}, err
	}
	o.logger.Debug("narration verified", "blocks", gc.Ledger.Len(), "head", head.Hash, "draws", gc.Rand.Draws())

	blocks := make([]ledger.Block, 0, gc.Ledger.Len())
	for i := 0; i < gc.Ledger.Len(); i++ {
		b, err := gc.Ledger.GetByIndex(i)
		if err != nil {
			return Report{}, err
		}
		blocks = append(blocks, *b)
	}
	return Report{
		RoundID: gc.Ledger.RoundID(),
		Seed:    gc.Rand.Seed(),
		Head:    head.Hash,
		Blocks:  blocks,
		Heroes:  gc.Table.Snapshot(),
	}, nil
}
