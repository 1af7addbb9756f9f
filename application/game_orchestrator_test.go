package application

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/luca-patrignani/heroes/config"
	"github.com/luca-patrignani/heroes/domain/hero"
	"github.com/luca-patrignani/heroes/game"
)

func TestRunDefaultRound(t *testing.T) {
	o := NewGameOrchestrator(config.Config{Players: 4, LogLevel: "info"}, nil)
	report, err := o.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Heroes) != 4 {
		t.Fatalf("expected 4 heroes, got %d", len(report.Heroes))
	}
	if report.RoundID == "" {
		t.Error("expected a round id")
	}
	if len(report.Blocks) == 0 || report.Blocks[0].Index != 0 {
		t.Fatal("expected the genesis block first")
	}
	if last := report.Blocks[len(report.Blocks)-1]; report.Head != last.Hash {
		t.Errorf("head %s is not the last block hash %s", report.Head, last.Hash)
	}
	turns := 0
	for _, e := range report.Events() {
		if e.Kind == hero.EventTurnEnd {
			turns++
		}
	}
	if turns != 4 {
		t.Fatalf("expected 4 turns, got %d", turns)
	}
	for _, h := range report.Heroes {
		if h.State != hero.StateDone {
			t.Errorf("%s ended in %s", h.Name, h.State)
		}
	}
}

func TestRunIsReproducible(t *testing.T) {
	cfg := config.Config{Seed: 99, Players: 5, LogLevel: "info"}
	a, err := NewGameOrchestrator(cfg, nil).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewGameOrchestrator(cfg, nil).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if a.Seed != 99 || b.Seed != 99 {
		t.Errorf("expected seed 99 in both reports, got %d and %d", a.Seed, b.Seed)
	}
	if !slices.Equal(a.Heroes, b.Heroes) {
		t.Fatalf("heroes differ:\n%+v\n%+v", a.Heroes, b.Heroes)
	}
	if !slices.Equal(a.Events(), b.Events()) {
		t.Fatal("narration differs")
	}
}

func TestRunPoolExhausted(t *testing.T) {
	o := NewGameOrchestrator(config.Config{Players: 12, LogLevel: "info"}, nil)
	if _, err := o.Run(context.Background()); !errors.Is(err, game.ErrPoolExhausted) {
		t.Fatalf("expected ErrPoolExhausted, got %v", err)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	o := NewGameOrchestrator(config.Config{Players: 1, LogLevel: "info"}, nil)
	if _, err := o.Run(context.Background()); err == nil {
		t.Fatal("expected validation error")
	}
}
