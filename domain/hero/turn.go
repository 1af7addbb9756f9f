package hero

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
)

// Turn states, in the order a hero goes through them once per round.
const (
	StatePendingCommands = "pending_commands"
	StateActing          = "acting"
	StateDiscarding      = "discarding"
	StateDone            = "done"
)

const (
	eventCommandsDrained = "commands_drained"
	eventActed           = "acted"
	eventDiscarded       = "discarded"
)

var (
	// ErrTurnTaken is returned when a hero is asked to play a turn it already played.
	ErrTurnTaken = errors.New("turn already taken")
	// ErrNotSeated is returned when a turn is played against a seating that does not hold the hero.
	ErrNotSeated = errors.New("hero not seated")
)

func newTurn(h *Hero) *fsm.FSM {
	return fsm.NewFSM(
		StatePendingCommands,
		fsm.Events{
			{Name: eventCommandsDrained, Src: []string{StatePendingCommands}, Dst: StateActing},
			{Name: eventActed, Src: []string{StateActing}, Dst: StateDiscarding},
			{Name: eventDiscarded, Src: []string{StateDiscarding}, Dst: StateDone},
		},
		fsm.Callbacks{
			"enter_" + StateActing: func(_ context.Context, _ *fsm.Event) {
				if h.abandon {
					h.record(h.event(EventTurnSkipped))
					return
				}
				h.DrawCards()
				h.PlayCards(h.table)
			},
			"enter_" + StateDiscarding: func(_ context.Context, _ *fsm.Event) {
				h.DiscardCards()
			},
			"enter_" + StateDone: func(_ context.Context, _ *fsm.Event) {
				h.record(h.event(EventTurnEnd))
			},
		},
	)
}

// State returns the current turn state.
func (h *Hero) State() string {
	return h.turn.Current()
}

// TakeTurn runs the turn template: queued commands, then draw and play
// unless abandoned, then discard. It can run once per hero.
func (h *Hero) TakeTurn(ctx context.Context, s Seating) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if h.turn.Current() != StatePendingCommands {
		return fmt.Errorf("%s: %w", h.Name(), ErrTurnTaken)
	}
	if h.index < 0 || h.index >= len(s) || s[h.index] != h {
		return fmt.Errorf("%s at seat %d: %w", h.Name(), h.index, ErrNotSeated)
	}
	h.table = s
	defer func() { h.table = nil }()

	h.record(h.event(EventTurnStart))
	h.executeCommands()
	for _, ev := range []string{eventCommandsDrained, eventActed, eventDiscarded} {
		if err := h.turn.Event(ctx, ev); err != nil {
			return fmt.Errorf("%s turn %s: %w", h.Name(), ev, err)
		}
	}
	return nil
}
