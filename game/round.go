package game

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Round plays one pass over the seating order.
type Round struct {
	ID     uuid.UUID
	Table  *Table
	logger *slog.Logger
}

func NewRound(id uuid.UUID, t *Table, logger *slog.Logger) *Round {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Round{ID: id, Table: t, logger: logger}
}

// Play hits every hero with the start-of-round hazard and then runs its
// turn, seat by seat. The first error aborts the round; once ctx is done no
// further seat is touched.
func (r *Round) Play(ctx context.Context) error {
	for _, h := range r.Table.Seating {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("round %s: %w", r.ID, err)
		}
		r.logger.Debug("turn start", "round", r.ID, "seat", h.Index(), "hero", h.Name())
		h.BeingAttacked(nil)
		if err := h.TakeTurn(ctx, r.Table.Seating); err != nil {
			return fmt.Errorf("round %s: %w", r.ID, err)
		}
		r.logger.Debug("turn done", "round", r.ID, "seat", h.Index(), "hp", h.HP(), "cards", h.Cards())
	}
	return nil
}
