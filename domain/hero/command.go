package hero

// Command is a deferred effect bound to one receiver, run before its turn.
type Command interface {
	Execute()
}

// Rand is the randomness commands resolve with.
type Rand interface {
	Bool() bool
}

// Abandon may make its receiver skip the draw and play phases. The outcome
// is drawn when the command executes, not when it is placed.
type Abandon struct {
	receiver *Hero
	rng      Rand
}

// NewAbandon binds an Abandon card to receiver. Placing it is narrated
// immediately; the caller still has to Enqueue it.
func NewAbandon(receiver *Hero, rng Rand) *Abandon {
	e := receiver.event(EventCommandPlaced)
	e.Text = "Abandon"
	receiver.record(e)
	return &Abandon{receiver: receiver, rng: rng}
}

func (a *Abandon) Execute() {
	a.receiver.abandon = a.rng.Bool()
	if a.receiver.abandon {
		a.receiver.record(a.receiver.event(EventAbandoned))
		return
	}
	e := a.receiver.event(EventCommandSpent)
	e.Text = "Abandon"
	a.receiver.record(e)
}

// Enqueue appends c to the hero's pending commands.
func (h *Hero) Enqueue(c Command) {
	h.commands = append(h.commands, c)
}

// executeCommands drains the queue in insertion order. Each command is
// removed before it runs, so it can never run twice.
func (h *Hero) executeCommands() {
	for len(h.commands) > 0 {
		c := h.commands[0]
		h.commands[0] = nil
		h.commands = h.commands[1:]
		c.Execute()
	}
}
