package hero

// recorder collects narration events for assertions.
type recorder struct {
	events []Event
}

func (r *recorder) Record(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(kind EventKind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) kinds() []EventKind {
	kinds := make([]EventKind, len(r.events))
	for i, e := range r.events {
		kinds[i] = e.Kind
	}
	return kinds
}

// coin returns the queued flips in order.
type coin struct {
	flips []bool
}

func (c *coin) Bool() bool {
	f := c.flips[0]
	c.flips = c.flips[1:]
	return f
}

func seat(heroes ...*Hero) Seating {
	var s Seating
	for _, h := range heroes {
		s.Seat(h)
	}
	return s
}
