package hero

import "fmt"

// Seating is the table order. A hero's index is its position in it.
type Seating []*Hero

// Seat appends h to the table and assigns its index.
func (s *Seating) Seat(h *Hero) {
	h.index = len(*s)
	*s = append(*s, h)
}

// LeftIndex returns the seat to the left of seat i.
func (s Seating) LeftIndex(i int) int {
	n := len(s)
	return (i - 1 + n) % n
}

// RightIndex returns the seat to the right of seat i.
func (s Seating) RightIndex(i int) int {
	return (i + 1) % len(s)
}

func (s Seating) Left(h *Hero) *Hero {
	if len(s) == 0 {
		return nil
	}
	return s[s.LeftIndex(h.index)]
}

func (s Seating) Right(h *Hero) *Hero {
	if len(s) == 0 {
		return nil
	}
	return s[s.RightIndex(h.index)]
}

// Target picks whom attacker hits: walking clockwise from its right
// neighbour, the first hero holding the attacker's top-priority enemy role,
// then the next role, and so on. Nil when no enemy is seated.
func (s Seating) Target(attacker *Hero) *Hero {
	n := len(s)
	for _, enemy := range attacker.role.Enemies() {
		for d := 1; d < n; d++ {
			c := s[(attacker.index+d)%n]
			if c != attacker && c.role == enemy {
				return c
			}
		}
	}
	return nil
}

// Validate checks that seat indices are exactly 0..N-1 in order.
func (s Seating) Validate() error {
	for i, h := range s {
		if h == nil {
			return fmt.Errorf("seat %d is empty", i)
		}
		if h.index != i {
			return fmt.Errorf("seat %d holds %s with index %d", i, h.Name(), h.index)
		}
	}
	return nil
}
