// Package role models the hidden team alignment of a seated hero.
package role

import "strings"

// Role is the team alignment assigned to a hero when it is created.
type Role int

const (
	Monarch Role = iota
	Minister
	Rebel
	Traitor
)

// NonMonarch lists the roles a non-Monarch seat can be dealt, in draw order.
var NonMonarch = []Role{Minister, Rebel, Traitor}

// Title returns the display title of the role.
func (r Role) Title() string {
	switch r {
	case Monarch:
		return "Monarch"
	case Minister:
		return "Minister"
	case Rebel:
		return "Rebel"
	case Traitor:
		return "Traitor"
	default:
		return "Unknown"
	}
}

func (r Role) String() string {
	return r.Title()
}

// Enemies returns whom a holder of this role targets, highest priority first.
func (r Role) Enemies() []Role {
	switch r {
	case Monarch, Minister:
		return []Role{Rebel, Traitor}
	case Rebel:
		return []Role{Monarch}
	case Traitor:
		return []Role{Rebel, Monarch}
	default:
		return nil
	}
}

// Enemy describes the enemy designation, e.g. "Rebel, then Traitors".
func (r Role) Enemy() string {
	enemies := r.Enemies()
	parts := make([]string, 0, len(enemies))
	for i, e := range enemies {
		title := e.Title()
		// the loyal side hunts every traitor, not just one
		if i > 0 && e == Traitor {
			title += "s"
		}
		parts = append(parts, title)
	}
	return strings.Join(parts, ", then ")
}

// IsLoyal reports whether the role fights on the Monarch's side.
func (r Role) IsLoyal() bool {
	return r == Monarch || r == Minister
}
