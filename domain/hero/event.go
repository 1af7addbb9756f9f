package hero

// EventKind identifies a narration event emitted while a round is played.
type EventKind string

const (
	EventTurnStart      EventKind = "turn_start"
	EventCommandPlaced  EventKind = "command_placed"
	EventAbandoned      EventKind = "abandoned"
	EventCommandSpent   EventKind = "command_spent"
	EventTurnSkipped    EventKind = "turn_skipped"
	EventFlavor         EventKind = "flavor"
	EventDraw           EventKind = "draw"
	EventNeighbours     EventKind = "neighbours"
	EventAttack         EventKind = "attack"
	EventAttacked       EventKind = "attacked"
	EventDodged         EventKind = "dodged"
	EventHit            EventKind = "hit"
	EventAssist         EventKind = "assist"
	EventAssistDeclined EventKind = "assist_declined"
	EventNoAssist       EventKind = "no_assist"
	EventDiscard        EventKind = "discard"
	EventDiscardSkipped EventKind = "discard_skipped"
	EventBonusCard      EventKind = "bonus_card"
	EventTurnEnd        EventKind = "turn_end"
)

// Event is a single narration entry. HP and Cards are the acting hero's
// values after the step that produced the event.
type Event struct {
	Kind  EventKind `json:"kind"`
	Hero  string    `json:"hero"`
	Role  string    `json:"role"`
	Seat  int       `json:"seat"`
	HP    int       `json:"hp"`
	Cards int       `json:"cards"`
	// Other names the second hero involved: attack target, attacker, or a neighbour.
	Other  string `json:"other,omitempty"`
	Right  string `json:"right,omitempty"`
	Amount int    `json:"amount,omitempty"`
	Text   string `json:"text,omitempty"`
}

// Hazard reports whether an EventAttacked came from the start-of-round
// hazard rather than from another hero.
func (e Event) Hazard() bool {
	return e.Kind == EventAttacked && e.Other == ""
}

// Recorder receives narration events in the order they happen.
type Recorder interface {
	Record(e Event)
}
