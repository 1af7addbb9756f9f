// Package hero implements the seated characters of a round and the rules
// they play by.
//
// # Core Types
//
// Hero: a seated character holding a role, hit points, a hand size, a queue
// of pending commands and the state machine of its turn.
//
// Character: an entry of the closed character catalogue. It fixes the hit
// point maximum and may override single steps of the turn (draw, play,
// attack, discard, dodge).
//
// Command: a deferred effect bound to one hero, run at the start of its turn.
// Abandon is the only command; it may make the hero skip draw and play.
//
// Chain and Assist: the helpers a Monarch asks, in order, when it cannot
// dodge alone. The first Minister with a card spends it and the walk stops.
//
// Seating: the table order, with left/right neighbours and enemy targeting.
//
// # Turn Flow
//
// A turn moves through pending_commands → acting → discarding → done.
// Every step is reported to a Recorder as an Event, in order.
package hero
