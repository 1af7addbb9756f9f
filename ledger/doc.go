// Package ledger implements an append-only narration log for a round.
//
// # Core Components
//
// Ledger: an ordered log of narration events with hash chaining, so the
// presentation layer reads back exactly what happened and in which order.
//
// Block: a single narration event together with its position, the hash of
// the previous block and the round it belongs to.
//
// # Properties
//
//   - Ordering: blocks are numbered from the genesis block onwards
//   - Tamper detection: changing an event breaks the hash chain
//
// # Usage
//
// Create a ledger for a round id and pass it as the hero.Recorder of every
// seated hero. Call Verify once the round is over.
package ledger
