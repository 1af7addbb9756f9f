package ledger

import "github.com/luca-patrignani/heroes/domain/hero"

// KindGenesis marks the first block of every ledger.
const KindGenesis hero.EventKind = "genesis"

// Block is one narration event in the ledger.
type Block struct {
	Index     int        `json:"index"`
	Timestamp int64      `json:"timestamp"`
	PrevHash  string     `json:"prev_hash"`
	Hash      string     `json:"hash"`
	Event     hero.Event `json:"event"`
	Metadata  Metadata   `json:"metadata"`
}

type Metadata struct {
	RoundID string `json:"round_id"`
}
