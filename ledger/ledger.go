package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/luca-patrignani/heroes/domain/hero"
)

type Ledger struct {
	mu      sync.RWMutex
	roundID string
	blocks  []Block
	// err keeps the first Record failure, since Recorder cannot return one.
	err error
}

// New creates a ledger for roundID with an initialized genesis block.
// The genesis block has index 0 and previous hash "0".
func New(roundID string) *Ledger {
	l := &Ledger{
		roundID: roundID,
		blocks:  make([]Block, 0),
	}

	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
		Event:     hero.Event{Kind: KindGenesis},
		Metadata:  Metadata{RoundID: roundID},
	}
	genesis.Hash = calculateHash(genesis)
	l.blocks = append(l.blocks, genesis)

	return l
}

// Append adds e after the latest block.
func (l *Ledger) Append(e hero.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	latest := l.blocks[len(l.blocks)-1]

	block := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Event:     e,
		Metadata:  Metadata{RoundID: l.roundID},
	}
	block.Hash = calculateHash(block)

	if err := validateBlock(block, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}

	l.blocks = append(l.blocks, block)
	return nil
}

// Record implements hero.Recorder. The first failure is kept and reported by Err.
func (l *Ledger) Record(e hero.Event) {
	if err := l.Append(e); err != nil {
		l.mu.Lock()
		if l.err == nil {
			l.err = err
		}
		l.mu.Unlock()
	}
}

// Err returns the first error met by Record, if any.
func (l *Ledger) Err() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}

func (l *Ledger) RoundID() string {
	return l.roundID
}

// GetLatest returns the most recently added block.
func (l *Ledger) GetLatest() (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return Block{}, fmt.Errorf("ledger is empty")
	}

	return l.blocks[len(l.blocks)-1], nil
}

// GetByIndex retrieves a block by its index in the chain.
func (l *Ledger) GetByIndex(index int) (*Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.blocks) {
		return nil, fmt.Errorf("index out of range")
	}

	return &l.blocks[index], nil
}

// Len returns the number of blocks, genesis included.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.blocks)
}

// Events returns the recorded narration in order, without the genesis block.
func (l *Ledger) Events() []hero.Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	events := make([]hero.Event, 0, len(l.blocks)-1)
	for _, b := range l.blocks[1:] {
		events = append(events, b.Event)
	}
	return events
}

// Verify validates the integrity of the whole ledger: the genesis block and
// each following block's index, previous hash and hash.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return fmt.Errorf("empty ledger")
	}

	if l.blocks[0].PrevHash != "0" || l.blocks[0].Event.Kind != KindGenesis {
		return fmt.Errorf("invalid genesis block")
	}

	for i := 1; i < len(l.blocks); i++ {
		if err := validateBlock(l.blocks[i], l.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}

	return nil
}

// validateBlock verifies that a block is valid relative to the previous block.
func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}

	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}

	expectedHash := calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}

	if current.Metadata.RoundID != previous.Metadata.RoundID {
		return fmt.Errorf("round changed: %s after %s", current.Metadata.RoundID, previous.Metadata.RoundID)
	}

	return nil
}

// calculateHash computes the SHA256 hash of a block from its index, timestamp,
// previous hash, JSON-encoded event and round id.
func calculateHash(block Block) string {
	eventBytes, _ := json.Marshal(block.Event)

	data := fmt.Sprintf("%d%d%s%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(eventBytes),
		block.Metadata.RoundID,
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
