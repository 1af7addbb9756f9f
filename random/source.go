// Package random provides the single deterministic random source shared by
// table construction and command resolution. Every draw comes from a
// blake2xb extendable-output stream keyed by the game seed, so a seed fully
// determines a run.
package random

import (
	"encoding/binary"
	"math/big"

	"go.dedis.ch/kyber/v4"
	kyberrand "go.dedis.ch/kyber/v4/util/random"
	"go.dedis.ch/kyber/v4/xof/blake2xb"
)

// Source is a seeded, reproducible random generator. It is not safe for
// concurrent use; the game consumes it from a single goroutine.
type Source struct {
	seed  int64
	xof   kyber.XOF
	draws int
}

// New returns a Source whose output depends only on seed.
func New(seed int64) *Source {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(seed))
	return &Source{
		seed: seed,
		xof:  blake2xb.New(key),
	}
}

// Intn returns a uniform integer in [0, n). It panics if n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("random: invalid argument to Intn")
	}
	s.draws++
	return int(kyberrand.Int(big.NewInt(int64(n)), s.xof).Int64())
}

// Bool returns a fair coin flip.
func (s *Source) Bool() bool {
	return s.Intn(2) == 1
}

// Read fills p with bytes from the stream. It lets the source back
// io.Reader consumers such as uuid generation.
func (s *Source) Read(p []byte) (int, error) {
	s.draws++
	return s.xof.Read(p)
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Draws counts the calls that consumed the stream so far.
func (s *Source) Draws() int {
	return s.draws
}
