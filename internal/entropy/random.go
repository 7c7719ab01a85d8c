// Package entropy provides the random sources used to draw lattice cells.
// A seeded source gives reproducible fixtures; the crypto source needs no seed.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	mrand "math/rand"
)

// readRandom fills b from the system CSPRNG.
var readRandom = rand.Read

// Source yields uniform integers in [0, n).
type Source interface {
	Intn(n int) int
}

// NewSeeded returns a deterministic source. *rand.Rand already satisfies Source.
func NewSeeded(seed int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(seed))
}

// Crypto returns a source backed by crypto/rand.
func Crypto() Source {
	return cryptoSource{}
}

type cryptoSource struct{}

// Intn returns a uniform integer in [0, n). It panics if n <= 0, like rand.Intn.
func (cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("entropy: invalid argument to Intn")
	}
	v := int(cryptoRandFloat() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// cryptoRandFloat generates a random float64 in [0, 1) using crypto/rand.
func cryptoRandFloat() float64 {
	var buf [8]byte
	if _, err := readRandom(buf[:]); err != nil {
		slog.Debug("crypto/rand read failed, using 0.5", "error", err)
		return 0.5
	}
	// Use only 53 bits for a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}
