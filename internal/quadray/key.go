package quadray

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Key is the integer-rounded normalized form of a Quadray. It is comparable
// and can be used directly as a map key for lattice cells.
//
// Rounding is lossy: two distinct off-lattice points can share a Key.
type Key struct {
	A int `json:"a" yaml:"a"`
	B int `json:"b" yaml:"b"`
	C int `json:"c" yaml:"c"`
	D int `json:"d" yaml:"d"`
}

// Key returns the lattice key of q.
func (q Quadray) Key() Key {
	n := q.Normalized()
	return Key{
		A: int(math.Round(n.A)),
		B: int(math.Round(n.B)),
		C: int(math.Round(n.C)),
		D: int(math.Round(n.D)),
	}
}

// Quadray returns the lattice point the key names.
func (k Key) Quadray() Quadray {
	return Quadray{A: float64(k.A), B: float64(k.B), C: float64(k.C), D: float64(k.D)}
}

// String formats the key as "a,b,c,d".
func (k Key) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", k.A, k.B, k.C, k.D)
}

// ParseKey parses the "a,b,c,d" form produced by Key.String.
func ParseKey(s string) (Key, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Key{}, fmt.Errorf("parse key %q: want 4 components, got %d", s, len(parts))
	}

	var vals [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Key{}, fmt.Errorf("parse key %q: component %d: %w", s, i, err)
		}
		vals[i] = n
	}
	return Key{A: vals[0], B: vals[1], C: vals[2], D: vals[3]}, nil
}
