package lattice

import (
	"github.com/quadcraft/ivm/internal/entropy"
	"github.com/quadcraft/ivm/internal/quadray"
)

// GenerateGrid returns every integer Quadray with components in [0, size),
// size⁴ cells in lexicographic order: a outermost, d innermost.
func GenerateGrid(size int) []quadray.Quadray {
	if size <= 0 {
		return nil
	}
	cells := make([]quadray.Quadray, 0, size*size*size*size)
	EachCell(size, func(q quadray.Quadray) bool {
		cells = append(cells, q)
		return true
	})
	return cells
}

// EachCell calls fn for every cell of a size⁴ grid in the same order as
// GenerateGrid without materializing the grid. Returning false from fn stops
// the walk.
func EachCell(size int, fn func(q quadray.Quadray) bool) {
	for a := 0; a < size; a++ {
		for b := 0; b < size; b++ {
			for c := 0; c < size; c++ {
				for d := 0; d < size; d++ {
					if !fn(quadray.New(float64(a), float64(b), float64(c), float64(d))) {
						return
					}
				}
			}
		}
	}
}

// RandomCoord returns an integer Quadray with each component drawn uniformly
// from [0, size). The result is not normalized. size must be positive. A nil
// src draws from crypto/rand.
func RandomCoord(size int, src entropy.Source) quadray.Quadray {
	if src == nil {
		src = entropy.Crypto()
	}
	return quadray.New(
		float64(src.Intn(size)),
		float64(src.Intn(size)),
		float64(src.Intn(size)),
		float64(src.Intn(size)),
	)
}
