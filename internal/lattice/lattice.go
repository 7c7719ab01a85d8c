// Package lattice provides the integer IVM lattice: the twelve kissing
// neighbor directions, bounds checks, full grid enumeration, painter's
// depth ordering and a noise density field over lattice cells.
package lattice

import (
	"golang.org/x/exp/constraints"

	"github.com/quadcraft/ivm/internal/quadray"
)

// Directions are the twelve IVM neighbor offsets, one per sphere touching a
// sphere in the closest packing.
var Directions = [12][4]int{
	{0, 1, 1, 2}, {0, 1, 2, 1}, {0, 2, 1, 1},
	{1, 0, 1, 2}, {1, 0, 2, 1}, {1, 1, 0, 2},
	{1, 1, 2, 0}, {1, 2, 0, 1}, {1, 2, 1, 0},
	{2, 0, 1, 1}, {2, 1, 0, 1}, {2, 1, 1, 0},
}

// InBounds reports whether every coordinate lies in [0, size).
func InBounds[T constraints.Integer](a, b, c, d, size T) bool {
	return 0 <= a && a < size &&
		0 <= b && b < size &&
		0 <= c && c < size &&
		0 <= d && d < size
}

// Neighbors returns the twelve neighbors of (a, b, c, d), unbounded, in
// Directions order.
func Neighbors[T constraints.Integer](a, b, c, d T) []quadray.Quadray {
	out := make([]quadray.Quadray, 0, len(Directions))
	for _, dir := range Directions {
		out = append(out, offset(a, b, c, d, dir))
	}
	return out
}

// BoundedNeighbors returns the neighbors of (a, b, c, d) that fall inside a
// size⁴ grid.
func BoundedNeighbors[T constraints.Integer](a, b, c, d, size T) []quadray.Quadray {
	var out []quadray.Quadray
	for _, dir := range Directions {
		na, nb := a+T(dir[0]), b+T(dir[1])
		nc, nd := c+T(dir[2]), d+T(dir[3])
		if InBounds(na, nb, nc, nd, size) {
			out = append(out, offset(a, b, c, d, dir))
		}
	}
	return out
}

func offset[T constraints.Integer](a, b, c, d T, dir [4]int) quadray.Quadray {
	return quadray.New(
		float64(a)+float64(dir[0]),
		float64(b)+float64(dir[1]),
		float64(c)+float64(dir[2]),
		float64(d)+float64(dir[3]),
	)
}
