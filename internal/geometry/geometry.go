// Package geometry provides angle and distance metrics over Quadrays.
//
// Three distance metrics are provided and they are intentionally different:
//
//   - Distance is the Quadray length of the raw displacement.
//   - Manhattan4D sums absolute component differences; it is a board heuristic.
//   - Euclidean4D is the raw 4-component Euclidean norm, for diagnostics only.
package geometry

import (
	"math"

	"github.com/quadcraft/ivm/internal/quadray"
)

// AngleBetween returns the angle in degrees between q1 and q2 as Cartesian
// vectors. A zero-magnitude input yields 0.
func AngleBetween(q1, q2 quadray.Quadray) float64 {
	x1, y1, z1 := q1.ToXYZ()
	x2, y2, z2 := q2.ToXYZ()

	mag1 := math.Sqrt(x1*x1 + y1*y1 + z1*z1)
	mag2 := math.Sqrt(x2*x2 + y2*y2 + z2*z2)
	if mag1 == 0 || mag2 == 0 {
		return 0
	}

	dot := x1*x2 + y1*y2 + z1*z2
	cos := math.Max(-1, math.Min(1, dot/(mag1*mag2)))
	return math.Acos(cos) * 180 / math.Pi
}

// Distance is the Quadray length of the raw displacement q1 - q2. The
// difference is not normalized, so it is not invariant under the additive
// offset: two representations of the same point can be a nonzero distance
// apart. Compare normalized forms when that matters.
func Distance(q1, q2 quadray.Quadray) float64 {
	return q1.DistanceTo(q2)
}

// Manhattan4D is the sum of absolute component differences.
func Manhattan4D(q1, q2 quadray.Quadray) float64 {
	return math.Abs(q1.A-q2.A) + math.Abs(q1.B-q2.B) +
		math.Abs(q1.C-q2.C) + math.Abs(q1.D-q2.D)
}

// Euclidean4D is the Euclidean norm of the raw component difference,
// bypassing the Cartesian embedding.
func Euclidean4D(q1, q2 quadray.Quadray) float64 {
	da := q1.A - q2.A
	db := q1.B - q2.B
	dc := q1.C - q2.C
	dd := q1.D - q2.D
	return math.Sqrt(da*da + db*db + dc*dc + dd*dd)
}
