// Package quadray provides the four-component tetrahedral coordinate type.
// A Quadray (a, b, c, d) addresses a 3D point through four basis vectors that
// point from the centre of a regular tetrahedron to its vertices. The basis is
// redundant: adding the same constant to all four components names the same
// point, so comparisons always go through the normalized form.
package quadray

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the component tolerance used by Equal.
const DefaultEpsilon = 1e-4

// xyzScale maps the tetrahedral basis onto unit-spaced Cartesian axes.
const xyzScale = 1 / math.Sqrt2

// Quadray is an immutable 4D tetrahedral coordinate.
type Quadray struct {
	A float64 `json:"a" yaml:"a"`
	B float64 `json:"b" yaml:"b"`
	C float64 `json:"c" yaml:"c"`
	D float64 `json:"d" yaml:"d"`
}

// Basis vectors and the origin. Every derived geometry is anchored on these.
var (
	BasisA = Quadray{A: 1}
	BasisB = Quadray{B: 1}
	BasisC = Quadray{C: 1}
	BasisD = Quadray{D: 1}
	Origin = Quadray{}
)

// New returns the Quadray (a, b, c, d) as given, without normalizing.
func New(a, b, c, d float64) Quadray {
	return Quadray{A: a, B: b, C: c, D: d}
}

// Basis returns the four basis vectors in A, B, C, D order. The values are
// built fresh on each call and do not read the BasisA..BasisD variables.
func Basis() [4]Quadray {
	return [4]Quadray{{A: 1}, {B: 1}, {C: 1}, {D: 1}}
}

// Normalized subtracts the minimum component from all four, so the smallest
// component becomes exactly 0. This is the canonical form.
func (q Quadray) Normalized() Quadray {
	m := math.Min(math.Min(q.A, q.B), math.Min(q.C, q.D))
	return Quadray{A: q.A - m, B: q.B - m, C: q.C - m, D: q.D - m}
}

// ToXYZ converts to Cartesian coordinates.
func (q Quadray) ToXYZ() (x, y, z float64) {
	x = xyzScale * (q.A - q.B - q.C + q.D)
	y = xyzScale * (q.A - q.B + q.C - q.D)
	z = xyzScale * (q.A + q.B - q.C - q.D)
	return x, y, z
}

// FromXYZ converts Cartesian coordinates to a normalized Quadray.
//
// Each axis is split into its positive and negative parts, and each part goes to
// the two basis vectors that lean that way. This is not an algebraic inverse of
// ToXYZ. It recovers the point only once normalization removes the free
// additive offset.
func FromXYZ(x, y, z float64) Quadray {
	px, nx := math.Max(0, x), math.Max(0, -x)
	py, ny := math.Max(0, y), math.Max(0, -y)
	pz, nz := math.Max(0, z), math.Max(0, -z)

	return Quadray{
		A: xyzScale * (px + py + pz),
		B: xyzScale * (nx + ny + pz),
		C: xyzScale * (nx + py + nz),
		D: xyzScale * (px + ny + nz),
	}.Normalized()
}

// Add returns the normalized componentwise sum.
func (q Quadray) Add(o Quadray) Quadray {
	return Quadray{A: q.A + o.A, B: q.B + o.B, C: q.C + o.C, D: q.D + o.D}.Normalized()
}

// Sub returns the componentwise difference. The result is left unnormalized
// so that Length still measures the displacement.
func (q Quadray) Sub(o Quadray) Quadray {
	return Quadray{A: q.A - o.A, B: q.B - o.B, C: q.C - o.C, D: q.D - o.D}
}

// Scale multiplies every component by s. Not normalized.
func (q Quadray) Scale(s float64) Quadray {
	return Quadray{A: q.A * s, B: q.B * s, C: q.C * s, D: q.D * s}
}

// Neg negates every component.
func (q Quadray) Neg() Quadray {
	return Quadray{A: -q.A, B: -q.B, C: -q.C, D: -q.D}
}

// Length returns √((a²+b²+c²+d²)/2).
//
// The halving accounts for the pairwise dot products of the four basis
// vectors, which sit at the tetrahedral angle to each other.
func (q Quadray) Length() float64 {
	return math.Sqrt((q.A*q.A + q.B*q.B + q.C*q.C + q.D*q.D) / 2)
}

// DistanceTo returns the length of q - o.
func (q Quadray) DistanceTo(o Quadray) float64 {
	return q.Sub(o).Length()
}

// Equals reports whether q and o name the same point: their normalized forms
// agree componentwise to within epsilon.
func (q Quadray) Equals(o Quadray, epsilon float64) bool {
	n1 := q.Normalized()
	n2 := o.Normalized()
	return math.Abs(n1.A-n2.A) < epsilon &&
		math.Abs(n1.B-n2.B) < epsilon &&
		math.Abs(n1.C-n2.C) < epsilon &&
		math.Abs(n1.D-n2.D) < epsilon
}

// Equal is Equals with DefaultEpsilon.
func (q Quadray) Equal(o Quadray) bool {
	return q.Equals(o, DefaultEpsilon)
}

// Components returns (a, b, c, d) as an array.
func (q Quadray) Components() [4]float64 {
	return [4]float64{q.A, q.B, q.C, q.D}
}

// String prints the raw components to two decimals.
func (q Quadray) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f, %.2f)", q.A, q.B, q.C, q.D)
}

// GoString prints the raw components to four decimals.
func (q Quadray) GoString() string {
	return fmt.Sprintf("quadray.New(%.4f, %.4f, %.4f, %.4f)", q.A, q.B, q.C, q.D)
}
