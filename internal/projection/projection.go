// Package projection maps Quadray positions onto a 2D screen: Cartesian
// conversion, a fixed Y-then-X rotation, and a perspective divide.
package projection

import (
	"math"

	"github.com/quadcraft/ivm/internal/quadray"
)

// ScreenPoint is a projected position plus the perspective factor applied to
// it. Renderers scale glyph size by Scale so that apparent size tracks depth.
type ScreenPoint struct {
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Scale float64 `json:"scale" yaml:"scale"`
}

// RotateXYZ rotates (x, y, z) about the Y axis by rotY, then about the X axis
// by rotX. Angles are in radians. The order is fixed.
func RotateXYZ(x, y, z, rotX, rotY float64) (float64, float64, float64) {
	sinY, cosY := math.Sincos(rotY)
	sinX, cosX := math.Sincos(rotX)

	// Y axis.
	x1 := x*cosY - z*sinY
	z1 := x*sinY + z*cosY
	y1 := y

	// X axis.
	y2 := y1*cosX - z1*sinX
	z2 := y1*sinX + z1*cosX

	return x1, y2, z2
}

// ProjectQuadray converts q to Cartesian, rotates it, and applies a
// perspective divide of cameraDist/(cameraDist+z). A zero denominator falls
// back to a perspective of 1. Screen y grows downward.
func ProjectQuadray(q quadray.Quadray, rotX, rotY, scale, cameraDist, centerX, centerY float64) ScreenPoint {
	x, y, z := q.ToXYZ()
	rx, ry, rz := RotateXYZ(x, y, z, rotX, rotY)

	perspective := 1.0
	if denom := cameraDist + rz; denom != 0 {
		perspective = cameraDist / denom
	}

	return ScreenPoint{
		X:     centerX + rx*scale*perspective,
		Y:     centerY - ry*scale*perspective,
		Scale: perspective,
	}
}
