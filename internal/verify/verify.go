package verify

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/quadcraft/ivm/internal/geometry"
	"github.com/quadcraft/ivm/internal/quadray"
	"github.com/quadcraft/ivm/internal/synergetics"
)

// DefaultTolerance is the default numeric tolerance for checks.
//
// The Cartesian round trip is exact for lattice points in practice, but
// FromXYZ is not a proven inverse, so this bound is empirical.
const DefaultTolerance = 0.01

// Tighter bounds for checks that are pure algebra, and a looser one for
// angles, which go through acos.
const (
	symmetryTolerance = 1e-4
	s3Tolerance       = 1e-4
	angleTolerance    = 1.0
)

// roundTripPoints returns the fixed points of the round-trip check: the four
// basis vectors and two lattice points.
func roundTripPoints() []quadray.Quadray {
	b := quadray.Basis()
	return []quadray.Quadray{
		b[0], b[1], b[2], b[3],
		quadray.New(2, 1, 0, 1),
		quadray.New(3, 2, 1, 0),
	}
}

// Suite runs the identity checks against a constant catalogue.
type Suite struct {
	Constants synergetics.Constants
	Tolerance float64
}

// NewSuite returns a suite over the process-wide catalogue.
func NewSuite(tolerance float64) Suite {
	return Suite{Constants: synergetics.IVM(), Tolerance: tolerance}
}

// VerifyRoundTrip checks that q survives Quadray → XYZ → Quadray, measured as
// the distance between the normalized forms.
func VerifyRoundTrip(q quadray.Quadray, tolerance float64) CheckResult {
	x, y, z := q.ToXYZ()
	recovered := quadray.FromXYZ(x, y, z)
	err := q.Normalized().DistanceTo(recovered.Normalized())
	return CheckResult{
		Name:        "Round-Trip",
		Description: fmt.Sprintf("Quadray→XYZ→Quadray for %v", q),
		Expected:    fmt.Sprintf("error < %g", tolerance),
		Actual:      fmt.Sprintf("error=%.6f", err),
		Passed:      err < tolerance,
	}
}

// VerifyGeometricIdentities runs the eight identity checks against the
// process-wide catalogue.
func VerifyGeometricIdentities(tolerance float64) Report {
	return NewSuite(tolerance).Run()
}

// Run executes the eight checks in order:
//
//  1. basis vector lengths
//  2. tetrahedral angle between every basis pair
//  3. origin maps to the Cartesian origin
//  4. round trip of six fixed points
//  5. distance symmetry
//  6. triangle inequality
//  7. S3 = √(9/8)
//  8. tetra:octa:cubo volume ratio 1:4:20
func (s Suite) Run() Report {
	checks := []func() CheckResult{
		s.checkBasisLengths,
		s.checkTetrahedralAngles,
		s.checkOrigin,
		s.checkRoundTrips,
		s.checkDistanceSymmetry,
		s.checkTriangleInequality,
		s.checkS3,
		s.checkVolumeRatios,
	}

	report := Report{Checks: make([]CheckResult, 0, len(checks))}
	for _, check := range checks {
		report.Checks = append(report.Checks, check())
	}

	slog.Debug("geometry verification complete",
		"passed", report.PassCount(),
		"total", len(report.Checks),
	)
	return report
}

func (s Suite) checkBasisLengths() CheckResult {
	passed := true
	lengths := make([]string, 0, 4)
	for _, b := range quadray.Basis() {
		l := b.Length()
		lengths = append(lengths, fmt.Sprintf("%.4f", l))
		if math.Abs(l-s.Constants.BasisLength) >= s.Tolerance {
			passed = false
		}
	}
	return CheckResult{
		Name:        "Basis Vector Lengths",
		Description: fmt.Sprintf("All 4 basis vectors should have length ≈%.4f", s.Constants.BasisLength),
		Expected:    fmt.Sprintf("%.4f", s.Constants.BasisLength),
		Actual:      "[" + strings.Join(lengths, ", ") + "]",
		Passed:      passed,
	}
}

func (s Suite) checkTetrahedralAngles() CheckResult {
	labels := [4]string{"A", "B", "C", "D"}
	basis := quadray.Basis()

	passed := true
	var pairs []string
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			a := geometry.AngleBetween(basis[i], basis[j])
			pairs = append(pairs, fmt.Sprintf("%s-%s=%.2f", labels[i], labels[j], a))
			if math.Abs(a-s.Constants.TetrahedralAngle) >= angleTolerance {
				passed = false
			}
		}
	}
	return CheckResult{
		Name:        "Tetrahedral Symmetry",
		Description: fmt.Sprintf("All basis pairs should form %.2f° angles", s.Constants.TetrahedralAngle),
		Expected:    fmt.Sprintf("%.2f", s.Constants.TetrahedralAngle),
		Actual:      "[" + strings.Join(pairs, ", ") + "]",
		Passed:      passed,
	}
}

func (s Suite) checkOrigin() CheckResult {
	x, y, z := quadray.Quadray{}.ToXYZ()
	return CheckResult{
		Name:        "Origin Identity",
		Description: "Quadray (0,0,0,0) → Cartesian (0,0,0)",
		Expected:    "(0, 0, 0)",
		Actual:      fmt.Sprintf("(%.4f, %.4f, %.4f)", x, y, z),
		Passed:      math.Abs(x) < s.Tolerance && math.Abs(y) < s.Tolerance && math.Abs(z) < s.Tolerance,
	}
}

func (s Suite) checkRoundTrips() CheckResult {
	points := roundTripPoints()
	passed := true
	errs := make([]string, 0, len(points))
	for _, q := range points {
		r := VerifyRoundTrip(q, s.Tolerance)
		errs = append(errs, r.Actual)
		if !r.Passed {
			passed = false
		}
	}
	return CheckResult{
		Name:        "Round-Trip Conversion",
		Description: "Quadray→XYZ→Quadray recovers original position",
		Expected:    fmt.Sprintf("all errors < %g", s.Tolerance),
		Actual:      "[" + strings.Join(errs, ", ") + "]",
		Passed:      passed,
	}
}

func (s Suite) checkDistanceSymmetry() CheckResult {
	b := quadray.Basis()
	d1 := b[0].DistanceTo(b[1])
	d2 := b[1].DistanceTo(b[0])
	return CheckResult{
		Name:        "Distance Symmetry",
		Description: "distance(A,B) == distance(B,A)",
		Expected:    "d1 == d2",
		Actual:      fmt.Sprintf("d1=%.6f, d2=%.6f", d1, d2),
		Passed:      math.Abs(d1-d2) < symmetryTolerance,
	}
}

func (s Suite) checkTriangleInequality() CheckResult {
	b := quadray.Basis()
	qa, qb, qc := b[0], b[1], b[2]
	dAB := qa.DistanceTo(qb)
	dBC := qb.DistanceTo(qc)
	dAC := qa.DistanceTo(qc)
	return CheckResult{
		Name:        "Triangle Inequality",
		Description: "d(A,B) + d(B,C) ≥ d(A,C)",
		Expected:    fmt.Sprintf("%.4f + %.4f ≥ %.4f", dAB, dBC, dAC),
		Actual:      fmt.Sprintf("%.4f ≥ %.4f", dAB+dBC, dAC),
		Passed:      dAB+dBC >= dAC-s.Tolerance,
	}
}

func (s Suite) checkS3() CheckResult {
	want := math.Sqrt(9.0 / 8.0)
	return CheckResult{
		Name:        "S3 Constant Validation",
		Description: "S3 = √(9/8) ≈ 1.0607",
		Expected:    fmt.Sprintf("%.6f", want),
		Actual:      fmt.Sprintf("%.6f", s.Constants.S3),
		Passed:      math.Abs(s.Constants.S3-want) < s3Tolerance,
	}
}

func (s Suite) checkVolumeRatios() CheckResult {
	c := s.Constants
	return CheckResult{
		Name:        "Synergetics Volume Ratios",
		Description: "Tetra:Octa:Cubo = 1:4:20",
		Expected:    "1:4:20",
		Actual:      fmt.Sprintf("%d:%d:%d", c.TetraVol, c.OctaVol, c.CuboVol),
		Passed:      c.TetraVol != 0 && c.OctaVol == 4*c.TetraVol && c.CuboVol == 20*c.TetraVol,
	}
}
