package verify

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/quadcraft/ivm/internal/quadray"
	"github.com/quadcraft/ivm/internal/synergetics"
)

var checkNames = []string{
	"Basis Vector Lengths",
	"Tetrahedral Symmetry",
	"Origin Identity",
	"Round-Trip Conversion",
	"Distance Symmetry",
	"Triangle Inequality",
	"S3 Constant Validation",
	"Synergetics Volume Ratios",
}

func TestVerifyGeometricIdentitiesPasses(t *testing.T) {
	report := VerifyGeometricIdentities(DefaultTolerance)

	require.Len(t, report.Checks, 8)
	assert.True(t, report.AllPassed(), report.Summary())
	assert.Equal(t, 8, report.PassCount())
	assert.Empty(t, report.Failed())

	for i, c := range report.Checks {
		assert.Equal(t, checkNames[i], c.Name)
		assert.NotEmpty(t, c.Description)
		assert.NotEmpty(t, c.Expected)
		assert.NotEmpty(t, c.Actual)
	}
}

func TestCheckDetails(t *testing.T) {
	report := VerifyGeometricIdentities(DefaultTolerance)

	assert.Equal(t, "0.7071", report.Checks[0].Expected)
	assert.Equal(t, "[0.7071, 0.7071, 0.7071, 0.7071]", report.Checks[0].Actual)
	assert.Equal(t, "109.47", report.Checks[1].Expected)
	assert.Contains(t, report.Checks[1].Actual, "C-D=109.47")
	assert.Equal(t, "(0.0000, 0.0000, 0.0000)", report.Checks[2].Actual)
	assert.Equal(t, "all errors < 0.01", report.Checks[3].Expected)
	assert.Equal(t, 6, strings.Count(report.Checks[3].Actual, "error=0.000000"))
	assert.Equal(t, "1.060660", report.Checks[6].Expected)
	assert.Equal(t, "1:4:20", report.Checks[7].Actual)
}

func TestVerifyRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		q    quadray.Quadray
	}{
		{"basis A", quadray.BasisA},
		{"lattice point", quadray.New(2, 1, 0, 1)},
		{"unnormalized", quadray.New(5, 4, 3, 4)},
		{"fractional", quadray.New(0.3, 1.7, 0.2, 0.9)},
		{"origin", quadray.Origin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := VerifyRoundTrip(tt.q, DefaultTolerance)
			assert.True(t, r.Passed, r.Actual)
			assert.Equal(t, "Round-Trip", r.Name)
			assert.Equal(t, "error < 0.01", r.Expected)
		})
	}
}

func TestSuiteReportsBrokenConstants(t *testing.T) {
	c := synergetics.IVM()
	c.S3 = 1.5
	c.OctaVol = 5
	c.TetrahedralAngle = 90

	report := Suite{Constants: c, Tolerance: DefaultTolerance}.Run()
	require.Len(t, report.Checks, 8)
	assert.False(t, report.AllPassed())
	assert.Equal(t, 5, report.PassCount())

	failed := report.Failed()
	require.Len(t, failed, 3)

	assert.Equal(t, "Tetrahedral Symmetry", failed[0].Name)
	assert.Equal(t, "90.00", failed[0].Expected)
	assert.Contains(t, failed[0].Actual, "A-B=109.47")

	assert.Equal(t, "S3 Constant Validation", failed[1].Name)
	assert.Equal(t, "1.060660", failed[1].Expected)
	assert.Equal(t, "1.500000", failed[1].Actual)

	assert.Equal(t, "Synergetics Volume Ratios", failed[2].Name)
	assert.Equal(t, "1:5:20", failed[2].Actual)

	assert.Contains(t, report.Summary(), "Result: 5/8 passed")
}

func TestSuiteZeroTetraVolume(t *testing.T) {
	c := synergetics.IVM()
	c.TetraVol, c.OctaVol, c.CuboVol = 0, 0, 0

	report := Suite{Constants: c, Tolerance: DefaultTolerance}.Run()
	assert.False(t, report.Checks[7].Passed)
}

func TestSummary(t *testing.T) {
	report := VerifyGeometricIdentities(DefaultTolerance)
	lines := strings.Split(report.Summary(), "\n")

	require.Len(t, lines, 12)
	assert.Equal(t, "Synergetics Verification Report", lines[0])
	assert.Equal(t, strings.Repeat("─", 45), lines[1])
	assert.Equal(t, "  ✅ Basis Vector Lengths", lines[2])
	assert.Equal(t, "", lines[10])
	assert.Equal(t, "Result: ALL PASSED", lines[11])
}

func TestSummaryMarksFailures(t *testing.T) {
	report := Report{Checks: []CheckResult{
		{Name: "one", Passed: true},
		{Name: "two", Passed: false},
	}}
	s := report.Summary()
	assert.Contains(t, s, "  ✅ one\n")
	assert.Contains(t, s, "  ❌ two\n")
	assert.True(t, strings.HasSuffix(s, "Result: 1/2 passed"))
}

func TestReportJSON(t *testing.T) {
	report := VerifyGeometricIdentities(DefaultTolerance)
	data, err := json.Marshal(report)
	require.NoError(t, err)

	var doc struct {
		AllPassed bool          `json:"all_passed"`
		PassCount int           `json:"pass_count"`
		Total     int           `json:"total"`
		Checks    []CheckResult `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.True(t, doc.AllPassed)
	assert.Equal(t, 8, doc.PassCount)
	assert.Equal(t, 8, doc.Total)
	assert.Equal(t, report.Checks, doc.Checks)
	assert.Contains(t, string(data), `"expected":"1:4:20"`)
}

func TestReportYAML(t *testing.T) {
	data, err := yaml.Marshal(VerifyGeometricIdentities(DefaultTolerance))
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "all_passed: true")
	assert.Contains(t, out, "pass_count: 8")
	assert.Contains(t, out, "name: Origin Identity")
}

func TestEmptyReport(t *testing.T) {
	var r Report
	assert.True(t, r.AllPassed())
	assert.Equal(t, 0, r.PassCount())

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"all_passed":true,"pass_count":0,"total":0,"checks":[]}`, string(data))
}

func TestSuiteIgnoresReassignedBasisVars(t *testing.T) {
	prevA, prevB, prevOrigin := quadray.BasisA, quadray.BasisB, quadray.Origin
	quadray.BasisA = quadray.New(5, 0, 0, 0)
	quadray.BasisB = quadray.New(0, 3, 0, 0)
	quadray.Origin = quadray.New(1, 0, 0, 0)
	t.Cleanup(func() {
		quadray.BasisA, quadray.BasisB, quadray.Origin = prevA, prevB, prevOrigin
	})

	report := VerifyGeometricIdentities(DefaultTolerance)
	assert.True(t, report.AllPassed(), report.Summary())
	assert.Equal(t, "[0.7071, 0.7071, 0.7071, 0.7071]", report.Checks[0].Actual)
	assert.Equal(t, "d1=1.000000, d2=1.000000", report.Checks[4].Actual)
}
