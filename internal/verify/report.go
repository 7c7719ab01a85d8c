// Package verify runs the geometric identity checks the Quadray system relies
// on and reports them as plain data. A failing check is a result, never an
// error, so callers can always aggregate the full battery.
package verify

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CheckResult is the outcome of one named check. Expected and Actual are
// human-readable so a failing check can be diagnosed on its own.
type CheckResult struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Expected    string `json:"expected" yaml:"expected"`
	Actual      string `json:"actual" yaml:"actual"`
	Passed      bool   `json:"passed" yaml:"passed"`
}

// Report is an ordered list of check results.
type Report struct {
	Checks []CheckResult `json:"checks" yaml:"checks"`
}

// AllPassed reports whether every check passed.
func (r Report) AllPassed() bool {
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// PassCount returns the number of passing checks.
func (r Report) PassCount() int {
	n := 0
	for _, c := range r.Checks {
		if c.Passed {
			n++
		}
	}
	return n
}

// Failed returns the failing checks in order.
func (r Report) Failed() []CheckResult {
	var out []CheckResult
	for _, c := range r.Checks {
		if !c.Passed {
			out = append(out, c)
		}
	}
	return out
}

// Summary renders a multi-line pass/fail listing.
func (r Report) Summary() string {
	var sb strings.Builder
	sb.WriteString("Synergetics Verification Report\n")
	sb.WriteString(strings.Repeat("─", 45))
	sb.WriteString("\n")
	for _, c := range r.Checks {
		icon := "✅"
		if !c.Passed {
			icon = "❌"
		}
		fmt.Fprintf(&sb, "  %s %s\n", icon, c.Name)
	}

	status := "ALL PASSED"
	if !r.AllPassed() {
		status = fmt.Sprintf("%d/%d passed", r.PassCount(), len(r.Checks))
	}
	fmt.Fprintf(&sb, "\nResult: %s", status)
	return sb.String()
}

// reportDoc is the serialized form, with the aggregates spelled out for
// consumers that embed the report.
type reportDoc struct {
	AllPassed bool          `json:"all_passed" yaml:"all_passed"`
	PassCount int           `json:"pass_count" yaml:"pass_count"`
	Total     int           `json:"total" yaml:"total"`
	Checks    []CheckResult `json:"checks" yaml:"checks"`
}

func (r Report) doc() reportDoc {
	checks := r.Checks
	if checks == nil {
		checks = []CheckResult{}
	}
	return reportDoc{
		AllPassed: r.AllPassed(),
		PassCount: r.PassCount(),
		Total:     len(r.Checks),
		Checks:    checks,
	}
}

// MarshalJSON implements json.Marshaler.
func (r Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.doc())
}

// MarshalYAML implements yaml.Marshaler.
func (r Report) MarshalYAML() (interface{}, error) {
	return r.doc(), nil
}
