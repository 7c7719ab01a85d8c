package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/quadcraft/ivm/internal/verify"
)

// verifyRun is one verify invocation as printed by json and yaml output.
type verifyRun struct {
	RunID     string        `json:"run_id" yaml:"run_id"`
	Tolerance float64       `json:"tolerance" yaml:"tolerance"`
	Report    verify.Report `json:"report" yaml:"report"`
}

func verifyCmd(opts *options) *cobra.Command {
	var (
		tolerance float64
		points    []string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run the geometric identity checks",
		Long: `Run the eight geometric identity checks against the built-in constants.
Each --point adds a round-trip check for that Quadray. Exits non-zero if any
check fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tolerance <= 0 {
				return fmt.Errorf("tolerance must be positive, got %g", tolerance)
			}
			extra, err := parseQuadrays(points)
			if err != nil {
				return err
			}

			run := verifyRun{
				RunID:     uuid.New().String(),
				Tolerance: tolerance,
				Report:    verify.VerifyGeometricIdentities(tolerance),
			}
			for _, q := range extra {
				run.Report.Checks = append(run.Report.Checks, verify.VerifyRoundTrip(q, tolerance))
			}

			slog.Info("verification run",
				"run_id", run.RunID,
				"passed", run.Report.PassCount(),
				"total", len(run.Report.Checks),
			)

			err = render(cmd.OutOrStdout(), opts.format, run, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Run %s (tolerance %g)\n\n%s\n", run.RunID, run.Tolerance, run.Report.Summary())
				return err
			})
			if err != nil {
				return err
			}
			if !run.Report.AllPassed() {
				for _, c := range run.Report.Failed() {
					slog.Warn("check failed", "name", c.Name, "expected", c.Expected, "actual", c.Actual)
				}
				return errChecksFailed
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&tolerance, "tolerance",
		envFloatOrDefault("IVMCHECK_TOLERANCE", verify.DefaultTolerance), "Numeric tolerance for checks")
	cmd.Flags().StringArrayVar(&points, "point", nil, "Extra round-trip point as a,b,c,d (repeatable)")
	return cmd
}
