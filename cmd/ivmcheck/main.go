// Command ivmcheck runs the IVM geometry verification suite and prints
// lattice, projection and Jitterbug diagnostics.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// Build information, set via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

const appName = "ivmcheck"

// errChecksFailed is returned by verify when the report has failures. The
// report itself has already been printed.
var errChecksFailed = errors.New("verification failed")

func main() {
	if err := rootCmd().Execute(); err != nil {
		if !errors.Is(err, errChecksFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// options are the flags shared by every subcommand.
type options struct {
	format   string
	logLevel string
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Quadray / IVM geometry diagnostics",
		Long: `ivmcheck exercises the Quadray coordinate system and the Isotropic
Vector Matrix constants.

Available commands:
  verify     - Run the geometric identity checks
  constants  - Print the synergetics constant catalogue
  grid       - Print IVM grid counts for a frequency
  neighbors  - List the 12 lattice neighbors of a cell
  project    - Project points to screen space in depth order
  axes       - Project the four basis axes
  jitterbug  - Print Jitterbug phases or volumes at given angles
  field      - Fill a lattice from a noise density field

Defaults for --format, --log-level, --tolerance and --seed can be set with
IVMCHECK_FORMAT, IVMCHECK_LOG_LEVEL, IVMCHECK_TOLERANCE and IVMCHECK_SEED.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			setupLogging(cmd.ErrOrStderr(), opts.logLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.format, "format", "f",
		envOrDefault("IVMCHECK_FORMAT", formatText), "Output format (text, json, yaml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level",
		envOrDefault("IVMCHECK_LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		verifyCmd(opts),
		constantsCmd(opts),
		gridCmd(opts),
		neighborsCmd(opts),
		projectCmd(opts),
		axesCmd(opts),
		jitterbugCmd(opts),
		fieldCmd(opts),
		versionCmd(opts),
	)
	return cmd
}

func setupLogging(w io.Writer, logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envIntOrDefault(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func envFloatOrDefault(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
