package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/quadcraft/ivm/internal/synergetics"
)

func constantsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "Print the synergetics constant catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := synergetics.IVM()
			return render(cmd.OutOrStdout(), opts.format, c, func(w io.Writer) error {
				rows := []struct {
					name  string
					value any
				}{
					{"root2", c.Root2},
					{"s3", c.S3},
					{"tetrahedral_angle", c.TetrahedralAngle},
					{"basis_length", c.BasisLength},
					{"tetra_vol", c.TetraVol},
					{"octa_vol", c.OctaVol},
					{"cubo_vol", c.CuboVol},
					{"icosa_vol", c.IcosaVol},
					{"rhombic_dodeca_vol", c.RhombicDodecaVol},
					{"sphere_packing_density", c.SpherePackingDensity},
					{"kissing_number", c.KissingNumber},
					{"default_frequency", c.DefaultFrequency},
					{"d_over_r", c.DOverR},
					{"phi", c.Phi},
				}
				for _, r := range rows {
					if _, err := fmt.Fprintf(w, "%-24s %v\n", r.name, r.value); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

// jitterbugVolume is one sampled point of the Jitterbug approximation.
type jitterbugVolume struct {
	Angle  float64 `json:"angle" yaml:"angle"`
	Volume float64 `json:"volume" yaml:"volume"`
}

func jitterbugCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "jitterbug [angle...]",
		Short: "Print Jitterbug phases, or the volume at each angle in degrees",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				phases := synergetics.Phases()
				return render(w, opts.format, phases, func(w io.Writer) error {
					for _, p := range phases {
						if _, err := fmt.Fprintf(w, "%-20s %8.4f°  %10.6f\n", p.Name, p.Angle, p.Volume); err != nil {
							return err
						}
					}
					return nil
				})
			}

			angles, err := parseFloats(args)
			if err != nil {
				return err
			}
			vols := make([]jitterbugVolume, len(angles))
			for i, a := range angles {
				vols[i] = jitterbugVolume{Angle: a, Volume: synergetics.VolumeAtAngle(a)}
			}
			return render(w, opts.format, vols, func(w io.Writer) error {
				for _, v := range vols {
					if _, err := fmt.Fprintf(w, "%8.4f°  %10.6f\n", v.Angle, v.Volume); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

// buildInfo is the version record for json and yaml output.
type buildInfo struct {
	Name      string `json:"name" yaml:"name"`
	Version   string `json:"version" yaml:"version"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

func versionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := buildInfo{Name: appName, Version: Version, BuildTime: BuildTime, GoVersion: runtime.Version()}
			return render(cmd.OutOrStdout(), opts.format, info, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s version %s (build: %s)\n", info.Name, info.Version, info.BuildTime)
				return err
			})
		},
	}
}
