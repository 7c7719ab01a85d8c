package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/quadcraft/ivm/internal/lattice"
	"github.com/quadcraft/ivm/internal/projection"
)

// cameraFlags binds the projection parameters to cmd. Rotations are taken in
// degrees.
func cameraFlags(cmd *cobra.Command) func() projection.Camera {
	cam := projection.DefaultCamera()
	var rotX, rotY float64

	f := cmd.Flags()
	f.Float64Var(&rotX, "rot-x", 0, "Rotation about X, degrees")
	f.Float64Var(&rotY, "rot-y", 0, "Rotation about Y, degrees")
	f.Float64Var(&cam.Scale, "scale", cam.Scale, "Pixels per Cartesian unit")
	f.Float64Var(&cam.CameraDist, "camera-dist", cam.CameraDist, "Camera distance")
	f.Float64Var(&cam.CenterX, "center-x", cam.CenterX, "Screen center X")
	f.Float64Var(&cam.CenterY, "center-y", cam.CenterY, "Screen center Y")

	return func() projection.Camera {
		c := cam
		c.RotX = rotX * math.Pi / 180
		c.RotY = rotY * math.Pi / 180
		return c
	}
}

func projectCmd(opts *options) *cobra.Command {
	var (
		gridSize  int
		heuristic bool
		camera    func() projection.Camera
	)

	cmd := &cobra.Command{
		Use:   "project [a,b,c,d...]",
		Short: "Project points to screen space in depth order",
		Long: `Project Quadray points, plus every cell of a --grid size⁴ lattice, and
print them back to front. --heuristic orders by component sum instead of
projecting through the camera.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cells, err := parseQuadrays(args)
			if err != nil {
				return err
			}
			cells = append(cells, lattice.GenerateGrid(gridSize)...)
			if len(cells) == 0 {
				return fmt.Errorf("nothing to project: give points or --grid")
			}

			var project lattice.ProjectFunc
			if !heuristic {
				project = camera().Project
			}
			entries := lattice.DepthSort(cells, project)
			slog.Debug("projected cells", "count", humanize.Comma(int64(len(entries))), "heuristic", heuristic)

			return render(cmd.OutOrStdout(), opts.format, entries, func(w io.Writer) error {
				for _, e := range entries {
					if _, err := fmt.Fprintf(w, "%-26v x=%9.3f y=%9.3f depth=%.4f\n", e.Quadray, e.PX, e.PY, e.PScale); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	camera = cameraFlags(cmd)

	cmd.Flags().IntVar(&gridSize, "grid", 0, "Also project every cell of a size⁴ grid")
	cmd.Flags().BoolVar(&heuristic, "heuristic", false, "Order by component sum instead of the camera")
	return cmd
}

func axesCmd(opts *options) *cobra.Command {
	var (
		length float64
		camera func() projection.Camera
	)

	cmd := &cobra.Command{
		Use:   "axes",
		Short: "Project the four basis axes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			axes := projection.BasisAxes(camera(), length)
			return render(cmd.OutOrStdout(), opts.format, axes, func(w io.Writer) error {
				for _, a := range axes {
					if _, err := fmt.Fprintf(w, "%s %s (%.2f, %.2f) -> (%.2f, %.2f)\n",
						a.Label, a.Color, a.Origin.X, a.Origin.Y, a.Tip.X, a.Tip.Y); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	camera = cameraFlags(cmd)

	cmd.Flags().Float64Var(&length, "length", projection.DefaultAxisLength, "Axis length in Quadray units")
	return cmd
}
