package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/quadcraft/ivm/internal/entropy"
	"github.com/quadcraft/ivm/internal/geometry"
	"github.com/quadcraft/ivm/internal/lattice"
	"github.com/quadcraft/ivm/internal/quadray"
	"github.com/quadcraft/ivm/internal/synergetics"
)

// gridStats summarizes an IVM grid of one frequency.
type gridStats struct {
	Frequency   int     `json:"frequency" yaml:"frequency"`
	VertexCount int     `json:"vertex_count" yaml:"vertex_count"`
	TetraCount  int     `json:"tetra_count" yaml:"tetra_count"`
	OctaCount   int     `json:"octa_count" yaml:"octa_count"`
	EdgeLength  float64 `json:"edge_length" yaml:"edge_length"`
	VolumeTetra float64 `json:"volume_tetra" yaml:"volume_tetra"`
	VolumeOcta  float64 `json:"volume_octa" yaml:"volume_octa"`
}

func gridCmd(opts *options) *cobra.Command {
	var frequency int

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print IVM grid counts for a frequency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := synergetics.NewGrid(frequency)
			stats := gridStats{
				Frequency:   g.Frequency,
				VertexCount: g.VertexCount(),
				TetraCount:  g.TetraCount(),
				OctaCount:   g.OctaCount(),
				EdgeLength:  g.EdgeLength(),
				VolumeTetra: g.VolumeTetra(),
				VolumeOcta:  g.VolumeOcta(),
			}
			return render(cmd.OutOrStdout(), opts.format, stats, func(w io.Writer) error {
				_, err := fmt.Fprintf(w,
					"frequency     %d\nvertices      %s\ntetrahedra    %s\noctahedra     %s\nedge length   %.6f\ntetra volume  %.6f\nocta volume   %.6f\n",
					stats.Frequency,
					humanize.Comma(int64(stats.VertexCount)),
					humanize.Comma(int64(stats.TetraCount)),
					humanize.Comma(int64(stats.OctaCount)),
					stats.EdgeLength, stats.VolumeTetra, stats.VolumeOcta,
				)
				return err
			})
		},
	}

	cmd.Flags().IntVar(&frequency, "frequency", synergetics.DefaultFrequency, "Grid frequency (edge subdivisions)")
	return cmd
}

// neighbor is one adjacent cell and its distance from the center.
type neighbor struct {
	Key      quadray.Key `json:"key" yaml:"key"`
	Distance float64     `json:"distance" yaml:"distance"`
}

func neighborsCmd(opts *options) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "neighbors a,b,c,d",
		Short: "List the 12 lattice neighbors of a cell",
		Long: `List the 12 lattice neighbors of an integer cell. With --size, only
neighbors inside the size⁴ grid are listed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := quadray.ParseKey(args[0])
			if err != nil {
				return err
			}

			var cells []quadray.Quadray
			if size > 0 {
				cells = lattice.BoundedNeighbors(k.A, k.B, k.C, k.D, size)
			} else {
				cells = lattice.Neighbors(k.A, k.B, k.C, k.D)
			}

			center := k.Quadray()
			out := make([]neighbor, len(cells))
			for i, q := range cells {
				out[i] = neighbor{Key: q.Key(), Distance: geometry.Distance(center, q)}
			}
			return render(cmd.OutOrStdout(), opts.format, out, func(w io.Writer) error {
				for _, n := range out {
					if _, err := fmt.Fprintf(w, "%-12s %.4f\n", n.Key, n.Distance); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&size, "size", 0, "Grid size bound (0 for unbounded)")
	return cmd
}

// fieldSample is one density reading at a cell.
type fieldSample struct {
	Key     quadray.Key `json:"key" yaml:"key"`
	Density float64     `json:"density" yaml:"density"`
}

// fieldFill is the result of filling a grid from a density field.
type fieldFill struct {
	Config    lattice.FieldConfig `json:"config" yaml:"config"`
	Size      int                 `json:"size" yaml:"size"`
	Threshold float64             `json:"threshold" yaml:"threshold"`
	Cells     int                 `json:"cells" yaml:"cells"`
	Solid     []quadray.Key       `json:"solid" yaml:"solid"`
}

func fieldCmd(opts *options) *cobra.Command {
	var (
		size      int
		threshold float64
		samples   int
	)
	cfg := lattice.DefaultFieldConfig()
	seed := envIntOrDefault("IVMCHECK_SEED", int(cfg.Seed))

	cmd := &cobra.Command{
		Use:   "field",
		Short: "Fill a lattice from a noise density field",
		Long: `Sample an OpenSimplex density field at every cell of a size⁴ grid and
list the cells at or above --threshold. With --samples N, instead read the
density at N cells drawn from the seeded source.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 {
				return fmt.Errorf("size must be positive, got %d", size)
			}
			cfg.Seed = int64(seed)
			field := lattice.NewField(cfg)
			w := cmd.OutOrStdout()

			if samples > 0 {
				src := entropy.NewSeeded(cfg.Seed)
				out := make([]fieldSample, samples)
				for i := range out {
					q := lattice.RandomCoord(size, src)
					out[i] = fieldSample{Key: q.Key(), Density: field.Sample(q)}
				}
				return render(w, opts.format, out, func(w io.Writer) error {
					for _, s := range out {
						if _, err := fmt.Fprintf(w, "%-12s %.4f\n", s.Key, s.Density); err != nil {
							return err
						}
					}
					return nil
				})
			}

			solid := field.Solid(size, threshold)
			fill := fieldFill{
				Config:    field.Config(),
				Size:      size,
				Threshold: threshold,
				Cells:     size * size * size * size,
				Solid:     make([]quadray.Key, len(solid)),
			}
			for i, q := range solid {
				fill.Solid[i] = q.Key()
			}
			slog.Debug("field filled", "seed", cfg.Seed, "solid", len(fill.Solid))

			return render(w, opts.format, fill, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "solid cells: %s of %s (threshold %.2f, seed %d)\n",
					humanize.Comma(int64(len(fill.Solid))), humanize.Comma(int64(fill.Cells)),
					fill.Threshold, fill.Config.Seed)
				if err != nil {
					return err
				}
				for _, k := range fill.Solid {
					if _, err := fmt.Fprintln(w, k); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.IntVar(&size, "size", 4, "Grid size (cells per axis)")
	f.Float64Var(&threshold, "threshold", 0.5, "Minimum density for a solid cell")
	f.IntVar(&samples, "samples", 0, "Sample N random cells instead of filling the grid")
	f.IntVar(&seed, "seed", seed, "Noise and sampling seed")
	f.IntVar(&cfg.Octaves, "octaves", cfg.Octaves, "Noise octaves")
	f.Float64Var(&cfg.Frequency, "frequency", cfg.Frequency, "Base noise frequency")
	f.Float64Var(&cfg.Persistence, "persistence", cfg.Persistence, "Amplitude falloff per octave")
	return cmd
}
