package synergetics

import "log/slog"

// Grid is an IVM lattice of a given frequency. A frequency-f grid subdivides
// the unit tetrahedron into alternating tetrahedra and octahedra whose
// vertices all sit on integer Quadray coordinates.
type Grid struct {
	Frequency int `json:"frequency" yaml:"frequency"`
}

// NewGrid returns the grid at frequency f. Frequencies below 1 have no
// geometric meaning and are replaced by DefaultFrequency.
func NewGrid(f int) Grid {
	if f < 1 {
		slog.Debug("ivm grid frequency out of range, using default", "frequency", f, "default", DefaultFrequency)
		f = DefaultFrequency
	}
	return Grid{Frequency: f}
}

func (g Grid) freq() int {
	if g.Frequency < 1 {
		return DefaultFrequency
	}
	return g.Frequency
}

// VertexCount is (f+1)(f+2)(f+3)/6.
func (g Grid) VertexCount() int {
	f := g.freq()
	return (f + 1) * (f + 2) * (f + 3) / 6
}

// TetraCount is f³.
func (g Grid) TetraCount() int {
	f := g.freq()
	return f * f * f
}

// OctaCount is f(f-1)(f-2)/6 for f ≥ 3, and 0 below that.
func (g Grid) OctaCount() int {
	f := g.freq()
	if f < 3 {
		return 0
	}
	return f * (f - 1) * (f - 2) / 6
}

// EdgeLength is the edge of one cell in D units.
func (g Grid) EdgeLength() float64 {
	return 1 / float64(g.freq())
}

// VolumeTetra is the tetravolume of a single tetrahedral cell.
func (g Grid) VolumeTetra() float64 {
	e := g.EdgeLength()
	return e * e * e
}

// VolumeOcta is the tetravolume of a single octahedral cell.
func (g Grid) VolumeOcta() float64 {
	return OctaVol * g.VolumeTetra()
}
