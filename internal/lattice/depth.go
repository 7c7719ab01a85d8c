package lattice

import (
	"cmp"
	"slices"

	"github.com/quadcraft/ivm/internal/projection"
	"github.com/quadcraft/ivm/internal/quadray"
)

// ProjectFunc maps a cell to its screen position and depth scale.
// projection.Camera.Project satisfies it.
type ProjectFunc func(q quadray.Quadray) projection.ScreenPoint

// DepthEntry is a cell with its screen position and sort depth.
type DepthEntry struct {
	Quadray quadray.Quadray `json:"quadray" yaml:"quadray"`
	PX      float64         `json:"px" yaml:"px"`
	PY      float64         `json:"py" yaml:"py"`
	PScale  float64         `json:"pscale" yaml:"pscale"`
}

// DepthSort orders cells for painter's-algorithm drawing, smallest depth
// first. The sort is stable, so equal depths keep their input order.
//
// With a nil project the depth is the component sum a+b+c+d and the screen
// position is (a-b, c-d). Otherwise project supplies both, and its Scale is
// the depth. The two orderings differ and callers pick one.
func DepthSort(cells []quadray.Quadray, project ProjectFunc) []DepthEntry {
	entries := make([]DepthEntry, len(cells))
	for i, q := range cells {
		if project != nil {
			p := project(q)
			entries[i] = DepthEntry{Quadray: q, PX: p.X, PY: p.Y, PScale: p.Scale}
			continue
		}
		entries[i] = DepthEntry{
			Quadray: q,
			PX:      q.A - q.B,
			PY:      q.C - q.D,
			PScale:  q.A + q.B + q.C + q.D,
		}
	}

	slices.SortStableFunc(entries, func(x, y DepthEntry) int {
		return cmp.Compare(x.PScale, y.PScale)
	})
	return entries
}
