package projection

import "github.com/quadcraft/ivm/internal/quadray"

// Camera holds the view parameters shared by every projection in a frame.
type Camera struct {
	RotX       float64 `json:"rot_x" yaml:"rot_x"`             // Radians
	RotY       float64 `json:"rot_y" yaml:"rot_y"`             // Radians
	Scale      float64 `json:"scale" yaml:"scale"`             // Pixels per Cartesian unit
	CameraDist float64 `json:"camera_dist" yaml:"camera_dist"` // Eye distance along z
	CenterX    float64 `json:"center_x" yaml:"center_x"`
	CenterY    float64 `json:"center_y" yaml:"center_y"`
}

// DefaultCamera returns an unrotated 600×600 view.
func DefaultCamera() Camera {
	return Camera{
		Scale:      35,
		CameraDist: 5,
		CenterX:    300,
		CenterY:    300,
	}
}

// Project projects q with this camera.
func (c Camera) Project(q quadray.Quadray) ScreenPoint {
	return ProjectQuadray(q, c.RotX, c.RotY, c.Scale, c.CameraDist, c.CenterX, c.CenterY)
}

// DefaultAxisLength is how far along each basis vector BasisAxes reaches.
const DefaultAxisLength = 2.0

// Axis is one projected basis axis for a diagnostic overlay.
type Axis struct {
	Label  string      `json:"label" yaml:"label"`
	Color  string      `json:"color" yaml:"color"`
	Origin ScreenPoint `json:"origin" yaml:"origin"`
	Tip    ScreenPoint `json:"tip" yaml:"tip"`
}

var axisDefs = [4]struct {
	label string
	color string
}{
	{"A", "#ff4444"}, // red
	{"B", "#44ff44"}, // green
	{"C", "#4444ff"}, // blue
	{"D", "#ffaa00"}, // orange
}

// BasisAxes projects the origin and a point axisLen along each basis vector.
func BasisAxes(c Camera, axisLen float64) [4]Axis {
	origin := c.Project(quadray.Quadray{})
	basis := quadray.Basis()

	var axes [4]Axis
	for i, def := range axisDefs {
		axes[i] = Axis{
			Label:  def.label,
			Color:  def.color,
			Origin: origin,
			Tip:    c.Project(basis[i].Scale(axisLen)),
		}
	}
	return axes
}
