package synergetics

// Phase is one named state of the Jitterbug transform.
type Phase struct {
	Name   string  `json:"name" yaml:"name"`
	Angle  float64 `json:"angle" yaml:"angle"`   // Face rotation, degrees
	Volume float64 `json:"volume" yaml:"volume"` // Tetravolumes
}

// The three canonical Jitterbug phases, from fully open to fully closed.
var (
	PhaseVE    = Phase{Name: "VE (Cuboctahedron)", Angle: 0, Volume: CuboVol}
	PhaseIcosa = Phase{Name: "Icosahedron", Angle: 10.8123, Volume: IcosaVol}
	PhaseOcta  = Phase{Name: "Octahedron", Angle: 30, Volume: OctaVol}
)

// Phases returns the VE, icosahedron and octahedron phases in order.
func Phases() [3]Phase {
	return [3]Phase{PhaseVE, PhaseIcosa, PhaseOcta}
}

// VolumeAtAngle approximates the Jitterbug volume at a face rotation of theta
// degrees by linear interpolation VE → icosahedron → octahedron.
//
// Fuller's physical transform is not linear in angle; this is only exact at
// the three phase points.
func VolumeAtAngle(theta float64) float64 {
	switch {
	case theta <= PhaseVE.Angle:
		return PhaseVE.Volume
	case theta >= PhaseOcta.Angle:
		return PhaseOcta.Volume
	case theta <= PhaseIcosa.Angle:
		return lerpPhase(PhaseVE, PhaseIcosa, theta)
	default:
		return lerpPhase(PhaseIcosa, PhaseOcta, theta)
	}
}

func lerpPhase(from, to Phase, theta float64) float64 {
	t := (theta - from.Angle) / (to.Angle - from.Angle)
	return from.Volume + t*(to.Volume-from.Volume)
}
