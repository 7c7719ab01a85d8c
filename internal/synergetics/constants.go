// Package synergetics provides the Isotropic Vector Matrix constant catalogue:
// tetrahedral geometry, tetravolume ratios, sphere packing, the IVM frequency
// grid, and the Jitterbug transform. Every value derives from literals or
// closed-form math and is fixed for the life of the process.
package synergetics

import "math"

// Root2 is √2.
const Root2 = math.Sqrt2

// Tetrahedral geometry.
const (
	// TetrahedralAngle is the angle in degrees between any two Quadray basis vectors.
	TetrahedralAngle = 109.4712

	// BasisLength is the Quadray length of each basis vector (1/√2).
	BasisLength = 1 / math.Sqrt2
)

// Volume ratios in tetravolumes (unit regular tetrahedron = 1).
const (
	TetraVol         = 1  // Tetrahedron
	OctaVol          = 4  // Octahedron
	CuboVol          = 20 // Cuboctahedron (vector equilibrium)
	RhombicDodecaVol = 6  // Space-filling partner of the VE

	// IcosaVol is the icosahedron, ~5√2·φ².
	IcosaVol = 18.512296
)

// Sphere packing.
const (
	// KissingNumber is the count of equal spheres touching one sphere in FCC/HCP.
	KissingNumber = 12

	// DOverR is the diameter-to-radius ratio used for IVM edge units.
	DOverR = 2.0

	// DefaultFrequency is the unit-edge tetrahedron.
	DefaultFrequency = 1
)

// Closed-form constants.
const (
	// S3 converts Cartesian (cubic) volume to tetravolume: √(9/8) = 3/(2√2) ≈ 1.0607.
	S3 = 3 / (2 * math.Sqrt2)

	// SpherePackingDensity is π/(3√2) ≈ 0.7405, the FCC packing fraction.
	SpherePackingDensity = math.Pi / (3 * math.Sqrt2)

	// Phi is the golden ratio, (1+√5)/2. Relevant to the icosahedron.
	Phi = math.Phi
)

// Constants is a snapshot of the catalogue as one record.
type Constants struct {
	Root2                float64 `json:"root2" yaml:"root2"`
	S3                   float64 `json:"s3" yaml:"s3"`
	TetrahedralAngle     float64 `json:"tetrahedral_angle" yaml:"tetrahedral_angle"`
	BasisLength          float64 `json:"basis_length" yaml:"basis_length"`
	TetraVol             int     `json:"tetra_vol" yaml:"tetra_vol"`
	OctaVol              int     `json:"octa_vol" yaml:"octa_vol"`
	CuboVol              int     `json:"cubo_vol" yaml:"cubo_vol"`
	IcosaVol             float64 `json:"icosa_vol" yaml:"icosa_vol"`
	RhombicDodecaVol     int     `json:"rhombic_dodeca_vol" yaml:"rhombic_dodeca_vol"`
	SpherePackingDensity float64 `json:"sphere_packing_density" yaml:"sphere_packing_density"`
	KissingNumber        int     `json:"kissing_number" yaml:"kissing_number"`
	DefaultFrequency     int     `json:"default_frequency" yaml:"default_frequency"`
	DOverR               float64 `json:"d_over_r" yaml:"d_over_r"`
	Phi                  float64 `json:"phi" yaml:"phi"`
}

var ivm = Constants{
	Root2:                Root2,
	S3:                   S3,
	TetrahedralAngle:     TetrahedralAngle,
	BasisLength:          BasisLength,
	TetraVol:             TetraVol,
	OctaVol:              OctaVol,
	CuboVol:              CuboVol,
	IcosaVol:             IcosaVol,
	RhombicDodecaVol:     RhombicDodecaVol,
	SpherePackingDensity: SpherePackingDensity,
	KissingNumber:        KissingNumber,
	DefaultFrequency:     DefaultFrequency,
	DOverR:               DOverR,
	Phi:                  Phi,
}

// IVM returns the process-wide constant catalogue. The result is a copy;
// changing it does not affect other callers.
func IVM() Constants {
	return ivm
}

// VolumeXYZToIVM converts a cubic volume to tetravolumes using c.S3.
func (c Constants) VolumeXYZToIVM(v float64) float64 {
	return v * c.S3
}

// VolumeIVMToXYZ converts tetravolumes to a cubic volume using c.S3.
func (c Constants) VolumeIVMToXYZ(v float64) float64 {
	return v / c.S3
}

// VolumeXYZToIVM converts a cubic volume to tetravolumes.
func VolumeXYZToIVM(v float64) float64 {
	return v * S3
}

// VolumeIVMToXYZ converts tetravolumes to a cubic volume.
func VolumeIVMToXYZ(v float64) float64 {
	return v / S3
}
