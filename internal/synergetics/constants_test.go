package synergetics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogueValues(t *testing.T) {
	c := IVM()

	assert.InDelta(t, 1.4142135623730951, c.Root2, 1e-15)
	assert.InDelta(t, 1.0606601717798212, c.S3, 1e-15)
	assert.InDelta(t, 0.7071067811865476, c.BasisLength, 1e-15)
	assert.InDelta(t, 0.7404804896930610, c.SpherePackingDensity, 1e-12)
	assert.InDelta(t, 1.6180339887498948, c.Phi, 1e-15)
	assert.Equal(t, 109.4712, c.TetrahedralAngle)
	assert.Equal(t, 18.512296, c.IcosaVol)
	assert.Equal(t, 2.0, c.DOverR)
	assert.Equal(t, 12, c.KissingNumber)
	assert.Equal(t, 6, c.RhombicDodecaVol)
	assert.Equal(t, 1, c.DefaultFrequency)
}

func TestVolumeRatiosAreExactIntegers(t *testing.T) {
	c := IVM()
	assert.Equal(t, 1, c.TetraVol)
	assert.Equal(t, 4, c.OctaVol/c.TetraVol)
	assert.Equal(t, 20, c.CuboVol/c.TetraVol)
}

func TestIVMReturnsCopy(t *testing.T) {
	c := IVM()
	c.S3 = 0
	c.OctaVol = 5
	assert.Equal(t, S3, IVM().S3)
	assert.Equal(t, OctaVol, IVM().OctaVol)
}

func TestVolumeConversionsInvert(t *testing.T) {
	c := IVM()
	for _, v := range []float64{0, 1, 4, 20, 18.512296, 1e-6, 12345.678, -3.5} {
		assert.InDelta(t, v, VolumeIVMToXYZ(VolumeXYZToIVM(v)), 1e-9, "v=%v", v)
		assert.InDelta(t, v, VolumeXYZToIVM(VolumeIVMToXYZ(v)), 1e-9, "v=%v", v)
		assert.InDelta(t, v, c.VolumeIVMToXYZ(c.VolumeXYZToIVM(v)), 1e-9, "v=%v", v)
	}
	assert.InDelta(t, math.Sqrt(9.0/8.0), VolumeXYZToIVM(1), 1e-15)
}

func TestClosedFormConstants(t *testing.T) {
	assert.InDelta(t, math.Sqrt(9.0/8.0), S3, 1e-15)
	assert.InDelta(t, math.Pi/(3*math.Sqrt(2)), SpherePackingDensity, 1e-15)
	assert.InDelta(t, (1+math.Sqrt(5))/2, Phi, 1e-15)
}

func TestConversionPathsAgree(t *testing.T) {
	c := IVM()
	for _, v := range []float64{1, 4, 20, 0.125} {
		assert.Equal(t, VolumeXYZToIVM(v), c.VolumeXYZToIVM(v), "v=%v", v)
		assert.Equal(t, VolumeIVMToXYZ(v), c.VolumeIVMToXYZ(v), "v=%v", v)
	}
}
