package spectral

import (
	"math"

	"github.com/ruuda/luculentus/pkg/core"
)

// ToLinearSRGB applies the CIE XYZ → linear sRGB matrix transform, from
// original_source/SRgb.cpp.
func ToLinearSRGB(xyz core.Vec3) core.Vec3 {
	return core.Vec3{
		X: 3.2406*xyz.X - 1.5372*xyz.Y - 0.4986*xyz.Z,
		Y: -0.9689*xyz.X + 1.8758*xyz.Y + 0.0415*xyz.Z,
		Z: 0.0557*xyz.X - 0.2040*xyz.Y + 1.0570*xyz.Z,
	}
}

// GammaEncode applies the sRGB transfer function to a single linear
// component.
func GammaEncode(u float64) float64 {
	if u <= 0.0031308 {
		return 12.92 * u
	}
	return 1.055*math.Pow(u, 1.0/2.4) - 0.055
}

// ToSRGB converts linear XYZ to gamma-encoded sRGB, component-wise.
func ToSRGB(xyz core.Vec3) core.Vec3 {
	linear := ToLinearSRGB(xyz)
	return core.Vec3{
		X: GammaEncode(linear.X),
		Y: GammaEncode(linear.Y),
		Z: GammaEncode(linear.Z),
	}
}

// Quantize clamps u to [0, 1] and scales to a saturating byte, matching
// the source's floor(u*255) with implicit clamp.
func Quantize(u float64) uint8 {
	if u <= 0 {
		return 0
	}
	if u >= 1 {
		return 255
	}
	return uint8(u * 255)
}
