package render

import (
	"math"

	"github.com/ruuda/luculentus/pkg/spectral"
)

// TonemapUnit converts a GatherUnit's unweighted CIE XYZ buffer into a
// displayable sRGB byte image, grounded on
// original_source/TonemapUnit.h/.cpp.
type TonemapUnit struct {
	Width, Height int
	rgb           []byte // width*height*3, row-major
}

// NewTonemapUnit creates a tonemap unit for a canvas of the given size.
func NewTonemapUnit(width, height int) *TonemapUnit {
	return &TonemapUnit{Width: width, Height: height, rgb: make([]byte, width*height*3)}
}

// RGB returns the most recently tonemapped image, row-major, width*height*3.
func (t *TonemapUnit) RGB() []byte {
	return t.rgb
}

// Tonemap converts gather's tristimulus buffer to sRGB, using a
// logarithmic exposure curve anchored on an automatically estimated white
// point.
func (t *TonemapUnit) Tonemap(gather *GatherUnit) {
	maxIntensity := t.findExposure(gather)
	tristimulus := gather.Tristimulus()

	const logBase4 = 1.3862943611198906 // math.Log(4)

	for i, cie := range tristimulus {
		exposed := cie.Multiply(1.0 / maxIntensity)
		exposed.X = math.Log(exposed.X+1.0) / logBase4
		exposed.Y = math.Log(exposed.Y+1.0) / logBase4
		exposed.Z = math.Log(exposed.Z+1.0) / logBase4

		rgb := spectral.ToSRGB(exposed)

		t.rgb[i*3+0] = spectral.Quantize(rgb.X)
		t.rgb[i*3+1] = spectral.Quantize(rgb.Y)
		t.rgb[i*3+2] = spectral.Quantize(rgb.Z)
	}
}

// findExposure estimates the intensity that should map to (nearly) white:
// one standard deviation above the mean CIE Y value across the image.
func (t *TonemapUnit) findExposure(gather *GatherUnit) float64 {
	tristimulus := gather.Tristimulus()
	n := float64(len(tristimulus))
	if n == 0 {
		return 1
	}

	var sum, sumSquares float64
	for _, cie := range tristimulus {
		sum += cie.Y
		sumSquares += cie.Y * cie.Y
	}

	mean := sum / n
	variance := sumSquares/n - mean*mean
	if variance < 0 {
		variance = 0
	}

	exposure := mean + math.Sqrt(variance)
	if exposure <= 0 {
		return 1
	}
	return exposure
}
