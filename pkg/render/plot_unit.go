package render

import (
	"math"

	"github.com/ruuda/luculentus/pkg/core"
	"github.com/ruuda/luculentus/pkg/spectral"
)

// PlotUnit converts the mapped photons produced by one or more TraceUnits
// into a buffer of CIE XYZ tristimulus values, grounded on
// original_source/PlotUnit.h/.cpp.
type PlotUnit struct {
	Width, Height int
	aspectRatio   float64

	tristimulus []core.Vec3
}

// NewPlotUnit creates a plot unit for a canvas of the given size.
func NewPlotUnit(width, height int) *PlotUnit {
	return &PlotUnit{
		Width:       width,
		Height:      height,
		aspectRatio: float64(width) / float64(height),
		tristimulus: make([]core.Vec3, width*height),
	}
}

// Tristimulus returns the accumulated CIE XYZ buffer, row-major, width*height.
func (p *PlotUnit) Tristimulus() []core.Vec3 {
	return p.tristimulus
}

// Clear resets the tristimulus buffer to black so the unit can be
// recycled for another batch of trace units.
func (p *PlotUnit) Clear() {
	for i := range p.tristimulus {
		p.tristimulus[i] = core.Vec3{}
	}
}

// Plot splats every mapped photon from unit into the tristimulus buffer.
func (p *PlotUnit) Plot(unit *TraceUnit) {
	for _, photon := range unit.MappedPhotons() {
		cie := spectral.Tristimulus(photon.Wavelength)
		p.plotPixel(photon.X, photon.Y, cie.Multiply(photon.Probability))
	}
}

// plotPixel bilinearly splats a single tristimulus sample into the four
// pixels nearest (x, y), adding to existing content. x is in [-1, 1] across
// the width and y in [-1/aspectRatio, 1/aspectRatio] across the height.
func (p *PlotUnit) plotPixel(x, y float64, cie core.Vec3) {
	px := (x*0.5 + 0.5) * float64(p.Width-1)
	py := (y*p.aspectRatio*0.5 + 0.5) * float64(p.Height-1)

	px1 := clampInt(int(math.Floor(px)), 0, p.Width-1)
	px2 := clampInt(int(math.Ceil(px)), 0, p.Width-1)
	py1 := clampInt(int(math.Floor(py)), 0, p.Height-1)
	py2 := clampInt(int(math.Ceil(py)), 0, p.Height-1)

	cx := px - float64(px1)
	cy := py - float64(py1)
	c11 := (1 - cx) * (1 - cy)
	c12 := (1 - cx) * cy
	c21 := cx * (1 - cy)
	c22 := cx * cy

	p.tristimulus[py1*p.Width+px1] = p.tristimulus[py1*p.Width+px1].Add(cie.Multiply(c11))
	p.tristimulus[py1*p.Width+px2] = p.tristimulus[py1*p.Width+px2].Add(cie.Multiply(c21))
	p.tristimulus[py2*p.Width+px1] = p.tristimulus[py2*p.Width+px1].Add(cie.Multiply(c12))
	p.tristimulus[py2*p.Width+px2] = p.tristimulus[py2*p.Width+px2].Add(cie.Multiply(c22))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
