package render

import "github.com/ruuda/luculentus/pkg/core"

// GatherUnit accumulates the tristimulus buffers of multiple PlotUnits
// into a single running total, grounded on
// original_source/GatherUnit.h/.cpp.
type GatherUnit struct {
	Width, Height int
	tristimulus   []core.Vec3
}

// NewGatherUnit creates a gather unit for a canvas of the given size.
func NewGatherUnit(width, height int) *GatherUnit {
	return &GatherUnit{Width: width, Height: height, tristimulus: make([]core.Vec3, width*height)}
}

// Tristimulus returns the accumulated CIE XYZ buffer, row-major, width*height.
func (g *GatherUnit) Tristimulus() []core.Vec3 {
	return g.tristimulus
}

// Accumulate adds unit's tristimulus buffer into the running total, then
// clears unit so it can be recycled.
func (g *GatherUnit) Accumulate(unit *PlotUnit) {
	src := unit.Tristimulus()
	for i := range g.tristimulus {
		g.tristimulus[i] = g.tristimulus[i].Add(src[i])
	}
	unit.Clear()
}
