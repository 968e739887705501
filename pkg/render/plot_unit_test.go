package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ruuda/luculentus/pkg/core"
	"github.com/ruuda/luculentus/pkg/spectral"
)

func TestPlotUnit_Plot_ConservesEnergy(t *testing.T) {
	pu := NewPlotUnit(8, 8)
	tu := &TraceUnit{mappedPhotons: []MappedPhoton{
		{X: 0, Y: 0, Probability: 1, Wavelength: 550},
	}}

	pu.Plot(tu)

	var total core.Vec3
	for _, c := range pu.Tristimulus() {
		total = total.Add(c)
	}

	expected := spectral.Tristimulus(550)
	assert.InDelta(t, expected.X, total.X, 1e-9, "bilinear splat must conserve total energy")
	assert.InDelta(t, expected.Y, total.Y, 1e-9)
	assert.InDelta(t, expected.Z, total.Z, 1e-9)
}

func TestPlotUnit_Clear_ZeroesBuffer(t *testing.T) {
	pu := NewPlotUnit(4, 4)
	tu := &TraceUnit{mappedPhotons: []MappedPhoton{
		{X: 0.5, Y: -0.5, Probability: 1, Wavelength: 500},
	}}
	pu.Plot(tu)
	pu.Clear()

	for _, c := range pu.Tristimulus() {
		assert.True(t, c.IsZero())
	}
}

func TestPlotUnit_Plot_OffScreenPhotonDoesNotPanic(t *testing.T) {
	pu := NewPlotUnit(4, 4)
	tu := &TraceUnit{mappedPhotons: []MappedPhoton{
		{X: 50, Y: -50, Probability: 1, Wavelength: 500},
	}}

	assert.NotPanics(t, func() { pu.Plot(tu) })
}
