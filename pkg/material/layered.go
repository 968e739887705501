package material

import (
	"github.com/ruuda/luculentus/pkg/core"
	"github.com/ruuda/luculentus/pkg/entropy"
)

// Layered stacks two materials, an Outer coating over an Inner base,
// adapted from the teacher's pkg/material/layered.go composition idea to
// this package's probability-carrying ray model instead of an
// attenuation-carrying ScatterResult: light hits Outer first, and only
// continues on to Inner if Outer's scattered ray points back into the
// surface. The two materials' probabilities multiply, mirroring how
// original_source/Material.cpp's DiffuseGreyMaterial and
// DiffuseColouredMaterial chain probability factors from their base class.
type Layered struct {
	Outer scatterer
	Inner scatterer
}

// NewLayered creates a coating of outer over inner.
func NewLayered(outer, inner scatterer) *Layered {
	return &Layered{Outer: outer, Inner: inner}
}

// ScatterRay implements the material contract.
func (l *Layered) ScatterRay(incoming core.Ray, isect core.Intersection, src *entropy.Source) core.Ray {
	outerRay := l.Outer.ScatterRay(incoming, isect, src)

	pointsInward := outerRay.Direction.Dot(isect.Normal) < 0
	if !pointsInward {
		return outerRay
	}

	innerIncoming := core.Ray{
		Origin:      isect.Position,
		Direction:   outerRay.Direction,
		Wavelength:  incoming.Wavelength,
		Probability: 1.0,
	}
	innerRay := l.Inner.ScatterRay(innerIncoming, isect, src)
	innerRay.Probability *= outerRay.Probability

	return innerRay
}
