package material

import (
	"github.com/ruuda/luculentus/pkg/core"
	"github.com/ruuda/luculentus/pkg/entropy"
)

// Mirror is a specular reflector, grounded on original_source/Material.cpp's
// PerfectMirrorMaterial / GlossyMirrorMaterial / BrushedMetalMaterial,
// collapsed into one type parameterised by glossiness and anisotropy.
// Glossiness 0 recovers a perfect mirror; Anisotropy only has an effect
// when Glossiness > 0, and scales down the diffuse lobe's component along
// the tangent to model a brushed-metal look.
type Mirror struct {
	Glossiness float64 // 0 = perfect mirror, 1 = fully diffuse
	Anisotropy float64 // 0 = isotropic blur, 1 = no blur along the tangent
}

// NewMirror creates a perfect mirror.
func NewMirror() *Mirror {
	return &Mirror{}
}

// NewGlossyMirror creates a mirror blended with a diffuse lobe.
func NewGlossyMirror(glossiness float64) *Mirror {
	return &Mirror{Glossiness: glossiness}
}

// NewBrushedMetal creates a glossy mirror whose diffuse lobe is squeezed
// anisotropically: its component along the surface tangent is reduced by
// anisotropy.
func NewBrushedMetal(glossiness, anisotropy float64) *Mirror {
	return &Mirror{Glossiness: glossiness, Anisotropy: anisotropy}
}

// ScatterRay implements the material contract.
func (m *Mirror) ScatterRay(incoming core.Ray, isect core.Intersection, src *entropy.Source) core.Ray {
	reflection := incoming.Direction.Reflect(isect.Normal)

	direction := reflection
	if m.Glossiness > 0 {
		diffuse := src.CosineHemisphereVector()

		facing := isect.Normal
		if incoming.Direction.Dot(isect.Normal) >= 0 {
			facing = isect.Normal.Negate()
		}
		diffuse = diffuse.RotateTowards(facing)

		if m.Anisotropy > 0 {
			tangential := diffuse.Dot(isect.Tangent)
			diffuse = diffuse.Subtract(isect.Tangent.Multiply(tangential * m.Anisotropy)).Normalize()
		}

		direction = diffuse.Multiply(m.Glossiness).Add(reflection.Multiply(1 - m.Glossiness)).Normalize()
	}

	return core.Ray{
		Origin:      isect.Position,
		Direction:   direction,
		Wavelength:  incoming.Wavelength,
		Probability: 1.0,
	}
}
