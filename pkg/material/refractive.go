package material

import (
	"math"

	"github.com/ruuda/luculentus/pkg/core"
	"github.com/ruuda/luculentus/pkg/entropy"
)

// Refractive is a dielectric that bends or, under total internal
// reflection, reflects the ray, grounded on
// original_source/Material.cpp's RefractiveMaterial::GetNewRay. Dispersion
// (the index of refraction varying with wavelength) is delegated to
// IndexOfRefraction, following RefractiveMaterial's own split into
// Bk7GlassMaterial and Sf10GlassMaterial subclasses.
type Refractive struct {
	IndexOfRefraction func(wavelength float64) float64
}

// NewRefractive creates a refractive material with a fixed index of
// refraction, independent of wavelength.
func NewRefractive(index float64) *Refractive {
	return &Refractive{IndexOfRefraction: func(float64) float64 { return index }}
}

// bk7IndexOfRefraction is BK7 glass's Sellmeier dispersion curve, from
// http://refractiveindex.info/?group=GLASSES&material=BK7 as reproduced in
// original_source/Material.cpp.
func bk7IndexOfRefraction(wavelength float64) float64 {
	w2 := wavelength * wavelength * 1.0e-6
	return math.Sqrt(1.0 +
		1.03961212*w2/(w2-0.00600069867) +
		0.231792344*w2/(w2-0.0200179144) +
		1.01046945*w2/(w2-103.560653))
}

// sf10IndexOfRefraction is the Sellmeier dispersion curve used for the SF10
// material; its coefficients are those of SF11 glass, from
// http://refractiveindex.info/?group=GLASSES&material=SF11 as reproduced in
// original_source/Material.cpp.
func sf10IndexOfRefraction(wavelength float64) float64 {
	w2 := wavelength * wavelength * 1.0e-6
	return math.Sqrt(1.0 +
		1.73759695*w2/(w2-0.013188707) +
		0.313747346*w2/(w2-0.0623068142) +
		1.89878101*w2/(w2-155.23629))
}

// NewBk7Glass creates a refractive material with BK7 crown glass dispersion.
func NewBk7Glass() *Refractive {
	return &Refractive{IndexOfRefraction: bk7IndexOfRefraction}
}

// NewSf10Glass creates a refractive material with flint glass dispersion
// (SF11 coefficients, see sf10IndexOfRefraction) — noticeably more
// chromatic spread than BK7.
func NewSf10Glass() *Refractive {
	return &Refractive{IndexOfRefraction: sf10IndexOfRefraction}
}

// ScatterRay implements the material contract.
func (r *Refractive) ScatterRay(incoming core.Ray, isect core.Intersection, src *entropy.Source) core.Ray {
	cosI := -incoming.Direction.Dot(isect.Normal)

	index := r.IndexOfRefraction(incoming.Wavelength)
	normal := isect.Normal

	if cosI > 0 {
		// Entering the material: air (1.0) to glass.
		index = 1.0 / index
	} else {
		// Leaving the material: the formula assumes the normal faces the
		// incident ray, so flip it.
		normal = isect.Normal.Negate()
		cosI = -cosI
	}

	sinThetaSquared := index * index * (1.0 - cosI*cosI)

	var direction core.Vec3
	if sinThetaSquared > 1.0 {
		// Total internal reflection.
		direction = incoming.Direction.Reflect(isect.Normal)
	} else {
		cosT := math.Sqrt(1.0 - sinThetaSquared)
		direction = incoming.Direction.Multiply(index).Add(normal.Multiply(index*cosI - cosT))
	}

	return core.Ray{
		Origin:      isect.Position,
		Direction:   direction,
		Wavelength:  incoming.Wavelength,
		Probability: 1.0,
	}
}
