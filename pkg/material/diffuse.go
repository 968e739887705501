package material

import (
	"math"

	"github.com/ruuda/luculentus/pkg/core"
	"github.com/ruuda/luculentus/pkg/entropy"
)

// Diffuse is a perfectly Lambertian scatterer, grounded on
// original_source/Material.cpp's ClayMaterial / DiffuseGreyMaterial /
// DiffuseColouredMaterial hierarchy collapsed into a single type:
// Reflectance plays the role of DiffuseGreyMaterial's reflectance (1.0
// recovers the perfectly white ClayMaterial), and a nonzero Deviation adds
// DiffuseColouredMaterial's per-wavelength Gaussian response on top.
//
// Both factors apply to the outgoing ray's probability by successive
// multiplication, exactly as the C++ base-class chain does — a coloured
// diffuse surface is graphically "grey reflectance, then spectral tint",
// not a single combined factor. With a nonzero Deviation, Reflectance is
// applied twice: once as the grey factor and once more together with the
// spectral tint, as in that chain.
type Diffuse struct {
	Reflectance      float64
	WavelengthCenter float64 // centre of the reflectance peak, nm
	Deviation        float64 // 0 disables the spectral tint entirely
}

// NewDiffuse creates a grey diffuse material with the given reflectance.
func NewDiffuse(reflectance float64) *Diffuse {
	return &Diffuse{Reflectance: reflectance}
}

// NewColouredDiffuse creates a diffuse material that preferentially
// reflects wavelengths near center, with the given standard deviation.
func NewColouredDiffuse(reflectance, center, deviation float64) *Diffuse {
	return &Diffuse{Reflectance: reflectance, WavelengthCenter: center, Deviation: deviation}
}

// ScatterRay implements the material contract.
func (d *Diffuse) ScatterRay(incoming core.Ray, isect core.Intersection, src *entropy.Source) core.Ray {
	direction := src.CosineHemisphereVector()

	// The sampled direction assumes the surface normal points along +z; it
	// must be rotated to whichever side of the surface the incoming ray
	// arrived from.
	facing := isect.Normal
	if incoming.Direction.Dot(isect.Normal) >= 0 {
		facing = isect.Normal.Negate()
	}
	direction = direction.RotateTowards(facing)

	newRay := core.Ray{
		Origin:      isect.Position,
		Direction:   direction,
		Wavelength:  incoming.Wavelength,
		Probability: d.Reflectance,
	}

	if d.Deviation > 0 {
		p := (d.WavelengthCenter - incoming.Wavelength) / d.Deviation
		newRay.Probability *= d.Reflectance * math.Exp(-0.5*p*p)
	}

	return newRay
}
