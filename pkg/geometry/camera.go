package geometry

import (
	"math"

	"github.com/ruuda/luculentus/pkg/core"
	"github.com/ruuda/luculentus/pkg/entropy"
)

// Camera constructs primary rays, grounded on original_source/Camera.cpp:
// a pinhole projection perturbed by a random lens sample for depth of
// field, with a wavelength-dependent zoom factor standing in for
// chromatic aberration.
type Camera struct {
	Position            core.Vec3
	FieldOfView         float64 // horizontal, radians
	FocalDistance       float64
	DepthOfField        float64 // larger = sharper; see screenRay
	ChromaticAberration float64
	Orientation         core.Quaternion
}

// NewCamera creates a camera looking along its orientation's forward
// direction from position.
func NewCamera(position core.Vec3, fieldOfView, focalDistance, depthOfField, chromaticAberration float64, orientation core.Quaternion) *Camera {
	return &Camera{
		Position:            position,
		FieldOfView:         fieldOfView,
		FocalDistance:       focalDistance,
		DepthOfField:        depthOfField,
		ChromaticAberration: chromaticAberration,
		Orientation:         orientation,
	}
}

// screenRay builds a ray through the virtual screen at (x, y), where x runs
// from -1 (left) to 1 (right) and y from negative (top) to positive
// (bottom), before the lens/depth-of-field sample is applied to the origin.
func (c *Camera) screenRay(x, y, chromaticZoom, dofAngle, dofRadius float64) core.Ray {
	// The smaller the field of view, the further the screen sits away.
	screenDistance := 1.0 / math.Tan(c.FieldOfView*0.5)
	direction := core.NewVec3(x, screenDistance, -y)

	// Wavelength-dependent zoom approximates chromatic aberration without
	// modelling an actual dispersive lens.
	direction.X *= chromaticZoom
	direction.Z *= chromaticZoom
	direction = direction.Normalize()

	focusPoint := direction.Multiply(c.FocalDistance / direction.Y)

	lensPoint := core.NewVec3(
		math.Cos(dofAngle)*dofRadius,
		0,
		math.Sin(dofAngle)*dofRadius,
	)

	rayDirection := focusPoint.Subtract(lensPoint)

	return core.Ray{
		Origin:    c.Position.Add(c.Orientation.Rotate(lensPoint)),
		Direction: c.Orientation.Rotate(rayDirection).Normalize(),
	}
}

// Ray returns a primary ray through screen position (x, y) carrying the
// given wavelength, sampling the lens aperture from src for depth of
// field.
func (c *Camera) Ray(x, y, wavelength float64, src *entropy.Source) core.Ray {
	dofAngle := src.Longitude()
	dofRadius := src.Unit() / c.DepthOfField

	d := (wavelength - 580.0) / 200.0
	chromaticZoom := 1.0 + d*c.ChromaticAberration

	r := c.screenRay(x, y, chromaticZoom, dofAngle, dofRadius)
	r.Wavelength = wavelength
	r.Probability = 1.0

	return r
}
