// Package render implements the concurrent rendering pipeline: a
// single-mutex FIFO task scheduler multiplexing a fixed worker pool across
// Trace, Plot, Gather and Tonemap work units. It consumes scenes, cameras,
// materials and emitters only through the interfaces declared here —
// geometry and material concrete types satisfy them structurally, without
// this package importing either.
package render

import (
	"github.com/ruuda/luculentus/pkg/core"
	"github.com/ruuda/luculentus/pkg/entropy"
)

// Material is the scattering contract a non-emissive surface satisfies.
type Material interface {
	ScatterRay(incoming core.Ray, isect core.Intersection, src *entropy.Source) core.Ray
}

// Emitter is the contract a light-emitting surface satisfies.
type Emitter interface {
	EmittedRadiance(wavelength float64) float64
}

// SceneObject pairs a scene intersection with its optional material and
// emitter, grounded on original_source/TraceUnit.cpp's Object: a hit
// object carries either a material (the path continues) or an emissive
// material (the path ends), never both in the original, though this
// interface does not forbid both being present.
type SceneObject interface {
	Material() (Material, bool)
	Emitter() (Emitter, bool)
}

// Camera produces primary rays through a virtual screen.
type Camera interface {
	Ray(x, y, wavelength float64, src *entropy.Source) core.Ray
}

// Scene is the sole external collaborator the render pipeline depends on:
// it offers ray intersection and a time-varying camera, nothing else.
type Scene interface {
	// Intersect returns the nearest hit scene object, if any, within
	// (tMin, tMax).
	Intersect(ray core.Ray, tMin, tMax float64) (core.Intersection, SceneObject, bool)

	// CameraAtTime returns the camera to render through at time t, a
	// normalised shutter position in [0, 1]; sampling t randomly per ray
	// produces motion blur.
	CameraAtTime(t float64) Camera
}

// Logger is core.Logger, reused here so callers don't need to import core
// just to pass a logger to the pipeline.
type Logger = core.Logger
