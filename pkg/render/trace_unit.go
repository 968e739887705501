package render

import (
	"math"

	"github.com/ruuda/luculentus/pkg/core"
	"github.com/ruuda/luculentus/pkg/entropy"
)

// MappedPhoton is one simulated photon's contribution at a screen
// position, grounded on original_source/MappedPhoton.h.
type MappedPhoton struct {
	X, Y        float64 // screen position: X in [-1, 1], Y in [-1/aspect, 1/aspect]
	Probability float64
	Wavelength  float64
}

// TraceUnit fires a batch of camera rays through the scene and records
// where they land, grounded on original_source/TraceUnit.h/.cpp.
type TraceUnit struct {
	entropy *entropy.Source
	scene   Scene

	aspectRatio float64

	mappedPhotons []MappedPhoton
}

// NewTraceUnit creates a trace unit rendering scene into an image with the
// given aspect ratio (width / height), seeded independently of every
// other trace unit.
func NewTraceUnit(scene Scene, seed int64, aspectRatio float64) *TraceUnit {
	return &TraceUnit{
		entropy:       entropy.New(seed),
		scene:         scene,
		aspectRatio:   aspectRatio,
		mappedPhotons: make([]MappedPhoton, pathsPerTrace),
	}
}

// NextSeed draws a seed suitable for the next trace unit in a chain,
// reproducing how the original scheduler reseeds each successive
// TraceUnit from the previous one's generator.
func (t *TraceUnit) NextSeed() int64 {
	return t.entropy.NextSeed()
}

// MappedPhotons returns the photons recorded by the last Render call.
func (t *TraceUnit) MappedPhotons() []MappedPhoton {
	return t.mappedPhotons
}

// Render fills the mapped-photon buffer by tracing pathsPerTrace
// independent camera rays.
func (t *TraceUnit) Render() {
	for i := range t.mappedPhotons {
		wavelength := t.entropy.Wavelength()
		x := t.entropy.BiUnit()
		y := t.entropy.BiUnit() / t.aspectRatio

		t.mappedPhotons[i] = MappedPhoton{
			X:           x,
			Y:           y,
			Wavelength:  wavelength,
			Probability: t.renderCameraRay(x, y, wavelength),
		}
	}
}

// renderCameraRay samples a shutter time, builds the corresponding camera
// ray, and traces it into the scene.
func (t *TraceUnit) renderCameraRay(x, y, wavelength float64) float64 {
	time := t.entropy.Unit()
	camera := t.scene.CameraAtTime(time)
	ray := camera.Ray(x, y, wavelength, t.entropy)
	return t.renderRay(ray)
}

// Path-termination tuning, grounded on original_source/TraceUnit.cpp's
// RenderRay: a geometric 0.96 per-bounce survival chance for the
// scheduler's cheap kill switch, folded into a Russian-roulette test whose
// acceptance sharpens as intensity falls.
const (
	continueChanceDecay = 0.96
	rouletteThreshold    = 0.85
	rouletteSharpness    = 20.0
)

// renderRay follows a single photon path backwards from the camera until
// it escapes the scene, hits an emitter, or is killed by Russian roulette.
//
// The roulette test below reproduces original_source/TraceUnit.cpp's
// survival condition exactly, compensation factor and all: it does not
// divide the surviving intensity by the survival probability, so paths
// that survive roulette are not reweighted to stay unbiased. This matches
// the original renderer's (intentional) behaviour; see DESIGN.md.
func (t *TraceUnit) renderRay(ray core.Ray) float64 {
	continueChance := 1.0
	intensity := 1.0

	for {
		isect, obj, hit := t.scene.Intersect(ray, 1e-4, 1e12)
		if !hit {
			return 0
		}

		if emitter, ok := obj.Emitter(); ok {
			return intensity * emitter.EmittedRadiance(ray.Wavelength)
		}

		material, ok := obj.Material()
		if !ok {
			return 0
		}

		next := material.ScatterRay(ray, isect, t.entropy)
		intensity *= next.Probability

		// Displace the origin so the new ray does not immediately
		// re-intersect the same point.
		next.Origin = next.Origin.Add(next.Direction.Multiply(1e-5))
		ray = next

		continueChance *= continueChanceDecay

		if t.entropy.Unit()*rouletteThreshold >= continueChance*(1.0-math.Exp(intensity*-rouletteSharpness)) {
			return 0
		}
	}
}
