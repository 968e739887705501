// Package entropy provides the per-goroutine random number supplier
// consumed by the render pipeline. Each TraceUnit owns exactly one Source
// and never shares it with another goroutine.
package entropy

import (
	"math"
	"math/rand"

	"github.com/ruuda/luculentus/pkg/core"
)

// Source is a stateful pseudo-random generator with the handful of
// pre-parameterised distributions the spectral path tracer needs. It wraps
// math/rand the same way the teacher's tile renderer hands each worker its
// own *rand.Rand (pkg/renderer/progressive.go's per-tile Random field) —
// exclusive ownership, no internal locking.
type Source struct {
	rng *rand.Rand
}

// New creates a new entropy source seeded with the given value. A 32-bit
// Mersenne-Twister-equivalent generator is acceptable for Monte Carlo
// rendering; math/rand's default source meets that bar without pulling in
// an external PRNG package.
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// NextSeed draws a value suitable for seeding the next Source in a chain,
// exactly as the original MonteCarloUnit reseeds from its own engine's
// output so that successive TraceUnits get distinct streams.
func (s *Source) NextSeed() int64 {
	return s.rng.Int63()
}

// BiUnit returns a uniform sample in [-1, 1].
func (s *Source) BiUnit() float64 {
	return s.rng.Float64()*2 - 1
}

// Unit returns a uniform sample in [0, 1].
func (s *Source) Unit() float64 {
	return s.rng.Float64()
}

// Longitude returns a uniform sample in [0, 2π).
func (s *Source) Longitude() float64 {
	return s.rng.Float64() * 2 * math.Pi
}

// Latitude returns a uniform sample in [-π/2, π/2].
func (s *Source) Latitude() float64 {
	return s.rng.Float64()*math.Pi - math.Pi/2
}

// Wavelength returns a uniform sample in [380, 780] nm.
func (s *Source) Wavelength() float64 {
	return 380 + s.rng.Float64()*400
}

// HemisphereVector returns a uniform unit vector with z >= 0.
func (s *Source) HemisphereVector() core.Vec3 {
	phi := s.Longitude()
	z := s.Unit()
	r := math.Sqrt(1 - z*z)
	return core.Vec3{
		X: math.Cos(phi) * r,
		Y: math.Sin(phi) * r,
		Z: z,
	}
}

// CosineHemisphereVector returns a unit vector with z >= 0, density
// proportional to cos(θ) with respect to solid angle (Malley's method: a
// uniform disk sample projected up onto the hemisphere).
func (s *Source) CosineHemisphereVector() core.Vec3 {
	phi := s.Longitude()
	rSquared := s.Unit()
	r := math.Sqrt(rSquared)
	return core.Vec3{
		X: math.Cos(phi) * r,
		Y: math.Sin(phi) * r,
		Z: math.Sqrt(1 - rSquared),
	}
}
