package geometry

import (
	"math"

	"github.com/ruuda/luculentus/pkg/core"
)

// Plane is an infinite half-space boundary: Intersect reports the crossing,
// Contains reports the side the normal points away from, so a Plane can
// serve as a cutting tool in a Compound the same way a Sphere or Paraboloid
// can. Adapted from the teacher's pkg/geometry/plane.go.
type Plane struct {
	Point  core.Vec3
	Normal core.Vec3
}

// NewPlane creates a new plane through point with the given (normalised on
// construction) normal.
func NewPlane(point, normal core.Vec3) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize()}
}

// Intersect implements Shape.
func (p *Plane) Intersect(ray core.Ray, tMin, tMax float64) (core.Intersection, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	if math.Abs(denominator) < 1e-8 {
		return core.Intersection{}, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return core.Intersection{}, false
	}

	point := ray.At(t)
	tangent := p.Normal.Cross(core.NewVec3(0, 1, 0))
	if tangent.IsZero() {
		tangent = p.Normal.Cross(core.NewVec3(1, 0, 0))
	}

	return core.Intersection{
		Position: point,
		Normal:   p.Normal,
		Tangent:  tangent.Normalize(),
		Distance: t,
	}, true
}

// Contains implements Shape: the half-space behind the plane, opposite the
// normal, counts as "inside" — the convention a cutting plane needs in a
// Compound intersection.
func (p *Plane) Contains(point core.Vec3) bool {
	return point.Subtract(p.Point).Dot(p.Normal) <= 0
}
