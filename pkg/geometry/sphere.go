package geometry

import (
	"math"

	"github.com/ruuda/luculentus/pkg/core"
)

// Sphere is a primitive shape, grounded on the teacher's
// pkg/geometry/sphere.go quadratic-intersection test, adapted to return a
// core.Intersection value instead of a pointer-and-material hit record
// (materials are wired in by the scene, not carried by the shape).
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere.
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Intersect implements Shape.
func (s *Sphere) Intersect(ray core.Ray, tMin, tMax float64) (core.Intersection, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.Intersection{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return core.Intersection{}, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	tangent := normal.Cross(core.NewVec3(0, 1, 0))
	if tangent.IsZero() {
		tangent = normal.Cross(core.NewVec3(1, 0, 0))
	}

	return core.Intersection{
		Position: point,
		Normal:   normal,
		Tangent:  tangent.Normalize(),
		Distance: root,
	}, true
}

// Contains implements Shape: true for points on or inside the sphere.
func (s *Sphere) Contains(point core.Vec3) bool {
	return point.Subtract(s.Center).LengthSquared() <= s.Radius*s.Radius
}
