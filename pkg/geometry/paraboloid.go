package geometry

import (
	"math"

	"github.com/ruuda/luculentus/pkg/core"
)

// Paraboloid is a reflector-style primitive: the set of points whose
// squared distance to Axis equals 4*FocalLength times their signed distance
// from Vertex along Axis. It follows the same local-frame decomposition the
// teacher's sphere and plane use for their quadratic/linear intersection
// tests, generalised to an axis-oriented bowl so CSG compounds (see csg.go)
// can cut parabolic reflectors the way original_source/Compound.h combines
// spheres and planes into lenses and prisms.
type Paraboloid struct {
	Vertex      core.Vec3
	Axis        core.Vec3 // normalised on construction
	FocalLength float64
}

// NewParaboloid creates a paraboloid opening in the direction of axis, with
// its vertex at the given point.
func NewParaboloid(vertex, axis core.Vec3, focalLength float64) *Paraboloid {
	return &Paraboloid{Vertex: vertex, Axis: axis.Normalize(), FocalLength: focalLength}
}

// decompose splits a vector relative to the vertex into its component
// along the axis and its component perpendicular to it.
func (p *Paraboloid) decompose(v core.Vec3) (parallel float64, perp core.Vec3) {
	parallel = v.Dot(p.Axis)
	perp = v.Subtract(p.Axis.Multiply(parallel))
	return
}

// Intersect implements Shape.
func (p *Paraboloid) Intersect(ray core.Ray, tMin, tMax float64) (core.Intersection, bool) {
	relOrigin := ray.Origin.Subtract(p.Vertex)
	originParallel, originPerp := p.decompose(relOrigin)
	dirParallel, dirPerp := p.decompose(ray.Direction)

	fourF := 4 * p.FocalLength

	a := dirPerp.Dot(dirPerp)
	b := 2*originPerp.Dot(dirPerp) - fourF*dirParallel
	c := originPerp.Dot(originPerp) - fourF*originParallel

	var roots []float64
	if math.Abs(a) < 1e-12 {
		if math.Abs(b) < 1e-12 {
			return core.Intersection{}, false
		}
		roots = []float64{-c / b}
	} else {
		discriminant := b*b - 4*a*c
		if discriminant < 0 {
			return core.Intersection{}, false
		}
		sqrtD := math.Sqrt(discriminant)
		roots = []float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)}
	}

	best, found := math.Inf(1), false
	for _, root := range roots {
		if root >= tMin && root <= tMax && root < best {
			best, found = root, true
		}
	}
	if !found {
		return core.Intersection{}, false
	}

	point := ray.At(best)
	rel := point.Subtract(p.Vertex)
	_, perp := p.decompose(rel)

	normal := perp.Multiply(2).Subtract(p.Axis.Multiply(fourF)).Normalize()
	tangent := p.Axis.Cross(normal)
	if tangent.IsZero() {
		tangent = normal.Cross(core.NewVec3(1, 0, 0))
	}

	return core.Intersection{
		Position: point,
		Normal:   normal,
		Tangent:  tangent.Normalize(),
		Distance: best,
	}, true
}

// Contains implements Shape: true inside the bowl, i.e. where the squared
// perpendicular distance to the axis is no more than 4*FocalLength times
// the signed distance along the axis from the vertex.
func (p *Paraboloid) Contains(point core.Vec3) bool {
	parallel, perp := p.decompose(point.Subtract(p.Vertex))
	return perp.Dot(perp) <= 4*p.FocalLength*parallel
}
