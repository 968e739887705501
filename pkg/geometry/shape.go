// Package geometry provides the ray-intersection primitives the render
// pipeline treats as an external collaborator: it only ever asks a Scene
// for an intersection, never inspects shape internals directly.
package geometry

import "github.com/ruuda/luculentus/pkg/core"

// Shape is satisfied by every intersectable primitive and by the CSG
// Compound combinator.
type Shape interface {
	// Intersect returns the nearest intersection with the ray in
	// (tMin, tMax), if any.
	Intersect(ray core.Ray, tMin, tMax float64) (core.Intersection, bool)

	// Contains reports whether point lies inside the solid bounded by the
	// shape. Only meaningful for closed shapes; used by Compound to decide
	// which of two candidate hits survives the intersection operation.
	Contains(point core.Vec3) bool
}
