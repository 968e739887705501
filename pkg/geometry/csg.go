package geometry

import "github.com/ruuda/luculentus/pkg/core"

// Compound is the constructive-solid-geometry intersection of two shapes,
// grounded on original_source/Compound.h's IntersectionCompound: a hit on
// either operand only survives if it also lies inside the other operand's
// volume, and of the two surviving candidates the nearer one wins.
type Compound struct {
	A, B Shape
}

// NewCompound builds the CSG intersection of a and b.
func NewCompound(a, b Shape) *Compound {
	return &Compound{A: a, B: b}
}

// Intersect implements Shape.
func (c *Compound) Intersect(ray core.Ray, tMin, tMax float64) (core.Intersection, bool) {
	ia, aHit := c.A.Intersect(ray, tMin, tMax)
	ib, bHit := c.B.Intersect(ray, tMin, tMax)

	// Invalidate intersections that do not lie inside the other volume.
	if aHit && !c.B.Contains(ia.Position) {
		aHit = false
	}
	if bHit && !c.A.Contains(ib.Position) {
		bHit = false
	}

	if !aHit && !bHit {
		return core.Intersection{}, false
	}
	if aHit && bHit {
		if ia.Distance < ib.Distance {
			return ia, true
		}
		return ib, true
	}
	if aHit {
		return ia, true
	}
	return ib, true
}

// Contains implements Shape: a point lies in the intersection solid only
// if it lies in both operand volumes.
func (c *Compound) Contains(point core.Vec3) bool {
	return c.A.Contains(point) && c.B.Contains(point)
}
