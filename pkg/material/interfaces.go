// Package material implements the surface and emission models the render
// pipeline samples during path tracing. Every type here only needs to
// satisfy the structurally-typed Material/Emitter contracts the render
// package declares for itself (see pkg/render/interfaces.go) — nothing in
// this package imports pkg/render, preserving the scheduler's independence
// from concrete surface models.
package material

import (
	"github.com/ruuda/luculentus/pkg/core"
	"github.com/ruuda/luculentus/pkg/entropy"
)

// scatterer is the shape every material in this package implements. It is
// declared locally, rather than imported from pkg/render, purely so
// Layered can compose arbitrary materials from this package without
// depending on the render package.
type scatterer interface {
	ScatterRay(incoming core.Ray, isect core.Intersection, src *entropy.Source) core.Ray
}
