// Package scene assembles geometry and material primitives into the
// render.Scene the pipeline renders, grounded on
// original_source/Scene.h/.cpp and original_source/Object.h (referenced by
// TraceUnit.cpp but absent from the extracted source; the Object/Scene
// shape below is inferred from that usage).
package scene

import (
	"github.com/ruuda/luculentus/pkg/geometry"
	"github.com/ruuda/luculentus/pkg/render"
)

// Object pairs a shape with at most one of a scattering material or an
// emitter, mirroring original_source/TraceUnit.cpp's handling of
// Object::material: a hit with no material terminates the path at an
// emitter (or at nothing, if it has neither).
type Object struct {
	Shape    geometry.Shape
	material render.Material
	emitter  render.Emitter
}

// NewObject creates an object that scatters rays via mat.
func NewObject(shape geometry.Shape, mat render.Material) *Object {
	return &Object{Shape: shape, material: mat}
}

// NewEmissiveObject creates an object that terminates paths at emit.
func NewEmissiveObject(shape geometry.Shape, emit render.Emitter) *Object {
	return &Object{Shape: shape, emitter: emit}
}

// Material implements render.SceneObject.
func (o *Object) Material() (render.Material, bool) {
	if o.material == nil {
		return nil, false
	}
	return o.material, true
}

// Emitter implements render.SceneObject.
func (o *Object) Emitter() (render.Emitter, bool) {
	if o.emitter == nil {
		return nil, false
	}
	return o.emitter, true
}
