package scene

import (
	"github.com/ruuda/luculentus/pkg/core"
	"github.com/ruuda/luculentus/pkg/geometry"
	"github.com/ruuda/luculentus/pkg/render"
)

// Scene holds every renderable object plus the camera motion used to
// produce motion blur, grounded on original_source/Scene.h/.cpp: the
// original's std::function<Camera(float)> GetCameraAtTime is expressed
// here as interpolation between two camera keyframes, since every demo
// scene in original_source samples a single moving camera rather than an
// arbitrary closure.
type Scene struct {
	Objects []*Object

	// CameraStart and CameraEnd bound the camera's motion over the open
	// shutter; when they are equal, CameraAtTime is constant and no
	// motion blur results.
	CameraStart, CameraEnd *geometry.Camera
}

// NewScene creates a scene with a stationary camera.
func NewScene(camera *geometry.Camera) *Scene {
	return &Scene{CameraStart: camera, CameraEnd: camera}
}

// NewMovingScene creates a scene whose camera moves from start to end
// over the open shutter, producing motion blur when rays are traced at
// randomly sampled times in [0, 1].
func NewMovingScene(start, end *geometry.Camera) *Scene {
	return &Scene{CameraStart: start, CameraEnd: end}
}

// Add appends an object to the scene and returns the scene, for chaining
// while building a scene.
func (s *Scene) Add(obj *Object) *Scene {
	s.Objects = append(s.Objects, obj)
	return s
}

// Intersect finds the nearest object the ray hits within (tMin, tMax),
// scanning every object in the scene exactly as
// original_source/Scene.cpp's Intersect does — no acceleration structure,
// since a spectral path tracer's scenes are small and hand-built.
func (s *Scene) Intersect(ray core.Ray, tMin, tMax float64) (core.Intersection, render.SceneObject, bool) {
	var nearest core.Intersection
	var nearestObj *Object
	closest := tMax

	for _, obj := range s.Objects {
		isect, hit := obj.Shape.Intersect(ray, tMin, closest)
		if !hit {
			continue
		}
		if isect.Distance < closest {
			nearest = isect
			nearestObj = obj
			closest = isect.Distance
		}
	}

	if nearestObj == nil {
		return core.Intersection{}, nil, false
	}
	return nearest, nearestObj, true
}

// CameraAtTime returns the camera interpolated between CameraStart and
// CameraEnd at normalised shutter position t in [0, 1].
func (s *Scene) CameraAtTime(t float64) render.Camera {
	if s.CameraStart == s.CameraEnd {
		return s.CameraStart
	}

	lerp := func(a, b float64) float64 { return a + (b-a)*t }
	lerpVec := func(a, b core.Vec3) core.Vec3 {
		return a.Add(b.Subtract(a).Multiply(t))
	}

	return &geometry.Camera{
		Position:            lerpVec(s.CameraStart.Position, s.CameraEnd.Position),
		FieldOfView:         lerp(s.CameraStart.FieldOfView, s.CameraEnd.FieldOfView),
		FocalDistance:       lerp(s.CameraStart.FocalDistance, s.CameraEnd.FocalDistance),
		DepthOfField:        lerp(s.CameraStart.DepthOfField, s.CameraEnd.DepthOfField),
		ChromaticAberration: lerp(s.CameraStart.ChromaticAberration, s.CameraEnd.ChromaticAberration),
		Orientation:         s.CameraStart.Orientation.Slerp(s.CameraEnd.Orientation, t),
	}
}
