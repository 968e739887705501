package material

import (
	"math"
	"testing"

	"github.com/ruuda/luculentus/pkg/core"
	"github.com/ruuda/luculentus/pkg/entropy"
)

func TestMirror_PerfectReflection(t *testing.T) {
	m := NewMirror()
	src := entropy.New(1)

	incoming := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))
	isect := core.Intersection{Position: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	scattered := m.ScatterRay(incoming, isect, src)
	expected := core.NewVec3(0, 0, 1)
	if !scattered.Direction.Equals(expected) {
		t.Errorf("expected perfect reflection %v, got %v", expected, scattered.Direction)
	}
	if scattered.Probability != 1.0 {
		t.Errorf("expected probability 1 for a specular reflection, got %f", scattered.Probability)
	}
}

func TestMirror_GlossyBlendsTowardDiffuse(t *testing.T) {
	m := NewGlossyMirror(1.0) // fully diffuse
	src := entropy.New(7)

	incoming := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))
	isect := core.Intersection{
		Position: core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 0, 1),
		Tangent:  core.NewVec3(1, 0, 0),
	}

	for i := 0; i < 20; i++ {
		scattered := m.ScatterRay(incoming, isect, src)
		if scattered.Direction.Dot(isect.Normal) < -1e-9 {
			t.Fatalf("expected fully-diffuse mirror to stay above the surface, got %v", scattered.Direction)
		}
		if math.Abs(scattered.Direction.Length()-1) > 1e-6 {
			t.Errorf("expected normalised direction, got length %f", scattered.Direction.Length())
		}
	}
}
