package material

import (
	"math"
	"testing"

	"github.com/ruuda/luculentus/pkg/core"
	"github.com/ruuda/luculentus/pkg/entropy"
)

func TestRefractive_StraightThroughAtNormalIncidence(t *testing.T) {
	r := NewRefractive(1.5)
	src := entropy.New(1)

	incoming := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))
	isect := core.Intersection{Position: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	scattered := r.ScatterRay(incoming, isect, src)
	expected := core.NewVec3(0, 0, -1)
	if !scattered.Direction.Equals(expected) {
		t.Errorf("expected straight-through refraction at normal incidence, got %v", scattered.Direction)
	}
}

func TestRefractive_TotalInternalReflection(t *testing.T) {
	r := NewRefractive(1.5)
	src := entropy.New(1)

	// A ray leaving the dense medium at a grazing angle should undergo
	// total internal reflection rather than refract.
	incoming := core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(1, 0, 0.01).Normalize())
	isect := core.Intersection{Position: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	scattered := r.ScatterRay(incoming, isect, src)
	if scattered.Direction.Dot(isect.Normal) >= 0 {
		t.Errorf("expected total internal reflection to stay on the incidence side, got %v", scattered.Direction)
	}
}

func TestBk7IndexOfRefraction_VisibleRangeIsPlausible(t *testing.T) {
	n := bk7IndexOfRefraction(587.6)
	if math.Abs(n-1.517) > 0.01 {
		t.Errorf("expected BK7 n_d near 1.517, got %f", n)
	}
}
