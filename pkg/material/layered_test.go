package material

import (
	"testing"

	"github.com/ruuda/luculentus/pkg/core"
	"github.com/ruuda/luculentus/pkg/entropy"
)

func TestLayered_OuterReflectionSkipsInner(t *testing.T) {
	// A perfect mirror outer coating always reflects outward, so the
	// inner material should never be consulted; its probability should
	// therefore not appear in the result.
	outer := NewMirror()
	inner := NewDiffuse(0.1)
	l := NewLayered(outer, inner)
	src := entropy.New(1)

	incoming := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))
	isect := core.Intersection{Position: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	scattered := l.ScatterRay(incoming, isect, src)
	if scattered.Probability != 1.0 {
		t.Errorf("expected outer-only reflection to carry probability 1, got %f", scattered.Probability)
	}
}

func TestLayered_InwardScatterCombinesProbabilities(t *testing.T) {
	// A fully diffuse, partially reflective outer coating will sometimes
	// scatter back into the surface, at which point the inner material's
	// probability should multiply into the result.
	outer := NewDiffuse(0.5)
	inner := NewDiffuse(0.5)
	l := NewLayered(outer, inner)
	src := entropy.New(3)

	incoming := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))
	isect := core.Intersection{
		Position: core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 0, -1), // facing away from incoming, so scattered rays point "inward"
		Tangent:  core.NewVec3(1, 0, 0),
	}

	for i := 0; i < 20; i++ {
		scattered := l.ScatterRay(incoming, isect, src)
		if scattered.Probability > 0.5*0.5+1e-9 {
			t.Fatalf("expected combined probability to be at most outer*inner, got %f", scattered.Probability)
		}
	}
}
