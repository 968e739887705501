package material

import (
	"math"
	"testing"

	"github.com/ruuda/luculentus/pkg/core"
	"github.com/ruuda/luculentus/pkg/entropy"
)

func TestDiffuse_ScatterRay_StaysAboveSurface(t *testing.T) {
	d := NewDiffuse(0.8)
	src := entropy.New(42)

	incoming := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))
	isect := core.Intersection{
		Position: core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 0, 1),
		Tangent:  core.NewVec3(1, 0, 0),
	}

	for i := 0; i < 50; i++ {
		scattered := d.ScatterRay(incoming, isect, src)
		if scattered.Direction.Dot(isect.Normal) < -1e-9 {
			t.Fatalf("expected scattered ray to stay on the normal's side, got direction %v", scattered.Direction)
		}
		if scattered.Probability != 0.8 {
			t.Errorf("expected probability to carry the reflectance factor, got %f", scattered.Probability)
		}
	}
}

func TestDiffuse_ColouredPeaksNearCenter(t *testing.T) {
	d := NewColouredDiffuse(1.0, 600, 20)
	src := entropy.New(1)

	isect := core.Intersection{Position: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}
	onPeak := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))
	onPeak.Wavelength = 600
	offPeak := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))
	offPeak.Wavelength = 450

	peakResult := d.ScatterRay(onPeak, isect, src)
	offResult := d.ScatterRay(offPeak, isect, src)

	if peakResult.Probability <= offResult.Probability {
		t.Errorf("expected wavelength at the peak to have higher probability: peak=%f off=%f",
			peakResult.Probability, offResult.Probability)
	}
	if math.Abs(peakResult.Probability-1.0) > 1e-9 {
		t.Errorf("expected probability 1 exactly at the peak, got %f", peakResult.Probability)
	}
}
