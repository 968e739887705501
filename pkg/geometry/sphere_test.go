package geometry

import (
	"math"
	"testing"

	"github.com/ruuda/luculentus/pkg/core"
)

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Intersect(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("expected miss, got hit at t=%f", hit.Distance)
	}
}

func TestSphere_Intersect_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "hit from inside",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Intersect(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("expected hit, got miss")
			}
			if math.Abs(hit.Distance-tt.expectedT) > 1e-9 {
				t.Errorf("expected t=%f, got t=%f", tt.expectedT, hit.Distance)
			}
			if !hit.Normal.Equals(tt.expectedNormal) {
				t.Errorf("expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Intersect_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Intersect(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("expected glancing hit, got miss")
	}

	expectedPoint := core.NewVec3(1, 0, 0)
	if !hit.Position.Equals(expectedPoint) {
		t.Errorf("expected hit point %v, got %v", expectedPoint, hit.Position)
	}
}

func TestSphere_Intersect_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	if hit, isHit := sphere.Intersect(ray, 0.001, 0.5); isHit {
		t.Errorf("expected miss due to tMax bound, got hit at t=%f", hit.Distance)
	}
	if hit, isHit := sphere.Intersect(ray, 3.5, 1000.0); isHit {
		t.Errorf("expected miss due to tMin bound, got hit at t=%f", hit.Distance)
	}
}

func TestSphere_Intersect_ClosestIntersection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Intersect(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("expected hit, got miss")
	}

	expectedT := 1.0
	if math.Abs(hit.Distance-expectedT) > 1e-9 {
		t.Errorf("expected closest intersection at t=%f, got t=%f", expectedT, hit.Distance)
	}
}

func TestSphere_Contains(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)

	if !sphere.Contains(core.NewVec3(0, 0, 0)) {
		t.Error("expected center to be contained")
	}
	if !sphere.Contains(core.NewVec3(1, 0, 0)) {
		t.Error("expected surface point to be contained")
	}
	if sphere.Contains(core.NewVec3(2, 0, 0)) {
		t.Error("expected point outside radius to not be contained")
	}
}
