package camera

import (
	"math"
	"testing"

	"github.com/seqsense/pcgol/mat"
)

func TestViewMatrix(t *testing.T) {
	for _, p := range DefaultPresets() {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			m := ViewMatrix(Pose{Position: p.Position})

			if e := m.Transform(p.Position); e.Norm() > 1e-5 {
				t.Errorf("Eye must be mapped to origin, got %v", e)
			}
			o := m.Transform(mat.Vec3{})
			dist := p.Position.Norm()
			if math.Abs(float64(o[0])) > 1e-4 || math.Abs(float64(o[1])) > 1e-4 ||
				math.Abs(float64(o[2]+dist)) > 1e-4 {
				t.Errorf("Target must be on -Z at %f, got %v", dist, o)
			}
		})
	}
}

func TestProject(t *testing.T) {
	pose := Pose{Position: mat.Vec3{0, 0, 5}}
	m := mat.Perspective(math.Pi/3, 1, 0.1, 100).Mul(ViewMatrix(pose))

	testCases := map[string]struct {
		p       mat.Vec3
		x, y    float32
		visible bool
	}{
		"Center": {p: mat.Vec3{0, 0, 0}, x: 50, y: 50, visible: true},
		"Behind": {p: mat.Vec3{0, 0, 10}, visible: false},
		"Up":     {p: mat.Vec3{0, 1, 0}, x: 50, visible: true},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			x, y, ok := Project(m, tt.p, 100, 100)
			if ok != tt.visible {
				t.Fatalf("Expected visible=%v, got %v", tt.visible, ok)
			}
			if !ok {
				return
			}
			if math.Abs(float64(x-tt.x)) > 1e-3 {
				t.Errorf("Expected x=%f, got %f", tt.x, x)
			}
			if name == "Up" {
				if y >= 50 {
					t.Errorf("Point above the target must be drawn above the center, got y=%f", y)
				}
				return
			}
			if math.Abs(float64(y-tt.y)) > 1e-3 {
				t.Errorf("Expected y=%f, got %f", tt.y, y)
			}
		})
	}
}
