package camera

import (
	"math"
	"reflect"
	"testing"

	"github.com/seqsense/pcgol/mat"
)

func newTestController() *Controller {
	return NewController(DefaultPresets(), DefaultTour(), DefaultDriver())
}

func TestNewController(t *testing.T) {
	c := newTestController()
	s := c.State()
	if s.Mode != ModeFixed {
		t.Fatalf("Initial state must be fixed, got %s", s.Mode)
	}
	front, _ := DefaultPresets().Lookup(PresetFront)
	if !s.Target.Equal(front) {
		t.Errorf("Initial target must be %v, got %v", front, s.Target)
	}
	if c.Scale() != DefaultScale {
		t.Errorf("Initial scale must be %f, got %f", DefaultScale, c.Scale())
	}
}

func TestSelectPreset(t *testing.T) {
	for _, p := range DefaultPresets() {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			c := newTestController()
			c.ToggleTour()
			if err := c.SelectPreset(p.Name); err != nil {
				t.Fatal(err)
			}
			s := c.State()
			if s.Mode != ModeFixed {
				t.Fatalf("Selecting preset must cancel tour, got %s", s.Mode)
			}
			if !s.Target.Equal(p.Position) {
				t.Errorf("Expected target %v, got %v", p.Position, s.Target)
			}
		})
	}
	t.Run("Unknown", func(t *testing.T) {
		c := newTestController()
		before := c.State()
		if err := c.SelectPreset("Bottom"); err != ErrUnknownPreset {
			t.Errorf("Expected ErrUnknownPreset, got %v", err)
		}
		if !reflect.DeepEqual(before, c.State()) {
			t.Error("State must not be changed by unknown preset")
		}
	})
}

func TestZoom(t *testing.T) {
	testCases := map[string]struct {
		target   mat.Vec3
		factor   float64
		ok       bool
		expected mat.Vec3
	}{
		"Identity": {
			target:   mat.Vec3{0, 3, 4},
			factor:   1,
			ok:       true,
			expected: mat.Vec3{0, 0.6, 0.8},
		},
		"ZoomOut": {
			target:   mat.Vec3{0, 3, 4},
			factor:   3,
			ok:       true,
			expected: mat.Vec3{0, 1.8, 2.4},
		},
		"ZeroVector": {
			target:   mat.Vec3{},
			factor:   1.5,
			ok:       false,
			expected: mat.Vec3{},
		},
		"NegativeFactor": {
			target:   mat.Vec3{0, 3, 4},
			factor:   -1,
			ok:       false,
			expected: mat.Vec3{0, 3, 4},
		},
		"NaNFactor": {
			target:   mat.Vec3{0, 3, 4},
			factor:   math.NaN(),
			ok:       false,
			expected: mat.Vec3{0, 3, 4},
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c := NewController(PresetTable{{Name: "P", Position: tt.target}}, nil, DefaultDriver())
			if ok := c.Zoom(tt.factor); ok != tt.ok {
				t.Fatalf("Expected Zoom to return %v, got %v", tt.ok, ok)
			}
			s := c.State()
			if s.Mode != ModeFixed {
				t.Fatalf("Zoom must keep fixed state, got %s", s.Mode)
			}
			if d := s.Target.Sub(tt.expected).Norm(); d > 1e-5 {
				t.Errorf("Expected target %v, got %v", tt.expected, s.Target)
			}
		})
	}
}

func TestZoom_UnitLength(t *testing.T) {
	c := newTestController()
	front, _ := DefaultPresets().Lookup(PresetFront)
	if !c.Zoom(1) {
		t.Fatal("Zoom must succeed")
	}
	target := c.State().Target
	if n := target.Norm(); math.Abs(float64(n)-1) > 1e-5 {
		t.Errorf("Zoom(1) must normalize the target, got norm %f", n)
	}
	if d := target.Sub(front.Normalized()).Norm(); d > 1e-5 {
		t.Errorf("Zoom(1) must keep direction, expected %v, got %v", front.Normalized(), target)
	}
}

func TestZoom_Touring(t *testing.T) {
	c := newTestController()
	c.ToggleTour()
	if !c.Zoom(3) {
		t.Fatal("Zoom while touring must update the last fixed target")
	}
	if !c.Touring() {
		t.Fatal("Zoom must not stop the tour")
	}
	c.ToggleTour()
	front, _ := DefaultPresets().Lookup(PresetFront)
	expected := front.Normalized().Mul(3)
	if d := c.State().Target.Sub(expected).Norm(); d > 1e-5 {
		t.Errorf("Stopping tour must return to zoomed target %v, got %v", expected, c.State().Target)
	}
}

func TestZoom_Idle(t *testing.T) {
	c := newTestController()
	c.Release()
	if c.Zoom(1.5) {
		t.Error("Zoom while idle must be ignored")
	}
	if c.State().Mode != ModeIdle {
		t.Errorf("Zoom must keep idle state, got %s", c.State().Mode)
	}
}

func TestToggleTour(t *testing.T) {
	c := newTestController()
	if err := c.SelectPreset(PresetLeft); err != nil {
		t.Fatal(err)
	}
	before := c.State()

	c.ToggleTour()
	s := c.State()
	if s.Mode != ModeTouring || s.Index != 0 || s.Progress != 0 {
		t.Fatalf("Expected fresh tour, got %+v", s)
	}
	var pose Pose
	c.Frame(0.5, &pose)
	if c.State().Progress == 0 {
		t.Fatal("Tour must progress")
	}

	c.ToggleTour()
	if !reflect.DeepEqual(before, c.State()) {
		t.Errorf("Expected %+v after round trip, got %+v", before, c.State())
	}

	c.ToggleTour()
	if s := c.State(); s.Index != 0 || s.Progress != 0 {
		t.Errorf("Tour progress must be discarded, got %+v", s)
	}
}

func TestToggleTour_FromIdle(t *testing.T) {
	c := newTestController()
	c.Release()
	c.ToggleTour()
	if !c.Touring() {
		t.Fatal("Tour must start from idle")
	}
	c.ToggleTour()
	front, _ := DefaultPresets().Lookup(PresetFront)
	if s := c.State(); s.Mode != ModeFixed || !s.Target.Equal(front) {
		t.Errorf("Expected fixed %v, got %+v", front, s)
	}
}

func TestApplyScale(t *testing.T) {
	testCases := map[string]struct {
		input    string
		ok       bool
		expected float64
	}{
		"Valid":     {input: "0.01", ok: true, expected: 0.01},
		"Spaces":    {input: " 2.5 ", ok: true, expected: 2.5},
		"NotNumber": {input: "abc", expected: DefaultScale},
		"Negative":  {input: "-1", expected: DefaultScale},
		"Zero":      {input: "0", expected: DefaultScale},
		"Empty":     {input: "", expected: DefaultScale},
		"NaN":       {input: "NaN", expected: DefaultScale},
		"Inf":       {input: "+Inf", expected: DefaultScale},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c := newTestController()
			if ok := c.ApplyScale(tt.input); ok != tt.ok {
				t.Errorf("Expected %v, got %v", tt.ok, ok)
			}
			if c.Scale() != tt.expected {
				t.Errorf("Expected scale %f, got %f", tt.expected, c.Scale())
			}
		})
	}
}
