package hotspot

import (
	"testing"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/modelviewer/camera"
)

func TestHover(t *testing.T) {
	s := Default()
	h, ok := s.Get(camera.PresetLeft)
	if !ok {
		t.Fatal("Left hotspot must exist")
	}
	if h.Hovered() {
		t.Error("Tooltip must be hidden initially")
	}
	if err := s.Enter(camera.PresetLeft); err != nil {
		t.Fatal(err)
	}
	if !h.Hovered() {
		t.Error("Tooltip must be shown on enter")
	}
	for _, o := range s.All() {
		if o != h && o.Hovered() {
			t.Errorf("Tooltip of %s must not be shown", o.ID)
		}
	}
	if err := s.Leave(camera.PresetLeft); err != nil {
		t.Fatal(err)
	}
	if h.Hovered() {
		t.Error("Tooltip must be hidden on leave")
	}
	if err := s.Enter("Bottom"); err != ErrUnknownHotspot {
		t.Errorf("Expected ErrUnknownHotspot, got %v", err)
	}
}

func TestClick_CancelsTour(t *testing.T) {
	c := camera.NewController(camera.DefaultPresets(), camera.DefaultTour(), camera.DefaultDriver())
	c.ToggleTour()
	var pose camera.Pose
	c.Frame(0.3, &pose)

	s := Default()
	if err := s.Click(camera.PresetTop, c); err != nil {
		t.Fatal(err)
	}
	st := c.State()
	if st.Mode != camera.ModeFixed {
		t.Fatalf("Click must cancel tour, got %s", st.Mode)
	}
	top, _ := camera.DefaultPresets().Lookup(camera.PresetTop)
	if !st.Target.Equal(top) {
		t.Errorf("Expected target %v, got %v", top, st.Target)
	}
}

func TestClick_UnknownPreset(t *testing.T) {
	c := camera.NewController(camera.DefaultPresets(), nil, camera.DefaultDriver())
	s := NewSet(Hotspot{ID: "x", Anchor: mat.Vec3{1, 0, 0}, Label: "X", Preset: "Bottom"})
	if err := s.Click("x", c); err != camera.ErrUnknownPreset {
		t.Errorf("Expected ErrUnknownPreset, got %v", err)
	}
	if err := s.Click("y", c); err != ErrUnknownHotspot {
		t.Errorf("Expected ErrUnknownHotspot, got %v", err)
	}
}
