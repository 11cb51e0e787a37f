package hotspot

import (
	"errors"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/modelviewer/camera"
)

var ErrUnknownHotspot = errors.New("unknown hotspot")

// Hotspot is a clickable anchor on the model which switches to a preset view.
type Hotspot struct {
	ID      string
	Anchor  mat.Vec3
	Label   string
	Preset  string
	hovered bool
}

// Hovered reports whether the tooltip is shown.
func (h *Hotspot) Hovered() bool {
	return h.hovered
}

// PresetSelector is implemented by camera.Controller.
type PresetSelector interface {
	SelectPreset(name string) error
}

// Set is an ordered list of hotspots.
type Set struct {
	spots []*Hotspot
}

func NewSet(spots ...Hotspot) *Set {
	s := &Set{}
	for i := range spots {
		h := spots[i]
		s.spots = append(s.spots, &h)
	}
	return s
}

func Default() *Set {
	return NewSet(
		Hotspot{ID: camera.PresetFront, Anchor: mat.Vec3{0, 0.05, 0.6}, Label: "Front View", Preset: camera.PresetFront},
		Hotspot{ID: camera.PresetBack, Anchor: mat.Vec3{0, 0.05, -0.6}, Label: "Back View", Preset: camera.PresetBack},
		Hotspot{ID: camera.PresetLeft, Anchor: mat.Vec3{-0.6, 0.05, 0}, Label: "Left Side", Preset: camera.PresetLeft},
		Hotspot{ID: camera.PresetRight, Anchor: mat.Vec3{0.6, 0.05, 0}, Label: "Right Side", Preset: camera.PresetRight},
		Hotspot{ID: camera.PresetTop, Anchor: mat.Vec3{0, 0.6, 0}, Label: "Top View", Preset: camera.PresetTop},
	)
}

func (s *Set) All() []*Hotspot {
	return s.spots
}

func (s *Set) Get(id string) (*Hotspot, bool) {
	for _, h := range s.spots {
		if h.ID == id {
			return h, true
		}
	}
	return nil, false
}

// Anchors returns anchor points in order.
func (s *Set) Anchors() []mat.Vec3 {
	out := make([]mat.Vec3, 0, len(s.spots))
	for _, h := range s.spots {
		out = append(out, h.Anchor)
	}
	return out
}

func (s *Set) Enter(id string) error {
	h, ok := s.Get(id)
	if !ok {
		return ErrUnknownHotspot
	}
	h.hovered = true
	return nil
}

func (s *Set) Leave(id string) error {
	h, ok := s.Get(id)
	if !ok {
		return ErrUnknownHotspot
	}
	h.hovered = false
	return nil
}

// Click switches the view to the preset of the hotspot.
func (s *Set) Click(id string, sel PresetSelector) error {
	h, ok := s.Get(id)
	if !ok {
		return ErrUnknownHotspot
	}
	return sel.SelectPreset(h.Preset)
}
