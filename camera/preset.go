package camera

import (
	"github.com/seqsense/pcgol/mat"
)

// Preset is a named camera position.
type Preset struct {
	Name     string
	Position mat.Vec3
}

// PresetTable is an ordered set of presets.
type PresetTable []Preset

// Lookup returns the position of the named preset.
func (t PresetTable) Lookup(name string) (mat.Vec3, bool) {
	for _, p := range t {
		if p.Name == name {
			return p.Position, true
		}
	}
	return mat.Vec3{}, false
}

// Names returns preset names in table order.
func (t PresetTable) Names() []string {
	names := make([]string, 0, len(t))
	for _, p := range t {
		names = append(names, p.Name)
	}
	return names
}

const (
	PresetFront = "Front"
	PresetBack  = "Back"
	PresetLeft  = "Left"
	PresetRight = "Right"
	PresetTop   = "Top"
)

// DefaultPresets returns the built-in view presets.
// Top is slightly offset in z so that the view direction never becomes
// parallel to the up axis.
func DefaultPresets() PresetTable {
	return PresetTable{
		{Name: PresetFront, Position: mat.Vec3{0, 0.5, 2}},
		{Name: PresetBack, Position: mat.Vec3{0, 0.5, -2}},
		{Name: PresetLeft, Position: mat.Vec3{-2, 0.5, 0}},
		{Name: PresetRight, Position: mat.Vec3{2, 0.5, 0}},
		{Name: PresetTop, Position: mat.Vec3{0, 2, 0.001}},
	}
}

// DefaultTour returns the built-in tour waypoints.
func DefaultTour() []mat.Vec3 {
	return []mat.Vec3{
		{0, 1, 5},
		{-2, 2, 4},
		{2, 2, -4},
		{0, 1, -5},
	}
}
