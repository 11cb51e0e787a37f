package backdrop

import (
	"fmt"
)

const Default = "sunset"

// RGB is a color with components in [0, 1].
type RGB [3]float32

// CSS returns the color in CSS rgb() notation.
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)",
		int(c[0]*255+0.5), int(c[1]*255+0.5), int(c[2]*255+0.5),
	)
}

// Backdrop is an environment preset drawn behind the model.
type Backdrop struct {
	Name   string
	Label  string
	Top    RGB
	Bottom RGB
	// Tint multiplies the model color to fake environment lighting.
	Tint RGB
}

// Gradient returns a CSS linear gradient from Top to Bottom.
func (b Backdrop) Gradient() string {
	return fmt.Sprintf("linear-gradient(%s, %s)", b.Top.CSS(), b.Bottom.CSS())
}

var presets = []Backdrop{
	{
		Name: "sunset", Label: "Sunset",
		Top: RGB{0.98, 0.55, 0.33}, Bottom: RGB{0.29, 0.16, 0.33},
		Tint: RGB{1, 0.85, 0.7},
	},
	{
		Name: "night", Label: "Night",
		Top: RGB{0.02, 0.03, 0.1}, Bottom: RGB{0.1, 0.12, 0.25},
		Tint: RGB{0.55, 0.6, 0.8},
	},
	{
		Name: "dawn", Label: "Dawn",
		Top: RGB{0.55, 0.67, 0.86}, Bottom: RGB{0.98, 0.8, 0.7},
		Tint: RGB{0.95, 0.9, 0.9},
	},
	{
		Name: "city", Label: "City",
		Top: RGB{0.6, 0.66, 0.72}, Bottom: RGB{0.3, 0.32, 0.35},
		Tint: RGB{0.9, 0.92, 0.95},
	},
	{
		Name: "warehouse", Label: "Warehouse",
		Top: RGB{0.45, 0.4, 0.33}, Bottom: RGB{0.18, 0.16, 0.14},
		Tint: RGB{1, 0.95, 0.85},
	},
}

// All returns the presets in selector order.
func All() []Backdrop {
	out := make([]Backdrop, len(presets))
	copy(out, presets)
	return out
}

// Names returns the preset names in selector order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for _, b := range presets {
		names = append(names, b.Name)
	}
	return names
}

// Lookup returns the named preset. Unknown names resolve to the default
// preset and ok is false.
func Lookup(name string) (Backdrop, bool) {
	for _, b := range presets {
		if b.Name == name {
			return b, true
		}
	}
	b, _ := Lookup(Default)
	return b, false
}

// Next returns the preset following name, wrapping around.
func Next(name string) Backdrop {
	for i, b := range presets {
		if b.Name == name {
			return presets[(i+1)%len(presets)]
		}
	}
	return presets[0]
}
