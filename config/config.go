package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/seqsense/pcgol/mat"
	"gopkg.in/yaml.v3"

	"github.com/seqsense/modelviewer/backdrop"
	"github.com/seqsense/modelviewer/camera"
	"github.com/seqsense/modelviewer/hotspot"
)

const (
	DefaultAsset     = "model.pcd"
	DefaultZoomIn    = 1.5
	DefaultZoomOut   = 3.0
	DefaultFOV       = 50.0
	DefaultPointSize = 3.0
)

type Config struct {
	Asset                string          `yaml:"asset"`
	Scale                float64         `yaml:"scale"`
	Environment          string          `yaml:"environment"`
	BlendFactor          float64         `yaml:"blend_factor"`
	TourSpeed            float64         `yaml:"tour_speed"`
	RefFPS               float64         `yaml:"ref_fps"`
	FrameRateIndependent bool            `yaml:"frame_rate_independent"`
	ZoomIn               float64         `yaml:"zoom_in"`
	ZoomOut              float64         `yaml:"zoom_out"`
	FOV                  float64         `yaml:"fov"`
	PointSize            float64         `yaml:"point_size"`
	Presets              []PresetConfig  `yaml:"presets"`
	Tour                 [][]float32     `yaml:"tour"`
	Hotspots             []HotspotConfig `yaml:"hotspots"`
}

type PresetConfig struct {
	Name     string    `yaml:"name"`
	Position []float32 `yaml:"position"`
}

type HotspotConfig struct {
	ID     string    `yaml:"id"`
	Label  string    `yaml:"label"`
	Preset string    `yaml:"preset"`
	Anchor []float32 `yaml:"anchor"`
}

func DefaultConfig() *Config {
	c := &Config{
		Asset:       DefaultAsset,
		Scale:       camera.DefaultScale,
		Environment: backdrop.Default,
		BlendFactor: camera.DefaultBlendFactor,
		TourSpeed:   camera.DefaultTourSpeed,
		RefFPS:      camera.DefaultRefFPS,
		ZoomIn:      DefaultZoomIn,
		ZoomOut:     DefaultZoomOut,
		FOV:         DefaultFOV,
		PointSize:   DefaultPointSize,
	}
	for _, p := range camera.DefaultPresets() {
		c.Presets = append(c.Presets, PresetConfig{Name: p.Name, Position: append([]float32(nil), p.Position[:]...)})
	}
	for _, w := range camera.DefaultTour() {
		c.Tour = append(c.Tour, append([]float32(nil), w[:]...))
	}
	for _, h := range hotspot.Default().All() {
		c.Hotspots = append(c.Hotspots, HotspotConfig{
			ID: h.ID, Label: h.Label, Preset: h.Preset, Anchor: append([]float32(nil), h.Anchor[:]...),
		})
	}
	return c
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(b []byte) (*Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the config file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func (c *Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"scale", c.Scale},
		{"blend_factor", c.BlendFactor},
		{"tour_speed", c.TourSpeed},
		{"ref_fps", c.RefFPS},
		{"zoom_in", c.ZoomIn},
		{"zoom_out", c.ZoomOut},
		{"fov", c.FOV},
		{"point_size", c.PointSize},
	}
	for _, p := range positive {
		if !(p.v > 0) {
			return fmt.Errorf("%s must be >0", p.name)
		}
	}
	if c.BlendFactor > 1 {
		return errors.New("blend_factor must be <=1")
	}
	if c.FOV >= 180 {
		return errors.New("fov must be <180")
	}
	if len(c.Presets) == 0 {
		return errors.New("at least one preset is required")
	}
	names := make(map[string]bool)
	for _, p := range c.Presets {
		if p.Name == "" {
			return errors.New("preset name must not be empty")
		}
		if names[p.Name] {
			return fmt.Errorf("duplicated preset %q", p.Name)
		}
		names[p.Name] = true
		if _, err := vec3(p.Position); err != nil {
			return fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}
	for i, w := range c.Tour {
		if _, err := vec3(w); err != nil {
			return fmt.Errorf("tour waypoint %d: %w", i, err)
		}
	}
	for _, h := range c.Hotspots {
		if !names[h.Preset] {
			return fmt.Errorf("hotspot %q: %w %q", h.ID, camera.ErrUnknownPreset, h.Preset)
		}
		if _, err := vec3(h.Anchor); err != nil {
			return fmt.Errorf("hotspot %q: %w", h.ID, err)
		}
	}
	return nil
}

func (c *Config) PresetTable() camera.PresetTable {
	t := make(camera.PresetTable, 0, len(c.Presets))
	for _, p := range c.Presets {
		v, _ := vec3(p.Position)
		t = append(t, camera.Preset{Name: p.Name, Position: v})
	}
	return t
}

func (c *Config) TourPath() []mat.Vec3 {
	out := make([]mat.Vec3, 0, len(c.Tour))
	for _, w := range c.Tour {
		v, _ := vec3(w)
		out = append(out, v)
	}
	return out
}

func (c *Config) Driver() camera.Driver {
	return camera.Driver{
		BlendFactor:          c.BlendFactor,
		TourSpeed:            c.TourSpeed,
		FrameRateIndependent: c.FrameRateIndependent,
		RefFPS:               c.RefFPS,
	}
}

func (c *Config) HotspotSet() *hotspot.Set {
	spots := make([]hotspot.Hotspot, 0, len(c.Hotspots))
	for _, h := range c.Hotspots {
		v, _ := vec3(h.Anchor)
		spots = append(spots, hotspot.Hotspot{ID: h.ID, Label: h.Label, Preset: h.Preset, Anchor: v})
	}
	return hotspot.NewSet(spots...)
}

// NewController builds a camera controller with the configured scale.
func (c *Config) NewController() *camera.Controller {
	ctrl := camera.NewController(c.PresetTable(), c.TourPath(), c.Driver())
	ctrl.SetScale(c.Scale)
	return ctrl
}

func vec3(v []float32) (mat.Vec3, error) {
	if len(v) != 3 {
		return mat.Vec3{}, fmt.Errorf("expected 3 elements, got %d", len(v))
	}
	return mat.Vec3{v[0], v[1], v[2]}, nil
}
