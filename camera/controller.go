package camera

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/seqsense/pcgol/mat"
)

const DefaultScale = 0.003

// ErrUnknownPreset is returned when selecting a preset which is not in the table.
var ErrUnknownPreset = errors.New("unknown preset")

// Controller owns the view state and the model scale.
// It is not safe for concurrent use; the host calls it from its frame loop.
type Controller struct {
	presets PresetTable
	tour    []mat.Vec3
	driver  Driver

	state     State
	lastFixed mat.Vec3
	scale     float64
}

// NewController returns a controller starting at Fixed(first preset).
func NewController(presets PresetTable, tour []mat.Vec3, driver Driver) *Controller {
	c := &Controller{
		presets: presets,
		tour:    tour,
		driver:  driver,
		scale:   DefaultScale,
	}
	if len(presets) > 0 {
		c.lastFixed = presets[0].Position
		c.state = Fixed(c.lastFixed)
	}
	return c
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Presets() PresetTable {
	return c.presets
}

func (c *Controller) Touring() bool {
	return c.state.Mode == ModeTouring
}

// LastFixed returns the target which stopping a tour returns to.
func (c *Controller) LastFixed() mat.Vec3 {
	return c.lastFixed
}

func (c *Controller) Scale() float64 {
	return c.scale
}

func (c *Controller) SetScale(s float64) {
	c.scale = s
}

// SelectPreset snaps the directive to the named preset and cancels any tour.
func (c *Controller) SelectPreset(name string) error {
	p, ok := c.presets.Lookup(name)
	if !ok {
		return ErrUnknownPreset
	}
	c.setFixed(p)
	return nil
}

// Zoom moves the target along its direction to the distance factor.
// While touring the remembered fixed target is zoomed and the tour keeps
// running. Returns false if nothing changed.
func (c *Controller) Zoom(factor float64) bool {
	if factor <= 0 || math.IsInf(factor, 0) || math.IsNaN(factor) {
		return false
	}
	var p mat.Vec3
	switch c.state.Mode {
	case ModeFixed:
		p = c.state.Target
	case ModeTouring:
		p = c.lastFixed
	default:
		return false
	}
	if p.NormSq() == 0 {
		return false
	}
	target := p.Normalized().Mul(float32(factor))
	if c.state.Mode == ModeTouring {
		c.lastFixed = target
		return true
	}
	c.setFixed(target)
	return true
}

// ToggleTour starts the tour, or stops it returning to the last fixed target.
func (c *Controller) ToggleTour() {
	if c.state.Mode == ModeTouring {
		c.state = Fixed(c.lastFixed)
		return
	}
	c.state = Touring(c.tour)
}

// Release drops the directive; the camera holds its pose.
func (c *Controller) Release() {
	c.state = Idle()
}

// ApplyScale parses raw as a positive number and sets the model scale.
// Invalid input is ignored.
func (c *Controller) ApplyScale(raw string) bool {
	s, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
		return false
	}
	c.scale = s
	return true
}

// Frame advances the camera pose by dt seconds.
func (c *Controller) Frame(dt float64, pose *Pose) {
	c.driver.Update(&c.state, dt, pose)
}

func (c *Controller) setFixed(p mat.Vec3) {
	c.lastFixed = p
	c.state = Fixed(p)
}
