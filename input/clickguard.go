// Package input filters raw pointer events from the canvas before they
// reach the camera.
package input

import (
	"time"
)

// ClickGuardDuration is the period after a drag in which clicks are dropped.
const ClickGuardDuration = 100 * time.Millisecond

// ClickGuard drops the click event the browser fires when a drag ends,
// so releasing an orbit drag over a hotspot does not select its preset.
type ClickGuard struct {
	deadline time.Time
	moved    bool
}

func (c *ClickGuard) Move() {
	c.moved = true
}

func (c *ClickGuard) DragStart() {
	c.moved = false
}

func (c *ClickGuard) DragEnd(now time.Time) {
	c.deadline = now.Add(ClickGuardDuration)
}

// Click reports whether a click at now should be handled.
func (c *ClickGuard) Click(now time.Time) bool {
	return c.deadline.IsZero() || !c.moved || c.deadline.Before(now)
}
