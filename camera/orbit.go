package camera

import (
	"math"

	"github.com/seqsense/pcgol/mat"
)

const (
	orbitRate      = 0.01
	minDistance    = 0.1
	maxDistance    = 100.0
	maxPitch       = math.Pi/2 - 0.01
	wheelRateBase  = 0.1
	wheelRateRatio = 0.05
)

// Orbit is a free camera rotating around the origin by mouse drag.
type Orbit struct {
	Yaw, Pitch, Distance float64

	yaw0, pitch0 float64
	x0, y0       int
	dragging     bool
}

// OrbitFrom returns the orbit passing through p.
func OrbitFrom(p mat.Vec3) Orbit {
	d := float64(p.Norm())
	if d == 0 {
		return Orbit{Distance: minDistance}
	}
	o := Orbit{
		Yaw:      math.Atan2(float64(p[0]), float64(p[2])),
		Pitch:    math.Asin(float64(p[1]) / d),
		Distance: d,
	}
	o.clamp()
	return o
}

func (o *Orbit) Dragging() bool {
	return o.dragging
}

func (o *Orbit) DragStart(x, y int) {
	o.dragging = true
	o.x0, o.y0 = x, y
	o.yaw0, o.pitch0 = o.Yaw, o.Pitch
}

func (o *Orbit) Drag(x, y int) {
	if !o.dragging {
		return
	}
	o.Yaw = math.Remainder(o.yaw0-orbitRate*float64(x-o.x0), 2*math.Pi)
	o.Pitch = o.pitch0 + orbitRate*float64(y-o.y0)
	o.clamp()
}

func (o *Orbit) DragEnd(x, y int) {
	if !o.dragging {
		return
	}
	o.Drag(x, y)
	o.dragging = false
}

// Wheel moves the camera toward or away from the origin.
func (o *Orbit) Wheel(delta float64) {
	o.Distance += delta * (o.Distance*wheelRateRatio + wheelRateBase)
	o.clamp()
}

func (o Orbit) Position() mat.Vec3 {
	sy, cy := math.Sincos(o.Yaw)
	sp, cp := math.Sincos(o.Pitch)
	return mat.Vec3{
		float32(o.Distance * cp * sy),
		float32(o.Distance * sp),
		float32(o.Distance * cp * cy),
	}
}

func (o *Orbit) clamp() {
	switch {
	case o.Pitch > maxPitch:
		o.Pitch = maxPitch
	case o.Pitch < -maxPitch:
		o.Pitch = -maxPitch
	}
	switch {
	case o.Distance < minDistance:
		o.Distance = minDistance
	case o.Distance > maxDistance:
		o.Distance = maxDistance
	}
}
