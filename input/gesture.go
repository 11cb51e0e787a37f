package input

import (
	"math"
)

const pinchRate = 0.1

type gestureMode int

const (
	gestureNone gestureMode = iota
	gestureRotate
	gesturePinch
)

// Pointer is a mouse, pen or touch contact in canvas pixels.
type Pointer struct {
	ID      int
	X, Y    int
	Primary bool
}

// GestureHandler receives the camera operations recognized by Gesture.
type GestureHandler interface {
	DragStart(x, y int)
	Drag(x, y int)
	DragEnd(x, y int)
	// Pinch is called with a wheel equivalent delta, positive when the
	// contacts move closer.
	Pinch(delta float64)
}

// Gesture turns pointer events into a one pointer orbit drag or a two
// pointer pinch.
type Gesture struct {
	Handler GestureHandler

	pointers  map[int]Pointer
	pointer0  Pointer
	mode      gestureMode
	distance0 float64
}

func (g *Gesture) Down(p Pointer) {
	if g.pointers == nil {
		g.pointers = make(map[int]Pointer)
	}
	g.pointers[p.ID] = p

	switch len(g.pointers) {
	case 1:
		g.pointer0 = p
	case 2:
		if g.mode == gestureRotate {
			g.Handler.DragEnd(g.pointer0.X, g.pointer0.Y)
			g.mode = gestureNone
		}
		g.distance0 = g.spread()
	}
}

func (g *Gesture) Move(p Pointer) {
	if _, ok := g.pointers[p.ID]; !ok {
		return
	}
	g.pointers[p.ID] = p

	if g.mode == gestureNone {
		switch len(g.pointers) {
		case 1:
			g.Handler.DragStart(g.pointer0.X, g.pointer0.Y)
			g.mode = gestureRotate
		case 2:
			g.mode = gesturePinch
		}
	}
	switch g.mode {
	case gestureRotate:
		if p.Primary {
			g.Handler.Drag(p.X, p.Y)
		}
	case gesturePinch:
		if len(g.pointers) != 2 {
			break
		}
		d := g.spread()
		g.Handler.Pinch((g.distance0 - d) * pinchRate)
		g.distance0 = d
	}
	if p.Primary {
		g.pointer0 = p
	}
}

func (g *Gesture) Up(p Pointer) {
	if _, ok := g.pointers[p.ID]; !ok {
		return
	}
	delete(g.pointers, p.ID)
	if p.Primary {
		g.pointer0 = p
	}
	if len(g.pointers) > 0 {
		return
	}
	if g.mode == gestureRotate {
		g.Handler.DragEnd(g.pointer0.X, g.pointer0.Y)
	}
	g.mode = gestureNone
}

func (g *Gesture) spread() float64 {
	var pp []Pointer
	for _, p := range g.pointers {
		pp = append(pp, p)
	}
	if len(pp) < 2 {
		return 0
	}
	return math.Hypot(float64(pp[0].X-pp[1].X), float64(pp[0].Y-pp[1].Y))
}
