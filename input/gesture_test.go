package input

import (
	"reflect"
	"testing"
)

type handlerRecorder struct {
	ops   []string
	x, y  int
	pinch float64
}

func (h *handlerRecorder) DragStart(x, y int) {
	h.ops = append(h.ops, "start")
	h.x, h.y = x, y
}

func (h *handlerRecorder) Drag(x, y int) {
	h.ops = append(h.ops, "drag")
	h.x, h.y = x, y
}

func (h *handlerRecorder) DragEnd(x, y int) {
	h.ops = append(h.ops, "end")
	h.x, h.y = x, y
}

func (h *handlerRecorder) Pinch(delta float64) {
	h.ops = append(h.ops, "pinch")
	h.pinch += delta
}

func TestGesture_Drag(t *testing.T) {
	h := &handlerRecorder{}
	g := &Gesture{Handler: h}

	g.Down(Pointer{ID: 1, X: 10, Y: 10, Primary: true})
	if len(h.ops) != 0 {
		t.Fatalf("Pointer down must not start dragging, got %v", h.ops)
	}
	g.Move(Pointer{ID: 1, X: 20, Y: 15, Primary: true})
	g.Move(Pointer{ID: 1, X: 30, Y: 20, Primary: true})
	g.Up(Pointer{ID: 1, X: 30, Y: 20, Primary: true})

	expected := []string{"start", "drag", "drag", "end"}
	if !reflect.DeepEqual(expected, h.ops) {
		t.Errorf("Expected %v, got %v", expected, h.ops)
	}
	if h.x != 30 || h.y != 20 {
		t.Errorf("Drag must end at the last position, got (%d, %d)", h.x, h.y)
	}
}

func TestGesture_Click(t *testing.T) {
	h := &handlerRecorder{}
	g := &Gesture{Handler: h}

	g.Down(Pointer{ID: 1, X: 10, Y: 10, Primary: true})
	g.Up(Pointer{ID: 1, X: 10, Y: 10, Primary: true})
	if len(h.ops) != 0 {
		t.Errorf("Click without move must not be a drag, got %v", h.ops)
	}
	g.Move(Pointer{ID: 1, X: 20, Y: 20, Primary: true})
	if len(h.ops) != 0 {
		t.Errorf("Hover move must be ignored, got %v", h.ops)
	}
}

func TestGesture_Pinch(t *testing.T) {
	h := &handlerRecorder{}
	g := &Gesture{Handler: h}

	g.Down(Pointer{ID: 1, X: 0, Y: 0, Primary: true})
	g.Down(Pointer{ID: 2, X: 100, Y: 0})
	g.Move(Pointer{ID: 2, X: 50, Y: 0})
	g.Move(Pointer{ID: 2, X: 40, Y: 0})
	g.Up(Pointer{ID: 2, X: 40, Y: 0})
	g.Up(Pointer{ID: 1, X: 0, Y: 0, Primary: true})

	expected := []string{"pinch", "pinch"}
	if !reflect.DeepEqual(expected, h.ops) {
		t.Errorf("Expected %v, got %v", expected, h.ops)
	}
	if h.pinch != 6 {
		t.Errorf("Closing 60px must be a pinch of 6, got %f", h.pinch)
	}
}
