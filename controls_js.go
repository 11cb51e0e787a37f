package main

import (
	"fmt"
	"syscall/js"
	"time"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/modelviewer/backdrop"
	"github.com/seqsense/modelviewer/camera"
	"github.com/seqsense/modelviewer/hotspot"
	"github.com/seqsense/modelviewer/input"
	"github.com/seqsense/modelviewer/viewer"
)

const (
	labelStartTour = "Start Tour"
	labelStopTour  = "Stop Tour"
)

// controls binds the DOM control panel and the hotspot overlay to console
// command lines.
type controls struct {
	doc     js.Value
	chLine  chan<- string
	cg      *input.ClickGuard
	funcs   []js.Func
	tour    js.Value
	scale   js.Value
	env     js.Value
	loading js.Value
	spots   map[string]hotspotElement
}

type hotspotElement struct {
	div, tooltip js.Value
	anchor       mat.Vec3
}

func newControls(doc js.Value, v *viewer.Viewer, cg *input.ClickGuard, chLine chan<- string) *controls {
	c := &controls{
		doc:     doc,
		chLine:  chLine,
		cg:      cg,
		tour:    doc.Call("getElementById", "tourToggle"),
		scale:   doc.Call("getElementById", "scaleInput"),
		env:     doc.Call("getElementById", "envSelect"),
		loading: doc.Call("getElementById", "loading"),
		spots:   make(map[string]hotspotElement),
	}

	presets := doc.Call("getElementById", "presets")
	for _, name := range v.Camera().Presets().Names() {
		b := doc.Call("createElement", "button")
		b.Set("textContent", name)
		c.on(b, "click", "preset "+name)
		presets.Call("appendChild", b)
	}

	c.on(doc.Call("getElementById", "zoomIn"), "click", "zoom_in")
	c.on(doc.Call("getElementById", "zoomOut"), "click", "zoom_out")
	c.on(c.tour, "click", "tour")
	c.on(doc.Call("getElementById", "screenshot"), "click", "screenshot")
	c.onFunc(doc.Call("getElementById", "scaleApply"), "click", func() string {
		return "scale " + c.scale.Get("value").String()
	})
	c.scale.Set("value", fmt.Sprint(v.Camera().Scale()))

	env, _ := backdrop.Lookup(v.Config().Environment)
	for _, b := range backdrop.All() {
		o := doc.Call("createElement", "option")
		o.Set("value", b.Name)
		o.Set("textContent", b.Label)
		c.env.Call("appendChild", o)
	}
	c.env.Set("value", env.Name)
	c.onFunc(c.env, "change", func() string {
		return "env " + c.env.Get("value").String()
	})

	overlay := doc.Call("getElementById", "hotspots")
	for _, h := range v.Hotspots().All() {
		c.addHotspot(overlay, h)
	}
	return c
}

func (c *controls) on(el js.Value, event, line string) {
	c.onFunc(el, event, func() string { return line })
}

func (c *controls) onFunc(el js.Value, event string, line func() string) {
	if el.IsNull() || el.IsUndefined() {
		return
	}
	f := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		c.chLine <- line()
		return nil
	})
	c.funcs = append(c.funcs, f)
	el.Call("addEventListener", event, f)
}

func (c *controls) addHotspot(overlay js.Value, h *hotspot.Hotspot) {
	if overlay.IsNull() || overlay.IsUndefined() {
		return
	}
	div := c.doc.Call("createElement", "div")
	div.Set("className", "hotspot")
	tooltip := c.doc.Call("createElement", "span")
	tooltip.Set("className", "tooltip")
	tooltip.Set("textContent", h.Label)
	tooltip.Get("style").Set("display", "none")
	div.Call("appendChild", tooltip)
	overlay.Call("appendChild", div)

	c.on(div, "mouseenter", "hover "+h.ID)
	c.on(div, "mouseleave", "leave "+h.ID)
	f := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		args[0].Call("stopPropagation")
		if c.cg.Click(time.Now()) {
			c.chLine <- "click " + h.ID
		}
		return nil
	})
	c.funcs = append(c.funcs, f)
	div.Call("addEventListener", "click", f)

	c.spots[h.ID] = hotspotElement{div: div, tooltip: tooltip, anchor: h.Anchor}
}

// update reflects the viewer state in the control panel.
func (c *controls) update(v *viewer.Viewer) {
	if !c.tour.IsNull() {
		if v.Camera().Touring() {
			c.tour.Set("textContent", labelStopTour)
		} else {
			c.tour.Set("textContent", labelStartTour)
		}
	}
	if !c.scale.IsNull() && !c.scale.Equal(c.doc.Get("activeElement")) {
		c.scale.Set("value", fmt.Sprint(v.Camera().Scale()))
	}
	for _, h := range v.Hotspots().All() {
		e, ok := c.spots[h.ID]
		if !ok {
			continue
		}
		if h.Hovered() {
			e.tooltip.Get("style").Set("display", "block")
		} else {
			e.tooltip.Get("style").Set("display", "none")
		}
	}
	if !c.loading.IsNull() {
		if v.Loaded() {
			c.loading.Get("style").Set("display", "none")
		} else {
			c.loading.Get("style").Set("display", "block")
		}
	}
}

func (c *controls) setEnvironment(b backdrop.Backdrop, canvas js.Value) {
	if !c.env.IsNull() {
		c.env.Set("value", b.Name)
	}
	canvas.Get("style").Set("background", b.Gradient())
}

// layout moves hotspot markers to the projected anchor positions.
func (c *controls) layout(m mat.Mat4, width, height int) {
	for _, e := range c.spots {
		x, y, ok := camera.Project(m, e.anchor, width, height)
		style := e.div.Get("style")
		if !ok {
			style.Set("display", "none")
			continue
		}
		style.Set("display", "block")
		style.Set("left", fmt.Sprintf("%.1fpx", x))
		style.Set("top", fmt.Sprintf("%.1fpx", y))
	}
}

func (c *controls) release() {
	for _, f := range c.funcs {
		f.Release()
	}
}
