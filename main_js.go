package main

import (
	"bytes"
	"errors"
	"fmt"
	"syscall/js"
	"time"

	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/modelviewer/blob"
	"github.com/seqsense/modelviewer/camera"
	"github.com/seqsense/modelviewer/config"
	"github.com/seqsense/modelviewer/input"
	"github.com/seqsense/modelviewer/model"
	"github.com/seqsense/modelviewer/snapshot"
	"github.com/seqsense/modelviewer/viewer"
)

const (
	configPath       = "viewer.yaml"
	maxFrameInterval = 0.1
	screenshotType   = "image/png"
)

type loadResult struct {
	m   *model.Model
	err error
}

type command struct {
	line            string
	resolve, reject js.Value
}

func main() {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "modelCanvas")

	logDiv := doc.Call("getElementById", "log")
	logPrint := func(msg interface{}) {
		println(fmt.Sprint(msg))
		if logDiv.IsNull() {
			return
		}
		html := logDiv.Get("innerHTML").String()
		logDiv.Set("innerHTML", fmt.Sprintf("%s%v<br/>", html, msg))
	}

	cfg, err := loadConfig()
	if err != nil {
		logPrint(err)
		cfg = config.DefaultConfig()
	}
	v := viewer.New(cfg, logPrint)

	gl, err := webgl.New(canvas)
	if err != nil {
		logPrint(err)
		return
	}
	showDebugInfo(gl, logPrint)

	r, err := newRenderer(gl, cfg.FOV, float32(cfg.PointSize))
	if err != nil {
		logPrint(err)
		return
	}
	r.setMarkers(model.Markers(v.Hotspots().Anchors()))

	chModel := make(chan loadResult, 1)
	setCursor(canvas, cursorWait)
	go func() {
		b, err := fetchGet(cfg.Asset)
		if err != nil {
			chModel <- loadResult{err: err}
			return
		}
		m, err := model.Load(bytes.NewReader(b))
		chModel <- loadResult{m: m, err: err}
	}()

	cg := &input.ClickGuard{}
	wn := &input.WheelNormalizer{}

	chLine := make(chan string)
	chRemote := make(chan string)
	ctl := newControls(doc, v, cg, chLine)
	defer ctl.release()
	remote := dialRemote(chRemote, logPrint)
	defer remote.Close()

	oc := &orbitControl{v: v, cg: cg, canvas: canvas, update: ctl.update}
	gesture := &input.Gesture{Handler: oc}

	var screenshotPending bool
	console := viewer.NewConsole(v)
	console.Screenshot = func() error {
		screenshotPending = true
		return nil
	}

	chCommand := make(chan command)
	js.Global().Set("viewerCommand",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if len(args) != 1 {
				return errorToJS(errors.New("viewerCommand requires one argument"))
			}
			line := args[0].String()
			return js.Global().Get("Promise").New(
				js.FuncOf(func(this js.Value, args []js.Value) interface{} {
					resolve, reject := args[0], args[1]
					go func() {
						chCommand <- command{line: line, resolve: resolve, reject: reject}
					}()
					return nil
				}),
			)
		}),
	)

	chFrame := make(chan float64)
	frameFunc := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		chFrame <- args[0].Float()
		return nil
	})
	defer frameFunc.Release()
	requestFrame := func() {
		js.Global().Call("requestAnimationFrame", frameFunc)
	}

	chWheel := make(chan webgl.WheelEvent)
	gl.Canvas.OnWheel(func(e webgl.WheelEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chWheel <- e
	})
	chPointerDown := make(chan webgl.PointerEvent)
	gl.Canvas.OnPointerDown(func(e webgl.PointerEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chPointerDown <- e
	})
	chPointerMove := make(chan webgl.PointerEvent)
	gl.Canvas.OnPointerMove(func(e webgl.PointerEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chPointerMove <- e
	})
	chPointerUp := make(chan webgl.PointerEvent)
	gl.Canvas.OnPointerUp(func(e webgl.PointerEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chPointerUp <- e
	})
	gl.Canvas.OnPointerOut(func(e webgl.PointerEvent) {
		chPointerUp <- e
	})
	gl.Canvas.OnContextMenu(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
	})

	run := func(line string, mirror bool) (string, error) {
		res, err := console.Run(line)
		if err != nil {
			logPrint(fmt.Errorf("%s: %w", line, err))
		} else if mirror && line != "screenshot" {
			remote.Send(line)
		}
		ctl.update(v)
		return res, err
	}

	ctl.update(v)

	var tPrev float64
	requestFrame()
	for {
		select {
		case ts := <-chFrame:
			var dt float64
			if tPrev > 0 {
				dt = (ts - tPrev) / 1000
				if dt > maxFrameInterval {
					dt = maxFrameInterval
				}
			}
			tPrev = ts
			v.Frame(dt)

			if env, updated := v.Environment(); updated {
				r.setBackdrop(env)
				ctl.setEnvironment(env, canvas)
			}
			if m, updated := v.Model(); updated {
				r.setModel(m)
				ctl.update(v)
			}
			r.resize(gl.Canvas.ClientWidth(), gl.Canvas.ClientHeight())
			view := v.ViewMatrix()
			r.draw(view, v.ModelMatrix())
			ctl.layout(r.projectionView(view), r.width, r.height)

			if screenshotPending {
				screenshotPending = false
				// toBlob must run before the drawing buffer is cleared.
				blob.FromCanvas(canvas, screenshotType, func(b blob.Blob, err error) {
					go func() {
						if err != nil {
							logPrint(err)
							return
						}
						data, err := b.Bytes()
						if err != nil {
							logPrint(err)
							return
						}
						_ = v.Screenshot(snapshot.BrowserSaver{MIMEType: screenshotType}, data, time.Now())
					}()
				})
			}
			requestFrame()
		case res := <-chModel:
			setCursor(canvas, cursorGrab)
			if res.err != nil {
				v.OnLoadError(res.err)
				break
			}
			v.OnLoad(res.m)
		case line := <-chLine:
			run(line, true)
		case line := <-chRemote:
			run(line, false)
		case c := <-chCommand:
			res, err := run(c.line, true)
			if err != nil {
				c.reject.Invoke(errorToJS(err))
				break
			}
			c.resolve.Invoke(res)
		case e := <-chPointerDown:
			if e.Button != 0 {
				break
			}
			gesture.Down(pointer(e))
		case e := <-chPointerMove:
			gesture.Move(pointer(e))
		case e := <-chPointerUp:
			gesture.Up(pointer(e))
		case e := <-chWheel:
			d, ok := wn.Normalize(e.DeltaY, time.Now())
			if !ok {
				switch {
				case e.DeltaY > 0:
					d = input.WheelUnit
				case e.DeltaY < 0:
					d = -input.WheelUnit
				}
			}
			if d == 0 {
				break
			}
			oc.Pinch(d)
		}
	}
}

// loadConfig fetches the viewer configuration next to the page.
// A missing file means defaults.
func loadConfig() (*config.Config, error) {
	b, err := fetchGet(configPath)
	if errors.Is(err, errNotFound) {
		return config.DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return config.Parse(b)
}

func pointer(e webgl.PointerEvent) input.Pointer {
	return input.Pointer{ID: e.PointerId, X: e.OffsetX, Y: e.OffsetY, Primary: e.IsPrimary}
}

// orbitControl hands the camera over to free orbit on drag and wheel.
type orbitControl struct {
	v      *viewer.Viewer
	cg     *input.ClickGuard
	canvas js.Value
	update func(*viewer.Viewer)
	orbit  camera.Orbit
}

func (o *orbitControl) DragStart(x, y int) {
	o.cg.DragStart()
	o.cg.Move()
	o.orbit = camera.OrbitFrom(o.v.Pose().Position)
	o.orbit.DragStart(x, y)
	setCursor(o.canvas, cursorGrabbing)
}

func (o *orbitControl) Drag(x, y int) {
	o.orbit.Drag(x, y)
	o.v.Look(o.orbit.Position())
	o.update(o.v)
}

func (o *orbitControl) DragEnd(x, y int) {
	o.orbit.DragEnd(x, y)
	o.v.Look(o.orbit.Position())
	o.cg.DragEnd(time.Now())
	setCursor(o.canvas, cursorGrab)
	o.update(o.v)
}

func (o *orbitControl) Pinch(delta float64) {
	orbit := camera.OrbitFrom(o.v.Pose().Position)
	orbit.Wheel(delta)
	o.v.Look(orbit.Position())
	o.update(o.v)
}
