// Package viewer ties the camera controller, hotspots, backdrop and the
// loaded model together for a host render loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/modelviewer/backdrop"
	"github.com/seqsense/modelviewer/camera"
	"github.com/seqsense/modelviewer/config"
	"github.com/seqsense/modelviewer/hotspot"
	"github.com/seqsense/modelviewer/model"
	"github.com/seqsense/modelviewer/snapshot"
)

const screenshotPrefix = "model-screenshot"

// LogFunc receives diagnostic messages, either strings or errors.
type LogFunc func(msg interface{})

type Viewer struct {
	cfg      *config.Config
	camera   *camera.Controller
	hotspots *hotspot.Set
	env      backdrop.Backdrop
	pose     camera.Pose
	model    *model.Model
	log      LogFunc

	modelUpdated bool
	envUpdated   bool
}

func New(cfg *config.Config, log LogFunc) *Viewer {
	if log == nil {
		log = func(interface{}) {}
	}
	v := &Viewer{
		cfg:        cfg,
		camera:     cfg.NewController(),
		hotspots:   cfg.HotspotSet(),
		log:        log,
		envUpdated: true,
	}
	env, ok := backdrop.Lookup(cfg.Environment)
	if !ok {
		log("unknown environment " + cfg.Environment + ", using " + env.Name)
	}
	v.env = env
	if s := v.camera.State(); s.Mode == camera.ModeFixed {
		v.pose.Position = s.Target
	}
	return v
}

func (v *Viewer) Config() *config.Config {
	return v.cfg
}

func (v *Viewer) Camera() *camera.Controller {
	return v.camera
}

func (v *Viewer) Hotspots() *hotspot.Set {
	return v.hotspots
}

func (v *Viewer) Pose() camera.Pose {
	return v.pose
}

// Frame runs the camera driver for one rendered frame.
func (v *Viewer) Frame(dt float64) camera.Pose {
	v.camera.Frame(dt, &v.pose)
	return v.pose
}

// Look releases the camera and puts it at p, facing the origin.
func (v *Viewer) Look(p mat.Vec3) {
	v.camera.Release()
	v.pose = camera.Pose{Position: p}
}

func (v *Viewer) ViewMatrix() mat.Mat4 {
	return camera.ViewMatrix(v.pose)
}

func (v *Viewer) ModelMatrix() mat.Mat4 {
	return model.Matrix(v.camera.Scale())
}

func (v *Viewer) ZoomIn() bool {
	return v.camera.Zoom(v.cfg.ZoomIn)
}

func (v *Viewer) ZoomOut() bool {
	return v.camera.Zoom(v.cfg.ZoomOut)
}

// OnLoad is called by the model loader once the asset is ready.
func (v *Viewer) OnLoad(m *model.Model) {
	v.model = m
	v.modelUpdated = true
	v.log(fmt.Sprintf("model loaded (%d points, center %s, radius %s)",
		m.Cloud.Points, formatVec3(m.Center()), formatFloat(float64(m.Radius())),
	))
}

// OnLoadError reports a failed load. The viewer keeps waiting for a model.
func (v *Viewer) OnLoadError(err error) {
	v.log(fmt.Errorf("loading model: %w", err))
}

func (v *Viewer) Loaded() bool {
	return v.model != nil
}

// Model returns the loaded model and whether it changed since the last call.
func (v *Viewer) Model() (*model.Model, bool) {
	updated := v.modelUpdated
	v.modelUpdated = false
	return v.model, updated
}

// SetEnvironment switches the backdrop. Unknown names use the default preset.
func (v *Viewer) SetEnvironment(name string) {
	b, ok := backdrop.Lookup(name)
	if !ok {
		v.log("unknown environment " + name + ", using " + b.Name)
	}
	v.env = b
	v.envUpdated = true
}

// Backdrop returns the current backdrop without consuming the update flag.
func (v *Viewer) Backdrop() backdrop.Backdrop {
	return v.env
}

// Environment returns the backdrop and whether it changed since the last call.
func (v *Viewer) Environment() (backdrop.Backdrop, bool) {
	updated := v.envUpdated
	v.envUpdated = false
	return v.env, updated
}

// Screenshot saves encoded image data with a time stamped name.
func (v *Viewer) Screenshot(s snapshot.Saver, png []byte, now time.Time) error {
	return snapshot.Export(s, png, snapshot.Filename(screenshotPrefix, now, "png"), v.log)
}
