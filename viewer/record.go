package viewer

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/seqsense/modelviewer/camera"
)

// Step is a console command issued at a point in time.
type Step struct {
	At   float64
	Line string
}

// Sample is the camera pose after a frame.
type Sample struct {
	T    float64
	Mode camera.Mode
	Pose camera.Pose
}

var (
	errFrameRate = errors.New("frame rate must be finite and >0")
	errDuration  = errors.New("duration must be finite and >=0")
)

// Record drives the viewer headlessly at a fixed frame rate and returns the
// pose of every frame. Steps run before the first frame at or after their time.
func Record(c *Console, fps, duration float64, steps []Step) ([]Sample, error) {
	if fps <= 0 || math.IsNaN(fps) || math.IsInf(fps, 0) {
		return nil, errFrameRate
	}
	if duration < 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return nil, errDuration
	}
	steps = append([]Step(nil), steps...)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].At < steps[j].At })

	dt := 1 / fps
	n := int(duration*fps + 0.5)
	samples := make([]Sample, 0, n)
	for i := 1; i <= n; i++ {
		t := float64(i) * dt
		for len(steps) > 0 && steps[0].At <= t {
			if _, err := c.Run(steps[0].Line); err != nil {
				return samples, fmt.Errorf("%q at %.3fs: %w", steps[0].Line, steps[0].At, err)
			}
			steps = steps[1:]
		}
		pose := c.v.Frame(dt)
		samples = append(samples, Sample{T: t, Mode: c.v.camera.State().Mode, Pose: pose})
	}
	return samples, nil
}
