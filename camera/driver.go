package camera

import (
	"math"

	"github.com/seqsense/pcgol/mat"
)

const (
	DefaultBlendFactor = 0.05
	DefaultTourSpeed   = 0.5
	DefaultRefFPS      = 60.0

	// segmentEpsilon is the rounding tolerated in summed frame times.
	segmentEpsilon = 1e-9
)

// Pose is the live camera pose.
type Pose struct {
	Position mat.Vec3
	Target   mat.Vec3
}

// Driver computes the camera pose for each rendered frame.
type Driver struct {
	// BlendFactor is the fraction of the remaining distance closed per frame.
	BlendFactor float64
	// TourSpeed is the fraction of a tour segment covered per second.
	TourSpeed float64
	// FrameRateIndependent scales the blend by dt*RefFPS.
	FrameRateIndependent bool
	RefFPS               float64
}

func DefaultDriver() Driver {
	return Driver{
		BlendFactor: DefaultBlendFactor,
		TourSpeed:   DefaultTourSpeed,
		RefFPS:      DefaultRefFPS,
	}
}

// Update advances s and pose by dt seconds. It never blocks.
func (d Driver) Update(s *State, dt float64, pose *Pose) {
	if dt < 0 {
		dt = 0
	}
	switch s.Mode {
	case ModeFixed:
		pose.Position = lerp(pose.Position, s.Target, float32(d.blend(dt)))
		pose.Target = mat.Vec3{}
	case ModeTouring:
		n := len(s.Waypoints)
		if n == 0 {
			return
		}
		from := s.Waypoints[s.Index%n]
		to := s.Waypoints[(s.Index+1)%n]
		p := s.Progress + dt*d.TourSpeed
		if p >= 1-segmentEpsilon {
			p = 1
		}
		pose.Position = lerp(from, to, float32(p))
		pose.Target = mat.Vec3{}
		if p >= 1 {
			s.Index = (s.Index + 1) % n
			p = 0
		}
		s.Progress = p
	}
}

func (d Driver) blend(dt float64) float64 {
	if !d.FrameRateIndependent {
		return d.BlendFactor
	}
	a := 1 - math.Pow(1-d.BlendFactor, dt*d.RefFPS)
	switch {
	case a < 0:
		return 0
	case a > 1:
		return 1
	}
	return a
}

func lerp(a, b mat.Vec3, t float32) mat.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
