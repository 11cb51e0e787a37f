package camera

import (
	"github.com/seqsense/pcgol/mat"
)

// Mode is the kind of camera directive held by a State.
type Mode int

const (
	ModeIdle Mode = iota
	ModeFixed
	ModeTouring
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeFixed:
		return "fixed"
	case ModeTouring:
		return "touring"
	default:
		return "unknown"
	}
}

// State is the current camera directive.
// Only the fields of the active Mode are meaningful.
type State struct {
	Mode Mode

	// ModeFixed
	Target mat.Vec3

	// ModeTouring
	Waypoints []mat.Vec3
	Index     int
	Progress  float64
}

// Fixed returns a state converging to target.
func Fixed(target mat.Vec3) State {
	return State{Mode: ModeFixed, Target: target}
}

// Touring returns a state sweeping through waypoints from the first one.
func Touring(waypoints []mat.Vec3) State {
	return State{Mode: ModeTouring, Waypoints: waypoints}
}

// Idle returns a state which leaves the camera where it is.
func Idle() State {
	return State{Mode: ModeIdle}
}
