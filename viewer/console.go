package viewer

import (
	"errors"
	"strconv"
	"strings"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/modelviewer/camera"
)

var errArgumentNumber = errors.New("invalid number of arguments")
var errInvalidCommand = errors.New("invalid command")
var errNoScreenshot = errors.New("screenshot is not available")

// Console runs text commands against a viewer.
type Console struct {
	v *Viewer
	// Screenshot is invoked by the screenshot command if set.
	Screenshot func() error
}

func NewConsole(v *Viewer) *Console {
	return &Console{v: v}
}

var consoleCommands = map[string]func(c *Console, args []string) (string, error){
	"preset": func(c *Console, args []string) (string, error) {
		if len(args) != 1 {
			return "", errArgumentNumber
		}
		if err := c.v.camera.SelectPreset(args[0]); err != nil {
			return "", err
		}
		return formatState(c.v.camera.State()), nil
	},
	"zoom": func(c *Console, args []string) (string, error) {
		if len(args) != 1 {
			return "", errArgumentNumber
		}
		f, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return "", err
		}
		c.v.camera.Zoom(f)
		return formatState(c.v.camera.State()), nil
	},
	"zoom_in": func(c *Console, args []string) (string, error) {
		if len(args) != 0 {
			return "", errArgumentNumber
		}
		c.v.ZoomIn()
		return formatState(c.v.camera.State()), nil
	},
	"zoom_out": func(c *Console, args []string) (string, error) {
		if len(args) != 0 {
			return "", errArgumentNumber
		}
		c.v.ZoomOut()
		return formatState(c.v.camera.State()), nil
	},
	"tour": func(c *Console, args []string) (string, error) {
		if len(args) != 0 {
			return "", errArgumentNumber
		}
		c.v.camera.ToggleTour()
		return formatState(c.v.camera.State()), nil
	},
	"release": func(c *Console, args []string) (string, error) {
		if len(args) != 0 {
			return "", errArgumentNumber
		}
		c.v.camera.Release()
		return formatState(c.v.camera.State()), nil
	},
	"scale": func(c *Console, args []string) (string, error) {
		switch len(args) {
		case 0:
		case 1:
			c.v.camera.ApplyScale(args[0])
		default:
			return "", errArgumentNumber
		}
		return formatFloat(c.v.camera.Scale()), nil
	},
	"env": func(c *Console, args []string) (string, error) {
		switch len(args) {
		case 0:
		case 1:
			c.v.SetEnvironment(args[0])
		default:
			return "", errArgumentNumber
		}
		return c.v.env.Name, nil
	},
	"hover": func(c *Console, args []string) (string, error) {
		if len(args) != 1 {
			return "", errArgumentNumber
		}
		return "", c.v.hotspots.Enter(args[0])
	},
	"leave": func(c *Console, args []string) (string, error) {
		if len(args) != 1 {
			return "", errArgumentNumber
		}
		return "", c.v.hotspots.Leave(args[0])
	},
	"click": func(c *Console, args []string) (string, error) {
		if len(args) != 1 {
			return "", errArgumentNumber
		}
		if err := c.v.hotspots.Click(args[0], c.v.camera); err != nil {
			return "", err
		}
		return formatState(c.v.camera.State()), nil
	},
	"look": func(c *Console, args []string) (string, error) {
		if len(args) != 3 {
			return "", errArgumentNumber
		}
		var p mat.Vec3
		for i, a := range args {
			f, err := strconv.ParseFloat(a, 32)
			if err != nil {
				return "", err
			}
			p[i] = float32(f)
		}
		c.v.Look(p)
		return formatVec3(p), nil
	},
	"pose": func(c *Console, args []string) (string, error) {
		if len(args) != 0 {
			return "", errArgumentNumber
		}
		return formatVec3(c.v.pose.Position), nil
	},
	"state": func(c *Console, args []string) (string, error) {
		if len(args) != 0 {
			return "", errArgumentNumber
		}
		return formatState(c.v.camera.State()), nil
	},
	"screenshot": func(c *Console, args []string) (string, error) {
		if len(args) != 0 {
			return "", errArgumentNumber
		}
		if c.Screenshot == nil {
			return "", errNoScreenshot
		}
		return "", c.Screenshot()
	},
}

// Run executes one command line and returns its textual result.
func (c *Console) Run(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	fn, ok := consoleCommands[args[0]]
	if !ok {
		return "", errInvalidCommand
	}
	return fn(c, args[1:])
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func formatVec3(v mat.Vec3) string {
	return strings.Join([]string{
		strconv.FormatFloat(float64(v[0]), 'f', 3, 32),
		strconv.FormatFloat(float64(v[1]), 'f', 3, 32),
		strconv.FormatFloat(float64(v[2]), 'f', 3, 32),
	}, " ")
}

func formatState(s camera.State) string {
	switch s.Mode {
	case camera.ModeFixed:
		return "fixed " + formatVec3(s.Target)
	case camera.ModeTouring:
		return "touring " + strconv.Itoa(s.Index) + " " + formatFloat(s.Progress)
	default:
		return s.Mode.String()
	}
}
