// Package tui is a terminal control panel for the viewer camera.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/seqsense/modelviewer/backdrop"
	"github.com/seqsense/modelviewer/camera"
	"github.com/seqsense/modelviewer/viewer"
)

const frameInterval = 16 * time.Millisecond

var (
	title  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	label  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	value  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	active = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	warn   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	panel  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Sender forwards command lines to a remote viewer.
type Sender interface {
	Send(line string) error
}

// Receiver delivers command lines issued by other clients of the relay.
type Receiver interface {
	Receive() (string, error)
}

type tickMsg time.Time

type remoteMsg string

type remoteErrMsg struct{ err error }

type Model struct {
	v       *viewer.Viewer
	console *viewer.Console
	remote  Sender

	scaleInput string
	editing    bool
	lastFrame  time.Time
	status     string
}

func New(v *viewer.Viewer, remote Sender) Model {
	return Model{
		v:          v,
		console:    viewer.NewConsole(v),
		remote:     remote,
		scaleInput: fmt.Sprintf("%g", v.Camera().Scale()),
	}
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.editScale(msg), nil
		}
		return m.handleKey(msg)
	case tickMsg:
		now := time.Time(msg)
		dt := frameInterval.Seconds()
		if !m.lastFrame.IsZero() {
			dt = now.Sub(m.lastFrame).Seconds()
		}
		m.lastFrame = now
		m.v.Frame(dt)
		return m, tick()
	case remoteMsg:
		if _, err := m.console.Run(string(msg)); err != nil {
			m.status = "remote " + string(msg) + ": " + err.Error()
		} else {
			m.status = "remote " + string(msg)
		}
	case remoteErrMsg:
		m.status = "remote: " + msg.err.Error()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	presets := m.v.Camera().Presets()
	switch k := msg.String(); k {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(k[0] - '1')
		if i < len(presets) {
			m.run("preset " + presets[i].Name)
		}
	case "+", "=":
		m.run("zoom_in")
	case "-":
		m.run("zoom_out")
	case "t":
		m.run("tour")
	case "r":
		m.run("release")
	case "e":
		m.run("env " + backdrop.Next(m.v.Backdrop().Name).Name)
	case "s":
		m.editing = true
		m.scaleInput = ""
	}
	return m, nil
}

func (m Model) editScale(msg tea.KeyMsg) Model {
	switch msg.Type {
	case tea.KeyEnter:
		m.editing = false
		m.run("scale " + m.scaleInput)
		m.scaleInput = fmt.Sprintf("%g", m.v.Camera().Scale())
	case tea.KeyEsc:
		m.editing = false
		m.scaleInput = fmt.Sprintf("%g", m.v.Camera().Scale())
	case tea.KeyBackspace:
		if len(m.scaleInput) > 0 {
			m.scaleInput = m.scaleInput[:len(m.scaleInput)-1]
		}
	case tea.KeyRunes:
		m.scaleInput += string(msg.Runes)
	}
	return m
}

// run applies the command locally and mirrors it to the remote viewer.
func (m *Model) run(line string) {
	if _, err := m.console.Run(line); err != nil {
		m.status = err.Error()
		return
	}
	m.status = line
	if m.remote != nil {
		if err := m.remote.Send(line); err != nil {
			m.status = "remote: " + err.Error()
		}
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(title.Render("model viewer") + "\n\n")

	s := m.v.Camera().State()
	mode := s.Mode.String()
	if s.Mode == camera.ModeTouring {
		mode = active.Render(fmt.Sprintf("%s %d (%.0f%%)", mode, s.Index, s.Progress*100))
	} else {
		mode = value.Render(mode)
	}
	p := m.v.Pose().Position
	env := m.v.Backdrop()

	row := func(k, v string) {
		b.WriteString(label.Render(fmt.Sprintf("%-12s", k)) + v + "\n")
	}
	row("mode", mode)
	switch s.Mode {
	case camera.ModeFixed:
		row("target", value.Render(fmt.Sprintf("%6.3f %6.3f %6.3f", s.Target[0], s.Target[1], s.Target[2])))
	case camera.ModeTouring:
		t := m.v.Camera().LastFixed()
		row("return to", value.Render(fmt.Sprintf("%6.3f %6.3f %6.3f", t[0], t[1], t[2])))
	}
	row("camera", value.Render(fmt.Sprintf("%6.3f %6.3f %6.3f", p[0], p[1], p[2])))
	row("environment", value.Render(env.Label))
	scale := fmt.Sprintf("%g", m.v.Camera().Scale())
	if m.editing {
		scale = warn.Render("> " + m.scaleInput + "_")
	}
	row("scale", value.Render(scale))
	if !m.v.Loaded() {
		row("model", warn.Render("loading..."))
	}

	var names []string
	for i, n := range m.v.Camera().Presets().Names() {
		names = append(names, fmt.Sprintf("%d:%s", i+1, n))
	}
	b.WriteString("\n" + label.Render(strings.Join(names, "  ")) + "\n")
	tourKey := "t:start tour"
	if s.Mode == camera.ModeTouring {
		tourKey = "t:stop tour"
	}
	b.WriteString(label.Render("+/-:zoom  "+tourKey+"  r:release  e:environment  s:scale  q:quit") + "\n")
	if m.status != "" {
		b.WriteString("\n" + dimStatus(m.status) + "\n")
	}
	return panel.Render(b.String())
}

func dimStatus(s string) string {
	return label.Render("> " + s)
}

// Run starts the panel on the terminal. If remote is also a Receiver,
// commands from other relay clients are applied to the panel's viewer.
func Run(v *viewer.Viewer, remote Sender) error {
	p := tea.NewProgram(New(v, remote), tea.WithAltScreen())
	if r, ok := remote.(Receiver); ok {
		go receive(p, r)
	}
	_, err := p.Run()
	return err
}

func receive(p *tea.Program, r Receiver) {
	for {
		line, err := r.Receive()
		if err != nil {
			p.Send(remoteErrMsg{err: err})
			return
		}
		p.Send(remoteMsg(line))
	}
}
