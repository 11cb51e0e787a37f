package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/seqsense/modelviewer/camera"
	"github.com/seqsense/modelviewer/config"
	"github.com/seqsense/modelviewer/viewer"
)

type sentLines []string

func (s *sentLines) Send(line string) error {
	*s = append(*s, line)
	return nil
}

type failingSender struct{}

func (failingSender) Send(string) error {
	return errors.New("closed")
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestKeys(t *testing.T) {
	var sent sentLines
	v := viewer.New(config.DefaultConfig(), nil)
	m := update(t, New(v, &sent), key("3"), key("t"), key("e"))

	if !v.Camera().Touring() {
		t.Error("Tour must be started")
	}
	expected := []string{"preset Left", "tour", "env night"}
	if strings.Join(sent, ",") != strings.Join(expected, ",") {
		t.Errorf("Expected %v to be sent, got %v", expected, sent)
	}

	update(t, m, key("2"))
	if s := v.Camera().State(); s.Mode != camera.ModeFixed {
		t.Errorf("Preset must stop the tour, got %s", s.Mode)
	}
}

func TestScaleInput(t *testing.T) {
	v := viewer.New(config.DefaultConfig(), nil)
	m := update(t, New(v, nil),
		key("s"), key("0"), key("."), key("0"), key("2"), key("x"),
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if s := v.Camera().Scale(); s != 0.02 {
		t.Errorf("Expected scale 0.02, got %f", s)
	}

	update(t, m, key("s"), key("-"), key("1"), tea.KeyMsg{Type: tea.KeyEnter})
	if s := v.Camera().Scale(); s != 0.02 {
		t.Errorf("Invalid scale must be ignored, got %f", s)
	}
}

func TestTick(t *testing.T) {
	v := viewer.New(config.DefaultConfig(), nil)
	if err := v.Camera().SelectPreset(camera.PresetRight); err != nil {
		t.Fatal(err)
	}
	m := New(v, nil)
	start := time.Now()
	var msgs []tea.Msg
	for i := 0; i < 600; i++ {
		msgs = append(msgs, tickMsg(start.Add(time.Duration(i)*frameInterval)))
	}
	update(t, m, msgs...)
	right, _ := camera.DefaultPresets().Lookup(camera.PresetRight)
	if d := v.Pose().Position.Sub(right).Norm(); d > 1e-3 {
		t.Errorf("Camera must converge to %v, got %v", right, v.Pose().Position)
	}
}

func TestRemoteError(t *testing.T) {
	v := viewer.New(config.DefaultConfig(), nil)
	m := update(t, New(v, failingSender{}), key("t"))
	if !strings.Contains(m.View(), "remote: closed") {
		t.Error("Remote error must be shown")
	}
	if !v.Camera().Touring() {
		t.Error("Command must be applied locally even if the remote fails")
	}
}

func TestRemoteCommand(t *testing.T) {
	var sent sentLines
	v := viewer.New(config.DefaultConfig(), nil)
	m := update(t, New(v, &sent), remoteMsg("tour"))
	if !v.Camera().Touring() {
		t.Error("Remote command must be applied")
	}
	if len(sent) != 0 {
		t.Errorf("Remote command must not be sent back, got %v", sent)
	}
	if !strings.Contains(m.View(), "return to") {
		t.Error("Tour return target must be shown")
	}

	m = update(t, m, remoteMsg("preset Bottom"))
	if !strings.Contains(m.View(), "unknown preset") {
		t.Errorf("Remote command error must be shown, got %q", m.View())
	}
	m = update(t, m, remoteErrMsg{err: errors.New("closed")})
	if !strings.Contains(m.View(), "remote: closed") {
		t.Error("Remote disconnection must be shown")
	}
}
