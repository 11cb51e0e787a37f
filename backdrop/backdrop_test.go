package backdrop

import (
	"reflect"
	"testing"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"sunset", "night", "dawn", "city", "warehouse"} {
		b, ok := Lookup(name)
		if !ok {
			t.Errorf("%s must be a preset", name)
		}
		if b.Name != name {
			t.Errorf("Expected %s, got %s", name, b.Name)
		}
	}

	b, ok := Lookup("forest")
	if ok {
		t.Error("forest must not be a preset")
	}
	if b.Name != Default {
		t.Errorf("Unknown preset must fall back to %s, got %s", Default, b.Name)
	}
}

func TestNames(t *testing.T) {
	expected := []string{"sunset", "night", "dawn", "city", "warehouse"}
	if names := Names(); !reflect.DeepEqual(expected, names) {
		t.Errorf("Expected %v, got %v", expected, names)
	}
}

func TestNext(t *testing.T) {
	if b := Next("warehouse"); b.Name != "sunset" {
		t.Errorf("Expected wrap around to sunset, got %s", b.Name)
	}
	if b := Next("sunset"); b.Name != "night" {
		t.Errorf("Expected night, got %s", b.Name)
	}
}

func TestGradient(t *testing.T) {
	b := Backdrop{Top: RGB{1, 0, 0}, Bottom: RGB{0, 0, 1}}
	expected := "linear-gradient(rgb(255, 0, 0), rgb(0, 0, 255))"
	if g := b.Gradient(); g != expected {
		t.Errorf("Expected %s, got %s", expected, g)
	}
}
