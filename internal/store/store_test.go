package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/1broseidon/deskclock/internal/geometry"
)

func TestLoad_MissingFileIsNotFound(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "window.json"))
	_, err := s.Load()
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for _, border := range []bool{true, false} {
		s := New(filepath.Join(t.TempDir(), "window.json"))

		in := geometry.WindowGeometry{
			Width:   300,
			Height:  100,
			Monitor: 1,
			X:       810,
			Y:       490,
			Border:  border,
			// Runtime-only flags must not survive the trip.
			NeedsCentering: true,
			Suspended:      true,
		}
		if err := s.Save(in); err != nil {
			t.Fatalf("save: %v", err)
		}

		out, err := s.Load()
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if out.Width != in.Width || out.Height != in.Height || out.Monitor != in.Monitor ||
			out.X != in.X || out.Y != in.Y || out.Border != in.Border {
			t.Fatalf("round trip mismatch: saved %+v, loaded %+v", in, out)
		}
		if out.NeedsCentering || out.Suspended {
			t.Fatalf("expected runtime flags to be false after load, got %+v", out)
		}
	}
}

func TestSave_FileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.json")
	s := New(path)

	err := s.Save(geometry.WindowGeometry{Width: 300, Height: 100, X: 810, Y: 490, Border: true})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, key := range []string{"version", "height", "width", "monitor", "position", "border"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("expected field %q in %s", key, data)
		}
	}
	for _, key := range []string{"needs_centering", "suspended"} {
		if _, ok := raw[key]; ok {
			t.Fatalf("runtime field %q must not be serialized", key)
		}
	}

	var pos map[string]int
	if err := json.Unmarshal(raw["position"], &pos); err != nil {
		t.Fatalf("parse position: %v", err)
	}
	if pos["x"] != 810 || pos["y"] != 490 {
		t.Fatalf("expected position {x:810, y:490}, got %v", pos)
	}
}

func TestLoad_MalformedFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := New(path).Load()
	if err == nil {
		t.Fatalf("expected parse error for malformed file")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("malformed file must not masquerade as first run")
	}
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "deskclock", "window.json")
	if err := New(path).Save(geometry.FirstRun()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file at %s: %v", path, err)
	}
}

func TestSave_OverwritesWholesale(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "window.json"))

	if err := s.Save(geometry.WindowGeometry{Width: 300, Height: 100, Border: true}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := s.Save(geometry.WindowGeometry{Width: 500, Height: 200, X: 5, Y: 6}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	out, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.Width != 500 || out.Height != 200 || out.X != 5 || out.Y != 6 || out.Border {
		t.Fatalf("expected second record to fully replace the first, got %+v", out)
	}
}
