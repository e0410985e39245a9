// Package store persists window geometry to a small JSON file and
// schedules debounced writes of it.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/1broseidon/deskclock/internal/geometry"
)

// ErrNotFound is returned by Load when no geometry file exists yet.
// Callers treat it as first run, not as a failure.
var ErrNotFound = errors.New("no saved geometry")

const formatVersion = 1

// persistedGeometry is the serialization contract: exactly the five
// stored fields plus a version number. Runtime-only flags on
// geometry.WindowGeometry have no counterpart here, so they cannot
// round-trip through storage by construction.
type persistedGeometry struct {
	Version int      `json:"version"`
	Height  int      `json:"height"`
	Width   int      `json:"width"`
	Monitor int      `json:"monitor"`
	Position position `json:"position"`
	Border  bool     `json:"border"`
}

type position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Store reads and writes the geometry file at a fixed path.
type Store struct {
	path string
}

// New creates a store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted geometry. A missing file yields ErrNotFound;
// a file that exists but does not parse is a hard error, since guessing
// at partial geometry would silently change the first-run behavior.
func (s *Store) Load() (geometry.WindowGeometry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return geometry.WindowGeometry{}, ErrNotFound
		}
		return geometry.WindowGeometry{}, fmt.Errorf("%s: failed to read: %w", s.path, err)
	}

	var rec persistedGeometry
	if err := json.Unmarshal(data, &rec); err != nil {
		return geometry.WindowGeometry{}, fmt.Errorf("%s: failed to parse: %w", s.path, err)
	}

	return geometry.WindowGeometry{
		Width:   rec.Width,
		Height:  rec.Height,
		Monitor: rec.Monitor,
		X:       rec.Position.X,
		Y:       rec.Position.Y,
		Border:  rec.Border,
	}, nil
}

// Save writes the persisted subset of g, wholesale. The write goes
// through a temp file and rename so a crash mid-write cannot leave a
// truncated record behind.
func (s *Store) Save(g geometry.WindowGeometry) error {
	rec := persistedGeometry{
		Version: formatVersion,
		Height:  g.Height,
		Width:   g.Width,
		Monitor: g.Monitor,
		Position: position{
			X: g.X,
			Y: g.Y,
		},
		Border: g.Border,
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode geometry: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".geometry-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%s: failed to write: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%s: failed to close: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}
