// Package config loads and validates the user settings file. The
// persisted window geometry lives elsewhere (internal/store); this file
// holds the knobs a user edits by hand or through the settings TUI.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/1broseidon/deskclock/internal/geometry"
	"github.com/1broseidon/deskclock/internal/render"
)

// Config is the effective settings record.
type Config struct {
	// Format is the clock format string with inline color codes, e.g.
	// "&(5fd7ff)15:04&(444444):&(5fd7ff)05". Fragments pass through
	// time.Format.
	Format string `yaml:"format"`

	// Background is the window background color as "rrggbb".
	Background string `yaml:"background"`

	// ChromeHeight overrides the titlebar height used for border
	// compensation. 0 means the built-in default.
	ChromeHeight int `yaml:"chrome_height"`

	// SaveDebounceMS is the quiet period before geometry changes are
	// written to disk. 0 means the built-in default (1000).
	SaveDebounceMS int `yaml:"save_debounce_ms"`

	// FrameRate is the update loop cadence in frames per second.
	FrameRate int `yaml:"frame_rate"`

	AlwaysOnTop *bool `yaml:"always_on_top"`
	Resizable   *bool `yaml:"resizable"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	onTop := true
	resizable := true
	return &Config{
		Format:         "&(5fd7ff)15:04&(444444):&(5fd7ff)05",
		Background:     "101010",
		ChromeHeight:   geometry.DefaultChromeHeight,
		SaveDebounceMS: 1000,
		FrameRate:      60,
		AlwaysOnTop:    &onTop,
		Resizable:      &resizable,
	}
}

// Spans parses the clock format into colored spans.
func (c *Config) Spans() ([]render.Span, error) {
	return render.ParseSpans(c.Format)
}

// BackgroundColor parses the background hex color.
func (c *Config) BackgroundColor() (uint32, error) {
	return parseColor(c.Background)
}

// OnTop reports the always-on-top setting with its default applied.
func (c *Config) OnTop() bool {
	return c.AlwaysOnTop == nil || *c.AlwaysOnTop
}

// CanResize reports the resizable setting with its default applied.
func (c *Config) CanResize() bool {
	return c.Resizable == nil || *c.Resizable
}

// Validate checks the settings for values the widget cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Format) == "" {
		return &ValidationError{Field: "format", Msg: "must not be empty"}
	}
	if _, err := render.ParseSpans(c.Format); err != nil {
		return &ValidationError{Field: "format", Msg: err.Error()}
	}
	if _, err := parseColor(c.Background); err != nil {
		return &ValidationError{Field: "background", Msg: err.Error()}
	}
	if c.ChromeHeight < 0 {
		return &ValidationError{Field: "chrome_height", Msg: "must not be negative"}
	}
	if c.SaveDebounceMS < 0 {
		return &ValidationError{Field: "save_debounce_ms", Msg: "must not be negative"}
	}
	if c.FrameRate < 0 || c.FrameRate > 240 {
		return &ValidationError{Field: "frame_rate", Msg: "must be between 0 and 240"}
	}
	return nil
}

// ValidationError names the offending field so CLI output can point at
// it directly.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func parseColor(hex string) (uint32, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("color %q is not 6 hex digits", hex)
	}
	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", hex, err)
	}
	return uint32(val), nil
}
