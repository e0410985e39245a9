// Package app runs the clock's frame loop: input, geometry
// reconciliation, rendering, and debounced persistence, in a fixed
// order on a fixed cadence.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/1broseidon/deskclock/internal/drag"
	"github.com/1broseidon/deskclock/internal/geometry"
	"github.com/1broseidon/deskclock/internal/platform"
	"github.com/1broseidon/deskclock/internal/render"
	"github.com/1broseidon/deskclock/internal/store"
)

// DefaultFrameRate is the loop cadence when the config does not set one.
const DefaultFrameRate = 60

// Surface is where the composed clock frame lands. The X11 window
// implements it; tests substitute a recorder.
type Surface interface {
	// Draw clears to the background color and fills the rectangles.
	Draw(background uint32, rects []render.ColoredRect)
	// TakeDamage reports and clears whether window contents were lost
	// since the last call (exposure).
	TakeDamage() bool
}

// Options wires an App together.
type Options struct {
	Backend     platform.Backend
	Surface     Surface
	Geometry    *geometry.Controller
	Saver       *store.Saver
	Spans       []render.Span
	Background  uint32
	FrameRate   int
	AlwaysOnTop bool
	Resizable   bool
	Logger      *slog.Logger
}

// App owns the main loop.
type App struct {
	backend platform.Backend
	surface Surface
	geo     *geometry.Controller
	dragger *drag.Controller
	saver   *store.Saver
	spans   []render.Span
	bg      uint32
	rate    int
	onTop   bool
	canSize bool
	logger  *slog.Logger

	lastText   string
	lastWidth  int
	lastHeight int
}

// New creates an App from options.
func New(opts Options) *App {
	rate := opts.FrameRate
	if rate <= 0 {
		rate = DefaultFrameRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		backend: opts.Backend,
		surface: opts.Surface,
		geo:     opts.Geometry,
		dragger: drag.NewController(opts.Backend, opts.Geometry),
		saver:   opts.Saver,
		spans:   opts.Spans,
		bg:      opts.Background,
		rate:    rate,
		onTop:   opts.AlwaysOnTop,
		canSize: opts.Resizable,
		logger:  logger,
	}
}

// Start applies the saved geometry and window attributes. Called once,
// before the first frame. On a first run the centered position is new
// state, so a save is scheduled right away.
func (a *App) Start(saved geometry.WindowGeometry, now time.Time) {
	a.geo.ApplySaved(saved)
	a.backend.SetAlwaysOnTop(a.onTop)
	a.backend.SetResizable(a.canSize)

	if saved.NeedsCentering {
		a.saver.NotifyChanged(now)
	}

	g := a.geo.Geometry()
	a.logger.Info("window restored",
		"width", g.Width, "height", g.Height,
		"x", g.X, "y", g.Y,
		"monitor", g.Monitor, "border", g.Border)
}

// Run drives frames until the context is cancelled or the window
// manager asks the window to close. A pending save is flushed before
// returning; persistence is never silently lost on exit.
func (a *App) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(a.rate))
	defer ticker.Stop()

	a.logger.Info("clock started", "frame_rate", a.rate)

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("clock stopped")
			a.saver.Flush()
			return
		case now := <-ticker.C:
			if !a.Frame(now) {
				a.logger.Info("close requested")
				a.saver.Flush()
				return
			}
		}
	}
}

// Frame runs one frame at the given time and reports whether the loop
// should continue. The order is fixed: events, input, geometry poll,
// render, save tick. Input runs before the poll so a click-triggered
// border toggle is observed by the same frame's poll instead of racing
// it.
func (a *App) Frame(now time.Time) bool {
	if a.backend.PumpEvents() {
		return false
	}

	if res := a.dragger.Update(a.backend.Pointer()); res.Dirty() {
		a.saver.NotifyChanged(now)
	}

	if snapshot, changed := a.geo.Poll(); changed {
		a.logger.Debug("geometry changed",
			"width", snapshot.Width, "height", snapshot.Height,
			"x", snapshot.X, "y", snapshot.Y,
			"monitor", snapshot.Monitor, "border", snapshot.Border)
		a.saver.NotifyChanged(now)
	}

	a.renderFrame(now)
	a.saver.Tick(now)
	return true
}

// renderFrame redraws only when the displayed text, the content size,
// or the window contents changed; at one change per second the loop is
// idle most frames.
func (a *App) renderFrame(now time.Time) {
	runes := render.FormatTime(a.spans, now)
	text := make([]rune, 0, len(runes))
	for _, cr := range runes {
		text = append(text, cr.Rune)
	}

	w, h := a.backend.ContentSize()
	damaged := a.surface.TakeDamage()
	if !damaged && string(text) == a.lastText && w == a.lastWidth && h == a.lastHeight {
		return
	}

	a.surface.Draw(a.bg, render.Layout(runes, w, h))
	a.lastText = string(text)
	a.lastWidth = w
	a.lastHeight = h
}
