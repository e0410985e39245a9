//go:build linux

package platform

import (
	"fmt"

	"github.com/1broseidon/deskclock/internal/x11"
)

// X11Backend implements Backend on top of the clock's X11 window.
type X11Backend struct {
	conn  *x11.Connection
	win   *x11.Window
	mons  []Monitor
	xmons []x11.Monitor
}

var _ Backend = (*X11Backend)(nil)

// NewX11Backend wraps an existing connection and window. The monitor
// topology is read once here; a widget this small does not chase
// monitor hot-plugging mid-run.
func NewX11Backend(conn *x11.Connection, win *x11.Window) (*X11Backend, error) {
	monitors, err := conn.GetMonitors()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate monitors: %w", err)
	}

	mons := make([]Monitor, 0, len(monitors))
	for _, m := range monitors {
		mons = append(mons, Monitor{
			Index:  m.ID,
			Name:   m.Name,
			X:      m.X,
			Y:      m.Y,
			Width:  m.Width,
			Height: m.Height,
		})
	}

	return &X11Backend{conn: conn, win: win, mons: mons, xmons: monitors}, nil
}

func (b *X11Backend) ContentSize() (int, int) {
	return b.win.ContentSize()
}

func (b *X11Backend) SetContentSize(width, height int) {
	b.win.SetContentSize(width, height)
}

func (b *X11Backend) Position() Point {
	x, y := b.win.Position()
	return Point{X: x, Y: y}
}

func (b *X11Backend) SetPosition(p Point) {
	b.win.SetPosition(p.X, p.Y)
}

func (b *X11Backend) CurrentMonitor() int {
	return b.conn.MonitorForWindow(b.win.ID(), b.xmons)
}

func (b *X11Backend) Monitors() []Monitor {
	return b.mons
}

func (b *X11Backend) Decorated() bool {
	return b.win.Decorated()
}

func (b *X11Backend) SetDecorated(on bool) {
	b.win.SetDecorated(on)
}

func (b *X11Backend) SetAlwaysOnTop(on bool) {
	b.win.SetAlwaysOnTop(on)
}

func (b *X11Backend) SetResizable(on bool) {
	b.win.SetResizable(on)
}

func (b *X11Backend) Pointer() Pointer {
	ps := b.win.QueryPointer()
	return Pointer{
		X:        ps.X,
		Y:        ps.Y,
		Pressed:  ps.Pressed,
		Released: ps.Released,
		Down:     ps.Down,
	}
}

func (b *X11Backend) PumpEvents() bool {
	return b.win.PumpEvents()
}
