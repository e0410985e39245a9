package geometry

import (
	"github.com/1broseidon/deskclock/internal/platform"
)

// Controller owns the live window geometry and reconciles it with the
// backend across three triggers: startup restore, explicit border
// toggles, and window-manager-driven moves and resizes observed by the
// per-frame poll.
//
// Height bookkeeping follows a single rule: stored and cached heights
// are always content-area heights, and the decorated footprint is
// content + chrome. Restoring a saved record therefore applies the
// stored size unchanged, while a live border toggle shifts the content
// height by the chrome delta so the total on-screen footprint stays
// put across the toggle. The shift is exactly reversible.
type Controller struct {
	backend platform.Backend
	chrome  int
	cur     WindowGeometry
}

// NewController creates a controller around the given backend. A
// chromeHeight of zero or less falls back to DefaultChromeHeight.
func NewController(backend platform.Backend, chromeHeight int) *Controller {
	if chromeHeight <= 0 {
		chromeHeight = DefaultChromeHeight
	}
	return &Controller{
		backend: backend,
		chrome:  chromeHeight,
	}
}

// Geometry returns a copy of the cached record.
func (c *Controller) Geometry() WindowGeometry {
	return c.cur
}

// ChromeHeight returns the chrome constant in effect.
func (c *Controller) ChromeHeight() int {
	return c.chrome
}

// Suspend stops Poll from observing the backend until Resume. Used
// while a drag is the authoritative source of position changes.
func (c *Controller) Suspend() {
	c.cur.Suspended = true
}

// Resume re-enables polling. The next Poll picks up any drift
// accumulated while suspended.
func (c *Controller) Resume() {
	c.cur.Suspended = false
}

// Suspended reports whether polling is currently disabled.
func (c *Controller) Suspended() bool {
	return c.cur.Suspended
}

// ApplySaved pushes a loaded record onto the live window. Called once,
// after the window exists but before the first frame.
//
// Ordering is deliberate: monitor resolution first (centering is
// monitor-relative), then size, then the border flag, then position.
// Changing decorations can shift the window as a side effect under
// some window managers, so position is applied last.
func (c *Controller) ApplySaved(saved WindowGeometry) {
	c.cur = saved

	monitors := c.backend.Monitors()
	mon := c.resolveMonitor(monitors, saved.Monitor)
	c.cur.Monitor = mon.Index

	// Stored sizes are content-area sizes, the same encoding the
	// backend speaks, so they apply unchanged whatever decoration
	// state the freshly created window is in.
	c.backend.SetContentSize(saved.Width, saved.Height)

	if c.backend.Decorated() != saved.Border {
		c.backend.SetDecorated(saved.Border)
	}

	if c.cur.NeedsCentering {
		c.cur.X = mon.X + (mon.Width-saved.Width)/2
		c.cur.Y = mon.Y + (mon.Height-saved.Height)/2
		c.cur.NeedsCentering = false
	}
	c.backend.SetPosition(platform.Point{X: c.cur.X, Y: c.cur.Y})
}

// Poll compares the backend's observable geometry against the cached
// record. On any difference the cache is overwritten with the new
// snapshot and changed is true. While suspended it reports no change
// without touching the backend. Debouncing is the saver's job, not
// Poll's.
func (c *Controller) Poll() (WindowGeometry, bool) {
	if c.cur.Suspended {
		return c.cur, false
	}

	w, h := c.backend.ContentSize()
	pos := c.backend.Position()
	mon := c.backend.CurrentMonitor()
	border := c.backend.Decorated()

	if w == c.cur.Width && h == c.cur.Height &&
		pos.X == c.cur.X && pos.Y == c.cur.Y &&
		mon == c.cur.Monitor && border == c.cur.Border {
		return c.cur, false
	}

	c.cur.Width = w
	c.cur.Height = h
	c.cur.X = pos.X
	c.cur.Y = pos.Y
	c.cur.Monitor = mon
	c.cur.Border = border
	return c.cur, true
}

// SetBorder switches the window decoration flag, compensating the
// content height by the chrome delta so the total footprint the user
// sees does not jump. Idempotent: asking for the state the window is
// already in does nothing and reports false.
//
// The live size is read from the backend rather than the cache; the
// cache may lag what the user is looking at.
func (c *Controller) SetBorder(want bool) bool {
	if c.backend.Decorated() == want {
		return false
	}

	w, h := c.backend.ContentSize()
	h = c.compensate(h, want)

	// Border flag and compensated size form one logical operation.
	c.backend.SetDecorated(want)
	c.backend.SetContentSize(w, h)
	c.cur.Border = want
	return true
}

// ToggleBorder flips the decoration flag.
func (c *Controller) ToggleBorder() bool {
	return c.SetBorder(!c.cur.Border)
}

// CommitPosition writes a position the drag controller applied directly
// to the backend into the cached record.
func (c *Controller) CommitPosition(p platform.Point) {
	c.cur.X = p.X
	c.cur.Y = p.Y
}

// compensate converts a content height across a decoration change,
// holding the total footprint (content + chrome·border) constant.
// Turning the border on spends chrome pixels on the titlebar; turning
// it off hands them back. The two directions cancel exactly.
func (c *Controller) compensate(h int, borderOn bool) int {
	if borderOn {
		return h - c.chrome
	}
	return h + c.chrome
}

// resolveMonitor validates a persisted monitor index against the live
// monitor list. A stale index is not an error: resolution falls back to
// the monitor the backend currently reports.
func (c *Controller) resolveMonitor(monitors []platform.Monitor, idx int) platform.Monitor {
	if idx >= 0 && idx < len(monitors) {
		return monitors[idx]
	}
	cur := c.backend.CurrentMonitor()
	if cur >= 0 && cur < len(monitors) {
		return monitors[cur]
	}
	return monitors[0]
}
