// Package drag turns raw pointer input into window interaction: a
// press-and-move drags the borderless window across the screen, a
// press-and-release in place toggles the window border.
package drag

import (
	"github.com/1broseidon/deskclock/internal/geometry"
	"github.com/1broseidon/deskclock/internal/platform"
)

// Threshold is the pointer travel, in pixels, that separates a drag
// from a click.
const Threshold = 3

type phase int

const (
	phaseIdle phase = iota
	// phaseArmed: button down, movement not yet confirmed as a drag.
	phaseArmed
	phaseDragging
)

// Result reports what a frame of pointer handling did to the window.
// Either flag set means the geometry is dirty and a save should be
// scheduled.
type Result struct {
	// Toggled is true when a click flipped the border flag.
	Toggled bool
	// Moved is true when a finished drag committed a new position.
	Moved bool
}

// Dirty reports whether the frame changed persisted state.
func (r Result) Dirty() bool {
	return r.Toggled || r.Moved
}

// Controller tracks pointer state against the window. While a drag is
// in progress it owns the window position outright: the geometry
// controller is suspended so the per-frame poll cannot fight the drag,
// and the live position is written back into the cache only on
// release.
type Controller struct {
	backend platform.Backend
	geo     *geometry.Controller

	phase      phase
	pressLocal platform.Point // pointer at press, window-local
	crossed    bool           // travel exceeded Threshold since press
}

// NewController creates a drag controller coordinating with geo.
func NewController(backend platform.Backend, geo *geometry.Controller) *Controller {
	return &Controller{backend: backend, geo: geo}
}

// Dragging reports whether a drag is currently in progress.
func (c *Controller) Dragging() bool {
	return c.phase == phaseDragging
}

// Update advances the state machine with this frame's pointer
// snapshot. Must run before the geometry poll each frame so a
// click-triggered toggle is visible to the same frame's poll.
func (c *Controller) Update(p platform.Pointer) Result {
	if p.Pressed {
		c.press(p)
	}
	if p.Down && c.phase != phaseIdle {
		c.move(p)
	}
	if p.Released {
		return c.release()
	}
	return Result{}
}

func (c *Controller) press(p platform.Pointer) {
	c.phase = phaseArmed
	c.pressLocal = platform.Point{X: p.X, Y: p.Y}
	c.crossed = false
	// Suspend immediately: the poll must not race a soon-to-be-manual
	// move, and positions reported mid-drag can be transiently stale.
	c.geo.Suspend()
}

func (c *Controller) move(p platform.Pointer) {
	dx := p.X - c.pressLocal.X
	dy := p.Y - c.pressLocal.Y

	if c.phase == phaseArmed {
		if dx*dx+dy*dy <= Threshold*Threshold {
			return
		}
		c.crossed = true
		// Drag-to-move is only enabled while borderless; with the
		// border on, the titlebar is the window manager's drag handle.
		if c.geo.Geometry().Border {
			return
		}
		c.phase = phaseDragging
	}

	// The window moves under the pointer, so each frame's local delta
	// from the press point is exactly the remaining correction.
	pos := c.backend.Position()
	c.backend.SetPosition(platform.Point{X: pos.X + dx, Y: pos.Y + dy})
}

func (c *Controller) release() Result {
	prev := c.phase
	crossed := c.crossed
	c.phase = phaseIdle
	c.crossed = false

	// Resume before mutating so the same frame's poll bookkeeping sees
	// the result.
	c.geo.Resume()

	switch prev {
	case phaseDragging:
		c.geo.CommitPosition(c.backend.Position())
		return Result{Moved: true}
	case phaseArmed:
		// A press that travelled past the threshold but never became a
		// drag (border on) is neither a click nor a move.
		if crossed {
			return Result{}
		}
		c.geo.ToggleBorder()
		return Result{Toggled: true}
	}
	return Result{}
}
