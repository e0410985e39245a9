package platform

// Point is a position in screen coordinates (top-left origin).
type Point struct {
	X int
	Y int
}

// Monitor describes a physical display: its top-left origin in the
// virtual screen and its size in pixels.
type Monitor struct {
	Index  int
	Name   string
	X      int
	Y      int
	Width  int
	Height int
}

// Pointer is a per-frame snapshot of the pointer relative to the window.
// Pressed and Released report the button-state transition since the
// previous snapshot; Down reports the current held state.
type Pointer struct {
	X        int
	Y        int
	Pressed  bool
	Released bool
	Down     bool
}

// Backend abstracts the window system underneath the clock window.
//
// Geometry calls carry no error channel: once the window exists the
// display server is assumed available, and transient protocol errors
// are absorbed by the implementation. Construction is where failures
// surface.
type Backend interface {
	// ContentSize reports the drawable client-area size in pixels.
	ContentSize() (width, height int)
	SetContentSize(width, height int)

	// Position reports the window's top-left corner in screen space.
	Position() Point
	SetPosition(p Point)

	// CurrentMonitor reports the index of the monitor containing the
	// window's center, falling back to 0 when it cannot be determined.
	CurrentMonitor() int
	// Monitors returns the ordered list of attached displays. The list
	// is never empty; a backend with no usable display information
	// synthesizes a single monitor covering the root screen.
	Monitors() []Monitor

	// Decorated reports whether the window manager draws a titlebar and
	// frame around the window. Newly created windows are decorated.
	Decorated() bool
	SetDecorated(on bool)

	SetAlwaysOnTop(on bool)
	SetResizable(on bool)

	// Pointer returns the pointer snapshot for this frame.
	Pointer() Pointer

	// PumpEvents drains pending window-system events and reports
	// whether the window manager asked the window to close.
	PumpEvents() (closeRequested bool)
}
