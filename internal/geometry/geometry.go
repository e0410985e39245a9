package geometry

// Defaults used when no persisted geometry exists (first run).
const (
	DefaultWidth   = 300
	DefaultHeight  = 100
	DefaultMonitor = 0
)

// DefaultChromeHeight is the pixel height attributed to the window
// manager's titlebar when the window is decorated. The total on-screen
// footprint of a decorated window is content height + chrome height.
const DefaultChromeHeight = 30

// WindowGeometry is the live window record: the persisted fields plus
// two runtime-only flags that never round-trip through storage.
//
// Width and Height are content-area dimensions in pixels, regardless of
// the border state. The decorated footprint on screen is
// Height + chrome; Border only changes what the window manager draws,
// not the meaning of the stored numbers.
type WindowGeometry struct {
	Width   int
	Height  int
	Monitor int
	X       int
	Y       int
	Border  bool

	// NeedsCentering is true exactly when no persisted record existed
	// at load time. Cleared the first time centering is applied.
	NeedsCentering bool
	// Suspended disables change polling while a drag owns the window
	// position.
	Suspended bool
}

// FirstRun returns the geometry used when the store has no record:
// documented defaults with the centering flag raised.
func FirstRun() WindowGeometry {
	return WindowGeometry{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		Monitor:        DefaultMonitor,
		Border:         true,
		NeedsCentering: true,
	}
}
