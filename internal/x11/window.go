package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// _MOTIF_WM_HINTS layout: flags, functions, decorations, input, status.
const (
	motifHintDecorations = 1 << 1
	motifDecorationsAll  = 1
	motifDecorationsNone = 0
)

// Window is the top-level clock window. It owns the X window, its
// graphics context, and the pointer-button bookkeeping used to derive
// press/release transitions between frames.
type Window struct {
	conn *Connection
	id   xproto.Window
	xwin *xwindow.Window

	wmProtocols xproto.Atom
	wmDelete    xproto.Atom

	gc        xproto.Gcontext
	gcCreated bool

	decorated  bool
	buttonDown bool
	damaged    bool
}

// CreateWindow creates and maps the clock window. New windows start
// decorated; the geometry controller applies the saved border state
// before the first frame.
func CreateWindow(conn *Connection, title string, width, height int) (*Window, error) {
	xu := conn.XUtil
	c := xu.Conn()
	screen := xu.Screen()

	id, err := xproto.NewWindowId(c)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate window id: %w", err)
	}

	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	err = xproto.CreateWindowChecked(
		c,
		screen.RootDepth,
		id,
		conn.Root,
		0, 0,
		uint16(width), uint16(height),
		0, // border_width
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		// Value list order follows the bit positions of the mask.
		[]uint32{
			0, // back_pixel=black
			xproto.EventMaskExposure | xproto.EventMaskStructureNotify,
		},
	).Check()
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	w := &Window{
		conn:      conn,
		id:        id,
		xwin:      xwindow.New(xu, id),
		decorated: true,
	}

	if w.wmProtocols, err = xprop.Atm(xu, "WM_PROTOCOLS"); err != nil {
		return nil, fmt.Errorf("failed to intern WM_PROTOCOLS: %w", err)
	}
	if w.wmDelete, err = xprop.Atm(xu, "WM_DELETE_WINDOW"); err != nil {
		return nil, fmt.Errorf("failed to intern WM_DELETE_WINDOW: %w", err)
	}

	if err := icccm.WmProtocolsSet(xu, id, []string{"WM_DELETE_WINDOW"}); err != nil {
		return nil, fmt.Errorf("failed to set WM_PROTOCOLS: %w", err)
	}
	if err := icccm.WmNameSet(xu, id, title); err != nil {
		return nil, fmt.Errorf("failed to set window title: %w", err)
	}
	// Best-effort; some window managers only read the EWMH name.
	_ = ewmh.WmNameSet(xu, id, title)

	xproto.MapWindow(c, id)
	return w, nil
}

// ID returns the X window identifier.
func (w *Window) ID() xproto.Window {
	return w.id
}

// Destroy tears the window down.
func (w *Window) Destroy() {
	if w.gcCreated {
		xproto.FreeGC(w.conn.XUtil.Conn(), w.gc)
		w.gcCreated = false
	}
	xproto.DestroyWindow(w.conn.XUtil.Conn(), w.id)
}

// ContentSize reports the client-area size in pixels.
func (w *Window) ContentSize() (int, int) {
	geom, err := xproto.GetGeometry(w.conn.XUtil.Conn(), xproto.Drawable(w.id)).Reply()
	if err != nil {
		return 1, 1
	}
	return int(geom.Width), int(geom.Height)
}

// SetContentSize resizes the client area.
func (w *Window) SetContentSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	w.xwin.Resize(width, height)
}

// Position reports the client area's top-left corner in root
// coordinates.
func (w *Window) Position() (int, int) {
	translate, err := xproto.TranslateCoordinates(
		w.conn.XUtil.Conn(),
		w.id,
		w.conn.Root,
		0, 0,
	).Reply()
	if err != nil {
		return 0, 0
	}
	return int(translate.DstX), int(translate.DstY)
}

// SetPosition moves the window.
func (w *Window) SetPosition(x, y int) {
	w.xwin.Move(x, y)
}

// Decorated reports the decoration state last applied. X has no direct
// query for this; the window starts decorated and changes only through
// SetDecorated.
func (w *Window) Decorated() bool {
	return w.decorated
}

// SetDecorated asks the window manager to draw or drop the titlebar and
// frame via Motif WM hints.
func (w *Window) SetDecorated(on bool) {
	decorations := uint(motifDecorationsNone)
	if on {
		decorations = motifDecorationsAll
	}
	err := xprop.ChangeProp32(
		w.conn.XUtil,
		w.id,
		"_MOTIF_WM_HINTS",
		"_MOTIF_WM_HINTS",
		motifHintDecorations, 0, decorations, 0, 0,
	)
	if err != nil {
		return
	}
	w.decorated = on
}

// SetAlwaysOnTop keeps the window above normal windows.
func (w *Window) SetAlwaysOnTop(on bool) {
	action := ewmh.StateRemove
	if on {
		action = ewmh.StateAdd
	}
	_ = ewmh.WmStateReq(w.conn.XUtil, w.id, action, "_NET_WM_STATE_ABOVE")
}

// SetResizable pins or frees the window size via WM normal hints. A
// non-resizable window has min and max size locked to the current
// content size.
func (w *Window) SetResizable(on bool) {
	xu := w.conn.XUtil
	if on {
		_ = icccm.WmNormalHintsSet(xu, w.id, &icccm.NormalHints{
			Flags:     icccm.SizeHintPMinSize,
			MinWidth:  1,
			MinHeight: 1,
		})
		return
	}
	width, height := w.ContentSize()
	_ = icccm.WmNormalHintsSet(xu, w.id, &icccm.NormalHints{
		Flags:     icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize,
		MinWidth:  uint(width),
		MinHeight: uint(height),
		MaxWidth:  uint(width),
		MaxHeight: uint(height),
	})
}

// PointerState is the raw pointer snapshot relative to the window.
type PointerState struct {
	X        int
	Y        int
	Pressed  bool
	Released bool
	Down     bool
}

// QueryPointer reads the pointer position and derives button-1
// transitions against the previous call.
func (w *Window) QueryPointer() PointerState {
	reply, err := xproto.QueryPointer(w.conn.XUtil.Conn(), w.id).Reply()
	if err != nil {
		return PointerState{Down: w.buttonDown}
	}

	down := reply.Mask&xproto.KeyButMaskButton1 != 0
	state := PointerState{
		X:        int(reply.WinX),
		Y:        int(reply.WinY),
		Pressed:  down && !w.buttonDown,
		Released: !down && w.buttonDown,
		Down:     down,
	}
	w.buttonDown = down
	return state
}

// PumpEvents drains pending X events. It reports whether the window
// manager requested a close, and records exposure so the next draw is
// not skipped.
func (w *Window) PumpEvents() bool {
	c := w.conn.XUtil.Conn()
	closeRequested := false

	for {
		ev, xerr := c.PollForEvent()
		if ev == nil && xerr == nil {
			break
		}
		if xerr != nil {
			continue
		}

		switch e := ev.(type) {
		case xproto.ExposeEvent:
			w.damaged = true
		case xproto.ClientMessageEvent:
			if e.Type == w.wmProtocols && len(e.Data.Data32) > 0 &&
				xproto.Atom(e.Data.Data32[0]) == w.wmDelete {
				closeRequested = true
			}
		}
	}
	return closeRequested
}

// TakeDamage reports and clears the exposure flag.
func (w *Window) TakeDamage() bool {
	d := w.damaged
	w.damaged = false
	return d
}
