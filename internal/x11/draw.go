package x11

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/deskclock/internal/render"
)

// Draw clears the window to the background color and fills the given
// rectangles, batching by color to keep GC changes down. Rectangles are
// clipped implicitly by the X server.
func (w *Window) Draw(background uint32, rects []render.ColoredRect) {
	c := w.conn.XUtil.Conn()

	xproto.ChangeWindowAttributes(c, w.id, xproto.CwBackPixel, []uint32{background})
	xproto.ClearArea(c, false, w.id, 0, 0, 0, 0)

	if len(rects) == 0 {
		return
	}
	if !w.ensureGC() {
		return
	}

	// Group fills by color; spans usually produce long single-color runs.
	byColor := make(map[uint32][]xproto.Rectangle)
	for _, r := range rects {
		if r.Width < 1 || r.Height < 1 {
			continue
		}
		byColor[r.Color] = append(byColor[r.Color], xproto.Rectangle{
			X:      int16(r.X),
			Y:      int16(r.Y),
			Width:  uint16(r.Width),
			Height: uint16(r.Height),
		})
	}

	for color, batch := range byColor {
		xproto.ChangeGC(c, w.gc, xproto.GcForeground, []uint32{color})
		xproto.PolyFillRectangle(c, xproto.Drawable(w.id), w.gc, batch)
	}
}

func (w *Window) ensureGC() bool {
	if w.gcCreated {
		return true
	}

	c := w.conn.XUtil.Conn()
	gc, err := xproto.NewGcontextId(c)
	if err != nil {
		return false
	}
	err = xproto.CreateGCChecked(
		c,
		gc,
		xproto.Drawable(w.id),
		xproto.GcForeground,
		[]uint32{0},
	).Check()
	if err != nil {
		return false
	}

	w.gc = gc
	w.gcCreated = true
	return true
}
