package render

// Seven-segment glyph geometry. Each glyph lives on a unit grid
// (glyphHeight units tall, per-glyph width) and scales by an integer
// pixel factor chosen to fit the window content area.

// Rect is a pixel rectangle, top-left origin.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// ColoredRect is a fill instruction for the drawing surface.
type ColoredRect struct {
	Rect
	Color uint32
}

const (
	glyphHeight = 7 // unit rows per glyph
	glyphGap    = 1 // unit columns between glyphs
	digitWidth  = 4
)

// segment bits
const (
	segA = 1 << iota // top
	segB             // top right
	segC             // bottom right
	segD             // bottom
	segE             // bottom left
	segF             // top left
	segG             // middle
)

var digitSegments = [10]uint8{
	segA | segB | segC | segD | segE | segF,        // 0
	segB | segC,                                    // 1
	segA | segB | segG | segE | segD,               // 2
	segA | segB | segG | segC | segD,               // 3
	segF | segG | segB | segC,                      // 4
	segA | segF | segG | segC | segD,               // 5
	segA | segF | segG | segE | segC | segD,        // 6
	segA | segB | segC,                             // 7
	segA | segB | segC | segD | segE | segF | segG, // 8
	segA | segB | segC | segD | segF | segG,        // 9
}

// segmentRects are the unit rectangles for each segment within the
// digit box, indexed by bit position.
var segmentRects = [7]Rect{
	{0, 0, digitWidth, 1},     // A
	{digitWidth - 1, 1, 1, 2}, // B
	{digitWidth - 1, 4, 1, 2}, // C
	{0, 6, digitWidth, 1},     // D
	{0, 4, 1, 2},              // E
	{0, 1, 1, 2},              // F
	{0, 3, digitWidth, 1},     // G
}

// glyphWidth returns the unit advance for a renderable rune, or 0 for
// runes the renderer skips.
func glyphWidth(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return digitWidth
	case r == ':' || r == '.':
		return 1
	case r == '-':
		return digitWidth
	case r == ' ':
		return 2
	}
	return 0
}

// glyphRects appends the unit rectangles for r at unit offset ox.
func glyphRects(dst []Rect, r rune, ox int) []Rect {
	switch {
	case r >= '0' && r <= '9':
		mask := digitSegments[r-'0']
		for bit, seg := range segmentRects {
			if mask&(1<<bit) == 0 {
				continue
			}
			seg.X += ox
			dst = append(dst, seg)
		}
	case r == ':':
		dst = append(dst,
			Rect{ox, 2, 1, 1},
			Rect{ox, 4, 1, 1},
		)
	case r == '.':
		dst = append(dst, Rect{ox, 6, 1, 1})
	case r == '-':
		dst = append(dst, Rect{ox, 3, digitWidth, 1})
	}
	return dst
}

// Layout computes the colored pixel rectangles for the given runes,
// scaled to the largest integer unit size that fits width x height and
// centered within it. An empty or unrenderable input yields nil.
func Layout(runes []ColoredRune, width, height int) []ColoredRect {
	totalUnits := 0
	drawn := 0
	for _, cr := range runes {
		w := glyphWidth(cr.Rune)
		if w == 0 {
			continue
		}
		if drawn > 0 {
			totalUnits += glyphGap
		}
		totalUnits += w
		drawn++
	}
	if drawn == 0 || width <= 0 || height <= 0 {
		return nil
	}

	scale := min(width/totalUnits, height/glyphHeight)
	if scale < 1 {
		scale = 1
	}
	offX := (width - totalUnits*scale) / 2
	offY := (height - glyphHeight*scale) / 2

	var out []ColoredRect
	var units []Rect
	ox := 0
	first := true
	for _, cr := range runes {
		w := glyphWidth(cr.Rune)
		if w == 0 {
			continue
		}
		if !first {
			ox += glyphGap
		}
		first = false

		units = glyphRects(units[:0], cr.Rune, ox)
		for _, u := range units {
			out = append(out, ColoredRect{
				Rect: Rect{
					X:      offX + u.X*scale,
					Y:      offY + u.Y*scale,
					Width:  u.Width * scale,
					Height: u.Height * scale,
				},
				Color: cr.Color,
			})
		}
		ox += w
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
