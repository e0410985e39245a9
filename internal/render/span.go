// Package render turns a clock format string into colored rectangles:
// a span lexer for inline color codes, seven-segment glyph geometry,
// and auto-fit scaling to the window's content area. Everything here is
// pure computation; putting pixels on screen is the backend's job.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultColor is used for text before the first color code.
const DefaultColor = 0xffffff

// Span is a run of clock-format text rendered in one color. The text
// fragment is passed through time.Format, so "15:04" becomes the
// current hour and minute while ":" stays a literal colon.
type Span struct {
	Color  uint32
	Format string
}

// ParseSpans lexes a format string with inline color codes of the form
// &(rrggbb). A code colors everything up to the next code; "&&" is a
// literal ampersand. Example:
//
//	&(5fd7ff)15:04&(444444):&(5fd7ff)05
func ParseSpans(format string) ([]Span, error) {
	var spans []Span
	color := uint32(DefaultColor)
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			spans = append(spans, Span{Color: color, Format: text.String()})
			text.Reset()
		}
	}

	i := 0
	for i < len(format) {
		ch := format[i]
		if ch != '&' {
			text.WriteByte(ch)
			i++
			continue
		}

		if i+1 < len(format) && format[i+1] == '&' {
			text.WriteByte('&')
			i += 2
			continue
		}

		// &(rrggbb)
		if i+1 >= len(format) || format[i+1] != '(' {
			return nil, fmt.Errorf("format position %d: expected \"(\" after \"&\"", i)
		}
		end := strings.IndexByte(format[i+2:], ')')
		if end < 0 {
			return nil, fmt.Errorf("format position %d: unterminated color code", i)
		}
		hex := format[i+2 : i+2+end]
		if len(hex) != 6 {
			return nil, fmt.Errorf("format position %d: color %q is not 6 hex digits", i, hex)
		}
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("format position %d: color %q: %w", i, hex, err)
		}

		flush()
		color = uint32(val)
		i += 2 + end + 1
	}
	flush()

	return spans, nil
}

// FormatTime expands the spans at the given time into colored runes.
func FormatTime(spans []Span, now time.Time) []ColoredRune {
	var out []ColoredRune
	for _, s := range spans {
		for _, r := range now.Format(s.Format) {
			out = append(out, ColoredRune{Rune: r, Color: s.Color})
		}
	}
	return out
}

// ColoredRune is one display character with its span color.
type ColoredRune struct {
	Rune  rune
	Color uint32
}
