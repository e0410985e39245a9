package render

import (
	"testing"
	"time"
)

func TestParseSpans_DefaultColor(t *testing.T) {
	spans, err := ParseSpans("15:04")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Color != DefaultColor || spans[0].Format != "15:04" {
		t.Fatalf("unexpected span %+v", spans[0])
	}
}

func TestParseSpans_ColorCodesSplitSpans(t *testing.T) {
	spans, err := ParseSpans("&(5fd7ff)15:04&(444444):&(5fd7ff)05")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []Span{
		{Color: 0x5fd7ff, Format: "15:04"},
		{Color: 0x444444, Format: ":"},
		{Color: 0x5fd7ff, Format: "05"},
	}
	if len(spans) != len(want) {
		t.Fatalf("expected %d spans, got %d: %+v", len(want), len(spans), spans)
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Fatalf("span %d: expected %+v, got %+v", i, want[i], spans[i])
		}
	}
}

func TestParseSpans_EscapedAmpersand(t *testing.T) {
	spans, err := ParseSpans("&&15")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(spans) != 1 || spans[0].Format != "&15" {
		t.Fatalf("expected literal ampersand, got %+v", spans)
	}
}

func TestParseSpans_Errors(t *testing.T) {
	cases := []string{
		"&5fd7ff)15",   // missing paren
		"&(5fd7ff15",   // unterminated
		"&(xyzxyz)15",  // not hex
		"&(fff)15",     // wrong length
		"15&",          // trailing ampersand
	}
	for _, in := range cases {
		if _, err := ParseSpans(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestFormatTime_ExpandsSpans(t *testing.T) {
	spans, err := ParseSpans("&(ff0000)15:04")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	at := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	runes := FormatTime(spans, at)

	var text []rune
	for _, cr := range runes {
		text = append(text, cr.Rune)
		if cr.Color != 0xff0000 {
			t.Fatalf("expected span color on every rune, got %x", cr.Color)
		}
	}
	if string(text) != "09:30" {
		t.Fatalf("expected \"09:30\", got %q", string(text))
	}
}

func TestLayout_DigitSegmentCounts(t *testing.T) {
	cases := map[rune]int{
		'8': 7,
		'0': 6,
		'1': 2,
		'7': 3,
		':': 2,
		'-': 1,
	}
	for r, want := range cases {
		rects := Layout([]ColoredRune{{Rune: r, Color: 0xffffff}}, 400, 700)
		if len(rects) != want {
			t.Fatalf("rune %q: expected %d rects, got %d", r, want, len(rects))
		}
	}
}

func TestLayout_ScalesAndCenters(t *testing.T) {
	// A single digit is 4 units wide, 7 tall. In a 40x70 box the scale
	// is 10 and the glyph fills it exactly.
	rects := Layout([]ColoredRune{{Rune: '8', Color: 1}}, 40, 70)
	for _, r := range rects {
		if r.X < 0 || r.Y < 0 || r.X+r.Width > 40 || r.Y+r.Height > 70 {
			t.Fatalf("rect %+v escapes the 40x70 box", r)
		}
	}
	// Top segment spans the full width at scale 10.
	top := rects[0]
	if top.Width != 40 || top.Height != 10 {
		t.Fatalf("expected top segment 40x10, got %dx%d", top.Width, top.Height)
	}

	// A wide box centers horizontally.
	rects = Layout([]ColoredRune{{Rune: '8', Color: 1}}, 120, 70)
	left := rects[0].X
	if left != (120-40)/2 {
		t.Fatalf("expected centered at x=40, got %d", left)
	}
}

func TestLayout_MinimumScaleInTinyWindow(t *testing.T) {
	rects := Layout([]ColoredRune{{Rune: '8', Color: 1}}, 2, 2)
	if len(rects) == 0 {
		t.Fatalf("expected glyph rects even below the natural minimum size")
	}
	for _, r := range rects {
		if r.Width < 1 || r.Height < 1 {
			t.Fatalf("rect %+v has a degenerate dimension", r)
		}
	}
}

func TestLayout_SkipsUnknownRunes(t *testing.T) {
	rects := Layout([]ColoredRune{
		{Rune: 'X', Color: 1},
		{Rune: '1', Color: 1},
	}, 100, 100)
	if len(rects) != 2 {
		t.Fatalf("expected only the digit's 2 rects, got %d", len(rects))
	}
}

func TestLayout_EmptyInput(t *testing.T) {
	if rects := Layout(nil, 100, 100); rects != nil {
		t.Fatalf("expected nil for empty input, got %v", rects)
	}
}
