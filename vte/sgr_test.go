// Copyright © 2025 Panemux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/sgr_test.go
// Summary: Graphic rendition tests: attributes, palettes, extended colors.

package vte

import "testing"

func penAfter(t *testing.T, input string) Pen {
	t.Helper()
	s := feed(t, 20, 5, input)
	return s.Pen()
}

func TestSgrAttributes(t *testing.T) {
	cases := []struct {
		input string
		attr  Attribute
	}{
		{"\x1b[1m", AttrBold},
		{"\x1b[2m", AttrDim},
		{"\x1b[3m", AttrItalic},
		{"\x1b[4m", AttrUnderline},
		{"\x1b[5m", AttrBlink},
		{"\x1b[7m", AttrReverse},
		{"\x1b[8m", AttrHidden},
		{"\x1b[9m", AttrStrike},
	}
	for _, c := range cases {
		if pen := penAfter(t, c.input); pen.Attr != c.attr {
			t.Errorf("%q: attr = %v, want %v", c.input, pen.Attr, c.attr)
		}
	}
}

func TestSgrClearsMatchingStyle(t *testing.T) {
	cases := []struct {
		input string
		clear Attribute
	}{
		{"\x1b[1;2;23m", AttrItalic},
		{"\x1b[4;24m", AttrUnderline},
		{"\x1b[5;25m", AttrBlink},
		{"\x1b[7;27m", AttrReverse},
		{"\x1b[8;28m", AttrHidden},
		{"\x1b[9;29m", AttrStrike},
	}
	for _, c := range cases {
		pen := penAfter(t, c.input)
		if pen.Attr&c.clear != 0 {
			t.Errorf("%q: %v not cleared", c.input, c.clear)
		}
	}
}

func TestSgr22ClearsBoldAndDim(t *testing.T) {
	pen := penAfter(t, "\x1b[1;2;4;22m")
	if pen.Attr&(AttrBold|AttrDim) != 0 {
		t.Errorf("22 must clear bold and dim, attr = %v", pen.Attr)
	}
	if pen.Attr&AttrUnderline == 0 {
		t.Errorf("22 must leave underline alone, attr = %v", pen.Attr)
	}
}

func TestSgrBasicColors(t *testing.T) {
	pen := penAfter(t, "\x1b[34;46m")
	if pen.FG != 4 || pen.BG != 6 {
		t.Errorf("pen = fg %d bg %d, want fg 4 bg 6", pen.FG, pen.BG)
	}
}

func TestSgrDefaultColors(t *testing.T) {
	pen := penAfter(t, "\x1b[31;42m\x1b[39;49m")
	if pen.FG != DefaultColor || pen.BG != DefaultColor {
		t.Errorf("pen = fg %d bg %d, want defaults", pen.FG, pen.BG)
	}
}

func TestSgrBrightForegroundImpliesBold(t *testing.T) {
	pen := penAfter(t, "\x1b[95m")
	if pen.FG != 5 || pen.Attr&AttrBold == 0 {
		t.Errorf("pen = fg %d attr %v, want fg 5 bold", pen.FG, pen.Attr)
	}
}

func TestSgrBrightBackgroundNoBold(t *testing.T) {
	pen := penAfter(t, "\x1b[103m")
	if pen.BG != 3 || pen.Attr != 0 {
		t.Errorf("pen = bg %d attr %v, want bg 3 no attrs", pen.BG, pen.Attr)
	}
}

func TestSgr256ColorSemicolons(t *testing.T) {
	pen := penAfter(t, "\x1b[38;5;196m\x1b[48;5;17m")
	if pen.FG != 196 || pen.BG != 17 {
		t.Errorf("pen = fg %d bg %d, want fg 196 bg 17", pen.FG, pen.BG)
	}
}

func TestSgr256ColorSubparams(t *testing.T) {
	pen := penAfter(t, "\x1b[38:5:118m")
	if pen.FG != 118 {
		t.Errorf("pen fg = %d, want 118", pen.FG)
	}
}

func TestSgrRgbFoldsToPalette(t *testing.T) {
	// bright red + dim green + bright blue -> index 1|4 = 5 (magenta)
	pen := penAfter(t, "\x1b[38;2;200;20;180m")
	if pen.FG != 5 {
		t.Errorf("pen fg = %d, want 5", pen.FG)
	}
	pen = penAfter(t, "\x1b[48:2:10:200:15m")
	if pen.BG != 2 {
		t.Errorf("pen bg = %d, want 2", pen.BG)
	}
}

func TestSgrRgbConsumesExactlyThree(t *testing.T) {
	pen := penAfter(t, "\x1b[38;2;255;255;255;4m")
	if pen.FG != 7 {
		t.Errorf("pen fg = %d, want 7", pen.FG)
	}
	if pen.Attr&AttrUnderline == 0 {
		t.Error("parameter after the color spec must still apply")
	}
}

func TestSgrMalformedExtendedColorDropsRest(t *testing.T) {
	pen := penAfter(t, "\x1b[38;9m")
	if pen.FG != DefaultColor {
		t.Errorf("pen fg = %d, want default after malformed 38", pen.FG)
	}
}

func TestSgrEmptyIsFullReset(t *testing.T) {
	pen := penAfter(t, "\x1b[1;4;31;42m\x1b[m")
	if pen.FG != DefaultColor || pen.BG != DefaultColor || pen.Attr != 0 {
		t.Errorf("pen = %+v, want defaults", pen)
	}
}

func TestSgrZeroResetsMidSequence(t *testing.T) {
	pen := penAfter(t, "\x1b[1;31;0;4m")
	if pen.FG != DefaultColor || pen.Attr != AttrUnderline {
		t.Errorf("pen = %+v, want underline only on defaults", pen)
	}
}

func TestSgrUnknownParamIgnored(t *testing.T) {
	pen := penAfter(t, "\x1b[31;75m")
	if pen.FG != 1 || pen.Attr != 0 {
		t.Errorf("pen = %+v, unknown SGR must not disturb state", pen)
	}
}
