// Copyright © 2025 Panemux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/cell_test.go
// Summary: Engine-to-tcell style mapping tests.

package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/panemux/panemux/vte"
)

func TestStyleMapsColorsAndAttrs(t *testing.T) {
	cache := NewStyleCache()
	cell := vte.Cell{Rune: 'x', FG: 1, BG: 4, Attr: vte.AttrBold | vte.AttrUnderline}
	st := cache.Style(cell, false)
	fg, bg, attrs := st.Decompose()
	if fg != tcell.PaletteColor(1) || bg != tcell.PaletteColor(4) {
		t.Errorf("colors = (%v,%v), want palette 1/4", fg, bg)
	}
	if attrs&tcell.AttrBold == 0 || attrs&tcell.AttrUnderline == 0 {
		t.Errorf("attrs = %v, want bold|underline", attrs)
	}
}

func TestStyleDefaultColors(t *testing.T) {
	cache := NewStyleCache()
	st := cache.Style(vte.Cell{Rune: ' ', FG: vte.DefaultColor, BG: vte.DefaultColor}, false)
	fg, bg, _ := st.Decompose()
	if fg != tcell.ColorDefault || bg != tcell.ColorDefault {
		t.Errorf("colors = (%v,%v), want terminal defaults", fg, bg)
	}
}

func TestStyleReverseVideoSwaps(t *testing.T) {
	cache := NewStyleCache()
	cell := vte.Cell{Rune: 'x', FG: 2, BG: 5}
	st := cache.Style(cell, true)
	fg, bg, _ := st.Decompose()
	if fg != tcell.PaletteColor(5) || bg != tcell.PaletteColor(2) {
		t.Errorf("reverse video: colors = (%v,%v), want swapped", fg, bg)
	}
}

func TestStyleCacheReturnsSameStyle(t *testing.T) {
	cache := NewStyleCache()
	cell := vte.Cell{Rune: 'x', FG: 3, BG: 6, Attr: vte.AttrItalic}
	if cache.Style(cell, false) != cache.Style(cell, false) {
		t.Error("identical cells must map to the identical style value")
	}
	if len(cache.styles) != 1 {
		t.Errorf("cache holds %d entries, want 1", len(cache.styles))
	}
}

func TestHiddenCellsPaintBlank(t *testing.T) {
	if r := cellRune(vte.Cell{Rune: 'S', Attr: vte.AttrHidden}); r != ' ' {
		t.Errorf("hidden cell paints %q, want space", r)
	}
	if r := cellRune(vte.Cell{Rune: 'S'}); r != 'S' {
		t.Errorf("visible cell paints %q, want S", r)
	}
}

func TestEncodeKeyArrows(t *testing.T) {
	up := tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	if got := string(encodeKey(up, false)); got != "\x1b[A" {
		t.Errorf("normal up = %q, want ESC[A", got)
	}
	if got := string(encodeKey(up, true)); got != "\x1bOA" {
		t.Errorf("application up = %q, want ESC OA", got)
	}
}

func TestEncodeKeyRunesAndControls(t *testing.T) {
	r := tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone)
	if got := string(encodeKey(r, false)); got != "é" {
		t.Errorf("rune = %q, want é", got)
	}
	alt := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt)
	if got := string(encodeKey(alt, false)); got != "\x1bx" {
		t.Errorf("alt-x = %q, want ESC x", got)
	}
	ctrl := tcell.NewEventKey(tcell.KeyCtrlC, rune(tcell.KeyCtrlC), tcell.ModCtrl)
	if got := encodeKey(ctrl, false); len(got) != 1 || got[0] != 0x03 {
		t.Errorf("ctrl-c = %v, want 0x03", got)
	}
	enter := tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	if got := string(encodeKey(enter, false)); got != "\r" {
		t.Errorf("enter = %q, want CR", got)
	}
}
