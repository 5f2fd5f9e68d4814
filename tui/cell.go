// Copyright © 2025 Panemux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/cell.go
// Summary: Maps engine cells onto tcell styles, with a style cache.

package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/panemux/panemux/vte"
)

type styleKey struct {
	fg, bg int
	attr   vte.Attribute
}

// StyleCache memoizes the engine-attribute to tcell.Style translation.
// Style values are cheap but the mapping runs for every cell on every
// frame, so one map lookup beats rebuilding the style.
type StyleCache struct {
	styles map[styleKey]tcell.Style
}

func NewStyleCache() *StyleCache {
	return &StyleCache{styles: make(map[styleKey]tcell.Style)}
}

// Style returns the tcell style for a cell. reverse swaps fg/bg for
// DECSCNM screens.
func (c *StyleCache) Style(cell vte.Cell, reverse bool) tcell.Style {
	key := styleKey{fg: cell.FG, bg: cell.BG, attr: cell.Attr}
	if reverse {
		key.fg, key.bg = key.bg, key.fg
	}
	if st, ok := c.styles[key]; ok {
		return st
	}
	st := tcell.StyleDefault.
		Foreground(displayColor(key.fg)).
		Background(displayColor(key.bg))
	if key.attr&vte.AttrBold != 0 {
		st = st.Bold(true)
	}
	if key.attr&vte.AttrDim != 0 {
		st = st.Dim(true)
	}
	if key.attr&vte.AttrItalic != 0 {
		st = st.Italic(true)
	}
	if key.attr&vte.AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if key.attr&vte.AttrBlink != 0 {
		st = st.Blink(true)
	}
	if key.attr&vte.AttrReverse != 0 {
		st = st.Reverse(true)
	}
	if key.attr&vte.AttrStrike != 0 {
		st = st.StrikeThrough(true)
	}
	c.styles[key] = st
	return st
}

// displayColor resolves an engine color index to a tcell color.
func displayColor(idx int) tcell.Color {
	if idx < 0 || idx > 255 {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(idx)
}

// cellRune returns the rune to paint for a cell; hidden cells paint blank.
func cellRune(cell vte.Cell) rune {
	if cell.Attr&vte.AttrHidden != 0 {
		return ' '
	}
	if cell.Rune == 0 {
		return ' '
	}
	return cell.Rune
}
