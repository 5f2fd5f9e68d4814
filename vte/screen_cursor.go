// Copyright © 2025 Panemux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/screen_cursor.go
// Summary: Cursor movement, origin-mode addressing, save/restore.

package vte

// setCursor moves the cursor, clamping to the grid. Row and column are
// 0-based absolute coordinates.
func (s *Screen) setCursor(y, x int) {
	s.wrapNext = false
	s.cursorX = clamp(x, 0, s.width-1)
	s.cursorY = clamp(y, 0, s.height-1)
}

// setCursorOrigin addresses a row relative to the scrolling region when
// origin mode is set, clamping inside it.
func (s *Screen) setCursorOrigin(y, x int) {
	if s.originMode {
		s.wrapNext = false
		s.cursorY = clamp(y+s.marginTop, s.marginTop, s.marginBottom)
		s.cursorX = clamp(x, 0, s.width-1)
		return
	}
	s.setCursor(y, x)
}

func (s *Screen) cursorUp(n int) {
	top := 0
	if s.originMode {
		top = s.marginTop
	}
	s.setCursor(max(s.cursorY-n, top), s.cursorX)
}

func (s *Screen) cursorDown(n int) {
	bottom := s.height - 1
	if s.originMode {
		bottom = s.marginBottom
	}
	s.setCursor(min(s.cursorY+n, bottom), s.cursorX)
}

func (s *Screen) cursorForward(n int) {
	s.setCursor(s.cursorY, s.cursorX+n)
}

func (s *Screen) cursorBackward(n int) {
	s.setCursor(s.cursorY, s.cursorX-n)
}

// tabForward moves the cursor forward n tab stops.
func (s *Screen) tabForward(n int) {
	for i := 0; i < n; i++ {
		s.tab()
	}
}

// tabBackward moves the cursor backward n tab stops, stopping at column 0.
func (s *Screen) tabBackward(n int) {
	s.wrapNext = false
	for i := 0; i < n; i++ {
		moved := false
		for x := s.cursorX - 1; x >= 0; x-- {
			if s.tabStops[x] {
				s.cursorX = x
				moved = true
				break
			}
		}
		if !moved {
			s.cursorX = 0
			break
		}
	}
}

// setTabStop sets a tab stop at the cursor column.
func (s *Screen) setTabStop() {
	s.tabStops[s.cursorX] = true
}

// clearTabStop clears the stop at the cursor (mode 0) or all stops (mode 3).
func (s *Screen) clearTabStop(mode int) {
	switch mode {
	case 0:
		delete(s.tabStops, s.cursorX)
	case 3:
		s.tabStops = make(map[int]bool)
	}
}

// saveCursor stores cursor and pen in the single save slot.
func (s *Screen) saveCursor() {
	s.saved = savedCursor{x: s.cursorX, y: s.cursorY, pen: s.pen}
}

// restoreCursor loads the save slot without consuming it.
func (s *Screen) restoreCursor() {
	s.wrapNext = false
	s.cursorX = clamp(s.saved.x, 0, s.width-1)
	s.cursorY = clamp(s.saved.y, 0, s.height-1)
	s.pen = s.saved.pen
}

// setScrollRegion validates and applies DECSTBM bounds (0-based, inclusive)
// and homes the cursor. Invalid bounds leave the region untouched.
func (s *Screen) setScrollRegion(top, bottom int) {
	if top < 0 || bottom >= s.height || top >= bottom {
		return
	}
	s.marginTop = top
	s.marginBottom = bottom
	s.setCursorOrigin(0, 0)
}
