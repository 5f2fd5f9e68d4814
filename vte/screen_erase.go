// Copyright © 2025 Panemux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/screen_erase.go
// Summary: Erase-in-display and erase-in-line semantics.

package vte

// eraseInDisplay implements ED. Mode 0 erases from the cursor to the end of
// the screen, 1 from the start to the cursor, 2 and 3 the whole grid.
func (s *Screen) eraseInDisplay(mode int) {
	switch mode {
	case 0:
		s.eraseInLine(0)
		for y := s.cursorY + 1; y < s.height; y++ {
			s.blankRow(y)
		}
	case 1:
		s.eraseInLine(1)
		for y := 0; y < s.cursorY; y++ {
			s.blankRow(y)
		}
	case 2, 3:
		for y := 0; y < s.height; y++ {
			s.blankRow(y)
		}
	}
}

// eraseInLine implements EL. Mode 0 erases from the cursor to the line end,
// 1 from the line start through the cursor, 2 the whole row.
func (s *Screen) eraseInLine(mode int) {
	var start, end int
	switch mode {
	case 0:
		start, end = s.cursorX, s.width-1
	case 1:
		start, end = 0, s.cursorX
	case 2:
		start, end = 0, s.width-1
	default:
		return
	}
	for x := start; x <= end; x++ {
		s.grid[s.cursorY][x] = blankCell()
	}
}
