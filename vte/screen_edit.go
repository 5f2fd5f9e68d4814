// Copyright © 2025 Panemux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/screen_edit.go
// Summary: Line/character insertion, deletion and region scrolling.
// Notes: Scroll fills use default-colored blanks; ECH carries the pen.

package vte

// scrollUp shifts the scrolling region up by n lines, dropping the top
// lines and blanking the bottom.
func (s *Screen) scrollUp(n int) {
	s.wrapNext = false
	span := s.marginBottom - s.marginTop + 1
	if n > span {
		n = span
	}
	for y := s.marginTop; y+n <= s.marginBottom; y++ {
		copy(s.grid[y], s.grid[y+n])
	}
	for y := s.marginBottom - n + 1; y <= s.marginBottom; y++ {
		s.blankRow(y)
	}
}

// scrollDown shifts the scrolling region down by n lines, dropping the
// bottom lines and blanking the top.
func (s *Screen) scrollDown(n int) {
	s.wrapNext = false
	span := s.marginBottom - s.marginTop + 1
	if n > span {
		n = span
	}
	for y := s.marginBottom; y-n >= s.marginTop; y-- {
		copy(s.grid[y], s.grid[y-n])
	}
	for y := s.marginTop; y < s.marginTop+n; y++ {
		s.blankRow(y)
	}
}

func (s *Screen) blankRow(y int) {
	for x := range s.grid[y] {
		s.grid[y][x] = blankCell()
	}
}

// insertLines opens n blank lines at the cursor row; lines below slide
// toward the region bottom. Outside the scrolling region it is a no-op.
func (s *Screen) insertLines(n int) {
	if s.cursorY < s.marginTop || s.cursorY > s.marginBottom {
		return
	}
	s.wrapNext = false
	span := s.marginBottom - s.cursorY + 1
	if n > span {
		n = span
	}
	for y := s.marginBottom; y-n >= s.cursorY; y-- {
		copy(s.grid[y], s.grid[y-n])
	}
	for y := s.cursorY; y < s.cursorY+n; y++ {
		s.blankRow(y)
	}
}

// deleteLines removes n lines at the cursor row; lines below slide up and
// blanks enter at the region bottom.
func (s *Screen) deleteLines(n int) {
	if s.cursorY < s.marginTop || s.cursorY > s.marginBottom {
		return
	}
	s.wrapNext = false
	span := s.marginBottom - s.cursorY + 1
	if n > span {
		n = span
	}
	for y := s.cursorY; y+n <= s.marginBottom; y++ {
		copy(s.grid[y], s.grid[y+n])
	}
	for y := s.marginBottom - n + 1; y <= s.marginBottom; y++ {
		s.blankRow(y)
	}
}

// insertChars opens n blank cells at the cursor; the tail of the row slides
// right and falls off the edge.
func (s *Screen) insertChars(n int) {
	s.wrapNext = false
	row := s.grid[s.cursorY]
	if n > s.width-s.cursorX {
		n = s.width - s.cursorX
	}
	copy(row[s.cursorX+n:], row[s.cursorX:s.width-n])
	for x := s.cursorX; x < s.cursorX+n; x++ {
		row[x] = blankCell()
	}
}

// deleteChars removes n cells at the cursor; the tail slides left and
// blanks enter at the right edge.
func (s *Screen) deleteChars(n int) {
	s.wrapNext = false
	row := s.grid[s.cursorY]
	if n > s.width-s.cursorX {
		n = s.width - s.cursorX
	}
	copy(row[s.cursorX:], row[s.cursorX+n:])
	for x := s.width - n; x < s.width; x++ {
		row[x] = blankCell()
	}
}

// eraseChars overwrites n cells starting at the cursor with blanks carrying
// the current pen.
func (s *Screen) eraseChars(n int) {
	s.wrapNext = false
	for i := 0; i < n && s.cursorX+i < s.width; i++ {
		s.grid[s.cursorY][s.cursorX+i] = Cell{Rune: ' ', FG: s.pen.FG, BG: s.pen.BG, Attr: s.pen.Attr}
	}
}

// repeatChar re-prints the last graphic character n times (REP).
func (s *Screen) repeatChar(n int) {
	if s.lastGraphicChar == 0 {
		return
	}
	r := s.lastGraphicChar
	for i := 0; i < n; i++ {
		s.Print(r)
	}
}

// alignmentFill implements DECALN: the grid fills with E and the margins
// and cursor reset.
func (s *Screen) alignmentFill() {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.grid[y][x] = Cell{Rune: 'E', FG: DefaultColor, BG: DefaultColor}
		}
	}
	s.marginTop = 0
	s.marginBottom = s.height - 1
	s.setCursor(0, 0)
}
