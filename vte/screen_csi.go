// Copyright © 2025 Panemux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/screen_csi.go
// Summary: CSI dispatch: maps final bytes onto screen operations.
// Notes: Unknown finals are deliberate no-ops; the engine must make
//        progress on every byte (see the error-handling contract).

package vte

import "fmt"

// CsiDispatch applies a complete control sequence to the screen.
func (s *Screen) CsiDispatch(params *Params, intermediates []byte, ignore bool, final byte) {
	if ignore {
		return
	}
	private := len(intermediates) > 0 && intermediates[0] == '?'

	switch final {
	case 'A':
		s.cursorUp(params.GetSingle(0, 1))
	case 'B':
		s.cursorDown(params.GetSingle(0, 1))
	case 'C':
		s.cursorForward(params.GetSingle(0, 1))
	case 'D':
		s.cursorBackward(params.GetSingle(0, 1))
	case 'E':
		s.cursorDown(params.GetSingle(0, 1))
		s.cursorX = 0
	case 'F':
		s.cursorUp(params.GetSingle(0, 1))
		s.cursorX = 0
	case 'G':
		s.setCursor(s.cursorY, params.GetSingle(0, 1)-1)
	case 'd':
		s.setCursorOrigin(params.GetSingle(0, 1)-1, s.cursorX)
	case 'H', 'f':
		s.setCursorOrigin(params.GetSingle(0, 1)-1, params.GetSingle(1, 1)-1)
	case 'I':
		s.tabForward(params.GetSingle(0, 1))
	case 'Z':
		s.tabBackward(params.GetSingle(0, 1))
	case 'J':
		s.eraseInDisplay(params.GetSingle(0, 0))
	case 'K':
		s.eraseInLine(params.GetSingle(0, 0))
	case 'L':
		s.insertLines(params.GetSingle(0, 1))
	case 'M':
		s.deleteLines(params.GetSingle(0, 1))
	case '@':
		s.insertChars(params.GetSingle(0, 1))
	case 'P':
		s.deleteChars(params.GetSingle(0, 1))
	case 'X':
		s.eraseChars(params.GetSingle(0, 1))
	case 'S':
		s.scrollUp(params.GetSingle(0, 1))
	case 'T':
		s.scrollDown(params.GetSingle(0, 1))
	case 'b':
		s.repeatChar(params.GetSingle(0, 1))
	case 'g':
		s.clearTabStop(params.GetSingle(0, 0))
	case 'h', 'l':
		set := final == 'h'
		for i := 0; i < params.Len(); i++ {
			mode := params.GetSingle(i, 0)
			if private {
				s.setDECMode(mode, set)
			} else {
				s.setAnsiMode(mode, set)
			}
		}
	case 'm':
		s.sgr(params)
	case 'r':
		s.setScrollRegion(params.GetSingle(0, 1)-1, params.GetSingle(1, s.height)-1)
	case 's':
		s.saveCursor()
	case 'u':
		s.restoreCursor()
	case 'n':
		if params.GetSingle(0, 0) == 6 {
			s.reply([]byte(fmt.Sprintf("\x1b[%d;%dR", s.cursorY+1, s.cursorX+1)))
		}
	case 'c':
		if len(intermediates) == 0 {
			s.reply([]byte("\x1b[?6c")) // VT102
		}
	}
}

func (s *Screen) reply(b []byte) {
	if s.Reply != nil {
		s.Reply(b)
	}
}
