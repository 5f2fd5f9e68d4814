// Copyright © 2025 Panemux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/screen_modes.go
// Summary: ANSI and DEC private mode set/reset handling.
// Notes: Mode 12 keeps the source polarity: set disables local echo.

package vte

// setAnsiMode handles SM/RM without a private marker.
func (s *Screen) setAnsiMode(mode int, set bool) {
	switch mode {
	case 4:
		s.insertMode = set
	case 12:
		s.localEcho = !set
	case 20:
		s.autoWrapMode = set
	}
}

// setDECMode handles DECSET/DECRST (CSI ? Pm h/l).
func (s *Screen) setDECMode(mode int, set bool) {
	switch mode {
	case 1:
		s.appCursorKeys = set
	case 5:
		s.reverseVideo = set
	case 6:
		s.originMode = set
		s.setCursorOrigin(0, 0)
	case 7:
		s.autoWrapMode = set
		if !set {
			s.wrapNext = false
		}
	case 25:
		s.cursorVisible = set
	case 2004:
		s.bracketedPaste = set
	}
}
