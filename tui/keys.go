// Copyright © 2025 Panemux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/keys.go
// Summary: Encodes tcell key events into the byte sequences a child
//          terminal application expects.

package tui

import "github.com/gdamore/tcell/v2"

// encodeKey translates a key event to terminal input bytes. appCursor
// selects SS3-style arrow encoding (DECCKM set).
func encodeKey(ev *tcell.EventKey, appCursor bool) []byte {
	switch ev.Key() {
	case tcell.KeyRune:
		b := []byte(string(ev.Rune()))
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return append([]byte{0x1b}, b...)
		}
		return b
	case tcell.KeyEnter:
		return []byte{'\r'}
	case tcell.KeyTab:
		return []byte{'\t'}
	case tcell.KeyBacktab:
		return []byte("\x1b[Z")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return []byte{0x7f}
	case tcell.KeyEsc:
		return []byte{0x1b}
	case tcell.KeyUp:
		return arrow('A', appCursor)
	case tcell.KeyDown:
		return arrow('B', appCursor)
	case tcell.KeyRight:
		return arrow('C', appCursor)
	case tcell.KeyLeft:
		return arrow('D', appCursor)
	case tcell.KeyHome:
		return arrow('H', appCursor)
	case tcell.KeyEnd:
		return arrow('F', appCursor)
	case tcell.KeyPgUp:
		return []byte("\x1b[5~")
	case tcell.KeyPgDn:
		return []byte("\x1b[6~")
	case tcell.KeyInsert:
		return []byte("\x1b[2~")
	case tcell.KeyDelete:
		return []byte("\x1b[3~")
	case tcell.KeyF1:
		return []byte("\x1bOP")
	case tcell.KeyF2:
		return []byte("\x1bOQ")
	case tcell.KeyF3:
		return []byte("\x1bOR")
	case tcell.KeyF4:
		return []byte("\x1bOS")
	case tcell.KeyF5:
		return []byte("\x1b[15~")
	case tcell.KeyF6:
		return []byte("\x1b[17~")
	case tcell.KeyF7:
		return []byte("\x1b[18~")
	case tcell.KeyF8:
		return []byte("\x1b[19~")
	case tcell.KeyF9:
		return []byte("\x1b[20~")
	case tcell.KeyF10:
		return []byte("\x1b[21~")
	case tcell.KeyF11:
		return []byte("\x1b[23~")
	case tcell.KeyF12:
		return []byte("\x1b[24~")
	}
	// Ctrl-letter keys map to the C0 bytes 0x01-0x1a, independent of how
	// tcell numbers KeyCtrlA..KeyCtrlZ.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return []byte{byte(k-tcell.KeyCtrlA) + 1}
	}
	// Other control characters arrive as key codes 0x00-0x1f.
	if k := ev.Key(); k < 0x20 {
		return []byte{byte(k)}
	}
	return nil
}

func arrow(final byte, appCursor bool) []byte {
	if appCursor {
		return []byte{0x1b, 'O', final}
	}
	return []byte{0x1b, '[', final}
}
