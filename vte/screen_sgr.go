// Copyright © 2025 Panemux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/screen_sgr.go
// Summary: Select Graphic Rendition: pen attribute and color handling.
// Notes: Extended colors (38/48) are accepted both as further primaries
//        and as subparameters of the introducer.

package vte

// sgr applies a complete SGR parameter list to the pen. An empty list is a
// full reset.
func (s *Screen) sgr(params *Params) {
	if params.Len() == 0 {
		s.pen = defaultPen()
		return
	}
	for i := 0; i < params.Len(); i++ {
		run := params.Get(i)
		p := int(run[0])
		switch {
		case p == 0:
			s.pen = defaultPen()
		case p == 1:
			s.pen.Attr |= AttrBold
		case p == 2:
			s.pen.Attr |= AttrDim
		case p == 3:
			s.pen.Attr |= AttrItalic
		case p == 4:
			s.pen.Attr |= AttrUnderline
		case p == 5:
			s.pen.Attr |= AttrBlink
		case p == 7:
			s.pen.Attr |= AttrReverse
		case p == 8:
			s.pen.Attr |= AttrHidden
		case p == 9:
			s.pen.Attr |= AttrStrike
		case p == 22:
			s.pen.Attr &^= AttrBold | AttrDim
		case p == 23:
			s.pen.Attr &^= AttrItalic
		case p == 24:
			s.pen.Attr &^= AttrUnderline
		case p == 25:
			s.pen.Attr &^= AttrBlink
		case p == 27:
			s.pen.Attr &^= AttrReverse
		case p == 28:
			s.pen.Attr &^= AttrHidden
		case p == 29:
			s.pen.Attr &^= AttrStrike
		case p >= 30 && p <= 37:
			s.pen.FG = AnsiColor(p - 30)
		case p == 39:
			s.pen.FG = DefaultColor
		case p >= 40 && p <= 47:
			s.pen.BG = AnsiColor(p - 40)
		case p == 49:
			s.pen.BG = DefaultColor
		case p >= 90 && p <= 97:
			s.pen.FG = AnsiColor(p - 90)
			s.pen.Attr |= AttrBold
		case p >= 100 && p <= 107:
			s.pen.BG = AnsiColor(p - 100)
		case p == 38 || p == 48:
			color, consumed := extendedColor(params, i, run)
			if consumed < 0 {
				return // malformed spec; drop the rest of the sequence
			}
			if p == 38 {
				s.pen.FG = color
			} else {
				s.pen.BG = color
			}
			i += consumed
		}
	}
}

// extendedColor decodes a 38/48 color specification starting at primary i.
// It returns the display index and how many further primaries were
// consumed (0 when the spec arrived as subparameters), or -1 on a
// malformed spec.
func extendedColor(params *Params, i int, run []uint16) (color, consumed int) {
	if len(run) > 1 {
		// Subparameter form: 38:5:idx or 38:2:r:g:b.
		switch run[1] {
		case 5:
			if len(run) < 3 {
				return 0, -1
			}
			return int(run[2]) & 0xff, 0
		case 2:
			if len(run) < 5 {
				return 0, -1
			}
			return RGBColor(int(run[2]), int(run[3]), int(run[4])), 0
		}
		return 0, -1
	}
	// Primary form: 38;5;idx or 38;2;r;g;b.
	mode := params.GetSingle(i+1, 0)
	switch mode {
	case 5:
		if i+2 >= params.Len() {
			return 0, -1
		}
		return params.GetSingle(i+2, 0) & 0xff, 2
	case 2:
		if i+4 >= params.Len() {
			return 0, -1
		}
		r := params.GetSingle(i+2, 0)
		g := params.GetSingle(i+3, 0)
		b := params.GetSingle(i+4, 0)
		return RGBColor(r, g, b), 4
	}
	return 0, -1
}
