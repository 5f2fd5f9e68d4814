// Copyright © 2025 Panemux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/layout.go
// Summary: Tiled pane layout: rectangles for 1-4 panes above a status row.

package tui

// MaxPanes bounds the number of simultaneously hosted panels.
const MaxPanes = 4

// Rect is a half-open screen rectangle: x in [X0,X1), y in [Y0,Y1).
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Width returns the rectangle width.
func (r Rect) Width() int { return r.X1 - r.X0 }

// Height returns the rectangle height.
func (r Rect) Height() int { return r.Y1 - r.Y0 }

// layoutPanes computes pane rectangles for n panes in a w x h area.
// One pane fills the area, two split into columns, three put one wide pane
// below two columns, four tile 2x2.
func layoutPanes(n, w, h int) []Rect {
	if n <= 0 || w <= 0 || h <= 0 {
		return nil
	}
	if n > MaxPanes {
		n = MaxPanes
	}
	switch n {
	case 1:
		return []Rect{{0, 0, w, h}}
	case 2:
		mid := w / 2
		return []Rect{
			{0, 0, mid, h},
			{mid, 0, w, h},
		}
	case 3:
		mid := w / 2
		midY := h / 2
		return []Rect{
			{0, 0, mid, midY},
			{mid, 0, w, midY},
			{0, midY, w, h},
		}
	default:
		mid := w / 2
		midY := h / 2
		return []Rect{
			{0, 0, mid, midY},
			{mid, 0, w, midY},
			{0, midY, mid, h},
			{mid, midY, w, h},
		}
	}
}

// interior returns the drawable area inside a pane's border.
func interior(r Rect) Rect {
	in := Rect{r.X0 + 1, r.Y0 + 1, r.X1 - 1, r.Y1 - 1}
	if in.X1 < in.X0 {
		in.X1 = in.X0
	}
	if in.Y1 < in.Y0 {
		in.Y1 = in.Y0
	}
	return in
}
