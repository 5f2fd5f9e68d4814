// Copyright © 2025 Panemux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/pane.go
// Summary: A bordered screen region hosting one PTY app.

package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/panemux/panemux/vte"
)

// Pane ties a PTY app to a rectangle on the host terminal.
type Pane struct {
	Rect   Rect
	App    *PTYApp
	Active bool
}

func newPane(app *PTYApp) *Pane {
	return &Pane{App: app}
}

// SetRect moves/resizes the pane and propagates the interior size to the
// hosted app.
func (p *Pane) SetRect(r Rect) {
	p.Rect = r
	in := interior(r)
	p.App.Resize(in.Width(), in.Height())
}

// Draw paints border, title and content onto the host screen.
func (p *Pane) Draw(ts tcell.Screen, styles *StyleCache) {
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	if p.Active {
		borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	}
	p.drawBorder(ts, borderStyle)
	p.drawTitle(ts, borderStyle)
	p.drawContent(ts, styles)
}

func (p *Pane) drawBorder(ts tcell.Screen, style tcell.Style) {
	r := p.Rect
	for x := r.X0 + 1; x < r.X1-1; x++ {
		ts.SetContent(x, r.Y0, '─', nil, style)
		ts.SetContent(x, r.Y1-1, '─', nil, style)
	}
	for y := r.Y0 + 1; y < r.Y1-1; y++ {
		ts.SetContent(r.X0, y, '│', nil, style)
		ts.SetContent(r.X1-1, y, '│', nil, style)
	}
	ts.SetContent(r.X0, r.Y0, '┌', nil, style)
	ts.SetContent(r.X1-1, r.Y0, '┐', nil, style)
	ts.SetContent(r.X0, r.Y1-1, '└', nil, style)
	ts.SetContent(r.X1-1, r.Y1-1, '┘', nil, style)
}

func (p *Pane) drawTitle(ts tcell.Screen, style tcell.Style) {
	title := " " + p.App.Title() + " "
	maxw := p.Rect.Width() - 4
	if maxw <= 0 {
		return
	}
	title = runewidth.Truncate(title, maxw, "… ")
	x := p.Rect.X0 + 2
	for _, r := range title {
		ts.SetContent(x, p.Rect.Y0, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func (p *Pane) drawContent(ts tcell.Screen, styles *StyleCache) {
	in := interior(p.Rect)
	p.App.Snapshot(func(s *vte.Screen) {
		w, h := s.Size()
		reverse := s.Mode(vte.ModeReverseVideo)
		for row := 0; row < h && row < in.Height(); row++ {
			for col := 0; col < w && col < in.Width(); col++ {
				cell := s.Cell(row, col)
				ts.SetContent(in.X0+col, in.Y0+row, cellRune(cell), nil, styles.Style(cell, reverse))
			}
		}
		if p.Active {
			x, y, visible := s.Cursor()
			if visible && x < in.Width() && y < in.Height() {
				ts.ShowCursor(in.X0+x, in.Y0+y)
			}
		}
	})
}
