// Copyright © 2025 Panemux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/scenarios_test.go
// Summary: End-to-end engine scenarios on a 40x10 grid.

package vte

import "testing"

func scenario(t *testing.T, input string) *Screen {
	t.Helper()
	return feed(t, 40, 10, input)
}

func TestScenarioTextAndControl(t *testing.T) {
	s := scenario(t, "Line1\nLine2")
	if got := rowText(s, 0, 5); got != "Line1" {
		t.Errorf("row 0 = %q, want Line1", got)
	}
	if got := rowText(s, 1, 5); got != "Line2" {
		t.Errorf("row 1 = %q, want Line2", got)
	}
	x, y, _ := s.Cursor()
	if x != 5 || y != 1 {
		t.Errorf("cursor = (%d,%d), want (5,1)", x, y)
	}
}

func TestScenarioSgrWithReset(t *testing.T) {
	s := scenario(t, "\x1b[1;4;31;42mA\x1b[0mB")
	a := s.Cell(0, 0)
	if a.FG != 1 || a.BG != 2 {
		t.Errorf("cell A = fg %d bg %d, want fg 1 bg 2", a.FG, a.BG)
	}
	if a.Attr&AttrBold == 0 || a.Attr&AttrUnderline == 0 {
		t.Errorf("cell A attr = %v, want bold|underline", a.Attr)
	}
	b := s.Cell(0, 1)
	if b.FG != DefaultColor || b.BG != DefaultColor || b.Attr != 0 {
		t.Errorf("cell B = %+v, want defaults", b)
	}
}

func TestScenarioBrightColorImpliesBold(t *testing.T) {
	s := scenario(t, "\x1b[91mX\x1b[39m")
	x := s.Cell(0, 0)
	if x.FG != 1 || x.Attr&AttrBold == 0 {
		t.Errorf("cell = fg %d attr %v, want fg 1 bold", x.FG, x.Attr)
	}
}

func TestScenarioCursorPositioning(t *testing.T) {
	s := scenario(t, "\x1b[3;10H*")
	if got := s.Cell(2, 9).Rune; got != '*' {
		t.Errorf("cell[2][9] = %q, want *", got)
	}
	x, y, _ := s.Cursor()
	if x != 10 || y != 2 {
		t.Errorf("cursor = (%d,%d), want (10,2)", x, y)
	}
}

func TestScenarioEraseFromMidScreen(t *testing.T) {
	s := scenario(t, "L1\nL2\nL3\n\x1b[2;3H\x1b[0J")
	if got := s.Cell(0, 0).Rune; got != 'L' {
		t.Errorf("cell[0][0] = %q, want preserved L", got)
	}
	for col := 3; col < 40; col++ {
		if got := s.Cell(1, col).Rune; got != ' ' {
			t.Fatalf("cell[1][%d] = %q, want space", col, got)
		}
	}
	for col := 0; col < 40; col++ {
		if got := s.Cell(2, col).Rune; got != ' ' {
			t.Fatalf("cell[2][%d] = %q, want space", col, got)
		}
	}
}

func TestScenarioDecSpecialLineDrawing(t *testing.T) {
	s := scenario(t, "\x1b(0qqq\x1b(B")
	for col := 0; col < 3; col++ {
		if got := s.Cell(0, col).Rune; got != '─' {
			t.Errorf("cell[0][%d] = %q, want U+2500", col, got)
		}
	}
}

func TestScenario256Color(t *testing.T) {
	s := scenario(t, "\x1b[38;5;196mZ")
	if pen := s.Pen(); pen.FG != 196 {
		t.Errorf("pen fg = %d, want 196", pen.FG)
	}
	if got := s.Cell(0, 0).FG; got != 196 {
		t.Errorf("cell fg = %d, want 196", got)
	}
}

func TestScenarioSaveRestore(t *testing.T) {
	s := scenario(t, "\x1b[5;10H\x1b[31mRed\x1b[s\x1b[1;1H\x1b[32mGreen\x1b[u")
	x, y, _ := s.Cursor()
	if x != 12 || y != 4 {
		t.Errorf("cursor = (%d,%d), want (12,4)", x, y)
	}
	if pen := s.Pen(); pen.FG != 1 {
		t.Errorf("pen fg = %d, want 1 restored", pen.FG)
	}
}

func TestScenarioTabBehavior(t *testing.T) {
	s := scenario(t, "A\tB")
	if got := s.Cell(0, 0).Rune; got != 'A' {
		t.Errorf("cell[0][0] = %q, want A", got)
	}
	if got := s.Cell(0, 8).Rune; got != 'B' {
		t.Errorf("cell[0][8] = %q, want B", got)
	}
	x, _, _ := s.Cursor()
	if x != 9 {
		t.Errorf("cursor x = %d, want 9", x)
	}
}
