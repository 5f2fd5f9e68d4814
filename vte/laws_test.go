// Copyright © 2025 Panemux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/laws_test.go
// Summary: Behavioral laws: slice invariance, reset idempotence,
//          save/restore round trips.

package vte

import (
	"fmt"
	"testing"
)

// snapshot renders the full observable state of a screen.
func snapshot(s *Screen) string {
	w, h := s.Size()
	x, y, vis := s.Cursor()
	top, bottom := s.ScrollRegion()
	out := fmt.Sprintf("cursor=(%d,%d,%v) region=[%d,%d] pen=%+v\n", x, y, vis, top, bottom, s.Pen())
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			c := s.Cell(row, col)
			out += fmt.Sprintf("%c/%d/%d/%d ", c.Rune, c.FG, c.BG, c.Attr)
		}
		out += "\n"
	}
	return out
}

// torture mixes text, UTF-8, controls and every sequence family.
const torture = "Hello,世界!\x1b[1;31mred\x1b[38;5;99mX\x1b[38:2:1:200:3mY\x1b[0m" +
	"\x1b[2;5H\x1b[2J\x1b[3;8r\x1b[?6htext\nmore\x1b[s\x1b[2;2H\x1b[u" +
	"\x1b]0;title here\x07\x1bPqpayload\x1b\\\x1b(0qqk\x1b(B\ttabbed\x1b[5A\x1b[3B" +
	"π≠\x1b[4h insert\x1b[4l\x1b[0K\x1b[1J\x1bM\x1bD\x1bE end\x1b[?25l"

// TestSliceInvariance verifies that any split of the byte stream produces
// the same final state as feeding it whole.
func TestSliceInvariance(t *testing.T) {
	whole := NewScreen(20, 8)
	NewParser(whole).Parse([]byte(torture))
	want := snapshot(whole)

	data := []byte(torture)
	for cut := 1; cut < len(data); cut++ {
		s := NewScreen(20, 8)
		p := NewParser(s)
		p.Parse(data[:cut])
		p.Parse(data[cut:])
		if got := snapshot(s); got != want {
			t.Fatalf("split at %d diverges:\n got: %s\nwant: %s", cut, got, want)
		}
	}
}

// TestSliceInvarianceBytewise feeds the stream one byte at a time.
func TestSliceInvarianceBytewise(t *testing.T) {
	whole := NewScreen(20, 8)
	NewParser(whole).Parse([]byte(torture))
	want := snapshot(whole)

	s := NewScreen(20, 8)
	p := NewParser(s)
	for _, b := range []byte(torture) {
		p.Parse([]byte{b})
	}
	if got := snapshot(s); got != want {
		t.Fatalf("bytewise feed diverges:\n got: %s\nwant: %s", got, want)
	}
}

// TestResetIdempotence verifies that RIS followed by an operation matches
// the operation on a fresh screen.
func TestResetIdempotence(t *testing.T) {
	dirty := NewScreen(20, 8)
	p := NewParser(dirty)
	p.Parse([]byte(torture))
	p.Parse([]byte("\x1bc"))
	p.Parse([]byte("\x1b[1;35mafter reset"))

	fresh := NewScreen(20, 8)
	NewParser(fresh).Parse([]byte("\x1b[1;35mafter reset"))

	if got, want := snapshot(dirty), snapshot(fresh); got != want {
		t.Fatalf("reset is not idempotent:\n got: %s\nwant: %s", got, want)
	}
	if dirty.Mode(ModeCursorVisible) != true {
		t.Error("RIS must restore cursor visibility")
	}
}

// TestSgrResetIdentity verifies that SGR 0 returns the pen to the defaults.
func TestSgrResetIdentity(t *testing.T) {
	s := feed(t, 20, 5, "\x1b[1;3;4;5;7;8;9;38;5;200;48;2;1;2;3m\x1b[0m")
	pen := s.Pen()
	if pen.FG != DefaultColor || pen.BG != DefaultColor || pen.Attr != 0 {
		t.Errorf("pen = %+v, want exact defaults", pen)
	}
}

// TestSaveRestoreRoundTrip verifies cursor and pen survive arbitrary work
// between save and restore.
func TestSaveRestoreRoundTrip(t *testing.T) {
	s := feed(t, 30, 10, "\x1b[6;14H\x1b[2;36;45m\x1b[s")
	wantPen := s.Pen()
	feedMore(t, s, "\x1b[H\x1b[0m\x1b[2J\x1b[1;31mgarbage\ttext\x1b[3B\x1b[u")
	x, y, _ := s.Cursor()
	if x != 13 || y != 5 {
		t.Errorf("cursor = (%d,%d), want (13,5)", x, y)
	}
	if got := s.Pen(); got != wantPen {
		t.Errorf("pen = %+v, want %+v", got, wantPen)
	}
}

// TestEveryByteMakesProgress throws each possible byte at every state
// family and requires no panic and a defined cursor afterwards.
func TestEveryByteMakesProgress(t *testing.T) {
	prefixes := []string{
		"", "\x1b", "\x1b[", "\x1b[1;", "\x1b[1:", "\x1b[?", "\x1b[ ",
		"\x1b(", "\x1b]", "\x1b]0;t", "\x1bP", "\x1bP1;2q", "\x1b_", "\xe2",
	}
	for _, prefix := range prefixes {
		for b := 0; b < 256; b++ {
			s := NewScreen(10, 4)
			p := NewParser(s)
			p.Parse([]byte(prefix))
			p.Advance(byte(b))
			p.Parse([]byte("A"))
			checkInvariants(t, s)
		}
	}
}
