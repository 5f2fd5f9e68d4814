// Copyright © 2025 Panemux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/screen.go
// Summary: The multiplexer host: tcell event loop, tiled panes, command
//          mode and the status line.
// Notes: All engine access happens from this loop or under each app's
//        own lock; the host never blocks inside the engine.

package tui

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/panemux/panemux/vte"
)

const prefixKey = tcell.KeyCtrlA

// Options configures a Screen.
type Options struct {
	Shell             []string
	SessionName       string
	Store             *SessionStore
	HardcopyDir       string
	HardcopyHighlight bool
}

// Screen manages the terminal display and the set of hosted panes.
type Screen struct {
	ts     tcell.Screen
	opts   Options
	styles *StyleCache

	mu          sync.Mutex
	panes       []*Pane
	active      int
	commandMode bool
	statusMsg   string

	refreshChan chan bool
	quit        chan struct{}
	quitOnce    sync.Once
	closeOnce   sync.Once
}

// NewScreen initializes the host terminal.
func NewScreen(opts Options) (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := ts.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	ts.HideCursor()
	return &Screen{
		ts:          ts,
		opts:        opts,
		styles:      NewStyleCache(),
		refreshChan: make(chan bool, 1),
		quit:        make(chan struct{}),
	}, nil
}

// AddPane creates a new pane running command and focuses it.
func (s *Screen) AddPane(title string, command []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.panes) >= MaxPanes {
		return fmt.Errorf("pane limit of %d reached", MaxPanes)
	}
	if len(command) == 0 {
		command = s.opts.Shell
	}
	if title == "" {
		title = fmt.Sprintf("shell-%d", len(s.panes)+1)
	}
	app := NewPTYApp(title, command)
	app.SetRefreshNotifier(s.refreshChan)
	pane := newPane(app)
	s.panes = append(s.panes, pane)
	s.active = len(s.panes) - 1
	s.relayoutLocked()

	in := interior(pane.Rect)
	if err := app.Run(in.Width(), in.Height()); err != nil {
		s.panes = s.panes[:len(s.panes)-1]
		if s.active >= len(s.panes) {
			s.active = len(s.panes) - 1
		}
		s.relayoutLocked()
		return err
	}
	return nil
}

// Run drives the event loop until quit.
func (s *Screen) Run() error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := s.ts.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-s.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	dirty := true
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if s.handleKey(ev) {
					return nil
				}
				dirty = true
			case *tcell.EventResize:
				s.mu.Lock()
				s.relayoutLocked()
				s.mu.Unlock()
				s.ts.Sync()
				dirty = true
			case *tcell.EventPaste:
				// start/end markers only; runes arrive as key events
			}
		case <-s.refreshChan:
			dirty = true
		case <-ticker.C:
			if dirty {
				s.draw()
				dirty = false
			}
		case <-s.quit:
			return nil
		}
	}
}

func (s *Screen) requestQuit() {
	s.quitOnce.Do(func() { close(s.quit) })
}

// Close stops all panes and releases the terminal.
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		s.requestQuit()
		s.mu.Lock()
		panes := append([]*Pane(nil), s.panes...)
		s.mu.Unlock()
		for _, p := range panes {
			p.App.Stop()
		}
		s.ts.Fini()
	})
}

// PaneStates snapshots the pane set for session persistence.
func (s *Screen) PaneStates() []PaneState {
	s.mu.Lock()
	defer s.mu.Unlock()
	states := make([]PaneState, 0, len(s.panes))
	for i, p := range s.panes {
		states = append(states, PaneState{
			Index:   i,
			Command: firstArg(p.App.Command()),
			Title:   p.App.Title(),
		})
	}
	return states
}

func firstArg(argv []string) string {
	if len(argv) == 0 {
		return ""
	}
	return argv[0]
}

// --- input ---

// handleKey routes one key event. It returns true when the session should
// end.
func (s *Screen) handleKey(ev *tcell.EventKey) bool {
	s.mu.Lock()
	inCommand := s.commandMode
	s.mu.Unlock()

	if inCommand {
		return s.handleCommand(ev)
	}
	if ev.Key() == prefixKey {
		s.mu.Lock()
		s.commandMode = true
		s.statusMsg = ""
		s.mu.Unlock()
		return false
	}
	s.forwardKey(ev)
	return false
}

// handleCommand interprets one post-prefix key.
func (s *Screen) handleCommand(ev *tcell.EventKey) bool {
	s.mu.Lock()
	s.commandMode = false
	s.mu.Unlock()

	switch {
	case ev.Key() == tcell.KeyEsc:
		return false
	case ev.Key() == prefixKey:
		// Double prefix sends a literal Ctrl-A to the child.
		s.forwardKey(ev)
		return false
	case ev.Key() == tcell.KeyTab, ev.Rune() == 'n':
		s.cyclePane(1)
	case ev.Rune() == 'p':
		s.cyclePane(-1)
	case ev.Rune() == 'c':
		if err := s.AddPane("", nil); err != nil {
			s.setStatus(err.Error())
		}
	case ev.Rune() == 'x':
		s.closeActivePane()
	case ev.Rune() == 'h':
		s.hardcopyActivePane()
	case ev.Rune() == 'd':
		s.saveSession()
	case ev.Rune() == 'q':
		return true
	}
	return false
}

func (s *Screen) forwardKey(ev *tcell.EventKey) {
	s.mu.Lock()
	pane := s.activePaneLocked()
	s.mu.Unlock()
	if pane == nil {
		return
	}
	b := encodeKey(ev, pane.App.Mode(vte.ModeAppCursorKeys))
	if len(b) == 0 {
		return
	}
	pane.App.Send(b)
}

func (s *Screen) activePaneLocked() *Pane {
	if s.active < 0 || s.active >= len(s.panes) {
		return nil
	}
	return s.panes[s.active]
}

func (s *Screen) cyclePane(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.panes) == 0 {
		return
	}
	s.active = (s.active + delta + len(s.panes)) % len(s.panes)
}

func (s *Screen) closeActivePane() {
	s.mu.Lock()
	pane := s.activePaneLocked()
	if pane == nil {
		s.mu.Unlock()
		return
	}
	s.panes = append(s.panes[:s.active], s.panes[s.active+1:]...)
	if s.active >= len(s.panes) {
		s.active = len(s.panes) - 1
	}
	s.relayoutLocked()
	empty := len(s.panes) == 0
	s.mu.Unlock()

	pane.App.Stop()
	if empty {
		s.requestQuit()
	}
}

func (s *Screen) hardcopyActivePane() {
	s.mu.Lock()
	pane := s.activePaneLocked()
	idx := s.active
	s.mu.Unlock()
	if pane == nil {
		return
	}
	path, err := Hardcopy(s.opts.HardcopyDir, idx, pane.App.Text(), s.opts.HardcopyHighlight)
	if err != nil {
		log.Printf("hardcopy: %v", err)
		s.setStatus("hardcopy failed")
		return
	}
	s.setStatus("saved " + path)
}

func (s *Screen) saveSession() {
	if s.opts.Store == nil {
		s.setStatus("no session store")
		return
	}
	if err := s.opts.Store.Save(s.opts.SessionName, s.PaneStates()); err != nil {
		log.Printf("session save: %v", err)
		s.setStatus("session save failed")
		return
	}
	s.setStatus("session saved")
}

func (s *Screen) setStatus(msg string) {
	s.mu.Lock()
	s.statusMsg = msg
	s.mu.Unlock()
}

// --- layout and drawing ---

// relayoutLocked recomputes pane rectangles for the current terminal size.
// The bottom row is reserved for the status line.
func (s *Screen) relayoutLocked() {
	w, h := s.ts.Size()
	rects := layoutPanes(len(s.panes), w, h-1)
	for i, p := range s.panes {
		if i < len(rects) {
			p.SetRect(rects[i])
		}
	}
}

func (s *Screen) draw() {
	s.mu.Lock()
	panes := append([]*Pane(nil), s.panes...)
	active := s.active
	command := s.commandMode
	status := s.statusMsg
	s.mu.Unlock()

	s.ts.Clear()
	s.ts.HideCursor()
	for i, p := range panes {
		p.Active = i == active
		p.Draw(s.ts, s.styles)
	}
	s.drawStatusLine(panes, active, command, status)
	s.ts.Show()
}

func (s *Screen) drawStatusLine(panes []*Pane, active int, command bool, status string) {
	w, h := s.ts.Size()
	y := h - 1
	base := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		s.ts.SetContent(x, y, ' ', nil, base)
	}

	left := " " + s.opts.SessionName + " "
	if command {
		left += "[CMD] "
	}
	for i, p := range panes {
		tab := fmt.Sprintf(" %d:%s ", i+1, p.App.Title())
		if i == active {
			tab = "*" + tab[1:]
		}
		left += tab
	}
	left = runewidth.Truncate(left, w, "…")
	x := 0
	for _, r := range left {
		s.ts.SetContent(x, y, r, nil, base)
		x += runewidth.RuneWidth(r)
	}

	if status != "" && w-x > 0 {
		msg := runewidth.Truncate(" "+status+" ", w-x, "…")
		start := w - runewidth.StringWidth(msg)
		if start > x {
			cx := start
			for _, r := range msg {
				s.ts.SetContent(cx, y, r, nil, base)
				cx += runewidth.RuneWidth(r)
			}
		}
	}
}
