// Copyright © 2025 Panemux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/pty_app.go
// Summary: Hosts one child shell on a pseudo-terminal and feeds its
//          output through the escape-sequence engine.
// Notes: The engine is single-owner; every touch goes through mu.

package tui

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strconv"
	"sync"

	"github.com/creack/pty"

	"github.com/panemux/panemux/vte"
)

// PTYApp drives a child process through a UNIX pseudo-terminal and owns
// the parser/screen pair decoding its output.
type PTYApp struct {
	command []string

	mu     sync.Mutex
	title  string
	cmd    *exec.Cmd
	ptmx   *os.File
	term   *vte.Screen
	parser *vte.Parser

	refresh  chan<- bool
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewPTYApp prepares a pane app running command (argv form). An empty
// command falls back to $SHELL, then /bin/sh.
func NewPTYApp(title string, command []string) *PTYApp {
	if len(command) == 0 {
		shell := os.Getenv("SHELL")
		if shell == "" {
			shell = "/bin/sh"
		}
		command = []string{shell}
	}
	return &PTYApp{
		command: command,
		title:   title,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// SetRefreshNotifier registers the channel poked whenever new output
// changed the grid.
func (a *PTYApp) SetRefreshNotifier(ch chan<- bool) {
	a.refresh = ch
}

// Title returns the pane title, tracking OSC title changes.
func (a *PTYApp) Title() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.title
}

// Command returns the argv the app was configured with.
func (a *PTYApp) Command() []string {
	return a.command
}

// Run starts the child and the read loop. cols/rows is the initial
// interior size of the hosting pane.
func (a *PTYApp) Run(cols, rows int) error {
	if cols < 2 {
		cols = 2
	}
	if rows < 2 {
		rows = 2
	}

	a.mu.Lock()
	a.term = vte.NewScreen(cols, rows)
	a.parser = vte.NewParser(a.term)
	a.term.TitleChanged = func(title string) {
		// Called with mu held by the read loop.
		a.title = title
	}
	a.term.Reply = func(b []byte) {
		if a.ptmx != nil {
			if _, err := a.ptmx.Write(b); err != nil {
				log.Printf("pty: reply write failed: %v", err)
			}
		}
	}
	a.mu.Unlock()

	cmd := exec.Command(a.command[0], a.command[1:]...)
	cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"COLUMNS="+strconv.Itoa(cols),
		"LINES="+strconv.Itoa(rows),
	)
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Cols: uint16(cols),
		Rows: uint16(rows),
	})
	if err != nil {
		return fmt.Errorf("start %s: %w", a.command[0], err)
	}

	a.mu.Lock()
	a.cmd = cmd
	a.ptmx = ptmx
	a.mu.Unlock()

	go a.readLoop(ptmx)
	return nil
}

func (a *PTYApp) readLoop(ptmx *os.File) {
	defer close(a.done)
	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			a.mu.Lock()
			a.parser.Parse(buf[:n])
			a.mu.Unlock()
			a.notify()
		}
		if err != nil {
			if err != io.EOF {
				log.Printf("pty: read ended: %v", err)
			}
			return
		}
		select {
		case <-a.stop:
			return
		default:
		}
	}
}

func (a *PTYApp) notify() {
	if a.refresh == nil {
		return
	}
	select {
	case a.refresh <- true:
	default:
	}
}

// Resize propagates a new interior size to both the engine and the child.
func (a *PTYApp) Resize(cols, rows int) {
	if cols < 2 || rows < 2 {
		return
	}
	a.mu.Lock()
	if a.term != nil {
		a.term.Resize(cols, rows)
	}
	ptmx := a.ptmx
	a.mu.Unlock()

	if ptmx != nil {
		if err := pty.Setsize(ptmx, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)}); err != nil {
			log.Printf("pty: setsize failed: %v", err)
		}
	}
}

// Send writes input bytes to the child's terminal.
func (a *PTYApp) Send(b []byte) {
	a.mu.Lock()
	ptmx := a.ptmx
	a.mu.Unlock()
	if ptmx == nil {
		return
	}
	if _, err := ptmx.Write(b); err != nil {
		log.Printf("pty: write failed: %v", err)
	}
}

// Paste sends text, honoring the application's bracketed-paste mode.
func (a *PTYApp) Paste(text string) {
	if a.Mode(vte.ModeBracketedPaste) {
		a.Send([]byte("\x1b[200~"))
		a.Send([]byte(text))
		a.Send([]byte("\x1b[201~"))
		return
	}
	a.Send([]byte(text))
}

// Mode reads an engine mode flag.
func (a *PTYApp) Mode(m vte.Mode) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.term == nil {
		return false
	}
	return a.term.Mode(m)
}

// Snapshot runs fn with the engine locked. The callback must not retain
// the screen past its return.
func (a *PTYApp) Snapshot(fn func(*vte.Screen)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.term != nil {
		fn(a.term)
	}
}

// Text returns the visible grid as newline-joined rows with trailing
// blanks trimmed. Used by the hardcopy path.
func (a *PTYApp) Text() string {
	var out []byte
	a.Snapshot(func(s *vte.Screen) {
		w, h := s.Size()
		for row := 0; row < h; row++ {
			line := make([]byte, 0, w)
			for col := 0; col < w; col++ {
				line = append(line, []byte(string(s.Cell(row, col).Rune))...)
			}
			for len(line) > 0 && line[len(line)-1] == ' ' {
				line = line[:len(line)-1]
			}
			out = append(out, line...)
			out = append(out, '\n')
		}
	})
	for len(out) > 0 && out[len(out)-1] == '\n' {
		out = out[:len(out)-1]
	}
	return string(out)
}

// Stop terminates the child and the read loop.
func (a *PTYApp) Stop() {
	a.stopOnce.Do(func() {
		close(a.stop)
		a.mu.Lock()
		cmd, ptmx := a.cmd, a.ptmx
		a.mu.Unlock()
		if cmd != nil && cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
		if ptmx != nil {
			_ = ptmx.Close()
		}
		if cmd != nil {
			go func() { _ = cmd.Wait() }()
		}
	})
}

// Done reports read-loop termination, which follows child exit.
func (a *PTYApp) Done() <-chan struct{} {
	return a.done
}
