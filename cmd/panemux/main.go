// Copyright © 2025 Panemux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/panemux/main.go
// Summary: Entry point: config, logging, session restore, host loop.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/panemux/panemux/config"
	"github.com/panemux/panemux/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "panemux:", err)
		os.Exit(1)
	}
}

func run() error {
	shellFlag := flag.String("shell", "", "command to run in new panes (overrides config)")
	panesFlag := flag.Int("panes", 0, "number of initial panes (1-4, overrides config)")
	sessionFlag := flag.String("session", "default", "session name for save/restore")
	restoreFlag := flag.Bool("restore", false, "restore the saved session layout")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *shellFlag != "" {
		cfg.Shell = strings.Fields(*shellFlag)
	}
	if *panesFlag > 0 {
		cfg.Panes = *panesFlag
	}
	if cfg.Panes > tui.MaxPanes {
		cfg.Panes = tui.MaxPanes
	}

	if err := config.EnsureDirs(); err != nil {
		return err
	}
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	hardcopyDir := cfg.HardcopyDir
	if hardcopyDir == "" {
		if hardcopyDir, err = config.DefaultHardcopyDir(); err != nil {
			return err
		}
	}

	dbPath, err := config.SessionDBPath()
	if err != nil {
		return err
	}
	store, err := tui.OpenSessionStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	screen, err := tui.NewScreen(tui.Options{
		Shell:             cfg.Shell,
		SessionName:       *sessionFlag,
		Store:             store,
		HardcopyDir:       hardcopyDir,
		HardcopyHighlight: cfg.HardcopyHighlight,
	})
	if err != nil {
		return err
	}
	defer screen.Close()

	if err := openPanes(screen, cfg, store, *sessionFlag, *restoreFlag || cfg.SessionRestore); err != nil {
		return err
	}

	log.Printf("panemux: session %q running", *sessionFlag)
	if err := screen.Run(); err != nil {
		return err
	}

	if cfg.SessionRestore {
		if err := store.Save(*sessionFlag, screen.PaneStates()); err != nil {
			log.Printf("session save on exit: %v", err)
		}
	}
	return nil
}

// openPanes builds the initial layout, from the store when restoring.
func openPanes(screen *tui.Screen, cfg config.Config, store *tui.SessionStore, session string, restore bool) error {
	if restore {
		saved, err := store.Load(session)
		if err != nil {
			return err
		}
		if len(saved) > 0 {
			for _, p := range saved {
				var command []string
				if p.Command != "" {
					command = []string{p.Command}
				}
				if err := screen.AddPane(p.Title, command); err != nil {
					return err
				}
			}
			return nil
		}
	}
	for i := 0; i < cfg.Panes; i++ {
		if err := screen.AddPane("", nil); err != nil {
			return err
		}
	}
	return nil
}

// setupLogging sends the standard logger to a file; the terminal itself is
// owned by tcell.
func setupLogging() (func(), error) {
	path, err := config.LogPath()
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { _ = f.Close() }, nil
}
