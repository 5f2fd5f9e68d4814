// Copyright © 2025 Panemux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/hardcopy.go
// Summary: Writes a pane's visible text to disk, optionally re-colored
//          with syntax highlighting so captures stay readable in less -R.

package tui

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"
)

const hardcopyStyle = "native"

// Hardcopy writes text to <dir>/pane-<n>-<stamp>.txt and returns the path.
// With highlight set, the language is detected and the text re-emitted
// with ANSI colors through chroma's terminal formatter.
func Hardcopy(dir string, paneIndex int, text string, highlight bool) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create hardcopy dir: %w", err)
	}
	name := fmt.Sprintf("pane-%d-%s.txt", paneIndex, time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)

	out := []byte(text)
	if highlight {
		if colored, err := highlightText(text); err == nil {
			out = colored
		}
		// Highlighting failures fall back to the plain capture.
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return "", fmt.Errorf("write hardcopy: %w", err)
	}
	return path, nil
}

// highlightText detects the language of a capture and renders it with
// ANSI escape codes.
func highlightText(text string) ([]byte, error) {
	lexer := lexerFor(text)
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return nil, fmt.Errorf("tokenise capture: %w", err)
	}
	formatter := formatters.Get("terminal256")
	style := styles.Get(hardcopyStyle)
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return nil, fmt.Errorf("format capture: %w", err)
	}
	return buf.Bytes(), nil
}

func lexerFor(text string) chroma.Lexer {
	var lexer chroma.Lexer
	if lang, _ := enry.GetLanguageByClassifier([]byte(text), nil); lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		lexer = lexers.Analyse(text)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}
