// Copyright © 2025 Panemux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/session_store.go
// Summary: SQLite-backed persistence for session layout: pane commands
//          and titles survive detach/restart.

package tui

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// PaneState is one persisted pane slot.
type PaneState struct {
	Index   int
	Command string
	Title   string
}

// SessionStore persists sessions in a single SQLite database.
type SessionStore struct {
	db *sql.DB
}

// OpenSessionStore opens (creating if needed) the session database.
func OpenSessionStore(path string) (*SessionStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	schema := `
	CREATE TABLE IF NOT EXISTS panes (
		session TEXT NOT NULL,
		idx     INTEGER NOT NULL,
		command TEXT NOT NULL,
		title   TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (session, idx)
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init session schema: %w", err)
	}
	return &SessionStore{db: db}, nil
}

// Save replaces the stored layout for a session.
func (s *SessionStore) Save(session string, panes []PaneState) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM panes WHERE session = ?`, session); err != nil {
		return fmt.Errorf("clear session %q: %w", session, err)
	}
	stmt, err := tx.Prepare(`INSERT INTO panes (session, idx, command, title) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for _, p := range panes {
		if _, err := stmt.Exec(session, p.Index, p.Command, p.Title); err != nil {
			return fmt.Errorf("store pane %d: %w", p.Index, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Load returns the stored layout for a session, oldest slot first.
// A missing session yields an empty slice, not an error.
func (s *SessionStore) Load(session string) ([]PaneState, error) {
	rows, err := s.db.Query(
		`SELECT idx, command, title FROM panes WHERE session = ? ORDER BY idx`, session)
	if err != nil {
		return nil, fmt.Errorf("load session %q: %w", session, err)
	}
	defer rows.Close()

	var panes []PaneState
	for rows.Next() {
		var p PaneState
		if err := rows.Scan(&p.Index, &p.Command, &p.Title); err != nil {
			return nil, fmt.Errorf("scan pane: %w", err)
		}
		panes = append(panes, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session %q: %w", session, err)
	}
	return panes, nil
}

// Delete removes a stored session.
func (s *SessionStore) Delete(session string) error {
	if _, err := s.db.Exec(`DELETE FROM panes WHERE session = ?`, session); err != nil {
		return fmt.Errorf("delete session %q: %w", session, err)
	}
	return nil
}

// Close releases the database handle.
func (s *SessionStore) Close() error {
	return s.db.Close()
}
