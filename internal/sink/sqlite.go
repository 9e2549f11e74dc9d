// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sink

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// SQLite stores identifiers as rows of identifiers(seq, identifier).
// Rows are written in a single transaction committed by Close.
type SQLite struct {
	db   *sql.DB
	tx   *sql.Tx
	stmt *sql.Stmt
	path string
}

// OpenSQLite opens or creates the database at path and empties its
// identifiers table.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, errors.Wrapf(err, "opening database %s", path)
	}
	s := &SQLite{db: db, path: path}
	if err := s.begin(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) begin() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS identifiers (
			seq INTEGER PRIMARY KEY,
			identifier TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_identifiers_identifier ON identifiers(identifier)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return errors.Wrapf(err, "creating schema in %s", s.path)
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	if _, err := tx.Exec(`DELETE FROM identifiers`); err != nil {
		tx.Rollback()
		return errors.Wrapf(err, "clearing %s", s.path)
	}
	stmt, err := tx.Prepare(`INSERT INTO identifiers (seq, identifier) VALUES (?, ?)`)
	if err != nil {
		tx.Rollback()
		return errors.Wrap(err, "preparing insert")
	}
	s.tx, s.stmt = tx, stmt
	return nil
}

func (s *SQLite) Emit(seq int, id []byte) error {
	if _, err := s.stmt.Exec(seq, string(id)); err != nil {
		return errors.Wrapf(err, "inserting identifier %d into %s", seq, s.path)
	}
	return nil
}

// Close commits the rows and closes the database.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	var err error
	if s.stmt != nil {
		s.stmt.Close()
	}
	if s.tx != nil {
		if cerr := s.tx.Commit(); cerr != nil {
			err = errors.Wrapf(cerr, "committing %s", s.path)
		}
	}
	if cerr := s.db.Close(); cerr != nil && err == nil {
		err = errors.Wrapf(cerr, "closing %s", s.path)
	}
	s.db, s.tx, s.stmt = nil, nil, nil
	return err
}
