// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sink writes the identifiers extracted from one document to a file.
// Plain paths receive "<n> >> <identifier>" lines; SQLite paths receive rows
// in the identifiers table.
package sink

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ErrSameOutput reports two documents echoing to the same path.
var ErrSameOutput = errors.New("both documents cannot be echoed to the same output file")

// Sink receives identifiers numbered from 1. Close flushes buffered output;
// nothing is guaranteed on disk before it returns.
type Sink interface {
	Emit(seq int, id []byte) error
	Close() error
}

// Stdout is the path that echoes to standard output.
const Stdout = "-"

// sqliteExts select the SQLite backend.
var sqliteExts = []string{".db", ".sqlite", ".sqlite3"}

// IsSQLite reports whether path selects the SQLite backend.
func IsSQLite(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range sqliteExts {
		if ext == e {
			return true
		}
	}
	return false
}

// Open creates or truncates the sink at path. The Stdout path writes to
// stdout.
func Open(path string, stdout io.Writer) (Sink, error) {
	if IsSQLite(path) {
		s, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	t, err := OpenText(path, stdout)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ValidatePaths rejects two non-empty paths naming the same file. It runs
// before any sink is opened so a conflict leaves no file behind.
func ValidatePaths(a, b string) error {
	if a == "" || b == "" {
		return nil
	}
	ca, cb := canonical(a), canonical(b)
	if ca == cb {
		return errors.Wrapf(ErrSameOutput, "%s", a)
	}
	return nil
}

func canonical(p string) string {
	if p == Stdout {
		return p
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	// The file may not exist yet; its directory usually does.
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		return filepath.Join(dir, filepath.Base(abs))
	}
	return abs
}

// OpenPair validates and opens the sinks for both documents. Empty paths get
// a nil sink. On failure nothing stays open.
func OpenPair(a, b string, stdout io.Writer) ([2]Sink, error) {
	var out [2]Sink
	if err := ValidatePaths(a, b); err != nil {
		return out, err
	}
	for i, p := range []string{a, b} {
		if p == "" {
			continue
		}
		s, err := Open(p, stdout)
		if err != nil {
			CloseAll(out)
			return [2]Sink{}, err
		}
		out[i] = s
	}
	return out, nil
}

// CloseAll closes every non-nil sink and returns the first error.
func CloseAll(sinks [2]Sink) error {
	var first error
	for _, s := range sinks {
		if s == nil {
			continue
		}
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
