// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Text writes "<n> >> <identifier>\n" lines.
type Text struct {
	w     *bufio.Writer
	c     io.Closer
	path  string
	count int
	// lineFlush flushes after every line so the output interleaves with
	// other writers sharing the destination.
	lineFlush bool
}

// OpenText creates or truncates the text sink at path. "-" writes to stdout
// line by line, so echo lines keep their place among report lines written
// to the same stream.
func OpenText(path string, stdout io.Writer) (*Text, error) {
	if path == Stdout {
		t := NewText(stdout)
		t.lineFlush = true
		return t, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "creating output %s", path)
	}
	t := NewText(f)
	t.c = f
	t.path = path
	return t, nil
}

// NewText returns a text sink on w. Close flushes but does not close w.
func NewText(w io.Writer) *Text {
	return &Text{w: bufio.NewWriter(w), path: "-"}
}

func (t *Text) Emit(seq int, id []byte) error {
	if _, err := fmt.Fprintf(t.w, "%d >> %s\n", seq, id); err != nil {
		return errors.Wrapf(err, "writing %s", t.path)
	}
	t.count++
	if t.lineFlush {
		if err := t.w.Flush(); err != nil {
			return errors.Wrapf(err, "writing %s", t.path)
		}
	}
	return nil
}

// Count returns the number of lines written.
func (t *Text) Count() int { return t.count }

func (t *Text) Close() error {
	err := t.w.Flush()
	if err != nil {
		err = errors.Wrapf(err, "flushing %s", t.path)
	}
	if t.c != nil {
		if cerr := t.c.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "closing %s", t.path)
		}
		t.c = nil
	}
	return err
}
