// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docread loads input documents into memory. It distinguishes the
// stage a read failed at (open, stat, read) so callers can report it.
package docread

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/mblucasm/lcmp/internal/fatal"
)

// Stdin is the path that reads standard input.
const Stdin = "-"

// Read returns the whole content of path. Failures are *fatal.Error values
// carrying the stage that failed.
func Read(path string) ([]byte, error) {
	if path == Stdin {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fatal.New(fatal.StageRead, "stdin", errors.Wrap(err, "reading standard input"))
		}
		return data, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fatal.New(fatal.StageOpen, path, errors.WithStack(err))
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fatal.New(fatal.StageStat, path, errors.WithStack(err))
	}
	if info.IsDir() {
		return nil, fatal.New(fatal.StageRead, path, errors.New("is a directory"))
	}
	if !info.Mode().IsRegular() {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fatal.New(fatal.StageRead, path, errors.WithStack(err))
		}
		return data, nil
	}

	data := make([]byte, info.Size())
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, fatal.New(fatal.StageRead, path, errors.Wrapf(err, "read %d bytes", info.Size()))
	}
	return data, nil
}

// ReadAll reads and concatenates paths in order. A failure names the path
// that failed.
func ReadAll(paths []string) ([]byte, error) {
	if len(paths) == 1 {
		return Read(paths[0])
	}
	var b bytes.Buffer
	for _, p := range paths {
		data, err := Read(p)
		if err != nil {
			return nil, err
		}
		b.Write(data)
		if len(data) > 0 && data[len(data)-1] != '\n' {
			b.WriteByte('\n')
		}
	}
	return b.Bytes(), nil
}
