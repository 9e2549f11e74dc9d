// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package buf implements a growable byte accumulator that stores a flattened
// list of identifiers as NUL-separated records.
package buf

import (
	"errors"
	"fmt"
	"iter"
)

// Chunk is the minimum growth step in bytes.
const Chunk = 1024

// ErrAlloc reports that the buffer could not grow to hold a write.
var ErrAlloc = errors.New("buffer allocation failed")

// Buffer accumulates bytes. The zero value is an empty buffer with no limit.
// After any successful write the content is followed by a NUL byte, so
// Cap() >= Len()+1 whenever storage is held.
type Buffer struct {
	// Limit caps the storage in bytes; growth past it fails with ErrAlloc.
	// Zero means no limit.
	Limit int

	data []byte // len(data) == cap; content is data[:n]
	n    int
}

// New returns an empty Buffer whose storage never exceeds limit bytes.
func New(limit int) *Buffer {
	return &Buffer{Limit: limit}
}

// Len returns the content length, not counting the trailing NUL.
func (b *Buffer) Len() int { return b.n }

// Cap returns the size of the held storage.
func (b *Buffer) Cap() int { return len(b.data) }

// Bytes returns the content without the trailing NUL. The result aliases the
// buffer and is invalidated by the next write.
func (b *Buffer) Bytes() []byte { return b.data[:b.n:b.n] }

// grow makes room for need more bytes past the content plus a terminator.
func (b *Buffer) grow(need int) error {
	if len(b.data) >= b.n+need+1 {
		return nil
	}
	newCap := len(b.data) + max(Chunk, need+1)
	if b.Limit > 0 && newCap > b.Limit {
		if b.n+need+1 > b.Limit {
			return fmt.Errorf("%w: need %d bytes, limit %d", ErrAlloc, b.n+need+1, b.Limit)
		}
		newCap = b.Limit
	}
	data := make([]byte, newCap)
	copy(data, b.data[:b.n])
	b.data = data
	return nil
}

// Replace overwrites the content with p.
func (b *Buffer) Replace(p []byte) error {
	n := b.n
	b.n = 0
	if err := b.grow(len(p)); err != nil {
		b.n = n
		return err
	}
	copy(b.data, p)
	b.n = len(p)
	b.data[b.n] = 0
	return nil
}

// Append adds p as a new record: a NUL separator is written first when the
// buffer already holds content. It returns a view of the written record.
func (b *Buffer) Append(p []byte) ([]byte, error) {
	sep := 0
	if b.n != 0 {
		sep = 1
	}
	if err := b.grow(sep + len(p)); err != nil {
		return nil, err
	}
	start := b.n + sep
	if sep == 1 {
		b.data[b.n] = 0
	}
	copy(b.data[start:], p)
	b.n = start + len(p)
	b.data[b.n] = 0
	return b.data[start:b.n:b.n], nil
}

// Release drops the storage and resets the buffer. It is safe to call more
// than once.
func (b *Buffer) Release() {
	b.data = nil
	b.n = 0
}

// All yields each NUL-separated record in write order. An empty buffer has no
// records.
func (b *Buffer) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		content := b.data[:b.n]
		for len(content) > 0 {
			i := 0
			for i < len(content) && content[i] != 0 {
				i++
			}
			if !yield(content[:i:i]) {
				return
			}
			if i == len(content) {
				return
			}
			content = content[i+1:]
		}
	}
}

// Count returns the number of records.
func (b *Buffer) Count() int {
	n := 0
	for range b.All() {
		n++
	}
	return n
}
