// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract recovers identifiers from raw documents. There is one
// extractor per format tag; each peels records off the document and emits the
// trimmed, non-empty identifier found in each.
package extract

import (
	"errors"
	"fmt"

	"github.com/mblucasm/lcmp/internal/buf"
	"github.com/mblucasm/lcmp/internal/format"
	"github.com/mblucasm/lcmp/internal/slice"
)

// Markers the extractors anchor on.
const (
	OutputMarker  = ">>"
	HTMLAnchor    = ".com/"
	DivAnchor     = `alt="`
	EnglishMarker = "'s profile picture"
)

// ErrNotEnglish reports a div fragment without any English profile-picture
// caption. The account language is probably not English, or the fragment holds
// no followers at all.
var ErrNotEnglish = errors.New("div fragment has no English profile picture captions")

// EmitFunc receives one identifier. The slice aliases the document and must
// not be retained past the call. A non-nil error stops extraction.
type EmitFunc func(id []byte) error

// Extractor recovers identifiers from one document format. Implementations
// hold no state between calls, so the same document can be extracted again.
type Extractor interface {
	Format() format.Tag
	// Validate checks preconditions on the whole document before any record is
	// emitted.
	Validate(doc []byte) error
	// Extract validates doc and then emits each identifier in document order.
	Extract(doc []byte, emit EmitFunc) error
}

var (
	plainExtractor = plain{marker: slice.Of(OutputMarker)}
	htmlExtractor  = anchored{
		tag:   format.HTML,
		open:  slice.Of(HTMLAnchor),
		close: '"',
		path:  true,
	}
	divExtractor = anchored{
		tag:   format.Div,
		open:  slice.Of(DivAnchor),
		close: '\'',
		guard: slice.Of(EnglishMarker),
	}
)

// For returns the extractor for tag.
func For(tag format.Tag) Extractor {
	switch tag {
	case format.HTML:
		return htmlExtractor
	case format.Div:
		return divExtractor
	}
	return plainExtractor
}

// Detect sniffs the format of doc and returns its extractor.
func Detect(doc []byte) Extractor {
	return For(format.Detect(doc))
}

// plain extracts one identifier per line. Lines may carry the "n >> id" shape
// this tool writes, in which case the part after the marker is the identifier.
type plain struct {
	marker slice.Slice
}

func (plain) Format() format.Tag { return format.None }

func (plain) Validate([]byte) error { return nil }

func (p plain) Extract(doc []byte, emit EmitFunc) error {
	s := slice.Slice(doc)
	for s.Len() > 0 {
		line := s.SplitByte('\n', true)
		head := line.SplitSub(p.marker, true)
		if line.Empty() {
			line = head
		}
		id := line.Trim()
		if id.Empty() {
			continue
		}
		if err := emit(id); err != nil {
			return err
		}
	}
	return nil
}

// anchored extracts the text between each open anchor and the next close byte.
type anchored struct {
	tag   format.Tag
	open  slice.Slice
	close byte
	guard slice.Slice // must occur somewhere in the document when set
	path  bool        // candidate is a URL path; keep its last segment
}

func (a anchored) Format() format.Tag { return a.tag }

func (a anchored) Validate(doc []byte) error {
	if a.guard.Empty() {
		return nil
	}
	if !slice.Slice(doc).Contains(a.guard) {
		return ErrNotEnglish
	}
	return nil
}

func (a anchored) Extract(doc []byte, emit EmitFunc) error {
	if err := a.Validate(doc); err != nil {
		return err
	}
	s := slice.Slice(doc)
	for s.Len() > 0 {
		s.SplitSub(a.open, true)
		id := s.SplitByte(a.close, true).Trim()
		if a.path {
			id = lastSegment(id)
		}
		if id.Empty() {
			continue
		}
		if err := emit(id); err != nil {
			return err
		}
	}
	return nil
}

// lastSegment drops trailing slashes and any leading path, so both
// "alice/" and "_u/alice" become "alice".
func lastSegment(p slice.Slice) slice.Slice {
	for p.Len() > 0 && p[p.Len()-1] == '/' {
		p = p[:p.Len()-1]
	}
	for i := p.Len() - 1; i >= 0; i-- {
		if p[i] == '/' {
			return p[i+1:].Trim()
		}
	}
	return p.Trim()
}

// EchoFunc observes each stored identifier with its 1-based sequence number.
type EchoFunc func(seq int, id []byte) error

// Collect extracts doc into b, one record per identifier, and calls echo (when
// non-nil) for each stored record. It returns the number of identifiers stored.
func Collect(ex Extractor, doc []byte, b *buf.Buffer, echo EchoFunc) (int, error) {
	n := 0
	err := ex.Extract(doc, func(id []byte) error {
		rec, err := b.Append(id)
		if err != nil {
			return fmt.Errorf("storing identifier %d: %w", n+1, err)
		}
		n++
		if echo == nil {
			return nil
		}
		return echo(n, rec)
	})
	return n, err
}

// Strings extracts doc into a fresh slice of identifiers.
func Strings(ex Extractor, doc []byte) ([]string, error) {
	var ids []string
	err := ex.Extract(doc, func(id []byte) error {
		ids = append(ids, string(id))
		return nil
	})
	return ids, err
}
