// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format classifies a raw document by its leading bytes.
package format

import "github.com/mblucasm/lcmp/internal/slice"

// Tag identifies the markup style of a document.
type Tag int

const (
	// None is a plain line-delimited list.
	None Tag = iota
	// HTML is an Instagram data-export HTML page.
	HTML
	// Div is a <div> fragment copied from the Instagram web UI.
	Div
)

// Document prefixes that select a format.
const (
	PrefixHTML = "<html>"
	PrefixDiv  = "<div"
)

var (
	htmlMarker = slice.Of(PrefixHTML)
	divMarker  = slice.Of(PrefixDiv)
)

// Detect returns the format of doc from a prefix test. It always returns a
// tag; anything that is neither HTML nor a div fragment is a plain list.
func Detect(doc []byte) Tag {
	s := slice.Slice(doc)
	switch {
	case s.HasPrefix(htmlMarker):
		return HTML
	case s.HasPrefix(divMarker):
		return Div
	}
	return None
}

// Prefix returns the literal that selects t, or "" for None.
func (t Tag) Prefix() string {
	switch t {
	case HTML:
		return PrefixHTML
	case Div:
		return PrefixDiv
	}
	return ""
}

func (t Tag) String() string {
	switch t {
	case None:
		return "text"
	case HTML:
		return "html"
	case Div:
		return "div"
	}
	return "unknown"
}
