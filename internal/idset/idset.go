// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package idset holds the deduplicated identifier set one document is compared
// against.
package idset

import (
	"iter"

	"github.com/mblucasm/lcmp/internal/buf"
)

// Set is a membership structure over identifiers. Only presence matters;
// identifiers are compared byte for byte.
type Set map[string]struct{}

// Build returns the set of records held in b. Duplicate records collapse.
func Build(b *buf.Buffer) Set {
	return FromSeq(b.All())
}

// FromSeq builds a set from a sequence of identifiers.
func FromSeq(ids iter.Seq[[]byte]) Set {
	s := make(Set)
	for id := range ids {
		s[string(id)] = struct{}{}
	}
	return s
}

// Of builds a set from string identifiers.
func Of(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set.
func (s Set) Has(id []byte) bool {
	_, ok := s[string(id)]
	return ok
}

// Len returns the number of distinct identifiers.
func (s Set) Len() int { return len(s) }

// Clear empties the set.
func (s Set) Clear() {
	clear(s)
}
