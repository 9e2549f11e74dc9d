// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package slice provides an allocation-free view over a byte buffer with the
// split, search and trim primitives the extractors are built on.
//
// A Slice never owns memory. It is valid for as long as the buffer it views.
// Splitting narrows the receiver in place and returns the peeled prefix; no
// bytes are copied.
package slice

// Slice is a view into a byte buffer.
type Slice []byte

// Of returns a Slice viewing s. It copies, since a string cannot be viewed
// mutably; use it only for fixed needles.
func Of(s string) Slice { return Slice(s) }

// Len returns the number of viewed bytes.
func (s Slice) Len() int { return len(s) }

// Empty reports whether the view has zero length.
func (s Slice) Empty() bool { return len(s) == 0 }

// String copies the viewed bytes into a string.
func (s Slice) String() string { return string(s) }

// SplitByte returns the prefix of s before the first delim and narrows s to the
// remainder. When delim is absent the whole view is returned and s becomes
// empty. With skip set and delim found, delim is dropped from the remainder.
func (s *Slice) SplitByte(delim byte, skip bool) Slice {
	v := *s
	i := 0
	for i < len(v) && v[i] != delim {
		i++
	}
	prefix := v[:i:i]
	rest := v[i:]
	if skip && len(rest) != 0 {
		rest = rest[1:]
	}
	*s = rest
	return prefix
}

// SplitSub is SplitByte with a multi-byte needle. With skip set, the needle is
// dropped only when the remainder is at least as long as it.
func (s *Slice) SplitSub(needle Slice, skip bool) Slice {
	v := *s
	idx, ok := v.Find(needle)
	if !ok {
		idx = len(v)
	}
	prefix := v[:idx:idx]
	rest := v[idx:]
	if skip && len(rest) >= len(needle) {
		rest = rest[len(needle):]
	}
	*s = rest
	return prefix
}

// Find returns the index of the first occurrence of needle in s. An empty
// needle matches at 0.
//
// The search is naive: a first-byte pre-filter followed by a full compare.
// That is O(n·m) in the worst case, which is fine for identifier lists.
func (s Slice) Find(needle Slice) (int, bool) {
	if len(needle) == 0 {
		return 0, true
	}
	if len(needle) > len(s) {
		return 0, false
	}
	first := needle[0]
	for i := 0; i <= len(s)-len(needle); i++ {
		if s[i] != first {
			continue
		}
		if s[i : i+len(needle)].Equal(needle) {
			return i, true
		}
	}
	return 0, false
}

// Contains reports whether needle occurs in s.
func (s Slice) Contains(needle Slice) bool {
	_, ok := s.Find(needle)
	return ok
}

// HasPrefix reports whether s starts with prefix.
func (s Slice) HasPrefix(prefix Slice) bool {
	return len(s) >= len(prefix) && s[:len(prefix)].Equal(prefix)
}

// Equal reports byte-exact equality.
func (s Slice) Equal(other Slice) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// TrimLeft drops leading whitespace.
func (s Slice) TrimLeft() Slice {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

// TrimRight drops trailing whitespace.
func (s Slice) TrimRight() Slice {
	n := len(s)
	for n > 0 && isSpace(s[n-1]) {
		n--
	}
	return s[:n:n]
}

// Trim drops whitespace from both ends. An all-whitespace view trims to a
// zero-length view.
func (s Slice) Trim() Slice {
	return s.TrimRight().TrimLeft()
}

// isSpace matches the C locale whitespace class.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
