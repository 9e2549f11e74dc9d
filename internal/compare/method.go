// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compare

import (
	"fmt"
	"strings"
)

// Method selects the comparison semantics.
type Method int

const (
	// AA reports identifiers present in both documents.
	AA Method = iota
	// AX reports identifiers of document 1 missing from document 2.
	AX
	// XA reports identifiers of document 2 missing from document 1.
	XA
)

// DefaultMethod is used when no method is selected.
const DefaultMethod = XA

// Methods lists every method in display order.
var Methods = []Method{AA, AX, XA}

// ParseMethod parses "AA", "AX" or "XA". Matching is exact.
func ParseMethod(s string) (Method, error) {
	for _, m := range Methods {
		if s == m.String() {
			return m, nil
		}
	}
	names := make([]string, len(Methods))
	for i, m := range Methods {
		names[i] = m.String()
	}
	return 0, fmt.Errorf("unknown method %q: use one of %s", s, strings.Join(names, ", "))
}

func (m Method) String() string {
	switch m {
	case AA:
		return "AA"
	case AX:
		return "AX"
	case XA:
		return "XA"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Describe returns a one-line explanation of m.
func (m Method) Describe() string {
	switch m {
	case AA:
		return "Elements present in both lists/files"
	case AX:
		return "Elements in the first list/file but not in the second"
	case XA:
		return "Elements in the second list/file but not in the first"
	}
	return ""
}

// Intersection reports whether m lists members rather than non-members.
func (m Method) Intersection() bool { return m == AA }

// SwapsRoles reports whether the documents trade places before the run: the
// set is built from document 2 and document 1 is streamed against it.
func (m Method) SwapsRoles() bool { return m != DefaultMethod }

// reports returns whether an identifier with the given membership is listed.
func (m Method) reports(member bool) bool {
	return m.Intersection() == member
}
