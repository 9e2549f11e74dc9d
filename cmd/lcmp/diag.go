// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mblucasm/lcmp/internal/fatal"
)

const (
	red   = "\033[0;31m"
	reset = "\033[0m"
)

// usageError is a command-line mistake. Detail is printed on the lines
// following the message.
type usageError struct {
	msg    string
	detail string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) *usageError {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// printDiagnostic writes err as "ERROR: lcmp: <message>" followed by any
// hint and a pointer to the help text.
func printDiagnostic(w io.Writer, err error, color bool) {
	prefix := "ERROR: "
	if color {
		prefix = red + prefix + reset
	}
	fmt.Fprintf(w, "%slcmp: %v\n", prefix, err)

	var ue *usageError
	if errors.As(err, &ue) && ue.detail != "" {
		fmt.Fprintln(w, ue.detail)
	}
	var fe *fatal.Error
	if errors.As(err, &fe) {
		if hint := fe.Hint(); hint != "" {
			fmt.Fprintln(w, hint)
		}
	}
	fmt.Fprintln(w, "\nSee lcmp --help")
}

// useColor reports whether f looks like a terminal that accepts colors.
func useColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// quoteList renders paths as ['a', 'b'].
func quoteList(paths []string) string {
	q := make([]string, len(paths))
	for i, p := range paths {
		q[i] = "'" + p + "'"
	}
	return "[" + strings.Join(q, ", ") + "]"
}
