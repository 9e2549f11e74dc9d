// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fatal defines the unrecoverable failures of a comparison run. Every
// failure names the document and the stage that failed so the operator can fix
// the input and run again. Nothing below the command layer exits the process;
// failures travel up as *Error values.
package fatal

import (
	"errors"
	"fmt"
)

// Stage names the step of a run that failed.
type Stage string

const (
	StageOpen     Stage = "open"
	StageStat     Stage = "stat"
	StageRead     Stage = "read"
	StageAllocate Stage = "allocate"
	StageLanguage Stage = "language"
	StageOutput   Stage = "output"
)

// Error is a fatal failure tied to one document.
type Error struct {
	// Doc is the 1-based position of the document on the command line, or 0
	// when not known yet.
	Doc   int
	Name  string
	Stage Stage
	Err   error
}

// New returns a fatal error for the named document.
func New(stage Stage, name string, err error) *Error {
	return &Error{Name: name, Stage: stage, Err: err}
}

func (e *Error) Error() string {
	what := "file"
	if e.Doc > 0 {
		what = fmt.Sprintf("file %d", e.Doc)
	}
	switch e.Stage {
	case StageOpen:
		return fmt.Sprintf("could not open %s '%s': %v", what, e.Name, e.Err)
	case StageStat:
		return fmt.Sprintf("could not determine size of %s '%s': %v", what, e.Name, e.Err)
	case StageRead:
		return fmt.Sprintf("could not read %s '%s': %v", what, e.Name, e.Err)
	case StageAllocate:
		return fmt.Sprintf("ran out of memory storing the list extracted from %s '%s': %v", what, e.Name, e.Err)
	case StageLanguage:
		return fmt.Sprintf("could not parse <div> %s '%s': %v", what, e.Name, e.Err)
	case StageOutput:
		return fmt.Sprintf("could not write output for %s '%s': %v", what, e.Name, e.Err)
	}
	return fmt.Sprintf("%s %s '%s': %v", e.Stage, what, e.Name, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Cause returns the underlying error for github.com/pkg/errors.Cause.
func (e *Error) Cause() error { return e.Err }

// Hint returns operator guidance for the stage, or "".
func (e *Error) Hint() string {
	switch e.Stage {
	case StageAllocate:
		return "This is a terminal error. Raise max_buffer_bytes or split the input."
	case StageLanguage:
		return "Seems like your Instagram's language is NOT English.\n" +
			"Please try switching it to English in settings and try again or try other file formats.\n\n" +
			"[NOTE]: It could also be that no followers/following were present in that <div> file."
	}
	return ""
}

// WithDoc sets the document position on err when it carries an *Error
// without one. Other errors are returned unchanged.
func WithDoc(err error, doc int) error {
	var fe *Error
	if errors.As(err, &fe) && fe.Doc == 0 {
		fe.Doc = doc
	}
	return err
}

// StageOf returns the stage of the first *Error in err's chain.
func StageOf(err error) (Stage, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Stage, true
	}
	return "", false
}
