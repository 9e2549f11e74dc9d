// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/mblucasm/lcmp/internal/compare"
	"github.com/mblucasm/lcmp/internal/docread"
	"github.com/mblucasm/lcmp/pkg/types"
)

// export is one Instagram data folder given on the command line.
type export struct {
	docread.Export
	dir   string
	named bool // folder name parsed as instagram-USER-DATE-ID
	paths docread.Paths
}

func (e export) user() string {
	if e.named {
		return e.Username
	}
	return filepath.Base(e.dir)
}

// selection is the comparison a set of export folders describes. One
// folder compares its followers against its following; two folders compare
// the same target list, older export first.
type selection struct {
	exports  []export
	target   docread.Target
	warnings []string
}

func selectExports(folders []string, cfg types.InstagramConfig) (selection, error) {
	if len(folders) > 2 {
		return selection{}, &usageError{
			msg:    "You only can specify 2 Instagram folders",
			detail: fmt.Sprintf("Tried to add '%s' when %s were already specified", folders[2], quoteList(folders[:2])),
		}
	}
	target, err := docread.ParseTarget(cfg.Target)
	if err != nil {
		return selection{}, &usageError{msg: err.Error()}
	}

	sel := selection{target: target}
	for _, dir := range folders {
		if err := docread.CheckTree(dir, cfg); err != nil {
			return selection{}, fmt.Errorf("invalid Instagram folder %s: %w", dir, err)
		}
		e := export{dir: dir, paths: docread.InstagramPaths(dir, cfg)}
		if info, err := docread.ParseExportName(dir); err == nil {
			e.Export, e.named = info, true
		} else {
			sel.warnings = append(sel.warnings, err.Error())
		}
		sel.exports = append(sel.exports, e)
	}
	if len(sel.exports) == 2 {
		sel.order()
	}
	return sel, nil
}

// order puts the older export first.
func (s *selection) order() {
	a, b := s.exports[0], s.exports[1]
	if !a.named || !b.named {
		s.warnings = append(s.warnings, "cannot order the exports by date; the first folder is treated as the older one")
		return
	}
	if b.Date.Before(a.Date) {
		s.exports[0], s.exports[1] = b, a
		a, b = b, a
	}
	sameUser := a.Username == b.Username
	sameDate := a.Date.Equal(b.Date)
	switch {
	case sameUser && sameDate:
		s.warnings = append(s.warnings, "both exports have the same date; the first folder is treated as the older one")
	case !sameUser && !sameDate:
		s.warnings = append(s.warnings, "comparing two different accounts on different dates")
	}
}

// inputs returns the two documents of the selection.
func (s selection) inputs() []input {
	if len(s.exports) == 1 {
		p := s.exports[0].paths
		return []input{
			{name: p.Followers[0], parts: p.Followers},
			{name: p.Following, parts: []string{p.Following}},
		}
	}
	ins := make([]input, len(s.exports))
	for i, e := range s.exports {
		parts := e.paths.For(s.target)
		ins[i] = input{name: parts[0], parts: parts}
	}
	return ins
}

// announce prints warnings, the exports and what the listing means.
func (s selection) announce(w io.Writer, m compare.Method) {
	for _, warning := range s.warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
	for _, e := range s.exports {
		if e.named {
			fmt.Fprintf(w, "Instagram export of %s from %s\n", e.Username, e.Date.Format(time.DateOnly))
		}
	}
	fmt.Fprintf(w, "Listing: %s\n", s.phrase(m))
}

// phrase describes what method m lists for the selection.
func (s selection) phrase(m compare.Method) string {
	u1 := s.exports[0].user()
	if len(s.exports) == 1 {
		switch m {
		case compare.XA:
			return fmt.Sprintf("People %s is a fan of", u1)
		case compare.AX:
			return possessive(u1) + " fans"
		}
		return fmt.Sprintf("People %s follows and follow %s back", u1, u1)
	}

	u2 := s.exports[1].user()
	same := u1 == u2
	if s.target == docread.Following {
		switch {
		case same && m == compare.XA:
			return fmt.Sprintf("People %s started following", u1)
		case same && m == compare.AX:
			return fmt.Sprintf("People %s stopped following", u1)
		case same:
			return fmt.Sprintf("People %s kept following", u1)
		case m == compare.XA:
			return fmt.Sprintf("People %s follows but %s doesn't", u2, u1)
		case m == compare.AX:
			return fmt.Sprintf("People %s follows but %s doesn't", u1, u2)
		}
		return fmt.Sprintf("People both %s and %s follow", u1, u2)
	}
	switch {
	case same && m == compare.XA:
		return fmt.Sprintf("Followers %s gained", u1)
	case same && m == compare.AX:
		return fmt.Sprintf("Followers %s lost", u1)
	case same:
		return fmt.Sprintf("Followers %s kept", u1)
	case m == compare.XA:
		return fmt.Sprintf("People who follow %s but not %s", u2, u1)
	case m == compare.AX:
		return fmt.Sprintf("People who follow %s but not %s", u1, u2)
	}
	return fmt.Sprintf("Followers %s and %s share", u1, u2)
}

func possessive(name string) string {
	if strings.HasSuffix(name, "s") {
		return name + "'"
	}
	return name + "'s"
}
