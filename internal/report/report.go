// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders the classification listing written to the primary
// output: a title rule, one "n >> identifier" line per reported identifier, and
// a closing rule with the total.
package report

import (
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Width is the column width banners are centred in.
const Width = 55

// Kind selects the wording of the banners.
type Kind int

const (
	// Matches lists identifiers present in both documents.
	Matches Kind = iota
	// Mismatches lists identifiers missing from the set document.
	Mismatches
)

const layout = `
{{- define "rule" -}}
{{- $pad := int (max 0 (div (sub .Width (len .Title)) 2)) -}}
{{ repeat $pad "=" }}{{ .Title }}{{ repeat $pad "=" }}
{{ end -}}
{{- define "title" }}{{ template "rule" . }}{{ end -}}
{{- define "end" }}{{ template "rule" . }}{{ .Label }} = {{ .Count }}
{{ end -}}
`

var tmpl = template.Must(template.New("report").Funcs(sprig.TxtFuncMap()).Parse(layout))

type banner struct {
	Title string
	Width int
	Label string
	Count int
}

// Report writes one listing. It is not safe for concurrent use.
type Report struct {
	w    io.Writer
	kind Kind
}

// New returns a Report writing to w.
func New(w io.Writer, kind Kind) *Report {
	return &Report{w: w, kind: kind}
}

// Kind returns the listing kind.
func (r *Report) Kind() Kind { return r.kind }

// Title writes the opening rule.
func (r *Report) Title() error {
	title := "MATCHING LIST"
	if r.kind == Mismatches {
		title = "NOT MATCHING LIST"
	}
	return tmpl.ExecuteTemplate(r.w, "title", banner{Title: title, Width: Width})
}

// Item writes one reported identifier with its 1-based position.
func (r *Report) Item(n int, id []byte) error {
	_, err := fmt.Fprintf(r.w, "%d >> %s\n", n, id)
	return err
}

// End writes the closing rule and the total.
func (r *Report) End(count int) error {
	b := banner{Title: "MATCHING LIST END", Width: Width, Label: "Total matches", Count: count}
	if r.kind == Mismatches {
		b.Title = "NOT MATCHING LIST END"
		b.Label = "Total mismatches"
	}
	return tmpl.ExecuteTemplate(r.w, "end", b)
}
