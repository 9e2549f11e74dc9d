// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compare classifies the identifiers of one document against the
// identifier set built from another.
//
// A run has two roles. The set document is fully extracted into a buf.Buffer
// and turned into an idset.Set. The streamed document is then extracted record
// by record and each identifier is tested against the set. The method decides
// which physical document plays which role and whether members or
// non-members are reported.
package compare

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mblucasm/lcmp/internal/buf"
	"github.com/mblucasm/lcmp/internal/extract"
	"github.com/mblucasm/lcmp/internal/fatal"
	"github.com/mblucasm/lcmp/internal/idset"
	"github.com/mblucasm/lcmp/internal/report"
)

// Sink receives every identifier extracted from one document, numbered from 1,
// independent of classification.
type Sink interface {
	Emit(seq int, id []byte) error
}

// Document is one input of a run.
type Document struct {
	// Name identifies the document in diagnostics, usually its path.
	Name string
	Data []byte
	// Sink is optional.
	Sink Sink
}

// Result summarizes a run.
type Result struct {
	Method Method
	// Count is the number of reported identifiers.
	Count int
	// Reported holds the reported identifiers in stream order.
	Reported []string
	// SetDoc and StreamDoc are the 1-based command-line positions of the
	// documents in each role.
	SetDoc    int
	StreamDoc int
	// SetSize is the number of distinct identifiers in the set.
	SetSize int
	// Extracted counts identifiers extracted from the set and streamed
	// documents, duplicates included.
	Extracted [2]int
}

// Engine holds the state of a comparison run. Method's zero value is AA, so
// set it explicitly.
type Engine struct {
	Method Method
	// Out receives the report listing. Nil discards it.
	Out io.Writer
	// BufferLimit bounds the set document's identifier store in bytes.
	// Zero means no limit.
	BufferLimit int
	// Logger traces the run. Nil discards.
	Logger *slog.Logger
}

// New returns an Engine for method writing its listing to out.
func New(method Method, out io.Writer) *Engine {
	return &Engine{Method: method, Out: out}
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

// role is a document with its command-line position.
type role struct {
	Document
	pos int
}

// Run compares docs[1] against docs[0] (or the reverse, when the method swaps
// roles) and writes the listing to e.Out. Any returned error is fatal for the
// run; the set and its buffer are released on every path.
func (e *Engine) Run(ctx context.Context, docs [2]Document) (Result, error) {
	setDoc := role{docs[0], 1}
	streamDoc := role{docs[1], 2}
	if e.Method.SwapsRoles() {
		setDoc, streamDoc = streamDoc, setDoc
	}
	log := e.logger().With("method", e.Method.String())

	res := Result{Method: e.Method, SetDoc: setDoc.pos, StreamDoc: streamDoc.pos}

	b := buf.New(e.BufferLimit)
	defer b.Release()

	setEx := extract.Detect(setDoc.Data)
	log.Debug("building set", "doc", setDoc.pos, "name", setDoc.Name, "format", setEx.Format().String(), "bytes", len(setDoc.Data))
	n, err := extract.Collect(setEx, setDoc.Data, b, echoTo(ctx, setDoc))
	if err != nil {
		return res, classify(err, setDoc)
	}
	res.Extracted[0] = n

	set := idset.Build(b)
	defer set.Clear()
	res.SetSize = set.Len()
	log.Debug("set built", "identifiers", n, "distinct", res.SetSize)

	streamEx := extract.Detect(streamDoc.Data)
	if err := streamEx.Validate(streamDoc.Data); err != nil {
		return res, classify(err, streamDoc)
	}

	kind := report.Mismatches
	if e.Method.Intersection() {
		kind = report.Matches
	}
	out := e.Out
	if out == nil {
		out = io.Discard
	}
	rep := report.New(out, kind)
	if err := rep.Title(); err != nil {
		return res, err
	}

	log.Debug("streaming", "doc", streamDoc.pos, "name", streamDoc.Name, "format", streamEx.Format().String(), "bytes", len(streamDoc.Data))
	echo := echoTo(ctx, streamDoc)
	seq := 0
	err = streamEx.Extract(streamDoc.Data, func(id []byte) error {
		seq++
		if echo != nil {
			if err := echo(seq, id); err != nil {
				return err
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		if !e.Method.reports(set.Has(id)) {
			return nil
		}
		res.Count++
		res.Reported = append(res.Reported, string(id))
		return rep.Item(res.Count, id)
	})
	res.Extracted[1] = seq
	if err != nil {
		return res, classify(err, streamDoc)
	}

	if err := rep.End(res.Count); err != nil {
		return res, err
	}
	log.Debug("done", "reported", res.Count, "streamed", seq)
	return res, nil
}

// echoTo returns the echo callback for d, or nil when d has no sink.
func echoTo(ctx context.Context, d role) extract.EchoFunc {
	if d.Sink == nil {
		return nil
	}
	return func(seq int, id []byte) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.Sink.Emit(seq, id); err != nil {
			return &fatal.Error{Doc: d.pos, Name: d.Name, Stage: fatal.StageOutput, Err: err}
		}
		return nil
	}
}

// classify maps an extraction failure to its fatal stage.
func classify(err error, d role) error {
	var fe *fatal.Error
	switch {
	case errors.As(err, &fe):
		return err
	case errors.Is(err, buf.ErrAlloc):
		return &fatal.Error{Doc: d.pos, Name: d.Name, Stage: fatal.StageAllocate, Err: err}
	case errors.Is(err, extract.ErrNotEnglish):
		return &fatal.Error{Doc: d.pos, Name: d.Name, Stage: fatal.StageLanguage, Err: err}
	}
	return err
}
