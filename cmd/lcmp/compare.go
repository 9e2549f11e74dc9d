// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mblucasm/lcmp/internal/compare"
	"github.com/mblucasm/lcmp/internal/docread"
	"github.com/mblucasm/lcmp/internal/fatal"
	"github.com/mblucasm/lcmp/internal/sink"
	"github.com/mblucasm/lcmp/pkg/types"
)

// input is one side of a comparison. Instagram followers lists may span
// several files, read in order as one document.
type input struct {
	name  string
	parts []string
}

func runCompare(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	errw := cmd.ErrOrStderr()

	if help, _ := cmd.Flags().GetBool("file-format-help"); help {
		return printFormats(out)
	}

	cfg := loadConfig()
	method, err := compare.ParseMethod(cfg.Method)
	if err != nil {
		return &usageError{msg: err.Error()}
	}

	folders, _ := cmd.Flags().GetStringArray("instagram-folder")
	for _, f := range folders {
		if err := checkFolder(f); err != nil {
			return err
		}
	}
	inputs, err := resolveInputs(args, folders, cfg.Instagram, method, errw)
	if err != nil {
		return err
	}

	out1, _ := cmd.Flags().GetString("file-1-out")
	out2, _ := cmd.Flags().GetString("file-2-out")
	if err := sink.ValidatePaths(out1, out2); err != nil {
		return err
	}

	var docs [2]compare.Document
	for i, in := range inputs {
		data, err := docread.ReadAll(in.parts)
		if err != nil {
			return fatal.WithDoc(err, i+1)
		}
		docs[i] = compare.Document{Name: in.name, Data: data}
	}

	sinks, err := sink.OpenPair(out1, out2, out)
	if err != nil {
		return err
	}
	for i, s := range sinks {
		if s != nil {
			docs[i].Sink = s
		}
	}

	engine := compare.New(method, out)
	engine.BufferLimit = cfg.MaxBufferBytes
	engine.Logger = newLogger(errw, cfg.Verbose)

	_, runErr := engine.Run(cmd.Context(), docs)
	closeErr := sink.CloseAll(sinks)
	if runErr != nil {
		return runErr
	}
	if closeErr != nil {
		return fmt.Errorf("closing echo output: %w", closeErr)
	}
	return nil
}

func checkFolder(folder string) error {
	switch {
	case folder == "":
		return usagef("Expected folder after --instagram-folder")
	case strings.HasPrefix(folder, "--"):
		return usagef("Expected folder after --instagram-folder, instead got another flag (%s)", folder)
	}
	return nil
}

// resolveInputs collects the two documents from Instagram folders and the
// positional arguments. Exactly two are required.
func resolveInputs(args, folders []string, cfg types.InstagramConfig, method compare.Method, w io.Writer) ([2]input, error) {
	var ins []input
	names := func() []string {
		n := make([]string, len(ins))
		for i, in := range ins {
			n[i] = in.name
		}
		return n
	}
	add := func(in input) error {
		if len(ins) == 2 {
			return &usageError{
				msg:    "You only can specify 2 files",
				detail: fmt.Sprintf("Tried to add '%s' when %s were already specified", in.name, quoteList(names())),
			}
		}
		ins = append(ins, in)
		return nil
	}

	var sel selection
	if len(folders) > 0 {
		var err error
		if sel, err = selectExports(folders, cfg); err != nil {
			return [2]input{}, err
		}
		for _, in := range sel.inputs() {
			if err := add(in); err != nil {
				return [2]input{}, err
			}
		}
	}
	for _, a := range args {
		if err := add(input{name: a, parts: []string{a}}); err != nil {
			return [2]input{}, err
		}
	}

	if len(ins) < 2 {
		msg := fmt.Sprintf("No input files. Needed 2 but got %d", len(ins))
		if len(ins) > 0 {
			msg += " " + quoteList(names())
		}
		return [2]input{}, usagef("%s", msg)
	}
	if len(sel.exports) > 0 {
		sel.announce(w, method)
	}
	return [2]input{ins[0], ins[1]}, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
