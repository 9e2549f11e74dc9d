// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mblucasm/lcmp/internal/docread"
	"github.com/mblucasm/lcmp/internal/extract"
	"github.com/mblucasm/lcmp/internal/fatal"
	"github.com/mblucasm/lcmp/internal/sink"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Print the names extracted from one document",
	Long: `Extract detects the format of one document and prints every name it
holds as "n >> name" lines, the same format --file-1-out writes. The output is
itself a valid plain text input. Use "-" to read standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("out", "o", "", "write to this path instead of stdout (.db/.sqlite/.sqlite3 for SQLite)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	data, err := docread.Read(args[0])
	if err != nil {
		return fatal.WithDoc(err, 1)
	}

	var s sink.Sink
	if path, _ := cmd.Flags().GetString("out"); path != "" {
		if s, err = sink.Open(path, cmd.OutOrStdout()); err != nil {
			return err
		}
	} else {
		s = sink.NewText(cmd.OutOrStdout())
	}

	ex := extract.Detect(data)
	seq := 0
	err = ex.Extract(data, func(id []byte) error {
		seq++
		return s.Emit(seq, id)
	})
	if cerr := s.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if errors.Is(err, extract.ErrNotEnglish) {
		return &fatal.Error{Doc: 1, Name: args[0], Stage: fatal.StageLanguage, Err: err}
	}
	if err != nil {
		return fmt.Errorf("extracting %s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Extracted %d names (%s)\n", seq, ex.Format())
	return nil
}
