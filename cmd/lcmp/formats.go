// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mblucasm/lcmp/internal/format"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "Explain the accepted input formats",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printFormats(cmd.OutOrStdout())
	},
}

func printFormats(w io.Writer) error {
	_, err := fmt.Fprintf(w, `Accepted formats:
  - Raw text files: each line is one element
      Option 1:
        instance1
        instance2
        ...
      Option 2:
        1 >> instance1
        2 >> instance2
        ...
  - HTML files: Instagram followers/following from a downloaded data export
  - <div> elements: a <div> holding Instagram followers/following, copied
    from the web UI (account language must be English)

File detection:
  - Files starting with %q are treated as HTML
  - Files starting with %q are treated as <div> elements
  - Otherwise, they are treated as plain text

Instagram data folder (--instagram-folder):
  1. Instagram > Settings > Your Activity > Download your information
  2. Request a download in HTML format
  3. Extract the ZIP and pass its root folder
`, format.PrefixHTML, format.PrefixDiv)
	return err
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
