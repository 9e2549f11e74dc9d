// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the lcmp CLI. lcmp compares two lists
// of usernames, each a plain text list, an Instagram HTML export or a copied
// <div> fragment, and prints their intersection or difference.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mblucasm/lcmp/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// v holds the layered configuration: flags, LCMP_* environment, config file
// and defaults, in that order of precedence.
var v *viper.Viper

// rootCmd compares two documents.
var rootCmd = &cobra.Command{
	Use:   "lcmp [flags] <file1> <file2>",
	Short: "Compare two lists of usernames",
	Long: `lcmp extracts usernames from two documents and lists the ones they share
or the ones only one of them has.

Each document may be a plain text list (one name per line, or "n >> name"
lines as written by --file-1-out), an Instagram data-export HTML page, or a
<div> fragment copied from the Instagram web UI. The format is detected from
the first bytes of each file; see 'lcmp formats'.

Methods:
  AA   names present in both files
  AX   names in the first file but not in the second
  XA   names in the second file but not in the first (default)`,
	Example: `  lcmp followers.txt following.txt
  lcmp --method AA a.html b.txt
  lcmp --instagram-folder ~/Downloads/instagram-me-2025-03-01-abc --method AX
  lcmp --instagram-folder instagram-me-2025-01-01-abc --instagram-folder instagram-me-2025-06-01-def
  lcmp a.txt b.txt --file-1-out a.out --file-2-out b.db`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCompare,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./lcmp.yaml or ~/.config/lcmp/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "trace the run on stderr")
	rootCmd.PersistentFlags().Int("max-buffer-bytes", 0, "bound the identifier store of the set document (0 = unlimited)")

	rootCmd.Flags().String("method", types.DefaultMethod, "comparison method: AA, AX or XA")
	rootCmd.Flags().String("file-1-out", "", "echo every name extracted from file 1 to this path (.db/.sqlite/.sqlite3 for SQLite)")
	rootCmd.Flags().String("file-2-out", "", "echo every name extracted from file 2 to this path")
	rootCmd.Flags().StringArray("instagram-folder", nil, "use an extracted Instagram data export folder as input; give it twice to compare two exports")
	rootCmd.Flags().String("target", types.DefaultTarget, "list compared between two export folders: followers or following")
	rootCmd.Flags().Bool("file-format-help", false, "explain the accepted input formats and exit")

	v = bindConfig(rootCmd)
}

// bindConfig returns a viper instance with defaults set and the command's
// flags bound to their configuration keys.
func bindConfig(cmd *cobra.Command) *viper.Viper {
	nv := viper.New()
	def := types.DefaultConfig()
	nv.SetDefault("method", def.Method)
	nv.SetDefault("max_buffer_bytes", def.MaxBufferBytes)
	nv.SetDefault("verbose", def.Verbose)
	nv.SetDefault("instagram.connections_dir", def.Instagram.ConnectionsDir)
	nv.SetDefault("instagram.followers_file", def.Instagram.FollowersFile)
	nv.SetDefault("instagram.following_file", def.Instagram.FollowingFile)
	nv.SetDefault("instagram.target", def.Instagram.Target)

	nv.BindPFlag("method", cmd.Flags().Lookup("method"))
	nv.BindPFlag("instagram.target", cmd.Flags().Lookup("target"))
	nv.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))
	nv.BindPFlag("max_buffer_bytes", cmd.PersistentFlags().Lookup("max-buffer-bytes"))

	nv.SetEnvPrefix("LCMP")
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	nv.AutomaticEnv()
	return nv
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("lcmp")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "lcmp"))
		}
	}

	errw := rootCmd.ErrOrStderr()
	err := v.ReadInConfig()
	switch {
	case err == nil:
		fmt.Fprintln(errw, "Using config file:", v.ConfigFileUsed())
	case cfgFile != "":
		fmt.Fprintf(errw, "Could not read config file %s: %v\n", cfgFile, err)
	}
}

// loadConfig returns the effective configuration.
func loadConfig() types.Config {
	return types.Config{
		Method:         v.GetString("method"),
		MaxBufferBytes: v.GetInt("max_buffer_bytes"),
		Verbose:        v.GetBool("verbose"),
		Instagram: types.InstagramConfig{
			ConnectionsDir: v.GetString("instagram.connections_dir"),
			FollowersFile:  v.GetString("instagram.followers_file"),
			FollowingFile:  v.GetString("instagram.following_file"),
			Target:         v.GetString("instagram.target"),
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printDiagnostic(os.Stderr, err, useColor(os.Stderr))
		stop()
		os.Exit(1)
	}
}
