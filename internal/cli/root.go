// Package cli provides the Cobra command structure for retrolog.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/retrolog/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root retrolog command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "retrolog",
		Short: "Decode Retrosheet play-by-play event files",
		Long: `retrolog decodes Retrosheet play-by-play event files into games.

It reads whole season archives in parallel, resolving every player and team
to a single shared identity, and reports malformed lines with their file and
line number.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newGamesCommand())
	rootCmd.AddCommand(newPlayersCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Help colors follow the --color default; the flag is not parsed yet.
	newHelpFormatter(color, os.Stdout).apply(rootCmd)

	return rootCmd
}
