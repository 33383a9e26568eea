package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGamesCommand() *cobra.Command {
	flags := &decodeFlags{}

	cmd := &cobra.Command{
		Use:   "games [paths...]",
		Short: "Decode event files and list their games",
		Long: `Decode Retrosheet event files and list every game they contain.

By default, decodes all .EVA, .EVN, .EVE and .EVR files in the current
directory and subdirectories. Specify paths to decode specific files or
directories.`,
		Example: `  retrolog games                      # Decode the current directory
  retrolog games 2018eve/             # Decode one season archive
  retrolog games --season 2018 data/  # Only files named 2018*
  retrolog games --encoding latin1    # Decode older Latin-1 archives
  retrolog games --format json        # Machine-readable output`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGames(cmd, args, flags)
		},
	}

	addDecodeFlags(cmd, flags)

	return cmd
}

func runGames(cmd *cobra.Command, args []string, flags *decodeFlags) error {
	cfg, err := loadConfig(cmd, flags.toConfig())
	if err != nil {
		return err
	}

	rep, err := newReporter(cmd, cfg)
	if err != nil {
		return err
	}

	result, _, runErr := decode(cmd, args, cfg, nil)
	if result == nil {
		return runErr
	}

	if err := rep.Games(cmd.Context(), result); err != nil {
		return fmt.Errorf("report games: %w", err)
	}

	return finish(result, runErr)
}
