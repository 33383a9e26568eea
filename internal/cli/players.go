package cli

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/retrolog/pkg/reporter"
)

// Player sort orders.
const (
	sortByID    = "id"
	sortByName  = "name"
	sortByGames = "games"
)

type playersFlags struct {
	decodeFlags

	sort string
}

func newPlayersCommand() *cobra.Command {
	flags := &playersFlags{}

	cmd := &cobra.Command{
		Use:   "players [paths...]",
		Short: "List the players appearing in event files",
		Long: `Decode event files and list every player named in a starting lineup
or substitution, with the number of games each appeared in.`,
		Example: `  retrolog players 2018eve/                # Players of one season
  retrolog players --sort games 2018eve/   # Most games first`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlayers(cmd, args, flags)
		},
	}

	addDecodeFlags(cmd, &flags.decodeFlags)
	cmd.Flags().StringVar(&flags.sort, "sort", sortByID, "sort order: id, name, games")

	return cmd
}

func runPlayers(cmd *cobra.Command, args []string, flags *playersFlags) error {
	if !slices.Contains([]string{sortByID, sortByName, sortByGames}, flags.sort) {
		return fmt.Errorf("%w: unknown sort order %q", ErrUsage, flags.sort)
	}

	cfg, err := loadConfig(cmd, flags.toConfig())
	if err != nil {
		return err
	}

	rep, err := newReporter(cmd, cfg)
	if err != nil {
		return err
	}

	result, sess, runErr := decode(cmd, args, cfg, nil)
	if result == nil {
		return runErr
	}

	if err := rep.Players(cmd.Context(), result, sortedPlayers(sess, flags.sort)); err != nil {
		return fmt.Errorf("report players: %w", err)
	}

	return finish(result, runErr)
}

func sortedPlayers(sess *session, order string) []reporter.Player {
	entities := sess.Players.Snapshot()
	players := make([]reporter.Player, 0, len(entities))
	for _, p := range entities {
		players = append(players, reporter.Player{ID: p.id, Name: p.name, Games: int(p.games.Load())})
	}

	slices.SortFunc(players, func(a, b reporter.Player) int {
		switch order {
		case sortByName:
			if c := cmp.Compare(a.Name, b.Name); c != 0 {
				return c
			}
		case sortByGames:
			if c := cmp.Compare(b.Games, a.Games); c != 0 {
				return c
			}
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return players
}
