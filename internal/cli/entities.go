package cli

import (
	"sync/atomic"

	"github.com/yaklabco/retrolog/pkg/eventlog"
)

// player is the entity the CLI interns for each player id.
type player struct {
	id    string
	name  string
	games atomic.Int64
}

// team is the entity the CLI interns for each team id.
type team struct {
	id string
}

type session = eventlog.Session[*player, *team]

func newSession() *session {
	return eventlog.NewSession[*player, *team](
		func(id, name string) (*player, error) {
			return &player{id: id, name: name}, nil
		},
		func(id string) (*team, error) {
			return &team{id: id}, nil
		},
	)
}

// countAppearances credits one game to every player in the game's lineups.
// A player listed more than once, e.g. a starter who changes position, is
// credited once.
func countAppearances(sess *session, game *eventlog.Game) error {
	seen := make(map[*player]struct{})
	for _, rec := range game.Records {
		lineup, ok := rec.(*eventlog.LineupRecord)
		if !ok {
			continue
		}
		p, err := sess.Player(lineup)
		if err != nil {
			return err
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		p.games.Add(1)
	}
	return nil
}
