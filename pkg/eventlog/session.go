package eventlog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yaklabco/retrolog/pkg/identity"
)

// PlayerFactory creates the caller's player entity the first time an id is
// seen in a lineup record.
type PlayerFactory[P any] func(id, name string) (P, error)

// TeamFactory creates the caller's team entity the first time a team id is
// seen in an info record.
type TeamFactory[T any] func(id string) (T, error)

// Info keys that name the two teams of a game.
const (
	InfoVisitingTeam = "visteam"
	InfoHomeTeam     = "hometeam"
)

// Session interns players and teams across every game decoded with it, so
// each id maps to exactly one entity. A Session is safe for concurrent use
// and is shared by decoders of different files.
type Session[P, T any] struct {
	// ID identifies the session in logs.
	ID uuid.UUID

	Players *identity.Registry[P]
	Teams   *identity.Registry[T]

	newPlayer identity.Factory[P]
	newTeam   identity.Factory[T]
}

// NewSession creates a session. Either factory may be nil, in which case
// lookups that would need to create that entity fail with ErrNoFactory.
func NewSession[P, T any](players PlayerFactory[P], teams TeamFactory[T]) *Session[P, T] {
	session := &Session[P, T]{
		ID:      uuid.New(),
		Players: identity.NewRegistry[P](),
		Teams:   identity.NewRegistry[T](),
	}

	if players != nil {
		session.newPlayer = func(id string, ctx any) (P, error) {
			rec, _ := ctx.(*LineupRecord)
			var name string
			if rec != nil {
				name = strings.Clone(rec.PlayerName())
			}
			return players(id, name)
		}
	}
	if teams != nil {
		session.newTeam = func(id string, _ any) (T, error) {
			return teams(id)
		}
	}

	return session
}

// Player returns the entity for the player in a lineup record, creating it
// on first sight.
func (s *Session[P, T]) Player(rec *LineupRecord) (P, error) {
	var zero P
	if s.newPlayer == nil {
		return zero, fmt.Errorf("player: %w", ErrNoFactory)
	}
	key, err := rec.PlayerKey()
	if err != nil {
		return zero, err
	}
	return s.Players.GetOrAdd(key, s.newPlayer, rec)
}

// Batter returns the entity for the batter of a play. Players enter the
// session through lineup records, so a batter never seen in one yields
// identity.ErrNotFound.
func (s *Session[P, T]) Batter(rec *PlayRecord) (P, error) {
	key, err := rec.BatterKey()
	if err != nil {
		var zero P
		return zero, err
	}
	return s.Players.Lookup(key)
}

// Pitcher returns the entity for the pitcher of an earned-run record, or
// identity.ErrNotFound if the pitcher never appeared in a lineup record.
func (s *Session[P, T]) Pitcher(rec *EarnedRunsRecord) (P, error) {
	key, err := rec.PitcherKey()
	if err != nil {
		var zero P
		return zero, err
	}
	return s.Players.Lookup(key)
}

// Team returns the entity for the team named by a visteam or hometeam info
// record, creating it on first sight.
func (s *Session[P, T]) Team(rec *InfoRecord) (T, error) {
	var zero T
	if key := rec.Key(); key != InfoVisitingTeam && key != InfoHomeTeam {
		return zero, rec.wrap(fmt.Errorf("info key %q does not name a team", key))
	}
	if s.newTeam == nil {
		return zero, fmt.Errorf("team: %w", ErrNoFactory)
	}
	key, err := rec.ValueKey()
	if err != nil {
		return zero, err
	}
	return s.Teams.GetOrAdd(key, s.newTeam, rec)
}

// Intern resolves every team and lineup record of a game, so that later
// Batter and Pitcher lookups succeed.
func (s *Session[P, T]) Intern(game *Game) error {
	for _, rec := range game.Info {
		switch rec.Key() {
		case InfoVisitingTeam, InfoHomeTeam:
			if _, err := s.Team(rec); err != nil {
				return fmt.Errorf("game %s: %w", game.ID, err)
			}
		}
	}
	for _, rec := range game.Records {
		lineup, ok := rec.(*LineupRecord)
		if !ok {
			continue
		}
		if _, err := s.Player(lineup); err != nil {
			return fmt.Errorf("game %s: %w", game.ID, err)
		}
	}
	return nil
}

// Reset forgets every interned player and team.
func (s *Session[P, T]) Reset() {
	s.Players.Reset()
	s.Teams.Reset()
}
