package runner

import "github.com/yaklabco/retrolog/pkg/eventlog"

// GameSummary describes one decoded game.
type GameSummary struct {
	ID         string `json:"id"`
	Line       int    `json:"line"`
	Date       string `json:"date,omitempty"`
	Visitor    string `json:"visitor,omitempty"`
	Home       string `json:"home,omitempty"`
	Info       int    `json:"info"`
	Lineups    int    `json:"lineups"`
	Plays      int    `json:"plays"`
	EarnedRuns int    `json:"earned_runs"`
	Ignored    int    `json:"ignored,omitempty"`
}

// Records returns the number of info and play-by-play records in the game.
func (g GameSummary) Records() int {
	return g.Info + g.Lineups + g.Plays + g.EarnedRuns + g.Ignored
}

// Summarize counts a game's records by type.
func Summarize(game *eventlog.Game) GameSummary {
	summary := GameSummary{
		ID:   game.ID,
		Line: game.Line,
		Info: len(game.Info),
	}
	summary.Date, _ = game.InfoValue("date")
	summary.Visitor, _ = game.InfoValue(eventlog.InfoVisitingTeam)
	summary.Home, _ = game.InfoValue(eventlog.InfoHomeTeam)

	for _, rec := range game.Records {
		switch rec.(type) {
		case *eventlog.LineupRecord:
			summary.Lineups++
		case *eventlog.PlayRecord:
			summary.Plays++
		case *eventlog.EarnedRunsRecord:
			summary.EarnedRuns++
		case *eventlog.IgnoredRecord:
			summary.Ignored++
		}
	}
	return summary
}

// FileOutcome is the result of decoding one file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string `json:"path"`

	// Games lists the games decoded before the end of the file or the
	// first error.
	Games []GameSummary `json:"games"`

	// Error is set if the file could not be fully decoded.
	Error error `json:"-"`
}

// Records returns the number of records across the file's games.
func (o FileOutcome) Records() int {
	total := 0
	for _, game := range o.Games {
		total += game.Records()
	}
	return total
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int `json:"files_discovered"`

	// FilesProcessed is the number of files decoded without error.
	FilesProcessed int `json:"files_processed"`

	// FilesErrored is the number of files that failed.
	FilesErrored int `json:"files_errored"`

	// Games is the number of games decoded.
	Games int `json:"games"`

	// Records is the number of info and play-by-play records decoded.
	Records int `json:"records"`

	// Players and Teams count the distinct entities in the session.
	Players int `json:"players"`
	Teams   int `json:"teams"`
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each file, ordered by path.
	Files []FileOutcome `json:"files"`

	// Stats contains aggregate statistics for the run.
	Stats Stats `json:"stats"`
}

// HasErrors reports whether any file failed.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// Errors returns the per-file errors in path order.
func (r *Result) Errors() []error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, outcome := range r.Files {
		if outcome.Error != nil {
			errs = append(errs, outcome.Error)
		}
	}
	return errs
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
	} else {
		r.Stats.FilesProcessed++
	}

	r.Stats.Games += len(outcome.Games)
	r.Stats.Records += outcome.Records()
}
