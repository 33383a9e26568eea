package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/retrolog/pkg/eventlog"
)

// GameFunc is called for every decoded game, from several goroutines at
// once. Returning an error fails the game's file.
type GameFunc func(path string, game *eventlog.Game) error

// Runner decodes event files concurrently and interns their players and
// teams into one session.
type Runner[P, T any] struct {
	// Session receives every game's players and teams. Nil skips interning.
	Session *eventlog.Session[P, T]

	// OnGame, if set, sees each game after it has been interned.
	OnGame GameFunc
}

// New creates a Runner that interns into session.
func New[P, T any](session *eventlog.Session[P, T]) *Runner[P, T] {
	return &Runner[P, T]{Session: session}
}

// Run discovers files under opts.Paths and decodes them concurrently.
// Outcomes are ordered by path regardless of completion order.
//
// Unless opts.ContinueOnError is set, the first failing file cancels the
// run and its error is returned along with the partial result.
func (r *Runner[P, T]) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	outcomes := make([]FileOutcome, len(files))
	started := make([]bool, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for idx, path := range files {
		group.Go(func() error {
			// Files queued behind a failure are not started.
			if groupCtx.Err() != nil {
				return nil
			}
			started[idx] = true

			outcome := r.decodeFile(groupCtx, path, opts)
			outcomes[idx] = outcome
			if outcome.Error != nil && !opts.ContinueOnError {
				return outcome.Error
			}
			return nil
		})
	}
	runErr := group.Wait()

	for idx, outcome := range outcomes {
		if started[idx] {
			result.accumulate(outcome)
		}
	}
	if r.Session != nil {
		result.Stats.Players = r.Session.Players.Len()
		result.Stats.Teams = r.Session.Teams.Len()
	}

	if runErr != nil {
		return result, runErr
	}
	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// decodeFile decodes one file, interning as it goes.
func (r *Runner[P, T]) decodeFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}
	start := time.Now()

	logger := opts.Logger
	if logger != nil {
		logger.Debug("decoding file", "path", path)
	}

	file, err := os.Open(path)
	if err != nil {
		outcome.Error = fmt.Errorf("open %s: %w", path, err)
		return outcome
	}
	defer func() { _ = file.Close() }()

	reader, err := opts.Encoding.Reader(file)
	if err != nil {
		outcome.Error = fmt.Errorf("decode %s: %w", path, err)
		return outcome
	}

	decOpts := []eventlog.Option{
		eventlog.WithSource(path),
		eventlog.WithLogger(logger),
	}
	if opts.RetainIgnored {
		decOpts = append(decOpts, eventlog.WithRetainIgnored())
	}

	dec := eventlog.NewReaderDecoder(reader, decOpts...)
	for game, err := range dec.Games() {
		if err == nil {
			err = ctx.Err()
		}
		if err == nil {
			err = r.visit(path, game)
		}
		if err != nil {
			outcome.Error = err
			break
		}
		outcome.Games = append(outcome.Games, Summarize(game))
	}

	if logger != nil {
		if outcome.Error != nil {
			logger.Error("decode failed", "path", path, "games", len(outcome.Games), "err", outcome.Error)
		} else {
			logger.Info("decoded file", "path", path, "games", len(outcome.Games), "duration", time.Since(start))
		}
	}

	return outcome
}

func (r *Runner[P, T]) visit(path string, game *eventlog.Game) error {
	if r.Session != nil {
		if err := r.Session.Intern(game); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	if r.OnGame != nil {
		if err := r.OnGame(path, game); err != nil {
			return fmt.Errorf("%s: game %s: %w", path, game.ID, err)
		}
	}
	return nil
}
