// Package reporter writes decode results and player lists.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/retrolog/pkg/runner"
)

// Player is one row of a player report.
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Games int    `json:"games"`
}

// Reporter formats and writes run results.
type Reporter interface {
	// Games writes the games decoded by a run.
	Games(ctx context.Context, result *runner.Result) error

	// Players writes the players interned by a run, in the order given.
	Players(ctx context.Context, result *runner.Result, players []Player) error
}

// Compile-time interface checks.
var (
	_ Reporter = (*TextReporter)(nil)
	_ Reporter = (*JSONReporter)(nil)
	_ Reporter = (*SummaryReporter)(nil)
)

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	defaults := DefaultOptions()
	if opts.Writer == nil {
		opts.Writer = defaults.Writer
	}
	if opts.ErrorWriter == nil {
		opts.ErrorWriter = defaults.ErrorWriter
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatSummary:
		return NewSummaryReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
