package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/retrolog/internal/ui/pretty"
	"github.com/yaklabco/retrolog/pkg/runner"
)

// SummaryReporter writes only aggregate statistics and failed files.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
	}
}

// Games implements Reporter.
func (r *SummaryReporter) Games(_ context.Context, result *runner.Result) error {
	return r.write(result)
}

// Players implements Reporter. The player list itself is not written.
func (r *SummaryReporter) Players(_ context.Context, result *runner.Result, _ []Player) error {
	return r.write(result)
}

func (r *SummaryReporter) write(result *runner.Result) error {
	result = r.opts.displayResult(result)
	if result == nil {
		return nil
	}
	if _, err := fmt.Fprint(r.opts.ErrorWriter, r.styles.FormatErrors(result)); err != nil {
		return fmt.Errorf("write errors: %w", err)
	}
	if _, err := fmt.Fprint(r.opts.Writer, r.styles.FormatSummary(result.Stats)); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
