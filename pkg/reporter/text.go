package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/retrolog/internal/ui/pretty"
	"github.com/yaklabco/retrolog/pkg/runner"
)

// TextReporter formats results as styled terminal tables.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	table  *pretty.TableFormatter
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	styles := pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer))
	return &TextReporter{
		opts:   opts,
		styles: styles,
		table:  pretty.NewTableFormatter(styles, opts.TermWidth),
	}
}

// Games implements Reporter.
func (r *TextReporter) Games(_ context.Context, result *runner.Result) (err error) {
	result = r.opts.displayResult(result)
	if result == nil {
		return nil
	}

	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	fmt.Fprint(bw, r.table.FormatGames(result))
	if err := r.writeErrors(result); err != nil {
		return err
	}
	if r.opts.ShowSummary {
		fmt.Fprint(bw, r.styles.FormatSummary(result.Stats))
	}
	return nil
}

// Players implements Reporter.
func (r *TextReporter) Players(_ context.Context, result *runner.Result, players []Player) (err error) {
	result = r.opts.displayResult(result)

	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	rows := make([]pretty.PlayerRow, 0, len(players))
	for _, p := range players {
		rows = append(rows, pretty.PlayerRow(p))
	}
	fmt.Fprint(bw, r.table.FormatPlayers(rows))

	if result == nil {
		return nil
	}
	if err := r.writeErrors(result); err != nil {
		return err
	}
	if r.opts.ShowSummary {
		fmt.Fprint(bw, r.styles.FormatSummaryOneLine(result.Stats))
	}
	return nil
}

func (r *TextReporter) writeErrors(result *runner.Result) error {
	out := r.styles.FormatErrors(result)
	if out == "" {
		return nil
	}
	if _, err := fmt.Fprint(r.opts.ErrorWriter, out); err != nil {
		return fmt.Errorf("write errors: %w", err)
	}
	return nil
}
