package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/retrolog/pkg/runner"
)

// jsonVersion is bumped when the JSON layout changes incompatibly.
const jsonVersion = "1"

// JSONGames is the JSON document written for a games report.
type JSONGames struct {
	Version string       `json:"version"`
	Files   []JSONFile   `json:"files"`
	Stats   runner.Stats `json:"stats"`
}

// JSONFile is one file of a games report.
type JSONFile struct {
	Path  string               `json:"path"`
	Games []runner.GameSummary `json:"games"`
	Error string               `json:"error,omitempty"`
}

// JSONPlayers is the JSON document written for a players report.
type JSONPlayers struct {
	Version string       `json:"version"`
	Players []Player     `json:"players"`
	Errors  []JSONFile   `json:"errors,omitempty"`
	Stats   runner.Stats `json:"stats"`
}

// JSONReporter formats results as JSON. Failed files are part of the
// document rather than written to ErrorWriter.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// Games implements Reporter.
func (r *JSONReporter) Games(_ context.Context, result *runner.Result) error {
	doc := JSONGames{Version: jsonVersion, Files: []JSONFile{}}
	if result = r.opts.displayResult(result); result != nil {
		doc.Stats = result.Stats
		for _, file := range result.Files {
			doc.Files = append(doc.Files, jsonFile(file))
		}
	}
	return r.encode(doc)
}

// Players implements Reporter.
func (r *JSONReporter) Players(_ context.Context, result *runner.Result, players []Player) error {
	doc := JSONPlayers{Version: jsonVersion, Players: players}
	if doc.Players == nil {
		doc.Players = []Player{}
	}
	if result = r.opts.displayResult(result); result != nil {
		doc.Stats = result.Stats
		for _, file := range result.Files {
			if file.Error != nil {
				doc.Errors = append(doc.Errors, jsonFile(file))
			}
		}
	}
	return r.encode(doc)
}

func jsonFile(file runner.FileOutcome) JSONFile {
	out := JSONFile{Path: file.Path, Games: file.Games}
	if out.Games == nil {
		out.Games = []runner.GameSummary{}
	}
	if file.Error != nil {
		out.Error = file.Error.Error()
	}
	return out
}

func (r *JSONReporter) encode(doc any) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
