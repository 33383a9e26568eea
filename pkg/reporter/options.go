package reporter

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/retrolog/pkg/runner"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter is the destination for per-file failures in text output
	// (typically os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// TermWidth caps the width of text tables. 0 means a default width.
	TermWidth int

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Compact disables JSON indentation.
	Compact bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Format:      FormatText,
		Color:       "auto",
		ShowSummary: true,
	}
}

// displayPath shortens path relative to WorkingDir when path lies below it.
func (o Options) displayPath(path string) string {
	if o.WorkingDir == "" {
		return path
	}
	rel, err := filepath.Rel(o.WorkingDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

// displayResult returns a shallow copy of result with display paths.
func (o Options) displayResult(result *runner.Result) *runner.Result {
	if result == nil || o.WorkingDir == "" {
		return result
	}
	out := *result
	out.Files = make([]runner.FileOutcome, len(result.Files))
	for idx, file := range result.Files {
		file.Path = o.displayPath(file.Path)
		out.Files[idx] = file
	}
	return &out
}
