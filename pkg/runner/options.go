// Package runner decodes many event files concurrently into one session.
package runner

import (
	"github.com/charmbracelet/log"

	"github.com/yaklabco/retrolog/pkg/config"
)

// Options controls a multi-file run.
type Options struct {
	// Paths are files or directories to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of event-file extensions, matched without regard
	// to case. Defaults to DefaultExtensions().
	Extensions []string

	// Season keeps only files whose name starts with it, e.g. "2018".
	Season string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the maximum number of files decoded at once.
	// 0 or negative means runtime.NumCPU().
	Jobs int

	// Encoding is the text encoding of the files.
	Encoding Encoding

	// ContinueOnError records a failing file in its outcome and keeps going
	// instead of cancelling the run.
	ContinueOnError bool

	// RetainIgnored keeps commentary and adjustment lines as records.
	RetainIgnored bool

	// Logger receives per-file progress. Nil disables logging.
	Logger *log.Logger
}

// DefaultExtensions returns the extensions of regular-season and
// post-season event files.
func DefaultExtensions() []string {
	return []string{".EVA", ".EVN", ".EVE", ".EVR"}
}

// OptionsFromConfig maps a resolved configuration onto run options. Paths,
// WorkingDir and Logger are left for the caller.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{}
	}
	return Options{
		Extensions:      cfg.Extensions,
		Season:          cfg.Season,
		ExcludeGlobs:    cfg.Exclude,
		FollowSymlinks:  cfg.FollowSymlinks,
		Jobs:            cfg.Jobs,
		Encoding:        Encoding(cfg.Encoding),
		ContinueOnError: cfg.ContinueOnError,
		RetainIgnored:   cfg.RetainIgnored,
	}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
