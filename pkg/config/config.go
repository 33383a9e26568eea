// Package config defines the configuration types for retrolog.
// These are plain data structures; loading and merging live in internal/configloader.
package config

import "slices"

// OutputFormat selects how commands print results.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatSummary:
		return true
	default:
		return false
	}
}

// Log levels accepted by LogLevel.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Encodings accepted by Encoding.
const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin1"
)

// Config is the root configuration structure for retrolog.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// Jobs is the number of files decoded in parallel. 0 means one per CPU.
	Jobs int `yaml:"jobs"`

	// Encoding is the character encoding of event files: utf-8 or latin1.
	Encoding string `yaml:"encoding"`

	// Extensions are the event-file extensions to discover.
	Extensions []string `yaml:"extensions"`

	// Season restricts discovery to files whose name starts with it.
	Season string `yaml:"season"`

	// Exclude contains glob patterns for files and directories to skip.
	Exclude []string `yaml:"exclude"`

	// FollowSymlinks enables traversal of directory symlinks.
	FollowSymlinks bool `yaml:"follow_symlinks"`

	// ContinueOnError keeps decoding other files after one fails.
	ContinueOnError bool `yaml:"continue_on_error"`

	// RetainIgnored keeps commentary and adjustment lines.
	RetainIgnored bool `yaml:"retain_ignored"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		LogLevel:   LogLevelWarn,
		Jobs:       0,
		Encoding:   EncodingUTF8,
		Extensions: []string{".EVA", ".EVN", ".EVE", ".EVR"},
		Format:     FormatText,
	}
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Extensions = slices.Clone(c.Extensions)
	clone.Exclude = slices.Clone(c.Exclude)
	return &clone
}
