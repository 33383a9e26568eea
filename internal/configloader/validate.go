package configloader

import (
	"fmt"
	"path/filepath"
	"unicode"

	"github.com/yaklabco/retrolog/pkg/config"
	"github.com/yaklabco/retrolog/pkg/runner"
)

// ValidationError is one problem with a configuration value, optionally
// tied to the file it came from.
type ValidationError struct {
	Field    string
	Value    any
	Message  string
	FilePath string
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.FilePath != "" {
		msg = e.FilePath + ": " + msg
	}
	return msg
}

// ValidationResult splits findings into fatal Errors and Warnings.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid reports whether there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownLogLevels = map[string]bool{
	config.LogLevelDebug: true,
	config.LogLevelInfo:  true,
	config.LogLevelWarn:  true,
	config.LogLevelError: true,
}

// seasonDigits is the length of a season prefix such as "2018".
const seasonDigits = 4

// Validate checks every field of cfg. A nil cfg is valid.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	addError := func(field string, value any, format string, args ...any) {
		result.Errors = append(result.Errors, ValidationError{
			Field: field, Value: value, Message: fmt.Sprintf(format, args...),
		})
	}

	if cfg.LogLevel != "" && !knownLogLevels[cfg.LogLevel] {
		addError("log_level", cfg.LogLevel,
			"invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel)
	}

	if cfg.Jobs < 0 {
		addError("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	if _, err := runner.ParseEncoding(cfg.Encoding); err != nil {
		addError("encoding", cfg.Encoding, "%v", err)
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		addError("format", cfg.Format, "invalid format %q; must be one of: text, json, summary", cfg.Format)
	}

	for i, ext := range cfg.Extensions {
		if len(ext) < 2 || ext[0] != '.' {
			addError(fmt.Sprintf("extensions[%d]", i), ext, "extension %q must start with a dot", ext)
		}
	}

	for i, pattern := range cfg.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			addError(fmt.Sprintf("exclude[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}

	if cfg.Season != "" && !isSeason(cfg.Season) {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "season",
			Value:   cfg.Season,
			Message: fmt.Sprintf("season %q is not a four-digit year; it is matched as a plain file-name prefix", cfg.Season),
		})
	}

	return result
}

// ValidateWithFile is Validate with every finding attributed to filePath.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for _, findings := range [][]ValidationError{result.Errors, result.Warnings} {
		for i := range findings {
			findings[i].FilePath = filePath
		}
	}
	return result
}

func isSeason(s string) bool {
	if len(s) != seasonDigits {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
