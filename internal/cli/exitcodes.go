package cli

import (
	"errors"

	"github.com/yaklabco/retrolog/pkg/runner"
)

// Exit codes for retrolog.
const (
	// ExitSuccess indicates every file decoded.
	ExitSuccess = 0

	// ExitDecodeErrors indicates at least one file failed to decode.
	ExitDecodeErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

var (
	// ErrDecodeFailed is returned when one or more files failed to decode.
	// The failures have already been reported.
	ErrDecodeFailed = errors.New("decode failed")

	// ErrConfig wraps configuration loading and validation failures.
	ErrConfig = errors.New("invalid configuration")

	// ErrUsage wraps bad flag values.
	ErrUsage = errors.New("invalid usage")
)

// ExitCodeFromResult determines the exit code of a finished run.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil || !result.HasErrors() {
		return ExitSuccess
	}
	return ExitDecodeErrors
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrDecodeFailed):
		return ExitDecodeErrors
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	default:
		return ExitInternalError
	}
}
