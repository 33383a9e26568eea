package pretty

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/retrolog/pkg/eventlog"
	"github.com/yaklabco/retrolog/pkg/runner"
)

// FormatFileError formats a failed file for terminal output:
//
//	path:line  error  message
func (s *Styles) FormatFileError(outcome runner.FileOutcome) string {
	if outcome.Error == nil {
		return ""
	}

	location := s.FilePath.Render(outcome.Path)
	message := outcome.Error.Error()

	var formatErr *eventlog.FormatError
	if errors.As(outcome.Error, &formatErr) {
		if formatErr.Line > 0 {
			location += s.Location.Render(fmt.Sprintf(":%d", formatErr.Line))
		}
		message = formatErr.Err.Error()
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		location,
		s.Error.Render("error"),
		s.Message.Render(message),
	))
	if len(outcome.Games) > 0 {
		builder.WriteString(s.Dim.Render(fmt.Sprintf("    %d %s decoded before the error",
			len(outcome.Games), plural(len(outcome.Games), "game", "games"))))
		builder.WriteString("\n")
	}
	return builder.String()
}

// FormatErrors formats every failed file of a result.
func (s *Styles) FormatErrors(result *runner.Result) string {
	if result == nil {
		return ""
	}
	var builder strings.Builder
	for _, outcome := range result.Files {
		builder.WriteString(s.FormatFileError(outcome))
	}
	return builder.String()
}
