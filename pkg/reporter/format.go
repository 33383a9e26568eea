package reporter

import (
	"fmt"
	"slices"
	"strings"
)

// Format names a reporter implementation.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatSummary Format = "summary"
)

//nolint:gochecknoglobals // Read-only list of formats.
var formats = []Format{FormatText, FormatJSON, FormatSummary}

// ParseFormat maps a --format value to a Format. Empty selects text.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	if f := Format(name); f.IsValid() {
		return f, nil
	}
	valid := make([]string, len(formats))
	for i, f := range formats {
		valid[i] = string(f)
	}
	return "", fmt.Errorf("unknown format %q; valid formats: %s", name, strings.Join(valid, ", "))
}

func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f has a reporter.
func (f Format) IsValid() bool {
	return slices.Contains(formats, f)
}
