// Package pretty renders decode results for a terminal.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Styles holds the lipgloss styles for terminal output. With color off
// every style is plain, so callers never branch on color themselves.
type Styles struct {
	Error    lipgloss.Style
	Warning  lipgloss.Style
	FilePath lipgloss.Style
	Location lipgloss.Style
	Message  lipgloss.Style

	GameID   lipgloss.Style
	Team     lipgloss.Style
	PlayerID lipgloss.Style

	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// ANSI palette indexes.
const (
	colorRed    = "9"
	colorGreen  = "10"
	colorYellow = "11"
	colorCyan   = "14"
	colorGray   = "8"
	colorLight  = "7"
)

// NewStyles returns the styles for colored or plain output.
func NewStyles(colorEnabled bool) *Styles {
	base := lipgloss.NewStyle()
	fg := func(color string) lipgloss.Style {
		if !colorEnabled {
			return base
		}
		return base.Foreground(lipgloss.Color(color))
	}
	bold := func(style lipgloss.Style) lipgloss.Style {
		if !colorEnabled {
			return base
		}
		return style.Bold(true)
	}

	return &Styles{
		Error:    bold(fg(colorRed)),
		Warning:  bold(fg(colorYellow)),
		FilePath: bold(base),
		Location: fg(colorGray),
		Message:  base,

		GameID:   fg(colorCyan),
		Team:     bold(base),
		PlayerID: fg(colorGray),

		SummaryTitle: bold(base),
		SummaryValue: base,
		Success:      bold(fg(colorGreen)),
		Failure:      bold(fg(colorRed)),

		TableHeader:    bold(fg(colorLight)),
		TableSeparator: fg(colorGray),

		Dim:  fg(colorGray),
		Bold: bold(base),
	}
}

// IsColorEnabled resolves a --color mode ("auto", "always" or "never") for
// writer. Auto means color on a terminal unless NO_COLOR is set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// TerminalWidth returns the width of the terminal behind writer, or 0 when
// writer is not a terminal.
func TerminalWidth(writer io.Writer) int {
	f, ok := writer.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
