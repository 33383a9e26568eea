package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/retrolog/pkg/runner"
)

const summaryDividerWidth = 40

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "2430 games in 30 files, 1612 players, 30 teams".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No event files found") + "\n"
	}

	parts := []string{
		fmt.Sprintf("%s in %d %s",
			s.Success.Render(fmt.Sprintf("%d %s", stats.Games, plural(stats.Games, "game", "games"))),
			stats.FilesProcessed, plural(stats.FilesProcessed, "file", "files")),
		fmt.Sprintf("%d %s", stats.Players, plural(stats.Players, "player", "players")),
		fmt.Sprintf("%d %s", stats.Teams, plural(stats.Teams, "team", "teams")),
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s failed",
			stats.FilesErrored, plural(stats.FilesErrored, "file", "files"))))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	row := func(label string, value string) {
		builder.WriteString(fmt.Sprintf("  %-18s %s\n", label+":", value))
	}

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row("Files found", s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)))
	row("Files decoded", s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)))
	if stats.FilesErrored > 0 {
		row("Files failed", s.Failure.Render(strconv.Itoa(stats.FilesErrored)))
	}

	builder.WriteString("\n")

	row("Games", s.SummaryValue.Render(strconv.Itoa(stats.Games)))
	row("Records", s.SummaryValue.Render(strconv.Itoa(stats.Records)))
	row("Players", s.SummaryValue.Render(strconv.Itoa(stats.Players)))
	row("Teams", s.SummaryValue.Render(strconv.Itoa(stats.Teams)))

	builder.WriteString("\n")

	if stats.FilesErrored > 0 {
		builder.WriteString(s.Failure.Render("Decode finished with errors"))
	} else {
		builder.WriteString(s.Success.Render("Decode complete"))
	}
	builder.WriteString("\n")

	return builder.String()
}
