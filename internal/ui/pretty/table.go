package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/retrolog/pkg/runner"
)

// Table formatting constants.
const (
	tablePadding     = 2
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
	ellipsis         = "..."
)

// Column describes one table column.
type Column struct {
	Header string

	// MinWidth is the narrowest the column may be squeezed to.
	MinWidth int

	// Flex marks the column that shrinks when the table is wider than the
	// terminal. At most one column should be flexible.
	Flex bool

	// Right aligns numbers.
	Right bool

	// Style renders cells after padding. Nil means unstyled.
	Style *lipgloss.Style
}

// PlayerRow is one line of the player table.
type PlayerRow struct {
	ID    string
	Name  string
	Games int
}

// TableFormatter formats rows as a styled, width-constrained table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter. A non-positive termWidth
// uses a default width.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

// FormatGames lists every decoded game, grouped by file.
func (t *TableFormatter) FormatGames(result *runner.Result) string {
	if result == nil {
		return ""
	}

	columns := []Column{
		{Header: "GAME", MinWidth: 12, Style: &t.styles.GameID},
		{Header: "DATE", MinWidth: 10},
		{Header: "VISITOR", MinWidth: 7, Style: &t.styles.Team},
		{Header: "HOME", MinWidth: 4, Style: &t.styles.Team},
		{Header: "PLAYS", MinWidth: 5, Right: true},
		{Header: "RECORDS", MinWidth: 7, Right: true},
		{Header: "FILE", MinWidth: 10, Flex: true, Style: &t.styles.Dim},
	}

	var groups [][][]string
	for _, file := range result.Files {
		if len(file.Games) == 0 {
			continue
		}
		rows := make([][]string, 0, len(file.Games))
		for _, game := range file.Games {
			rows = append(rows, []string{
				game.ID,
				game.Date,
				game.Visitor,
				game.Home,
				strconv.Itoa(game.Plays),
				strconv.Itoa(game.Records()),
				fmt.Sprintf("%s:%d", file.Path, game.Line),
			})
		}
		groups = append(groups, rows)
	}

	return t.Format(columns, groups...)
}

// FormatPlayers lists players in the order given.
func (t *TableFormatter) FormatPlayers(players []PlayerRow) string {
	columns := []Column{
		{Header: "ID", MinWidth: 8, Style: &t.styles.PlayerID},
		{Header: "NAME", MinWidth: 12, Flex: true},
		{Header: "GAMES", MinWidth: 5, Right: true},
	}

	rows := make([][]string, 0, len(players))
	for _, p := range players {
		rows = append(rows, []string{p.ID, p.Name, strconv.Itoa(p.Games)})
	}

	return t.Format(columns, rows)
}

// Format renders groups of rows separated by light rules. It returns ""
// when there are no rows.
func (t *TableFormatter) Format(columns []Column, groups ...[][]string) string {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	if total == 0 {
		return ""
	}

	widths := t.columnWidths(columns, groups)

	var builder strings.Builder

	headers := make([]string, len(columns))
	for idx, col := range columns {
		headers[idx] = col.Header
	}
	builder.WriteString(t.styles.TableHeader.Render(t.formatCells(columns, widths, headers, false)))
	builder.WriteString("\n")
	builder.WriteString(t.separator(widths, heavySeparator))

	for idx, group := range groups {
		if len(group) == 0 {
			continue
		}
		if idx > 0 {
			builder.WriteString(t.separator(widths, lightSeparator))
		}
		for _, row := range group {
			builder.WriteString(t.formatCells(columns, widths, row, true))
			builder.WriteString("\n")
		}
	}

	builder.WriteString(t.separator(widths, heavySeparator))
	return builder.String()
}

func (t *TableFormatter) columnWidths(columns []Column, groups [][][]string) []int {
	widths := make([]int, len(columns))
	for idx, col := range columns {
		widths[idx] = max(col.MinWidth, len(col.Header))
	}
	for _, group := range groups {
		for _, row := range group {
			for idx := range min(len(row), len(columns)) {
				widths[idx] = max(widths[idx], len(row[idx]))
			}
		}
	}

	totalWidth := tablePadding * (len(columns) - 1)
	for _, w := range widths {
		totalWidth += w
	}
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		for idx, col := range columns {
			if col.Flex {
				widths[idx] = max(col.MinWidth, widths[idx]-excess)
			}
		}
	}

	return widths
}

func (t *TableFormatter) formatCells(columns []Column, widths []int, cells []string, styled bool) string {
	parts := make([]string, len(columns))
	for idx, col := range columns {
		var cell string
		if idx < len(cells) {
			cell = truncate(cells[idx], widths[idx])
		}

		if col.Right {
			cell = fmt.Sprintf("%*s", widths[idx], cell)
		} else if idx < len(columns)-1 {
			cell = fmt.Sprintf("%-*s", widths[idx], cell)
		}

		if styled && col.Style != nil {
			cell = col.Style.Render(cell)
		}
		parts[idx] = cell
	}
	return strings.Join(parts, strings.Repeat(" ", tablePadding))
}

func (t *TableFormatter) separator(widths []int, char string) string {
	total := tablePadding * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	return t.styles.TableSeparator.Render(strings.Repeat(char, total)) + "\n"
}

// truncate shortens s to width bytes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= len(ellipsis) {
		return s[:width]
	}
	return s[:width-len(ellipsis)] + ellipsis
}
