package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordle/internal/game"
)

// Stats view layout constants
const (
	statsLabelWidth = 12
	statsValueWidth = 22
	maxBarWidth     = 14
)

var (
	statsTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)

	statsBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// newStatsTable builds a read-only table summarizing the session.
func newStatsTable(s game.Stats) table.Model {
	columns := []table.Column{
		{Title: "Stat", Width: statsLabelWidth},
		{Title: "Value", Width: statsValueWidth},
	}

	rows := []table.Row{
		{"Played", fmt.Sprintf("%d", s.Played)},
		{"Wins", fmt.Sprintf("%d", s.Wins)},
		{"Win rate", fmt.Sprintf("%d%%", s.WinRate())},
		{"Streak", fmt.Sprintf("%d", s.CurrentStreak)},
		{"Max streak", fmt.Sprintf("%d", s.MaxStreak)},
	}
	rows = append(rows, distributionRows(s)...)

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+3), // header and its border
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Cell
	t.SetStyles(st)

	return t
}

// distributionRows renders the win distribution as one bar per attempt
// count, scaled to the most frequent one.
func distributionRows(s game.Stats) []table.Row {
	most := 0
	for _, n := range s.Distribution {
		most = max(most, n)
	}

	rows := make([]table.Row, len(s.Distribution))
	for i, n := range s.Distribution {
		bar := 0
		if most > 0 {
			bar = n * maxBarWidth / most
		}
		if n > 0 && bar == 0 {
			bar = 1
		}
		rows[i] = table.Row{
			fmt.Sprintf("Guess %d", i+1),
			strings.Repeat("█", bar) + fmt.Sprintf(" %d", n),
		}
	}
	return rows
}

// renderStats renders the stats view, centered in a width-wide area.
func renderStats(s game.Stats, width int) string {
	var b strings.Builder
	b.WriteString(statsTitleStyle.Render(centerText("STATISTICS", width)))
	b.WriteString("\n")
	b.WriteString(centerText(statsBoxStyle.Render(newStatsTable(s).View()), width))
	return b.String()
}

// centerText centers every line of text within width columns.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
