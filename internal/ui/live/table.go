package live

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"evoqa/internal/runner"
)

// defaultColumns returns the benchmark table layout.
func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Question", Width: 48},
		{Title: "Status", Width: 12},
		{Title: "Answer", Width: 32},
		{Title: "Time", Width: 8},
	}
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForState converts UI state into table rows.
func rowsForState(state State, now time.Time, noColor bool) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		rows = append(rows, table.Row{
			formatIndex(row.Index),
			truncateText(row.Text, 48),
			formatStatus(row, noColor),
			truncateText(row.Answer, 32),
			formatRowDuration(row, now),
		})
	}
	return rows
}

// formatIndex formats an example index.
func formatIndex(index int) string {
	return "Q" + strconv.Itoa(index+1)
}

// truncateText collapses whitespace and truncates text for display.
func truncateText(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if len(normalized) <= limit {
		return normalized
	}
	return normalized[:limit-3] + "..."
}

// formatStatus renders a colored status label for a row.
func formatStatus(row ExampleRow, noColor bool) string {
	label := statusLabel(row.Status)
	if noColor {
		return label
	}
	return statusStyle(row.Status).Render(label)
}

// statusLabel maps status codes to display labels.
func statusLabel(status runner.EventType) string {
	switch status {
	case runner.EventQueued:
		return "queued"
	case runner.EventRunning:
		return "running"
	case runner.EventCorrect:
		return "correct"
	case runner.EventIncorrect:
		return "incorrect"
	case runner.EventError:
		return "error"
	default:
		return string(status)
	}
}

// statusStyle selects a style for a given status.
func statusStyle(status runner.EventType) lipgloss.Style {
	color := lipgloss.Color("246")
	switch status {
	case runner.EventCorrect:
		color = lipgloss.Color("42")
	case runner.EventIncorrect:
		color = lipgloss.Color("220")
	case runner.EventError:
		color = lipgloss.Color("196")
	case runner.EventRunning:
		color = lipgloss.Color("33")
	}
	return lipgloss.NewStyle().Foreground(color)
}

// formatRowDuration returns elapsed or total time for a row.
func formatRowDuration(row ExampleRow, now time.Time) string {
	if !row.FinishedAt.IsZero() && !row.StartedAt.IsZero() {
		return row.FinishedAt.Sub(row.StartedAt).Round(100 * time.Millisecond).String()
	}
	if !row.StartedAt.IsZero() {
		return now.Sub(row.StartedAt).Round(100 * time.Millisecond).String()
	}
	return ""
}
