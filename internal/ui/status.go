package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusPanel renders the occupancy button and its captions. The
// button's fill is the status color; the border brightens while a fetch is
// in flight, standing in for the mobile app's press highlight.
func (m Model) renderStatusPanel() string {
	styles := m.theme.Styles()
	s := buildScreen(m.reading, m.hasReading, m.snapshot, m.lastAttempt)

	borderColor := m.theme.Border
	if m.fetching {
		borderColor = m.theme.BorderFocus
	}

	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Background(lipgloss.Color(s.StatusHex)).
		Foreground(lipgloss.Color(s.LabelHex)).
		Bold(true).
		Padding(1, 4).
		Align(lipgloss.Center).
		Width(28)

	var b strings.Builder
	b.WriteString(button.Render(s.PercentText))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Last Updated: ") + styles.Text.Render(s.LastUpdated))

	if s.Offline {
		b.WriteString("\n")
		b.WriteString(styles.DangerText.Render("Feed unreachable, showing last known data"))
	}

	return lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
}
