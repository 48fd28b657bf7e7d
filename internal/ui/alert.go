package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AstroCB/UMD-Gym/internal/recwell"
)

// alert is a modal failure notice. While one is shown it captures all
// input: esc/enter dismisses, and m opens the report email when canReport
// is set.
type alert struct {
	title     string
	body      string
	canReport bool
}

// newRefreshAlert picks the alert wording for a failed refresh. The feed
// taxonomy distinguishes connectivity failures from a missing weight room;
// unreadable-feed failures share generic wording.
func newRefreshAlert(err error) *alert {
	switch {
	case errors.Is(err, recwell.ErrNotFound):
		return &alert{
			title:     "Weight Room Unavailable",
			body:      "The weight room isn't included in the server data right now. Try again later.",
			canReport: true,
		}
	case errors.Is(err, recwell.ErrParse), errors.Is(err, recwell.ErrShape):
		return &alert{
			title:     "Refresh Failed",
			body:      "The occupancy feed couldn't be read. Try again later.",
			canReport: true,
		}
	default:
		return &alert{
			title:     "Connection Failed",
			body:      "Couldn't reach the gym data server. Check your connection and try again.",
			canReport: true,
		}
	}
}

// newMailAlert is the secondary notice shown when no mail handler could be
// opened for the report.
func newMailAlert() *alert {
	return &alert{
		title: "Could Not Send Mail",
		body:  "No mail program could be opened on this system. Check that a mailto: handler is configured.",
	}
}

// renderAlert renders the alert modal centered on a blank screen.
func (m Model) renderAlert() string {
	a := m.alert
	if a == nil {
		return m.renderMain()
	}

	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.DangerText.Render(a.title))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(a.body))
	b.WriteString("\n\n")

	actions := []string{
		styles.AccentText.Render("esc") + " " + styles.MutedText.Render("Dismiss"),
	}
	if a.canReport {
		actions = append(actions,
			styles.AccentText.Render("m")+" "+styles.MutedText.Render("Report by email"))
	}
	b.WriteString(strings.Join(actions, styles.FaintText.Render("  •  ")))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(1, 2).
		Width(46)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
