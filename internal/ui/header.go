package ui

import (
	"fmt"

	"github.com/AstroCB/UMD-Gym/internal/recwell"
)

// renderHeader renders the status bar: logo, venue, activity, freshness.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{
		bg.Render("umdgym", styles.Logo),
		bg.Render(recwell.WeightRoomTitle, styles.Text),
	}

	if m.fetching {
		parts = append(parts, bg.Render(m.spin.View()+"Refreshing...", styles.AccentText))
	}

	if m.snapshot.IsOffline() {
		parts = append(parts, bg.Render("OFFLINE", styles.DangerText))
	} else if m.snapshot.LastError != nil {
		errText := truncate(fmt.Sprintf("%v", m.snapshot.LastError), 60)
		parts = append(parts, bg.Render("!", styles.WarningText)+bg.Space()+
			bg.Render(errText, styles.WarningText))
	}

	if !m.lastAttempt.IsZero() {
		parts = append(parts, bg.Render(m.lastAttempt.Format("15:04:05"), styles.MutedText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// renderFooter renders the key-hint bar.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	hints := m.help.View(m.keys)
	theme := bg.Render("T", styles.AccentText) + bg.Sep(":") + bg.Render(m.theme.Name, styles.FaintText)

	return styles.Footer.Width(m.width).Render(hints + bg.Spaces(2) + theme)
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
