package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AstroCB/UMD-Gym/internal/logtail"
)

// logTailLines caps how much of the log file the overlay loads.
const logTailLines = 200

// logTailMsg carries one read of the log file's tail.
type logTailMsg struct {
	lines []string
	err   error
}

// tailLogsCmd reads the tail of the debug log off the program loop.
func (m Model) tailLogsCmd() tea.Cmd {
	path := ""
	if m.config != nil {
		path = m.config.DebugLogPath()
	}
	return func() tea.Msg {
		lines, err := logtail.Read(path, logTailLines)
		return logTailMsg{lines: lines, err: err}
	}
}

// handleLogKey processes keyboard input while the log overlay is open.
func (m Model) handleLogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Dismiss), key.Matches(msg, m.keys.Logs):
		m.showLogs = false
		return m, nil
	case key.Matches(msg, m.keys.Refresh) && msg.String() == "r":
		// Re-read the file without leaving the overlay.
		return m, m.tailLogsCmd()
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

func (m *Model) initLogViewport() {
	m.logViewport = viewport.New(m.width-4, m.height-4)
}

func (m *Model) sizeLogViewport() {
	w := m.width - 4
	h := m.height - 4
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	m.logViewport.Width = w
	m.logViewport.Height = h
}

// updateLogContent re-renders the tail into the viewport and jumps to the
// newest lines.
func (m *Model) updateLogContent() {
	styles := m.theme.Styles()

	var b strings.Builder
	if m.logErr != nil {
		b.WriteString(styles.DangerText.Render("could not read log: " + m.logErr.Error()))
		b.WriteString("\n")
	}
	if len(m.logLines) == 0 && m.logErr == nil {
		b.WriteString(styles.FaintText.Render("log is empty"))
	}
	for _, line := range m.logLines {
		b.WriteString(m.styleLogLine(line, styles))
		b.WriteString("\n")
	}

	m.logViewport.SetContent(b.String())
	m.logViewport.GotoBottom()
}

// styleLogLine colors a line by its severity token.
func (m Model) styleLogLine(line string, styles Styles) string {
	switch logtail.Severity(line) {
	case "ERR":
		return styles.DangerText.Render(line)
	case "WRN":
		return styles.WarningText.Render(line)
	case "DBG":
		return styles.FaintText.Render(line)
	default:
		return styles.Text.Render(line)
	}
}

// renderLogs renders the log overlay.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()

	path := ""
	if m.config != nil {
		path = m.config.DebugLogPath()
	}
	title := styles.Text.Bold(true).Render("Debug Log") + "  " +
		styles.FaintText.Render(truncate(path, m.width-14))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(box.Render(m.logViewport.View()))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("j/k scroll • r reload • esc close"))

	return b.String()
}
