package ui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AstroCB/UMD-Gym/internal/config"
	"github.com/AstroCB/UMD-Gym/internal/occupancy"
	"github.com/AstroCB/UMD-Gym/internal/prefs"
	"github.com/AstroCB/UMD-Gym/internal/recwell"
	"github.com/AstroCB/UMD-Gym/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Fetcher   recwell.Fetcher
	Store     *state.Store
	Config    *config.Config
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	fetcher   recwell.Fetcher
	store     *state.Store
	config    *config.Config
	prefsPath string

	// UI state
	theme  Theme
	keys   keyMap
	help   help.Model
	spin   spinner.Model
	width  int
	height int
	ready  bool

	// Data state. reading starts red and is only ever replaced wholesale;
	// its color is the "previous color" the classifier consults.
	reading     occupancy.Reading
	hasReading  bool
	snapshot    state.Snapshot
	lastAttempt time.Time

	// fetching is the network-activity toggle. It is a plain bool, not a
	// counter: with overlapping fetches the first completion clears it.
	fetching bool

	// Overlays
	alert       *alert
	showHelp    bool
	showLogs    bool
	logViewport viewport.Model
	logLines    []string
	logErr      error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Testudo"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(themeName)

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))),
	)

	return Model{
		ctx:       ctx,
		fetcher:   opts.Fetcher,
		store:     opts.Store,
		config:    opts.Config,
		prefsPath: prefsPath,
		theme:     theme,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spin:      sp,
		reading:   occupancy.Reading{Color: occupancy.ColorRed},
		// Init launches the first fetch, so the model is born in-flight.
		fetching: true,
	}
}

// Init implements tea.Model. The first fetch starts immediately; the screen
// never requires a manual initial refresh.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		refreshCmd(m.ctx, m.fetcher, m.store),
		m.spin.Tick,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.initLogViewport()
		}
		m.ready = true
		m.sizeLogViewport()
		return m, nil

	case spinner.TickMsg:
		if !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case refreshDoneMsg:
		return m.handleRefreshDone(msg)

	case reportDoneMsg:
		if msg.err != nil {
			slog.Warn("report email failed", "err", msg.err)
			m.alert = newMailAlert()
			return m, nil
		}
		// The composer is open; nothing left for the alert to offer.
		m.alert = nil
		return m, nil

	case logTailMsg:
		m.logLines = msg.lines
		m.logErr = msg.err
		m.updateLogContent()
		return m, nil
	}

	return m, nil
}

// handleRefreshDone folds one completed fetch into the display state.
// Classification runs here, on the program loop, so the classifier's
// "previous color" is exactly the color on screen when the result lands.
// Completions apply in arrival order: with overlapping fetches the last one
// to arrive wins, regardless of which started first.
func (m Model) handleRefreshDone(msg refreshDoneMsg) (tea.Model, tea.Cmd) {
	m.fetching = false
	m.lastAttempt = time.Now()
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}

	if msg.err != nil {
		slog.Info("refresh failed", "err", msg.err)
		m.alert = newRefreshAlert(msg.err)
		return m, nil
	}

	m.reading = occupancy.Classify(msg.latest, m.reading.Color)
	m.hasReading = true
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Alert modal captures all input while shown.
	if m.alert != nil {
		switch {
		case m.alert.canReport && key.Matches(msg, m.keys.Report):
			return m, reportCmd()
		case key.Matches(msg, m.keys.Dismiss):
			m.alert = nil
		}
		return m, nil
	}

	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.showLogs {
		return m.handleLogKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		m.showLogs = true
		return m, m.tailLogsCmd()

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		// Every press starts an independent fetch. In-flight fetches are
		// neither cancelled nor de-duplicated.
		return m, tea.Batch(m.startRefresh(), m.spin.Tick)
	}

	return m, nil
}

// startRefresh flips the activity toggle and returns the fetch command.
func (m *Model) startRefresh() tea.Cmd {
	m.fetching = true
	return refreshCmd(m.ctx, m.fetcher, m.store)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.alert != nil {
		return m.renderAlert()
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showLogs {
		return m.renderLogs()
	}

	return m.renderMain()
}

// renderMain renders the full screen: header, occupancy panel, footer.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	body := m.renderStatusPanel()
	bodyHeight := m.height - 2 // header + footer
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	b.WriteString(lipgloss.Place(
		m.width,
		bodyHeight,
		lipgloss.Center,
		lipgloss.Center,
		body,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	))
	b.WriteString("\n")

	b.WriteString(m.renderFooter())

	return b.String()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
