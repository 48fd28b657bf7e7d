package ui

import (
	"fmt"
	"time"

	"github.com/AstroCB/UMD-Gym/internal/occupancy"
	"github.com/AstroCB/UMD-Gym/internal/state"
)

// screen is the pure view model for the main panel. Building it is kept
// free of lipgloss so the mapping from data to display text is testable.
type screen struct {
	PercentText string
	LastUpdated string
	StatusHex   string
	LabelHex    string
	Offline     bool
	AttemptText string
}

// buildScreen derives the main panel's view model from the current reading
// and the latest refresh outcome.
func buildScreen(reading occupancy.Reading, hasReading bool, snap state.Snapshot, lastAttempt time.Time) screen {
	s := screen{
		PercentText: "--% Full",
		LastUpdated: "never",
		StatusHex:   StatusHex(reading.Color),
		LabelHex:    statusLabelHex(reading.Color),
		Offline:     snap.IsOffline(),
	}

	if hasReading {
		s.PercentText = fmt.Sprintf("%d%% Full", reading.PercentFull)
		// The feed's display string, verbatim. Never parsed.
		s.LastUpdated = reading.LastUpdated
	}

	if !lastAttempt.IsZero() {
		s.AttemptText = lastAttempt.Format("15:04:05")
	}

	return s
}
