package ui

import (
	"testing"
	"time"

	"github.com/AstroCB/UMD-Gym/internal/occupancy"
	"github.com/AstroCB/UMD-Gym/internal/state"
)

func TestBuildScreen_BeforeFirstReading(t *testing.T) {
	s := buildScreen(occupancy.Reading{Color: occupancy.ColorRed}, false, state.Snapshot{}, time.Time{})

	if s.PercentText != "--% Full" {
		t.Fatalf("PercentText = %q, want placeholder", s.PercentText)
	}
	if s.LastUpdated != "never" {
		t.Fatalf("LastUpdated = %q, want never", s.LastUpdated)
	}
	if s.StatusHex != "#ff0000" {
		t.Fatalf("StatusHex = %q, want the default red", s.StatusHex)
	}
	if s.AttemptText != "" {
		t.Fatalf("AttemptText = %q, want empty before any attempt", s.AttemptText)
	}
}

func TestBuildScreen_WithReading(t *testing.T) {
	reading := occupancy.Reading{PercentFull: 0, LastUpdated: "3:00 PM", Color: occupancy.ColorGreen}
	attempt := time.Date(2026, 3, 1, 15, 4, 5, 0, time.UTC)

	s := buildScreen(reading, true, state.Snapshot{}, attempt)

	if s.PercentText != "0% Full" {
		t.Fatalf("PercentText = %q, want 0%% Full", s.PercentText)
	}
	if s.LastUpdated != "3:00 PM" {
		t.Fatalf("LastUpdated = %q, want the feed string verbatim", s.LastUpdated)
	}
	if s.StatusHex != "#00ff00" || s.LabelHex != "#000000" {
		t.Fatalf("colors = %q/%q, want green fill with dark label", s.StatusHex, s.LabelHex)
	}
	if s.AttemptText != "15:04:05" {
		t.Fatalf("AttemptText = %q, want clock time", s.AttemptText)
	}
	if s.Offline {
		t.Fatalf("Offline = true with a clean snapshot")
	}
}

func TestBuildScreen_OfflineHint(t *testing.T) {
	snapOne := state.Snapshot{ConsecutiveFailures: 1}
	if s := buildScreen(occupancy.Reading{}, true, snapOne, time.Now()); s.Offline {
		t.Fatalf("Offline = true after a single failure, want hint only from the second on")
	}

	snapTwo := state.Snapshot{ConsecutiveFailures: 2}
	if s := buildScreen(occupancy.Reading{}, true, snapTwo, time.Now()); !s.Offline {
		t.Fatalf("Offline = false after two consecutive failures")
	}
}
