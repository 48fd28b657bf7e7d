package occupancy

import (
	"log/slog"

	"github.com/AstroCB/UMD-Gym/internal/recwell"
)

// Color is the traffic-light status shown behind the refresh control.
type Color int

const (
	// ColorRed doubles as the starting color before the first successful
	// classification.
	ColorRed Color = iota
	ColorGreen
	ColorOrange
	ColorGray
)

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case ColorGreen:
		return "green"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	default:
		return "red"
	}
}

// Reading is the view state derived from one facility sample. A fresh
// Reading replaces the previous one wholesale on every successful refresh.
type Reading struct {
	PercentFull int
	LastUpdated string
	Color       Color
}

// capacity is the head count treated as a full weight room.
const capacity = 80

// PercentFull derives the fullness figure from a head count. The integer
// division is preserved exactly as shipped: counts below 80 collapse to 0
// and anything at or above yields 1. Do not swap in a real percentage
// without a product decision; the app has always displayed these values.
func PercentFull(count int) int {
	capped := count
	if capped > capacity {
		capped = capacity
	}
	percent := capped / capacity
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}
	return percent
}

// Classify turns a facility sample into view state. prev is the color
// currently on screen; it survives when the sample's usage level is
// unrecognized.
func Classify(latest recwell.Latest, prev Color) Reading {
	percent := PercentFull(latest.Count)
	return Reading{
		PercentFull: percent,
		LastUpdated: latest.Time,
		Color:       statusColor(percent, latest.Reason, latest.Usage, prev),
	}
}

func statusColor(percent int, reason, usage string, prev Color) Color {
	if percent == 0 && (reason == "Closed" || reason == "N/A") {
		return ColorGray
	}
	switch usage {
	case "Green":
		return ColorGreen
	case "Orange":
		return ColorOrange
	case "Red":
		return ColorRed
	}
	// Unknown usage levels keep whatever is on screen already. Explicitly
	// not an error.
	slog.Warn("unrecognized usage level", "usage", usage)
	return prev
}
