package occupancy

import (
	"testing"

	"github.com/AstroCB/UMD-Gym/internal/recwell"
)

func TestPercentFull_TruncationArtifact(t *testing.T) {
	// Every count below capacity collapses to 0 under the shipped integer
	// math; this is load-bearing display behavior.
	for count := 0; count < 80; count++ {
		if got := PercentFull(count); got != 0 {
			t.Fatalf("PercentFull(%d) = %d, want 0", count, got)
		}
	}
	for _, count := range []int{80, 81, 100, 500, 1 << 20} {
		if got := PercentFull(count); got != 1 {
			t.Fatalf("PercentFull(%d) = %d, want 1", count, got)
		}
	}
}

func TestPercentFull_Clamped(t *testing.T) {
	for _, count := range []int{-1, -80, -10000, 0, 79, 80, 1 << 30} {
		got := PercentFull(count)
		if got < 0 || got > 100 {
			t.Fatalf("PercentFull(%d) = %d, want within [0,100]", count, got)
		}
	}
	if got := PercentFull(-5); got != 0 {
		t.Fatalf("PercentFull(-5) = %d, want 0", got)
	}
}

func TestClassify_GrayOverridesUsage(t *testing.T) {
	cases := []struct {
		name   string
		latest recwell.Latest
		want   Color
	}{
		{"closed with red usage", recwell.Latest{Count: 0, Reason: "Closed", Usage: "Red"}, ColorGray},
		{"closed with green usage", recwell.Latest{Count: 12, Reason: "Closed", Usage: "Green"}, ColorGray},
		{"not available", recwell.Latest{Count: 0, Reason: "N/A", Usage: "Orange"}, ColorGray},
		{"closed but full dispatches on usage", recwell.Latest{Count: 90, Reason: "Closed", Usage: "Red"}, ColorRed},
		{"reason is case-sensitive", recwell.Latest{Count: 0, Reason: "closed", Usage: "Green"}, ColorGreen},
		{"open room ignores gray rule", recwell.Latest{Count: 0, Reason: "Open", Usage: "Orange"}, ColorOrange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.latest, ColorRed)
			if got.Color != tc.want {
				t.Fatalf("Classify color = %v, want %v", got.Color, tc.want)
			}
		})
	}
}

func TestClassify_UsageDispatch(t *testing.T) {
	cases := []struct {
		usage string
		want  Color
	}{
		{"Green", ColorGreen},
		{"Orange", ColorOrange},
		{"Red", ColorRed},
	}
	for _, tc := range cases {
		got := Classify(recwell.Latest{Count: 40, Reason: "Open", Usage: tc.usage}, ColorGray)
		if got.Color != tc.want {
			t.Fatalf("Classify(usage=%q) color = %v, want %v", tc.usage, got.Color, tc.want)
		}
	}
}

func TestClassify_UnrecognizedUsageKeepsPreviousColor(t *testing.T) {
	for _, prev := range []Color{ColorRed, ColorGreen, ColorOrange, ColorGray} {
		for _, usage := range []string{"Blue", "green", "RED", "", "Very Busy"} {
			got := Classify(recwell.Latest{Count: 40, Reason: "Open", Usage: usage}, prev)
			if got.Color != prev {
				t.Fatalf("Classify(usage=%q, prev=%v) color = %v, want previous color kept", usage, prev, got.Color)
			}
		}
	}
}

func TestClassify_ReadingFields(t *testing.T) {
	got := Classify(recwell.Latest{Count: 40, Time: "3:00 PM", Reason: "Open", Usage: "Green"}, ColorRed)
	want := Reading{PercentFull: 0, LastUpdated: "3:00 PM", Color: ColorGreen}
	if got != want {
		t.Fatalf("Classify = %#v, want %#v", got, want)
	}
}

func TestColor_String(t *testing.T) {
	cases := map[Color]string{
		ColorRed:    "red",
		ColorGreen:  "green",
		ColorOrange: "orange",
		ColorGray:   "gray",
	}
	for c, want := range cases {
		if got := c.String(); got != want {
			t.Fatalf("Color(%d).String() = %q, want %q", int(c), got, want)
		}
	}
}
