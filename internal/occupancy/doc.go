// Package occupancy turns facility samples into the view state the screen
// renders: a fullness figure, the server's timestamp string, and a
// traffic-light color.
//
// # Classification Rules
//
// The fullness figure is min(count, 80) / 80 under integer division,
// clamped to [0,100]. That formula ships a truncation artifact — 0 for any
// count below 80, 1 at or above, and it is preserved on purpose so the
// display matches what users have always seen. See PercentFull.
//
// Color is decided in two stages. A closed or unknown room (reason "Closed"
// or "N/A" while the figure is 0) is gray no matter what the usage level
// says. Otherwise the usage string picks the color: "Green", "Orange" or
// "Red". Any other usage value is logged and the on-screen color is kept —
// a deliberate no-op, not a failure.
//
// Classify is pure apart from that one log line, so it runs on the UI loop
// where the previous on-screen color is at hand.
package occupancy
