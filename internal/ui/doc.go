// Package ui provides the terminal user interface for the gym monitor.
//
// The interface is a single screen: a color-coded occupancy button with the
// fullness percentage and the feed's last-updated string, plus overlays for
// failures (with an email-report action), keyboard help, and the debug log
// tail. All state lives in one Bubble Tea model; network fetches run as
// commands and report back as messages, so every mutation of the screen
// happens inside Update.
package ui
