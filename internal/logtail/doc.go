// Package logtail reads the tail of the app's own debug log.
//
// While the TUI runs it owns the terminal, so the log file is the only
// place diagnostics land. The log overlay uses Read to show the most
// recent lines without loading the whole file, and Severity to pick a
// style per line.
//
// Read keeps a fixed-size ring of lines while scanning, so memory use is
// bounded by the requested line count rather than the file size. A missing
// file is not an error; it reads as empty.
package logtail
