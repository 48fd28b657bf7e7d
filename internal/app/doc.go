// Package app wires configuration, logging, the feed client, and the UI
// into a runnable application.
package app
