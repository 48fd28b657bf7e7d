// Package config handles loading and parsing the app's configuration file.
//
// # Overview
//
// The app needs almost no configuration: which URL serves the occupancy
// feed, where to put its own log file, and how chatty that log should be.
// Everything has a sensible default so the app works with no config file
// present at all.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided (the -config flag), use it
//  2. Otherwise, use ~/.config/umdgym/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/umdgym/config.toml
//   - Feed URL: the client's built-in endpoint (empty FeedURL passes through)
//   - Log directory: ~/.local/share/umdgym/logs
//   - Debug log: <log_dir>/umdgym.log
//   - Log level: info
//
// # TOML Format
//
// Example config.toml:
//
//	feed_url = "https://umd-gym-data.herokuapp.com/gym.json"
//	log_dir = "~/.local/share/umdgym/logs"
//	log_level = "debug"
//
// All fields are optional. Tilde expansion is performed automatically and
// values are trimmed, so stray whitespace in hand-edited files is harmless.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors (except
// os.ErrNotExist, which triggers defaults), TOML parsing errors, and an
// unknown log_level value. A missing config file is NOT an error.
package config
