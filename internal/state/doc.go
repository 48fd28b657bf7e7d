// Package state provides thread-safe state management for the refresh flow.
//
// # Overview
//
// This package implements a simple but thread-safe store for the latest
// refresh outcome. Refresh commands run in their own goroutines and may
// overlap when the user mashes the refresh key; the Store is the single
// point where their results land before the UI loop picks them up.
//
// # Architecture
//
// The package follows a producer-consumer pattern:
//
//	Producers (refresh commands):   Consumer (UI loop):
//	┌────────────────────┐         ┌──────────────────┐
//	│ Fetch()            │         │                  │
//	│ ParseFeed()        │         │                  │
//	│ Facility()         │         │                  │
//	│      ↓             │         │                  │
//	│ store.Update()     │────────→│ store.Snapshot() │
//	│                    │ (mutex) │      ↓           │
//	└────────────────────┘         │  classify+render │
//	                               └──────────────────┘
//
// Several refresh goroutines may call Update concurrently. No attempt is
// made to order them: whichever completes last leaves the data the UI will
// show next. That last-write-wins behavior is inherited from the original
// app, which never de-duplicated or cancelled in-flight refreshes.
//
// # Update Semantics
//
// The Update method keeps the last good data across failures:
//
//	// Success: replace facility data
//	store.Update(fac, nil)
//	→ snapshot.Facility = *fac
//	→ snapshot.LastError = nil
//	→ snapshot.ConsecutiveFailures = 0
//
//	// Failure: keep old facility, record the error
//	store.Update(nil, err)
//	→ snapshot.Facility = <unchanged>
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//
// This way the screen keeps showing the most recent successful reading
// while the alert explains what just went wrong.
//
// # Offline Detection
//
// ConsecutiveFailures counts refresh failures since the last success.
// Snapshot.IsOffline reports true at two or more, which the header uses to
// show a persistent offline hint instead of flashing one per failed
// attempt.
//
// # Concurrency Model
//
// A sync.RWMutex guards the snapshot. Update takes the write lock,
// Snapshot the read lock, and the lock is held only for the copy — never
// during network I/O or rendering. Snapshot returns everything by value;
// Facility contains only strings and ints, so the struct copy is already a
// full defensive copy, and the stored error is rewrapped so callers never
// share the instance.
//
// The zero value is ready to use:
//
//	store := &state.Store{}
//
// # Design Rationale
//
// This package intentionally avoids channels, versioning, and pub/sub. One
// mutex over one small struct is enough for a screen that refreshes on
// keypress.
package state
