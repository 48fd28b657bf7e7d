package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/AstroCB/UMD-Gym/internal/recwell"
)

// Snapshot represents the latest refresh outcome available to the UI.
type Snapshot struct {
	Facility            recwell.Facility
	HasFacility         bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // refresh failures since the last success
}

// IsOffline returns true when the feed has been unreachable for multiple
// refreshes in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous
// facility data is kept but the error is recorded for visibility.
func (s *Store) Update(fac *recwell.Facility, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	if fac != nil {
		s.snapshot.Facility = *fac
		s.snapshot.HasFacility = true
	} else {
		s.snapshot.HasFacility = false
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot. Facility is a plain
// value struct, so the assignment is already a full defensive copy; the
// error is rewrapped so callers never share the stored instance.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
