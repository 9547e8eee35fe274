package stream

import (
	"fmt"
	"sync"
	"time"
)

// Snapshot is a point-in-time copy of the loop counters.
type Snapshot struct {
	Read         int
	Shown        int
	Filtered     int
	Unrecognized int
	Banners      int
	Tracked      int
	Ended        bool
	LastError    error
	LastUpdated  time.Time
}

// Stats coordinates concurrent reads of the loop counters.
type Stats struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

func (s *Stats) update(fn func(*Snapshot)) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.snapshot)
	s.snapshot.LastUpdated = time.Now()
}

// Snapshot returns a copy of the counters.
func (s *Stats) Snapshot() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
