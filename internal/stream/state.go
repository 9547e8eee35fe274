package stream

import "github.com/abdalmoniem/pidcat/internal/tracker"

// State is the cross-line processing state.
type State struct {
	Tracker *tracker.Tracker
	// AppPID is the pid of the most recently started filtered process.
	AppPID   string
	MinLevel int

	lastTag    string
	hasLastTag bool
}

// NewState wraps a tracker with the given level floor.
func NewState(t *tracker.Tracker, minLevel int) *State {
	return &State{Tracker: t, MinLevel: minLevel}
}

// LastTag returns the tag most recently written to the tag column.
func (s *State) LastTag() (string, bool) {
	return s.lastTag, s.hasLastTag
}

func (s *State) setLastTag(tag string) {
	s.lastTag = tag
	s.hasLastTag = true
}

// resetTag forgets the last tag so the next line shows its tag again.
func (s *State) resetTag() {
	s.lastTag = ""
	s.hasLastTag = false
}
