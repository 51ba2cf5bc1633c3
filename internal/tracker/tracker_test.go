package tracker

import "fmt"

// seqIDs hands out deterministic identifiers for tests.
type seqIDs struct {
	n int
}

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func newTestTracker() *Tracker {
	return New(&seqIDs{})
}
