package ledger

import "sync"

// Sequencer stands in for the host ledger's transaction scheduler: every
// mutating instruction runs as one serialized, all-or-nothing unit. A
// non-nil error from fn means no record was modified; fn must order its own
// steps so that every failable check happens before the first write.
type Sequencer struct {
	mu sync.Mutex
}

// NewSequencer creates a Sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Do runs fn with the instruction lock held and returns fn's error.
func (s *Sequencer) Do(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}
