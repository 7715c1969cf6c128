// Package ledger models the host-ledger collaborators the core depends on:
// the clock, the co-signer set attached to an instruction, the instruction
// sequencer, and the settlement token ledger.
package ledger

import "time"

// Clock supplies the timestamps recorded on ledger records, in unix seconds.
type Clock interface {
	Now() int64
}

// SystemClock is the production Clock backed by the wall clock.
type SystemClock struct{}

// Now returns the current unix time in seconds.
func (SystemClock) Now() int64 {
	return time.Now().Unix()
}

// FixedClock is a Clock pinned to a settable instant, for tests.
type FixedClock struct {
	Unix int64
}

// Now returns the pinned instant.
func (c *FixedClock) Now() int64 {
	return c.Unix
}
