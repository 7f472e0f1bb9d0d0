//go:build tinygo

package core

import "runtime/interrupt"

// State is the saved interrupt mask
type State = interrupt.State

// criticalSection excludes competing handlers by masking interrupts.
// Single core only: nothing else can run while the mask is held.
type criticalSection struct{}

// enter disables interrupts and returns the previous state
func (c *criticalSection) enter() State {
	return interrupt.Disable()
}

// exit restores the interrupt state
func (c *criticalSection) exit(state State) {
	interrupt.Restore(state)
}
