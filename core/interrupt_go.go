//go:build !tinygo

package core

import "sync"

// State is a placeholder for interrupt state on regular Go
type State uintptr

// criticalSection excludes competing handlers. On regular Go handlers
// are goroutines (tests), so a mutex stands in for masking interrupts.
type criticalSection struct {
	mu sync.Mutex
}

// enter blocks until the section is free
func (c *criticalSection) enter() State {
	c.mu.Lock()
	return 0
}

// exit releases the section
func (c *criticalSection) exit(state State) {
	c.mu.Unlock()
}
