package core

import "sync/atomic"

// InterruptSource is a pin interrupt whose pending flag must be cleared
// every time it is observed set.
type InterruptSource interface {
	Pending() bool
	ClearPending()
}

// EdgeLatch is a pending flag set from a pin interrupt callback.
type EdgeLatch struct {
	pending atomic.Bool
}

// Trigger marks the source pending (called from the pin callback)
func (l *EdgeLatch) Trigger() {
	l.pending.Store(true)
}

func (l *EdgeLatch) Pending() bool {
	return l.pending.Load()
}

func (l *EdgeLatch) ClearPending() {
	l.pending.Store(false)
}
