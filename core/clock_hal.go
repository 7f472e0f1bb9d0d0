package core

import "time"

// Clock is the settable calendar clock used as the live timer.
type Clock interface {
	// Now returns the current clock value
	Now() (time.Time, error)

	// Set programs the current clock value
	Set(t time.Time) error

	// EnableWakeup starts the periodic wakeup interrupt
	EnableWakeup(period time.Duration) error

	// DisableWakeup stops the periodic wakeup interrupt
	DisableWakeup() error

	// WakeupPending reports whether a wakeup has fired and not been cleared
	WakeupPending() bool

	// ClearWakeup acknowledges the pending wakeup
	ClearWakeup()
}
