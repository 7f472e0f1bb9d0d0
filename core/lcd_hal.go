package core

// Delay provides short blocking waits for display protocol timing.
type Delay interface {
	DelayMicroseconds(us uint16)
	DelayMilliseconds(ms uint8)
}

// Display is the abstract character display interface that core code uses.
// Platform-specific implementations handle the bus protocol. Every
// operation receives the delay it may busy-wait on.
type Display interface {
	// Reset re-runs the controller initialization sequence
	Reset(delay Delay) error

	// Clear blanks the display and homes the cursor
	Clear(delay Delay) error

	// SetCursorVisible shows or hides the cursor
	SetCursorVisible(visible bool, delay Delay) error

	// SetCursorBlink turns cursor blinking on or off
	SetCursorBlink(blink bool, delay Delay) error

	// Write writes text at the current cursor position
	Write(p []byte, delay Delay) error

	// SetCursorAddress moves the cursor to a linear character address
	SetCursorAddress(addr uint8, delay Delay) error
}
