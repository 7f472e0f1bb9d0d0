//go:build rp2040

package main

import (
	"runtime/volatile"
	"unsafe"
)

// RP2040 Timer peripheral memory map
const (
	timerBase     = 0x40054000
	timerTIMERAWL = timerBase + 0x0C // Raw timer low word
)

var timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))

// GetHardwareTime reads the RP2040 hardware timer
// Returns the low 32 bits of the 1MHz microsecond counter
func GetHardwareTime() uint32 {
	return timerRAWL.Get()
}

// busyDelay implements core.Delay by spinning on the hardware timer.
// It does not depend on interrupts, so it is safe inside critical sections.
type busyDelay struct{}

func (busyDelay) DelayMicroseconds(us uint16) {
	start := GetHardwareTime()
	for GetHardwareTime()-start < uint32(us) {
	}
}

func (d busyDelay) DelayMilliseconds(ms uint8) {
	for i := uint8(0); i < ms; i++ {
		d.DelayMicroseconds(1000)
	}
}
