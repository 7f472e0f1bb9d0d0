//go:build rp2040

package main

import (
	"machine"

	"stopwatch/core"
)

// Pin assignments
const (
	boardButtonPin     = machine.GPIO20
	startStopButtonPin = machine.GPIO21
	rtcSQWPin          = machine.GPIO6 // DS3231 INT/SQW, open drain

	lcdRSPin = machine.GPIO14
	lcdEPin  = machine.GPIO15
)

var lcdDataPins = [4]machine.Pin{machine.GPIO10, machine.GPIO11, machine.GPIO12, machine.GPIO13}

// listen configures a pull-up input whose edge interrupt triggers latch.
// The callback runs in interrupt context and only sets the flag; the
// main loop services it.
func listen(pin machine.Pin, change machine.PinChange, latch *core.EdgeLatch) error {
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return pin.SetInterrupt(change, func(machine.Pin) {
		latch.Trigger()
	})
}
