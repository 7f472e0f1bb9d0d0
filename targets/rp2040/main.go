//go:build rp2040

package main

import (
	"machine"
	"time"

	"stopwatch/core"
)

var (
	boardButton     core.EdgeLatch
	startStopButton core.EdgeLatch
)

func main() {
	// CRITICAL: Disable watchdog on boot to clear any previous state
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	InitDebugUART()

	sw, clock := setup()
	core.DebugPrintln("DONE SETUP")

	// Pin interrupts only latch; handlers run here, one at a time, each
	// inside its own critical section
	for {
		if boardButton.Pending() || startStopButton.Pending() {
			sw.HandleButtons(&boardButton, &startStopButton)
		}
		if clock.WakeupPending() {
			_ = sw.HandleWakeup()
		}

		// Yield between polls
		time.Sleep(1 * time.Millisecond)
	}
}

// setup brings up the peripherals. Any failure here halts the firmware.
func setup() (*core.Stopwatch, *core.DS3231Clock) {
	cfg := core.DefaultConfig()
	delay := busyDelay{}

	bus, err := configureRTCBus()
	if err != nil {
		halt("i2c", err)
	}
	clock, err := core.NewDS3231Clock(bus)
	if err != nil {
		halt("rtc", err)
	}

	display := newHD44780Display(lcdRSPin, lcdEPin, lcdDataPins, cfg)
	lcd, err := core.NewLCDDriver(display, delay, cfg)
	if err != nil {
		halt("lcd", err)
	}

	sw, err := core.NewStopwatch(clock, lcd, delay, cfg)
	if err != nil {
		halt("stopwatch", err)
	}
	core.DebugPrintln("SETUP TIME")

	if err := listen(rtcSQWPin, machine.PinFalling, clock.Wakeup()); err != nil {
		halt("sqw", err)
	}
	if err := listen(boardButtonPin, machine.PinRising, &boardButton); err != nil {
		halt("board button", err)
	}
	if err := listen(startStopButtonPin, machine.PinRising, &startStopButton); err != nil {
		halt("start/stop button", err)
	}
	return sw, clock
}

// halt reports a fatal startup failure and stops
func halt(what string, err error) {
	core.DebugPrintln("FATAL " + what + ": " + err.Error())
	panic(err)
}
