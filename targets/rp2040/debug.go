//go:build rp2040

package main

import (
	"machine"

	"stopwatch/core"
)

var debugUART *machine.UART

// InitDebugUART initializes UART0 on GPIO0 (TX) and GPIO1 (RX) and routes
// core debug output to it. Baud rate: 115200
func InitDebugUART() {
	debugUART = machine.UART0

	err := debugUART.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GPIO0,
		RX:       machine.GPIO1,
	})
	if err != nil {
		core.SetDebugEnabled(false)
		return
	}

	core.SetDebugWriter(debugPrintln)
	core.DebugPrintln("=== stopwatch debug UART ===")
}

// debugPrintln writes a string to the debug UART with newline
func debugPrintln(s string) {
	debugUART.Write([]byte(s))
	debugUART.Write([]byte("\r\n"))
}
