//go:build rp2040

package main

import (
	"errors"
	"machine"

	"stopwatch/core"
)

// HD44780 instruction set
const (
	lcdClear          = 0x01
	lcdEntryMode      = 0x04
	lcdDisplayControl = 0x08
	lcdFunctionSet    = 0x20
	lcdSetDDRAM       = 0x80

	lcdEntryIncrement = 0x02
	lcdDisplayOn      = 0x04
	lcdCursorOn       = 0x02
	lcdBlinkOn        = 0x01
	lcdTwoLines       = 0x08

	// DDRAM offset of each physical row in two-line mode
	lcdRowOffset = 0x40
)

var errLCDAddress = errors.New("lcd address out of range")

// hd44780Display implements core.Display for an HD44780 on a 4-bit
// write-only GPIO bus (RW tied low). All timing goes through the delay
// handed in by the caller.
type hd44780Display struct {
	rs, e machine.Pin
	data  [4]machine.Pin // D4..D7

	cfg     core.Config
	control uint8 // Current display control bits
}

func newHD44780Display(rs, e machine.Pin, data [4]machine.Pin, cfg core.Config) *hd44780Display {
	d := &hd44780Display{
		rs:      rs,
		e:       e,
		data:    data,
		cfg:     cfg,
		control: lcdDisplayOn | lcdCursorOn | lcdBlinkOn,
	}
	for _, p := range append([]machine.Pin{rs, e}, data[:]...) {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.Low()
	}
	return d
}

// Reset runs the 4-bit initialization by instruction sequence
func (d *hd44780Display) Reset(delay core.Delay) error {
	delay.DelayMilliseconds(50)
	d.rs.Low()

	d.write4(0x3, delay)
	delay.DelayMilliseconds(5)
	d.write4(0x3, delay)
	delay.DelayMicroseconds(150)
	d.write4(0x3, delay)
	delay.DelayMicroseconds(150)
	d.write4(0x2, delay)
	delay.DelayMicroseconds(150)

	d.command(lcdFunctionSet|lcdTwoLines, delay)
	d.command(lcdDisplayControl|d.control, delay)
	d.command(lcdEntryMode|lcdEntryIncrement, delay)
	return nil
}

func (d *hd44780Display) Clear(delay core.Delay) error {
	d.command(lcdClear, delay)
	delay.DelayMilliseconds(2)
	return nil
}

func (d *hd44780Display) SetCursorVisible(visible bool, delay core.Delay) error {
	d.setControl(lcdCursorOn, visible, delay)
	return nil
}

func (d *hd44780Display) SetCursorBlink(blink bool, delay core.Delay) error {
	d.setControl(lcdBlinkOn, blink, delay)
	return nil
}

func (d *hd44780Display) Write(p []byte, delay core.Delay) error {
	d.rs.High()
	for _, b := range p {
		d.send(b, delay)
	}
	return nil
}

// SetCursorAddress maps a linear address (row*stride + col) onto DDRAM.
// Addresses outside the visible area are rejected.
func (d *hd44780Display) SetCursorAddress(addr uint8, delay core.Delay) error {
	row, col, ok := d.cfg.Position(addr)
	if !ok {
		return errLCDAddress
	}
	d.command(lcdSetDDRAM|(row*lcdRowOffset+col), delay)
	return nil
}

func (d *hd44780Display) setControl(bit uint8, on bool, delay core.Delay) {
	if on {
		d.control |= bit
	} else {
		d.control &^= bit
	}
	d.command(lcdDisplayControl|d.control, delay)
}

func (d *hd44780Display) command(b uint8, delay core.Delay) {
	d.rs.Low()
	d.send(b, delay)
}

// send writes one byte as two nibbles, high first
func (d *hd44780Display) send(b uint8, delay core.Delay) {
	d.write4(b>>4, delay)
	d.write4(b&0x0F, delay)
	delay.DelayMicroseconds(50) // Most instructions take 37us
}

func (d *hd44780Display) write4(nibble uint8, delay core.Delay) {
	for i, p := range d.data {
		p.Set(nibble&(1<<i) != 0)
	}
	d.e.High()
	delay.DelayMicroseconds(1)
	d.e.Low()
	delay.DelayMicroseconds(1)
}
