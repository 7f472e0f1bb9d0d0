package core

import (
	"errors"
	"fmt"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ds3231"
)

// DS3231 control register layout
const (
	ds3231Address    = 0x68
	ds3231RegControl = 0x0E

	ds3231ControlA1IE  = 1 << 0 // Alarm 1 interrupt enable
	ds3231ControlA2IE  = 1 << 1 // Alarm 2 interrupt enable
	ds3231ControlINTCN = 1 << 2 // 1 = alarm interrupt mode, 0 = square wave
	ds3231ControlRS1   = 1 << 3 // Square wave rate select
	ds3231ControlRS2   = 1 << 4
)

// ErrWakeupPeriod is returned for a wakeup period the clock cannot produce.
var ErrWakeupPeriod = errors.New("unsupported wakeup period")

// DS3231Clock implements Clock with a DS3231 RTC. The periodic wakeup is
// the 1 Hz square wave on INT/SQW; the board routes that pin's interrupt
// into Wakeup().
type DS3231Clock struct {
	bus    drivers.I2C
	dev    ds3231.Device
	wakeup EdgeLatch
}

// NewDS3231Clock constructs the clock and makes sure the oscillator runs.
func NewDS3231Clock(bus drivers.I2C) (*DS3231Clock, error) {
	c := &DS3231Clock{
		bus: bus,
		dev: ds3231.New(bus),
	}
	if !c.dev.IsRunning() {
		if err := c.dev.SetRunning(true); err != nil {
			return nil, fmt.Errorf("ds3231 start oscillator: %w", err)
		}
	}
	return c, nil
}

// Wakeup returns the latch fed by the SQW pin interrupt.
func (c *DS3231Clock) Wakeup() *EdgeLatch {
	return &c.wakeup
}

func (c *DS3231Clock) Now() (time.Time, error) {
	return c.dev.ReadTime()
}

func (c *DS3231Clock) Set(t time.Time) error {
	return c.dev.SetTime(t)
}

// EnableWakeup switches INT/SQW to a 1 Hz square wave.
func (c *DS3231Clock) EnableWakeup(period time.Duration) error {
	if period != time.Second {
		return ErrWakeupPeriod
	}
	return c.updateControl(func(ctrl uint8) uint8 {
		return ctrl &^ (ds3231ControlINTCN | ds3231ControlRS1 | ds3231ControlRS2)
	})
}

// DisableWakeup puts INT/SQW back into interrupt mode with both alarms
// off, so the pin stays quiet. Any latched wakeup is dropped.
func (c *DS3231Clock) DisableWakeup() error {
	err := c.updateControl(func(ctrl uint8) uint8 {
		ctrl |= ds3231ControlINTCN
		return ctrl &^ (ds3231ControlA1IE | ds3231ControlA2IE)
	})
	c.wakeup.ClearPending()
	return err
}

func (c *DS3231Clock) WakeupPending() bool {
	return c.wakeup.Pending()
}

func (c *DS3231Clock) ClearWakeup() {
	c.wakeup.ClearPending()
}

// updateControl does a read-modify-write of the control register,
// leaving the oscillator bit alone
func (c *DS3231Clock) updateControl(fn func(uint8) uint8) error {
	var buf [1]byte
	if err := c.bus.Tx(ds3231Address, []byte{ds3231RegControl}, buf[:]); err != nil {
		return err
	}
	return c.bus.Tx(ds3231Address, []byte{ds3231RegControl, fn(buf[0])}, nil)
}
