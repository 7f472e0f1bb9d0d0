package core

import (
	"errors"
	"runtime"
	"strings"
	"time"

	"github.com/stretchr/testify/mock"
)

var errBus = errors.New("bus error")

// countingDelay records requested waits
type countingDelay struct {
	us, ms int
}

func (d *countingDelay) DelayMicroseconds(us uint16) { d.us += int(us) }
func (d *countingDelay) DelayMilliseconds(ms uint8)  { d.ms += int(ms) }

// recordingDisplay logs every operation and collects the text of each
// render cycle (text written since the last Clear).
type recordingDisplay struct {
	ops    []string
	frames []string
	cur    strings.Builder

	writeErr error
}

func (d *recordingDisplay) flush() {
	if d.cur.Len() > 0 {
		d.frames = append(d.frames, d.cur.String())
	}
	d.cur.Reset()
}

func (d *recordingDisplay) Reset(Delay) error {
	d.ops = append(d.ops, "reset")
	return nil
}

func (d *recordingDisplay) Clear(Delay) error {
	d.ops = append(d.ops, "clear")
	d.flush()
	return nil
}

func (d *recordingDisplay) SetCursorVisible(v bool, _ Delay) error {
	d.ops = append(d.ops, "cursor:"+boolText(v))
	return nil
}

func (d *recordingDisplay) SetCursorBlink(v bool, _ Delay) error {
	d.ops = append(d.ops, "blink:"+boolText(v))
	return nil
}

func (d *recordingDisplay) Write(p []byte, _ Delay) error {
	if d.writeErr != nil {
		return d.writeErr
	}
	d.ops = append(d.ops, "write:"+string(p))
	d.cur.Write(p)
	return nil
}

func (d *recordingDisplay) SetCursorAddress(addr uint8, _ Delay) error {
	d.ops = append(d.ops, "addr:"+utoa(uint32(addr)))
	d.cur.WriteByte('|')
	return nil
}

// Frames returns the text of every non-empty render cycle, including
// the one in progress. A second-row jump shows up as '|'.
func (d *recordingDisplay) Frames() []string {
	frames := append([]string(nil), d.frames...)
	if d.cur.Len() > 0 {
		frames = append(frames, d.cur.String())
	}
	return frames
}

func boolText(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// nopDisplay accepts everything and only counts written bytes
type nopDisplay struct {
	written int
}

func (d *nopDisplay) Reset(Delay) error                  { return nil }
func (d *nopDisplay) Clear(Delay) error                  { return nil }
func (d *nopDisplay) SetCursorVisible(bool, Delay) error { return nil }
func (d *nopDisplay) SetCursorBlink(bool, Delay) error   { return nil }

func (d *nopDisplay) Write(p []byte, _ Delay) error {
	d.written += len(p)
	return nil
}

func (d *nopDisplay) SetCursorAddress(uint8, Delay) error { return nil }

// mockDisplay is a testify mock of Display. Written bytes are passed to
// the mock as a string.
type mockDisplay struct {
	mock.Mock
}

func (m *mockDisplay) Reset(Delay) error { return m.Called().Error(0) }
func (m *mockDisplay) Clear(Delay) error { return m.Called().Error(0) }
func (m *mockDisplay) SetCursorVisible(v bool, _ Delay) error {
	return m.Called(v).Error(0)
}
func (m *mockDisplay) SetCursorBlink(v bool, _ Delay) error {
	return m.Called(v).Error(0)
}
func (m *mockDisplay) Write(p []byte, _ Delay) error {
	return m.Called(string(p)).Error(0)
}
func (m *mockDisplay) SetCursorAddress(addr uint8, _ Delay) error {
	return m.Called(addr).Error(0)
}

// memClock is an in-memory Clock. With tearSet, Set passes through a
// bogus value and yields before storing the real one.
type memClock struct {
	now      time.Time
	wakeupOn bool
	period   time.Duration
	pending  bool
	nowCalls int
	sets     int
	tearSet  bool

	nowErr    error
	setErr    error
	enableErr error
}

func newMemClock() *memClock {
	return &memClock{now: Zero().Raw()}
}

func (c *memClock) Now() (time.Time, error) {
	c.nowCalls++
	if c.nowErr != nil {
		return time.Time{}, c.nowErr
	}
	return c.now, nil
}

func (c *memClock) Set(t time.Time) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.sets++
	if c.tearSet {
		c.now = Zero().Raw()
		runtime.Gosched()
	}
	c.now = t
	return nil
}

func (c *memClock) EnableWakeup(period time.Duration) error {
	if c.enableErr != nil {
		return c.enableErr
	}
	c.wakeupOn = true
	c.period = period
	return nil
}

func (c *memClock) DisableWakeup() error {
	c.wakeupOn = false
	c.pending = false
	return nil
}

func (c *memClock) WakeupPending() bool { return c.pending }
func (c *memClock) ClearWakeup()        { c.pending = false }

// fakeI2C is a DS3231-sized register file behind drivers.I2C. A write
// sets the register pointer from its first byte and stores the rest;
// a read continues from the pointer.
type fakeI2C struct {
	regs [0x13]byte
	txs  int
	err  error
}

func (b *fakeI2C) Tx(addr uint16, w, r []byte) error {
	b.txs++
	if b.err != nil {
		return b.err
	}
	ptr := 0
	if len(w) > 0 {
		ptr = int(w[0])
		for i, v := range w[1:] {
			b.regs[(ptr+i)%len(b.regs)] = v
		}
	}
	for i := range r {
		r[i] = b.regs[(ptr+i)%len(b.regs)]
	}
	return nil
}

func (b *fakeI2C) ReadRegister(addr uint8, reg uint8, buf []byte) error {
	return b.Tx(uint16(addr), []byte{reg}, buf)
}

func (b *fakeI2C) WriteRegister(addr uint8, reg uint8, buf []byte) error {
	return b.Tx(uint16(addr), append([]byte{reg}, buf...), nil)
}
