package core

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrFormat is returned for any display failure while writing text.
var ErrFormat = errors.New("display write failed")

// LCDDriver owns a character display configured for rendering. The
// render buffers live in the driver, so a render cycle does not allocate;
// callers serialize renders.
type LCDDriver struct {
	display Display
	cfg     Config

	writer LCDWriter
	text   [16]byte
}

// NewLCDDriver resets and clears the display and turns the cursor off.
// The cursor stays hidden for the lifetime of the driver.
func NewLCDDriver(display Display, delay Delay, cfg Config) (*LCDDriver, error) {
	applyDefaults(&cfg)

	if err := display.Reset(delay); err != nil {
		return nil, fmt.Errorf("lcd reset: %w", err)
	}
	if err := display.Clear(delay); err != nil {
		return nil, fmt.Errorf("lcd clear: %w", err)
	}
	if err := display.SetCursorVisible(false, delay); err != nil {
		return nil, fmt.Errorf("lcd cursor: %w", err)
	}
	if err := display.SetCursorBlink(false, delay); err != nil {
		return nil, fmt.Errorf("lcd blink: %w", err)
	}
	return &LCDDriver{display: display, cfg: cfg}, nil
}

// Writer starts a render cycle: the display is reset and cleared so no
// characters of a previous, longer string survive.
func (l *LCDDriver) Writer(delay Delay) (*LCDWriter, error) {
	if err := l.display.Reset(delay); err != nil {
		return nil, err
	}
	if err := l.display.Clear(delay); err != nil {
		return nil, err
	}
	l.writer = LCDWriter{lcd: l, delay: delay}
	return &l.writer, nil
}

// Render runs one full render cycle of d.
func (l *LCDDriver) Render(delay Delay, d RelTime) error {
	w, err := l.Writer(delay)
	if err != nil {
		return err
	}
	_, err = w.Write(d.AppendText(l.text[:0]))
	return err
}

// LCDWriter is a text sink over an LCDDriver. A line feed moves the
// cursor to the start of the second row.
type LCDWriter struct {
	lcd   *LCDDriver
	delay Delay
}

// Write writes p, splitting at the first line feed. Any display error is
// reported as ErrFormat and the rest of p is dropped.
func (w *LCDWriter) Write(p []byte) (int, error) {
	display := w.lcd.display

	before, after, found := bytes.Cut(p, []byte{'\n'})
	if !found {
		if err := display.Write(p, w.delay); err != nil {
			return 0, ErrFormat
		}
		return len(p), nil
	}

	if err := display.Write(before, w.delay); err != nil {
		return 0, ErrFormat
	}
	if err := display.SetCursorAddress(w.lcd.cfg.SecondRowAddress(), w.delay); err != nil {
		return len(before), ErrFormat
	}
	if err := display.Write(after, w.delay); err != nil {
		return len(before) + 1, ErrFormat
	}
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (w *LCDWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}
