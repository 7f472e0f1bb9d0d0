package core

import "fmt"

// Stopwatch owns the shared timekeeping state. While running the clock
// is the source of truth; while stopped the frozen value is, and the
// clock's wakeup is off.
//
// Every handler touches the state only inside the critical section.
type Stopwatch struct {
	cs criticalSection

	stopped RelTime // Frozen duration, valid when frozen is set
	frozen  bool

	clock Clock
	lcd   *LCDDriver
	delay Delay
	cfg   Config
}

// NewStopwatch preloads the clock with zero and starts the periodic
// wakeup. Errors here are fatal to startup.
func NewStopwatch(clock Clock, lcd *LCDDriver, delay Delay, cfg Config) (*Stopwatch, error) {
	applyDefaults(&cfg)

	if err := clock.Set(Zero().Raw()); err != nil {
		return nil, fmt.Errorf("preload clock: %w", err)
	}
	if err := clock.EnableWakeup(cfg.WakeupPeriod); err != nil {
		return nil, fmt.Errorf("enable wakeup: %w", err)
	}
	return &Stopwatch{
		clock: clock,
		lcd:   lcd,
		delay: delay,
		cfg:   cfg,
	}, nil
}

// lock runs fn inside the critical section
func (s *Stopwatch) lock(fn func()) {
	state := s.cs.enter()
	defer s.cs.exit(state)
	fn()
}

// Running reports whether the clock is the live source of elapsed time.
func (s *Stopwatch) Running() bool {
	var running bool
	s.lock(func() {
		running = !s.frozen
	})
	return running
}

// Elapsed returns the current elapsed time, live or frozen.
func (s *Stopwatch) Elapsed() (RelTime, error) {
	var (
		d   RelTime
		err error
	)
	s.lock(func() {
		d, err = s.current()
	})
	return d, err
}

// current reads the elapsed time. Caller holds the critical section.
func (s *Stopwatch) current() (RelTime, error) {
	if s.frozen {
		return s.stopped, nil
	}
	now, err := s.clock.Now()
	if err != nil {
		return RelTime{}, err
	}
	return FromRaw(now)
}

// Toggle switches between running and stopped. On a clock error the
// state is left unchanged.
func (s *Stopwatch) Toggle() error {
	var err error
	s.lock(func() {
		if s.frozen {
			err = s.start()
		} else {
			err = s.stop()
		}
	})
	return err
}

// start resumes from the frozen value. Caller holds the critical section.
func (s *Stopwatch) start() error {
	if err := s.clock.Set(s.stopped.Raw()); err != nil {
		return fmt.Errorf("resume: %w", err)
	}
	if err := s.clock.EnableWakeup(s.cfg.WakeupPeriod); err != nil {
		return fmt.Errorf("resume: %w", err)
	}
	s.frozen = false
	s.stopped = RelTime{}
	DebugPrintln("[STOPWATCH] running")
	return nil
}

// stop freezes the clock value. Caller holds the critical section.
func (s *Stopwatch) stop() error {
	if err := s.clock.DisableWakeup(); err != nil {
		return fmt.Errorf("freeze: %w", err)
	}
	now, err := s.clock.Now()
	if err == nil {
		s.stopped, err = FromRaw(now)
	}
	if err != nil {
		// Stay running; put the wakeup back so the display keeps updating
		if werr := s.clock.EnableWakeup(s.cfg.WakeupPeriod); werr != nil {
			debugError("STOPWATCH", werr)
		}
		return fmt.Errorf("freeze: %w", err)
	}
	s.frozen = true
	DebugTime("[STOPWATCH] stopped", s.stopped)
	return nil
}

// HandleButtons services the button interrupt. Each pending flag seen
// is cleared. The board button is reserved and only acknowledged.
func (s *Stopwatch) HandleButtons(board, startStop InterruptSource) {
	if board != nil && board.Pending() {
		board.ClearPending()
		DebugPrintln("[BUTTON] board")
	}
	if startStop != nil && startStop.Pending() {
		startStop.ClearPending()
		DebugPrintln("[BUTTON] start/stop")
		debugError("STOPWATCH", s.Toggle())
	}
}

// HandleWakeup services the periodic wakeup: it acknowledges the pending
// wakeup, reads the elapsed time and renders it. The whole invocation is
// one critical section, so a render never sees a half-finished toggle.
// A failed render leaves the state untouched; the next wakeup tries again.
//
// The acknowledgement happens in both states. An edge that arrives while
// stop holds the critical section is latched after the wakeup has been
// disabled, and must not stay pending.
func (s *Stopwatch) HandleWakeup() error {
	var err error
	s.lock(func() {
		s.clock.ClearWakeup()
		d, rerr := s.current()
		if rerr != nil {
			err = rerr
			return
		}
		err = s.lcd.Render(s.delay, d)
	})
	debugError("WAKEUP", err)
	return err
}
