package core

import "time"

// Config describes the display geometry and refresh rate.
type Config struct {
	Cols uint8 // Visible characters per row
	Rows uint8 // Visible rows

	// RowStride is the character-address distance between row starts.
	// HD44780 controllers keep 40 addresses per row regardless of Cols.
	RowStride uint8

	// WakeupPeriod is the display refresh interval while running
	WakeupPeriod time.Duration
}

// DefaultConfig returns the 16x2 HD44780 layout with a 1s refresh.
func DefaultConfig() Config {
	return Config{
		Cols:         16,
		Rows:         2,
		RowStride:    40,
		WakeupPeriod: time.Second,
	}
}

// applyDefaults fills in missing configuration values with sensible defaults
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.Cols == 0 {
		cfg.Cols = def.Cols
	}
	if cfg.Rows == 0 {
		cfg.Rows = def.Rows
	}
	if cfg.RowStride == 0 {
		cfg.RowStride = def.RowStride
	}
	if cfg.WakeupPeriod == 0 {
		cfg.WakeupPeriod = def.WakeupPeriod
	}
}

// SecondRowAddress is the linear address of the first character on row 2
func (c Config) SecondRowAddress() uint8 {
	return c.RowStride
}

// Position splits a linear character address into row and column.
// ok is false when the address falls outside the visible Cols x Rows area.
func (c Config) Position(addr uint8) (row, col uint8, ok bool) {
	if c.RowStride == 0 {
		return 0, 0, false
	}
	row, col = addr/c.RowStride, addr%c.RowStride
	return row, col, row < c.Rows && col < c.Cols
}
