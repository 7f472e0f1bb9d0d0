package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = true
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
// Output goes out synchronously from interrupt context, so slow sinks
// stretch the critical sections; disable it in that case.
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// debugError logs a contained failure with its origin
func debugError(where string, err error) {
	if err == nil {
		return
	}
	DebugPrintln("[" + where + "] " + err.Error())
}

// DebugTime prints the clock timestamp behind r as "CURRENT TIME yyyy-yday hh:mm:ss (Ns)"
func DebugTime(prefix string, r RelTime) {
	if !debugEnabled {
		return
	}
	raw := r.Raw()
	b := make([]byte, 0, 48)
	b = append(b, prefix...)
	b = append(b, " CURRENT TIME "...)
	b = appendUint(b, uint32(raw.Year()))
	b = append(b, '-')
	b = appendUint(b, uint32(raw.YearDay()))
	h, m, sec := raw.Clock()
	b = append(b, ' ')
	b = appendPadded(b, uint32(h))
	b = append(b, ':')
	b = appendPadded(b, uint32(m))
	b = append(b, ':')
	b = appendPadded(b, uint32(sec))
	b = append(b, " ("...)
	b = append(b, utoa(r.Seconds())...)
	b = append(b, "s)"...)
	DebugPrintln(string(b))
}
