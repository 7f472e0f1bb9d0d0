package core

import (
	"errors"
	"time"
)

// ReferenceYear is the calendar year the clock peripheral counts in.
// Elapsed time is mapped onto this year only when talking to the clock.
const ReferenceYear = 2001

const (
	SecondsInMinute = 60
	SecondsInHour   = 60 * SecondsInMinute
	SecondsInDay    = 24 * SecondsInHour
	MinutesInHour   = 60
)

// ErrEpochYear is returned for a clock timestamp outside the reference year.
var ErrEpochYear = errors.New("timestamp outside reference year")

// epoch is the calendar instant of elapsed time zero.
var epoch = time.Date(ReferenceYear, time.January, 1, 0, 0, 0, 0, time.UTC)

// MaxSeconds is the largest elapsed value that still maps into the reference year.
var MaxSeconds = uint32(epoch.AddDate(1, 0, 0).Sub(epoch)/time.Second) - 1

// RelTime is an elapsed duration since the epoch, in whole seconds.
type RelTime struct {
	secs uint32
}

// Zero returns the epoch start.
func Zero() RelTime {
	return RelTime{}
}

// FromSeconds builds a RelTime, clamping to MaxSeconds.
func FromSeconds(secs uint32) RelTime {
	if secs > MaxSeconds {
		secs = MaxSeconds
	}
	return RelTime{secs: secs}
}

// FromRaw converts a clock timestamp back into elapsed time.
// The timestamp must fall inside the reference year; the epoch is its
// first instant, so every such timestamp maps to a valid value.
func FromRaw(t time.Time) (RelTime, error) {
	t = t.UTC()
	if t.Year() != ReferenceYear {
		return RelTime{}, ErrEpochYear
	}

	days := uint32(t.YearDay() - 1)
	return RelTime{secs: days*SecondsInDay + timeOfDay(t)}, nil
}

// timeOfDay returns seconds since midnight.
func timeOfDay(t time.Time) uint32 {
	h, m, s := t.Clock()
	return uint32(h)*SecondsInHour + uint32(m)*SecondsInMinute + uint32(s)
}

// Raw returns the clock timestamp for this elapsed time.
func (r RelTime) Raw() time.Time {
	return epoch.Add(time.Duration(r.secs) * time.Second)
}

// Seconds returns elapsed seconds since the epoch.
func (r RelTime) Seconds() uint32 {
	return r.secs
}

func (r *RelTime) add(n uint32) {
	if MaxSeconds-r.secs < n {
		r.secs = MaxSeconds
		return
	}
	r.secs += n
}

func (r *RelTime) sub(n uint32) {
	if r.secs < n {
		r.secs = 0
		return
	}
	r.secs -= n
}

func (r *RelTime) AddHour()   { r.add(SecondsInHour) }
func (r *RelTime) AddMinute() { r.add(SecondsInMinute) }
func (r *RelTime) AddSecond() { r.add(1) }
func (r *RelTime) SubHour()   { r.sub(SecondsInHour) }
func (r *RelTime) SubMinute() { r.sub(SecondsInMinute) }
func (r *RelTime) SubSecond() { r.sub(1) }

// AppendText appends HH:MM:SS to b. Hours are not wrapped at 24;
// they widen past two digits instead.
func (r RelTime) AppendText(b []byte) []byte {
	m, s := r.secs/SecondsInMinute, r.secs%SecondsInMinute
	h, m := m/MinutesInHour, m%MinutesInHour

	b = appendPadded(b, h)
	b = append(b, ':')
	b = appendPadded(b, m)
	b = append(b, ':')
	return appendPadded(b, s)
}

func (r RelTime) String() string {
	var buf [16]byte
	return string(r.AppendText(buf[:0]))
}
