// Package rfc3339 parses RFC3339-style timestamps into exact instants
// on a single absolute time axis covering the years 0000 through 9999
// of the proleptic Gregorian calendar.
//
// The package performs only integer arithmetic. All functions are pure
// and safe for concurrent use.
package rfc3339

import (
	"math"
	"time"
)

const (
	secsPerMinute = 60
	secsPerHour   = 60 * secsPerMinute
	secsPerDay    = 24 * secsPerHour

	daysPer400Years = 365*400 + 97
	daysPer100Years = 365*100 + 24
	daysPer4Years   = 365*4 + 1

	nanosPerSecond = 1_000_000_000

	// maxSeconds is the first second outside the representable range,
	// i.e. 10000-01-01T00:00:00Z on the internal axis. The axis
	// pre-counts each year's leap day (see FromCivil), so this is
	// 3652424 days, one below the true proleptic day count.
	maxSeconds = 315569433600

	unixEpochSeconds = 62167132800
)

// daysBefore[m-1] is the number of days in a non-leap year before the
// first of month m.
var daysBefore = [12]uint64{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// Time is an instant in the half-open range
// [0000-01-01T00:00:00Z, 10000-01-01T00:00:00Z), stored as whole
// seconds since the start of the range plus a nanosecond remainder.
// The zero value is the start of the range. Times are immutable and
// compare by value.
type Time struct {
	sec  uint64
	nsec uint32
}

// UnixEpoch is 1970-01-01T00:00:00Z.
var UnixEpoch = Time{sec: unixEpochSeconds}

// FromCivil converts a civil tuple plus offset into a Time. It reports
// false when any field is out of range, the day does not exist in the
// given month and year, second is 60 (leap seconds are rejected, not
// normalized), or the resulting instant leaves the representable range
// after the offset is applied.
func FromCivil(year, month, day, hour, min, sec, nsec int, off Offset) (Time, bool) {
	if year < 0 || year > 10000 ||
		month < 1 || month > 12 ||
		day < 1 || day > 31 ||
		hour < 0 || hour > 23 ||
		min < 0 || min > 59 ||
		sec < 0 || sec > 59 ||
		nsec < 0 || nsec > nanosPerSecond-1 {
		return Time{}, false
	}

	leap := isLeapYear(year)
	if !validDay(leap, month, day) {
		return Time{}, false
	}

	// Decompose the elapsed years into 400/100/4/1-year blocks. The
	// block constants count each block's leap day up front, so the
	// current year's leap day is already included; compensate for
	// January and February below.
	var d uint64
	y := uint64(year)

	n := y / 400
	y -= 400 * n
	d += daysPer400Years * n

	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	d += 365 * y

	d += daysBefore[month-1]
	if leap && month <= 2 {
		d--
	}
	d += uint64(day) - 1

	s := d*secsPerDay +
		uint64(hour)*secsPerHour +
		uint64(min)*secsPerMinute +
		uint64(sec)

	if off.sec >= 0 {
		minus := uint64(off.sec)
		if minus > s {
			return Time{}, false
		}
		s -= minus
	} else {
		s += uint64(-off.sec)
	}

	if s >= maxSeconds {
		return Time{}, false
	}

	return Time{sec: s, nsec: uint32(nsec)}, true
}

// Since returns the span between t and an earlier instant. It reports
// false when earlier is after t; negative spans are not representable.
func (t Time) Since(earlier Time) (Elapsed, bool) {
	if t.Before(earlier) {
		return Elapsed{}, false
	}
	sec := t.sec - earlier.sec
	nsec := t.nsec
	if nsec < earlier.nsec {
		sec--
		nsec += nanosPerSecond
	}
	nsec -= earlier.nsec
	return Elapsed{Seconds: sec, Nanos: nsec}, true
}

// SinceEpoch returns the span between t and the Unix epoch. It reports
// false when t predates 1970.
func (t Time) SinceEpoch() (Elapsed, bool) {
	return t.Since(UnixEpoch)
}

// Std converts t to a stdlib time.Time in UTC. It reports false when t
// predates the Unix epoch.
func (t Time) Std() (time.Time, bool) {
	e, ok := t.SinceEpoch()
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(e.Seconds), int64(e.Nanos)).UTC(), true
}

// Before reports whether t is before u.
func (t Time) Before(u Time) bool {
	return t.sec < u.sec || (t.sec == u.sec && t.nsec < u.nsec)
}

// After reports whether t is after u.
func (t Time) After(u Time) bool {
	return u.Before(t)
}

// Equal reports whether t and u denote the same instant.
func (t Time) Equal(u Time) bool {
	return t == u
}

// Compare returns -1 when t is before u, 0 when they are equal and
// +1 when t is after u.
func (t Time) Compare(u Time) int {
	switch {
	case t.Before(u):
		return -1
	case t.After(u):
		return +1
	default:
		return 0
	}
}

// Elapsed is the span between two instants, split into whole seconds
// and a nanosecond remainder in [0, 1e9). time.Duration cannot hold
// spans beyond roughly 292 years, while instants here are up to ten
// thousand years apart, so subtraction returns this wider form.
type Elapsed struct {
	Seconds uint64
	Nanos   uint32
}

// Duration converts e to a time.Duration. It reports false when the
// span exceeds what time.Duration can represent.
func (e Elapsed) Duration() (time.Duration, bool) {
	const maxWhole = math.MaxInt64 / nanosPerSecond
	if e.Seconds > maxWhole {
		return 0, false
	}
	n := int64(e.Seconds)*nanosPerSecond + int64(e.Nanos)
	if n < 0 {
		return 0, false
	}
	return time.Duration(n), true
}

func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

func validDay(leap bool, month, day int) bool {
	switch {
	case month == 2 && leap:
		return day <= 29
	case month == 2:
		return day <= 28
	case month == 4 || month == 6 || month == 9 || month == 11:
		return day <= 30
	default:
		return day <= 31
	}
}
