package rfc3339

import (
	"github.com/ngrash/go-human"
)

// offsets holds every representable offset in seconds, indexed by
// hour offset + 12. Constructors go through this table so canonical
// offsets are always the same value.
var offsets = [25]int32{
	-12 * 3600, -11 * 3600, -10 * 3600, -9 * 3600, -8 * 3600, -7 * 3600,
	-6 * 3600, -5 * 3600, -4 * 3600, -3 * 3600, -2 * 3600, -1 * 3600,
	0,
	1 * 3600, 2 * 3600, 3 * 3600, 4 * 3600, 5 * 3600, 6 * 3600,
	7 * 3600, 8 * 3600, 9 * 3600, 10 * 3600, 11 * 3600, 12 * 3600,
}

// Offset is a fixed UTC offset. The zero value is UTC.
//
// Only whole-hour offsets between -12:00 and +12:00 are constructible;
// named zones and minute-granularity offsets are deliberately out of
// scope. See ParseOffset.
type Offset struct {
	sec int32
}

// UTC is the zero offset.
var UTC = Offset{}

// FromHours returns the offset for a whole hour count in [-12, 12].
// It reports false for any other hour count.
func FromHours(h int) (Offset, bool) {
	if h < -12 || h > 12 {
		return Offset{}, false
	}
	return Offset{sec: offsets[h+12]}, true
}

// Seconds returns the offset from UTC in seconds.
func (o Offset) Seconds() int {
	return int(o.sec)
}

// zoneHours maps the 24 non-zero zone suffix literals to their hour
// offset. The set is closed on purpose: RFC3339 permits arbitrary
// minute offsets, but this parser only accepts whole hours.
var zoneHours = map[string]int{
	"-12:00": -12, "-11:00": -11, "-10:00": -10, "-09:00": -9,
	"-08:00": -8, "-07:00": -7, "-06:00": -6, "-05:00": -5,
	"-04:00": -4, "-03:00": -3, "-02:00": -2, "-01:00": -1,
	"+01:00": 1, "+02:00": 2, "+03:00": 3, "+04:00": 4,
	"+05:00": 5, "+06:00": 6, "+07:00": 7, "+08:00": 8,
	"+09:00": 9, "+10:00": 10, "+11:00": 11, "+12:00": 12,
}

// ParseOffset parses the zone suffix of a timestamp. It accepts the
// empty string, "Z", "+00:00" and "-00:00" as UTC, and the literal
// strings "±HH:00" for hours 01 through 12. Any other input, including
// minute offsets such as "+05:30", is human.ErrInvalidValue.
func ParseOffset(s string) (Offset, error) {
	switch s {
	case "", "Z", "+00:00", "-00:00":
		return UTC, nil
	}
	h, ok := zoneHours[s]
	if !ok {
		return Offset{}, human.ErrInvalidValue
	}
	return Offset{sec: offsets[h+12]}, nil
}
