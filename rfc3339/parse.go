package rfc3339

import (
	"strings"

	"github.com/ngrash/go-human"
)

// Parse parses a timestamp literal into a Time. Leading and trailing
// whitespace is ignored. The accepted shapes are
//
//	YYYY-MM-DD
//	YYYY-MM-DD{T| }HH:MM:SS
//
// optionally followed by a fraction of 1 to 9 digits and a zone suffix
// accepted by ParseOffset. A missing zone suffix means UTC.
//
// All errors are kinds from package human. Structure is checked before
// field values, so a misplaced separator is human.ErrMalformed even
// when a digit is also wrong, and an out-of-range calendar day or an
// instant outside [year 0, year 10000) is human.ErrOverflow.
func Parse(s string) (Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Time{}, human.ErrEmptyInput
	}

	// The three accepted shapes are 10 bytes (date), 19 bytes
	// (date and time) or 20 to 35 bytes (with fraction and zone).
	n := len(s)
	if n < 10 || (n > 10 && n < 19) {
		return Time{}, human.ErrTooShort
	}
	if n > 35 {
		return Time{}, human.ErrTooLong
	}

	if s[4] != '-' || s[7] != '-' {
		return Time{}, human.ErrMalformed
	}
	if n > 10 {
		if (s[10] != 'T' && s[10] != ' ') || s[13] != ':' || s[16] != ':' {
			return Time{}, human.ErrMalformed
		}
	}
	if n > 19 {
		switch s[19] {
		case '.', 'Z', '+', '-':
		default:
			return Time{}, human.ErrMalformed
		}
	}

	year, ok := fixedDigits(s[0:4])
	if !ok {
		return Time{}, human.ErrInvalidValue
	}
	month, ok := fixedDigits(s[5:7])
	if !ok {
		return Time{}, human.ErrInvalidValue
	}
	day, ok := fixedDigits(s[8:10])
	if !ok {
		return Time{}, human.ErrInvalidValue
	}

	var hour, min, sec int
	if n > 10 {
		if hour, ok = fixedDigits(s[11:13]); !ok {
			return Time{}, human.ErrInvalidValue
		}
		if min, ok = fixedDigits(s[14:16]); !ok {
			return Time{}, human.ErrInvalidValue
		}
		if sec, ok = fixedDigits(s[17:19]); !ok {
			return Time{}, human.ErrInvalidValue
		}
	}

	var (
		nsec int
		zone string
	)
	if n > 19 {
		rest := 19
		if s[19] == '.' {
			// At most 9 fraction digits are consumed; a tenth digit is
			// left for the zone field, where it fails the offset
			// grammar rather than getting its own error kind.
			i := 20
			for i < n && i < 29 && isDigit(s[i]) {
				nsec = nsec*10 + int(s[i]-'0')
				i++
			}
			digits := i - 20
			if digits == 0 {
				return Time{}, human.ErrMissingValue
			}
			// Fixed-point of nine digits: ".5" is 500000000ns.
			for ; digits < 9; digits++ {
				nsec *= 10
			}
			rest = i
		}
		zone = s[rest:]
	}

	off, err := ParseOffset(zone)
	if err != nil {
		return Time{}, human.ErrInvalidTimezone
	}

	t, ok := FromCivil(year, month, day, hour, min, sec, nsec, off)
	if !ok {
		return Time{}, human.ErrOverflow
	}
	return t, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// fixedDigits decodes a fixed-width window of ASCII digits.
func fixedDigits(s string) (int, bool) {
	v := 0
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
		v = v*10 + int(s[i]-'0')
	}
	return v, true
}
