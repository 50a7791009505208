// Package duration parses elapsed-time literals made of repeated
// integer-unit segments, such as "1h30m" or "1d 12h 30s", into a
// time.Duration. All accumulation is checked; a literal whose total
// does not fit a time.Duration is an error, never a wrapped value.
package duration

import (
	"math"
	"strings"
	"time"

	"github.com/ngrash/go-human"
	"github.com/ngrash/go-human/internal/checked"
)

// nanos per unit, smallest first.
var nanos = [...]uint64{
	1,                         // ns
	1_000,                     // us
	1_000_000,                 // ms
	1_000_000_000,             // s
	60 * 1_000_000_000,        // m
	3600 * 1_000_000_000,      // h
	24 * 3600 * 1_000_000_000, // d
}

// Parse parses a duration literal. A literal is one or more
// <integer><unit> segments, optionally separated by whitespace, where
// the unit is one of ns, us, ms, s, m, h or d. The bare literal "0" is
// the zero duration.
func Parse(s string) (time.Duration, error) {
	input := strings.TrimSpace(s)
	if input == "" {
		return 0, human.ErrEmptyInput
	}
	if input == "0" {
		return 0, nil
	}

	var total uint64
	bs := input
	for len(bs) > 0 {
		v, rest, err := readInt(bs)
		if err != nil {
			return 0, err
		}
		unit, rest, err := readUnit(rest)
		if err != nil {
			return 0, err
		}
		bs = rest

		scale, err := unitNanos(unit)
		if err != nil {
			return 0, err
		}

		n, ok := checked.Mul(v, scale)
		if !ok {
			return 0, human.ErrOverflow
		}
		if total, ok = checked.Add(total, n); !ok {
			return 0, human.ErrOverflow
		}
	}

	// time.Duration counts int64 nanoseconds.
	if total > math.MaxInt64 {
		return 0, human.ErrOverflow
	}
	return time.Duration(total), nil
}

// readInt consumes leading digits with checked accumulation.
func readInt(s string) (uint64, string, error) {
	var v uint64
	i := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		var ok bool
		if v, ok = checked.Mul(v, 10); !ok {
			return 0, "", human.ErrOverflow
		}
		if v, ok = checked.Add(v, uint64(s[i]-'0')); !ok {
			return 0, "", human.ErrOverflow
		}
		i++
	}
	if i == 0 {
		return 0, "", human.ErrMissingValue
	}
	return v, s[i:], nil
}

// readUnit consumes up to the next digit. Whitespace around the unit
// token belongs to the segment separator and is dropped.
func readUnit(s string) (string, string, error) {
	i := 0
	for i < len(s) && ('0' > s[i] || s[i] > '9') {
		i++
	}
	if i == 0 {
		return "", "", human.ErrMissingUnit
	}
	return strings.TrimSpace(s[:i]), s[i:], nil
}

func unitNanos(unit string) (uint64, error) {
	switch unit {
	case "ns":
		return nanos[0], nil
	case "us":
		return nanos[1], nil
	case "ms":
		return nanos[2], nil
	case "s":
		return nanos[3], nil
	case "m":
		return nanos[4], nil
	case "h":
		return nanos[5], nil
	case "d":
		return nanos[6], nil
	default:
		return 0, human.ErrInvalidUnit
	}
}
