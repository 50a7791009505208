// Package bytesize parses byte-size literals such as "64 KiB" or
// "10GB" into exact byte counts. Binary units (KiB, MiB, ...) scale by
// powers of 1024 and decimal units (KB, MB, ...) by powers of 1000.
// Multiplication is checked; a literal that does not fit in 64 bits is
// an error, never a wrapped value.
package bytesize

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/ngrash/go-human"
	"github.com/ngrash/go-human/internal/checked"
)

// Unit is a byte-size unit.
type Unit int

const (
	// Byte is a single byte.
	Byte Unit = iota
	// KiB is 1024 bytes.
	KiB
	// MiB is 1024 KiB.
	MiB
	// GiB is 1024 MiB.
	GiB
	// TiB is 1024 GiB.
	TiB
	// PiB is 1024 TiB.
	PiB
	// EiB is 1024 PiB.
	EiB
	// KB is 1000 bytes.
	KB
	// MB is 1000 KB.
	MB
	// GB is 1000 MB.
	GB
	// TB is 1000 GB.
	TB
	// PB is 1000 TB.
	PB
	// EB is 1000 PB.
	EB
)

// Size returns the number of bytes in one of the unit.
func (u Unit) Size() uint64 {
	switch u {
	case Byte:
		return 1
	case KiB:
		return 1 << 10
	case MiB:
		return 1 << 20
	case GiB:
		return 1 << 30
	case TiB:
		return 1 << 40
	case PiB:
		return 1 << 50
	case EiB:
		return 1 << 60
	case KB:
		return 1e3
	case MB:
		return 1e6
	case GB:
		return 1e9
	case TB:
		return 1e12
	case PB:
		return 1e15
	case EB:
		return 1e18
	default:
		return 0
	}
}

func (u Unit) String() string {
	switch u {
	case Byte:
		return "B"
	case KiB:
		return "KiB"
	case MiB:
		return "MiB"
	case GiB:
		return "GiB"
	case TiB:
		return "TiB"
	case PiB:
		return "PiB"
	case EiB:
		return "EiB"
	case KB:
		return "KB"
	case MB:
		return "MB"
	case GB:
		return "GB"
	case TB:
		return "TB"
	case PB:
		return "PB"
	case EB:
		return "EB"
	default:
		return "<invalid unit>"
	}
}

// ParseUnit parses a unit token. Matching is case-insensitive and the
// trailing "b" is optional, so "ki", "Ki", "kib" and "KiB" all mean
// KiB. The empty token means Byte.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(s) {
	case "", "b":
		return Byte, nil
	case "ki", "kib":
		return KiB, nil
	case "mi", "mib":
		return MiB, nil
	case "gi", "gib":
		return GiB, nil
	case "ti", "tib":
		return TiB, nil
	case "pi", "pib":
		return PiB, nil
	case "ei", "eib":
		return EiB, nil
	case "k", "kb":
		return KB, nil
	case "m", "mb":
		return MB, nil
	case "g", "gb":
		return GB, nil
	case "t", "tb":
		return TB, nil
	case "p", "pb":
		return PB, nil
	case "e", "eb":
		return EB, nil
	default:
		return 0, human.ErrInvalidUnit
	}
}

// Bytes is a size in bytes.
type Bytes uint64

// New returns value scaled by unit. The only possible error is
// human.ErrOverflow when the product does not fit in 64 bits.
func New(value uint64, unit Unit) (Bytes, error) {
	size, ok := checked.Mul(value, unit.Size())
	if !ok {
		return 0, human.ErrOverflow
	}
	return Bytes(size), nil
}

// Parse parses a byte-size literal: a non-negative integer, optional
// whitespace, and an optional unit token.
func Parse(s string) (Bytes, error) {
	input := strings.TrimSpace(s)
	if input == "" {
		return 0, human.ErrEmptyInput
	}

	// The value runs up to the first letter or space. Fractional and
	// negative values are not integers and fail as invalid values.
	unitIndex := strings.IndexFunc(input, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsSpace(r)
	})
	if unitIndex == 0 {
		return 0, human.ErrMissingValue
	}
	if unitIndex < 0 {
		unitIndex = len(input)
	}

	unit, err := ParseUnit(strings.TrimSpace(input[unitIndex:]))
	if err != nil {
		return 0, err
	}
	// ParseUint rejects a leading plus sign; a single one is allowed.
	vstr := strings.TrimPrefix(input[:unitIndex], "+")
	value, err := strconv.ParseUint(vstr, 10, 64)
	if err != nil {
		return 0, human.ErrInvalidValue
	}

	return New(value, unit)
}
