// Package human defines the shared error taxonomy for the literal
// parsers in this module: byte sizes (bytesize), elapsed-time
// durations (duration) and RFC3339 timestamps (rfc3339).
//
// Every parser reports failure as one of the ParseError kinds below
// and nothing else. The kinds carry no payload; callers that need the
// offending text must keep the original input themselves.
package human

// ParseError identifies why a literal could not be parsed.
// It is a closed set: the parsers never return any other error type.
// Values are comparable, so errors.Is and plain == both work.
type ParseError int

const (
	// ErrEmptyInput means the input was blank after trimming.
	ErrEmptyInput ParseError = iota + 1

	// ErrTooShort means a timestamp was shorter than any accepted shape.
	ErrTooShort

	// ErrTooLong means a timestamp was longer than any accepted shape.
	ErrTooLong

	// ErrMalformed means a structural character (date dash, time colon,
	// separator) was not where the grammar requires it.
	ErrMalformed

	// ErrMissingValue means a required numeric field had no digits.
	ErrMissingValue

	// ErrInvalidValue means a numeric field contained a non-digit byte.
	ErrInvalidValue

	// ErrMissingUnit means a numeric value was not followed by a unit.
	ErrMissingUnit

	// ErrInvalidUnit means the unit token is not one the parser knows.
	ErrInvalidUnit

	// ErrDuplicateUnit means the same unit appeared more than once.
	ErrDuplicateUnit

	// ErrInvalidTimezone means the zone suffix of a timestamp did not
	// match the accepted offset grammar.
	ErrInvalidTimezone

	// ErrOverflow means the value does not fit the target range: a
	// checked multiplication or addition overflowed, or a civil tuple
	// failed calendar validation or left [year 0, year 10000).
	ErrOverflow
)

func (e ParseError) Error() string {
	switch e {
	case ErrEmptyInput:
		return "empty input"
	case ErrTooShort:
		return "input too short"
	case ErrTooLong:
		return "input too long"
	case ErrMalformed:
		return "malformed input"
	case ErrMissingValue:
		return "missing value"
	case ErrInvalidValue:
		return "invalid value"
	case ErrMissingUnit:
		return "missing unit"
	case ErrInvalidUnit:
		return "invalid unit"
	case ErrDuplicateUnit:
		return "duplicate unit"
	case ErrInvalidTimezone:
		return "invalid timezone"
	case ErrOverflow:
		return "value overflow"
	default:
		return "unknown parse error"
	}
}
