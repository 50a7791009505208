// Package flagval adapts the literal parsers to the pflag.Value
// interface so byte sizes, durations and timestamps can be used
// directly as cobra and pflag flag types.
package flagval

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/ngrash/go-human/bytesize"
	"github.com/ngrash/go-human/duration"
	"github.com/ngrash/go-human/rfc3339"
)

// Bytes is a byte-size flag. It accepts any literal bytesize.Parse
// accepts and renders as the plain byte count.
type Bytes bytesize.Bytes

var _ pflag.Value = (*Bytes)(nil)

func (v *Bytes) Set(s string) error {
	b, err := bytesize.Parse(s)
	if err != nil {
		return fmt.Errorf("parsing byte size %q: %w", s, err)
	}
	*v = Bytes(b)
	return nil
}

func (v *Bytes) String() string {
	return strconv.FormatUint(uint64(*v), 10)
}

func (v *Bytes) Type() string {
	return "bytesize"
}

// Duration is an elapsed-time flag. It accepts any literal
// duration.Parse accepts, including multi-segment forms like "1h30m"
// and the day unit, which the stdlib flag.Duration does not.
type Duration time.Duration

var _ pflag.Value = (*Duration)(nil)

func (v *Duration) Set(s string) error {
	d, err := duration.Parse(s)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", s, err)
	}
	*v = Duration(d)
	return nil
}

func (v *Duration) String() string {
	return time.Duration(*v).String()
}

func (v *Duration) Type() string {
	return "duration"
}

// Time is an RFC3339 timestamp flag. The flag's string form is the
// literal it was set from.
type Time struct {
	Time rfc3339.Time

	text string
}

var _ pflag.Value = (*Time)(nil)

func (v *Time) Set(s string) error {
	t, err := rfc3339.Parse(s)
	if err != nil {
		return fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	v.Time = t
	v.text = strings.TrimSpace(s)
	return nil
}

func (v *Time) String() string {
	return v.text
}

func (v *Time) Type() string {
	return "rfc3339"
}
