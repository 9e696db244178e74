// Package w3c parses and formats the W3C date-time profile used by the
// sitemap lastmod element (https://www.w3.org/TR/NOTE-datetime).
//
// A [DateTime] is either a bare calendar date or an instant with a fixed UTC
// offset. Instants remember whether they were written with whole seconds or
// with a fractional part, so [DateTime.String] redisplays them at the same
// precision they were parsed with.
package w3c

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalid is matched by every error returned from [Parse].
var ErrInvalid = errors.New("invalid w3c date-time")

const (
	dateLayout    = "2006-01-02"
	secondsLayout = "2006-01-02T15:04:05Z07:00"
	millisLayout  = "2006-01-02T15:04:05.000Z07:00"
)

// Kind distinguishes the two shapes a DateTime can take.
type Kind int

const (
	Date    Kind = iota + 1 // YYYY-MM-DD
	Instant                 // full date-time with offset
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Date:
		return "date"
	case Instant:
		return "instant"
	default:
		return "invalid"
	}
}

// Precision records the granularity an Instant was written with.
type Precision int

const (
	Seconds Precision = iota // no fractional part
	Millis                   // fractional seconds, redisplayed with three digits
)

// String returns the precision name.
func (p Precision) String() string {
	if p == Millis {
		return "millis"
	}
	return "seconds"
}

// ParseError reports input that is neither a calendar date nor an offset
// date-time.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %q", ErrInvalid, e.Input)
	}
	return fmt.Sprintf("%s: %q: %v", ErrInvalid, e.Input, e.Err)
}

// Unwrap returns ErrInvalid and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalid}
	}
	return []error{ErrInvalid, e.Err}
}

// DateTime is an immutable W3C date-time value. The zero value is not a valid
// date-time; see [DateTime.IsZero].
type DateTime struct {
	kind Kind
	prec Precision
	t    time.Time
}

// NewDate returns a calendar date.
func NewDate(year int, month time.Month, day int) DateTime {
	return DateTime{kind: Date, t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// NewInstant returns an instant that keeps t's location offset and formats at
// precision p.
func NewInstant(t time.Time, p Precision) DateTime {
	return DateTime{kind: Instant, prec: p, t: t}
}

// Parse parses s as a W3C date-time. A ten character input must be a
// YYYY-MM-DD calendar date; anything else must be an RFC 3339 date-time with
// an explicit offset and an optional fractional second.
func Parse(s string) (DateTime, error) {
	if len(s) == len(dateLayout) {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return DateTime{}, &ParseError{Input: s, Err: err}
		}
		return DateTime{kind: Date, t: t}, nil
	}

	digits, err := checkShape(s)
	if err != nil {
		return DateTime{}, &ParseError{Input: s, Err: err}
	}
	// The shape is fixed-width by now; time.Parse only validates calendar
	// and clock ranges. time.RFC3339 accepts the fraction without naming it.
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return DateTime{}, &ParseError{Input: s, Err: err}
	}
	prec := Seconds
	if digits > 0 {
		prec = Millis
	}
	return DateTime{kind: Instant, prec: prec, t: t}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) DateTime {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// checkShape verifies the fixed-width layout
// YYYY-MM-DDThh:mm:ss[.f+](Z|±hh:mm) and returns the number of fraction
// digits. time.Parse alone accepts one-digit clock fields and a comma
// separator, which the W3C profile does not.
func checkShape(s string) (int, error) {
	const secondsEnd = len("2006-01-02T15:04:05")
	if len(s) < secondsEnd+1 {
		return 0, errShape
	}
	for i := 0; i < secondsEnd; i++ {
		switch i {
		case 4, 7:
			if s[i] != '-' {
				return 0, errShape
			}
		case 10:
			if s[i] != 'T' {
				return 0, errShape
			}
		case 13, 16:
			if s[i] != ':' {
				return 0, errShape
			}
		default:
			if !isDigit(s[i]) {
				return 0, errShape
			}
		}
	}

	rest := s[secondsEnd:]
	digits := 0
	if rest[0] == '.' {
		for digits+1 < len(rest) && isDigit(rest[digits+1]) {
			digits++
		}
		if digits == 0 {
			return 0, errShape
		}
		rest = rest[digits+1:]
	}

	switch {
	case rest == "Z":
	case len(rest) == len("+00:00") && (rest[0] == '+' || rest[0] == '-') &&
		isDigit(rest[1]) && isDigit(rest[2]) && rest[3] == ':' && isDigit(rest[4]) && isDigit(rest[5]):
	default:
		return 0, errShape
	}
	return digits, nil
}

var errShape = errors.New("expected YYYY-MM-DDThh:mm:ss[.sss](Z|+hh:mm)")

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// Kind returns Date or Instant, or zero for the zero value.
func (d DateTime) Kind() Kind { return d.kind }

// Precision returns the precision an Instant was parsed with. Dates report
// Seconds.
func (d DateTime) Precision() Precision { return d.prec }

// Time returns the underlying time. Dates are midnight UTC.
func (d DateTime) Time() time.Time { return d.t }

// IsZero reports whether d was not produced by a constructor or Parse.
func (d DateTime) IsZero() bool { return d.kind == 0 }

// String formats d in the shape and precision it was created with. The zero
// value formats as the empty string.
func (d DateTime) String() string {
	switch d.kind {
	case Date:
		return d.t.Format(dateLayout)
	case Instant:
		if d.prec == Millis {
			return d.t.Format(millisLayout)
		}
		return d.t.Format(secondsLayout)
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d DateTime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DateTime) UnmarshalText(text []byte) error {
	v, err := Parse(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
