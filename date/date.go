// Package date implements a calendar date with day granularity, as used in
// every omnifolio data file.
package date

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Format is the only accepted textual representation of a date (ISO-8601).
const Format = "2006-01-02"

// ErrParse is matched by every error returned by Parse.
var ErrParse = errors.New("invalid date")

// ParseError reports a string that is not a strict ISO-8601 date.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid date %q want format %q: %s", e.Input, Format, e.Reason)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.Compare(x) < 0 }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.Compare(x) > 0 }

// Compare returns -1, 0 or +1 depending on d being before, equal or after x.
// For years 0 to 9999 it agrees with the lexical order of String().
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// String format the date in its canonical format.
func (d Date) String() string { return d.time().Format(Format) }

// Parse parses a Date from a string.
//
// Unlike time.Parse it is strict: the string must be exactly 10 characters
// long, in the form YYYY-MM-DD with only digits in the numeric components,
// and name an existing calendar day.
func Parse(str string) (Date, error) {
	if len(str) != len(Format) {
		return Date{}, &ParseError{str, fmt.Sprintf("length is %d, want %d", len(str), len(Format))}
	}
	for i := 0; i < len(str); i++ {
		c := str[i]
		switch i {
		case 4, 7:
			if c != '-' {
				return Date{}, &ParseError{str, fmt.Sprintf("expected '-' at position %d", i+1)}
			}
		default:
			if c < '0' || c > '9' {
				return Date{}, &ParseError{str, fmt.Sprintf("expected a digit at position %d", i+1)}
			}
		}
	}
	on, err := time.Parse(Format, str)
	if err != nil {
		// digits are in place, so the day does not exist (e.g. 2023-02-30)
		return Date{}, &ParseError{str, "not a calendar day"}
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	on, err := Parse(str)
	if err != nil {
		return err
	}
	*d = on
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
