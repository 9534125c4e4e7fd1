// Package date handles calendar days, as written in ledger files.
package date

import (
	"encoding/json"
	"flag"
	"fmt"
	"time"
)

const readFormat = "2006-1-2" // lenient: single-digit month and day are accepted.

// Format is the ISO-8601 layout dates are written with.
const Format = "2006-01-02"

// Date is a calendar day. The zero value is not a valid day, see IsZero.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns the canonical instant of the day: midnight UTC.
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns the normalized Date, so New(2025, 1, 32) is February 1st.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date in the local time zone.
func Today() Date { return New(time.Now().Date()) }

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }
func (d Date) IsZero() bool      { return d == Date{} }

// String formats the date as "2006-01-02".
func (d Date) String() string { return d.time().Format(Format) }

// Parse parses a date. It accepts "2025-7-1" as well as "2025-07-01".
func Parse(s string) (Date, error) {
	on, err := time.Parse(readFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", s, Format, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Set parses s into d, so that a *Date can be used as a command line flag.
func (d *Date) Set(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return d.Set(s)
}

func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

var (
	_ flag.Value       = (*Date)(nil)
	_ json.Marshaler   = Date{}
	_ json.Unmarshaler = (*Date)(nil)
)
