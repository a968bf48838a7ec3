// Package types implements value types shared by the expense tracker.
package types

import (
	"fmt"
	"strings"
	"time"
)

// Month is a calendar month in a specific year and location.
type Month time.Time

// NewMonth returns the month in UTC.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, t.Location()))
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it
// represents in loc. A nil loc means UTC.
func ParseMonth(s string, loc *time.Location) (Month, error) {
	if loc == nil {
		loc = time.UTC
	}

	t, err := time.ParseInLocation("2006-01", s, loc)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// Label returns the month formatted for display, e.g. "Jan 2024".
func (m Month) Label() string {
	return time.Time(m).Format("Jan 2006")
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the result of m.String().
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The month is expected to be a "YYYY-MM" string.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	month, err := ParseMonth(value, time.UTC)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Start returns the first instant of the month.
func (m Month) Start() time.Time {
	return time.Time(m)
}

// End returns the last instant of the month.
func (m Month) End() time.Time {
	return time.Time(m.AddDate(0, 1)).Add(-time.Nanosecond)
}

// Contains reports whether the time instant is in the month. t is compared in
// the month's location.
func (m Month) Contains(t time.Time) bool {
	t = t.In(time.Time(m).Location())
	return !t.Before(m.Start()) && !t.After(m.End())
}
