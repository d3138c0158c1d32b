// Package month provides a calendar-month value type and range helpers.
// The reporting granularity of the whole system is one month; every cache
// key, count, and table column is addressed by a Month.
package month

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mrdmnd/unicycle/pkg/errors"
)

// Layout is the canonical textual form of a Month, e.g. "2018-01".
const Layout = "2006-01"

var upper = cases.Upper(language.English)

// Month is a single calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// New returns the Month for the given year and month.
func New(year int, m time.Month) Month {
	return Month{Year: year, Month: m}
}

// Parse parses a Month from its canonical "2006-01" form.
func Parse(s string) (Month, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: month %q (want YYYY-MM)", errors.ErrInvalidInput, s)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// Range returns every month from start through end, inclusive.
// An end before start yields an empty range.
func Range(start, end Month) []Month {
	var out []Month
	for m := start; !m.After(end); m = m.Next() {
		out = append(out, m)
	}
	return out
}

// Time returns the first instant of the month in UTC.
func (m Month) Time() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Next returns the following month.
func (m Month) Next() Month {
	t := m.Time().AddDate(0, 1, 0)
	return Month{Year: t.Year(), Month: t.Month()}
}

// After reports whether m is strictly after other.
func (m Month) After(other Month) bool {
	if m.Year != other.Year {
		return m.Year > other.Year
	}
	return m.Month > other.Month
}

// Before reports whether m is strictly before other.
func (m Month) Before(other Month) bool {
	return other.After(m)
}

// Label returns the table column label for the month: the uppercased
// 3-letter month abbreviation plus the 2-digit year, e.g. "JAN18".
func (m Month) Label() string {
	t := m.Time()
	return upper.String(t.Format("Jan")) + t.Format("06")
}

// String returns the canonical "2006-01" form.
func (m Month) String() string {
	return m.Time().Format(Layout)
}
