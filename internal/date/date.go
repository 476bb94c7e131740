// Package date implements the day/month[/year] dates used by entry files and
// the civil-calendar arithmetic needed to expand and project them.
package date

import (
	"fmt"
	"time"
)

// Date is a calendar day that may or may not carry a year.
// A Date without a year is recurring: it applies every year.
type Date struct {
	Day     int
	Month   int
	Year    int
	HasYear bool
}

// New returns a recurring date.
func New(day, month int) Date {
	return Date{Day: day, Month: month}
}

// NewFixed returns a date anchored to a year.
func NewFixed(day, month, year int) Date {
	return Date{Day: day, Month: month, Year: year, HasYear: true}
}

// FromTime returns the fixed date of t in its own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return NewFixed(d, int(m), y)
}

// Recurring reports whether d applies every year.
func (d Date) Recurring() bool {
	return !d.HasYear
}

// In returns d anchored to year.
func (d Date) In(year int) Date {
	return NewFixed(d.Day, d.Month, year)
}

// String formats d as DD/MM or DD/MM/YYYY.
func (d Date) String() string {
	if !d.HasYear {
		return fmt.Sprintf("%02d/%02d", d.Day, d.Month)
	}
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

// Compare orders dates by year, month and day. Years only take part when
// both dates carry one.
func (d Date) Compare(o Date) int {
	if d.HasYear && o.HasYear && d.Year != o.Year {
		return cmpInt(d.Year, o.Year)
	}
	if d.Month != o.Month {
		return cmpInt(d.Month, o.Month)
	}
	return cmpInt(d.Day, o.Day)
}

// Before reports whether d sorts strictly before o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// Next returns the following day. Months roll over after their last day,
// taking leap years into account; recurring dates treat February as 29 days
// long.
func (d Date) Next() Date {
	next := d
	next.Day++
	if next.Day > DaysIn(next.Month, next.Year, next.HasYear) {
		next.Day = 1
		next.Month++
	}
	if next.Month > 12 {
		next.Day = 1
		next.Month = 1
		if next.HasYear {
			next.Year++
		}
	}
	return next
}

// NextMatch returns the first fixed date on or after today that shares d's
// day and month. 29/02 maps to 28/02 when the matching year is not a leap
// year.
func (d Date) NextMatch(today Date) Date {
	next := d.In(today.Year)
	if next.Before(today) {
		next.Year++
	}
	if next.Month == 2 && next.Day == 29 && !IsLeap(next.Year) {
		next.Day = 28
	}
	return next
}

// Time converts a fixed date to midnight in loc. Out-of-range days are
// normalised the way time.Date does.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

// DaysBetween returns the number of days from a to b. Both must be fixed.
// It works on Unix seconds since time.Duration cannot span ~292 years.
func DaysBetween(a, b Date) int {
	const secondsPerDay = 24 * 60 * 60
	return int((b.Time(time.UTC).Unix() - a.Time(time.UTC).Unix()) / secondsPerDay)
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	switch {
	case year%400 == 0:
		return true
	case year%100 == 0:
		return false
	default:
		return year%4 == 0
	}
}

// DaysIn returns the length of month. Without a year February has 29 days.
func DaysIn(month, year int, hasYear bool) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if !hasYear || IsLeap(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
