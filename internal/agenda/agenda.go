// Package agenda places expanded events on concrete upcoming days.
package agenda

import (
	"fmt"
	"sort"
	"time"

	"github.com/Tiliavir/rce/internal/date"
	"github.com/Tiliavir/rce/internal/model"
)

// Clock abstracts time.Now() so projections can be tested deterministically.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the clock's current day.
func Today(c Clock) date.Date {
	return date.FromTime(c.Now())
}

// Occurrence is an event placed on a fixed day.
type Occurrence struct {
	Event model.Event
	On    date.Date

	// Years is the age (birthdays) or anniversary (weddings) reached On.
	// It is only meaningful when HasYears is set.
	Years    int
	HasYears bool
}

// Description returns the event name with its age, anniversary or
// remaining span days, e.g. "Santa (age 40)".
func (o Occurrence) Description() string {
	e := o.Event
	switch {
	case e.Kind == model.Birthday && o.HasYears:
		return fmt.Sprintf("%s (age %d)", e.Name, o.Years)
	case e.Kind == model.Wedding && o.HasYears:
		return fmt.Sprintf("%s (year %d)", e.Name, o.Years)
	case e.SpanDays > 0:
		return fmt.Sprintf("%s (%d days remaining)", e.Name, e.Remaining())
	default:
		return e.Name
	}
}

// Project places every event relative to today and returns the result in
// chronological order. Recurring dates land on their next match; birthdays
// and weddings with a year are projected too and carry their year count.
// Dated holidays and special days keep their own date, even if past.
func Project(events []model.Event, today date.Date) []Occurrence {
	out := make([]Occurrence, 0, len(events))
	for _, e := range events {
		out = append(out, project(e, today))
	}
	Sort(out)
	return out
}

func project(e model.Event, today date.Date) Occurrence {
	o := Occurrence{Event: e, On: e.Date}
	switch {
	case e.Date.Recurring():
		o.On = e.Date.NextMatch(today)
	case e.Kind == model.Birthday || e.Kind == model.Wedding:
		o.On = e.Date.NextMatch(today)
		o.Years = o.On.Year - e.Date.Year
		o.HasYears = true
	}
	return o
}

// Sort orders occurrences by day, then kind, then label.
func Sort(occs []Occurrence) {
	sort.SliceStable(occs, func(i, j int) bool {
		a, b := occs[i], occs[j]
		if c := a.On.Compare(b.On); c != 0 {
			return c < 0
		}
		if a.Event.Kind != b.Event.Kind {
			return a.Event.Kind < b.Event.Kind
		}
		return a.Event.Label() < b.Event.Label()
	})
}

// Upcoming keeps the occurrences from today through today+days inclusive.
// A negative days keeps everything from today on.
func Upcoming(occs []Occurrence, today date.Date, days int) []Occurrence {
	var out []Occurrence
	for _, o := range occs {
		until := DaysUntil(today, o.On)
		if until < 0 || (days >= 0 && until > days) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// NextByKind returns, for every kind, the occurrences on the earliest
// upcoming day. Kinds without upcoming occurrences are absent.
func NextByKind(occs []Occurrence, today date.Date) map[model.Kind][]Occurrence {
	next := map[model.Kind][]Occurrence{}
	for _, o := range occs {
		if o.On.Before(today) {
			continue
		}
		current := next[o.Event.Kind]
		switch {
		case len(current) == 0 || o.On.Before(current[0].On):
			next[o.Event.Kind] = []Occurrence{o}
		case o.On.Compare(current[0].On) == 0:
			next[o.Event.Kind] = append(current, o)
		}
	}
	return next
}

// DaysUntil returns the number of days from today to on.
func DaysUntil(today, on date.Date) int {
	return date.DaysBetween(today, on)
}

// FormatCountdown formats a day distance as "Today!", "in 1 day" or
// "in N days".
func FormatCountdown(days int) string {
	switch {
	case days == 0:
		return "Today!"
	case days == 1:
		return "in 1 day"
	case days < 0:
		return fmt.Sprintf("%d days ago", -days)
	default:
		return fmt.Sprintf("in %d days", days)
	}
}
