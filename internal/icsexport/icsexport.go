// Package icsexport renders projected events as an iCalendar feed.
package icsexport

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"github.com/Tiliavir/rce/internal/agenda"
	"github.com/Tiliavir/rce/internal/date"
	"github.com/Tiliavir/rce/internal/model"
)

const (
	prodID   = "-//Tiliavir//rce//EN"
	uidHost  = "rce.local"
	propName = "X-WR-CALNAME"
)

var uidNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte(uidHost))

// emptyCalendar is written when there is nothing to export so clients still
// receive a valid VCALENDAR.
const emptyCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + prodID + "\r\nEND:VCALENDAR\r\n"

// Options controls the generated calendar.
type Options struct {
	CalendarName string
	// Reminder is an ISO-8601 duration trigger, e.g. "-P1D". Empty means no alarm.
	Reminder string
	// Now stamps DTSTAMP.
	Now time.Time
}

// Write encodes occs as a VCALENDAR. Yearly events (recurring dates,
// birthdays and weddings) carry RRULE:FREQ=YEARLY; everything else is a
// single all-day event.
func Write(w io.Writer, occs []agenda.Occurrence, opts Options) error {
	if len(occs) == 0 {
		_, err := io.WriteString(w, emptyCalendar)
		return err
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, prodID)
	if opts.CalendarName != "" {
		cal.Props.SetText(propName, opts.CalendarName)
	}

	stamp := ical.NewProp(ical.PropDateTimeStamp)
	stamp.SetDateTime(opts.Now.UTC())

	for _, o := range occs {
		ev := newEvent(o, opts.Reminder)
		ev.Props.Set(stamp)
		cal.Children = append(cal.Children, ev.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return fmt.Errorf("encoding calendar: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func newEvent(o agenda.Occurrence, reminder string) *ical.Event {
	e := o.Event
	yearly := Yearly(e)

	start := o.On
	summary := o.Description()
	if yearly {
		summary = e.Label()
		start = yearlyStart(o)
	}

	ev := ical.NewEvent()
	ev.Props.SetText(ical.PropUID, UID(e))
	ev.Props.SetText(ical.PropSummary, summary)
	ev.Props.SetText(ical.PropCategories, e.Kind.Title())

	dtStart := ical.NewProp(ical.PropDateTimeStart)
	dtStart.SetDate(start.Time(time.UTC))
	ev.Props.Set(dtStart)

	if yearly {
		ev.Props.SetRecurrenceRule(&rrule.ROption{Freq: rrule.YEARLY})
	}
	if reminder != "" {
		addAlarm(ev, reminder, summary)
	}
	return ev
}

// yearlyStart anchors a yearly rule. Dated events start on their own date;
// a recurring 29/02 starts on the next leap day so the rule never lands on
// 28/02.
func yearlyStart(o agenda.Occurrence) date.Date {
	d := o.Event.Date
	switch {
	case d.HasYear:
		return d
	case d.Month == 2 && d.Day == 29:
		year := o.On.Year
		for !date.IsLeap(year) {
			year++
		}
		return d.In(year)
	default:
		return o.On
	}
}

// Yearly reports whether e repeats every year in the calendar.
func Yearly(e model.Event) bool {
	return e.Date.Recurring() || e.Kind == model.Birthday || e.Kind == model.Wedding
}

// UID derives a stable identifier from the event's kind, label and date, so
// re-exports update rather than duplicate calendar entries.
func UID(e model.Event) string {
	key := fmt.Sprintf("%d|%s|%s", e.Kind, e.Label(), e.Date)
	return uuid.NewSHA1(uidNamespace, []byte(key)).String() + "@" + uidHost
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(ev *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(ical.CompAlarm)
	alarm.Props.SetText(ical.PropAction, "DISPLAY")
	alarm.Props.SetText(ical.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(ical.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	ev.Children = append(ev.Children, alarm)
}
