package model

import "github.com/Tiliavir/rce/internal/date"

// Kind classifies an event.
type Kind int

const (
	Birthday Kind = iota
	SaintDay
	Wedding
	HolidayDay
	SpecialDay
)

// Kinds lists every kind in display order.
var Kinds = []Kind{Birthday, SaintDay, Wedding, HolidayDay, SpecialDay}

// String returns the entry field name, used as the label suffix of person
// events.
func (k Kind) String() string {
	switch k {
	case Birthday:
		return "birthday"
	case SaintDay:
		return "saint_day"
	case Wedding:
		return "wedding_day"
	case HolidayDay:
		return "holiday"
	case SpecialDay:
		return "special"
	default:
		return "unknown"
	}
}

// Title returns the human-readable name of the kind.
func (k Kind) Title() string {
	switch k {
	case SaintDay:
		return "saint day"
	case Wedding:
		return "wedding anniversary"
	default:
		return k.String()
	}
}

// Event is one concrete day produced from an entry.
type Event struct {
	Kind Kind
	Name string
	Date date.Date

	// SpanDay and SpanDays locate the event inside a holiday span
	// (1-based position and span length). Both are zero outside spans.
	SpanDay  int
	SpanDays int
}

// Label returns e.g. "Santa CLAUS birthday" for person events and the bare
// name for holidays and special days.
func (e Event) Label() string {
	switch e.Kind {
	case Birthday, SaintDay, Wedding:
		return e.Name + " " + e.Kind.String()
	default:
		return e.Name
	}
}

// Remaining returns how many days of the span follow e.
func (e Event) Remaining() int {
	if e.SpanDays == 0 {
		return 0
	}
	return e.SpanDays - e.SpanDay
}
