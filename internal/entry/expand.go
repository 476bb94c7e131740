package entry

import (
	"github.com/Tiliavir/rce/internal/date"
	"github.com/Tiliavir/rce/internal/model"
)

// MaxSpanDays bounds how many days one holiday span may cover.
const MaxSpanDays = 3660

// Options tunes expansion.
type Options struct {
	NameStyle model.NameStyle
}

// Expand converts an entry into its events, in date-field order for people
// and ascending date order for holiday spans.
func Expand(e model.Entry, opts Options) ([]model.Event, error) {
	switch e := e.(type) {
	case *model.Person:
		return expandPerson(e, opts), nil
	case *model.Holiday:
		return expandHoliday(e)
	case *model.Special:
		return []model.Event{{Kind: model.SpecialDay, Name: e.Name, Date: e.Date}}, nil
	default:
		return nil, errorf(UnknownEntryKind, "%T", e)
	}
}

func expandPerson(p *model.Person, opts Options) []model.Event {
	name := p.DisplayName(opts.NameStyle)
	var events []model.Event
	add := func(kind model.Kind, d *date.Date) {
		if d != nil {
			events = append(events, model.Event{Kind: kind, Name: name, Date: *d})
		}
	}
	add(model.Birthday, p.Birthday)
	add(model.SaintDay, p.SaintDay)
	add(model.Wedding, p.WeddingDay)
	return events
}

func expandHoliday(h *model.Holiday) ([]model.Event, error) {
	if h.End == nil {
		return []model.Event{{Kind: model.HolidayDay, Name: h.Name, Date: h.Begin}}, nil
	}
	if !h.Begin.HasYear || !h.End.HasYear {
		return nil, errorf(MissingYear, "holiday spans need a year on both dates")
	}
	if h.End.Before(h.Begin) {
		return nil, errorf(InvalidRange, "end %s precedes begin %s", h.End, h.Begin)
	}

	total := date.DaysBetween(h.Begin, *h.End) + 1
	if total > MaxSpanDays {
		return nil, errorf(InvalidRange, "span %s to %s covers %d days, more than %d", h.Begin, h.End, total, MaxSpanDays)
	}

	events := make([]model.Event, 0, max(total, 1))
	for d := h.Begin; !h.End.Before(d); d = d.Next() {
		events = append(events, model.Event{
			Kind:    model.HolidayDay,
			Name:    h.Name,
			Date:    d,
			SpanDay: len(events) + 1,
		})
	}
	// Out-of-range days such as 30/02 step differently from the calendar
	// count, so the length is taken from the walk.
	for i := range events {
		events[i].SpanDays = len(events)
	}
	return events, nil
}
