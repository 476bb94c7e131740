// Package entry turns entry-file lines into typed entries and expands those
// entries into dated events.
package entry

import (
	"github.com/Tiliavir/rce/internal/date"
	"github.com/Tiliavir/rce/internal/model"
)

type parser struct {
	maxSlots int
	parse    func(*Line) (model.Entry, error)
}

var parsers = map[string]parser{
	"person":  {maxSlots: 4, parse: parsePerson},
	"holiday": {maxSlots: 3, parse: parseHoliday},
	"special": {maxSlots: 2, parse: parseSpecial},
}

// ParseLine tokenizes and parses one raw line. Blank and comment lines
// return a nil entry and no error.
func ParseLine(raw string) (model.Entry, error) {
	line, err := Tokenize(raw)
	if err != nil || line == nil {
		return nil, err
	}
	return Parse(line)
}

// Parse dispatches a tokenized line on its keyword.
func Parse(line *Line) (model.Entry, error) {
	p, ok := parsers[line.Keyword]
	if !ok {
		return nil, errorf(UnknownEntryKind, "%q", line.Keyword)
	}
	for i := p.maxSlots; i < len(line.Slots); i++ {
		if !line.Slots[i].Empty() {
			return nil, errorf(TooManyFields, "%s takes at most %d slots", line.Keyword, p.maxSlots)
		}
	}
	return p.parse(line)
}

// person = first, last, nickname ; birthday ; saint day ; wedding day
func parsePerson(line *Line) (model.Entry, error) {
	names := line.Slot(0).Fields
	if len(names) > 3 {
		return nil, errorf(TooManyFields, "name takes first, last, nickname")
	}
	var p model.Person
	p.FirstName = optional(names, 0)
	p.LastName = optional(names, 1)
	p.Nickname = optional(names, 2)
	if p.FirstName == nil && p.Nickname == nil {
		return nil, errorf(MissingRequiredField, "first name or nickname is required")
	}

	var err error
	if p.Birthday, err = optionalDate(line.Slot(1), ParseDate); err != nil {
		return nil, err
	}
	if p.SaintDay, err = optionalDate(line.Slot(2), parseRecurring); err != nil {
		return nil, err
	}
	if p.WeddingDay, err = optionalDate(line.Slot(3), ParseDate); err != nil {
		return nil, err
	}
	return &p, nil
}

// holiday = name ; begin [; end]
func parseHoliday(line *Line) (model.Entry, error) {
	name := line.Slot(0).Raw
	if name == "" {
		return nil, errorf(MissingRequiredField, "holiday name is required")
	}
	begin, err := requiredDate(line.Slot(1), "holiday date")
	if err != nil {
		return nil, err
	}
	end, err := optionalDate(line.Slot(2), ParseDate)
	if err != nil {
		return nil, err
	}
	if end != nil && (begin.Recurring() || end.Recurring()) {
		return nil, errorf(MissingYear, "holiday spans need a year on both dates")
	}
	return &model.Holiday{Name: name, Begin: begin, End: end}, nil
}

// special = name ; date
func parseSpecial(line *Line) (model.Entry, error) {
	name := line.Slot(0).Raw
	if name == "" {
		return nil, errorf(MissingRequiredField, "special name is required")
	}
	d, err := requiredDate(line.Slot(1), "special date")
	if err != nil {
		return nil, err
	}
	return &model.Special{Name: name, Date: d}, nil
}

func optional(fields []string, i int) *string {
	if i >= len(fields) || fields[i] == "" {
		return nil
	}
	s := fields[i]
	return &s
}

func optionalDate(s Slot, parse func([]string) (date.Date, error)) (*date.Date, error) {
	if s.Empty() {
		return nil, nil
	}
	d, err := parse(s.Fields)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func requiredDate(s Slot, what string) (date.Date, error) {
	if s.Empty() {
		return date.Date{}, errorf(MissingRequiredField, "%s is required", what)
	}
	return ParseDate(s.Fields)
}
