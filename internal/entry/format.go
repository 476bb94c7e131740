package entry

import (
	"strconv"
	"strings"

	"github.com/Tiliavir/rce/internal/date"
	"github.com/Tiliavir/rce/internal/model"
)

// Format renders e back into entry-file syntax. ParseLine(Format(e)) yields
// an entry equal to e.
func Format(e model.Entry) string {
	switch e := e.(type) {
	case *model.Person:
		names := strings.Join([]string{str(e.FirstName), str(e.LastName), str(e.Nickname)}, ", ")
		return "person = " + strings.Join([]string{
			names,
			optionalDateString(e.Birthday),
			optionalDateString(e.SaintDay),
			optionalDateString(e.WeddingDay),
		}, " ; ")
	case *model.Holiday:
		line := "holiday = " + e.Name + " ; " + dateString(e.Begin)
		if e.End != nil {
			line += " ; " + dateString(*e.End)
		}
		return line
	case *model.Special:
		return "special = " + e.Name + " ; " + dateString(e.Date)
	default:
		return ""
	}
}

func dateString(d date.Date) string {
	s := strconv.Itoa(d.Day) + "," + strconv.Itoa(d.Month)
	if d.HasYear {
		s += "," + strconv.Itoa(d.Year)
	}
	return s
}

func optionalDateString(d *date.Date) string {
	if d == nil {
		return ""
	}
	return dateString(*d)
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
