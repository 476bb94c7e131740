package entry

import (
	"strconv"

	"github.com/Tiliavir/rce/internal/date"
)

// ParseDate reads `day, month` or `day, month, year` fields.
// Day/month combinations are not checked against the month length, so 30/02
// is accepted.
func ParseDate(fields []string) (date.Date, error) {
	if len(fields) != 2 && len(fields) != 3 {
		return date.Date{}, errorf(InvalidDateArity, "want day,month[,year], got %d fields", len(fields))
	}
	day, err := parseUint("day", fields[0])
	if err != nil {
		return date.Date{}, err
	}
	month, err := parseUint("month", fields[1])
	if err != nil {
		return date.Date{}, err
	}
	if day < 1 || day > 31 {
		return date.Date{}, errorf(InvalidDateValue, "day %d out of range 1..31", day)
	}
	if month < 1 || month > 12 {
		return date.Date{}, errorf(InvalidDateValue, "month %d out of range 1..12", month)
	}
	if len(fields) == 2 {
		return date.New(day, month), nil
	}
	year, err := parseUint("year", fields[2])
	if err != nil {
		return date.Date{}, err
	}
	return date.NewFixed(day, month, year), nil
}

// parseRecurring reads a date that must not carry a year.
func parseRecurring(fields []string) (date.Date, error) {
	if len(fields) == 3 {
		return date.Date{}, errorf(UnexpectedYear, "date %q must not carry a year", fields[2])
	}
	return ParseDate(fields)
}

func parseUint(name, s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, errorf(InvalidDateValue, "%s %q is not an unsigned integer", name, s)
	}
	return int(n), nil
}
