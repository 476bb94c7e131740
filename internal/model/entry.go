package model

import "github.com/Tiliavir/rce/internal/date"

// Entry is one parsed line of an entry file: a *Person, *Holiday or *Special.
type Entry interface {
	entry()
}

// Person holds the dates attached to somebody.
// Either FirstName or Nickname is always set.
type Person struct {
	FirstName  *string
	LastName   *string
	Nickname   *string
	Birthday   *date.Date
	SaintDay   *date.Date // always recurring
	WeddingDay *date.Date
}

// Holiday is a single day, or an inclusive span of days when End is set.
// Spans are always anchored to a year.
type Holiday struct {
	Name  string
	Begin date.Date
	End   *date.Date
}

// Special is a single named day.
type Special struct {
	Name string
	Date date.Date
}

func (*Person) entry()  {}
func (*Holiday) entry() {}
func (*Special) entry() {}

// NameStyle selects how a person's display name is built.
type NameStyle string

const (
	// NameNickname prefers the nickname, then "first last", then first.
	NameNickname NameStyle = "nickname"
	// NameFull prefers "first last", then first, then the nickname.
	NameFull NameStyle = "full"
)

// DisplayName returns the name events for p are labelled with.
func (p *Person) DisplayName(style NameStyle) string {
	first, last, nick := deref(p.FirstName), deref(p.LastName), deref(p.Nickname)
	full := first
	if first != "" && last != "" {
		full = first + " " + last
	}
	if style == NameFull {
		if full != "" {
			return full
		}
		return nick
	}
	if nick != "" {
		return nick
	}
	return full
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
