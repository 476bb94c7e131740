// Package vcardimport converts vCard contacts into person entries.
package vcardimport

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/emersion/go-vcard"

	"github.com/Tiliavir/rce/internal/date"
	"github.com/Tiliavir/rce/internal/model"
)

// Skipped describes a contact that could not become an entry.
type Skipped struct {
	Index  int // 1-based position in the stream
	Name   string
	Reason string
}

// Convert decodes every card from r. Cards without a given name or
// nickname, or with unreadable dates, are skipped and reported.
func Convert(r io.Reader) ([]*model.Person, []Skipped, error) {
	dec := vcard.NewDecoder(r)
	var people []*model.Person
	var skipped []Skipped
	for i := 1; ; i++ {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return people, skipped, fmt.Errorf("decoding vCard %d: %w", i, err)
		}
		p, reason := convertCard(card)
		if p == nil {
			skipped = append(skipped, Skipped{Index: i, Name: card.Value(vcard.FieldFormattedName), Reason: reason})
			slog.Warn("contact skipped", "component", "vcardimport", "index", i, "reason", reason)
			continue
		}
		people = append(people, p)
	}
	return people, skipped, nil
}

func convertCard(card vcard.Card) (*model.Person, string) {
	var p model.Person
	if n := card.Name(); n != nil {
		p.FirstName = nonEmpty(n.GivenName)
		p.LastName = nonEmpty(n.FamilyName)
	}
	p.Nickname = nonEmpty(card.Value(vcard.FieldNickname))
	if p.FirstName == nil && p.Nickname == nil {
		return nil, "no given name or nickname"
	}

	var err error
	if p.Birthday, err = optionalDate(card.Value(vcard.FieldBirthday)); err != nil {
		return nil, "birthday: " + err.Error()
	}
	if p.WeddingDay, err = optionalDate(card.Value(vcard.FieldAnniversary)); err != nil {
		return nil, "anniversary: " + err.Error()
	}
	return &p, ""
}

var (
	formatsWithYear    = []string{"2006-01-02", "20060102", time.RFC3339, "20060102T150405Z"}
	formatsWithoutYear = []string{"--0102", "--01-02"}
)

// ParseDate reads the vCard date forms, with or without a year.
func ParseDate(value string) (date.Date, error) {
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return date.FromTime(t), nil
		}
	}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			return date.New(t.Day(), int(t.Month())), nil
		}
	}
	return date.Date{}, fmt.Errorf("unsupported date %q", value)
}

func optionalDate(value string) (*date.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	d, err := ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// entry separators cannot appear inside names.
var separators = strings.NewReplacer(",", " ", ";", " ")

func nonEmpty(s string) *string {
	s = strings.Join(strings.Fields(separators.Replace(s)), " ")
	if s == "" {
		return nil
	}
	return &s
}
