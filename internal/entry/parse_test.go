package entry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/rce/internal/date"
	"github.com/Tiliavir/rce/internal/entry"
	"github.com/Tiliavir/rce/internal/model"
)

func strp(s string) *string { return &s }

func datep(d date.Date) *date.Date { return &d }

func TestParsePerson(t *testing.T) {
	tests := []struct {
		name string
		line string
		want *model.Person
	}{
		{
			name: "full",
			line: "person = a,b,c;1,1,1;2,2;3,3,3",
			want: &model.Person{
				FirstName: strp("a"), LastName: strp("b"), Nickname: strp("c"),
				Birthday:   datep(date.NewFixed(1, 1, 1)),
				SaintDay:   datep(date.New(2, 2)),
				WeddingDay: datep(date.NewFixed(3, 3, 3)),
			},
		},
		{
			name: "with spaces",
			line: " person = a , b , c ; 1 , 1 , 1 ; 2 , 2 ; 3 , 3 , 3 ",
			want: &model.Person{
				FirstName: strp("a"), LastName: strp("b"), Nickname: strp("c"),
				Birthday:   datep(date.NewFixed(1, 1, 1)),
				SaintDay:   datep(date.New(2, 2)),
				WeddingDay: datep(date.NewFixed(3, 3, 3)),
			},
		},
		{
			name: "santa",
			line: "person = Santa, CLAUS, St Nicholas ; 25,12 ; 06,12 ;",
			want: &model.Person{
				FirstName: strp("Santa"), LastName: strp("CLAUS"), Nickname: strp("St Nicholas"),
				Birthday: datep(date.New(25, 12)),
				SaintDay: datep(date.New(6, 12)),
			},
		},
		{
			name: "nickname only",
			line: "person = ,,Rick",
			want: &model.Person{Nickname: strp("Rick")},
		},
		{
			name: "first name only, short name slot",
			line: "person = Richard ; ; ; 3,3",
			want: &model.Person{FirstName: strp("Richard"), WeddingDay: datep(date.New(3, 3))},
		},
		{
			name: "no dates",
			line: "person = a,b,c;;;",
			want: &model.Person{FirstName: strp("a"), LastName: strp("b"), Nickname: strp("c")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := entry.ParseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHoliday(t *testing.T) {
	tests := []struct {
		name string
		line string
		want *model.Holiday
	}{
		{"recurring", "holiday =   Christmas   ;25,12", &model.Holiday{Name: "Christmas", Begin: date.New(25, 12)}},
		{"fixed", "holiday = Easter ; 09,04,2023", &model.Holiday{Name: "Easter", Begin: date.NewFixed(9, 4, 2023)}},
		{"span", "holiday = Summer;1,7,2023;  31 ,8  ,    2023", &model.Holiday{
			Name: "Summer", Begin: date.NewFixed(1, 7, 2023), End: datep(date.NewFixed(31, 8, 2023)),
		}},
		{"name with comma", "holiday = Bastille, national ; 14,7", &model.Holiday{Name: "Bastille, national", Begin: date.New(14, 7)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := entry.ParseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSpecial(t *testing.T) {
	got, err := entry.ParseLine("special = IMPORTANT ; 04,07,2023")
	require.NoError(t, err)
	assert.Equal(t, &model.Special{Name: "IMPORTANT", Date: date.NewFixed(4, 7, 2023)}, got)

	got, err = entry.ParseLine("special = yearly ; 1,5")
	require.NoError(t, err)
	assert.Equal(t, &model.Special{Name: "yearly", Date: date.New(1, 5)}, got)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind entry.Kind
	}{
		{"no equals", "person Santa", entry.MalformedLine},
		{"unknown keyword", "birthday = Santa ; 25,12", entry.UnknownEntryKind},
		{"keyword is case sensitive", "Person = Santa ; 25,12", entry.UnknownEntryKind},
		{"person without first name or nickname", "person = ; 25,12 ;", entry.MissingRequiredField},
		{"person with last name only", "person = ,SARTORI, ; 1,1", entry.MissingRequiredField},
		{"person with four names", "person = a,b,c,d", entry.TooManyFields},
		{"person with five slots", "person = a,b,c;1,1,1;2,2;3,3,3;4,4,4", entry.TooManyFields},
		{"saint day with year", "person = a,b,c;1,1,1;2,2,2;3,3,3", entry.UnexpectedYear},
		{"bad birthday arity", "person = a ; 1", entry.InvalidDateArity},
		{"bad wedding value", "person = a ; ; ; 1,13", entry.InvalidDateValue},
		{"holiday without name", "holiday = ; 25,12", entry.MissingRequiredField},
		{"holiday without date", "holiday = Christmas", entry.MissingRequiredField},
		{"holiday span without begin year", "holiday = Summer ; 1,7 ; 31,8,2023", entry.MissingYear},
		{"holiday span without end year", "holiday = Summer ; 1,7,2023 ; 31,8", entry.MissingYear},
		{"holiday with four slots", "holiday = Summer;1,7,2023;31,8,2023;0,0,0", entry.TooManyFields},
		{"special without date", "special = desc", entry.MissingRequiredField},
		{"special with extra slot", "special = desc;1,1,1;1,1,1", entry.TooManyFields},
		{"special bad date", "special = desc ; 1,1,1,1", entry.InvalidDateArity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := entry.ParseLine(tt.line)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.Equal(t, tt.kind, entry.KindOf(err), err.Error())
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestParseTrailingEmptySlotTolerated(t *testing.T) {
	_, err := entry.ParseLine("special = desc ; 1,1,2023 ;")
	require.NoError(t, err)
}

func TestParseLineSkips(t *testing.T) {
	got, err := entry.ParseLine("# person = Santa ; 25,12")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFormatRoundTrip(t *testing.T) {
	lines := []string{
		"person = a,b,c;1,1,1;2,2;3,3,3",
		"person = ,,Rick",
		"person = Richard ; ; ; 3,3",
		"holiday = Christmas ; 25,12",
		"holiday = Summer ; 1,7,2023 ; 31,8,2023",
		"special = IMPORTANT ; 4,7,2023",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			e, err := entry.ParseLine(line)
			require.NoError(t, err)

			again, err := entry.ParseLine(entry.Format(e))
			require.NoError(t, err)
			assert.Equal(t, e, again)
		})
	}
}
