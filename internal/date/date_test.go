package date_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Tiliavir/rce/internal/date"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name string
		in   date.Date
		want date.Date
	}{
		{"day", date.NewFixed(1, 1, 1970), date.NewFixed(2, 1, 1970)},
		{"month", date.NewFixed(31, 1, 1970), date.NewFixed(1, 2, 1970)},
		{"year", date.NewFixed(31, 12, 1970), date.NewFixed(1, 1, 1971)},
		{"leap february", date.NewFixed(28, 2, 2000), date.NewFixed(29, 2, 2000)},
		{"non-leap february", date.NewFixed(28, 2, 1900), date.NewFixed(1, 3, 1900)},
		{"april has 30 days", date.NewFixed(30, 4, 2023), date.NewFixed(1, 5, 2023)},
		{"recurring february", date.New(28, 2), date.New(29, 2)},
		{"recurring year end", date.New(31, 12), date.New(1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Next())
		})
	}
}

func TestCompare(t *testing.T) {
	base := date.NewFixed(1, 1, 1)

	assert.Equal(t, -1, base.Compare(date.NewFixed(1, 1, 2)))
	assert.Equal(t, -1, base.Compare(date.NewFixed(1, 2, 1)))
	assert.Equal(t, -1, base.Compare(date.NewFixed(2, 1, 1)))
	assert.Equal(t, 0, base.Compare(base))
	assert.Equal(t, 1, date.NewFixed(1, 1, 2).Compare(base))

	// Years are ignored when one side is recurring.
	assert.Equal(t, 0, date.New(1, 1).Compare(date.NewFixed(1, 1, 2024)))
	assert.True(t, date.New(1, 1).Before(date.New(2, 1)))
}

func TestNextMatch(t *testing.T) {
	today := date.NewFixed(15, 6, 2025)

	tests := []struct {
		name string
		in   date.Date
		want date.Date
	}{
		{"later this year", date.New(31, 12), date.NewFixed(31, 12, 2025)},
		{"already passed", date.New(1, 1), date.NewFixed(1, 1, 2026)},
		{"today", date.New(15, 6), date.NewFixed(15, 6, 2025)},
		{"fixed origin", date.NewFixed(1, 1, 1990), date.NewFixed(1, 1, 2026)},
		{"leap day in non-leap year", date.New(29, 2), date.NewFixed(28, 2, 2026)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.NextMatch(today))
		})
	}

	leapToday := date.NewFixed(1, 1, 2024)
	assert.Equal(t, date.NewFixed(29, 2, 2024), date.New(29, 2).NextMatch(leapToday))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, date.DaysBetween(date.NewFixed(1, 7, 2023), date.NewFixed(1, 7, 2023)))
	assert.Equal(t, 61, date.DaysBetween(date.NewFixed(1, 7, 2023), date.NewFixed(31, 8, 2023)))
	assert.Equal(t, 366, date.DaysBetween(date.NewFixed(1, 1, 2024), date.NewFixed(1, 1, 2025)))
	assert.Equal(t, -1, date.DaysBetween(date.NewFixed(2, 1, 2024), date.NewFixed(1, 1, 2024)))

	// Further apart than a time.Duration can hold.
	assert.Equal(t, 192118, date.DaysBetween(date.NewFixed(1, 1, 1500), date.NewFixed(1, 1, 2026)))
	assert.Equal(t, -730119, date.DaysBetween(date.NewFixed(1, 1, 2000), date.NewFixed(1, 1, 1)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "06/12", date.New(6, 12).String())
	assert.Equal(t, "09/04/2023", date.NewFixed(9, 4, 2023).String())
}

func TestFromTime(t *testing.T) {
	ts := time.Date(2026, 10, 16, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, date.NewFixed(16, 10, 2026), date.FromTime(ts))
}

func TestIsLeap(t *testing.T) {
	assert.True(t, date.IsLeap(2000))
	assert.True(t, date.IsLeap(2024))
	assert.False(t, date.IsLeap(1900))
	assert.False(t, date.IsLeap(2023))
}
