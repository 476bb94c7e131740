package entry_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/rce/internal/entry"
)

func TestLocate(t *testing.T) {
	_, err := entry.ParseLine("holiday = Summer ; 1,7 ; 31,8,2023")
	require.Error(t, err)

	located := entry.Locate(err, "family.rce", 12)
	assert.ErrorIs(t, located, entry.MissingYear)
	assert.Equal(t, "family.rce:12: missing year: holiday spans need a year on both dates", located.Error())

	var e *entry.Error
	require.True(t, errors.As(located, &e))
	assert.Equal(t, "family.rce", e.File)
	assert.Equal(t, 12, e.Line)

	// The located copy leaves its input untouched.
	assert.NotContains(t, err.Error(), "family.rce")
}

func TestLocateUnclassified(t *testing.T) {
	located := entry.Locate(errors.New("boom"), "a.rce", 3)
	assert.Equal(t, entry.MalformedLine, entry.KindOf(located))
	assert.Nil(t, entry.Locate(nil, "a.rce", 3))
}

func TestIOError(t *testing.T) {
	err := entry.IOError(entry.ReadFile, "a.rce", os.ErrPermission)
	assert.ErrorIs(t, err, entry.ReadFile)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.True(t, entry.KindOf(err).IsIO())
	assert.False(t, entry.MissingYear.IsIO())
	assert.Equal(t, "a.rce: cannot read file: permission denied", err.Error())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, entry.Kind(0), entry.KindOf(errors.New("plain")))
	assert.Equal(t, entry.TooManyFields, entry.KindOf(entry.TooManyFields))
}
