package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tiliavir/rce/internal/model"
	"github.com/Tiliavir/rce/internal/style"
)

func TestPlain(t *testing.T) {
	s := style.New(false)
	assert.Equal(t, "wedding anniversary", s.Kind(model.Wedding))
	assert.Equal(t, "in 3 days", s.Dim("in 3 days"))
}

func TestColouredKeepsText(t *testing.T) {
	s := style.New(true)
	for _, k := range model.Kinds {
		assert.Contains(t, s.Kind(k), k.Title())
	}
}
