package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/rce/internal/date"
	"github.com/Tiliavir/rce/internal/entry"
	"github.com/Tiliavir/rce/internal/model"
	"github.com/Tiliavir/rce/internal/storage"
)

func TestPrintCheck(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.rce"),
		[]byte("# family\nperson = Santa, CLAUS ; 25,12\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.rce"),
		[]byte("special = ; 4,7\nholiday = Summer ; 1,7,2025 ; 31,8\n"), 0o600))

	res, err := storage.Load(context.Background(), storage.Source{Dir: dir, Extension: "rce"}, entry.Options{})
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	assert.False(t, printCheck(&out, &errOut, res))

	problems := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	require.Len(t, problems, 2)
	assert.Contains(t, problems[0], "bad.rce:1:")
	assert.Contains(t, problems[1], "bad.rce:2:")
	assert.Contains(t, out.String(), "2 file(s), 1 event(s), 2 problem(s)")
}

func TestPrintCheckClean(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.True(t, printCheck(&out, &errOut, storage.Result{}))
	assert.Empty(t, errOut.String())
	assert.Equal(t, "0 file(s), 0 event(s), 0 problem(s)\n", out.String())
}

func TestWriteEntries(t *testing.T) {
	first, nick := "Santa", "Nick"
	birthday := date.New(25, 12)
	var buf bytes.Buffer
	writeEntries(&buf, "contacts.vcf", []*model.Person{{FirstName: &first, Nickname: &nick, Birthday: &birthday}})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "# imported from contacts.vcf", lines[0])

	e, err := entry.ParseLine(lines[1])
	require.NoError(t, err)
	p, ok := e.(*model.Person)
	require.True(t, ok)
	assert.Equal(t, "Nick", *p.Nickname)
	assert.Equal(t, birthday, *p.Birthday)
}

func TestSetupLoggingFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	setupLogging(&buf, "chatty")
	t.Cleanup(func() { setupLogging(os.Stderr, "info") })

	slog.Debug("hidden")
	slog.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
