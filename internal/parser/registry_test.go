package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"patient.letter":          "letter",
		"dir/xray.JPG":            "jpg",
		"/a.b/c/archive.tar.jpeg": "jpeg",
		"dir.d/README":            "readme",
		"trailing.":               "",
		".report":                 "report",
	}
	for path, want := range tests {
		assert.Equal(t, want, Extension(path), path)
	}
}

func TestRegistry_ResolveBuiltins(t *testing.T) {
	r := NewRegistry()

	tests := map[string]string{
		"patient.letter":  "letter",
		"patient.report":  "report",
		"patient.invoice": "invoice",
		"xray.jpg":        "image",
		"xray.JPEG":       "image",
	}
	for path, want := range tests {
		p, err := r.Resolve(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, p.Name(), path)
	}

	assert.Equal(t, []string{"invoice", "jpeg", "jpg", "letter", "report"}, r.Extensions())
}

func TestRegistry_BareNameIsItsOwnKey(t *testing.T) {
	p, err := NewRegistry().Resolve("inbox/letter")
	require.NoError(t, err)
	assert.Equal(t, "letter", p.Name())
}

func TestRegistry_UnknownFileType(t *testing.T) {
	r := NewRegistry()
	for _, path := range []string{"unknown.txt", "no_extension", "x.letter.bak"} {
		_, err := r.Resolve(path)
		assert.ErrorIs(t, err, ErrUnknownFileType, path)
	}
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	r := NewEmptyRegistry()
	r.Register(".txt", NewLetterParser())
	r.Register("TXT", NewReportParser())

	p, err := r.Resolve("notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "report", p.Name())
	assert.Equal(t, []string{"txt"}, r.Extensions())
}

func TestParserByName(t *testing.T) {
	for _, name := range []string{"letter", "report", "invoice", "image", "IMAGE"} {
		p, err := ParserByName(name)
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(name), p.Name())
	}
	_, err := ParserByName("pdf")
	assert.Error(t, err)
}

func TestLoadRegistrationsFromReader(t *testing.T) {
	content := `
importers:
  - extension: txt
    parser: report
  - extension: ".ltr"
    parser: letter
`
	regs, err := LoadRegistrationsFromReader(strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, regs, 2)
	assert.Equal(t, Registration{Extension: "txt", Parser: "report"}, regs[0])

	r := NewRegistry()
	require.NoError(t, r.Apply(regs))

	p, err := r.Resolve("notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "report", p.Name())

	p, err = r.Resolve("mail.ltr")
	require.NoError(t, err)
	assert.Equal(t, "letter", p.Name())
}

func TestLoadRegistrations_Errors(t *testing.T) {
	_, err := LoadRegistrationsFromReader(strings.NewReader("importers: [ {extension: txt} ]"))
	assert.Error(t, err)

	_, err = LoadRegistrationsFromReader(strings.NewReader("importers: {"))
	assert.Error(t, err)

	r := NewEmptyRegistry()
	err = r.Apply([]Registration{
		{Extension: "txt", Parser: "report"},
		{Extension: "pdf", Parser: "pdf"},
	})
	assert.Error(t, err)
	assert.Empty(t, r.Extensions())
}

func TestLoadRegistrations_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "importers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("importers:\n  - extension: scan\n    parser: image\n"), 0644))

	regs, err := LoadRegistrations(path)
	require.NoError(t, err)
	assert.Equal(t, []Registration{{Extension: "scan", Parser: "image"}}, regs)

	_, err = LoadRegistrations(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
