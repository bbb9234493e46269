package title

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestExtractHeading(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		found   bool
	}{
		{"h1", "# Title\n\nBody\n", "Title", true},
		{"leading blank lines", "\n\n   \n# Title\n", "Title", true},
		{"byte order mark", "\ufeff# Marked\n", "Marked", true},
		{"deeper heading", "### Deep Title  \n", "Deep Title", true},
		{"no space after hashes", "#Tight\n", "Tight", true},
		{"paragraph before heading", "Intro text\n# Later\n", "Later", true},
		{"first heading wins", "# First\n# Second\n", "First", true},
		{"empty heading skipped", "#\n## Real\n", "Real", true},
		{"crlf line endings", "# Windows\r\nbody\r\n", "Windows", true},
		{"long line before heading", "![img](data:image/png;base64," + strings.Repeat("A", 2<<20) + ")\n# Real Title\n", "Real Title", true},
		{"no trailing newline", "text\n# Last", "Last", true},
		{"no heading", "just text\nmore text\n", "", false},
		{"empty file", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "doc.md", tt.content)

			got, found := ExtractHeading(osfs.New(dir), "doc.md")
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractHeading_MissingFile(t *testing.T) {
	got, found := ExtractHeading(osfs.New(t.TempDir()), "missing.md")
	assert.False(t, found)
	assert.Empty(t, got)
}

func TestFromName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"02-Getting_Started.md", "Getting Started"},
		{"02-setup", "Setup"},
		{"notes.md", "Notes"},
		{"02. Setup", "Setup"},
		{"10_advanced-topics.markdown", "Advanced topics"},
		{"README.md", "README"},
		{"2024.md", "2024"},
		{"007", "007"},
		{"---", "---"},
		{"über.md", "Über"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FromName(tt.input))
		})
	}
}

func TestForFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "01-intro.md", "# Introduction\n")
	writeFile(t, dir, "02-no-heading.md", "plain text\n")
	fs := osfs.New(dir)

	assert.Equal(t, "Introduction", ForFile(fs, "01-intro.md"))
	assert.Equal(t, "No heading", ForFile(fs, "02-no-heading.md"))
}

func TestForDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "03-guide/README.md", "# The Guide\n")
	writeFile(t, dir, "04-misc/README.md", "no heading here\n")
	fs := osfs.New(dir)

	assert.Equal(t, "The Guide", ForDirectory(fs, "03-guide", filepath.Join("03-guide", "README.md")))
	assert.Equal(t, "Misc", ForDirectory(fs, "04-misc", filepath.Join("04-misc", "README.md")))
	assert.Equal(t, "Misc", ForDirectory(fs, "04-misc", ""))
}
