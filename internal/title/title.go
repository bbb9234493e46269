// Package title resolves human-readable titles for markdown files and
// directories: the first heading of a file when there is one, otherwise a
// title cleaned up from the file or directory name.
package title

import (
	"bufio"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	billy "github.com/go-git/go-billy/v5"
)

const byteOrderMark = "\ufeff"

var numericPrefixPattern = regexp.MustCompile(`^\p{Nd}+[\s.]*`)

// ExtractHeading returns the text of the first markdown heading in path.
// Lines are scanned in order, blank lines skipped, and the first line that
// starts with '#' and carries text wins. Any read failure counts as "no
// heading".
func ExtractHeading(fs billy.Basic, path string) (string, bool) {
	f, err := fs.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if heading, ok := headingOf(line); ok {
			return heading, true
		}
		if err != nil {
			return "", false
		}
	}
}

// headingOf returns the text of line if it is a heading with text.
func headingOf(line string) (string, bool) {
	line = strings.ToValidUTF8(line, "")
	line = strings.TrimSpace(strings.TrimLeft(line, byteOrderMark))
	if !strings.HasPrefix(line, "#") {
		return "", false
	}
	heading := strings.TrimSpace(strings.TrimLeft(line, "#"))
	return heading, heading != ""
}

// FromName derives a title from a file or directory name:
// "02-Getting_Started.md" becomes "Getting Started". The first letter is
// upper-cased, so "02-setup" becomes "Setup".
func FromName(name string) string {
	stem := strings.TrimSuffix(name, extension(name))
	if stem == "" {
		stem = name
	}
	stem = strings.TrimSpace(strings.NewReplacer("_", " ", "-", " ").Replace(stem))

	cleaned := strings.TrimSpace(numericPrefixPattern.ReplaceAllString(stem, ""))
	switch {
	case cleaned != "":
		return capitalize(cleaned)
	case stem != "":
		return stem
	}
	return name
}

// ForFile returns the heading of a markdown file, or a title derived from
// its name.
func ForFile(fs billy.Basic, path string) string {
	if heading, ok := ExtractHeading(fs, path); ok {
		return heading
	}
	return FromName(filepath.Base(path))
}

// ForDirectory returns the heading of the directory's anchor file, or a title
// derived from the directory name. anchor may be empty.
func ForDirectory(fs billy.Basic, dir, anchor string) string {
	if anchor != "" {
		if heading, ok := ExtractHeading(fs, anchor); ok {
			return heading
		}
	}
	return FromName(filepath.Base(dir))
}

// extension is filepath.Ext, except that a suffix containing whitespace
// ("02. Setup") is part of the name rather than an extension.
func extension(name string) string {
	ext := filepath.Ext(name)
	if strings.ContainsFunc(ext, unicode.IsSpace) {
		return ""
	}
	return ext
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
